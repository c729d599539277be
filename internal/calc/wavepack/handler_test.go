package wavepack

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"

	"wavepack/internal/auth"
	"wavepack/internal/props"
)

const referenceBody = `{
	"a_in": 2, "b_in": 1, "t_in": 0.05, "L_in": 6,
	"shape": "Rectangular",
	"material": "Stainless Steel",
	"fluid": "Air",
	"vel_target_fts": 50,
	"dp_limit_psi": 5,
	"T_min_F": 32,
	"T_max_F": 212
}`

func newTestHandler() *Handler {
	return &Handler{Lib: props.Default()}
}

func TestCalcHandlerOK(t *testing.T) {
	req := httptest.NewRequest("POST", "/tools/wavepack/solve", strings.NewReader(referenceBody))
	w := httptest.NewRecorder()
	newTestHandler().Calc(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var res map[string]any
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	// The wire contract names fields exactly as the frontend expects them.
	for _, field := range []string{"array_dims", "velocity_fts", "deltaP_psi", "fc_GHz", "SE_db", "freqs", "total_weight_lbm", "a_in", "b_in", "t_in", "L_ft"} {
		if _, ok := res[field]; !ok {
			t.Errorf("response missing field %q", field)
		}
	}
	if dims, ok := res["array_dims"].([]any); !ok || len(dims) != 2 {
		t.Errorf("array_dims = %v", res["array_dims"])
	}
}

func TestCalcHandlerUnknownMaterial(t *testing.T) {
	body := strings.Replace(referenceBody, "Stainless Steel", "Unobtainium", 1)
	req := httptest.NewRequest("POST", "/tools/wavepack/solve", strings.NewReader(body))
	w := httptest.NewRecorder()
	newTestHandler().Calc(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	var resp map[string]any
	json.NewDecoder(w.Body).Decode(&resp)
	if resp["kind"] != "unknown_lookup" || resp["field"] != "material" {
		t.Errorf("error body = %v", resp)
	}
}

func TestCalcHandlerLogsRejectedUser(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	body := strings.Replace(referenceBody, "Air", "Phlogiston", 1)
	req := httptest.NewRequest("POST", "/tools/wavepack/solve", strings.NewReader(body))
	req = req.WithContext(auth.WithUserID(req.Context(), 7))
	w := httptest.NewRecorder()
	newTestHandler().Calc(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("no log entry recorded for rejected solve")
	}
	if entry.Data["user_id"] != 7 {
		t.Errorf("user_id field = %v, want 7", entry.Data["user_id"])
	}
	if entry.Data["fluid"] != "Phlogiston" {
		t.Errorf("fluid field = %v", entry.Data["fluid"])
	}
}

func TestCalcHandlerBadPayload(t *testing.T) {
	for _, body := range []string{"not json", `{"shape": "Hexagonal"}`, `{"shape": 7}`} {
		req := httptest.NewRequest("POST", "/tools/wavepack/solve", strings.NewReader(body))
		w := httptest.NewRecorder()
		newTestHandler().Calc(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, w.Code)
		}
	}
}

func TestOptionsHandler(t *testing.T) {
	req := httptest.NewRequest("GET", "/tools/wavepack/options", nil)
	w := httptest.NewRecorder()
	newTestHandler().Options(w, req)

	var resp map[string][]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if len(resp["fluids"]) != 5 || len(resp["materials"]) != 5 {
		t.Errorf("options = %d fluids, %d materials; want 5 each", len(resp["fluids"]), len(resp["materials"]))
	}
}
