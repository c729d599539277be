package batch

import (
	"encoding/json"
	"net/http"

	"wavepack/internal/calc/wavepack"
	"wavepack/internal/errs"
	"wavepack/internal/props"
)

type Handler struct {
	Lib      *props.Library
	Settings wavepack.Settings
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		wavepack.WriteError(w, errs.Invalid("body", "", "invalid request payload"))
		return
	}
	st := h.Settings
	if st.Samples == 0 {
		st = wavepack.DefaultSettings()
	}
	out, err := Calculate(h.Lib, st, input)
	if err != nil {
		wavepack.WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}
