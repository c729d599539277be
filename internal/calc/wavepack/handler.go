package wavepack

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"wavepack/internal/auth"
	"wavepack/internal/errs"
	"wavepack/internal/metrics"
	"wavepack/internal/props"
)

type Handler struct {
	Lib      *props.Library
	Settings Settings
}

type errorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	Field string `json:"field,omitempty"`
}

// WriteError maps a solver error to a structured JSON failure. Unknown
// library names map to 404, everything else the solver rejects to 400.
func WriteError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	body := errorBody{Error: err.Error()}
	var se *errs.Error
	if errors.As(err, &se) {
		body.Kind = string(se.Kind)
		body.Field = se.Field
		if se.Kind == errs.KindUnknownLookup {
			status = http.StatusNotFound
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func (h *Handler) settings() Settings {
	if h.Settings.Samples == 0 {
		return DefaultSettings()
	}
	return h.Settings
}

// Calc runs one solve for a JSON input configuration.
func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		WriteError(w, errs.Invalid("body", "", "invalid request payload"))
		return
	}
	res, err := CalculateWith(h.Lib, input, h.settings())
	if err != nil {
		entry := logrus.WithError(err).WithField("fluid", input.Fluid)
		if id, ok := auth.UserID(r.Context()); ok {
			entry = entry.WithField("user_id", id)
		}
		entry.Warn("solve rejected")
		metrics.SolvesTotal.WithLabelValues(string(errs.KindOf(err))).Inc()
		WriteError(w, err)
		return
	}
	metrics.SolvesTotal.WithLabelValues("ok").Inc()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// Options serves the library names for the frontend dropdowns.
func (h *Handler) Options(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]string{
		"fluids":    h.Lib.Fluids(),
		"materials": h.Lib.Materials(),
	})
}
