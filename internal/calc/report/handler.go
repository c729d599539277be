package report

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"wavepack/internal/calc/wavepack"
	"wavepack/internal/errs"
)

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var payload Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		wavepack.WriteError(w, errs.Invalid("body", "", "invalid request payload"))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"wavepack_report.pdf\"")
	if err := Build(payload, time.Now(), w); err != nil {
		logrus.WithError(err).Error("report generation failed")
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
