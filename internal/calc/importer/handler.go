// Package importer accepts an uploaded workbook of solve cases and runs the
// solver over every row of the first sheet.
package importer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/xuri/excelize/v2"

	"wavepack/internal/calc/wavepack"
	"wavepack/internal/props"
)

type Handler struct {
	Lib      *props.Library
	Settings wavepack.Settings
}

type Output struct {
	Count   int               `json:"count"`
	Skipped int               `json:"skipped"`
	Results []wavepack.Result `json:"results"`
}

// Solve reads a multipart .xlsx upload. Expected columns, one case per row
// after the header: shape, material, fluid, a_in, b_in, t_in, L_in,
// vel_target_fts, dp_limit_psi, T_min_F, T_max_F. Rows that fail to parse or
// solve are skipped and counted, matching the forgiving import semantics of
// the spreadsheet workflow.
func (h *Handler) Solve(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	st := h.Settings
	if st.Samples == 0 {
		st = wavepack.DefaultSettings()
	}

	out := Output{Results: []wavepack.Result{}}
	for i := 1; i < len(rows); i++ {
		input, err := parseRow(rows[i])
		if err != nil {
			out.Skipped++
			continue
		}
		res, err := wavepack.CalculateWith(h.Lib, input, st)
		if err != nil {
			out.Skipped++
			continue
		}
		out.Results = append(out.Results, res)
	}
	out.Count = len(out.Results)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

func parseRow(row []string) (wavepack.Input, error) {
	if len(row) < 11 {
		return wavepack.Input{}, fmt.Errorf("short row")
	}
	shape, err := wavepack.ParseShape(row[0])
	if err != nil {
		return wavepack.Input{}, err
	}
	nums := make([]float64, 8)
	for i := 0; i < 8; i++ {
		v, err := strconv.ParseFloat(row[3+i], 64)
		if err != nil {
			return wavepack.Input{}, err
		}
		nums[i] = v
	}
	return wavepack.Input{
		Shape:        shape,
		Material:     row[1],
		Fluid:        row[2],
		AIn:          nums[0],
		BIn:          nums[1],
		TIn:          nums[2],
		LIn:          nums[3],
		VelTargetFts: nums[4],
		DpLimitPsi:   nums[5],
		TMinF:        nums[6],
		TMaxF:        nums[7],
	}, nil
}
