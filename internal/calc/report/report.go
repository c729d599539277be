// Package report renders the engineering summary PDF: input echo, solve
// results, optional schematic/chart images, and the compliance block. It
// formats the solver output and never alters the numbers.
package report

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"wavepack/internal/calc/wavepack"
)

type Payload struct {
	Inputs  wavepack.Input  `json:"inputs"`
	Results wavepack.Result `json:"results"`
	Title   string          `json:"title"`
	Author  string          `json:"author"`
	// Optional base64-encoded PNGs from the frontend, with or without a
	// data: URI prefix.
	Schematic string `json:"schematic"`
	ChartPT   string `json:"chartPT"`
	ChartAF   string `json:"chartAF"`
}

// Build writes the PDF for a completed solve to w.
func Build(p Payload, now time.Time, w io.Writer) error {
	if p.Title == "" {
		p.Title = "Wavepack Analysis Report"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, p.Title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	meta := []string{
		fmt.Sprintf("Date: %s", now.Format("2006-01-02 15:04:05")),
		fmt.Sprintf("Author: %s", p.Author),
		fmt.Sprintf("Material: %s", p.Inputs.Material),
		fmt.Sprintf("Fluid: %s", p.Inputs.Fluid),
		fmt.Sprintf("Shape: %s", p.Inputs.Shape),
		fmt.Sprintf("Temperature Range: %g - %g F", p.Inputs.TMinF, p.Inputs.TMaxF),
		fmt.Sprintf("Velocity Target: %g ft/s", p.Inputs.VelTargetFts),
		fmt.Sprintf("Pressure Drop Limit: %g psi", p.Inputs.DpLimitPsi),
	}
	for _, line := range meta {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	r := p.Results
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Results")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	summary := []string{
		fmt.Sprintf("Array Size: %d x %d channels (%d required)", r.ArrayDims[0], r.ArrayDims[1], r.ChannelsNeeded),
		fmt.Sprintf("Overall Dimensions: %.2f x %.2f in x %.2f ft", r.WidthIn, r.HeightIn, r.LFt),
		fmt.Sprintf("Flow Velocity: %.2f ft/s (%s, Re = %.0f)", r.VelocityFts, r.Regime, r.Reynolds),
		fmt.Sprintf("Pressure Drop: %.4f psi", r.DeltaPPsi),
		fmt.Sprintf("Weight: %.1f lbm", r.TotalWeightLbm),
		fmt.Sprintf("Cutoff Frequency: %.3f GHz", r.FcGHz),
	}
	for _, line := range summary {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	addImage(pdf, p.Schematic, "schematic", "Isometric Schematic of Wavepack")
	addImage(pdf, p.ChartPT, "chart_pt", "Pressure and Velocity vs. Temperature")
	addImage(pdf, p.ChartAF, "chart_af", "Attenuation vs. Frequency")

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Compliance Checks")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Flow: %.4f psi vs %g psi limit - %s", r.DeltaPPsi, p.Inputs.DpLimitPsi, passFail(r.Compliance.DpWithinLimit)))
	pdf.Ln(6)
	if n := len(r.SEDb); n > 0 {
		pdf.Cell(0, 6, fmt.Sprintf("EMI: %.1f dB at %.0e Hz vs 80 dB requirement - %s", r.SEDb[n-1], r.Freqs[n-1], passFail(r.Compliance.SeMeets80Db)))
		pdf.Ln(6)
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.Cell(0, 5, "Generated by Wavepack Analyzer")

	return pdf.Output(w)
}

func passFail(ok bool) string {
	if ok {
		return "PASS"
	}
	return "FAIL"
}

// addImage embeds one base64 PNG with a caption; absent or undecodable
// attachments are skipped so a missing chart never fails the report.
func addImage(pdf *gofpdf.Fpdf, b64, name, caption string) {
	if b64 == "" {
		return
	}
	// Frontends send data URIs; keep only the payload.
	if i := strings.LastIndex(b64, ","); i >= 0 {
		b64 = b64[i+1:]
	}
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(raw))
	if pdf.Err() {
		pdf.ClearError()
		return
	}
	pdf.ImageOptions(name, 20, pdf.GetY(), 150, 0, true, opts, 0, "")
	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 5, caption)
	pdf.Ln(8)
}
