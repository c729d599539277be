package report

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wavepack/internal/calc/wavepack"
	"wavepack/internal/props"
)

func solvedPayload(t *testing.T) Payload {
	t.Helper()
	in := wavepack.Input{
		AIn: 2, BIn: 1, TIn: 0.05, LIn: 6,
		Shape:        wavepack.Rectangular,
		Material:     "Stainless Steel",
		Fluid:        "Air",
		VelTargetFts: 50,
		DpLimitPsi:   5,
		TMinF:        32,
		TMaxF:        212,
	}
	res, err := wavepack.Calculate(props.Default(), in)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	return Payload{Inputs: in, Results: res, Author: "test"}
}

func tinyPNG(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func payloadJSON(p Payload) (string, error) {
	b, err := json.Marshal(p)
	return string(b), err
}

func TestBuildProducesPDF(t *testing.T) {
	var buf bytes.Buffer
	if err := Build(solvedPayload(t), time.Unix(1700000000, 0).UTC(), &buf); err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF header")
	}
	if buf.Len() < 500 {
		t.Errorf("suspiciously small PDF: %d bytes", buf.Len())
	}
}

func TestBuildWithImages(t *testing.T) {
	p := solvedPayload(t)
	p.Schematic = tinyPNG(t)
	p.ChartAF = tinyPNG(t)
	var withImages bytes.Buffer
	if err := Build(p, time.Unix(1700000000, 0).UTC(), &withImages); err != nil {
		t.Fatalf("Build with images failed: %v", err)
	}
	var bare bytes.Buffer
	if err := Build(solvedPayload(t), time.Unix(1700000000, 0).UTC(), &bare); err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if withImages.Len() <= bare.Len() {
		t.Error("embedded images did not grow the document")
	}
}

func TestBuildSkipsBadImage(t *testing.T) {
	p := solvedPayload(t)
	p.ChartPT = "data:image/png;base64,!!!not-base64!!!"
	var buf bytes.Buffer
	if err := Build(p, time.Now(), &buf); err != nil {
		t.Fatalf("undecodable attachment should be skipped, got %v", err)
	}
}

func TestGenerateHandler(t *testing.T) {
	body, err := payloadJSON(solvedPayload(t))
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest("POST", "/tools/report/pdf", strings.NewReader(body))
	w := httptest.NewRecorder()
	(&Handler{}).Generate(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Error("body is not a PDF")
	}
}

func TestGenerateHandlerBadPayload(t *testing.T) {
	req := httptest.NewRequest("POST", "/tools/report/pdf", strings.NewReader("not json"))
	w := httptest.NewRecorder()
	(&Handler{}).Generate(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
