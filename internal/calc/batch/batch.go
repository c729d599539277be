package batch

import (
	"wavepack/internal/calc/wavepack"
	"wavepack/internal/errs"
	"wavepack/internal/props"
)

type Input struct {
	Items []wavepack.Input `json:"items"`
}

type Item struct {
	Index  int              `json:"index"`
	Result *wavepack.Result `json:"result,omitempty"`
	Error  string           `json:"error,omitempty"`
	Kind   string           `json:"kind,omitempty"`
}

type Output struct {
	Solved  int    `json:"solved"`
	Failed  int    `json:"failed"`
	Results []Item `json:"results"`
}

// Calculate solves every case independently. One bad case does not abort the
// batch; its slot carries the structured failure instead of a result.
func Calculate(lib *props.Library, st wavepack.Settings, in Input) (Output, error) {
	if len(in.Items) == 0 {
		return Output{}, errs.Invalid("items", 0, "no items")
	}
	out := Output{Results: make([]Item, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := wavepack.CalculateWith(lib, item, st)
		if err != nil {
			out.Failed++
			out.Results = append(out.Results, Item{Index: i, Error: err.Error(), Kind: string(errs.KindOf(err))})
			continue
		}
		out.Solved++
		out.Results = append(out.Results, Item{Index: i, Result: &res})
	}
	return out, nil
}
