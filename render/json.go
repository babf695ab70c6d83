package render

import (
	"encoding/json"
	"io"

	"github.com/revelaction/corefclean/clean"
	"github.com/revelaction/corefclean/stat"
)

// Report is the JSON document describing a cleaning run.
type Report struct {
	RunId string         `json:"run_id,omitempty"`
	Stats stat.Stats     `json:"stats"`
	Docs  []clean.Result `json:"docs,omitempty"`
}

// JSONRenderer writes reports as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes the report as indented JSON.
func (r *JSONRenderer) Render(report Report) error {
	enc := json.NewEncoder(r.W)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
