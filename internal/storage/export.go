package storage

import (
	"encoding/json"
	"io"
)

type ExportData struct {
	Meta   RunMetadata `json:"meta"`
	Steps  int         `json:"steps"`
	Names  []string    `json:"bodies"`
	Times  []float64   `json:"times"`
	States [][]float64 `json:"states"`
}

func ExportJSON(w io.Writer, meta *RunMetadata, rec *Recording) error {
	data := ExportData{
		Meta:   *meta,
		Steps:  len(rec.Times),
		Names:  rec.Names,
		Times:  rec.Times,
		States: rec.States,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
