package output

import (
	"bytes"

	"github.com/rpgo/corpfin-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter serializes the report as YAML; NaN and infinities keep their
// YAML spellings (.nan, .inf).
var YAMLFormatter = FormatterFunc{ID: "yaml", F: formatYAML}

func formatYAML(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
