package output

import (
	"encoding/json"

	"github.com/rpgo/corpfin-calculator/internal/domain"
)

// JSONFormatter serializes the report as pretty-printed JSON. Non-finite
// results are encoded as null by the domain types.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.Report) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
