package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/corpfin-calculator/internal/domain"
)

// ConsoleFormatter provides a concise one-line-per-metric summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "CORPORATE FINANCE SUMMARY")
	fmt.Fprintln(&buf, "================================")
	current := ""
	for _, m := range SummarizeReport(report) {
		if m.Calculator != current {
			if current != "" {
				fmt.Fprintln(&buf)
			}
			current = m.Calculator
			fmt.Fprintf(&buf, "[%s]\n", current)
		}
		fmt.Fprintf(&buf, "%s: %s\n", m.Name, m.Display())
	}
	for _, calc := range errorKeys(report) {
		fmt.Fprintf(&buf, "\n[%s] error: %s\n", calc, report.Errors[calc])
	}
	return buf.Bytes(), nil
}
