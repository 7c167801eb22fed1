package output

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rpgo/corpfin-calculator/internal/domain"
)

// ErrUnsupportedFormat is returned when a format name resolves to no formatter.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// UnsupportedFormatError enriches ErrUnsupportedFormat with the available names.
func UnsupportedFormatError(format string) error {
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// Render formats a report with the named formatter.
func Render(report *domain.Report, format string) ([]byte, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return nil, UnsupportedFormatError(format)
	}
	return f.Format(report)
}

// GenerateReport writes the report to dir in the named format and returns the
// written paths. The pseudo-format "all" writes every registered format.
func GenerateReport(report *domain.Report, format, dir string) ([]string, error) {
	if strings.EqualFold(strings.TrimSpace(format), "all") {
		var paths []string
		for _, f := range builtInFormatters {
			path, err := WriteFormatted(f, report, dir, Extension(f.Name()))
			if err != nil {
				return paths, fmt.Errorf("%s: %w", f.Name(), err)
			}
			paths = append(paths, path)
		}
		return paths, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		return nil, UnsupportedFormatError(format)
	}
	path, err := WriteFormatted(f, report, dir, Extension(f.Name()))
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}
