package output_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpgo/corpfin-calculator/internal/calculation"
	"github.com/rpgo/corpfin-calculator/internal/domain"
	"github.com/rpgo/corpfin-calculator/internal/output"
)

func TestFormatters(t *testing.T) {
	if got := output.FormatCurrency(123.45); got != "$123.45" {
		t.Fatalf("FormatCurrency = %q", got)
	}
	if got := output.FormatPercentage(12.34); got != "12.34%" {
		t.Fatalf("FormatPercentage = %q", got)
	}
	if got := output.FormatMultiple(5.3125); got != "5.31x" {
		t.Fatalf("FormatMultiple = %q", got)
	}
	if got := output.FormatCompact(425_000_000); got != "$425.00M" {
		t.Fatalf("FormatCompact = %q", got)
	}
}

func defaultReport(t *testing.T) *domain.Report {
	t.Helper()
	cfg := domain.DefaultConfiguration()
	return &domain.Report{
		Inputs:    cfg,
		Wacc:      ptr(calculation.CalculateWACC(cfg.Wacc)),
		Dilution:  ptr(calculation.CalculateDilution(cfg.Dilution)),
		DebtStack: ptr(calculation.CalculateDebtStack(cfg.DebtStack)),
	}
}

func TestGenerateReport_JSON_CSV(t *testing.T) {
	dir := t.TempDir()
	report := defaultReport(t)

	paths, err := output.GenerateReport(report, "json", dir)
	if err != nil {
		t.Fatalf("GenerateReport json error: %v", err)
	}
	if len(paths) != 1 || filepath.Ext(paths[0]) != ".json" {
		t.Fatalf("unexpected paths %v", paths)
	}
	paths, err = output.GenerateReport(report, "csv-detailed", dir)
	if err != nil {
		t.Fatalf("GenerateReport csv error: %v", err)
	}
	if filepath.Ext(paths[0]) != ".csv" {
		t.Fatalf("detailed csv should use .csv, got %s", paths[0])
	}
}

func TestGenerateReport_All(t *testing.T) {
	dir := t.TempDir()
	paths, err := output.GenerateReport(defaultReport(t), "all", dir)
	if err != nil {
		t.Fatalf("GenerateReport all error: %v", err)
	}
	if len(paths) != len(output.AvailableFormatterNames()) {
		t.Fatalf("expected one file per formatter, got %d", len(paths))
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != len(paths) {
		t.Fatalf("expected %d files on disk, got %d", len(paths), len(entries))
	}
}

func TestUnknownFormatErrorIncludesSuggestions(t *testing.T) {
	_, err := output.GenerateReport(&domain.Report{}, "definitely-not-a-format", t.TempDir())
	if err == nil {
		t.Fatalf("expected error for unknown format")
	}
	if !errors.Is(err, output.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "unsupported report format") || !strings.Contains(msg, "Try one of:") {
		t.Fatalf("error message missing suggestions: %s", msg)
	}

	if _, err := output.Render(&domain.Report{}, "pdf"); !errors.Is(err, output.ErrUnsupportedFormat) {
		t.Fatalf("Render should reject unknown formats, got %v", err)
	}
}

func TestRenderEmptyReport(t *testing.T) {
	for _, name := range output.AvailableFormatterNames() {
		if _, err := output.Render(&domain.Report{}, name); err != nil {
			t.Fatalf("%s: empty report should render, got %v", name, err)
		}
	}
}

func ptr[T any](v T) *T { return &v }
