package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rpgo/corpfin-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// requiredSections are the top-level keys every workbook must carry.
var requiredSections = []string{"wacc", "dilution", "debt_stack"}

// InputParser handles parsing of input workbook files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a workbook from a YAML (or JSON) file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a workbook. Unknown keys are rejected so that a
// misspelt input does not silently fall back to zero.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var sections map[string]yaml.Node
	if err := yaml.Unmarshal(data, &sections); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	for _, key := range requiredSections {
		if _, ok := sections[key]; !ok {
			return nil, fmt.Errorf("missing required section %q", key)
		}
	}

	var config domain.Configuration
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Blank tranche names take their canonical value.
	for i := range config.DebtStack.Tranches {
		if config.DebtStack.Tranches[i].Name == "" {
			config.DebtStack.Tranches[i].Name = domain.TrancheNames[i]
		}
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration performs structural checks on a workbook. Numeric
// ranges are left to the calculators, which report them according to the
// engine's error policy.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config == nil {
		return fmt.Errorf("configuration is nil")
	}

	for i, tranche := range config.DebtStack.Tranches {
		if tranche.Name != domain.TrancheNames[i] {
			return fmt.Errorf("debt_stack.tranches[%d]: expected %q, got %q", i, domain.TrancheNames[i], tranche.Name)
		}
		if !tranche.Seniority.Valid() {
			return fmt.Errorf("debt_stack.tranches[%d]: invalid seniority class %q", i, tranche.Seniority)
		}
	}

	return nil
}

// CreateExampleConfiguration creates the default workbook
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	config := domain.DefaultConfiguration()
	return &config
}

// SaveConfiguration writes a workbook as YAML, creating parent directories as needed
func (ip *InputParser) SaveConfiguration(config *domain.Configuration, filename string) error {
	data, err := ip.Marshal(config)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// Marshal encodes a workbook as YAML
func (ip *InputParser) Marshal(config *domain.Configuration) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(config); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	return buf.Bytes(), nil
}
