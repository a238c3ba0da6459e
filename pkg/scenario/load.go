package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoScenario indicates a document that defines no scenario at all.
	ErrNoScenario = errors.New("scenario: no scenarios defined")

	// ErrMixedDocument indicates top-level scenario fields next to a
	// "scenarios" list; shared values belong under "defaults".
	ErrMixedDocument = errors.New("scenario: top-level fields with a scenarios list (use defaults)")
)

// document accepts either a single inline scenario or a list under
// "scenarios", with an optional shared "defaults" block for the list.
type document struct {
	Scenario  `yaml:",inline"`
	Defaults  Scenario   `yaml:"defaults"`
	Scenarios []Scenario `yaml:"scenarios"`
}

// Load reads scenarios from the YAML file at path.
func Load(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	out, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

// Parse decodes a YAML document and merges every scenario over Defaults().
// Unknown keys are rejected, as are top-level scenario fields in list form.
// Scenarios without a name are called "scenario-<n>" (1-based) in list form.
func Parse(data []byte) ([]Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoScenario
		}
		return nil, fmt.Errorf("scenario: parse yaml: %w", err)
	}

	if len(doc.Scenarios) == 0 {
		if doc.Scenario == (Scenario{}) {
			return nil, ErrNoScenario
		}
		return []Scenario{Merge(Defaults(), doc.Scenario)}, nil
	}

	if doc.Scenario != (Scenario{}) {
		return nil, ErrMixedDocument
	}

	base := Merge(Defaults(), doc.Defaults)
	out := make([]Scenario, 0, len(doc.Scenarios))
	for i, sc := range doc.Scenarios {
		m := Merge(base, sc)
		if sc.Name == "" {
			m.Name = fmt.Sprintf("scenario-%d", i+1)
		}
		out = append(out, m)
	}
	return out, nil
}
