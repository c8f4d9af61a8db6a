// SPDX-License-Identifier: MIT

package problem

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/Niceman228/matrix-task-status-diagnostics/analysis"
	"github.com/Niceman228/matrix-task-status-diagnostics/incidence"
)

var (
	// ErrUnsupportedFormat indicates a file extension no decoder handles.
	ErrUnsupportedFormat = errors.New("problem: unsupported file format")

	// ErrInvalid wraps struct validation failures.
	ErrInvalid = errors.New("problem: invalid problem")

	// ErrBadIndex indicates a selection entry that is neither an index nor
	// a P-label.
	ErrBadIndex = errors.New("problem: bad parameter index")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Problem is one analysis request: a mode, a matrix and the selections.
type Problem struct {
	Name       string        `yaml:"name" json:"name,omitempty"`
	Mode       analysis.Mode `yaml:"mode" json:"mode" validate:"required,oneof=status pair link"`
	Matrix     [][]int       `yaml:"matrix" json:"matrix,omitempty" validate:"required_without=MatrixFile,dive,dive,oneof=0 1"`
	MatrixFile string        `yaml:"matrix_file" json:"matrixFile,omitempty"`
	Sheet      string        `yaml:"sheet" json:"sheet,omitempty"`

	Known    IndexList `yaml:"known" json:"known,omitempty"`
	Required IndexList `yaml:"required" json:"required,omitempty"`

	Inputs  IndexList `yaml:"inputs" json:"inputs,omitempty"`
	Targets IndexList `yaml:"targets" json:"targets,omitempty"`

	FirstInputs  IndexList `yaml:"first_inputs" json:"firstInputs,omitempty"`
	SecondInputs IndexList `yaml:"second_inputs" json:"secondInputs,omitempty"`
	Analysis     IndexList `yaml:"analysis" json:"analysis,omitempty"`
}

// Validate checks the struct tags.
func (p *Problem) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// Adapter builds the analysis adapter for p.Mode.
func (p *Problem) Adapter() (analysis.Adapter, error) {
	switch p.Mode {
	case analysis.ModeStatus:
		return analysis.StatusMode{Known: p.Known, Required: p.Required}, nil
	case analysis.ModePair:
		return analysis.PairMode{Inputs: p.Inputs, Targets: p.Targets}, nil
	case analysis.ModeLink:
		return analysis.LinkMode{
			FirstInputs:  p.FirstInputs,
			SecondInputs: p.SecondInputs,
			Analysis:     p.Analysis,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", analysis.ErrUnknownMode, p.Mode)
	}
}

// Build validates p and returns its matrix and adapter.
func (p *Problem) Build() (*incidence.Matrix, analysis.Adapter, error) {
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}
	m, err := incidence.FromRows(p.Matrix)
	if err != nil {
		return nil, nil, fmt.Errorf("problem: matrix: %w", err)
	}
	a, err := p.Adapter()
	if err != nil {
		return nil, nil, err
	}

	return m, a, nil
}

// Load reads a problem file, resolves matrix_file relative to it and
// validates the result.
func Load(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("problem: read %s: %w", path, err)
	}
	p, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("problem: %s: %w", path, err)
	}

	if p.MatrixFile != "" && len(p.Matrix) == 0 {
		mf := p.MatrixFile
		if !filepath.IsAbs(mf) {
			mf = filepath.Join(filepath.Dir(path), mf)
		}
		m, err := LoadMatrix(mf, p.Sheet)
		if err != nil {
			return nil, err
		}
		p.Matrix = m.ToRows()
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Parse decodes a problem from data; ext selects YAML (".yaml", ".yml")
// or JSON (".json"). Unknown fields are rejected. Parse does not validate.
func Parse(data []byte, ext string) (*Problem, error) {
	var p Problem
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&p); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&p); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	return &p, nil
}

// IndexList is a list of zero-based parameter indices that also accepts
// labels such as "P3" (index 2) when decoded. A present but empty list
// decodes to a non-nil empty slice.
type IndexList []int

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *IndexList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("%w: line %d: expected a list", ErrBadIndex, node.Line)
	}
	out := make(IndexList, 0, len(node.Content))
	for _, item := range node.Content {
		idx, err := parseIndex(item.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", item.Line, err)
		}
		out = append(out, idx)
	}
	*l = out

	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *IndexList) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: expected a list", ErrBadIndex)
	}
	out := make(IndexList, 0, len(raw))
	for _, item := range raw {
		var s string
		if err := json.Unmarshal(item, &s); err != nil {
			s = string(item)
		}
		idx, err := parseIndex(s)
		if err != nil {
			return err
		}
		out = append(out, idx)
	}
	*l = out

	return nil
}

// parseIndex accepts "2" (zero-based) or "P3"/"p3" (one-based label).
// Range checks happen later, against the matrix width.
func parseIndex(s string) (int, error) {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(strings.ToUpper(s), incidence.ColPrefix); ok {
		n, err := strconv.Atoi(rest)
		if err != nil || n < 1 {
			return 0, fmt.Errorf("%w: %q", ErrBadIndex, s)
		}

		return n - 1, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadIndex, s)
	}

	return n, nil
}

// ParseIndexList parses command-line style entries ("2", "P3") into an
// IndexList. A nil input yields nil.
func ParseIndexList(items []string) (IndexList, error) {
	if items == nil {
		return nil, nil
	}
	out := make(IndexList, 0, len(items))
	for _, s := range items {
		idx, err := parseIndex(s)
		if err != nil {
			return nil, err
		}
		out = append(out, idx)
	}

	return out, nil
}
