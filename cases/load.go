package cases

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// paramList accepts either a YAML sequence of names or one comma-separated
// scalar such as "values, pos, expected".
type paramList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *paramList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var names []string
		for _, part := range strings.Split(node.Value, ",") {
			if name := strings.TrimSpace(part); name != "" {
				names = append(names, name)
			}
		}
		*p = names
		return nil
	case yaml.SequenceNode:
		var names []string
		if err := node.Decode(&names); err != nil {
			return err
		}
		for i := range names {
			names[i] = strings.TrimSpace(names[i])
		}
		*p = names
		return nil
	default:
		return fmt.Errorf("line %d: params must be a list or a comma-separated string", node.Line)
	}
}

// rawSuite mirrors the on-disk layout.
type rawSuite struct {
	Problem string    `yaml:"problem"`
	Params  paramList `yaml:"params"`
	Cases   [][]any   `yaml:"cases"`
}

// Parse decodes and validates a case file held in memory.
func Parse(data []byte) (*Suite, error) {
	var raw rawSuite
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("cases: Parse: %w", err)
	}

	// 1) Header checks.
	slug := strings.TrimSpace(raw.Problem)
	if slug == "" {
		return nil, ErrNoProblem
	}
	if len(raw.Params) == 0 {
		return nil, fmt.Errorf("cases: Parse(%s): %w", slug, ErrNoParams)
	}
	seen := make(map[string]struct{}, len(raw.Params))
	for _, name := range raw.Params {
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("cases: Parse(%s): %q: %w", slug, name, ErrDuplicateParam)
		}
		seen[name] = struct{}{}
	}
	if _, ok := seen[ExpectedParam]; !ok {
		return nil, fmt.Errorf("cases: Parse(%s): %w", slug, ErrNoExpected)
	}
	if len(raw.Cases) == 0 {
		return nil, fmt.Errorf("cases: Parse(%s): %w", slug, ErrNoCases)
	}

	// 2) Rows must match the header arity.
	params := []string(raw.Params)
	s := &Suite{Problem: slug, Params: params, Cases: make([]Case, len(raw.Cases))}
	for i, row := range raw.Cases {
		if len(row) != len(params) {
			return nil, fmt.Errorf("cases: Parse(%s): case %d has %d values, want %d: %w",
				slug, i, len(row), len(params), ErrArity)
		}
		s.Cases[i] = Case{Index: i, Params: params, Values: row, Suite: slug}
	}

	return s, nil
}

// Load reads and parses the case file at file.
func Load(file string) (*Suite, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("cases: Load: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	s.Source = file

	return s, nil
}

// LoadDir parses every *.yaml / *.yml file directly inside dir.
func LoadDir(dir string) (map[string]*Suite, error) {
	suites, err := LoadFS(os.DirFS(dir), ".")
	if err != nil {
		return nil, err
	}
	for _, s := range suites {
		s.Source = filepath.Join(dir, filepath.FromSlash(s.Source))
	}

	return suites, nil
}

// LoadFS parses every *.yaml / *.yml file directly inside dir of fsys,
// keyed by problem slug. Files are visited in name order (fs.ReadDir sorts).
func LoadFS(fsys fs.FS, dir string) (map[string]*Suite, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("cases: LoadFS(%s): %w", dir, err)
	}

	suites := make(map[string]*Suite)
	for _, e := range entries {
		if e.IsDir() || !isCaseFile(e.Name()) {
			continue
		}
		name := path.Join(dir, e.Name())
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("cases: LoadFS: %w", err)
		}
		s, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if prev, dup := suites[s.Problem]; dup {
			return nil, fmt.Errorf("cases: LoadFS: %s and %s: %q: %w", prev.Source, name, s.Problem, ErrDuplicateProblem)
		}
		s.Source = name
		suites[s.Problem] = s
	}

	return suites, nil
}

func isCaseFile(name string) bool {
	ext := path.Ext(name)

	return ext == ".yaml" || ext == ".yml"
}
