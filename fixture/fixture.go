// Package fixture loads and runs file-based patch test suites.
//
// A suite is a list of records, each holding a document, a patch, and either
// an expected result or an expected failure. Suites are stored as JSON or
// YAML files and follow the record shape used by the json-patch-tests
// project: {comment, doc, patch, expected, error, disabled}.
package fixture

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/treediff/treediff"
)

// Record is a single fixture case.
type Record struct {
	Comment  string      `json:"comment,omitempty" yaml:"comment,omitempty"`
	Doc      interface{} `json:"doc" yaml:"doc"`
	Patch    interface{} `json:"patch" yaml:"patch"`
	Expected interface{} `json:"expected,omitempty" yaml:"expected,omitempty"`
	Error    string      `json:"error,omitempty" yaml:"error,omitempty"`
	Disabled bool        `json:"disabled,omitempty" yaml:"disabled,omitempty"`
}

// Suite is an ordered list of records.
type Suite []Record

// Load reads a suite from r. Format is selected by ext, the lowercased file
// extension including the dot; ".yaml" and ".yml" decode as YAML, anything
// else as JSON.
func Load(r io.Reader, ext string) (Suite, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading suite: %w", err)
	}

	var s Suite
	switch ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &s)
	default:
		err = json.Unmarshal(data, &s)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding suite: %w", err)
	}
	return s, nil
}

// LoadFile reads a suite from path, selecting the format by file extension.
func LoadFile(path string) (Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening suite: %w", err)
	}
	defer f.Close()

	return Load(f, strings.ToLower(filepath.Ext(path)))
}

// Result is the outcome of running one record.
type Result struct {
	Comment string
	Passed  bool
	Skipped bool
	Reason  string // failure explanation, empty on pass or skip
}

// Summary aggregates the outcomes of a whole suite.
type Summary struct {
	Passed  int
	Failed  int
	Skipped int
	Results []Result
}

// Failures returns the results of failed records.
func (s Summary) Failures() []Result {
	var out []Result
	for _, r := range s.Results {
		if !r.Passed && !r.Skipped {
			out = append(out, r)
		}
	}
	return out
}

// Run executes a single record: it applies the record's patch to its
// document and checks the outcome. Records marked disabled are skipped.
// A record with a non-empty error field passes when application fails;
// otherwise application must succeed, and when the record carries an
// expected value the result must be equal to it under the engine's
// canonical equality.
func Run(rec Record, compat bool) Result {
	res := Result{Comment: rec.Comment}
	if rec.Disabled {
		res.Skipped = true
		return res
	}

	patch, err := parsePatch(rec.Patch)
	if err != nil {
		if rec.Error != "" {
			res.Passed = true
			return res
		}
		res.Reason = fmt.Sprintf("parsing patch: %s", err)
		return res
	}

	result, err := treediff.Apply(rec.Doc, patch, compat)
	if rec.Error != "" {
		if err == nil {
			res.Reason = fmt.Sprintf("expected failure %q, patch succeeded", rec.Error)
			return res
		}
		res.Passed = true
		return res
	}
	if err != nil {
		res.Reason = fmt.Sprintf("applying patch: %s", err)
		return res
	}
	if rec.Expected != nil && !treediff.ConsideredEqual(result, rec.Expected) {
		gotData, _ := json.Marshal(result)
		wantData, _ := json.Marshal(rec.Expected)
		res.Reason = fmt.Sprintf("result mismatch: want %s, got %s", wantData, gotData)
		return res
	}

	res.Passed = true
	return res
}

// RunSuite runs every record in a suite and aggregates the outcomes.
func RunSuite(s Suite, compat bool) Summary {
	sum := Summary{Results: make([]Result, 0, len(s))}
	for _, rec := range s {
		res := Run(rec, compat)
		switch {
		case res.Skipped:
			sum.Skipped++
		case res.Passed:
			sum.Passed++
		default:
			sum.Failed++
		}
		sum.Results = append(sum.Results, res)
	}
	return sum
}

// parsePatch normalizes a decoded patch value through its JSON wire form.
// Suites decoded from YAML arrive as generic maps and lists; round-tripping
// through JSON funnels both formats into the engine's operation parser.
func parsePatch(v interface{}) (treediff.Patch, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return treediff.ParsePatch(data)
}
