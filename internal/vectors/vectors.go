// ABOUTME: YAML-defined suites of wire documents with expected outcomes
// ABOUTME: Runs each document through the codec and collects pass/fail results

package vectors

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/harper/jrpc/internal/jsonrpc"
)

// Vector is one named wire document with its expected outcome: "ok" for a
// document that must decode, "fail" for one that must be rejected. An
// optional Contains substring is matched against the decode error.
type Vector struct {
	Name     string `yaml:"name"`
	Document string `yaml:"document"`
	Want     string `yaml:"want"`
	Contains string `yaml:"contains,omitempty"`
}

type Suite struct {
	Vectors []Vector `yaml:"vectors"`
}

// Result is the outcome of running one vector.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// LoadSuite reads a YAML vector suite from path.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading vector suite: %w", err)
	}

	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("parsing vector suite: %w", err)
	}

	for i, v := range suite.Vectors {
		if v.Want != "ok" && v.Want != "fail" {
			return nil, fmt.Errorf("vector %d (%s): want must be 'ok' or 'fail', got %q", i, v.Name, v.Want)
		}
	}

	return &suite, nil
}

// Run decodes every vector's document, sniffing batch vs single message by
// the document's top-level shape.
func (s *Suite) Run() []Result {
	results := make([]Result, 0, len(s.Vectors))
	for _, v := range s.Vectors {
		results = append(results, run(v))
	}

	return results
}

func run(v Vector) Result {
	doc := strings.TrimSpace(v.Document)

	var err error
	if strings.HasPrefix(doc, "[") {
		_, err = jsonrpc.DecodeBatch([]byte(doc))
	} else {
		_, err = jsonrpc.DecodeMessage([]byte(doc))
	}

	switch v.Want {
	case "ok":
		if err != nil {
			return Result{Name: v.Name, Detail: fmt.Sprintf("expected decode to succeed, got: %v", err)}
		}
	case "fail":
		if err == nil {
			return Result{Name: v.Name, Detail: "expected decode to fail, it succeeded"}
		}
		if v.Contains != "" && !strings.Contains(err.Error(), v.Contains) {
			return Result{Name: v.Name, Detail: fmt.Sprintf("error %q does not contain %q", err, v.Contains)}
		}
	}

	return Result{Name: v.Name, Passed: true}
}
