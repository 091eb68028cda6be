package scenario

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/katalvlaran/pathlab/core"
)

var (
	// ErrNoFiles indicates that no .hcl file was found under the given paths.
	ErrNoFiles = errors.New("scenario: no .hcl files found")

	// ErrDuplicateQuery indicates two query blocks with the same name.
	ErrDuplicateQuery = errors.New("scenario: duplicate query name")
)

// Scenario is the decoded content of one or more scenario files.
type Scenario struct {
	Nodes   []string
	Edges   []Edge
	Queries []Query
}

// Edge is one declared edge. Weight is nil when absent, a float64 for
// numeric literals, or a string to be parsed by core.ParseWeight.
type Edge struct {
	From   string
	To     string
	Weight any
	Range  hcl.Range
}

// Query is one named shortest-path request. An empty End means no target.
type Query struct {
	Name  string
	Start string
	End   string
}

type fileRoot struct {
	Nodes   []*nodeBlock  `hcl:"node,block"`
	Edges   []*edgeBlock  `hcl:"edge,block"`
	Queries []*queryBlock `hcl:"query,block"`
}

type nodeBlock struct {
	ID string `hcl:"id,label"`
}

type edgeBlock struct {
	From   string         `hcl:"from,label"`
	To     string         `hcl:"to,label"`
	Weight hcl.Expression `hcl:"weight,optional"`
}

type queryBlock struct {
	Name  string `hcl:"name,label"`
	Start string `hcl:"start"`
	End   string `hcl:"end,optional"`
}

// Parse decodes a single scenario held in src. filename is used in
// diagnostics only.
func Parse(src []byte, filename string) (*Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("scenario: parse %s: %w", filename, diags)
	}

	sc := &Scenario{}
	if err := sc.merge(file, filename); err != nil {
		return nil, err
	}

	return sc, nil
}

// merge decodes file and appends its blocks to sc.
func (sc *Scenario) merge(file *hcl.File, filename string) error {
	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return fmt.Errorf("scenario: decode %s: %w", filename, diags)
	}

	for _, n := range root.Nodes {
		sc.Nodes = append(sc.Nodes, n.ID)
	}
	for _, e := range root.Edges {
		w, err := evalWeight(e.Weight)
		if err != nil {
			return fmt.Errorf("scenario: edge %q → %q at %s: %w", e.From, e.To, e.Weight.Range(), err)
		}
		sc.Edges = append(sc.Edges, Edge{From: e.From, To: e.To, Weight: w, Range: e.Weight.Range()})
	}
	for _, q := range root.Queries {
		for _, prev := range sc.Queries {
			if prev.Name == q.Name {
				return fmt.Errorf("%w: %q in %s", ErrDuplicateQuery, q.Name, filename)
			}
		}
		sc.Queries = append(sc.Queries, Query{Name: q.Name, Start: q.Start, End: q.End})
	}

	return nil
}

// evalWeight evaluates a weight expression without variables or functions.
func evalWeight(expr hcl.Expression) (any, error) {
	if expr == nil {
		return nil, nil
	}
	v, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}

	switch {
	case v.IsNull():
		return nil, nil
	case !v.IsKnown():
		return nil, fmt.Errorf("%w: weight is not a constant", core.ErrInvalidWeight)
	case v.Type() == cty.Number:
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, fmt.Errorf("%w: %v", core.ErrInvalidWeight, err)
		}
		return f, nil
	case v.Type() == cty.String:
		return v.AsString(), nil
	default:
		return nil, fmt.Errorf("%w: weight must be a number or a string, got %s",
			core.ErrInvalidWeight, v.Type().FriendlyName())
	}
}
