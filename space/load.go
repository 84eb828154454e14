package space

import (
	"io"
	"maps"
	"os"
	"slices"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Document is the YAML form of a string-keyed Problem:
//
//	initial: A
//	goal: L
//	heuristics: {A: 6, B: 5, L: 0}
//	edges:
//	  A: [{to: B, weight: 1}, {to: L, weight: 9}]
//	  B: [{to: L, weight: 4}]
//
// Every state must carry a heuristic. Edge lists keep their order.
type Document struct {
	Initial    string                    `yaml:"initial"`
	Goal       string                    `yaml:"goal"`
	Heuristics map[string]float64        `yaml:"heuristics"`
	Edges      map[string][]EdgeDocument `yaml:"edges"`
}

type EdgeDocument struct {
	To     string  `yaml:"to"`
	Weight float64 `yaml:"weight"`
}

// Load reads a Problem from the YAML file at path.
func Load(path string) (*Problem[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open graph file")
	}
	defer f.Close()

	problem, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load graph from %s", path)
	}
	return problem, nil
}

func Decode(r io.Reader) (*Problem[string], error) {
	var doc Document
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse graph document")
	}
	return doc.Problem()
}

// Problem validates the document and builds its Table.
func (doc Document) Problem() (*Problem[string], error) {
	if doc.Initial == "" || doc.Goal == "" {
		return nil, errors.New("graph document needs both initial and goal")
	}
	for _, state := range []string{doc.Initial, doc.Goal} {
		if _, ok := doc.Heuristics[state]; !ok {
			return nil, errors.Errorf("state %q has no heuristic", state)
		}
	}

	t := NewTable[string]()
	for _, state := range slices.Sorted(maps.Keys(doc.Heuristics)) {
		h := doc.Heuristics[state]
		if h < 0 {
			return nil, errors.Errorf("state %q has negative heuristic %g", state, h)
		}
		t.SetHeuristic(state, h)
	}

	for _, from := range slices.Sorted(maps.Keys(doc.Edges)) {
		if !t.Has(from) {
			return nil, errors.Errorf("state %q has edges but no heuristic", from)
		}
		for i, edge := range doc.Edges[from] {
			if !t.Has(edge.To) {
				return nil, errors.Errorf("edge %d of %q leads to unknown state %q", i, from, edge.To)
			}
			if edge.Weight < 0 {
				return nil, errors.Errorf("edge %s-%s has negative weight %g", from, edge.To, edge.Weight)
			}
			t.AddEdge(from, edge.To, edge.Weight)
		}
	}

	return &Problem[string]{Graph: t, Initial: doc.Initial, Goal: doc.Goal}, nil
}
