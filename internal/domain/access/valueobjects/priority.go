package valueobjects

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

var (
	ErrEmptyPriorityName     = errors.New("priority name cannot be empty")
	ErrDuplicatePriorityName = errors.New("duplicate priority name")
)

// Priority weights one policy name. Higher weight wins.
type Priority struct {
	Name   string
	Weight int
}

// PriorityTable resolves policy names to weights case-insensitively.
// It is immutable once built and safe for concurrent use.
type PriorityTable struct {
	weights       map[string]int
	defaultWeight int
}

// NewPriorityTable builds a table; empty or duplicated names (after case
// folding) are configuration errors.
func NewPriorityTable(priorities []Priority, defaultWeight int) (*PriorityTable, error) {
	weights := make(map[string]int, len(priorities))
	for _, p := range priorities {
		if strings.TrimSpace(p.Name) == "" {
			return nil, ErrEmptyPriorityName
		}
		key := foldName(p.Name)
		if _, exists := weights[key]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePriorityName, p.Name)
		}
		weights[key] = p.Weight
	}

	return &PriorityTable{
		weights:       weights,
		defaultWeight: defaultWeight,
	}, nil
}

// Weight returns the configured weight for name, or the default weight.
func (t *PriorityTable) Weight(name string) int {
	if w, ok := t.weights[foldName(name)]; ok {
		return w
	}
	return t.defaultWeight
}

func (t *PriorityTable) DefaultWeight() int {
	return t.defaultWeight
}

func (t *PriorityTable) Len() int {
	return len(t.weights)
}

// cases.Caser is stateful, a fresh one per call keeps the table shareable.
func foldName(name string) string {
	return cases.Fold().String(name)
}
