// SPDX-License-Identifier: MIT

package timing

const methodNewSet = "NewSet"

// Set is an ordered, immutable collection of uniquely named candidates.
type Set[T any] struct {
	cands []Candidate[T]
}

// NewSet validates and freezes cands in the given order.
// Stage 1 (Validate): at least one candidate; names non-empty and unique;
// every candidate built by Func/Same/Spread (the zero Candidate is rejected).
// Stage 2 (Finalize): copy the slice so later edits by the caller are invisible.
// Complexity: O(k).
func NewSet[T any](cands ...Candidate[T]) (*Set[T], error) {
	if len(cands) == 0 {
		return nil, configErrorf(methodNewSet, "no candidates")
	}
	seen := make(map[string]struct{}, len(cands))
	for i, c := range cands {
		if c.name == "" {
			return nil, configErrorf(methodNewSet, "candidate %d has an empty name", i)
		}
		if c.bind == nil {
			return nil, configErrorf(methodNewSet, "candidate %q was not constructed", c.name)
		}
		if _, dup := seen[c.name]; dup {
			return nil, configErrorf(methodNewSet, "duplicate candidate name %q", c.name)
		}
		seen[c.name] = struct{}{}
	}
	frozen := make([]Candidate[T], len(cands))
	copy(frozen, cands)

	return &Set[T]{cands: frozen}, nil
}

// Len returns the number of candidates; 0 for a nil Set.
func (s *Set[T]) Len() int {
	if s == nil {
		return 0
	}

	return len(s.cands)
}

// Names returns candidate names in insertion order.
func (s *Set[T]) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, len(s.cands))
	for i, c := range s.cands {
		names[i] = c.name
	}

	return names
}
