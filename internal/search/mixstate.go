package search

import "github.com/osse101/BlendBot_Go/internal/domain"

// MixState is one candidate recipe: an ordered list of catalog indices plus
// a running cost in cents. Append and RemoveLast are O(1); the cost always
// equals the sum of the referenced substances' costs.
type MixState struct {
	indices   []int
	costCents int
}

// NewMixState creates an empty state with capacity for maxDepth substances.
func NewMixState(maxDepth int) *MixState {
	return &MixState{indices: make([]int, 0, maxDepth)}
}

// Append pushes a substance index onto the recipe.
func (m *MixState) Append(index int, substances []domain.Substance) {
	m.indices = append(m.indices, index)
	m.costCents += substances[index].CostCents
}

// RemoveLast pops the most recently appended substance (backtrack).
func (m *MixState) RemoveLast(substances []domain.Substance) {
	if len(m.indices) == 0 {
		return
	}
	last := m.indices[len(m.indices)-1]
	m.indices = m.indices[:len(m.indices)-1]
	m.costCents -= substances[last].CostCents
}

// Len returns the recipe length (its depth).
func (m *MixState) Len() int {
	return len(m.indices)
}

// CostCents returns the running cost of the recipe.
func (m *MixState) CostCents() int {
	return m.costCents
}

// Clone returns an independent copy of the state.
func (m *MixState) Clone() *MixState {
	c := &MixState{
		indices:   make([]int, len(m.indices), cap(m.indices)),
		costCents: m.costCents,
	}
	copy(c.indices, m.indices)
	return c
}

// Names resolves the recipe to substance names for result reporting.
func (m *MixState) Names(substances []domain.Substance) []string {
	names := make([]string, len(m.indices))
	for i, idx := range m.indices {
		names[i] = substances[idx].Name
	}
	return names
}
