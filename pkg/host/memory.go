package host

import "lazyflex/pkg/layout"

// Memory is the keyed store owned by a Context. Values live as long as the
// Context does; writes replace earlier values for the same ID.
type Memory struct {
	values map[layout.ID]any
}

func NewMemory() *Memory {
	return &Memory{values: make(map[layout.ID]any)}
}

func (m *Memory) Get(id layout.ID) (any, bool) {
	v, ok := m.values[id]
	return v, ok
}

func (m *Memory) Set(id layout.ID, value any) {
	m.values[id] = value
}

// Forget removes the value stored for id.
func (m *Memory) Forget(id layout.ID) {
	delete(m.values, id)
}

func (m *Memory) Len() int {
	return len(m.values)
}

// Clear removes every stored value.
func (m *Memory) Clear() {
	m.values = make(map[layout.ID]any)
}
