package window

// bimap is a two-way map whose bindings never change once made.
type bimap[K, V comparable] struct {
	forward map[K]V
	reverse map[V]K
}

func newBimap[K, V comparable](hint int) *bimap[K, V] {
	return &bimap[K, V]{
		forward: make(map[K]V, hint),
		reverse: make(map[V]K, hint),
	}
}

// bind records k↔v if neither side is bound yet, and reports whether the
// pair agrees with the existing bindings in both directions.
func (m *bimap[K, V]) bind(k K, v V) bool {
	if got, ok := m.forward[k]; ok && got != v {
		return false
	}
	if got, ok := m.reverse[v]; ok && got != k {
		return false
	}
	m.forward[k] = v
	m.reverse[v] = k

	return true
}
