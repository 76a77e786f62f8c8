package value

import "coreil/internal/rterrors"

// Pair is one key/value entry of a Map, exposed in insertion order.
type Pair struct {
	Key   Value
	Value Value
}

// Map is the insertion-ordered associative container of spec §4.6: a
// growable vector of pairs plus a side index from the key's serialization
// to its position, so lookups stay O(1) while iteration stays ordered.
type Map struct {
	entries []Pair
	index   map[string]int
}

func NewMap() *Map {
	return &Map{index: make(map[string]int)}
}

// MakeMap builds a Map from pairs in the given order, later duplicate
// keys overwriting earlier ones without moving position.
func MakeMap(pairs []Pair) *Map {
	m := NewMap()
	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}
	return m
}

// Set updates in place when the serialized key already exists, otherwise
// appends — it never reorders an existing key.
func (m *Map) Set(k, v Value) {
	key := Serialize(k)
	if i, ok := m.index[key]; ok {
		m.entries[i].Value = v
		return
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, Pair{Key: k, Value: v})
}

func (m *Map) Get(k Value) (Value, bool) {
	i, ok := m.index[Serialize(k)]
	if !ok {
		return nil, false
	}
	return m.entries[i].Value, true
}

func (m *Map) Contains(k Value) bool {
	_, ok := m.index[Serialize(k)]
	return ok
}

// Keys returns a fresh Array of keys in insertion order, decoupling
// iteration from later mutation (spec §5).
func (m *Map) Keys() *Array {
	keys := make([]Value, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.Key
	}
	return &Array{Elements: keys}
}

// Pairs returns the entries in insertion order. Callers must not mutate
// the returned slice's backing array.
func (m *Map) Pairs() []Pair { return m.entries }

func (m *Map) Len() int { return len(m.entries) }

// MapGet returns the entry's value or fails with MissingKey.
func MapGet(m *Map, k Value) (Value, error) {
	v, ok := m.Get(k)
	if !ok {
		return nil, rterrors.Newf(rterrors.MissingKey, "map_get", "key not found: %s", Repr(k))
	}
	return v, nil
}

// MapGetDefault returns the entry's value or def when absent.
func MapGetDefault(m *Map, k, def Value) Value {
	if v, ok := m.Get(k); ok {
		return v
	}
	return def
}
