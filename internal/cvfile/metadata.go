package cvfile

// Metadata is the ordered key/value record extracted from the header region
// of an instrument export. Values are string, int64 or float64 depending on
// how the header line coerced. A record always carries a "Filename" key and
// is immutable once parsing returns it.
type Metadata struct {
	keys   []string
	values map[string]interface{}
}

// NewMetadata returns an empty record.
func NewMetadata() *Metadata {
	return &Metadata{values: make(map[string]interface{})}
}

// Set stores a value under key, preserving first-insertion order. Setting
// an existing key overwrites the value without changing its position.
func (m *Metadata) Set(key string, value interface{}) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Lookup returns the value stored under key.
func (m *Metadata) Lookup(key string) (interface{}, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (m *Metadata) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of stored keys.
func (m *Metadata) Len() int { return len(m.keys) }

// Filename returns the source file basename recorded during parsing.
func (m *Metadata) Filename() string {
	if v, ok := m.values["Filename"]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
