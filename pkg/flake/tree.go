package flake

// Node is a value in the flake introspection document
type Node interface {
	isNode()
}

// ScalarKind identifies the JSON type of a Scalar
type ScalarKind int

const (
	NullScalar ScalarKind = iota
	StringScalar
	NumberScalar
	BoolScalar
)

// Entry is a single key/value pair of a Mapping
type Entry struct {
	Key   string
	Value Node
}

// Mapping is a JSON object with its keys in document order
type Mapping struct {
	Entries []Entry
}

// Sequence is a JSON array
type Sequence struct {
	Items []Node
}

// Scalar is a JSON string, number, boolean or null. Text holds the decoded
// string for strings and the literal text otherwise.
type Scalar struct {
	Kind ScalarKind
	Text string
}

func (*Mapping) isNode()  {}
func (*Sequence) isNode() {}
func (*Scalar) isNode()   {}

// Get returns the value stored under key
func (m *Mapping) Get(key string) (Node, bool) {
	for _, e := range m.Entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Len returns the number of entries
func (m *Mapping) Len() int {
	return len(m.Entries)
}

// set stores value under key. A repeated key replaces the earlier value in
// place, matching how JSON decoders resolve duplicates.
func (m *Mapping) set(key string, value Node) {
	for i := range m.Entries {
		if m.Entries[i].Key == key {
			m.Entries[i].Value = value
			return
		}
	}
	m.Entries = append(m.Entries, Entry{Key: key, Value: value})
}
