package value

import "coreil/internal/rterrors"

// Field is one name/value entry of a Record, exposed in insertion order.
type Field struct {
	Name  string
	Value Value
}

// Record is a Map specialization with string-typed keys and dedicated
// field accessors (spec §4.6). It formats identically to Map and is
// always truthy regardless of field count.
type Record struct {
	fields []Field
	index  map[string]int
}

func NewRecord() *Record {
	return &Record{index: make(map[string]int)}
}

func MakeRecord(fields []Field) *Record {
	r := NewRecord()
	for _, f := range fields {
		r.SetField(f.Name, f.Value)
	}
	return r
}

func (r *Record) SetField(name string, v Value) {
	if i, ok := r.index[name]; ok {
		r.fields[i].Value = v
		return
	}
	r.index[name] = len(r.fields)
	r.fields = append(r.fields, Field{Name: name, Value: v})
}

func (r *Record) GetField(name string) (Value, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.fields[i].Value, true
}

func (r *Record) Fields() []Field { return r.fields }
func (r *Record) Len() int        { return len(r.fields) }

// GetFieldOrFail is the `get_field` operation: fails with MissingKey if
// name is not present.
func GetFieldOrFail(r *Record, name string) (Value, error) {
	v, ok := r.GetField(name)
	if !ok {
		return nil, rterrors.Newf(rterrors.MissingKey, "get_field", "no such field: %s", name)
	}
	return v, nil
}
