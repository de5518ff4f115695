package value

// Field is one entry of an Object. IsPatch distinguishes the two
// source syntaxes merge cares about: "key: value" (shallow overwrite)
// vs "key { ... }" (deep patch) — spec §4.6.
type Field struct {
	Name    string
	Value   Value // often a *Thunk
	IsPatch bool
}

// Object is an ordered field list (spec §3, "Object invariants"):
// field order is preserved, the first occurrence of a key establishes
// its position, and NewObject keeps keys unique. Object comprehensions
// build Fields directly and keep duplicate keys; Get returns the first.
type Object struct {
	Fields []*Field
	Doc    string
}

func (*Object) Kind() Kind { return KindObject }

// NewObject builds an Object from fields in source/merge order,
// collapsing duplicate keys by updating the earlier field in place
// (spec §3: "subsequent same-key extensions update in place").
func NewObject(fields []*Field) *Object {
	obj := &Object{}
	index := make(map[string]int, len(fields))
	for _, f := range fields {
		if i, ok := index[f.Name]; ok {
			obj.Fields[i] = f
			continue
		}
		index[f.Name] = len(obj.Fields)
		obj.Fields = append(obj.Fields, f)
	}
	return obj
}

// Get returns the first field with the given name.
func (o *Object) Get(name string) (*Field, bool) {
	for _, f := range o.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// Names returns the object's field names in order.
func (o *Object) Names() []string {
	names := make([]string, len(o.Fields))
	for i, f := range o.Fields {
		names[i] = f.Name
	}
	return names
}
