package scheme

import "sort"

// Param is a single key/value pair carried by a Scheme.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered mapping of string keys to string values.
// Order is kept so that a Scheme round-trips through its URL form unchanged,
// but it carries no meaning: Equal ignores it.
//
// Params values are treated as immutable. Methods that change the mapping
// return a new Params.
type Params []Param

// NewParams builds Params from alternating keys and values.
// A trailing key without a value is given the empty string.
func NewParams(kv ...string) Params {
	var p Params
	for i := 0; i < len(kv); i += 2 {
		value := ""
		if i+1 < len(kv) {
			value = kv[i+1]
		}
		p = p.With(kv[i], value)
	}
	return p
}

// FromMap builds Params from a map. Keys are sorted so the result is stable.
func FromMap(m map[string]string) Params {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	p := make(Params, 0, len(keys))
	for _, k := range keys {
		p = append(p, Param{Key: k, Value: m[k]})
	}
	return p
}

// Get returns the value stored under key.
func (p Params) Get(key string) (string, bool) {
	for _, param := range p {
		if param.Key == key {
			return param.Value, true
		}
	}
	return "", false
}

// With returns a copy of p with key set to value. An existing key keeps
// its position and takes the new value.
func (p Params) With(key, value string) Params {
	out := p.Clone()
	for i := range out {
		if out[i].Key == key {
			out[i].Value = value
			return out
		}
	}
	return append(out, Param{Key: key, Value: value})
}

// Len returns the number of parameters.
func (p Params) Len() int {
	return len(p)
}

// Clone returns an independent copy of p.
func (p Params) Clone() Params {
	if len(p) == 0 {
		return nil
	}
	out := make(Params, len(p))
	copy(out, p)
	return out
}

// Map returns the parameters as a plain map.
func (p Params) Map() map[string]string {
	m := make(map[string]string, len(p))
	for _, param := range p {
		m[param.Key] = param.Value
	}
	return m
}

// Equal reports whether p and o hold the same keys and values, in any order.
func (p Params) Equal(o Params) bool {
	if len(p) != len(o) {
		return false
	}
	for _, param := range p {
		v, ok := o.Get(param.Key)
		if !ok || v != param.Value {
			return false
		}
	}
	return true
}
