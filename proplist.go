package gsound

import "sort"

// Prop is a single attribute key/value pair.
type Prop struct {
	Key   string
	Value string
}

// Proplist is an ordered collection of string attributes describing a sound
// event. Keys are an open, engine-defined vocabulary; the binding does not
// validate key names.
type Proplist struct {
	props []Prop
}

// NewProplist builds a property list from alternating key/value arguments.
// An odd number of arguments leaves the last key without a value and fails
// with ErrMissingValue.
func NewProplist(pairs ...string) (*Proplist, error) {
	if len(pairs)%2 != 0 {
		return nil, ErrMissingValue
	}
	pl := &Proplist{}
	for i := 0; i < len(pairs); i += 2 {
		pl.Set(pairs[i], pairs[i+1])
	}
	return pl, nil
}

// ProplistFromMap builds a property list from attrs. Keys are inserted in
// sorted order so the resulting list is deterministic.
func ProplistFromMap(attrs map[string]string) *Proplist {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pl := &Proplist{}
	for _, k := range keys {
		pl.Set(k, attrs[k])
	}
	return pl
}

// Set stores value under key. An existing key keeps its position and gets the
// new value; a new key is appended.
func (pl *Proplist) Set(key, value string) {
	for i := range pl.props {
		if pl.props[i].Key == key {
			pl.props[i].Value = value
			return
		}
	}
	pl.props = append(pl.props, Prop{Key: key, Value: value})
}

// Get returns the value stored under key.
func (pl *Proplist) Get(key string) (string, bool) {
	for i := range pl.props {
		if pl.props[i].Key == key {
			return pl.props[i].Value, true
		}
	}
	return "", false
}

// Len returns the number of attributes in the list.
func (pl *Proplist) Len() int {
	return len(pl.props)
}

// Props returns the attributes in insertion order.
func (pl *Proplist) Props() []Prop {
	out := make([]Prop, len(pl.props))
	copy(out, pl.props)
	return out
}

// Merged returns a new list holding pl overlaid with overrides: on key
// collision the override value wins, keys unique to either side are kept.
// overrides may be nil.
func (pl *Proplist) Merged(overrides *Proplist) *Proplist {
	out := &Proplist{props: make([]Prop, len(pl.props))}
	copy(out.props, pl.props)
	if overrides != nil {
		for _, p := range overrides.props {
			out.Set(p.Key, p.Value)
		}
	}
	return out
}
