package api

import "github.com/samber/lo"

// orderedValues is a name to string mapping that remembers first-insertion
// order. Storing an empty value removes the name.
type orderedValues struct {
	names  []string
	values map[string]string
}

func newOrderedValues() *orderedValues {
	return &orderedValues{values: make(map[string]string)}
}

func (o *orderedValues) set(name, value string) {
	if value == "" {
		o.remove(name)
		return
	}
	if _, ok := o.values[name]; !ok {
		o.names = append(o.names, name)
	}
	o.values[name] = value
}

func (o *orderedValues) remove(name string) {
	if _, ok := o.values[name]; !ok {
		return
	}
	delete(o.values, name)
	o.names = lo.Without(o.names, name)
}

func (o *orderedValues) get(name string) (string, bool) {
	v, ok := o.values[name]
	return v, ok
}

func (o *orderedValues) each(fn func(name, value string)) {
	for _, name := range o.names {
		fn(name, o.values[name])
	}
}
