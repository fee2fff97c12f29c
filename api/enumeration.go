package api

import "github.com/modern-go/reflect2"

// Enumeration is implemented by closed-set parameter values such as a sort
// order. Value returns the canonical wire string, or false when the value
// stands for "no value" and the parameter must be omitted.
type Enumeration interface {
	Value() (string, bool)
}

// enumValue resolves e to its wire string. A nil enumeration (typed nil
// pointers included), a false result and an empty string all mean omission.
func enumValue(e Enumeration) (string, bool) {
	if reflect2.IsNil(e) {
		return "", false
	}
	v, ok := e.Value()
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
