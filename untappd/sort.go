package untappd

import (
	"fmt"

	apperrors "github.com/kbukum/untappd/errors"
)

// SortOrder orders beer search results.
type SortOrder string

const (
	// SortDefault leaves ordering to the API and omits the parameter.
	SortDefault SortOrder = ""
	// SortCount orders by check-in count.
	SortCount SortOrder = "count"
	// SortName orders alphabetically.
	SortName SortOrder = "name"
)

// Value implements api.Enumeration.
func (s SortOrder) Value() (string, bool) {
	if s == SortDefault {
		return "", false
	}
	return string(s), true
}

// ParseSortOrder maps "", "count" and "name" onto a SortOrder.
func ParseSortOrder(s string) (SortOrder, error) {
	switch o := SortOrder(s); o {
	case SortDefault, SortCount, SortName:
		return o, nil
	default:
		return SortDefault, apperrors.InvalidArgument("sort", fmt.Sprintf("unknown sort order %q", s))
	}
}
