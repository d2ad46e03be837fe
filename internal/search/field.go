package search

import "fmt"

// Field selects which part of a game a query is matched against.
type Field int

const (
	FieldName Field = iota
	FieldCategory
	FieldMechanic
)

// ParseField maps the wire/UI representation of a search field to its
// enum value. Unknown values are an error rather than a silent default.
func ParseField(s string) (Field, error) {
	switch s {
	case "", "name", "Name":
		return FieldName, nil
	case "category", "Category":
		return FieldCategory, nil
	case "mechanic", "Mechanic":
		return FieldMechanic, nil
	}
	return FieldName, fmt.Errorf("unknown search field %q", s)
}

func (f Field) String() string {
	switch f {
	case FieldCategory:
		return "Category"
	case FieldMechanic:
		return "Mechanic"
	default:
		return "Name"
	}
}
