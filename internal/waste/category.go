package waste

import "strings"

// Category is one of the four closed classification outcomes.
type Category string

const (
	Recyclable  Category = "Recyclable"
	Compostable Category = "Compostable"
	Trash       Category = "Trash"
	Unknown     Category = "Unknown"
)

// All returns the canonical categories in display order.
func All() []Category {
	return []Category{Recyclable, Compostable, Trash, Unknown}
}

// Parse resolves a string to a canonical category after case normalization.
// Returns Unknown and false when the string names no canonical category.
func Parse(s string) (Category, bool) {
	switch Normalize(s) {
	case string(Recyclable):
		return Recyclable, true
	case string(Compostable):
		return Compostable, true
	case string(Trash):
		return Trash, true
	case string(Unknown):
		return Unknown, true
	}
	return Unknown, false
}

// Normalize upcases the first letter and downcases the rest, so "recyclable"
// and "RECYCLABLE" both resolve to "Recyclable".
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

// Symbol returns a short glyph shown next to the category in the UI.
func (c Category) Symbol() string {
	switch c {
	case Recyclable:
		return "♲"
	case Compostable:
		return "❀"
	case Trash:
		return "✗"
	default:
		return "?"
	}
}

// Blurb returns a one-line description of the disposal stream.
func (c Category) Blurb() string {
	switch c {
	case Recyclable:
		return "Goes in the recycling bin"
	case Compostable:
		return "Goes in the compost bin"
	case Trash:
		return "Goes in the general waste bin"
	default:
		return "Needs a closer look"
	}
}
