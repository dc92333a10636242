package sections

import "time"

// Type names one of the fixed page sections. The set is closed: the
// public site renders exactly these blocks.
type Type string

const (
	TypeHero    Type = "hero"
	TypeAbout   Type = "about"
	TypeTeam    Type = "team"
	TypeTools   Type = "tools"
	TypeContact Type = "contact"
	TypeFooter  Type = "footer"
)

// AllTypes lists every valid section type in render order.
var AllTypes = []Type{TypeHero, TypeAbout, TypeTeam, TypeTools, TypeContact, TypeFooter}

// Valid reports whether t is one of the known section types.
func (t Type) Valid() bool {
	switch t {
	case TypeHero, TypeAbout, TypeTeam, TypeTools, TypeContact, TypeFooter:
		return true
	}
	return false
}

// Section is one content block of the public page. The content shape is
// free-form JSON and differs per type; the id is always "section_<type>"
// so upserting the same type overwrites rather than accumulates.
type Section struct {
	ID        string         `json:"id"`
	Type      Type           `json:"type"`
	Content   map[string]any `json:"content"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
