package domain

// PersonID is an opaque, stable identifier for a roster member.
type PersonID string

// Person is a roster member. Names are display-only and need not be unique.
type Person struct {
	ID   PersonID `yaml:"id" json:"id"`
	Name string   `yaml:"name" json:"name"`
}

// Label returns the display name, falling back to the ID for unnamed people.
func (p Person) Label() string {
	if p.Name != "" {
		return p.Name
	}
	return string(p.ID)
}
