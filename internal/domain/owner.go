package domain

// Owner is the decomposition of a free-text owner string.
// Each part is independently optional; empty means not found.
type Owner struct {
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
	Team  string `json:"team" yaml:"team"`
}

// IsEmpty returns true if nothing was extracted
func (o Owner) IsEmpty() bool {
	return o.Name == "" && o.Email == "" && o.Team == ""
}
