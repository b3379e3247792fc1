package teams

import "strings"

// Team is the normalized balldontlie team, with Logo resolved from the bundled assets.
type Team struct {
	ID           int    `json:"id"`
	Abbreviation string `json:"abbreviation"`
	City         string `json:"city"`
	Conference   string `json:"conference"`
	Division     string `json:"division"`
	FullName     string `json:"fullName"`
	Name         string `json:"name"`
	Logo         string `json:"logo,omitempty"`
}

// HasCity reports whether the team carries a non-blank city. Historical
// franchises come back from balldontlie without one.
func (t Team) HasCity() bool {
	return strings.TrimSpace(t.City) != ""
}
