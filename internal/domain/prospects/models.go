package prospects

// Prospect is the backend-owned draft prospect. Fields are passed through
// unchanged; the backend stores every attribute as a string.
type Prospect struct {
	ID           int64  `json:"id,omitempty"`
	FirstName    string `json:"firstName" validate:"required,max=64"`
	LastName     string `json:"lastName" validate:"required,max=64"`
	Position     string `json:"position" validate:"omitempty,max=8"`
	Height       string `json:"height" validate:"omitempty,max=16"`
	Weight       string `json:"weight" validate:"omitempty,max=16"`
	JerseyNumber string `json:"jerseyNumber" validate:"omitempty,max=4"`
	College      string `json:"college" validate:"omitempty,max=128"`
	Country      string `json:"country" validate:"omitempty,max=64"`
}

// Page is one page of prospects as reported by the backend.
type Page struct {
	Players     []Prospect `json:"players"`
	CurrentPage int        `json:"currentPage"`
	TotalItems  int64      `json:"totalItems"`
	TotalPages  int        `json:"totalPages"`
}

// Sort directions accepted by the backend.
const (
	DirectionAsc  = "asc"
	DirectionDesc = "desc"
)

// Query selects a page of prospects.
type Query struct {
	Page      int    `json:"page"`
	Size      int    `json:"size"`
	SortBy    string `json:"sortBy"`
	Direction string `json:"direction"`
}
