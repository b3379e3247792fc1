package balldontlie

import (
	"bytes"
	"encoding/json"
)

type teamResponse struct {
	ID           int    `json:"id"`
	Abbreviation string `json:"abbreviation"`
	City         string `json:"city"`
	Conference   string `json:"conference"`
	Division     string `json:"division"`
	FullName     string `json:"full_name"`
	Name         string `json:"name"`
}

type playerResponse struct {
	ID           int          `json:"id"`
	FirstName    string       `json:"first_name"`
	LastName     string       `json:"last_name"`
	Position     string       `json:"position"`
	Height       string       `json:"height"`
	Weight       string       `json:"weight"`
	JerseyNumber string       `json:"jersey_number"`
	College      string       `json:"college"`
	Country      string       `json:"country"`
	DraftYear    *int         `json:"draft_year"`
	DraftRound   *int         `json:"draft_round"`
	DraftNumber  *int         `json:"draft_number"`
	Team         teamResponse `json:"team"`
}

// cursorMeta keeps next_cursor raw: the API sends a number, older fixtures a string.
type cursorMeta struct {
	NextCursor json.RawMessage `json:"next_cursor"`
	PerPage    int             `json:"per_page"`
}

type playersResponse struct {
	Data []playerResponse `json:"data"`
	Meta *cursorMeta      `json:"meta"`
}

type singleResponse[T any] struct {
	Data *T `json:"data"`
}

// decodeList accepts either a bare JSON array or an object with a data array.
func decodeList[T any](body []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		return items, nil
	}
	var wrapped struct {
		Data []T `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return nil, err
	}
	return wrapped.Data, nil
}

// decodeSingle accepts either the bare object or {"data": {...}}.
func decodeSingle[T any](body []byte) (T, error) {
	var wrapped singleResponse[T]
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Data != nil {
		return *wrapped.Data, nil
	}
	var item T
	err := json.Unmarshal(body, &item)
	return item, err
}
