package backend

import (
	"bytes"
	"encoding/json"
	"fmt"

	"nba-draft-hub/internal/domain/prospects"
)

type tokenResponse struct {
	Token string `json:"token"`
}

func decodeProspectPage(raw json.RawMessage) (prospects.Page, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []prospects.Prospect
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return prospects.Page{}, fmt.Errorf("backend: decode prospects: %w", err)
		}
		return prospects.Page{
			Players:     items,
			CurrentPage: 0,
			TotalItems:  int64(len(items)),
			TotalPages:  1,
		}, nil
	}

	var page prospects.Page
	if err := json.Unmarshal(trimmed, &page); err != nil {
		return prospects.Page{}, fmt.Errorf("backend: decode prospects: %w", err)
	}
	if page.Players == nil {
		page.Players = []prospects.Prospect{}
	}
	return page, nil
}
