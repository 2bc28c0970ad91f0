package history

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// ErrMissingPage is returned when a history state carries no usable page.
var ErrMissingPage = errors.New("history: page number not found in state")

// State is the opaque payload stored with each history entry.
type State struct {
	Page int `json:"page"`
}

// EncodeState serialises a state the way it is handed to the history API.
func EncodeState(state State) ([]byte, error) {
	return json.Marshal(state)
}

// DecodeState parses a serialised state. Empty payloads, null, and states
// without a positive page yield ErrMissingPage.
func DecodeState(raw []byte) (State, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return State{}, ErrMissingPage
	}
	var payload struct {
		Page *int `json:"page"`
	}
	if err := json.Unmarshal([]byte(trimmed), &payload); err != nil {
		return State{}, fmt.Errorf("history: decode state: %w", err)
	}
	if payload.Page == nil || *payload.Page < 1 {
		return State{}, ErrMissingPage
	}
	return State{Page: *payload.Page}, nil
}

// Address renders the relative address pushed for a page.
func Address(pageID string, page int) string {
	return "?" + url.QueryEscape(pageID) + "&page=" + strconv.Itoa(page)
}

// ParseAddress reverses Address. It accepts a bare query ("?id&page=2") or a
// full URL carrying that query.
func ParseAddress(raw string) (string, int, error) {
	query := raw
	if idx := strings.Index(query, "?"); idx >= 0 {
		query = query[idx+1:]
	}
	if idx := strings.Index(query, "#"); idx >= 0 {
		query = query[:idx]
	}
	if query == "" {
		return "", 0, fmt.Errorf("history: address %q has no query", raw)
	}

	var (
		pageID string
		page   int
		found  bool
	)
	for _, part := range strings.Split(query, "&") {
		key, value, hasValue := strings.Cut(part, "=")
		if !hasValue {
			if pageID == "" {
				decoded, err := url.QueryUnescape(key)
				if err != nil {
					return "", 0, fmt.Errorf("history: address %q: %w", raw, err)
				}
				pageID = decoded
			}
			continue
		}
		if key != "page" {
			continue
		}
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return "", 0, fmt.Errorf("history: address %q has invalid page %q", raw, value)
		}
		page, found = n, true
	}
	if !found {
		return "", 0, fmt.Errorf("history: address %q has no page parameter", raw)
	}
	return pageID, page, nil
}

// StripParams drops the query string and fragment, keeping origin and path.
func StripParams(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		if idx := strings.IndexAny(raw, "?#"); idx >= 0 {
			return raw[:idx]
		}
		return raw
	}
	parsed.RawQuery = ""
	parsed.ForceQuery = false
	parsed.Fragment = ""
	parsed.RawFragment = ""
	return parsed.String()
}
