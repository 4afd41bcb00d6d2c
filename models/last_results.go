package models

import "time"

// LastResults is the most recent non-empty result set, kept on the client so
// it can be offered again when the search input is empty.
type LastResults struct {
	Term      string    `json:"term"`
	Addresses []Address `json:"addresses"`
	SavedAt   time.Time `json:"saved_at"`
}
