package models

// SearchQuery is a validated address search request on the lookup server.
type SearchQuery struct {
	// Term is matched as a prefix of street, city or post number.
	Term string `json:"term" validate:"required,min=3,max=100,searchterm"`

	// Limit caps the number of returned addresses.
	Limit int `json:"limit" validate:"gte=1,lte=100"`
}
