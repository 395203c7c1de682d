package models

// SimplifiedRecord is the common shape produced by the preprocessors and read
// by the enricher.
type SimplifiedRecord struct {
	Title   string   `json:"title"`
	City    string   `json:"city"`
	State   string   `json:"state"`
	Website string   `json:"website,omitempty"`
	Rating  any      `json:"rating,omitempty"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}
