package models

// CleanedRecord is a validated consultant ready for import.
// Field order is the key order of the written JSON.
type CleanedRecord struct {
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	Company   string   `json:"company"`
	Website   string   `json:"website,omitempty"`
	Rating    *float64 `json:"rating,omitempty"`
}

// Rejection pairs a record that failed cleaning with the reason it was dropped.
type Rejection struct {
	Original RawRecord `json:"original"`
	Reason   string    `json:"reason"`
}

// OutputDocument is the file written by the enricher.
type OutputDocument struct {
	Company        string          `json:"company"`
	TotalRecords   int             `json:"total_records"`
	ValidRecords   int             `json:"valid_records"`
	SkippedRecords int             `json:"skipped_records"`
	SuccessRate    string          `json:"success_rate"`
	Consultants    []CleanedRecord `json:"consultants"`
}
