package handler

// bulkSetRequest carries one ledger bulk-edit for a single user class.
// Entries keys are "userID_year_month" with a 0-based month slot; only true
// values assert a paid month, everything absent becomes unpaid. Notes is
// honoured for the member class only.
type bulkSetRequest struct {
	Entries map[string]bool   `json:"entries"`
	Notes   map[string]string `json:"notes"`
}

type noteRequest struct {
	Body string `json:"body"`
}
