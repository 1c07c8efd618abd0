package domain

// NewTransaction is the outbound wire shape submitted to the upstream
// ledger. Amount is in integer minor units. Cleared is always true; the
// gateway does not create uncleared or pending transactions.
type NewTransaction struct {
	Account  string `json:"account"`
	Date     string `json:"date"`
	Notes    string `json:"notes"`
	Amount   int64  `json:"amount"`
	Category string `json:"category"`
	Cleared  bool   `json:"cleared"`
}
