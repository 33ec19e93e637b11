package model

// SearchKind is the classification a search query resolved to
type SearchKind string

const (
	SearchBlock    SearchKind = "block"
	SearchAccount  SearchKind = "account"
	SearchTx       SearchKind = "tx"
	SearchNotFound SearchKind = "none"
)

// AccountLookup is the result of an address search
type AccountLookup struct {
	Address  string    `json:"address"`
	Balances []Balance `json:"balances"`
}

// SearchResult represents response for GET /api/search
type SearchResult struct {
	Query   string         `json:"query"`
	Kind    SearchKind     `json:"kind"`
	Block   *Block         `json:"block,omitempty"`
	Account *AccountLookup `json:"account,omitempty"`
	Tx      *Transaction   `json:"tx,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// Found reports whether any matcher produced a result
func (r *SearchResult) Found() bool {
	return r.Kind != SearchNotFound
}
