package model

// Balance is a single coin balance as returned by the bank module
type Balance struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

// BalancesResponse represents response for GET /api/balances
type BalancesResponse struct {
	Address  string    `json:"address"`
	Balances []Balance `json:"balances"`
}

// TokenBalanceResponse represents response for GET /api/token-balance
type TokenBalanceResponse struct {
	Address string `json:"address"`
	Denom   string `json:"denom"`
	Balance string `json:"balance"`
}
