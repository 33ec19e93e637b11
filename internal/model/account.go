package model

// Account is a local account as shown to the user (the mnemonic is never included)
type Account struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// StoredAccount is the persisted form of a local account
type StoredAccount struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Mnemonic string `json:"mnemonic"`
}

// Public strips the mnemonic
func (a StoredAccount) Public() Account {
	return Account{Name: a.Name, Address: a.Address}
}

// CreateAccountRequest represents request for POST /api/accounts/create
type CreateAccountRequest struct {
	Name string `json:"name" binding:"required"`
}

// ImportAccountRequest represents request for POST /api/accounts/import
type ImportAccountRequest struct {
	Name     string `json:"name" binding:"required"`
	Mnemonic string `json:"mnemonic" binding:"required"`
}

// AddressRequest represents request for POST /api/accounts/delete and /api/accounts/export
type AddressRequest struct {
	Address string `json:"address" binding:"required"`
}

// AccountResponse represents response for POST /api/accounts/create and /api/accounts/import
type AccountResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Name    string `json:"name"`
	Address string `json:"address"`
	QR      string `json:"QR,omitempty"` // base64 PNG of the address
}

// AccountsResponse represents response for GET /api/accounts
type AccountsResponse struct {
	Accounts []Account `json:"accounts"`
}

// ExportResponse represents response for POST /api/accounts/export
type ExportResponse struct {
	Address  string `json:"address"`
	Mnemonic string `json:"mnemonic"`
}
