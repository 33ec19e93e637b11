package model

// TransferState is a step of the transfer state machine
type TransferState string

const (
	TransferIdle       TransferState = "idle"
	TransferValidating TransferState = "validating"
	TransferSubmitting TransferState = "submitting"
	TransferSucceeded  TransferState = "succeeded"
	TransferFailed     TransferState = "failed"
)

// Terminal reports whether no further transition can happen
func (s TransferState) Terminal() bool {
	return s == TransferSucceeded || s == TransferFailed
}

// TransferRequest represents request for POST /api/transfer
type TransferRequest struct {
	FromAddress string `json:"fromAddress" binding:"required"`
	ToAddress   string `json:"toAddress" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	Denom       string `json:"denom" binding:"required"`
}

// TransferResult represents response for POST /api/transfer
type TransferResult struct {
	State  TransferState `json:"state"`
	TxHash string        `json:"txHash,omitempty"`
	Code   uint32        `json:"code,omitempty"`
	Error  string        `json:"error,omitempty"`
}

// Success reports whether the transfer reached the succeeded state
func (r *TransferResult) Success() bool {
	return r.State == TransferSucceeded
}
