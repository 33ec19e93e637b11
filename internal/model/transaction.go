package model

// EventAttribute is a key/value pair of an ABCI event
type EventAttribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Event is an ABCI event emitted while executing a transaction
type Event struct {
	Type       string           `json:"type"`
	Attributes []EventAttribute `json:"attributes,omitempty"`
}

// Transaction represents an executed transaction
type Transaction struct {
	Hash      string  `json:"hash"`
	Height    int64   `json:"height"`
	Code      uint32  `json:"code"`
	GasUsed   int64   `json:"gasUsed"`
	GasWanted int64   `json:"gasWanted"`
	Events    []Event `json:"events,omitempty"`
}

// Succeeded reports whether the chain accepted the transaction
func (t *Transaction) Succeeded() bool {
	return t.Code == 0
}

// BroadcastResult is the CheckTx outcome of a synchronous broadcast
type BroadcastResult struct {
	Hash      string `json:"hash"`
	Code      uint32 `json:"code"`
	Codespace string `json:"codespace,omitempty"`
	Log       string `json:"log,omitempty"`
}
