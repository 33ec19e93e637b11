package model

import "time"

// Block is a read-only projection of a committed block
type Block struct {
	Height   int64     `json:"height"`
	Hash     string    `json:"hash"`
	Time     time.Time `json:"time"`
	Proposer string    `json:"proposer"`
	TxCount  int       `json:"txCount"`
}

// Validator is a member of the active validator set
type Validator struct {
	Address          string `json:"address"`
	VotingPower      int64  `json:"votingPower"`
	ProposerPriority int64  `json:"proposerPriority"`
}

// NodeInfo describes the node answering RPC calls
type NodeInfo struct {
	Network string `json:"network"`
	Version string `json:"version"`
	Moniker string `json:"moniker"`
}

// SyncInfo describes the node's view of the chain head
type SyncInfo struct {
	LatestBlockHeight int64     `json:"latestBlockHeight"`
	LatestBlockTime   time.Time `json:"latestBlockTime"`
	CatchingUp        bool      `json:"catchingUp"`
}

// NodeStatus represents response for GET /api/status
type NodeStatus struct {
	NodeInfo NodeInfo `json:"nodeInfo"`
	SyncInfo SyncInfo `json:"syncInfo"`
}

// AccountInfo holds the signing metadata of an on-chain account
type AccountInfo struct {
	Address       string `json:"address"`
	AccountNumber uint64 `json:"accountNumber"`
	Sequence      uint64 `json:"sequence"`
}
