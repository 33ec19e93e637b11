package screen

import (
	"context"

	"github.com/AlexZinkM/leochain-explorer/internal/model"
	"github.com/AlexZinkM/leochain-explorer/leochain"
)

// Screen names used for logging and metrics
const (
	NameHeader   = "header"
	NameExplorer = "explorer"
	NameAccounts = "accounts"
	NameTransfer = "transfer"
)

// MessageKind tells success messages from error messages
type MessageKind string

const (
	MessageSuccess MessageKind = "success"
	MessageError   MessageKind = "error"
)

// Message is a dismissible notice shown at the top of a screen
type Message struct {
	Kind MessageKind `json:"kind"`
	Text string      `json:"text"`
}

func successMessage(text string) *Message {
	return &Message{Kind: MessageSuccess, Text: text}
}

func errorMessage(text string) *Message {
	return &Message{Kind: MessageError, Text: text}
}

// StatusSource provides node status
type StatusSource interface {
	GetNodeStatus(ctx context.Context) (*model.NodeStatus, error)
}

// ChainSource provides the chain data shown by the screens
type ChainSource interface {
	GetBlocks(ctx context.Context, limit int) ([]model.Block, error)
	GetValidators(ctx context.Context) ([]model.Validator, error)
	GetBalances(ctx context.Context, address string) []model.Balance
}

// SearchSource classifies and resolves search queries
type SearchSource interface {
	Search(ctx context.Context, query string) *model.SearchResult
}

// AccountManager manages local accounts
type AccountManager interface {
	List() ([]model.Account, error)
	Create(name string) (*model.Account, error)
	Import(name, mnemonic string) (*model.Account, error)
	Delete(address string) error
	ExportMnemonic(address string) (string, bool, error)
}

// TransferRunner submits transfers
type TransferRunner interface {
	Transfer(ctx context.Context, req model.TransferRequest, observe leochain.Observer) *model.TransferResult
	FeeLabel() string
}

var (
	_ StatusSource   = (*leochain.Explorer)(nil)
	_ ChainSource    = (*leochain.Explorer)(nil)
	_ SearchSource   = (*leochain.Searcher)(nil)
	_ AccountManager = (*leochain.AccountStore)(nil)
	_ TransferRunner = (*leochain.Transferer)(nil)
)

// containsAccount reports whether address is one of accounts
func containsAccount(accounts []model.Account, address string) bool {
	for _, a := range accounts {
		if a.Address == address {
			return true
		}
	}
	return false
}
