package leochain

import (
	"context"
	"strconv"
	"strings"

	"github.com/AlexZinkM/leochain-explorer/internal/crypto"
	"github.com/AlexZinkM/leochain-explorer/internal/logging"
	"github.com/AlexZinkM/leochain-explorer/internal/model"

	"github.com/rs/zerolog"
)

const (
	txHashLength = 64

	// NoResultsMessage is the message of a search that matched nothing
	NoResultsMessage = "no results found"
)

// matcher is one search strategy. A matcher whose predicate holds but whose
// lookup finds nothing passes the query on to the next matcher.
type matcher struct {
	name   string
	match  func(query string) bool
	lookup func(ctx context.Context, query string) (*model.SearchResult, bool)
}

// Searcher classifies a free-form query as a block height, an account address
// or a transaction hash
type Searcher struct {
	explorer *Explorer
	prefix   string
	matchers []matcher
	logger   zerolog.Logger
}

// NewSearcher creates a Searcher for addresses with the given bech32 prefix
func NewSearcher(explorer *Explorer, prefix string, logger zerolog.Logger) *Searcher {
	s := &Searcher{
		explorer: explorer,
		prefix:   prefix,
		logger:   logging.ForComponent(logger, "search"),
	}
	s.matchers = []matcher{
		{name: "height", match: isDigits, lookup: s.lookupHeight},
		{name: "address", match: s.isAddress, lookup: s.lookupAddress},
		{name: "tx", match: isTxHash, lookup: s.lookupTx},
	}
	return s
}

// Search runs the matchers in order and returns the first hit
func (s *Searcher) Search(ctx context.Context, query string) *model.SearchResult {
	query = strings.TrimSpace(query)
	if query == "" {
		return notFound(query)
	}

	for _, m := range s.matchers {
		if !m.match(query) {
			continue
		}
		if res, ok := m.lookup(ctx, query); ok {
			s.logger.Debug().Str(logging.FieldQuery, query).Str(logging.FieldMatcher, m.name).Msg("search hit")
			return res
		}
		s.logger.Debug().Str(logging.FieldQuery, query).Str(logging.FieldMatcher, m.name).Msg("search miss")
	}

	return notFound(query)
}

// lookupHeight loads the block only when the height is between 1 and the latest height
func (s *Searcher) lookupHeight(ctx context.Context, query string) (*model.SearchResult, bool) {
	height, err := strconv.ParseInt(query, 10, 64)
	if err != nil || height <= 0 {
		return nil, false
	}

	status, err := s.explorer.GetNodeStatus(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to get latest height for search")
		return nil, false
	}
	if height > status.SyncInfo.LatestBlockHeight {
		return nil, false
	}

	block, err := s.explorer.GetBlock(ctx, height)
	if err != nil {
		return nil, false
	}
	return &model.SearchResult{Query: query, Kind: model.SearchBlock, Block: block}, true
}

func (s *Searcher) lookupAddress(ctx context.Context, query string) (*model.SearchResult, bool) {
	return &model.SearchResult{
		Query: query,
		Kind:  model.SearchAccount,
		Account: &model.AccountLookup{
			Address:  query,
			Balances: s.explorer.GetBalances(ctx, query),
		},
	}, true
}

func (s *Searcher) lookupTx(ctx context.Context, query string) (*model.SearchResult, bool) {
	tx := s.explorer.GetTransaction(ctx, query)
	if tx == nil {
		return nil, false
	}
	return &model.SearchResult{Query: query, Kind: model.SearchTx, Tx: tx}, true
}

func (s *Searcher) isAddress(query string) bool {
	if !strings.HasPrefix(query, s.prefix+"1") {
		return false
	}
	return crypto.ValidateAddress(query, s.prefix) == nil
}

func isDigits(query string) bool {
	for i := 0; i < len(query); i++ {
		if query[i] < '0' || query[i] > '9' {
			return false
		}
	}
	return query != ""
}

func isTxHash(query string) bool {
	if len(query) != txHashLength {
		return false
	}
	for i := 0; i < len(query); i++ {
		c := query[i]
		isHex := (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
		if !isHex {
			return false
		}
	}
	return true
}

func notFound(query string) *model.SearchResult {
	return &model.SearchResult{Query: query, Kind: model.SearchNotFound, Error: NoResultsMessage}
}
