package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/AlexZinkM/leochain-explorer/internal/model"
)

const maxListLimit = 100

// ChainReader is the explorer service used by the JSON API
type ChainReader interface {
	GetNodeStatus(ctx context.Context) (*model.NodeStatus, error)
	GetBlock(ctx context.Context, height int64) (*model.Block, error)
	GetBlocks(ctx context.Context, limit int) ([]model.Block, error)
	GetValidators(ctx context.Context) ([]model.Validator, error)
	GetBalances(ctx context.Context, address string) []model.Balance
	GetTokenBalance(ctx context.Context, address, denom string) string
	GetTransaction(ctx context.Context, hash string) *model.Transaction
	GetRecentTransactions(ctx context.Context, limit int) []model.Transaction
}

// Searcher resolves search queries
type Searcher interface {
	Search(ctx context.Context, query string) *model.SearchResult
}

// ExplorerHandler serves read-only chain data
type ExplorerHandler struct {
	chain        ChainReader
	searcher     Searcher
	blockLimit   int
	defaultDenom string
}

// NewExplorerHandler creates a new ExplorerHandler.
// blockLimit is the default of /api/blocks and /api/txs/recent
func NewExplorerHandler(chain ChainReader, searcher Searcher, blockLimit int, defaultDenom string) *ExplorerHandler {
	return &ExplorerHandler{
		chain:        chain,
		searcher:     searcher,
		blockLimit:   blockLimit,
		defaultDenom: defaultDenom,
	}
}

// Status handles GET /api/status
// @Summary      Get node status
// @Description  Gets node info and sync info of the connected node
// @Tags         explorer
// @Produce      json
// @Success      200  {object}  model.NodeStatus
// @Failure      502  {object}  model.ErrorResponse
// @Router       /api/status [get]
func (h *ExplorerHandler) Status(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	status, err := h.chain.GetNodeStatus(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

// Blocks handles GET /api/blocks
// @Summary      List latest blocks
// @Description  Gets up to limit blocks, newest first. Blocks that fail to load are skipped
// @Tags         explorer
// @Produce      json
// @Param        limit  query     int  false  "Number of blocks (1-100)"
// @Success      200    {array}   model.Block
// @Failure      400    {object}  model.ErrorResponse
// @Failure      502    {object}  model.ErrorResponse
// @Router       /api/blocks [get]
func (h *ExplorerHandler) Blocks(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	limit, ok := parseLimit(w, r, h.blockLimit)
	if !ok {
		return
	}

	blocks, err := h.chain.GetBlocks(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, blocks)
}

// Block handles GET /api/block
// @Summary      Get block
// @Description  Gets a single block by height
// @Tags         explorer
// @Produce      json
// @Param        height  query     int  true  "Block height"
// @Success      200     {object}  model.Block
// @Failure      400     {object}  model.ErrorResponse
// @Failure      404     {object}  model.ErrorResponse
// @Failure      502     {object}  model.ErrorResponse
// @Router       /api/block [get]
func (h *ExplorerHandler) Block(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	height, err := strconv.ParseInt(r.URL.Query().Get("height"), 10, 64)
	if err != nil || height <= 0 {
		writeBadRequest(w, "height must be a positive integer")
		return
	}

	block, err := h.chain.GetBlock(r.Context(), height)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, block)
}

// Validators handles GET /api/validators
// @Summary      List validators
// @Description  Gets the active validator set in node order
// @Tags         explorer
// @Produce      json
// @Success      200  {array}   model.Validator
// @Failure      502  {object}  model.ErrorResponse
// @Router       /api/validators [get]
func (h *ExplorerHandler) Validators(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	validators, err := h.chain.GetValidators(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, validators)
}

// Balances handles GET /api/balances
// @Summary      Get balances
// @Description  Gets all bank balances of an address. An unreachable node yields an empty list
// @Tags         explorer
// @Produce      json
// @Param        address  query     string  true  "Account address"
// @Success      200      {object}  model.BalancesResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /api/balances [get]
func (h *ExplorerHandler) Balances(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	address := strings.TrimSpace(r.URL.Query().Get("address"))
	if address == "" {
		writeBadRequest(w, "address is required")
		return
	}

	writeJSON(w, http.StatusOK, model.BalancesResponse{
		Address:  address,
		Balances: h.chain.GetBalances(r.Context(), address),
	})
}

// TokenBalance handles GET /api/token-balance
// @Summary      Get token balance
// @Description  Gets the token module balance of one denom. An unreachable node yields "0"
// @Tags         explorer
// @Produce      json
// @Param        address  query     string  true   "Account address"
// @Param        denom    query     string  false  "Token denom (default from config)"
// @Success      200      {object}  model.TokenBalanceResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /api/token-balance [get]
func (h *ExplorerHandler) TokenBalance(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	address := strings.TrimSpace(r.URL.Query().Get("address"))
	if address == "" {
		writeBadRequest(w, "address is required")
		return
	}
	denom := strings.TrimSpace(r.URL.Query().Get("denom"))
	if denom == "" {
		denom = h.defaultDenom
	}

	writeJSON(w, http.StatusOK, model.TokenBalanceResponse{
		Address: address,
		Denom:   denom,
		Balance: h.chain.GetTokenBalance(r.Context(), address, denom),
	})
}

// Transaction handles GET /api/tx
// @Summary      Get transaction
// @Description  Gets an executed transaction by its hex hash
// @Tags         explorer
// @Produce      json
// @Param        hash  query     string  true  "Transaction hash (hex, without 0x)"
// @Success      200   {object}  model.Transaction
// @Failure      400   {object}  model.ErrorResponse
// @Failure      404   {object}  model.ErrorResponse
// @Router       /api/tx [get]
func (h *ExplorerHandler) Transaction(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	hash := strings.TrimSpace(r.URL.Query().Get("hash"))
	if hash == "" {
		writeBadRequest(w, "hash is required")
		return
	}

	tx := h.chain.GetTransaction(r.Context(), hash)
	if tx == nil {
		writeJSON(w, http.StatusNotFound, model.ErrorResponse{Error: "transaction not found", Code: model.CodeNotFound})
		return
	}
	writeJSON(w, http.StatusOK, tx)
}

// RecentTransactions handles GET /api/txs/recent
// @Summary      List recent transactions
// @Description  Gets the most recent indexed transactions, newest first
// @Tags         explorer
// @Produce      json
// @Param        limit  query     int  false  "Number of transactions (1-100)"
// @Success      200    {array}   model.Transaction
// @Failure      400    {object}  model.ErrorResponse
// @Router       /api/txs/recent [get]
func (h *ExplorerHandler) RecentTransactions(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	limit, ok := parseLimit(w, r, h.blockLimit)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.chain.GetRecentTransactions(r.Context(), limit))
}

// Search handles GET /api/search
// @Summary      Search
// @Description  Resolves a block height, an account address or a transaction hash
// @Tags         explorer
// @Produce      json
// @Param        q    query     string  true  "Height, address or hash"
// @Success      200  {object}  model.SearchResult
// @Failure      404  {object}  model.SearchResult
// @Router       /api/search [get]
func (h *ExplorerHandler) Search(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	res := h.searcher.Search(r.Context(), r.URL.Query().Get("q"))
	if !res.Found() {
		writeJSON(w, http.StatusNotFound, res)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// parseLimit reads the limit query parameter, writing 400 when it is out of range
func parseLimit(w http.ResponseWriter, r *http.Request, fallback int) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 || limit > maxListLimit {
		writeBadRequest(w, "limit must be an integer between 1 and 100")
		return 0, false
	}
	return limit, true
}
