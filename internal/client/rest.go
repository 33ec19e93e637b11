package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/AlexZinkM/leochain-explorer/internal/logging"
	"github.com/AlexZinkM/leochain-explorer/internal/metrics"
	"github.com/AlexZinkM/leochain-explorer/internal/model"

	"github.com/rs/zerolog"
)

const surfaceREST = "rest"

// RESTClient client for the node's REST (gRPC gateway) surface
type RESTClient struct {
	baseURL string
	client  *http.Client
	logger  zerolog.Logger
	metrics *metrics.Metrics
}

// NewRESTClient creates a new REST client rooted at baseURL
func NewRESTClient(baseURL string, timeout time.Duration, logger zerolog.Logger, m *metrics.Metrics) *RESTClient {
	return &RESTClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
		logger:  logging.ForComponent(logger, "rest_client").With().Str(logging.FieldSurface, surfaceREST).Logger(),
		metrics: m,
	}
}

// balancesResponse response from /cosmos/bank/v1beta1/balances
type balancesResponse struct {
	Balances []model.Balance `json:"balances"`
}

// tokenBalanceResponse response from /leochain/token/balance
type tokenBalanceResponse struct {
	Balance string `json:"balance"`
}

type baseAccount struct {
	Address       string `json:"address"`
	AccountNumber string `json:"account_number"`
	Sequence      string `json:"sequence"`
}

// accountResponse response from /cosmos/auth/v1beta1/accounts.
// Vesting and module accounts nest the fields under base_account.
type accountResponse struct {
	Account struct {
		baseAccount
		BaseAccount *baseAccount `json:"base_account"`
	} `json:"account"`
}

// Balances gets all bank balances of address
func (c *RESTClient) Balances(ctx context.Context, address string) ([]model.Balance, error) {
	var resp balancesResponse
	if err := c.get(ctx, "balances", "/cosmos/bank/v1beta1/balances/"+url.PathEscape(address), &resp); err != nil {
		return nil, err
	}
	if resp.Balances == nil {
		return []model.Balance{}, nil
	}
	return resp.Balances, nil
}

// TokenBalance gets the balance of a single denom from the chain's token module
func (c *RESTClient) TokenBalance(ctx context.Context, address, denom string) (string, error) {
	path := fmt.Sprintf("/leochain/token/balance/%s/%s", url.PathEscape(address), url.PathEscape(denom))

	var resp tokenBalanceResponse
	if err := c.get(ctx, "token_balance", path, &resp); err != nil {
		return "", err
	}
	if resp.Balance == "" {
		return "0", nil
	}
	return resp.Balance, nil
}

// Account gets the account number and sequence of address
func (c *RESTClient) Account(ctx context.Context, address string) (*model.AccountInfo, error) {
	var resp accountResponse
	if err := c.get(ctx, "account", "/cosmos/auth/v1beta1/accounts/"+url.PathEscape(address), &resp); err != nil {
		return nil, err
	}

	acc := resp.Account.baseAccount
	if resp.Account.BaseAccount != nil {
		acc = *resp.Account.BaseAccount
	}

	accountNumber, err := parseUint("account_number", acc.AccountNumber)
	if err != nil {
		return nil, c.wrap("account", err)
	}
	sequence, err := parseUint("sequence", acc.Sequence)
	if err != nil {
		return nil, c.wrap("account", err)
	}

	if acc.Address == "" {
		acc.Address = address
	}
	return &model.AccountInfo{
		Address:       acc.Address,
		AccountNumber: accountNumber,
		Sequence:      sequence,
	}, nil
}

// get issues one GET and decodes a JSON body into out
func (c *RESTClient) get(ctx context.Context, endpoint, path string, out any) (err error) {
	defer func() {
		c.metrics.ObserveUpstream(surfaceREST, endpoint, err)
		if err != nil {
			c.logger.Debug().Err(err).Str(logging.FieldEndpoint, endpoint).Msg("rest call failed")
		}
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return c.wrap(endpoint, fmt.Errorf("failed to build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return c.wrap(endpoint, fmt.Errorf("failed to get %s: %w", endpoint, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return c.wrap(endpoint, model.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return c.wrap(endpoint, fmt.Errorf("failed to get %s: status %d", endpoint, resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return c.wrap(endpoint, fmt.Errorf("failed to decode %s: %w", endpoint, err))
	}
	return nil
}

func (c *RESTClient) wrap(endpoint string, err error) error {
	return &model.UpstreamError{Surface: surfaceREST, Endpoint: endpoint, Err: err}
}

func parseUint(field, value string) (uint64, error) {
	if value == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", field, value, err)
	}
	return n, nil
}
