package wallet

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/feesplit/feesplitd/internal/core/ports"
)

const requestTimeout = 15 * time.Second

type service struct {
	addr       string
	httpClient *client
}

// NewService returns an HTTP/JSON client for the custody wallet holding the
// funds pulled out of pool custody. The wallet is expected to be already
// initialized and unlocked on the account backing the daemon.
func NewService(addr string) (ports.WalletService, error) {
	if addr == "" {
		return nil, fmt.Errorf("missing wallet address")
	}
	baseURL := addr
	if !strings.HasPrefix(addr, "http://") && !strings.HasPrefix(addr, "https://") {
		baseURL = fmt.Sprintf("http://%s", addr)
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid wallet address: %w", err)
	}

	return &service{
		addr:       baseURL,
		httpClient: newHTTPClient(requestTimeout),
	}, nil
}

func (s *service) Transfer(
	ctx context.Context, asset, recipient string, amount uint64,
) (string, error) {
	url := fmt.Sprintf("%s/v1/account/transfer", s.addr)
	body, _ := json.Marshal(transferRequest{
		Asset:     asset,
		Recipient: recipient,
		Amount:    amount,
	})

	status, resp, err := s.httpClient.post(ctx, url, string(body))
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("wallet: %s", resp)
	}

	transfer := transferResponse{}
	if err := json.Unmarshal([]byte(resp), &transfer); err != nil {
		return "", fmt.Errorf("wallet: invalid transfer response: %w", err)
	}
	return transfer.Txid, nil
}

func (s *service) GetBalance(
	ctx context.Context, asset string,
) (uint64, error) {
	url := fmt.Sprintf("%s/v1/account/balance?asset=%s", s.addr, asset)

	status, resp, err := s.httpClient.get(ctx, url)
	if err != nil {
		return 0, err
	}
	if status != http.StatusOK {
		return 0, fmt.Errorf("wallet: %s", resp)
	}

	balance := balanceResponse{}
	if err := json.Unmarshal([]byte(resp), &balance); err != nil {
		return 0, fmt.Errorf("wallet: invalid balance response: %w", err)
	}
	return balance.Balance, nil
}

func (s *service) Close() {
	s.httpClient.CloseIdleConnections()
}

type transferRequest struct {
	Asset     string `json:"asset"`
	Recipient string `json:"recipient"`
	Amount    uint64 `json:"amount"`
}

type transferResponse struct {
	Txid string `json:"txid"`
}

type balanceResponse struct {
	Balance uint64 `json:"balance"`
}
