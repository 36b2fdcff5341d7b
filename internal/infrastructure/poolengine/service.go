package poolengine

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

// NewService returns an HTTP/JSON client for the settlement API of the pool
// engine the daemon is attached to. The addr is assumed to be plain http
// when no scheme is given.
func NewService(addr string) (ports.PoolEngine, error) {
	if addr == "" {
		return nil, fmt.Errorf("missing pool engine address")
	}
	baseURL := addr
	if !strings.HasPrefix(addr, "http://") && !strings.HasPrefix(addr, "https://") {
		baseURL = fmt.Sprintf("http://%s", addr)
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid pool engine address: %w", err)
	}

	return &service{
		addr:       baseURL,
		httpClient: newHTTPClient(requestTimeout),
	}, nil
}

func (s *service) Take(
	ctx context.Context, asset, recipient string, amount uint64,
) error {
	url := fmt.Sprintf("%s/v1/custody/take", s.addr)
	body, _ := json.Marshal(takeRequest{
		Asset:     asset,
		Recipient: recipient,
		Amount:    amount,
	})

	status, resp, err := s.httpClient.post(ctx, url, string(body))
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("pool engine: %s", resp)
	}
	return nil
}

func (s *service) Settle(
	ctx context.Context, asset string, amount uint64,
) error {
	url := fmt.Sprintf("%s/v1/custody/settle", s.addr)
	body, _ := json.Marshal(settleRequest{
		Asset:  asset,
		Amount: amount,
	})

	status, resp, err := s.httpClient.post(ctx, url, string(body))
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("pool engine: %s", resp)
	}
	return nil
}

func (s *service) PreviewSwap(
	ctx context.Context, market ports.Market, assetIn string, amountIn uint64,
) (uint64, error) {
	url := fmt.Sprintf("%s/v1/swap/preview", s.addr)
	body, _ := json.Marshal(swapRequest{
		BaseAsset:  market.GetBaseAsset(),
		QuoteAsset: market.GetQuoteAsset(),
		AssetIn:    assetIn,
		AmountIn:   amountIn,
	})

	status, resp, err := s.httpClient.post(ctx, url, string(body))
	if err != nil {
		return 0, err
	}
	if status != http.StatusOK {
		return 0, fmt.Errorf("pool engine: %s", resp)
	}

	preview := previewResponse{}
	if err := json.Unmarshal([]byte(resp), &preview); err != nil {
		return 0, fmt.Errorf("pool engine: invalid preview response: %w", err)
	}
	return preview.AmountOut, nil
}

func (s *service) Swap(
	ctx context.Context, market ports.Market, assetIn string,
	amountIn, minAmountOut uint64,
) (map[string]int64, error) {
	url := fmt.Sprintf("%s/v1/swap", s.addr)
	body, _ := json.Marshal(swapRequest{
		BaseAsset:    market.GetBaseAsset(),
		QuoteAsset:   market.GetQuoteAsset(),
		AssetIn:      assetIn,
		AmountIn:     amountIn,
		MinAmountOut: minAmountOut,
	})

	status, resp, err := s.httpClient.post(ctx, url, string(body))
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("pool engine: %s", resp)
	}

	swap := swapResponse{}
	if err := json.Unmarshal([]byte(resp), &swap); err != nil {
		return nil, fmt.Errorf("pool engine: invalid swap response: %w", err)
	}
	return swap.Deltas, nil
}

type takeRequest struct {
	Asset     string `json:"asset"`
	Recipient string `json:"recipient"`
	Amount    uint64 `json:"amount"`
}

type settleRequest struct {
	Asset  string `json:"asset"`
	Amount uint64 `json:"amount"`
}

type swapRequest struct {
	BaseAsset    string `json:"base_asset"`
	QuoteAsset   string `json:"quote_asset"`
	AssetIn      string `json:"asset_in"`
	AmountIn     uint64 `json:"amount_in"`
	MinAmountOut uint64 `json:"min_amount_out,omitempty"`
}

type previewResponse struct {
	AmountOut uint64 `json:"amount_out"`
}

type swapResponse struct {
	Deltas map[string]int64 `json:"deltas"`
}
