package treasury

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/feesplit/feesplitd/internal/core/ports"
)

const requestTimeout = 15 * time.Second

type service struct {
	addr       string
	secret     []byte
	httpClient *client
}

// NewService returns an HTTP/JSON client for the deposit API of the strategy
// treasury. If a shared secret is given, every deposit is authenticated with
// a signed bearer token.
func NewService(addr, secret string) (ports.Treasury, error) {
	if addr == "" {
		return nil, fmt.Errorf("missing treasury address")
	}
	baseURL := addr
	if !strings.HasPrefix(addr, "http://") && !strings.HasPrefix(addr, "https://") {
		baseURL = fmt.Sprintf("http://%s", addr)
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid treasury address: %w", err)
	}

	return &service{
		addr:       baseURL,
		secret:     []byte(secret),
		httpClient: newHTTPClient(requestTimeout),
	}, nil
}

func (s *service) DepositFee(
	ctx context.Context, asset string, amount uint64,
) error {
	url := fmt.Sprintf("%s/v1/fees/deposit", s.addr)
	body, _ := json.Marshal(depositRequest{
		Asset:  asset,
		Amount: amount,
	})

	headers := map[string]string{
		"Content-Type": "application/json",
	}
	if len(s.secret) > 0 {
		token := jwt.New(jwt.SigningMethodHS256)
		tokenString, err := token.SignedString(s.secret)
		if err != nil {
			return fmt.Errorf("treasury: signing deposit request: %w", err)
		}
		headers["Authorization"] = fmt.Sprintf("Bearer %s", tokenString)
	}

	status, resp, err := s.httpClient.post(ctx, url, string(body), headers)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("treasury: %s", resp)
	}
	return nil
}

type depositRequest struct {
	Asset  string `json:"asset"`
	Amount uint64 `json:"amount"`
}
