package googleapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ErrInvalidToken is returned when the tokeninfo endpoint answers non-2xx.
// Upstream failures of any other kind are reported separately so callers
// can distinguish a rejected token from an unreachable verifier.
var ErrInvalidToken = errors.New("invalid google token")

// TokenInfo is the subset of the tokeninfo response this service uses.
type TokenInfo struct {
	Email  string `json:"email"`
	UserID string `json:"user_id"`
}

// Verifier resolves opaque Google access tokens against the tokeninfo
// endpoint. Every call is bounded by an explicit timeout.
type Verifier struct {
	endpoint string
	client   *http.Client
}

func NewVerifier(endpoint string, timeout time.Duration) *Verifier {
	return &Verifier{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Verify returns the account info associated with the token.
func (v *Verifier) Verify(ctx context.Context, token string) (*TokenInfo, error) {
	u := v.endpoint + "?access_token=" + url.QueryEscape(token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tokeninfo request: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	// Any non-2xx answer is treated uniformly as an invalid token.
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, ErrInvalidToken
	}

	info := &TokenInfo{}
	if err := json.NewDecoder(res.Body).Decode(info); err != nil {
		return nil, fmt.Errorf("tokeninfo decode: %w", err)
	}
	return info, nil
}
