package identity

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/robertnguyen279/son-phuong-nam-backend/domain"
)

// Supported third-party login providers
const (
	ProviderGoogle   = "google"
	ProviderFacebook = "facebook"
)

const (
	googleTokenInfoURL = "https://www.googleapis.com/oauth2/v3/tokeninfo"
	facebookMeURL      = "https://graph.facebook.com/me"
)

// ProviderClientImpl implements domain.ProviderClient over the providers'
// HTTP introspection endpoints.
type ProviderClientImpl struct {
	httpClient *http.Client
}

// NewProviderClient creates a new provider client
func NewProviderClient() domain.ProviderClient {
	return &ProviderClientImpl{
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Validate implements domain.ProviderClient. A non-2xx introspection response
// is an authentication failure for this login attempt; transport errors
// propagate as upstream errors.
func (c *ProviderClientImpl) Validate(ctx context.Context, provider, token string) error {
	var endpoint string
	switch provider {
	case ProviderGoogle:
		endpoint = googleTokenInfoURL
	case ProviderFacebook:
		endpoint = facebookMeURL
	default:
		return &domain.InvalidQueryError{Param: "type"}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?access_token="+url.QueryEscape(token), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s introspection failed: %w", provider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.NewInvalidTokenError(domain.TokenMalformed)
	}
	return nil
}
