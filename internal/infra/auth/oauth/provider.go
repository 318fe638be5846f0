// Package oauth runs the authorization-code handshake against external identity providers.
package oauth

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"algoarena/config"
	"algoarena/internal/domain/entity"
	"algoarena/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

const maxProfileBytes = 1 << 20

// provider is a generic authorization-code client that finishes by
// loading the provider's user-info document.
type provider struct {
	providerType entity.ProviderType
	oauthConfig  *oauth2.Config
	userInfoURL  string
	httpClient   *http.Client
}

func newProvider(providerType entity.ProviderType, cfg *config.OAuthProviderConfig, endpoint oauth2.Endpoint, userInfoURL string, defaultScopes []string) *provider {
	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = defaultScopes
	}

	return &provider{
		providerType: providerType,
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Endpoint:     endpoint,
			Scopes:       scopes,
		},
		userInfoURL: userInfoURL,
	}
}

func (p *provider) Provider() entity.ProviderType {
	return p.providerType
}

func (p *provider) AuthCodeURL(state string) string {
	return p.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// FetchProfile exchanges the code and returns the raw user-info attributes.
// Numbers are kept as json.Number so large numeric ids survive intact.
func (p *provider) FetchProfile(ctx context.Context, code string) (service.ProviderProfile, error) {
	if code == "" {
		return nil, errors.New("authorization code is required")
	}
	if p.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
	}

	token, err := p.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrapf(err, "%s token exchange failed", p.providerType)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user info request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.oauthConfig.Client(ctx, token).Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s user info request failed", p.providerType)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return nil, errors.Errorf("%s user info request failed with status %d: %s", p.providerType, resp.StatusCode, string(body))
	}

	profile := service.ProviderProfile{}
	decoder := json.NewDecoder(io.LimitReader(resp.Body, maxProfileBytes))
	decoder.UseNumber()
	if err := decoder.Decode(&profile); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s user info", p.providerType)
	}

	return profile, nil
}
