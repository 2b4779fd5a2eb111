package oauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const userinfoEndpoint = "https://www.googleapis.com/oauth2/v2/userinfo"

// Profile is what the portal needs from the identity provider: a stable
// subject id plus the email the role resolution runs on.
type Profile struct {
	GoogleID      string `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	VerifiedEmail bool   `json:"verified_email"`
}

// GoogleService wraps the Google OAuth2 code flow.
type GoogleService interface {
	// NewState returns a fresh random state value for the auth redirect.
	NewState() string
	// AuthURL builds the consent-screen URL carrying state.
	AuthURL(state string) string
	// Exchange trades the callback code for a token.
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	// FetchProfile loads the userinfo document for a token.
	FetchProfile(ctx context.Context, token *oauth2.Token) (Profile, error)
}

type googleService struct {
	config *oauth2.Config
}

func NewGoogleService(clientID, clientSecret, redirectURL string, scopes []string) GoogleService {
	return &googleService{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       scopes,
			Endpoint:     google.Endpoint,
		},
	}
}

func (g *googleService) NewState() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(b)
}

func (g *googleService) AuthURL(state string) string {
	return g.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

func (g *googleService) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	return token, nil
}

func (g *googleService) FetchProfile(ctx context.Context, token *oauth2.Token) (Profile, error) {
	client := g.config.Client(ctx, token)

	resp, err := client.Get(userinfoEndpoint)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Profile{}, fmt.Errorf("userinfo request returned status %d", resp.StatusCode)
	}

	var p Profile
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return Profile{}, fmt.Errorf("failed to decode userinfo: %w", err)
	}

	return p, nil
}
