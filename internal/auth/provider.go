// Outbound client for the hosted identity provider. Login, signup and the
// OAuth redirect all delegate here; this service keeps no credential state
// of its own.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// Session is the token bundle the provider returns on a successful sign-in.
type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type providerError struct {
	Message          string `json:"msg"`
	ErrorDescription string `json:"error_description"`
}

type ProviderClient struct {
	Client  *http.Client
	BaseURL string
	APIKey  string

	// CallbackURL is where the provider redirects after an OAuth login.
	CallbackURL string
}

func NewProviderClient(baseURL, apiKey, callbackURL string) *ProviderClient {
	return &ProviderClient{
		Client:      &http.Client{Timeout: 10 * time.Second},
		BaseURL:     baseURL,
		APIKey:      apiKey,
		CallbackURL: callbackURL,
	}
}

// SignIn exchanges an email/password pair for a session.
func (pc *ProviderClient) SignIn(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}
	return pc.tokenRequest(ctx, "/auth/v1/token?grant_type=password", body)
}

// SignUp registers a new account. Depending on provider settings the
// returned session may be unusable until the email is confirmed.
func (pc *ProviderClient) SignUp(ctx context.Context, email, password, name string) (*Session, error) {
	body := map[string]any{
		"email":    email,
		"password": password,
		"data":     map[string]string{"name": name, "full_name": name},
	}
	return pc.tokenRequest(ctx, "/auth/v1/signup", body)
}

// SignOut revokes the session's refresh token on the provider side.
func (pc *ProviderClient) SignOut(ctx context.Context, accessToken string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, pc.BaseURL+"/auth/v1/logout", nil)
	if err != nil {
		return fmt.Errorf("failed to create logout request: %v", err)
	}
	req.Header.Set("apikey", pc.APIKey)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := pc.Client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send logout request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("provider returned non-2xx status: %s", resp.Status)
	}
	return nil
}

// OAuthURL builds the provider's authorize URL for a third-party login
// (e.g. "google"). The caller redirects the browser there; the provider
// redirects back to CallbackURL when done.
func (pc *ProviderClient) OAuthURL(provider string) string {
	config := &oauth2.Config{
		Endpoint: oauth2.Endpoint{
			AuthURL: pc.BaseURL + "/auth/v1/authorize",
		},
		RedirectURL: pc.CallbackURL,
	}
	return config.AuthCodeURL("",
		oauth2.SetAuthURLParam("provider", provider),
		oauth2.SetAuthURLParam("redirect_to", pc.CallbackURL))
}

func (pc *ProviderClient) tokenRequest(ctx context.Context, path string, body any) (*Session, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode auth request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, pc.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create auth request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", pc.APIKey)

	resp, err := pc.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send auth request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		var perr providerError
		if json.Unmarshal(raw, &perr) == nil {
			if perr.Message != "" {
				return nil, fmt.Errorf("auth failed: %s", perr.Message)
			}
			if perr.ErrorDescription != "" {
				return nil, fmt.Errorf("auth failed: %s", perr.ErrorDescription)
			}
		}
		return nil, fmt.Errorf("provider returned non-2xx status: %s", resp.Status)
	}

	var session Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("failed to decode auth response: %v", err)
	}
	return &session, nil
}
