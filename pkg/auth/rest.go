package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vanecli/vane/pkg/types"
)

// RESTProvider is the default provider: it exchanges credentials for a token
// against a service's REST auth endpoints.
type RESTProvider struct {
	Type       string
	TokenKind  string
	Scheme     string
	LoginPath  string
	LogoutPath string
	Client     *http.Client
}

// NewRESTProvider creates a provider for the given profile type with the
// conventional endpoint layout.
func NewRESTProvider(profileType string) *RESTProvider {
	return &RESTProvider{
		Type:       profileType,
		TokenKind:  types.TokenTypeJWT,
		Scheme:     "https",
		LoginPath:  "/auth/login",
		LogoutPath: "/auth/logout",
		Client:     &http.Client{Timeout: 30 * time.Second},
	}
}

// ProfileType names the profile type this provider authenticates.
func (p *RESTProvider) ProfileType() string {
	return p.Type
}

// DefaultTokenType is the token kind requested when the caller does not
// specify one.
func (p *RESTProvider) DefaultTokenType() string {
	return p.TokenKind
}

// SessionFromArgs builds the session configuration from command arguments.
func (p *RESTProvider) SessionFromArgs(args *Args) (SessionConfig, error) {
	if args.Host == "" {
		return SessionConfig{}, types.NewValidationError("host is required")
	}
	port := args.Port
	if port == 0 {
		port = 443
	}
	return SessionConfig{Host: args.Host, Port: port}, nil
}

// Login posts the session's credentials and returns the issued token value.
func (p *RESTProvider) Login(ctx context.Context, session *Session) (string, error) {
	body, err := json.Marshal(map[string]string{
		"tokenType": session.Config.TokenType,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint(session, p.LoginPath), bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(session.Config.User, session.Config.Password)

	resp, err := p.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("login failed: %s", readError(resp))
	}

	var payload struct {
		TokenValue string `json:"tokenValue"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to parse login response: %w", err)
	}
	if payload.TokenValue == "" {
		return "", fmt.Errorf("login response carried no token")
	}
	return payload.TokenValue, nil
}

// Logout revokes the session's token.
func (p *RESTProvider) Logout(ctx context.Context, session *Session) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, p.endpoint(session, p.LogoutPath), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", session.Config.TokenValue))

	resp, err := p.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("logout failed: %s", readError(resp))
	}
	return nil
}

func (p *RESTProvider) endpoint(session *Session, path string) string {
	return fmt.Sprintf("%s://%s:%d%s", p.Scheme, session.Config.Host, session.Config.Port, path)
}

func readError(resp *http.Response) string {
	data, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil || len(data) == 0 {
		return resp.Status
	}
	return fmt.Sprintf("%s: %s", resp.Status, bytes.TrimSpace(data))
}
