// Package auth drives the login/logout protocol against token-secured
// profiles.
package auth

// AuthKind selects how a session authenticates.
type AuthKind string

// Session authentication kinds
const (
	AuthBasic AuthKind = "basic"
	AuthToken AuthKind = "token"
)

// SessionConfig is the connection and credential state a session is built
// from.
type SessionConfig struct {
	Host     string
	Port     int
	BasePath string

	Kind     AuthKind
	User     string
	Password string

	TokenType  string
	TokenValue string
}

// Session is a live connection descriptor handed to a Provider for the
// actual login/logout exchange.
type Session struct {
	Config SessionConfig
}

// NewSession creates a session from the merged configuration.
func NewSession(cfg SessionConfig) *Session {
	if cfg.Kind == "" {
		cfg.Kind = AuthBasic
	}
	return &Session{Config: cfg}
}

// UseToken switches the session into token authentication.
func (s *Session) UseToken(tokenType, tokenValue string) {
	s.Config.Kind = AuthToken
	s.Config.TokenType = tokenType
	s.Config.TokenValue = tokenValue
}

// Reset restores basic-credential mode and clears token state.
func (s *Session) Reset() {
	s.Config.Kind = AuthBasic
	s.Config.TokenType = ""
	s.Config.TokenValue = ""
}
