package auth

import "context"

// Provider supplies the service-specific pieces of the login/logout flow.
// The handler owns the protocol; providers own the transport exchange and
// the shape of their sessions.
type Provider interface {
	// ProfileType names the profile type this provider authenticates.
	ProfileType() string

	// DefaultTokenType is requested from the service when the caller does
	// not specify one.
	DefaultTokenType() string

	// SessionFromArgs builds the provider's session configuration from
	// command arguments, before credentials are merged in.
	SessionFromArgs(args *Args) (SessionConfig, error)

	// Login exchanges the session's credentials for a token.
	Login(ctx context.Context, session *Session) (string, error)

	// Logout revokes the session's token.
	Logout(ctx context.Context, session *Session) error
}
