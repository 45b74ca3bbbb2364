package auth

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vanecli/vane/pkg/config"
	"github.com/vanecli/vane/pkg/log"
	"github.com/vanecli/vane/pkg/profile"
	"github.com/vanecli/vane/pkg/types"
)

// Action discriminates the auth operations the handler can drive.
type Action string

// Supported actions
const (
	ActionLogin  Action = "login"
	ActionLogout Action = "logout"
)

// Handler drives the login/logout protocol for one provider. It performs no
// retries and no rollback: transport and store errors surface to the caller
// unmodified.
type Handler struct {
	provider Provider
	profiles profile.Store
	prompter CredentialPrompter
	out      io.Writer
	logger   log.Logger

	// Session is the live session after a Handle call, for callers that
	// keep issuing requests on the same connection.
	Session *Session
}

// NewHandler creates a handler around the given provider and profile store.
func NewHandler(provider Provider, profiles profile.Store, prompter CredentialPrompter, out io.Writer, logger log.Logger) *Handler {
	if out == nil {
		out = os.Stdout
	}
	if logger == nil {
		logger = log.GetDefaultLogger()
	}
	return &Handler{
		provider: provider,
		profiles: profiles,
		prompter: prompter,
		out:      out,
		logger:   logger.WithComponent("auth"),
	}
}

// Handle dispatches one auth action. An unknown action is a caller contract
// violation and fails before any side effect.
func (h *Handler) Handle(ctx context.Context, action Action, args *Args) error {
	switch action {
	case ActionLogin:
		return h.login(ctx, args)
	case ActionLogout:
		return h.logout(ctx, args)
	default:
		return types.NewContractError("unknown auth action %q", action)
	}
}

func (h *Handler) login(ctx context.Context, args *Args) error {
	cfg, err := h.provider.SessionFromArgs(args)
	if err != nil {
		return err
	}
	if err := mergeCredentials(&cfg, args, h.prompter, h.provider.DefaultTokenType()); err != nil {
		return err
	}

	session := NewSession(cfg)
	h.Session = session

	token, err := h.provider.Login(ctx, session)
	if err != nil {
		return err
	}
	session.UseToken(cfg.TokenType, token)

	if args.ShowToken {
		fmt.Fprintf(h.out, "Received a token of type = %s.\n", cfg.TokenType)
		fmt.Fprintf(h.out, "The following token was retrieved and will not be stored in your profile:\n%s\n", token)
	} else {
		meta, err := h.profiles.GetMeta(h.provider.ProfileType(), false)
		if err != nil {
			return err
		}
		if meta != nil && meta.Name != "" {
			err := h.profiles.Update(ctx, profile.UpdateRequest{
				Name: meta.Name,
				Args: map[string]interface{}{
					types.TokenTypeProperty:  cfg.TokenType,
					types.TokenValueProperty: token,
				},
				Merge: true,
			})
			if err != nil {
				return fmt.Errorf("failed to store token in profile %s: %w", meta.Name, err)
			}
			h.logger.Debug("token stored", log.Str("profile", meta.Name))
		}
	}

	fmt.Fprintln(h.out, "Login successful.")
	return nil
}

func (h *Handler) logout(ctx context.Context, args *Args) error {
	// This handler never reads logout parameters from a profile.
	var missing []string
	if args.TokenType == "" {
		missing = append(missing, "token-type")
	}
	if args.TokenValue == "" {
		missing = append(missing, "token-value")
	}
	if args.Host == "" {
		missing = append(missing, "host")
	}
	if args.Port == 0 {
		missing = append(missing, "port")
	}
	if len(missing) > 0 {
		return types.NewValidationError("logout requires: %s", strings.Join(missing, ", "))
	}

	cfg, err := h.provider.SessionFromArgs(args)
	if err != nil {
		return err
	}
	cfg.Kind = AuthToken
	cfg.TokenType = args.TokenType
	cfg.TokenValue = args.TokenValue

	session := NewSession(cfg)
	h.Session = session

	if err := h.provider.Logout(ctx, session); err != nil {
		return err
	}

	meta, err := h.profiles.GetMeta(h.provider.ProfileType(), false)
	if err != nil {
		return err
	}
	if meta != nil && meta.Name != "" && meta.Profile != nil {
		stored, _ := meta.Profile.Properties[types.TokenValueProperty].(string)
		// Only clear a token that belongs to this profile; an ad-hoc token
		// supplied on the command line must not wipe someone else's.
		if stored == args.TokenValue {
			cleared := clearToken(meta.Profile)
			err := h.profiles.Save(ctx, profile.SaveRequest{
				Name:      meta.Name,
				Type:      meta.Type,
				Overwrite: true,
				Profile:   cleared,
			})
			if err != nil {
				return err
			}
			h.logger.Debug("token cleared", log.Str("profile", meta.Name))
		}
	}

	session.Reset()
	fmt.Fprintln(h.out, "Logout successful. The authentication token has been revoked.")
	return nil
}

// clearToken returns a copy of the profile with its token properties removed.
func clearToken(p *config.Profile) *config.Profile {
	cleared := config.NewProfile(p.Type)
	for k, v := range p.Properties {
		if k == types.TokenTypeProperty || k == types.TokenValueProperty {
			continue
		}
		cleared.Properties[k] = v
	}
	for _, name := range p.Secure {
		if name == types.TokenTypeProperty || name == types.TokenValueProperty {
			continue
		}
		cleared.Secure = append(cleared.Secure, name)
	}
	return cleared
}
