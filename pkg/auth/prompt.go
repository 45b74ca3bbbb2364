package auth

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/vanecli/vane/pkg/types"
)

// CredentialPrompter obtains credentials the caller did not supply as
// arguments.
type CredentialPrompter interface {
	PromptUser() (string, error)
	PromptPassword() (string, error)
}

// TerminalPrompter reads credentials interactively, hiding password input.
type TerminalPrompter struct {
	In  io.Reader
	Out io.Writer
}

// NewTerminalPrompter creates a prompter over stdin/stdout.
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{In: os.Stdin, Out: os.Stdout}
}

// PromptUser asks for a user name.
func (p *TerminalPrompter) PromptUser() (string, error) {
	fmt.Fprint(p.Out, "User: ")
	reader := bufio.NewReader(p.In)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// PromptPassword asks for a password without echoing when stdin is a
// terminal.
func (p *TerminalPrompter) PromptPassword() (string, error) {
	fmt.Fprint(p.Out, "Password: ")
	if f, ok := p.In.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		raw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(p.Out)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
	reader := bufio.NewReader(p.In)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// mergeCredentials fills the session config's credentials from arguments,
// prompting for whatever is missing, and requests a token of the given type
// from the exchange.
func mergeCredentials(cfg *SessionConfig, args *Args, prompter CredentialPrompter, defaultTokenType string) error {
	cfg.User = args.User
	cfg.Password = args.Password

	if cfg.User == "" {
		if prompter == nil {
			return types.NewValidationError("user is required and no prompt is available")
		}
		user, err := prompter.PromptUser()
		if err != nil {
			return err
		}
		cfg.User = user
	}
	if cfg.Password == "" {
		if prompter == nil {
			return types.NewValidationError("password is required and no prompt is available")
		}
		password, err := prompter.PromptPassword()
		if err != nil {
			return err
		}
		cfg.Password = password
	}

	cfg.Kind = AuthBasic
	cfg.TokenType = args.TokenType
	if cfg.TokenType == "" {
		cfg.TokenType = defaultTokenType
	}
	return nil
}
