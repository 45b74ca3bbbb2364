package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vanecli/vane/pkg/auth"
	cfgdoc "github.com/vanecli/vane/pkg/config"
	"github.com/vanecli/vane/pkg/profile"
)

func newLoginCmd() *cobra.Command {
	var host string
	var port int
	var user string
	var password string
	var tokenType string
	var showToken bool
	var profileType string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Obtain a session token and store it in the active profile",
		Long: `Obtain a session token and store it in the active profile.

Credentials not supplied as flags are prompted for. With --show-token the
token is printed instead of being stored.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := loadSettings()
			logger := newLogger(settings)

			doc, err := loadDocument(settings)
			if err != nil {
				return err
			}
			store := profile.NewDocumentStore(doc, documentPath(settings))

			handler := auth.NewHandler(
				auth.NewRESTProvider(profileType),
				store,
				auth.NewTerminalPrompter(),
				cmd.OutOrStdout(),
				logger,
			)
			return handler.Handle(cmd.Context(), auth.ActionLogin, &auth.Args{
				Host:      host,
				Port:      port,
				User:      user,
				Password:  password,
				TokenType: tokenType,
				ShowToken: showToken,
			})
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "service host")
	cmd.Flags().IntVar(&port, "port", 0, "service port")
	cmd.Flags().StringVar(&user, "user", "", "user name (prompted when omitted)")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	cmd.Flags().StringVar(&tokenType, "token-type", "", "token type to request")
	cmd.Flags().BoolVar(&showToken, "show-token", false, "print the token instead of storing it")
	cmd.Flags().StringVar(&profileType, "profile-type", cfgdoc.BaseProfileType, "profile type to authenticate")
	return cmd
}
