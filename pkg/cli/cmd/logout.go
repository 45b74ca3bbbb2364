package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vanecli/vane/pkg/auth"
	cfgdoc "github.com/vanecli/vane/pkg/config"
	"github.com/vanecli/vane/pkg/profile"
)

func newLogoutCmd() *cobra.Command {
	var host string
	var port int
	var tokenType string
	var tokenValue string
	var profileType string

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Revoke a session token",
		Long: `Revoke a session token.

Token type, token value, host and port must all be supplied as flags; this
command never reads them from a profile. The active profile's stored token is
cleared only when it matches the supplied token value.`,
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
				nil,
				cmd.OutOrStdout(),
				logger,
			)
			return handler.Handle(cmd.Context(), auth.ActionLogout, &auth.Args{
				Host:       host,
				Port:       port,
				TokenType:  tokenType,
				TokenValue: tokenValue,
			})
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "service host (required)")
	cmd.Flags().IntVar(&port, "port", 0, "service port (required)")
	cmd.Flags().StringVar(&tokenType, "token-type", "", "type of the token to revoke (required)")
	cmd.Flags().StringVar(&tokenValue, "token-value", "", "value of the token to revoke (required)")
	cmd.Flags().StringVar(&profileType, "profile-type", cfgdoc.BaseProfileType, "profile type to operate on")
	return cmd
}
