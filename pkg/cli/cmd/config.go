package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vanecli/vane/pkg/cli/format"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the vane config document",
		Long: `Manage the vane config document.

This command allows you to:
- Initialize a fresh config from declared profile schemas
- Convert legacy v1 profiles into the config document
- View the current document
- List profiles and per-type defaults`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigConvertCmd())
	cmd.AddCommand(newConfigViewCmd())
	cmd.AddCommand(newConfigProfilesCmd())

	return cmd
}

func newConfigViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View the current config document",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := loadSettings()
			doc, err := loadDocument(settings)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			// Mask values of secure-listed properties before rendering.
			for _, profile := range doc.Profiles {
				for _, name := range profile.Secure {
					if raw, ok := profile.Properties[name].(string); ok {
						profile.Properties[name] = format.MaskSecret(raw)
					}
				}
			}

			out, err := yaml.Marshal(doc)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	return cmd
}

func newConfigProfilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List profiles and per-type defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := loadSettings()
			doc, err := loadDocument(settings)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if len(doc.Profiles) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No profiles configured")
				return nil
			}

			defaulted := make(map[string]bool, len(doc.Defaults))
			for _, key := range doc.Defaults {
				defaulted[key] = true
			}

			keys := make([]string, 0, len(doc.Profiles))
			for key := range doc.Profiles {
				keys = append(keys, key)
			}
			sort.Strings(keys)

			for _, key := range keys {
				profile := doc.Profiles[key]
				marker := " "
				if defaulted[key] {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, key)
				fmt.Fprintf(cmd.OutOrStdout(), "    Type: %s\n", profile.Type)
				fmt.Fprintf(cmd.OutOrStdout(), "    Properties: %d\n", len(profile.Properties))
				if len(profile.Secure) > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "    Secure: %v\n", profile.Secure)
				}
			}
			return nil
		},
	}
	return cmd
}
