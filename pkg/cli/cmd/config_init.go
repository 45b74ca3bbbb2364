package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vanecli/vane/pkg/cli/format"
	cfgdoc "github.com/vanecli/vane/pkg/config"
)

func newConfigInitCmd() *cobra.Command {
	var populate bool
	var prompt bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a fresh config document from declared profile schemas",
		Long: `Initialize a fresh config document from declared profile schemas.

The built-in base profile type is always declared; additional types are read
from schema files under the vane home schemas directory. Properties shared
identically across profile types are hoisted into the base profile.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := loadSettings()

			decls, err := cfgdoc.LoadDeclarations(settings.SchemasDir())
			if err != nil {
				return fmt.Errorf("failed to load profile schemas: %w", err)
			}
			decls = append([]cfgdoc.TypeDeclaration{cfgdoc.BaseDeclaration()}, decls...)

			opts := cfgdoc.BuildOptions{
				BaseProfileType:    cfgdoc.BaseProfileType,
				PopulateProperties: populate,
			}
			if prompt {
				opts.GetValueBack = promptValueBack(cmd.InOrStdin(), cmd.OutOrStdout())
			}

			doc, err := cfgdoc.Build(cmd.Context(), decls, opts)
			if err != nil {
				return err
			}

			path := documentPath(settings)
			if err := cfgdoc.Save(doc, path); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			format.Success("Created config document at %s (%d profile types)", path, len(doc.Profiles))
			return nil
		},
	}

	cmd.Flags().BoolVar(&populate, "populate", true, "populate template property values and per-type defaults")
	cmd.Flags().BoolVar(&prompt, "prompt", false, "prompt for base-profile connection and secure values")
	return cmd
}

// promptValueBack asks the user for hoisted and secure base-profile values.
// An empty answer skips the property.
func promptValueBack(in io.Reader, out io.Writer) cfgdoc.GetValueBackFunc {
	reader := bufio.NewReader(in)
	return func(ctx context.Context, name string, prop cfgdoc.PropertySchema) (interface{}, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fmt.Fprintf(out, "Enter %s (blank to skip): ", name)

		var answer string
		if f, ok := in.(*os.File); ok && prop.Secure && term.IsTerminal(int(f.Fd())) {
			raw, err := term.ReadPassword(int(f.Fd()))
			fmt.Fprintln(out)
			if err != nil {
				return nil, err
			}
			answer = string(raw)
		} else {
			line, err := reader.ReadString('\n')
			if err != nil && line == "" {
				return nil, err
			}
			answer = strings.TrimSpace(line)
		}

		if answer == "" {
			return nil, nil
		}
		return answer, nil
	}
}
