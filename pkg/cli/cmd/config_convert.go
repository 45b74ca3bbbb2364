package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/vanecli/vane/pkg/cli/format"
	cfgdoc "github.com/vanecli/vane/pkg/config"
	"github.com/vanecli/vane/pkg/convert"
	"github.com/vanecli/vane/pkg/vault"
)

func newConfigConvertCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert legacy v1 profiles into the config document",
		Long: `Convert legacy v1 profiles into the config document.

Each profile-type directory under the vane home profiles directory is read;
properties whose values are held in the vault are resolved, and deprecated
property names are renamed. Failed profiles are reported and skipped rather
than aborting the conversion.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := loadSettings()
			logger := newLogger(settings)

			v, err := openVault(settings, logger)
			if err != nil {
				return fmt.Errorf("failed to open vault: %w", err)
			}
			defer v.Close()

			spinner, _ := pterm.DefaultSpinner.Start("Converting v1 profiles...")
			converter := convert.NewConverter(convert.DirSource{}, v, logger)
			result, err := converter.Convert(cmd.Context(), settings.ProfilesDir())
			if err != nil {
				if spinner != nil {
					spinner.Fail("Conversion aborted")
				}
				return err
			}
			if spinner != nil {
				spinner.Success("Conversion complete")
			}

			if !dryRun {
				// Externalize secure values: move each secure property into
				// the vault and reference it from the document's secure list.
				if err := externalizeSecureValues(cmd.Context(), result.Config, v); err != nil {
					return err
				}
				path := documentPath(settings)
				if err := cfgdoc.Save(result.Config, path); err != nil {
					return fmt.Errorf("failed to save config: %w", err)
				}
			}

			renderConversionReport(result)

			if dryRun {
				format.Warn("Dry run: no config document was written")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would be converted without writing the config document")
	return cmd
}

// externalizeSecureValues moves plaintext secure values out of the document
// and into the vault, leaving dot-path references behind.
func externalizeSecureValues(ctx context.Context, doc *cfgdoc.Document, v vault.Vault) error {
	for key, profile := range doc.Profiles {
		for _, name := range profile.Secure {
			value, ok := profile.Properties[name]
			if !ok {
				continue
			}
			secret := fmt.Sprintf("%v", value)
			path := secureDotPath(key, name)
			if err := v.Store(ctx, path, secret); err != nil {
				return fmt.Errorf("failed to store secure value %s for %s: %w", name, key, err)
			}
			delete(profile.Properties, name)
			doc.Secure = append(doc.Secure, path)
		}
	}
	return nil
}

func renderConversionReport(result *convert.Result) {
	rows := pterm.TableData{{"TYPE", "PROFILE", "STATUS", "DETAIL"}}
	types := make([]string, 0, len(result.Converted))
	for profileType := range result.Converted {
		types = append(types, profileType)
	}
	sort.Strings(types)
	for _, profileType := range types {
		for _, name := range result.Converted[profileType] {
			rows = append(rows, []string{profileType, name, "converted", ""})
		}
	}
	for _, failure := range result.Failures {
		name := failure.Name
		if name == "" {
			name = "(meta)"
		}
		rows = append(rows, []string{failure.Type, name, "failed", failure.Err.Error()})
	}

	if len(rows) == 1 {
		fmt.Println("No v1 profiles found")
		return
	}
	_ = pterm.DefaultTable.WithHasHeader(true).WithData(rows).Render()
}
