package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var styleFormat string

var styleCmd = &cobra.Command{
	Use:   "style",
	Short: "Inspect house-style profiles",
}

var styleShowCmd = &cobra.Command{
	Use:   "show [NAME]",
	Short: "Print a profile",
	Long: `Print a house-style profile. NAME is a built-in profile, a profile in
the styles directory or a path to a profile file. Without NAME the
configured profile is printed. The output can be saved and edited to
start a new profile.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireStyles(); err != nil {
			return err
		}
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		hs, err := styleService.Load(name)
		if err != nil {
			return err
		}
		data, err := styleService.Export(hs, styleFormat)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var styleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := requireStyles(); err != nil {
			return err
		}
		names, err := styleService.List()
		if err != nil {
			return err
		}
		current := ""
		if settingsService != nil {
			current = settingsService.Get().Style.Profile
		}
		for _, name := range names {
			marker := "  "
			if name == current {
				marker = "* "
			}
			fmt.Fprintln(cmd.OutOrStdout(), marker+name)
		}
		return nil
	},
}

func init() {
	styleShowCmd.Flags().StringVarP(&styleFormat, "format", "f", "toml", "output format: toml, yaml or json")
	styleCmd.AddCommand(styleShowCmd, styleListCmd)
	rootCmd.AddCommand(styleCmd)
}

func requireStyles() error {
	if styleService == nil {
		return errors.New("style service not configured")
	}
	return nil
}
