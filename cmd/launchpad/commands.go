package main

import (
	"fmt"
	"os"

	"launchpad/internal/config"
	"launchpad/internal/shell"
	"launchpad/pkg/types"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// shellsCmd lists the shells this build can run
func shellsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shells",
		Short: "List the available shells",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			r := lipgloss.NewRenderer(out)
			name := r.NewStyle().Bold(true).Width(10)
			muted := r.NewStyle().Faint(true)

			for _, k := range shell.Kinds() {
				line := "  " + name.Render(k.String()) + k.Description()
				if k == types.DefaultShell {
					line = "* " + name.Render(k.String()) + k.Description()
				}
				if !shell.Available(k) {
					line += muted.Render(" (not available in this build)")
				}
				fmt.Fprintln(out, line)
			}
		},
	}
}

// configCmd groups the configuration file helpers
func configCmd(app *application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	cmd.AddCommand(configPathCmd(app))
	cmd.AddCommand(configInitCmd(app))
	return cmd
}

func configPathCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := app.configPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func configInitCmd(app *application) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := app.configPath()
			if err != nil {
				return err
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			if err := config.SaveConfig(config.New(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}
