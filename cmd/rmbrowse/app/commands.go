package app

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/agentstation/rmbrowse/cmd/rmbrowse/cmd/discover"
	"github.com/agentstation/rmbrowse/cmd/rmbrowse/cmd/get"
	"github.com/agentstation/rmbrowse/cmd/rmbrowse/cmd/list"
	"github.com/agentstation/rmbrowse/cmd/rmbrowse/cmd/show"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	for _, cmd := range []*cobra.Command{
		list.NewCommand(a),
		get.NewCommand(a),
		show.NewCommand(a),
		discover.NewCommand(a),
	} {
		cmd.GroupID = "core"
		rootCmd.AddCommand(cmd)
	}

	version := a.NewVersionCommand()
	version.GroupID = "utility"
	rootCmd.AddCommand(version)
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "rmbrowse %s\n", a.version)
			if a.config.Verbose {
				fmt.Fprintf(w, "  commit:     %s\n", a.commit)
				fmt.Fprintf(w, "  built:      %s\n", a.date)
				fmt.Fprintf(w, "  built by:   %s\n", a.builtBy)
				fmt.Fprintf(w, "  go version: %s\n", runtime.Version())
				fmt.Fprintf(w, "  platform:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
			}
		},
	}
}
