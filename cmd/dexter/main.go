package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/dexter/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "dexter: %v\n", err)
		return 1
	}
	return 0
}

// NewRootCmd builds the dexter command tree. The root command runs the TUI.
func NewRootCmd() *cobra.Command {
	var opts app.Options

	rootCmd := &cobra.Command{
		Use:           "dexter",
		Short:         "Browse the creature catalog from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/dexter/config.toml)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences file (default ~/.config/dexter/prefs.toml)")
	flags.StringVar(&opts.LogFile, "log-file", "", "diagnostic log file (overrides log_file)")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "log debug entries")
	rootCmd.Flags().IntVar(&opts.StartID, "start", 0, "first record number to show (overrides start_id)")

	rootCmd.AddCommand(newShowCmd(&opts))
	return rootCmd
}

func newShowCmd(opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name|number>",
		Short: "Print one record and exit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Show(cmd.Context(), *opts, args[0], cmd.OutOrStdout())
		},
	}
}
