package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/aikz/aikz-zipper/internal/config"
	"github.com/aikz/aikz-zipper/internal/logger"
	"github.com/aikz/aikz-zipper/internal/service/repackager"
	"github.com/aikz/aikz-zipper/internal/version"
)

// newRootCmd builds the command that wraps the installer into its ZIP archive.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "aikz-zipper",
		Short: "Wrap the AIKZ MSI installer into a stored ZIP archive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Usage mistakes are reported by cobra; from here on failures are logged.
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true

			err := run(cmd.Context())
			if err != nil {
				logger.ErrorKV(cmd.Context(), "Repackaging failed", "error", err)
			}

			return err
		},
	}

	version.AttachCobraVersionCommand(root)

	return root
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	_, err = repackager.Run(ctx, repackager.OptionsFromConfig(cfg))

	return err
}

// Execute runs the aikz-zipper CLI and exits with non-zero status on error.
func Execute() {
	defer logger.Sync()

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		logger.Sync()
		os.Exit(1)
	}
}
