package commands

import (
	"github.com/spf13/cobra"

	"github.com/bankofai/agent-wallet/internal/app"
)

var (
	cfg    app.Config
	appCtx *app.App
)

// NewRootCmd builds the command tree with fresh flag state.
func NewRootCmd() *cobra.Command {
	cfg = app.Config{}
	appCtx = nil

	root := &cobra.Command{
		Use:          "keystore",
		Short:        "Read and write the local agent-wallet keystore",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(cfg)
			if err != nil {
				return err
			}
			appCtx = a
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appCtx != nil {
				_ = appCtx.Log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&cfg.Path, "path", "", "keystore file (default $"+app.EnvPath+" or ./.keystore.json)")
	root.PersistentFlags().StringVarP(&cfg.Password, "password", "p", "", "encryption password (default $"+app.EnvPassword+")")
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", app.DefaultLogLevel, "log level: debug, info, warn, error")

	root.AddCommand(readCmd(), writeCmd(), deleteCmd(), initCmd(), infoCmd())
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}
