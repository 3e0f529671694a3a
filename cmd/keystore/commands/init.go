package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/bankofai/agent-wallet/internal/domain"
	"github.com/bankofai/agent-wallet/internal/store"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create an empty keystore file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := appCtx.Config.Path
			_, err := os.Stat(path)
			if err == nil {
				return fmt.Errorf("file already exists: %s", path)
			}
			if !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			if err := store.ToFile(path, domain.KeystoreData{}, appCtx.Config.Password, appCtx.StoreOptions()...); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", path)
			return nil
		},
	}
}
