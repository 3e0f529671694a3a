package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <key>",
		Short: "Remove a key and persist the keystore",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ks := appCtx.Keystore
			ok, err := ks.Delete(args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("key not found: %s", args[0])
			}
			if err := ks.Write(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted: %s\n", args[0])
			return nil
		},
	}
}
