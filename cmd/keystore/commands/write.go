package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func writeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "write <key> <value...>",
		Short: "Set a value and persist the keystore",
		Long:  "Set a value and persist the keystore. Value words are joined with spaces and surrounding quotes are trimmed.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			value := strings.Trim(strings.TrimSpace(strings.Join(args[1:], " ")), `'"`)

			ks := appCtx.Keystore
			if err := ks.Set(key, value); err != nil {
				return err
			}
			if err := ks.Write(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Written: %s\n", key)
			return nil
		},
	}
}
