package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func readCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read [key]",
		Short: "Print one value, or every entry as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ks := appCtx.Keystore
			if len(args) == 1 {
				v, ok, err := ks.Get(args[0])
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("key not found: %s", args[0])
				}
				fmt.Fprintln(cmd.OutOrStdout(), v)
				return nil
			}

			all, err := ks.GetAll()
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(all, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
