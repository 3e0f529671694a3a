package commands

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/bankofai/agent-wallet/internal/store"
)

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show path, on-disk format, size and entry count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ks := appCtx.Keystore
			data, err := ks.Read()
			if err != nil {
				return err
			}

			format := ks.Format()
			size := "-"
			if format != store.FormatNone {
				st, err := os.Stat(ks.Path())
				if err != nil {
					return err
				}
				size = humanize.Bytes(uint64(st.Size()))
			}
			note := ""
			if format.Legacy() {
				note = " (legacy, upgraded on next write)"
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Path:    %s\n", ks.Path())
			fmt.Fprintf(w, "Format:  %s%s\n", format, note)
			fmt.Fprintf(w, "Size:    %s\n", size)
			fmt.Fprintf(w, "Entries: %d\n", len(data))
			return nil
		},
	}
}
