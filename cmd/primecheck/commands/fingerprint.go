package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"libprime/internal/ffi"
)

func fingerprintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fingerprint [library]",
		Short: "Print the fingerprint of a libprime build",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfg.Library
			if len(args) == 1 {
				path = args[0]
			}
			fp, err := ffi.Fingerprint(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", fp)
			return nil
		},
	}
	// Hashing must work on files dlopen would reject.
	cmd.Annotations = map[string]string{noBackend: "true"}
	return cmd
}
