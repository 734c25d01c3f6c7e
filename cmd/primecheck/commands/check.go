package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// check: one verdict per argument. A value that fails to marshal aborts the
// command before any verdict for it is printed.
func checkCmd() *cobra.Command {
	var (
		useColor bool
		width    int
	)
	cmd := &cobra.Command{
		Use:   "check <value>...",
		Short: "Print whether each value is prime",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			primeOut := color.New(color.FgGreen)
			compositeOut := color.New(color.FgYellow)
			if !useColor {
				primeOut.DisableColor()
				compositeOut.DisableColor()
			}

			for _, arg := range args {
				line, isPrime, err := verdict(cmd, width, arg)
				if err != nil {
					logger.Debug("boundary rejected value", zap.String("value", arg), zap.Error(err))
					return err
				}
				out := compositeOut
				if isPrime {
					out = primeOut
				}
				if _, err := out.Fprintln(cmd.OutOrStdout(), line); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&useColor, "color", true, "colour verdicts when writing to a terminal")
	cmd.Flags().IntVar(&width, "width", 0, "check as unsigned 32 or 64 bit instead of signed int")
	return cmd
}

func verdict(cmd *cobra.Command, width int, arg string) (string, bool, error) {
	switch width {
	case 0:
		v, err := wire.Boundary.CallString(cmd.Context(), arg)
		return v.String(), v.Prime, err
	case 32, 64:
		v, err := wire.CheckWide(width, arg)
		return v.String(), v.Prime, err
	default:
		return "", false, fmt.Errorf("--width must be 32 or 64, got %d", width)
	}
}
