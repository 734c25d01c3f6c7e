package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"libprime/internal/scan"
	"libprime/internal/store"
)

func scanCmd() *cobra.Command {
	var (
		from, to int32
		workers  int
		list     bool
		verify   bool
		outPath  string
	)
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Count the primes in [--from, --to]",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("workers") {
				workers = wire.Config.Workers
			}
			report, err := scan.Run(cmd.Context(), wire.Oracle, scan.Options{
				From:    from,
				To:      to,
				Workers: workers,
				Collect: list,
				Verify:  verify,
			})
			if err != nil {
				return err
			}
			logger.Debug("scan finished",
				zap.Int32("from", report.From),
				zap.Int32("to", report.To),
				zap.Int("count", report.Count),
				zap.Int64("elapsed_ms", report.ElapsedMS),
			)

			w := cmd.OutOrStdout()
			for _, p := range report.Primes {
				fmt.Fprintln(w, p)
			}
			fmt.Fprintf(w, "%d primes in [%d, %d]\n", report.Count, report.From, report.To)
			if verify && !report.Verified {
				fmt.Fprintf(w, "not verified: --to above %d\n", scan.MaxVerifyLimit)
			}

			if outPath != "" {
				return store.WriteReport(outPath, report)
			}
			return nil
		},
	}
	cmd.Flags().Int32Var(&from, "from", 0, "first value (inclusive)")
	cmd.Flags().Int32Var(&to, "to", 10000, "last value (inclusive)")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (default from config, then GOMAXPROCS)")
	cmd.Flags().BoolVar(&list, "list", false, "print every prime found")
	cmd.Flags().BoolVar(&verify, "verify", false, "cross-check verdicts against a sieve")
	cmd.Flags().StringVar(&outPath, "out", "", "write a JSON report to this file")
	return cmd
}
