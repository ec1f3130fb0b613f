package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/phrazzld/saju-api/internal/batch"
	"github.com/phrazzld/saju-api/internal/service"
)

func batchCmd(opts *rootOptions) *cobra.Command {
	var (
		input   string
		workers int
		format  string
	)

	c := &cobra.Command{
		Use:   "batch",
		Short: "Compute readings for birth records given as JSON lines",
		Long: "Reads one {\"id\", \"birth_date\", \"birth_time\"} object per line from --input\n" +
			"(or stdin when --input is -) and prints one result per record in input order.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format == formatText {
				return fmt.Errorf("unsupported format %q for batch (expected json|yaml)", format)
			}

			var r io.Reader = cmd.InOrStdin()
			if input != "-" {
				f, err := os.Open(input)
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			records, err := batch.ReadRecords(r)
			if err != nil {
				return err
			}

			log, err := opts.newLogger(cmd)
			if err != nil {
				return err
			}
			svc := service.NewDefaultReadingService(log)

			results, err := batch.NewPool(svc, batch.Config{Workers: workers}, log).Run(cmd.Context(), records)
			if err != nil {
				return err
			}
			return printOutput(cmd.OutOrStdout(), format, results, "")
		},
	}

	c.Flags().StringVarP(&input, "input", "i", "-", "JSON lines file, - for stdin")
	c.Flags().IntVarP(&workers, "workers", "w", batch.DefaultConfig().Workers, "Number of concurrent workers")
	c.Flags().StringVarP(&format, "format", "f", formatJSON, "Output format: json|yaml")
	return c
}
