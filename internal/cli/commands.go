package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/phrazzld/saju-api/internal/domain"
	"github.com/phrazzld/saju-api/internal/domain/stars"
	"github.com/phrazzld/saju-api/internal/report"
)

// birthFlags are the flags shared by the chart commands.
type birthFlags struct {
	date   string
	time   string
	format string
}

func (f *birthFlags) register(c *cobra.Command) {
	c.Flags().StringVarP(&f.date, "date", "d", "", "Birth date, YYYY-MM-DD (required)")
	c.Flags().StringVarP(&f.time, "time", "t", "", "Birth time, HH:MM or HH:MM:SS (required)")
	c.Flags().StringVarP(&f.format, "format", "f", formatText, "Output format: text|json|yaml")
	_ = c.MarkFlagRequired("date")
	_ = c.MarkFlagRequired("time")
}

type chartOutput struct {
	Pillars  domain.FourPillars        `json:"pillars"`
	Elements domain.FiveElementProfile `json:"five_elements"`
}

func chartCmd(opts *rootOptions) *cobra.Command {
	var flags birthFlags

	c := &cobra.Command{
		Use:   "chart",
		Short: "Print the four pillars and the five-element profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := opts.readingService(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			fp, err := svc.CalculatePillars(ctx, flags.date, flags.time)
			if err != nil {
				return err
			}
			profile, err := svc.AnalyzeFiveElements(ctx, fp)
			if err != nil {
				return err
			}

			text := report.Chart(fp) + "\n" + report.FiveElements(profile)
			return printOutput(cmd.OutOrStdout(), flags.format, chartOutput{Pillars: fp, Elements: profile}, text)
		},
	}

	flags.register(c)
	return c
}

type starsOutput struct {
	Pillars domain.FourPillars `json:"pillars"`
	Stars   []domain.StarMatch `json:"stars"`
}

func starsCmd(opts *rootOptions) *cobra.Command {
	var flags birthFlags
	var onlyPresent bool

	c := &cobra.Command{
		Use:   "stars",
		Short: "Evaluate every star rule against the chart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := opts.readingService(cmd)
			if err != nil {
				return err
			}

			reading, err := svc.CalculateStars(cmd.Context(), flags.date, flags.time)
			if err != nil {
				return err
			}

			list := stars.Ordered(reading.Stars)
			if onlyPresent {
				list = presentOnly(list)
			}

			text := report.Chart(reading.Pillars) + "\n" + report.Stars(reading.Stars)
			return printOutput(cmd.OutOrStdout(), flags.format, starsOutput{Pillars: reading.Pillars, Stars: list}, text)
		},
	}

	flags.register(c)
	c.Flags().BoolVar(&onlyPresent, "only-present", false, "List only the stars that matched (json and yaml output)")
	return c
}

func readingCmd(opts *rootOptions) *cobra.Command {
	var flags birthFlags

	c := &cobra.Command{
		Use:   "reading",
		Short: "Print the chart, the five-element profile and all stars",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := opts.readingService(cmd)
			if err != nil {
				return err
			}

			reading, err := svc.Reading(cmd.Context(), flags.date, flags.time)
			if err != nil {
				return err
			}

			text := report.Full(reading.Pillars, reading.Elements, reading.Stars)
			return printOutput(cmd.OutOrStdout(), flags.format, reading, text)
		},
	}

	flags.register(c)
	return c
}

func rulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the star rules in catalog order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, r := range stars.Rules() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Name, r.Category, r.Label)
			}
			return tw.Flush()
		},
	}
}

func presentOnly(list []domain.StarMatch) []domain.StarMatch {
	out := make([]domain.StarMatch, 0, len(list))
	for _, m := range list {
		if m.Has {
			out = append(out, m)
		}
	}
	return out
}
