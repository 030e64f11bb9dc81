package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/yourusername/gridiron-lines/internal/aggregator"
)

var teamCmd = &cobra.Command{
	Use:   "team <ABBR>",
	Short: "Show a team's against-the-spread and over/under summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		summary, err := dashboard.TeamPanel(ctx, args[0])
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(stdout(), summary)
		}
		printTeamSummary(stdout(), strings.ToUpper(args[0]), summary)
		return nil
	},
}

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Show league-wide weekly betting trends",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		points, err := dashboard.Trends(ctx)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(stdout(), points)
		}
		printTrends(stdout(), points)
		return nil
	},
}

func printTeamSummary(out io.Writer, team string, summary *aggregator.TeamSummary) {
	fmt.Fprintf(out, "%s Performance\n", team)
	fmt.Fprintf(out, "  ATS Record:  %s (%d%%)\n", summary.ATSRecord, summary.ATSWinPercentage)
	fmt.Fprintf(out, "  O/U Record:  %s (%d%% overs)\n", summary.OverUnderRecord, summary.OverPercentage)
	if summary.Last5ATSRecord != "" {
		fmt.Fprintf(out, "  Last 5 ATS:  %s\n", summary.Last5ATSRecord)
	}

	if len(summary.Last5) == 0 {
		fmt.Fprintln(out, "  No recent games.")
		return
	}

	fmt.Fprintln(out)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  GAME\tSPREAD\tMARGIN\tCOVERED")
	for _, g := range summary.Last5 {
		covered := "no"
		if g.Covered {
			covered = "yes"
		}
		fmt.Fprintf(w, "  %s\t%g\t%g\t%s\n", g.Game, g.Spread, g.ActualMargin, covered)
	}
	w.Flush()
}

func printTrends(out io.Writer, points []aggregator.TrendPoint) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WEEK\tHOME WIN %\tFAVORITE WIN %\tOVER %")
	for _, p := range points {
		fmt.Fprintf(w, "%s\t%.1f\t%.1f\t%.1f\n", p.Week, p.HomeWinPct, p.FavoriteWinPct, p.OverPct)
	}
	w.Flush()
}
