package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/yourusername/gridiron-lines/internal/pipeline"
	"github.com/yourusername/gridiron-lines/internal/service"
)

var (
	week         int
	sortBy       string
	sortOrder    string
	teamFilter   string
	statusFilter string
)

func init() {
	gamesCmd.Flags().IntVarP(&week, "week", "w", 0, "Week to show (0 for all weeks)")
	gamesCmd.Flags().StringVar(&sortBy, "sort-by", "", "Sort field: gameTime, spread, total, confidence")
	gamesCmd.Flags().StringVar(&sortOrder, "order", "", "Sort order: asc or desc")
	gamesCmd.Flags().StringVar(&teamFilter, "team", "", "Only games involving this team abbreviation")
	gamesCmd.Flags().StringVar(&statusFilter, "status", "", "Only games with this status")

	filtersCmd.Flags().IntVarP(&week, "week", "w", 0, "Week to inspect (0 for all weeks)")
}

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List betting lines for a week",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		criteria := buildCriteria()
		views, err := dashboard.Games(ctx, week, criteria)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(stdout(), views)
		}

		unfiltered := -1
		if len(views) == 0 && criteria.HasFilters() {
			all, err := dashboard.Games(ctx, week, criteria.ClearFilters())
			if err != nil {
				return err
			}
			unfiltered = len(all)
		}
		printGames(stdout(), views, criteria, unfiltered)
		return nil
	},
}

var filtersCmd = &cobra.Command{
	Use:   "filters",
	Short: "Show the teams and statuses available to filter on",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		options, err := dashboard.Filters(ctx, week)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(stdout(), options)
		}
		fmt.Fprintf(stdout(), "Teams:    %v\n", options.Teams)
		fmt.Fprintf(stdout(), "Statuses: %v\n", options.Statuses)
		return nil
	},
}

// buildCriteria starts from the configured defaults and applies any flags given
func buildCriteria() pipeline.Criteria {
	criteria := cfg.DefaultCriteria()
	if sortBy != "" {
		criteria.SortBy = pipeline.SortField(sortBy)
	}
	if sortOrder != "" {
		criteria.SortOrder = pipeline.SortOrder(sortOrder)
	}
	criteria.TeamFilter = teamFilter
	criteria.StatusFilter = statusFilter
	return criteria
}

// printGames writes the game table. unfiltered is the game count with filters
// cleared, or -1 when it was not looked up.
func printGames(out io.Writer, views []service.GameView, criteria pipeline.Criteria, unfiltered int) {
	if len(views) == 0 {
		if !criteria.HasFilters() {
			fmt.Fprintln(out, "No games available.")
			return
		}
		fmt.Fprintf(out, "No games match the current filters (team=%q status=%q).\n", criteria.TeamFilter, criteria.StatusFilter)
		if unfiltered > 0 {
			fmt.Fprintf(out, "%d games available with filters cleared.\n", unfiltered)
		}
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WEEK\tMATCHUP\tKICKOFF\tSPREAD\tMONEYLINE\tIMPLIED\tTOTAL\tSTATUS\tCONFIDENCE\tVALUE")
	for _, v := range views {
		confidence := "-"
		if v.Confidence != nil {
			confidence = fmt.Sprintf("%s (%s)", v.ConfidenceLabel, v.PredictedWinner)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s / %s\t%s / %s\t%s / %s\t%s\t%s\t%s\t%s\n",
			v.Week,
			v.Matchup,
			v.GameTime.Local().Format("Mon Jan 2 3:04PM"),
			v.Away.Spread, v.Home.Spread,
			v.Away.Moneyline, v.Home.Moneyline,
			v.Away.ImpliedProbability, v.Home.ImpliedProbability,
			v.Total,
			v.StatusLabel,
			confidence,
			v.ValueAssessment,
		)
	}
	w.Flush()
}
