package aggregator

import "github.com/yourusername/gridiron-lines/internal/models"

// TrendPoint is one week of the league betting trends chart, in percent
type TrendPoint struct {
	Week           string  `json:"week"`
	HomeWinPct     float64 `json:"homeWinPct"`
	FavoriteWinPct float64 `json:"favoriteWinPct"`
	OverPct        float64 `json:"overPct"`
}

// TrendSeries converts weekly rates into chart points, preserving order
func TrendSeries(trends []models.WeeklyTrend) []TrendPoint {
	points := make([]TrendPoint, 0, len(trends))
	for _, trend := range trends {
		points = append(points, TrendPoint{
			Week:           WeekLabel(trend.Week),
			HomeWinPct:     trend.HomeWinRate * 100,
			FavoriteWinPct: trend.FavoriteWinRate * 100,
			OverPct:        trend.OverRate * 100,
		})
	}
	return points
}
