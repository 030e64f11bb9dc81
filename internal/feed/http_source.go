package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/gridiron-lines/internal/models"
)

const (
	bettingDataPath     = "/api/betting-data"
	teamPerformancePath = "/api/team-performance/"
	trendsPath          = "/api/trends"
)

// HTTPSource implements Source against the betting analytics API
type HTTPSource struct {
	httpClient *RateLimitedHTTPClient
	baseURL    string
	logger     *logrus.Logger
}

// NewHTTPSource creates a new API-backed source
func NewHTTPSource(httpClient *RateLimitedHTTPClient, baseURL string, logger *logrus.Logger) *HTTPSource {
	return &HTTPSource{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger,
	}
}

// Name returns the name of the source
func (s *HTTPSource) Name() string {
	return "http"
}

// FetchBettingData retrieves the betting records for a week
func (s *HTTPSource) FetchBettingData(ctx context.Context, week int) ([]models.BettingData, error) {
	endpoint := s.baseURL + bettingDataPath
	if week != AllWeeks {
		endpoint += "?" + url.Values{"week": []string{strconv.Itoa(week)}}.Encode()
	}

	var records []models.BettingData
	if err := s.getJSON(ctx, endpoint, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []models.BettingData{}
	}
	return records, nil
}

// FetchTeamPerformance retrieves the season summary for a team
func (s *HTTPSource) FetchTeamPerformance(ctx context.Context, abbreviation string) (*models.TeamPerformance, error) {
	endpoint := s.baseURL + teamPerformancePath + url.PathEscape(abbreviation)

	var perf models.TeamPerformance
	if err := s.getJSON(ctx, endpoint, &perf); err != nil {
		return nil, err
	}
	return &perf, nil
}

// FetchTrends retrieves the weekly trend rates
func (s *HTTPSource) FetchTrends(ctx context.Context) ([]models.WeeklyTrend, error) {
	var trends []models.WeeklyTrend
	if err := s.getJSON(ctx, s.baseURL+trendsPath, &trends); err != nil {
		return nil, err
	}
	return trends, nil
}

func isCircuitOpen(err error) bool {
	return errors.Is(err, ErrCircuitOpen)
}

func (s *HTTPSource) getJSON(ctx context.Context, endpoint string, dest interface{}) error {
	resp, err := s.httpClient.Get(ctx, endpoint)
	if err != nil {
		code := ErrCodeNetworkError
		if resp != nil {
			code = codeForStatus(resp.StatusCode)
			resp.Body.Close()
		} else if isCircuitOpen(err) {
			code = ErrCodeCircuitOpen
		}
		return NewSourceError(s.Name(), code, "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return NewSourceError(s.Name(), codeForStatus(resp.StatusCode),
			fmt.Sprintf("API Error: %d", resp.StatusCode), fmt.Errorf("%s", strings.TrimSpace(string(body))))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return NewSourceError(s.Name(), ErrCodeInvalidData, "failed to decode response", err)
	}

	s.logger.WithField("endpoint", endpoint).Debug("Fetched feed document")
	return nil
}
