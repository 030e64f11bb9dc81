package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/yourusername/gridiron-lines/internal/models"
)

// FileSource serves snapshots from a JSON fixture on disk
type FileSource struct {
	path string

	mu       sync.RWMutex
	snapshot *Snapshot
}

// NewFileSource creates a fixture-backed source; the file is read lazily
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name returns the name of the source
func (s *FileSource) Name() string {
	return "file"
}

// FetchBettingData returns the fixture records for a week
func (s *FileSource) FetchBettingData(ctx context.Context, week int) ([]models.BettingData, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]models.BettingData, 0, len(snap.BettingData))
	for _, record := range snap.BettingData {
		if week == AllWeeks || record.Game.Week == week {
			records = append(records, record)
		}
	}
	return records, nil
}

// FetchTeamPerformance returns the fixture summary for a team
func (s *FileSource) FetchTeamPerformance(ctx context.Context, abbreviation string) (*models.TeamPerformance, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	perf, ok := snap.TeamPerformance[strings.ToUpper(abbreviation)]
	if !ok {
		return nil, NewSourceError(s.Name(), ErrCodeNotFound,
			fmt.Sprintf("no performance data for %s", abbreviation), ErrNotFound)
	}
	return &perf, nil
}

// FetchTrends returns the fixture trend series
func (s *FileSource) FetchTrends(ctx context.Context) ([]models.WeeklyTrend, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Trends, nil
}

// Reload drops the parsed fixture so the next fetch reads the file again
func (s *FileSource) Reload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = nil
}

func (s *FileSource) load(ctx context.Context) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	snap := s.snapshot
	s.mu.RUnlock()
	if snap != nil {
		return snap, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot != nil {
		return s.snapshot, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		code := ErrCodeUnknown
		if os.IsNotExist(err) {
			code = ErrCodeNotFound
		}
		return nil, NewSourceError(s.Name(), code, "failed to read fixture "+s.path, err)
	}

	parsed := &Snapshot{}
	if err := json.Unmarshal(data, parsed); err != nil {
		return nil, NewSourceError(s.Name(), ErrCodeInvalidData, "failed to parse fixture "+s.path, err)
	}

	s.snapshot = parsed
	return parsed, nil
}
