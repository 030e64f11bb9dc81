package feed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/gridiron-lines/internal/config"
)

const fixturePath = "testdata/snapshot.json"

func TestFileSourceFiltersByWeek(t *testing.T) {
	source := NewFileSource(fixturePath)
	ctx := context.Background()

	week1, err := source.FetchBettingData(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, week1, 2)

	week2, err := source.FetchBettingData(ctx, 2)
	require.NoError(t, err)
	require.Len(t, week2, 1)
	assert.Equal(t, "2024-w2-kc-cin", week2[0].Game.ID)

	all, err := source.FetchBettingData(ctx, AllWeeks)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	none, err := source.FetchBettingData(ctx, 17)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestFileSourceTeamPerformance(t *testing.T) {
	source := NewFileSource(fixturePath)

	perf, err := source.FetchTeamPerformance(context.Background(), "kc")
	require.NoError(t, err)
	assert.Equal(t, 6, perf.OverUnderRecord.Overs)

	_, err = source.FetchTeamPerformance(context.Background(), "DAL")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, ErrCodeNotFound, ErrorCode(err))
}

func TestFileSourceTrends(t *testing.T) {
	trends, err := NewFileSource(fixturePath).FetchTrends(context.Background())
	require.NoError(t, err)
	require.Len(t, trends, 2)
	assert.Equal(t, 0.625, trends[0].HomeWinRate)
}

func TestFileSourceErrors(t *testing.T) {
	_, err := NewFileSource("testdata/missing.json").FetchBettingData(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, ErrCodeNotFound, ErrorCode(err))

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("[1,2"), 0o600))
	_, err = NewFileSource(bad).FetchBettingData(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, ErrCodeInvalidData, ErrorCode(err))
}

func TestFileSourceReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"bettingData": []}`), 0o600))

	source := NewFileSource(path)
	records, err := source.FetchBettingData(context.Background(), AllWeeks)
	require.NoError(t, err)
	assert.Empty(t, records)

	data, err := os.ReadFile(fixturePath)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	records, err = source.FetchBettingData(context.Background(), AllWeeks)
	require.NoError(t, err)
	assert.Empty(t, records)

	source.Reload()
	records, err = source.FetchBettingData(context.Background(), AllWeeks)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestFileSourceCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileSource(fixturePath).FetchBettingData(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewSource(t *testing.T) {
	src, err := NewSource(config.FeedConfig{Type: "file", FilePath: fixturePath}, testLogger())
	require.NoError(t, err)
	assert.Equal(t, "file", src.Name())

	src, err = NewSource(config.FeedConfig{Type: "http", BaseURL: "http://localhost:8000", RateLimit: 2}, testLogger())
	require.NoError(t, err)
	assert.Equal(t, "http", src.Name())

	_, err = NewSource(config.FeedConfig{Type: "http"}, testLogger())
	assert.Error(t, err)

	_, err = NewSource(config.FeedConfig{Type: "file"}, testLogger())
	assert.Error(t, err)

	_, err = NewSource(config.FeedConfig{Type: "ftp"}, testLogger())
	assert.Error(t, err)
}
