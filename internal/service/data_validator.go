package service

import (
	"errors"

	"github.com/yourusername/gridiron-lines/internal/logger"
	"github.com/yourusername/gridiron-lines/internal/models"
)

// RecordValidator screens feed records before they reach the engine
type RecordValidator struct {
	logger *logger.FeedLogger
}

// NewRecordValidator creates a new record validator
func NewRecordValidator(log *logger.FeedLogger) *RecordValidator {
	return &RecordValidator{logger: log}
}

// ValidateRecords returns the records that pass validation, in their original order,
// and the number dropped. Dropped records are logged with their problems.
func (v *RecordValidator) ValidateRecords(records []models.BettingData) ([]models.BettingData, int) {
	valid := make([]models.BettingData, 0, len(records))
	skipped := 0
	seen := make(map[string]struct{}, len(records))

	for _, record := range records {
		if problems := v.ValidateRecord(record); len(problems) > 0 {
			skipped++
			v.log(record.Game.ID, problems)
			continue
		}
		if _, dup := seen[record.Game.ID]; dup {
			skipped++
			v.log(record.Game.ID, []string{"duplicate game id"})
			continue
		}
		seen[record.Game.ID] = struct{}{}
		valid = append(valid, record)
	}

	return valid, skipped
}

// ValidateRecord returns the problems with a single record, or nil
func (v *RecordValidator) ValidateRecord(record models.BettingData) []string {
	err := record.Validate()
	if err == nil {
		return nil
	}

	var verr *models.ValidationError
	if errors.As(err, &verr) {
		return verr.Problems
	}
	return []string{err.Error()}
}

func (v *RecordValidator) log(recordID string, problems []string) {
	if v.logger != nil {
		v.logger.LogRecordSkipped(recordID, problems)
	}
}
