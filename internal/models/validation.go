package models

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared record validator with the betting data rules registered.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterStructValidation(bettingDataStructLevel, BettingData{})
	})
	return validate
}

// bettingDataStructLevel enforces the cross-entity invariants of a betting record
func bettingDataStructLevel(sl validator.StructLevel) {
	data := sl.Current().Interface().(BettingData)

	if data.Game.HomeTeam.ID != "" && data.Game.HomeTeam.ID == data.Game.AwayTeam.ID {
		sl.ReportError(data.Game.AwayTeam.ID, "AwayTeam", "AwayTeam", "distinctteams", "")
	}
	if data.Odds.GameID != data.Game.ID {
		sl.ReportError(data.Odds.GameID, "GameID", "GameID", "gameid", "")
	}
}

// Validate checks the record against the data model invariants
func (b BettingData) Validate() error {
	err := Validator().Struct(b)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("validation failed: %w", err)
	}

	problems := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		problems = append(problems, describeFieldError(fieldError))
	}
	return NewValidationError(b.Game.ID, problems)
}

// Validate checks the team performance counters and outcomes
func (tp TeamPerformance) Validate() error {
	err := Validator().Struct(tp)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("validation failed: %w", err)
	}

	problems := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		problems = append(problems, describeFieldError(fieldError))
	}
	return NewValidationError("team_performance", problems)
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.Namespace()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min", "max", "gt", "gte", "lt", "lte":
		return fmt.Sprintf("%s out of range (%s=%s), got %v", field, fe.Tag(), fe.Param(), fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %v", field, fe.Param(), fe.Value())
	case "ne":
		return fmt.Sprintf("%s must not be %s", field, fe.Param())
	case "distinctteams":
		return ErrSameTeams.Error()
	case "gameid":
		return ErrGameIDMismatch.Error()
	default:
		return fmt.Sprintf("%s failed validation: %s", field, fe.Tag())
	}
}
