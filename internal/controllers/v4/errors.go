package v4

import (
	"errors"
	"net/http"

	"github.com/staffing-budget/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errMonthNotSetInQuery  = errors.New("the month query parameter must be set")
	errHorizon             = errors.New("the horizon must be between 1 and 60")
	errBudgetNotSet        = errors.New("the budgetedResources field must be set")
	errEmployeeNotSet      = errors.New("the employeeId field must be set")
	errBudgetPeriodNotSet  = errors.New("the budgetPeriodId field must be set")
	errValueNotSetInQuery  = errors.New("the value query parameter must be set")
	errValueNotSet         = errors.New("the value field must be set")
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)
