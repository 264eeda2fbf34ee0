package models

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/staffing-budget/backend/internal/types"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

var (
	ErrInvalidAllocationValue = errors.New("invalid allocation value")
	ErrAllocationExceeded     = errors.New("total allocation ratio cannot exceed 1")
	ErrAllocationDuplicate    = errors.New("this employee has already been assigned to this budget period")
	ErrInvalidBudgetValue     = errors.New("budgeted resources must be between 0 and 10, with up to two decimal places")
	ErrInitialBudgetTooSmall  = fmt.Errorf("%w, and at least 0.10 when creating a project", ErrInvalidBudgetValue)
	ErrBudgetPeriodNotUnique  = errors.New("there is already a budget for this project and month")
	ErrProjectNameNotUnique   = errors.New("a project with this name already exists. Please choose a different name")
	ErrProjectNameEmpty       = errors.New("the project name must not be empty")
	ErrEmployeeEmailNotUnique = errors.New("an employee with this email already exists")
	ErrEmployeeNameEmpty      = errors.New("the employee name must not be empty")
	ErrEmployeeEmailEmpty     = errors.New("the employee email must not be empty")
	ErrEmployeeRoleInvalid    = errors.New("the role must be one of 'Manager', 'Team Lead' or 'Employee'")
)

// AllocationExceededError is returned when an allocation would raise the
// monthly commitment of an employee above 1.
type AllocationExceededError struct {
	EmployeeID uuid.UUID
	Employee   string
	Month      types.Month
	Total      decimal.Decimal // The commitment the allocation would have resulted in
}

func (e AllocationExceededError) Error() string {
	return fmt.Sprintf("%s for %s in %s, the allocation would result in a total of %s", ErrAllocationExceeded, e.Employee, e.Month.Label(), e.Total.StringFixed(2))
}

func (e AllocationExceededError) Unwrap() error {
	return ErrAllocationExceeded
}
