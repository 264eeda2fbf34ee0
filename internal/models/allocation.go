package models

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/staffing-budget/backend/internal/types"
	"gorm.io/gorm"
)

// Allocation assigns an employee to a budget period.
type Allocation struct {
	DefaultModel
	BudgetPeriod   BudgetPeriod    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	BudgetPeriodID uuid.UUID       `gorm:"uniqueIndex:allocation_period_employee"`
	Employee       Employee        `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	EmployeeID     uuid.UUID       `gorm:"uniqueIndex:allocation_period_employee"`
	Value          AllocationValue `gorm:"not null"`
}

// MonthlyCommitment returns the sum of all numeric allocations of an employee
// for budget periods in the month. Interns do not count.
//
// The allocation with the ID passed as exclude is ignored. Pass uuid.Nil to
// include all allocations.
func MonthlyCommitment(db *gorm.DB, employeeID uuid.UUID, month types.Month, exclude uuid.UUID) (decimal.Decimal, error) {
	var allocations []Allocation
	err := db.
		Joins("JOIN budget_periods ON budget_periods.id = allocations.budget_period_id").
		Where("allocations.employee_id = ?", employeeID).
		Where("budget_periods.month = ?", month).
		Where("allocations.id != ?", exclude).
		Find(&allocations).Error
	if err != nil {
		return decimal.Zero, err
	}

	return sumAllocations(allocations), nil
}

func sumAllocations(allocations []Allocation) decimal.Decimal {
	sum := decimal.Zero
	for _, a := range allocations {
		if a.Value.IsIntern() {
			continue
		}
		sum = sum.Add(a.Value.Decimal())
	}

	return sum
}

// checkCommitment verifies that adding the value to the commitment of the
// employee in the month keeps it at or below 1.
func checkCommitment(tx *gorm.DB, employee Employee, month types.Month, value AllocationValue, exclude uuid.UUID) error {
	if value.IsIntern() {
		return nil
	}

	committed, err := MonthlyCommitment(tx, employee.ID, month, exclude)
	if err != nil {
		return err
	}

	total := committed.Add(value.Decimal())
	if total.GreaterThan(maximumAllocation) {
		log.Info().
			Str("employee", employee.ID.String()).
			Str("month", month.String()).
			Str("total", total.StringFixed(2)).
			Msg("rejected allocation exceeding the monthly commitment")

		return AllocationExceededError{
			EmployeeID: employee.ID,
			Employee:   employee.Name,
			Month:      month,
			Total:      total,
		}
	}

	return nil
}

// Assign allocates an employee to a budget period.
//
// Numeric values are rounded to two decimal places and must be between 0.10 and 1.00.
func Assign(db *gorm.DB, employeeID, budgetPeriodID uuid.UUID, value AllocationValue) (allocation Allocation, err error) {
	defer func() { recordLedgerOutcome(operationAssign, err) }()

	value, err = value.assignable()
	if err != nil {
		return Allocation{}, err
	}

	err = transaction(db, func(tx *gorm.DB) error {
		var employee Employee
		err := tx.First(&employee, employeeID).Error
		if err != nil {
			return err
		}

		var period BudgetPeriod
		err = tx.First(&period, budgetPeriodID).Error
		if err != nil {
			return err
		}

		var count int64
		err = tx.Model(&Allocation{}).
			Where("allocations.employee_id = ?", employeeID).
			Where("allocations.budget_period_id = ?", budgetPeriodID).
			Count(&count).Error
		if err != nil {
			return err
		}

		if count > 0 {
			return ErrAllocationDuplicate
		}

		err = checkCommitment(tx, employee, period.Month, value, uuid.Nil)
		if err != nil {
			return err
		}

		allocation = Allocation{
			BudgetPeriodID: budgetPeriodID,
			EmployeeID:     employeeID,
			Value:          value,
		}

		return tx.Create(&allocation).Error
	})
	if err != nil {
		return Allocation{}, err
	}

	return allocation, nil
}

// EditAllocation changes the value of an existing allocation.
//
// The value must be one of the editable values, it is not rounded.
func EditAllocation(db *gorm.DB, id uuid.UUID, value AllocationValue) (allocation Allocation, err error) {
	defer func() { recordLedgerOutcome(operationEdit, err) }()

	value, err = value.editable()
	if err != nil {
		return Allocation{}, err
	}

	err = transaction(db, func(tx *gorm.DB) error {
		err := tx.First(&allocation, id).Error
		if err != nil {
			return err
		}

		var employee Employee
		err = tx.First(&employee, allocation.EmployeeID).Error
		if err != nil {
			return err
		}

		var period BudgetPeriod
		err = tx.First(&period, allocation.BudgetPeriodID).Error
		if err != nil {
			return err
		}

		err = checkCommitment(tx, employee, period.Month, value, allocation.ID)
		if err != nil {
			return err
		}

		allocation.Value = value
		return tx.Model(&allocation).Update("value", value).Error
	})
	if err != nil {
		return Allocation{}, err
	}

	return allocation, nil
}

// RemoveAllocation deletes an allocation.
func RemoveAllocation(db *gorm.DB, id uuid.UUID) (err error) {
	defer func() { recordLedgerOutcome(operationRemove, err) }()

	var allocation Allocation
	err = db.First(&allocation, id).Error
	if err != nil {
		return err
	}

	return db.Delete(&allocation).Error
}

// ConflictCheck is the result of checking a proposed allocation.
type ConflictCheck struct {
	Conflict  bool            // The allocation would be rejected
	Committed decimal.Decimal // Commitment of the employee in the month before the allocation
	Total     decimal.Decimal // Commitment including the proposed allocation
	Reason    error           // Why the allocation would be rejected
}

// CheckConflict reports if assigning the input to an employee in a month would
// be rejected. It applies the same rules as Assign.
//
// Malformed or out of range input is reported as conflict instead of an error.
func CheckConflict(db *gorm.DB, employeeID uuid.UUID, month types.Month, input string) (ConflictCheck, error) {
	var employee Employee
	err := db.First(&employee, employeeID).Error
	if err != nil {
		return ConflictCheck{}, err
	}

	committed, err := MonthlyCommitment(db, employeeID, month, uuid.Nil)
	if err != nil {
		return ConflictCheck{}, err
	}

	check := ConflictCheck{
		Committed: committed,
		Total:     committed,
	}

	value, err := ParseAssignValue(input)
	if err != nil {
		check.Conflict = true
		check.Reason = err
		return check, nil
	}

	err = checkCommitment(db, employee, month, value, uuid.Nil)
	var exceeded AllocationExceededError
	if errors.As(err, &exceeded) {
		check.Conflict = true
		check.Total = exceeded.Total
		check.Reason = err
		return check, nil
	} else if err != nil {
		return ConflictCheck{}, err
	}

	check.Total = committed.Add(value.Decimal())
	return check, nil
}
