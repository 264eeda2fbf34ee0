package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/staffing-budget/backend/internal/types"
	"gorm.io/gorm"
)

var maximumBudget = decimal.NewFromInt(10)

// BudgetPeriod is the budget of a project for one month.
type BudgetPeriod struct {
	DefaultModel
	Project           Project         `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	ProjectID         uuid.UUID       `gorm:"uniqueIndex:budget_period_project_month"`
	Month             types.Month     `gorm:"uniqueIndex:budget_period_project_month"`
	BudgetedResources decimal.Decimal `gorm:"type:DECIMAL(4,2)"`
}

func (p *BudgetPeriod) BeforeSave(_ *gorm.DB) error {
	p.Month = types.MonthOf(time.Time(p.Month))
	return validateBudget(p.BudgetedResources)
}

// validateBudget verifies that a budget is between 0 and 10
// and has at most two decimal places.
func validateBudget(d decimal.Decimal) error {
	if d.IsNegative() || d.GreaterThan(maximumBudget) || !d.Equal(d.Round(2)) {
		return ErrInvalidBudgetValue
	}

	return nil
}

// GetBudgetPeriod returns the budget period of a project for a month.
//
// If there is none, nil is returned without an error.
func GetBudgetPeriod(db *gorm.DB, projectID uuid.UUID, month types.Month) (*BudgetPeriod, error) {
	var periods []BudgetPeriod
	err := db.
		Where("budget_periods.project_id = ?", projectID).
		Where("budget_periods.month = ?", month).
		Limit(1).
		Find(&periods).Error
	if err != nil {
		return nil, err
	}

	if len(periods) == 0 {
		return nil, nil
	}

	return &periods[0], nil
}

// UpsertBudgetPeriod sets the budgeted resources for a project and month.
//
// The budget period is created if it does not exist yet. The returned bool
// reports if it was created.
func UpsertBudgetPeriod(db *gorm.DB, projectID uuid.UUID, month types.Month, budgeted decimal.Decimal) (period BudgetPeriod, created bool, err error) {
	if err := validateBudget(budgeted); err != nil {
		return BudgetPeriod{}, false, err
	}

	err = transaction(db, func(tx *gorm.DB) error {
		// Verify that the project exists
		err := tx.First(&Project{}, projectID).Error
		if err != nil {
			return err
		}

		existing, err := GetBudgetPeriod(tx, projectID, month)
		if err != nil {
			return err
		}

		if existing == nil {
			period = BudgetPeriod{
				ProjectID:         projectID,
				Month:             month,
				BudgetedResources: budgeted,
			}
			created = true
			return tx.Create(&period).Error
		}

		period = *existing
		period.BudgetedResources = budgeted
		return tx.Save(&period).Error
	})

	return period, created, err
}

// EnumeratePeriods returns the months starting with the earliest budget
// period of the project, spanning horizon months.
//
// If the project has no budget periods, the result is empty.
func EnumeratePeriods(db *gorm.DB, projectID uuid.UUID, horizon int) ([]types.Month, error) {
	err := db.First(&Project{}, projectID).Error
	if err != nil {
		return nil, err
	}

	var earliest BudgetPeriod
	err = db.
		Where("budget_periods.project_id = ?", projectID).
		Order("budget_periods.month ASC").
		First(&earliest).Error
	if errors.Is(err, ErrResourceNotFound) {
		return []types.Month{}, nil
	} else if err != nil {
		return nil, err
	}

	if horizon < 1 {
		return []types.Month{}, nil
	}

	return earliest.Month.Range(horizon), nil
}
