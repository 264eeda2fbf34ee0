package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/staffing-budget/backend/internal/types"
	"gorm.io/gorm"
)

// Project is a project that receives budgeted resources per month.
type Project struct {
	DefaultModel
	Name string `gorm:"uniqueIndex"`
	Note string
}

func (p *Project) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return ErrProjectNameEmpty
	}

	return nil
}

// CreateProjectWithBudget creates a project together with its first budget period.
//
// The initial budget must be at least 0.10.
func CreateProjectWithBudget(db *gorm.DB, project *Project, month types.Month, budgeted decimal.Decimal) (BudgetPeriod, error) {
	if err := validateBudget(budgeted); err != nil {
		return BudgetPeriod{}, err
	}

	if budgeted.LessThan(minimumAllocation) {
		return BudgetPeriod{}, ErrInitialBudgetTooSmall
	}

	period := BudgetPeriod{
		Month:             month,
		BudgetedResources: budgeted,
	}

	err := transaction(db, func(tx *gorm.DB) error {
		err := tx.Create(project).Error
		if err != nil {
			return err
		}

		period.ProjectID = project.ID
		return tx.Create(&period).Error
	})

	return period, err
}

// DeleteProject deletes a project. Its budget periods and their allocations are
// deleted with it.
func DeleteProject(db *gorm.DB, id uuid.UUID) error {
	var p Project
	err := db.First(&p, id).Error
	if err != nil {
		return err
	}

	return db.Delete(&p).Error
}
