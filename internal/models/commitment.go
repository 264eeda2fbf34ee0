package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/staffing-budget/backend/internal/types"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// CommitmentEntry is one allocation of an employee in a month.
type CommitmentEntry struct {
	AllocationID   uuid.UUID
	BudgetPeriodID uuid.UUID
	ProjectID      uuid.UUID
	Project        string
	Value          AllocationValue
}

// Commitment lists the allocations of an employee in a month.
type Commitment struct {
	EmployeeID  uuid.UUID
	Employee    string
	Month       types.Month
	Total       decimal.Decimal // Sum of numeric allocations
	Allocations []CommitmentEntry
}

type commitmentRow struct {
	AllocationID   uuid.UUID
	BudgetPeriodID uuid.UUID
	EmployeeID     uuid.UUID
	EmployeeName   string
	ProjectID      uuid.UUID
	ProjectName    string
	Value          AllocationValue
}

// Commitments returns the commitments of all employees that have at least
// one allocation in the month, ordered by employee name.
//
// If projectID is not uuid.Nil, only employees allocated to that project are
// returned. Their commitment still includes all projects.
func Commitments(db *gorm.DB, month types.Month, projectID uuid.UUID) ([]Commitment, error) {
	var rows []commitmentRow
	err := db.
		Model(&Allocation{}).
		Select("allocations.id AS allocation_id, allocations.budget_period_id, allocations.employee_id, employees.name AS employee_name, budget_periods.project_id, projects.name AS project_name, allocations.value").
		Joins("JOIN budget_periods ON budget_periods.id = allocations.budget_period_id").
		Joins("JOIN employees ON employees.id = allocations.employee_id").
		Joins("JOIN projects ON projects.id = budget_periods.project_id").
		Where("budget_periods.month = ?", month).
		Order("employees.name ASC, employees.id ASC, projects.name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	commitments := []Commitment{}
	for _, r := range rows {
		if len(commitments) == 0 || commitments[len(commitments)-1].EmployeeID != r.EmployeeID {
			commitments = append(commitments, Commitment{
				EmployeeID:  r.EmployeeID,
				Employee:    r.EmployeeName,
				Month:       month,
				Total:       decimal.Zero,
				Allocations: []CommitmentEntry{},
			})
		}

		c := &commitments[len(commitments)-1]
		c.Allocations = append(c.Allocations, CommitmentEntry{
			AllocationID:   r.AllocationID,
			BudgetPeriodID: r.BudgetPeriodID,
			ProjectID:      r.ProjectID,
			Project:        r.ProjectName,
			Value:          r.Value,
		})

		if !r.Value.IsIntern() {
			c.Total = c.Total.Add(r.Value.Decimal())
		}
	}

	if projectID == uuid.Nil {
		return commitments, nil
	}

	return slices.DeleteFunc(commitments, func(c Commitment) bool {
		return !slices.ContainsFunc(c.Allocations, func(e CommitmentEntry) bool {
			return e.ProjectID == projectID
		})
	}), nil
}
