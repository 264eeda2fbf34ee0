package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/staffing-budget/backend/internal/types"
	"gorm.io/gorm"
)

var hundred = decimal.NewFromInt(100)

// Variance compares the budgeted with the actually allocated resources.
type Variance struct {
	Budgeted             decimal.Decimal
	Actual               decimal.Decimal     // Sum of numeric allocations
	ProfitRating         decimal.Decimal     // Budgeted minus actual resources
	ProfitLossPercentage decimal.NullDecimal // Profit rating in percent of the budget, null for a budget of 0
	Allocations          int                 // Number of numeric allocations
	Interns              int                 // Number of intern allocations
}

func summarize(budgeted decimal.Decimal, allocations []Allocation) Variance {
	v := Variance{
		Budgeted: budgeted,
		Actual:   sumAllocations(allocations),
	}

	for _, a := range allocations {
		if a.Value.IsIntern() {
			v.Interns++
		} else {
			v.Allocations++
		}
	}

	v.ProfitRating = v.Budgeted.Sub(v.Actual)
	if !v.Budgeted.IsZero() {
		v.ProfitLossPercentage = decimal.NewNullDecimal(v.ProfitRating.Div(v.Budgeted).Mul(hundred).Round(2))
	}

	return v
}

// Variance calculates the variance of the budget period.
func (p BudgetPeriod) Variance(db *gorm.DB) (Variance, error) {
	var allocations []Allocation
	err := db.Where("allocations.budget_period_id = ?", p.ID).Find(&allocations).Error
	if err != nil {
		return Variance{}, err
	}

	return summarize(p.BudgetedResources, allocations), nil
}

// ProjectVariance is the variance of one project in a month.
type ProjectVariance struct {
	ProjectID      uuid.UUID
	Project        string
	BudgetPeriodID uuid.UUID
	Variance
}

// MonthSummary is the rollup of all projects for a month.
type MonthSummary struct {
	Month        types.Month
	Budgeted     decimal.Decimal
	Actual       decimal.Decimal
	ProfitRating decimal.Decimal
	Projects     []ProjectVariance
}

// SummarizeMonth calculates the budgeted and actual resources of all
// projects in a month.
func SummarizeMonth(db *gorm.DB, month types.Month) (MonthSummary, error) {
	summary := MonthSummary{
		Month:    month,
		Budgeted: decimal.Zero,
		Actual:   decimal.Zero,
		Projects: []ProjectVariance{},
	}

	var periods []BudgetPeriod
	err := db.
		Preload("Project").
		Joins("JOIN projects ON projects.id = budget_periods.project_id").
		Where("budget_periods.month = ?", month).
		Order("projects.name ASC").
		Find(&periods).Error
	if err != nil {
		return MonthSummary{}, err
	}

	if len(periods) == 0 {
		summary.ProfitRating = decimal.Zero
		return summary, nil
	}

	ids := make([]uuid.UUID, 0, len(periods))
	for _, p := range periods {
		ids = append(ids, p.ID)
	}

	var allocations []Allocation
	err = db.Where("allocations.budget_period_id IN ?", ids).Find(&allocations).Error
	if err != nil {
		return MonthSummary{}, err
	}

	byPeriod := make(map[uuid.UUID][]Allocation, len(periods))
	for _, a := range allocations {
		byPeriod[a.BudgetPeriodID] = append(byPeriod[a.BudgetPeriodID], a)
	}

	for _, p := range periods {
		v := summarize(p.BudgetedResources, byPeriod[p.ID])
		summary.Budgeted = summary.Budgeted.Add(v.Budgeted)
		summary.Actual = summary.Actual.Add(v.Actual)

		summary.Projects = append(summary.Projects, ProjectVariance{
			ProjectID:      p.ProjectID,
			Project:        p.Project.Name,
			BudgetPeriodID: p.ID,
			Variance:       v,
		})
	}

	summary.ProfitRating = summary.Budgeted.Sub(summary.Actual)
	return summary, nil
}
