package v4

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/staffing-budget/backend/internal/models"
	"github.com/staffing-budget/backend/internal/types"
	sb_uuid "github.com/staffing-budget/backend/internal/uuid"
)

type MonthQuery struct {
	QueryMonth
}

type CommitmentQuery struct {
	QueryMonth
	ProjectID sb_uuid.UUID `form:"project"` // Only employees allocated to this project
}

type ProjectVarianceLinks struct {
	Project      string `json:"project" example:"https://example.com/api/v4/projects/b0b2e7d4-6c38-4a3b-8d44-e54c7b3fb0ab"`            // The project
	BudgetPeriod string `json:"budgetPeriod" example:"https://example.com/api/v4/budget-periods/3d3a2fbb-2d6d-47ec-a9f7-9e48c7b3f9c4"` // The budget period
}

type ProjectVariance struct {
	ProjectID      uuid.UUID            `json:"projectId" example:"b0b2e7d4-6c38-4a3b-8d44-e54c7b3fb0ab"`      // ID of the project
	Project        string               `json:"project" example:"Apollo"`                                      // Name of the project
	BudgetPeriodID uuid.UUID            `json:"budgetPeriodId" example:"3d3a2fbb-2d6d-47ec-a9f7-9e48c7b3f9c4"` // ID of the budget period
	Links          ProjectVarianceLinks `json:"links"`
	Variance
}

type Month struct {
	Month        types.Month       `json:"month" example:"2025-03-01T00:00:00Z"` // The month
	Period       string            `json:"period" example:"Mar 2025"`            // The month in "Mon YYYY" format
	Budgeted     decimal.Decimal   `json:"budgeted" example:"4.5"`               // Budgeted resources of all projects
	Actual       decimal.Decimal   `json:"actual" example:"3.8"`                 // Allocated resources of all projects
	ProfitRating decimal.Decimal   `json:"profitRating" example:"0.7"`           // Budgeted minus actual resources
	Projects     []ProjectVariance `json:"projects"`                             // Variance per project, ordered by name
	Links        MonthLinks        `json:"links"`
}

type MonthLinks struct {
	Commitments string `json:"commitments" example:"https://example.com/api/v4/months/commitments?month=2025-03"` // Commitments of employees in the month
	Export      string `json:"export" example:"https://example.com/api/v4/months/export?month=2025-03"`           // XLSX export of the month
}

func newMonth(c *gin.Context, summary models.MonthSummary) Month {
	url := c.GetString(string(models.DBContextURL))

	projects := make([]ProjectVariance, 0, len(summary.Projects))
	for _, p := range summary.Projects {
		projects = append(projects, ProjectVariance{
			ProjectID:      p.ProjectID,
			Project:        p.Project,
			BudgetPeriodID: p.BudgetPeriodID,
			Links: ProjectVarianceLinks{
				Project:      fmt.Sprintf("%s/v4/projects/%s", url, p.ProjectID),
				BudgetPeriod: fmt.Sprintf("%s/v4/budget-periods/%s", url, p.BudgetPeriodID),
			},
			Variance: newVariance(p.Variance),
		})
	}

	return Month{
		Month:        summary.Month,
		Period:       summary.Month.Label(),
		Budgeted:     summary.Budgeted,
		Actual:       summary.Actual,
		ProfitRating: summary.ProfitRating,
		Projects:     projects,
		Links: MonthLinks{
			Commitments: fmt.Sprintf("%s/v4/months/commitments?month=%s", url, summary.Month),
			Export:      fmt.Sprintf("%s/v4/months/export?month=%s", url, summary.Month),
		},
	}
}

type MonthResponse struct {
	Error *string `json:"error" example:"the month query parameter must be set"` // The error, if any occurred
	Data  *Month  `json:"data"`                                                  // The rollup of the month
}

type CommitmentAllocation struct {
	AllocationID   uuid.UUID              `json:"allocationId" example:"9a1f3e5c-2b4d-4e6f-8a0b-1c2d3e4f5a6b"`   // ID of the allocation
	BudgetPeriodID uuid.UUID              `json:"budgetPeriodId" example:"3d3a2fbb-2d6d-47ec-a9f7-9e48c7b3f9c4"` // ID of the budget period
	ProjectID      uuid.UUID              `json:"projectId" example:"b0b2e7d4-6c38-4a3b-8d44-e54c7b3fb0ab"`      // ID of the project
	Project        string                 `json:"project" example:"Apollo"`                                      // Name of the project
	Value          models.AllocationValue `json:"value" swaggertype:"string" example:"0.5"`                      // Ratio or "intern"
}

type Commitment struct {
	EmployeeID  uuid.UUID              `json:"employeeId" example:"6f6b1a02-7a0d-4f8a-9d49-3a8c1e3f2a10"` // ID of the employee
	Employee    string                 `json:"employee" example:"Ada Lovelace"`                           // Name of the employee
	Month       types.Month            `json:"month" example:"2025-03-01T00:00:00Z"`                      // The month
	Total       decimal.Decimal        `json:"total" example:"0.8"`                                       // Sum of numeric allocations. Interns are not counted
	Allocations []CommitmentAllocation `json:"allocations"`                                               // Allocations of the employee in the month
}

func newCommitment(model models.Commitment) Commitment {
	allocations := make([]CommitmentAllocation, 0, len(model.Allocations))
	for _, a := range model.Allocations {
		allocations = append(allocations, CommitmentAllocation{
			AllocationID:   a.AllocationID,
			BudgetPeriodID: a.BudgetPeriodID,
			ProjectID:      a.ProjectID,
			Project:        a.Project,
			Value:          a.Value,
		})
	}

	return Commitment{
		EmployeeID:  model.EmployeeID,
		Employee:    model.Employee,
		Month:       model.Month,
		Total:       model.Total,
		Allocations: allocations,
	}
}

type CommitmentListResponse struct {
	Error *string      `json:"error" example:"the month query parameter must be set"` // The error, if any occurred
	Data  []Commitment `json:"data"`                                                  // Commitments, ordered by employee name
}
