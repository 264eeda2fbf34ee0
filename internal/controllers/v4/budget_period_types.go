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

type BudgetPeriodEditable struct {
	BudgetedResources decimal.Decimal `json:"budgetedResources" example:"2.5" minimum:"0" maximum:"10" multipleOf:"0.01"` // Budgeted resources for the month, in full time positions
}

type BudgetPeriodLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v4/budget-periods/3d3a2fbb-2d6d-47ec-a9f7-9e48c7b3f9c4"`                  // The budget period itself
	Project     string `json:"project" example:"https://example.com/api/v4/projects/b0b2e7d4-6c38-4a3b-8d44-e54c7b3fb0ab"`                     // The project
	Allocations string `json:"allocations" example:"https://example.com/api/v4/allocations?budgetPeriod=3d3a2fbb-2d6d-47ec-a9f7-9e48c7b3f9c4"` // Allocations for the budget period
	Variance    string `json:"variance" example:"https://example.com/api/v4/budget-periods/3d3a2fbb-2d6d-47ec-a9f7-9e48c7b3f9c4/variance"`     // Variance of the budget period
}

type BudgetPeriod struct {
	models.DefaultModel
	BudgetPeriodEditable
	ProjectID uuid.UUID         `json:"projectId" example:"b0b2e7d4-6c38-4a3b-8d44-e54c7b3fb0ab"` // ID of the project
	Month     types.Month       `json:"month" example:"2025-03-01T00:00:00Z"`                     // The month of the budget period
	Period    string            `json:"period" example:"Mar 2025"`                                // The month in "Mon YYYY" format
	Links     BudgetPeriodLinks `json:"links"`
}

// newBudgetPeriod returns the API v4 representation of the resource
func newBudgetPeriod(c *gin.Context, model models.BudgetPeriod) BudgetPeriod {
	url := c.GetString(string(models.DBContextURL))

	return BudgetPeriod{
		DefaultModel: model.DefaultModel,
		BudgetPeriodEditable: BudgetPeriodEditable{
			BudgetedResources: model.BudgetedResources,
		},
		ProjectID: model.ProjectID,
		Month:     model.Month,
		Period:    model.Month.Label(),
		Links: BudgetPeriodLinks{
			Self:        fmt.Sprintf("%s/v4/budget-periods/%s", url, model.ID),
			Project:     fmt.Sprintf("%s/v4/projects/%s", url, model.ProjectID),
			Allocations: fmt.Sprintf("%s/v4/allocations?budgetPeriod=%s", url, model.ID),
			Variance:    fmt.Sprintf("%s/v4/budget-periods/%s/variance", url, model.ID),
		},
	}
}

type BudgetPeriodResponse struct {
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *BudgetPeriod `json:"data"`                                                          // The resource
}

type BudgetPeriodListResponse struct {
	Data       []BudgetPeriod `json:"data"`                                                          // List of resources
	Error      *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination"`                                                    // Pagination information
}

type BudgetPeriodQueryFilter struct {
	QueryMonth
	ProjectID sb_uuid.UUID `form:"project"` // By project ID
	Offset    uint         `form:"offset"`  // The offset of the first budget period returned. Defaults to 0.
	Limit     int          `form:"limit"`   // Maximum number of budget periods to return. Defaults to 50.
}

// Variance is the comparison of budgeted and actual resources for a budget period.
type Variance struct {
	Budgeted             decimal.Decimal     `json:"budgeted" example:"2"`              // Budgeted resources
	Actual               decimal.Decimal     `json:"actual" example:"0.8"`              // Sum of all numeric allocations
	ProfitRating         decimal.Decimal     `json:"profitRating" example:"1.2"`        // Budgeted minus actual resources
	ProfitLossPercentage decimal.NullDecimal `json:"profitLossPercentage" example:"60"` // Profit rating in percent of the budgeted resources. null if nothing is budgeted
	Allocations          int                 `json:"allocations" example:"2"`           // Number of numeric allocations
	Interns              int                 `json:"interns" example:"1"`               // Number of intern allocations
}

func newVariance(v models.Variance) Variance {
	return Variance{
		Budgeted:             v.Budgeted,
		Actual:               v.Actual,
		ProfitRating:         v.ProfitRating,
		ProfitLossPercentage: v.ProfitLossPercentage,
		Allocations:          v.Allocations,
		Interns:              v.Interns,
	}
}

type BudgetPeriodVariance struct {
	BudgetPeriodID uuid.UUID   `json:"budgetPeriodId" example:"3d3a2fbb-2d6d-47ec-a9f7-9e48c7b3f9c4"` // ID of the budget period
	Month          types.Month `json:"month" example:"2025-03-01T00:00:00Z"`                          // The month
	Period         string      `json:"period" example:"Mar 2025"`                                     // The month in "Mon YYYY" format
	Variance
}

type BudgetPeriodVarianceResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *BudgetPeriodVariance `json:"data"`                                                          // The variance
}
