package v4

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/staffing-budget/backend/internal/models"
	"github.com/staffing-budget/backend/internal/types"
)

type ProjectEditable struct {
	Name string `json:"name" example:"Apollo" default:""`                         // Name of the project, must be unique
	Note string `json:"note" example:"Customer project for ACME Inc." default:""` // A longer description of the project
}

// model returns the database resource for the API representation of the editable fields
func (editable ProjectEditable) model() models.Project {
	return models.Project{
		Name: editable.Name,
		Note: editable.Note,
	}
}

// InitialBudget is the first budget period of a project created together with the project.
type InitialBudget struct {
	Month             types.Month     `json:"month" example:"2025-03"`                                                      // The month of the first budget period
	BudgetedResources decimal.Decimal `json:"budgetedResources" example:"2.5" minimum:"0.1" maximum:"10" multipleOf:"0.01"` // Budgeted resources for the month
}

type ProjectCreate struct {
	ProjectEditable
	InitialBudget *InitialBudget `json:"initialBudget"` // Optional first budget period
}

type ProjectLinks struct {
	Self          string `json:"self" example:"https://example.com/api/v4/projects/b0b2e7d4-6c38-4a3b-8d44-e54c7b3fb0ab"`                        // The project itself
	BudgetPeriods string `json:"budgetPeriods" example:"https://example.com/api/v4/budget-periods?project=b0b2e7d4-6c38-4a3b-8d44-e54c7b3fb0ab"` // Budget periods of the project
	Periods       string `json:"periods" example:"https://example.com/api/v4/projects/b0b2e7d4-6c38-4a3b-8d44-e54c7b3fb0ab/periods"`             // Months the project can be budgeted for
	Month         string `json:"month" example:"https://example.com/api/v4/projects/b0b2e7d4-6c38-4a3b-8d44-e54c7b3fb0ab/YYYY-MM"`               // The budget of a specific month. This is a template, replace YYYY-MM with the month
	Allocations   string `json:"allocations" example:"https://example.com/api/v4/allocations?project=b0b2e7d4-6c38-4a3b-8d44-e54c7b3fb0ab"`      // Allocations of the project
}

type Project struct {
	models.DefaultModel
	ProjectEditable
	Links ProjectLinks `json:"links"`
}

// newProject returns the API v4 representation of the resource
func newProject(c *gin.Context, model models.Project) Project {
	url := c.GetString(string(models.DBContextURL))

	return Project{
		DefaultModel: model.DefaultModel,
		ProjectEditable: ProjectEditable{
			Name: model.Name,
			Note: model.Note,
		},
		Links: ProjectLinks{
			Self:          fmt.Sprintf("%s/v4/projects/%s", url, model.ID),
			BudgetPeriods: fmt.Sprintf("%s/v4/budget-periods?project=%s", url, model.ID),
			Periods:       fmt.Sprintf("%s/v4/projects/%s/periods", url, model.ID),
			Month:         fmt.Sprintf("%s/v4/projects/%s/YYYY-MM", url, model.ID),
			Allocations:   fmt.Sprintf("%s/v4/allocations?project=%s", url, model.ID),
		},
	}
}

type ProjectListResponse struct {
	Data       []Project   `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ProjectCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ProjectResponse `json:"data"`                                                          // List of created resources
}

func (t *ProjectCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, ProjectResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ProjectResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Project `json:"data"`                                                          // The resource
}

type ProjectQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // By name
	Note   string `form:"note" filterField:"false"`   // By note
	Search string `form:"search" filterField:"false"` // By string in name or note
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first project returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of projects to return. Defaults to 50.
}

// ProjectPeriod is a month a project can be budgeted for.
type ProjectPeriod struct {
	Month             types.Month         `json:"month" example:"2025-03-01T00:00:00Z"` // The month
	Period            string              `json:"period" example:"Mar 2025"`            // The month in "Mon YYYY" format
	BudgetedResources decimal.NullDecimal `json:"budgetedResources" example:"2.5"`      // Budgeted resources, null if the month has no budget yet
	Links             ProjectPeriodLinks  `json:"links"`                                // Links for the period
}

type ProjectPeriodLinks struct {
	Self string `json:"self" example:"https://example.com/api/v4/projects/b0b2e7d4-6c38-4a3b-8d44-e54c7b3fb0ab/2025-03"` // Budget of the project for the month
}

type ProjectPeriodsResponse struct {
	Data  []ProjectPeriod `json:"data"`                                                          // The periods
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ProjectPeriodsQuery struct {
	Horizon int `form:"horizon" example:"6"` // Number of months to return. Defaults to the configured period horizon.
}
