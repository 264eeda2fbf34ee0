package v4

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/staffing-budget/backend/internal/models"
	"github.com/staffing-budget/backend/internal/types"
	sb_uuid "github.com/staffing-budget/backend/internal/uuid"
)

type AllocationCreate struct {
	EmployeeID     uuid.UUID               `json:"employeeId" example:"6f6b1a02-7a0d-4f8a-9d49-3a8c1e3f2a10"`     // ID of the employee
	BudgetPeriodID uuid.UUID               `json:"budgetPeriodId" example:"3d3a2fbb-2d6d-47ec-a9f7-9e48c7b3f9c4"` // ID of the budget period
	Value          *models.AllocationValue `json:"value" swaggertype:"string" example:"0.5"`                      // Ratio between 0.10 and 1.00 or "intern". Rounded to two decimal places
}

type AllocationEditable struct {
	Value *models.AllocationValue `json:"value" swaggertype:"string" example:"0.75"` // One of 0.10, 0.20, 0.25, 0.30, 0.40, 0.50, 0.60, 0.70, 0.75, 0.80, 0.90, 1.00 or "intern"
}

type AllocationLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v4/allocations/9a1f3e5c-2b4d-4e6f-8a0b-1c2d3e4f5a6b"`            // The allocation itself
	Employee     string `json:"employee" example:"https://example.com/api/v4/employees/6f6b1a02-7a0d-4f8a-9d49-3a8c1e3f2a10"`          // The employee
	BudgetPeriod string `json:"budgetPeriod" example:"https://example.com/api/v4/budget-periods/3d3a2fbb-2d6d-47ec-a9f7-9e48c7b3f9c4"` // The budget period
}

type Allocation struct {
	models.DefaultModel
	EmployeeID     uuid.UUID              `json:"employeeId" example:"6f6b1a02-7a0d-4f8a-9d49-3a8c1e3f2a10"`     // ID of the employee
	BudgetPeriodID uuid.UUID              `json:"budgetPeriodId" example:"3d3a2fbb-2d6d-47ec-a9f7-9e48c7b3f9c4"` // ID of the budget period
	Value          models.AllocationValue `json:"value" swaggertype:"string" example:"0.5"`                      // Ratio or "intern"
	Links          AllocationLinks        `json:"links"`
}

// newAllocation returns the API v4 representation of the resource
func newAllocation(c *gin.Context, model models.Allocation) Allocation {
	url := c.GetString(string(models.DBContextURL))

	return Allocation{
		DefaultModel:   model.DefaultModel,
		EmployeeID:     model.EmployeeID,
		BudgetPeriodID: model.BudgetPeriodID,
		Value:          model.Value,
		Links: AllocationLinks{
			Self:         fmt.Sprintf("%s/v4/allocations/%s", url, model.ID),
			Employee:     fmt.Sprintf("%s/v4/employees/%s", url, model.EmployeeID),
			BudgetPeriod: fmt.Sprintf("%s/v4/budget-periods/%s", url, model.BudgetPeriodID),
		},
	}
}

type AllocationListResponse struct {
	Data       []Allocation `json:"data"`                                                          // List of resources
	Error      *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination  `json:"pagination"`                                                    // Pagination information
}

type AllocationCreateResponse struct {
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []AllocationResponse `json:"data"`                                                          // List of created resources
}

func (a *AllocationCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	a.Data = append(a.Data, AllocationResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AllocationResponse struct {
	Error *string     `json:"error" example:"total allocation ratio cannot exceed 1"` // The error, if any occurred
	Data  *Allocation `json:"data"`                                                   // The resource
}

type AllocationQueryFilter struct {
	QueryMonth
	EmployeeID     sb_uuid.UUID `form:"employee"`     // By employee ID
	BudgetPeriodID sb_uuid.UUID `form:"budgetPeriod"` // By budget period ID
	ProjectID      sb_uuid.UUID `form:"project"`      // By project ID
	Offset         uint         `form:"offset"`       // The offset of the first allocation returned. Defaults to 0.
	Limit          int          `form:"limit"`        // Maximum number of allocations to return. Defaults to 50.
}

// month returns the month filter, the zero month if none is set
func (f AllocationQueryFilter) month() (types.Month, error) {
	return f.parse(false)
}
