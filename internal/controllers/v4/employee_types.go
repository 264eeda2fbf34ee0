package v4

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/staffing-budget/backend/internal/models"
)

type EmployeeEditable struct {
	Name  string      `json:"name" example:"Ada Lovelace"`                                 // Full name of the employee
	Email string      `json:"email" example:"ada@example.com"`                             // Email address, must be unique
	Role  models.Role `json:"role" example:"Team Lead" enums:"Manager,Team Lead,Employee"` // Role of the employee. Defaults to Employee
}

// model returns the database resource for the API representation of the editable fields
func (editable EmployeeEditable) model() models.Employee {
	return models.Employee{
		Name:  editable.Name,
		Email: editable.Email,
		Role:  editable.Role,
	}
}

type EmployeeLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v4/employees/6f6b1a02-7a0d-4f8a-9d49-3a8c1e3f2a10"`                   // The employee itself
	Allocations string `json:"allocations" example:"https://example.com/api/v4/allocations?employee=6f6b1a02-7a0d-4f8a-9d49-3a8c1e3f2a10"` // Allocations of the employee
	Conflict    string `json:"conflict" example:"https://example.com/api/v4/employees/6f6b1a02-7a0d-4f8a-9d49-3a8c1e3f2a10/conflict"`      // Checks a proposed allocation. Set month and value as query parameters
}

type Employee struct {
	models.DefaultModel
	EmployeeEditable
	Links EmployeeLinks `json:"links"`
}

// newEmployee returns the API v4 representation of the resource
func newEmployee(c *gin.Context, model models.Employee) Employee {
	url := c.GetString(string(models.DBContextURL))

	return Employee{
		DefaultModel: model.DefaultModel,
		EmployeeEditable: EmployeeEditable{
			Name:  model.Name,
			Email: model.Email,
			Role:  model.Role,
		},
		Links: EmployeeLinks{
			Self:        fmt.Sprintf("%s/v4/employees/%s", url, model.ID),
			Allocations: fmt.Sprintf("%s/v4/allocations?employee=%s", url, model.ID),
			Conflict:    fmt.Sprintf("%s/v4/employees/%s/conflict", url, model.ID),
		},
	}
}

type EmployeeListResponse struct {
	Data       []Employee  `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type EmployeeCreateResponse struct {
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []EmployeeResponse `json:"data"`                                                          // List of created resources
}

func (e *EmployeeCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	e.Data = append(e.Data, EmployeeResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type EmployeeResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Employee `json:"data"`                                                          // The resource
}

type EmployeeQueryFilter struct {
	Name   string      `form:"name" filterField:"false"`   // By name
	Email  string      `form:"email" filterField:"false"`  // By email
	Role   models.Role `form:"role"`                       // By role
	Search string      `form:"search" filterField:"false"` // By string in name or email
	Offset uint        `form:"offset" filterField:"false"` // The offset of the first employee returned. Defaults to 0.
	Limit  int         `form:"limit" filterField:"false"`  // Maximum number of employees to return. Defaults to 50.
}

// model returns the fields that can be filtered on directly
func (f EmployeeQueryFilter) model() models.Employee {
	return models.Employee{
		Role: f.Role,
	}
}

type EmployeeConflictQuery struct {
	QueryMonth
	Value string `form:"value" example:"0.5"` // The proposed allocation value
}

// Conflict is the result of a check for a proposed allocation.
type Conflict struct {
	Conflict  bool            `json:"conflict" example:"true"`                                                                                                              // The allocation would be rejected
	Committed decimal.Decimal `json:"committed" example:"0.7"`                                                                                                              // Commitment of the employee in the month
	Total     decimal.Decimal `json:"total" example:"1.1"`                                                                                                                  // Commitment including the proposed allocation
	Reason    *string         `json:"reason" example:"total allocation ratio cannot exceed 1 for Ada Lovelace in Mar 2025, the allocation would result in a total of 1.10"` // Why the allocation would be rejected
}

type EmployeeConflictResponse struct {
	Error *string   `json:"error" example:"the month query parameter must be set"` // The error, if any occurred
	Data  *Conflict `json:"data"`                                                  // The result of the check
}
