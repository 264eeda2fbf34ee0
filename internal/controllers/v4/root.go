package v4

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staffing-budget/backend/internal/httputil"
	"github.com/staffing-budget/backend/internal/models"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.DELETE("", Cleanup)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v4 API
}

type Links struct {
	Projects      string `json:"projects" example:"https://example.com/api/v4/projects"`            // URL of Project collection endpoint
	Employees     string `json:"employees" example:"https://example.com/api/v4/employees"`          // URL of Employee collection endpoint
	BudgetPeriods string `json:"budgetPeriods" example:"https://example.com/api/v4/budget-periods"` // URL of Budget Period collection endpoint
	Allocations   string `json:"allocations" example:"https://example.com/api/v4/allocations"`      // URL of Allocation collection endpoint
	Months        string `json:"months" example:"https://example.com/api/v4/months"`                // URL of Month endpoint
}

// Get returns the link list for v4
//
//	@Summary		v4 API
//	@Description	Returns general information about the v4 API
//	@Tags			v4
//	@Success		200	{object}	Response
//	@Router			/v4 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Projects:      url + "/v4/projects",
			Employees:     url + "/v4/employees",
			BudgetPeriods: url + "/v4/budget-periods",
			Allocations:   url + "/v4/allocations",
			Months:        url + "/v4/months",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v4
//	@Success		204
//	@Router			/v4 [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}
