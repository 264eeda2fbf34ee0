package v4

import (
	"github.com/gin-gonic/gin"
	"github.com/staffing-budget/backend/internal/models"
)

// resourceOptionsDetail returns the appropriate response for an HTTP OPTIONS request for a specific resource.
//
// The handler passed in sets the allowed methods if the resource exists.
func resourceOptionsDetail[R models.Project | models.Employee | models.BudgetPeriod | models.Allocation](c *gin.Context, resource R, options gin.HandlerFunc) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&resource, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	options(c)
}
