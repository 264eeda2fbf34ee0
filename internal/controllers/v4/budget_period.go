package v4

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staffing-budget/backend/internal/httputil"
	"github.com/staffing-budget/backend/internal/models"
)

func RegisterBudgetPeriodRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsBudgetPeriods)
		r.GET("", GetBudgetPeriods)
	}
	{
		r.OPTIONS("/:id", OptionsBudgetPeriodDetail)
		r.GET("/:id", GetBudgetPeriod)
		r.DELETE("/:id", DeleteBudgetPeriod)
	}
	{
		r.OPTIONS("/:id/variance", OptionsBudgetPeriodVariance)
		r.GET("/:id/variance", GetBudgetPeriodVariance)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget Periods
// @Success		204
// @Router			/v4/budget-periods [options]
func OptionsBudgetPeriods(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget Periods
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v4/budget-periods/{id} [options]
func OptionsBudgetPeriodDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.BudgetPeriod{}, httputil.OptionsGetDelete)
}

// @Summary		Get budget periods
// @Description	Returns a list of budget periods, ordered by month and project name
// @Tags			Budget Periods
// @Produce		json
// @Success		200		{object}	BudgetPeriodListResponse
// @Failure		400		{object}	BudgetPeriodListResponse
// @Failure		500		{object}	BudgetPeriodListResponse
// @Router			/v4/budget-periods [get]
// @Param			project	query	string	false	"Filter by project ID"
// @Param			month	query	string	false	"Filter by month. YYYY-MM or the month abbreviation together with year"
// @Param			year	query	string	false	"Year for the month abbreviation"
// @Param			offset	query	uint	false	"The offset of the first budget period returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of budget periods to return. Defaults to 50."
func GetBudgetPeriods(c *gin.Context) {
	var filter BudgetPeriodQueryFilter

	if err := c.ShouldBindQuery(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BudgetPeriodListResponse{
			Error: &s,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	month, err := filter.parse(false)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BudgetPeriodListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Model(&models.BudgetPeriod{}).
		Joins("JOIN projects ON projects.id = budget_periods.project_id").
		Order("budget_periods.month ASC, projects.name ASC")

	if !filter.ProjectID.IsNil() {
		q = q.Where("budget_periods.project_id = ?", filter.ProjectID.UUID)
	}

	if !month.IsZero() {
		q = q.Where("budget_periods.month = ?", month)
	}

	var count int64
	err = q.Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetPeriodListResponse{
			Error: &e,
		})
		return
	}

	limit := limit(setFields, filter.Limit)

	var periods []models.BudgetPeriod
	err = q.Offset(int(filter.Offset)).Limit(limit).Find(&periods).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetPeriodListResponse{
			Error: &e,
		})
		return
	}

	data := make([]BudgetPeriod, 0, len(periods))
	for _, period := range periods {
		data = append(data, newBudgetPeriod(c, period))
	}

	c.JSON(http.StatusOK, BudgetPeriodListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get budget period
// @Description	Returns a specific budget period
// @Tags			Budget Periods
// @Produce		json
// @Success		200	{object}	BudgetPeriodResponse
// @Failure		400	{object}	BudgetPeriodResponse
// @Failure		404	{object}	BudgetPeriodResponse
// @Failure		500	{object}	BudgetPeriodResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v4/budget-periods/{id} [get]
func GetBudgetPeriod(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetPeriodResponse{
			Error: &e,
		})
		return
	}

	var period models.BudgetPeriod
	err = models.DB.First(&period, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetPeriodResponse{
			Error: &e,
		})
		return
	}

	apiResource := newBudgetPeriod(c, period)
	c.JSON(http.StatusOK, BudgetPeriodResponse{Data: &apiResource})
}

// @Summary		Delete budget period
// @Description	Deletes a budget period together with its allocations
// @Tags			Budget Periods
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v4/budget-periods/{id} [delete]
func DeleteBudgetPeriod(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var period models.BudgetPeriod
	err = models.DB.First(&period, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&period).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget Periods
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v4/budget-periods/{id}/variance [options]
func OptionsBudgetPeriodVariance(c *gin.Context) {
	resourceOptionsDetail(c, models.BudgetPeriod{}, httputil.OptionsGet)
}

// @Summary		Get budget period variance
// @Description	Returns budgeted and actual resources of the budget period. Interns do not count towards the actual resources.
// @Tags			Budget Periods
// @Produce		json
// @Success		200	{object}	BudgetPeriodVarianceResponse
// @Failure		400	{object}	BudgetPeriodVarianceResponse
// @Failure		404	{object}	BudgetPeriodVarianceResponse
// @Failure		500	{object}	BudgetPeriodVarianceResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v4/budget-periods/{id}/variance [get]
func GetBudgetPeriodVariance(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetPeriodVarianceResponse{
			Error: &e,
		})
		return
	}

	var period models.BudgetPeriod
	err = models.DB.First(&period, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetPeriodVarianceResponse{
			Error: &e,
		})
		return
	}

	variance, err := period.Variance(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetPeriodVarianceResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, BudgetPeriodVarianceResponse{
		Data: &BudgetPeriodVariance{
			BudgetPeriodID: period.ID,
			Month:          period.Month,
			Period:         period.Month.Label(),
			Variance:       newVariance(variance),
		},
	})
}
