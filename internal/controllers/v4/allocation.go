package v4

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/staffing-budget/backend/internal/httputil"
	"github.com/staffing-budget/backend/internal/models"
)

func RegisterAllocationRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsAllocations)
		r.GET("", GetAllocations)
		r.POST("", CreateAllocations)
	}
	{
		r.OPTIONS("/:id", OptionsAllocationDetail)
		r.GET("/:id", GetAllocation)
		r.PATCH("/:id", UpdateAllocation)
		r.DELETE("/:id", DeleteAllocation)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Router			/v4/allocations [options]
func OptionsAllocations(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v4/allocations/{id} [options]
func OptionsAllocationDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Allocation{}, httputil.OptionsGetPatchDelete)
}

// @Summary		Create allocations
// @Description	Assigns employees to budget periods. The total of numeric allocations of an employee in a month must not exceed 1.
// @Tags			Allocations
// @Produce		json
// @Success		201			{object}	AllocationCreateResponse
// @Failure		400			{object}	AllocationCreateResponse
// @Failure		404			{object}	AllocationCreateResponse
// @Failure		500			{object}	AllocationCreateResponse
// @Param			allocations	body		[]AllocationCreate	true	"Allocations"
// @Router			/v4/allocations [post]
func CreateAllocations(c *gin.Context) {
	var allocations []AllocationCreate

	err := httputil.BindData(c, &allocations)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := AllocationCreateResponse{}

	for _, create := range allocations {
		if create.EmployeeID == uuid.Nil {
			status = r.appendError(errEmployeeNotSet, status)
			continue
		}

		if create.BudgetPeriodID == uuid.Nil {
			status = r.appendError(errBudgetPeriodNotSet, status)
			continue
		}

		if create.Value == nil {
			status = r.appendError(errValueNotSet, status)
			continue
		}

		allocation, err := models.Assign(models.DB, create.EmployeeID, create.BudgetPeriodID, *create.Value)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newAllocation(c, allocation)
		r.Data = append(r.Data, AllocationResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get allocations
// @Description	Returns a list of allocations, ordered by month, project name and employee name
// @Tags			Allocations
// @Produce		json
// @Success		200				{object}	AllocationListResponse
// @Failure		400				{object}	AllocationListResponse
// @Failure		500				{object}	AllocationListResponse
// @Router			/v4/allocations [get]
// @Param			employee		query	string	false	"Filter by employee ID"
// @Param			budgetPeriod	query	string	false	"Filter by budget period ID"
// @Param			project			query	string	false	"Filter by project ID"
// @Param			month			query	string	false	"Filter by month. YYYY-MM or the month abbreviation together with year"
// @Param			year			query	string	false	"Year for the month abbreviation"
// @Param			offset			query	uint	false	"The offset of the first allocation returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of allocations to return. Defaults to 50."
func GetAllocations(c *gin.Context) {
	var filter AllocationQueryFilter

	if err := c.ShouldBindQuery(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, AllocationListResponse{
			Error: &s,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	month, err := filter.month()
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, AllocationListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Model(&models.Allocation{}).
		Joins("JOIN budget_periods ON budget_periods.id = allocations.budget_period_id").
		Joins("JOIN projects ON projects.id = budget_periods.project_id").
		Joins("JOIN employees ON employees.id = allocations.employee_id").
		Order("budget_periods.month ASC, projects.name ASC, employees.name ASC")

	if !filter.EmployeeID.IsNil() {
		q = q.Where("allocations.employee_id = ?", filter.EmployeeID.UUID)
	}

	if !filter.BudgetPeriodID.IsNil() {
		q = q.Where("allocations.budget_period_id = ?", filter.BudgetPeriodID.UUID)
	}

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
		c.JSON(status(err), AllocationListResponse{
			Error: &e,
		})
		return
	}

	limit := limit(setFields, filter.Limit)

	var allocations []models.Allocation
	err = q.Offset(int(filter.Offset)).Limit(limit).Find(&allocations).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Allocation, 0, len(allocations))
	for _, allocation := range allocations {
		data = append(data, newAllocation(c, allocation))
	}

	c.JSON(http.StatusOK, AllocationListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get allocation
// @Description	Returns a specific allocation
// @Tags			Allocations
// @Produce		json
// @Success		200	{object}	AllocationResponse
// @Failure		400	{object}	AllocationResponse
// @Failure		404	{object}	AllocationResponse
// @Failure		500	{object}	AllocationResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v4/allocations/{id} [get]
func GetAllocation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &e,
		})
		return
	}

	var allocation models.Allocation
	err = models.DB.First(&allocation, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &e,
		})
		return
	}

	apiResource := newAllocation(c, allocation)
	c.JSON(http.StatusOK, AllocationResponse{Data: &apiResource})
}

// @Summary		Update allocation
// @Description	Changes the value of an allocation. The value must be one of the values of the pick list.
// @Tags			Allocations
// @Accept			json
// @Produce		json
// @Success		200			{object}	AllocationResponse
// @Failure		400			{object}	AllocationResponse
// @Failure		404			{object}	AllocationResponse
// @Failure		500			{object}	AllocationResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			allocation	body		AllocationEditable	true	"Allocation"
// @Router			/v4/allocations/{id} [patch]
func UpdateAllocation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &e,
		})
		return
	}

	var data AllocationEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &e,
		})
		return
	}

	if data.Value == nil {
		e := errValueNotSet.Error()
		c.JSON(http.StatusBadRequest, AllocationResponse{
			Error: &e,
		})
		return
	}

	allocation, err := models.EditAllocation(models.DB, uri.ID.UUID, *data.Value)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &e,
		})
		return
	}

	apiResource := newAllocation(c, allocation)
	c.JSON(http.StatusOK, AllocationResponse{Data: &apiResource})
}

// @Summary		Delete allocation
// @Description	Deletes an allocation
// @Tags			Allocations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v4/allocations/{id} [delete]
func DeleteAllocation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.RemoveAllocation(models.DB, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
