package v4

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staffing-budget/backend/internal/httputil"
	"github.com/staffing-budget/backend/internal/models"
	"golang.org/x/exp/slices"
)

func RegisterEmployeeRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsEmployees)
		r.GET("", GetEmployees)
		r.POST("", CreateEmployees)
	}
	{
		r.OPTIONS("/:id", OptionsEmployeeDetail)
		r.GET("/:id", GetEmployee)
		r.PATCH("/:id", UpdateEmployee)
		r.DELETE("/:id", DeleteEmployee)
	}
	{
		r.OPTIONS("/:id/conflict", OptionsEmployeeConflict)
		r.GET("/:id/conflict", GetEmployeeConflict)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Employees
// @Success		204
// @Router			/v4/employees [options]
func OptionsEmployees(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Employees
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v4/employees/{id} [options]
func OptionsEmployeeDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Employee{}, httputil.OptionsGetPatchDelete)
}

// @Summary		Create employees
// @Description	Creates new employees
// @Tags			Employees
// @Produce		json
// @Success		201			{object}	EmployeeCreateResponse
// @Failure		400			{object}	EmployeeCreateResponse
// @Failure		500			{object}	EmployeeCreateResponse
// @Param			employees	body		[]EmployeeEditable	true	"Employees"
// @Router			/v4/employees [post]
func CreateEmployees(c *gin.Context) {
	var employees []EmployeeEditable

	err := httputil.BindData(c, &employees)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EmployeeCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := EmployeeCreateResponse{}

	for _, create := range employees {
		employee := create.model()

		err = models.DB.Create(&employee).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newEmployee(c, employee)
		r.Data = append(r.Data, EmployeeResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get employees
// @Description	Returns a list of employees, ordered by name
// @Tags			Employees
// @Produce		json
// @Success		200		{object}	EmployeeListResponse
// @Failure		400		{object}	EmployeeListResponse
// @Failure		500		{object}	EmployeeListResponse
// @Router			/v4/employees [get]
// @Param			name	query	string	false	"Filter by name"
// @Param			email	query	string	false	"Filter by email"
// @Param			role	query	string	false	"Filter by role"
// @Param			search	query	string	false	"Search for this text in name and email"
// @Param			offset	query	uint	false	"The offset of the first employee returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of employees to return. Defaults to 50."
func GetEmployees(c *gin.Context) {
	var filter EmployeeQueryFilter

	if err := c.ShouldBindQuery(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, EmployeeListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Model(&models.Employee{}).
		Order("employees.name ASC").
		Where(filter.model(), queryFields...)

	if filter.Name != "" {
		q = q.Where("employees.name LIKE ?", fmt.Sprintf("%%%s%%", filter.Name))
	}

	if filter.Email != "" {
		q = q.Where("employees.email LIKE ?", fmt.Sprintf("%%%s%%", filter.Email))
	}

	if filter.Search != "" {
		q = q.Where(
			models.DB.Where("employees.name LIKE ?", fmt.Sprintf("%%%s%%", filter.Search)).Or(
				models.DB.Where("employees.email LIKE ?", fmt.Sprintf("%%%s%%", filter.Search)),
			),
		)
	}

	var count int64
	err := q.Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EmployeeListResponse{
			Error: &e,
		})
		return
	}

	limit := limit(setFields, filter.Limit)

	var employees []models.Employee
	err = q.Offset(int(filter.Offset)).Limit(limit).Find(&employees).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EmployeeListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Employee, 0, len(employees))
	for _, employee := range employees {
		data = append(data, newEmployee(c, employee))
	}

	c.JSON(http.StatusOK, EmployeeListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get employee
// @Description	Returns a specific employee
// @Tags			Employees
// @Produce		json
// @Success		200	{object}	EmployeeResponse
// @Failure		400	{object}	EmployeeResponse
// @Failure		404	{object}	EmployeeResponse
// @Failure		500	{object}	EmployeeResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v4/employees/{id} [get]
func GetEmployee(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EmployeeResponse{
			Error: &e,
		})
		return
	}

	var employee models.Employee
	err = models.DB.First(&employee, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EmployeeResponse{
			Error: &e,
		})
		return
	}

	apiResource := newEmployee(c, employee)
	c.JSON(http.StatusOK, EmployeeResponse{Data: &apiResource})
}

// @Summary		Update employee
// @Description	Updates an existing employee. Only values to be updated need to be specified.
// @Tags			Employees
// @Accept			json
// @Produce		json
// @Success		200			{object}	EmployeeResponse
// @Failure		400			{object}	EmployeeResponse
// @Failure		404			{object}	EmployeeResponse
// @Failure		500			{object}	EmployeeResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			employee	body		EmployeeEditable	true	"Employee"
// @Router			/v4/employees/{id} [patch]
func UpdateEmployee(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EmployeeResponse{
			Error: &e,
		})
		return
	}

	var employee models.Employee
	err = models.DB.First(&employee, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EmployeeResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, EmployeeEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EmployeeResponse{
			Error: &e,
		})
		return
	}

	var data EmployeeEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EmployeeResponse{
			Error: &e,
		})
		return
	}

	// Apply the changes to the loaded employee so that validation sees the full resource
	if slices.Contains(updateFields, any("Name")) {
		employee.Name = data.Name
	}
	if slices.Contains(updateFields, any("Email")) {
		employee.Email = data.Email
	}
	if slices.Contains(updateFields, any("Role")) {
		employee.Role = data.Role
	}

	err = models.DB.Save(&employee).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EmployeeResponse{
			Error: &e,
		})
		return
	}

	apiResource := newEmployee(c, employee)
	c.JSON(http.StatusOK, EmployeeResponse{Data: &apiResource})
}

// @Summary		Delete employee
// @Description	Deletes an employee together with their allocations
// @Tags			Employees
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v4/employees/{id} [delete]
func DeleteEmployee(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DeleteEmployee(models.DB, uri.ID.UUID)
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
// @Tags			Employees
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v4/employees/{id}/conflict [options]
func OptionsEmployeeConflict(c *gin.Context) {
	resourceOptionsDetail(c, models.Employee{}, httputil.OptionsGet)
}

// @Summary		Check allocation conflict
// @Description	Checks if allocating the employee with the value in the month would exceed their monthly commitment.
// @Description	Malformed months and invalid values are reported as conflict.
// @Tags			Employees
// @Produce		json
// @Success		200		{object}	EmployeeConflictResponse
// @Failure		400		{object}	EmployeeConflictResponse
// @Failure		404		{object}	EmployeeConflictResponse
// @Failure		500		{object}	EmployeeConflictResponse
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			month	query		string	true	"The month. YYYY-MM or the month abbreviation together with year"
// @Param			year	query		string	false	"Year for the month abbreviation"
// @Param			value	query		string	true	"The proposed allocation value, a number or 'intern'"
// @Router			/v4/employees/{id}/conflict [get]
func GetEmployeeConflict(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EmployeeConflictResponse{
			Error: &e,
		})
		return
	}

	var employee models.Employee
	err = models.DB.First(&employee, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EmployeeConflictResponse{
			Error: &e,
		})
		return
	}

	// Malformed input is answered as a conflict
	var query EmployeeConflictQuery
	err = c.ShouldBindQuery(&query)
	if err != nil {
		conflictForInput(c, err)
		return
	}

	month, err := query.parse(true)
	if err != nil {
		conflictForInput(c, err)
		return
	}

	if !c.Request.URL.Query().Has("value") {
		conflictForInput(c, errValueNotSetInQuery)
		return
	}

	check, err := models.CheckConflict(models.DB, employee.ID, month, query.Value)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EmployeeConflictResponse{
			Error: &e,
		})
		return
	}

	conflict := Conflict{
		Conflict:  check.Conflict,
		Committed: check.Committed,
		Total:     check.Total,
	}

	if check.Reason != nil {
		r := check.Reason.Error()
		conflict.Reason = &r
	}

	c.JSON(http.StatusOK, EmployeeConflictResponse{Data: &conflict})
}

func conflictForInput(c *gin.Context, err error) {
	reason := err.Error()
	c.JSON(http.StatusOK, EmployeeConflictResponse{
		Data: &Conflict{
			Conflict: true,
			Reason:   &reason,
		},
	})
}
