package v4

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staffing-budget/backend/internal/httputil"
	"github.com/staffing-budget/backend/internal/models"
	"github.com/staffing-budget/backend/internal/types"
	"golang.org/x/exp/slices"
)

// defaultHorizon is the number of periods returned when no horizon is requested
var defaultHorizon = 6

const maximumHorizon = 60

func RegisterProjectRoutes(r *gin.RouterGroup, horizon int) {
	defaultHorizon = horizon

	{
		r.OPTIONS("", OptionsProjects)
		r.GET("", GetProjects)
		r.POST("", CreateProjects)
	}
	{
		r.OPTIONS("/:id", OptionsProjectDetail)
		r.GET("/:id", GetProject)
		r.PATCH("/:id", UpdateProject)
		r.DELETE("/:id", DeleteProject)
	}
	{
		r.OPTIONS("/:id/periods", OptionsProjectPeriods)
		r.GET("/:id/periods", GetProjectPeriods)
	}
	{
		r.OPTIONS("/:id/:month", OptionsProjectMonth)
		r.GET("/:id/:month", GetProjectMonth)
		r.PATCH("/:id/:month", SetProjectMonth)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Projects
// @Success		204
// @Router			/v4/projects [options]
func OptionsProjects(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Projects
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v4/projects/{id} [options]
func OptionsProjectDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Project{}, httputil.OptionsGetPatchDelete)
}

// @Summary		Create projects
// @Description	Creates new projects. If initialBudget is set, the first budget period is created together with the project.
// @Tags			Projects
// @Produce		json
// @Success		201			{object}	ProjectCreateResponse
// @Failure		400			{object}	ProjectCreateResponse
// @Failure		500			{object}	ProjectCreateResponse
// @Param			projects	body		[]ProjectCreate	true	"Projects"
// @Router			/v4/projects [post]
func CreateProjects(c *gin.Context) {
	var projects []ProjectCreate

	// Bind data and return error if not possible
	err := httputil.BindData(c, &projects)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ProjectCreateResponse{}

	for _, create := range projects {
		project := create.model()

		if create.InitialBudget != nil {
			_, err = models.CreateProjectWithBudget(models.DB, &project, create.InitialBudget.Month, create.InitialBudget.BudgetedResources)
		} else {
			err = models.DB.Create(&project).Error
		}

		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		// Transform for the API and append
		apiResource := newProject(c, project)
		r.Data = append(r.Data, ProjectResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get projects
// @Description	Returns a list of projects
// @Tags			Projects
// @Produce		json
// @Success		200		{object}	ProjectListResponse
// @Failure		400		{object}	ProjectListResponse
// @Failure		500		{object}	ProjectListResponse
// @Router			/v4/projects [get]
// @Param			name	query	string	false	"Filter by name"
// @Param			note	query	string	false	"Filter by note"
// @Param			search	query	string	false	"Search for this text in name and note"
// @Param			offset	query	uint	false	"The offset of the first project returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of projects to return. Defaults to 50."
func GetProjects(c *gin.Context) {
	var filter ProjectQueryFilter

	if err := c.ShouldBind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ProjectListResponse{
			Error: &s,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.Model(&models.Project{}).Order("projects.name ASC")
	q = stringFilters(models.DB, q, "projects", setFields, filter.Name, filter.Note, filter.Search)

	var count int64
	err := q.Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectListResponse{
			Error: &e,
		})
		return
	}

	limit := limit(setFields, filter.Limit)

	var projects []models.Project
	err = q.Offset(int(filter.Offset)).Limit(limit).Find(&projects).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectListResponse{
			Error: &e,
		})
		return
	}

	// Transform resources to their API representation
	data := make([]Project, 0, len(projects))
	for _, project := range projects {
		data = append(data, newProject(c, project))
	}

	c.JSON(http.StatusOK, ProjectListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get project
// @Description	Returns a specific project
// @Tags			Projects
// @Produce		json
// @Success		200	{object}	ProjectResponse
// @Failure		400	{object}	ProjectResponse
// @Failure		404	{object}	ProjectResponse
// @Failure		500	{object}	ProjectResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v4/projects/{id} [get]
func GetProject(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectResponse{
			Error: &e,
		})
		return
	}

	var project models.Project
	err = models.DB.First(&project, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectResponse{
			Error: &e,
		})
		return
	}

	apiResource := newProject(c, project)
	c.JSON(http.StatusOK, ProjectResponse{Data: &apiResource})
}

// @Summary		Update project
// @Description	Updates an existing project. Only values to be updated need to be specified.
// @Tags			Projects
// @Accept			json
// @Produce		json
// @Success		200		{object}	ProjectResponse
// @Failure		400		{object}	ProjectResponse
// @Failure		404		{object}	ProjectResponse
// @Failure		500		{object}	ProjectResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			project	body		ProjectEditable	true	"Project"
// @Router			/v4/projects/{id} [patch]
func UpdateProject(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectResponse{
			Error: &e,
		})
		return
	}

	var project models.Project
	err = models.DB.First(&project, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, ProjectEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectResponse{
			Error: &e,
		})
		return
	}

	// Bind the data for the patch
	var data ProjectEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectResponse{
			Error: &e,
		})
		return
	}

	if slices.Contains(updateFields, any("Name")) {
		project.Name = data.Name
	}
	if slices.Contains(updateFields, any("Note")) {
		project.Note = data.Note
	}

	err = models.DB.Save(&project).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectResponse{
			Error: &e,
		})
		return
	}

	apiResource := newProject(c, project)
	c.JSON(http.StatusOK, ProjectResponse{Data: &apiResource})
}

// @Summary		Delete project
// @Description	Deletes a project together with its budget periods and their allocations
// @Tags			Projects
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v4/projects/{id} [delete]
func DeleteProject(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DeleteProject(models.DB, uri.ID.UUID)
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
// @Tags			Projects
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v4/projects/{id}/periods [options]
func OptionsProjectPeriods(c *gin.Context) {
	resourceOptionsDetail(c, models.Project{}, httputil.OptionsGet)
}

// @Summary		Get project periods
// @Description	Returns the months a project can be budgeted for, starting with its earliest budget period.
// @Description	If the project has no budget periods, the list is empty.
// @Tags			Projects
// @Produce		json
// @Success		200		{object}	ProjectPeriodsResponse
// @Failure		400		{object}	ProjectPeriodsResponse
// @Failure		404		{object}	ProjectPeriodsResponse
// @Failure		500		{object}	ProjectPeriodsResponse
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			horizon	query		int		false	"Number of months. Defaults to the configured period horizon"
// @Router			/v4/projects/{id}/periods [get]
func GetProjectPeriods(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectPeriodsResponse{
			Error: &e,
		})
		return
	}

	query := ProjectPeriodsQuery{Horizon: defaultHorizon}
	err = c.ShouldBindQuery(&query)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ProjectPeriodsResponse{
			Error: &e,
		})
		return
	}

	if query.Horizon < 1 || query.Horizon > maximumHorizon {
		e := errHorizon.Error()
		c.JSON(http.StatusBadRequest, ProjectPeriodsResponse{
			Error: &e,
		})
		return
	}

	months, err := models.EnumeratePeriods(models.DB, uri.ID.UUID, query.Horizon)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectPeriodsResponse{
			Error: &e,
		})
		return
	}

	var periods []models.BudgetPeriod
	err = models.DB.Where("budget_periods.project_id = ?", uri.ID.UUID).Find(&periods).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectPeriodsResponse{
			Error: &e,
		})
		return
	}

	budgets := make(map[string]models.BudgetPeriod, len(periods))
	for _, p := range periods {
		budgets[p.Month.String()] = p
	}

	url := c.GetString(string(models.DBContextURL))
	data := make([]ProjectPeriod, 0, len(months))
	for _, month := range months {
		period := ProjectPeriod{
			Month:  month,
			Period: month.Label(),
			Links: ProjectPeriodLinks{
				Self: url + "/v4/projects/" + uri.ID.String() + "/" + month.String(),
			},
		}

		if p, ok := budgets[month.String()]; ok {
			period.BudgetedResources.Decimal = p.BudgetedResources
			period.BudgetedResources.Valid = true
		}

		data = append(data, period)
	}

	c.JSON(http.StatusOK, ProjectPeriodsResponse{Data: data})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Projects
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v4/projects/{id}/{month} [options]
func OptionsProjectMonth(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	resourceOptionsDetail(c, models.Project{}, httputil.OptionsGetPatch)
}

// @Summary		Get budget for a month
// @Description	Returns the budget period of the project for the month. If there is none, data is null.
// @Tags			Projects
// @Produce		json
// @Success		200		{object}	BudgetPeriodResponse
// @Failure		400		{object}	BudgetPeriodResponse
// @Failure		404		{object}	BudgetPeriodResponse
// @Failure		500		{object}	BudgetPeriodResponse
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v4/projects/{id}/{month} [get]
func GetProjectMonth(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetPeriodResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.First(&models.Project{}, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetPeriodResponse{
			Error: &e,
		})
		return
	}

	period, err := models.GetBudgetPeriod(models.DB, uri.ID.UUID, types.MonthOf(uri.Month))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetPeriodResponse{
			Error: &e,
		})
		return
	}

	if period == nil {
		c.JSON(http.StatusOK, BudgetPeriodResponse{})
		return
	}

	apiResource := newBudgetPeriod(c, *period)
	c.JSON(http.StatusOK, BudgetPeriodResponse{Data: &apiResource})
}

// @Summary		Set budget for a month
// @Description	Sets the budgeted resources of the project for the month. The budget period is created if it does not exist.
// @Tags			Projects
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetPeriodResponse
// @Success		201		{object}	BudgetPeriodResponse
// @Failure		400		{object}	BudgetPeriodResponse
// @Failure		404		{object}	BudgetPeriodResponse
// @Failure		500		{object}	BudgetPeriodResponse
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			month	path		string					true	"The month in YYYY-MM format"
// @Param			budget	body		BudgetPeriodEditable	true	"Budget"
// @Router			/v4/projects/{id}/{month} [patch]
func SetProjectMonth(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetPeriodResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, BudgetPeriodEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetPeriodResponse{
			Error: &e,
		})
		return
	}

	if len(updateFields) == 0 {
		e := errBudgetNotSet.Error()
		c.JSON(http.StatusBadRequest, BudgetPeriodResponse{
			Error: &e,
		})
		return
	}

	var data BudgetPeriodEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetPeriodResponse{
			Error: &e,
		})
		return
	}

	period, created, err := models.UpsertBudgetPeriod(models.DB, uri.ID.UUID, types.MonthOf(uri.Month), data.BudgetedResources)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetPeriodResponse{
			Error: &e,
		})
		return
	}

	code := http.StatusOK
	if created {
		code = http.StatusCreated
	}

	apiResource := newBudgetPeriod(c, period)
	c.JSON(code, BudgetPeriodResponse{Data: &apiResource})
}
