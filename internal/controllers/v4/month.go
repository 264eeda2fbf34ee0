package v4

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/staffing-budget/backend/internal/httputil"
	"github.com/staffing-budget/backend/internal/models"
	"github.com/staffing-budget/backend/internal/report"
	"github.com/staffing-budget/backend/internal/types"
)

func RegisterMonthRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsMonth)
		r.GET("", GetMonth)
	}
	{
		r.OPTIONS("/commitments", OptionsMonthCommitments)
		r.GET("/commitments", GetMonthCommitments)
	}
	{
		r.OPTIONS("/export", OptionsMonthExport)
		r.GET("/export", ExportMonth)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v4/months [options]
func OptionsMonth(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v4/months/commitments [options]
func OptionsMonthCommitments(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v4/months/export [options]
func OptionsMonthExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// queryMonth binds the month from the query string. It is required.
func queryMonth(c *gin.Context) (types.Month, error) {
	var query MonthQuery
	err := c.ShouldBindQuery(&query)
	if err != nil {
		return types.Month{}, err
	}

	return query.parse(true)
}

// @Summary		Get month
// @Description	Returns budgeted and allocated resources for all projects in a month
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			month	query		string	true	"The month. YYYY-MM or the month abbreviation together with year"
// @Param			year	query		string	false	"Year for the month abbreviation"
// @Router			/v4/months [get]
func GetMonth(c *gin.Context) {
	month, err := queryMonth(c)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{
			Error: &e,
		})
		return
	}

	summary, err := models.SummarizeMonth(models.DB, month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &e,
		})
		return
	}

	data := newMonth(c, summary)
	c.JSON(http.StatusOK, MonthResponse{Data: &data})
}

// @Summary		Get commitments
// @Description	Returns the allocations of all employees allocated in the month together with their committed total
// @Tags			Months
// @Produce		json
// @Success		200		{object}	CommitmentListResponse
// @Failure		400		{object}	CommitmentListResponse
// @Failure		500		{object}	CommitmentListResponse
// @Param			month	query		string	true	"The month. YYYY-MM or the month abbreviation together with year"
// @Param			year	query		string	false	"Year for the month abbreviation"
// @Param			project	query		string	false	"Only employees allocated to this project"
// @Router			/v4/months/commitments [get]
func GetMonthCommitments(c *gin.Context) {
	var query CommitmentQuery
	err := c.ShouldBindQuery(&query)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, CommitmentListResponse{
			Error: &e,
		})
		return
	}

	month, err := query.parse(true)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, CommitmentListResponse{
			Error: &e,
		})
		return
	}

	commitments, err := models.Commitments(models.DB, month, query.ProjectID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CommitmentListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Commitment, 0, len(commitments))
	for _, commitment := range commitments {
		data = append(data, newCommitment(commitment))
	}

	c.JSON(http.StatusOK, CommitmentListResponse{Data: data})
}

// @Summary		Export month
// @Description	Returns the rollup and the commitments of the month as XLSX workbook
// @Tags			Months
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success		200		{file}		binary
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			month	query		string	true	"The month. YYYY-MM or the month abbreviation together with year"
// @Param			year	query		string	false	"Year for the month abbreviation"
// @Router			/v4/months/export [get]
func ExportMonth(c *gin.Context) {
	month, err := queryMonth(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return
	}

	summary, err := models.SummarizeMonth(models.DB, month)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	commitments, err := models.Commitments(models.DB, month, uuid.Nil)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	f, err := report.Workbook(summary, commitments)
	if err != nil {
		log.Error().Err(err).Str("month", month.String()).Msg("could not build workbook")
		c.JSON(http.StatusInternalServerError, httpError{
			Error: err.Error(),
		})
		return
	}
	defer f.Close()

	c.Header("Content-Disposition", `attachment; filename="`+report.Filename(summary)+`"`)
	c.Header("Content-Type", report.ContentType)
	c.Status(http.StatusOK)

	_, err = f.WriteTo(c.Writer)
	if err != nil {
		log.Error().Err(err).Str("month", month.String()).Msg("could not write workbook")
	}
}
