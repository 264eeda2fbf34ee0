package healthz

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/staffing-budget/backend/internal/httputil"
	"github.com/staffing-budget/backend/internal/models"
)

type Response struct {
	Error *string `json:"error" example:"The database cannot be reached"` // The error, if any occurred
}

// Get returns the health of the backend
//
//	@Summary		Get health
//	@Description	Returns data about the application health
//	@Tags			General
//	@Success		200	{object}	Response
//	@Failure		500	{object}	Response
//	@Router			/healthz [get]
func Get(c *gin.Context) {
	err := ping()
	if err != nil {
		log.Error().Err(err).Msg("healthz: database ping failed")

		e := err.Error()
		c.JSON(http.StatusInternalServerError, Response{Error: &e})
		return
	}

	c.JSON(http.StatusOK, Response{})
}

func ping() error {
	if models.DB == nil {
		return models.ErrGeneral
	}

	sqlDB, err := models.DB.DB()
	if err != nil {
		return err
	}

	return sqlDB.Ping()
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
