package helper

import (
	"errors"
	"net/http"

	"portfolio-api/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const textInternalError = "internal server error"

// HTTPHelper writes JSON responses. Every error body is {"error": message};
// validation failures add "fields".
type HTTPHelper struct {
	Log logrus.FieldLogger
}

func NewHTTPHelper(log logrus.FieldLogger) *HTTPHelper {
	return &HTTPHelper{Log: log}
}

// GetStatusCode maps a service error to its HTTP status.
func (u *HTTPHelper) GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var (
		validation   models.ErrorValidation
		invalidID    models.ErrorInvalidID
		missingToken models.ErrorMissingToken
		invalidToken models.ErrorInvalidToken
		forbidden    models.ErrorForbiddenRole
		unauthorized models.ErrorUnauthorized
		notFound     models.ErrorNotFound
		noAdmin      models.ErrorNoAdminUser
		conflict     models.ErrorConflict
		tooMany      models.ErrorTooManyRequests
	)
	switch {
	case errors.As(err, &validation), errors.As(err, &invalidID), errors.As(err, &conflict):
		return http.StatusBadRequest
	case errors.As(err, &missingToken), errors.As(err, &unauthorized):
		return http.StatusUnauthorized
	case errors.As(err, &invalidToken), errors.As(err, &forbidden):
		return http.StatusForbidden
	case errors.As(err, &notFound), errors.As(err, &noAdmin):
		return http.StatusNotFound
	case errors.As(err, &tooMany):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// SendError aborts the request with the status GetStatusCode picks for err.
// Internal errors are logged and replaced with a generic message.
func (u *HTTPHelper) SendError(c *gin.Context, err error) {
	status := u.GetStatusCode(err)
	if status == http.StatusInternalServerError {
		u.Log.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Error("request failed")
		c.AbortWithStatusJSON(status, gin.H{"error": textInternalError})
		return
	}

	body := gin.H{"error": err.Error()}
	var validation models.ErrorValidation
	if errors.As(err, &validation) && len(validation.Fields) > 0 {
		body["fields"] = validation.Fields
	}
	c.AbortWithStatusJSON(status, body)
}

// SendBadRequest is used when the body cannot be decoded at all.
func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": message})
}

func (u *HTTPHelper) SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func (u *HTTPHelper) SendCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func (u *HTTPHelper) SendNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
