package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"swolez-api/internal/models"
	"swolez-api/internal/repository"
)

type ErrorResponse struct {
	Error   string                    `json:"error"`
	Details []*models.ValidationError `json:"details,omitempty"`
}

const msgDatabaseNotConfigured = "Database not configured"

// respondError maps err onto the API error contract. fallback is the
// message used for unexpected failures; their details are only logged.
func respondError(c *gin.Context, log logrus.FieldLogger, err error, fallback string) {
	if errs, ok := models.AsValidationErrors(err); ok {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: errs})
		return
	}

	entry := log.WithError(err).WithFields(logrus.Fields{
		"method": c.Request.Method,
		"path":   c.FullPath(),
	})

	if errors.Is(err, repository.ErrStoreUnavailable) {
		entry.Warn("request needs a database")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgDatabaseNotConfigured})
		return
	}

	entry.Error(fallback)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
}

// bindError turns a JSON decoding failure into a validation error when it
// can be attributed to a field, otherwise into a 400.
func bindError(c *gin.Context, err error) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error: "validation failed",
			Details: []*models.ValidationError{{
				Field:      typeErr.Field,
				Constraint: "type",
				Message:    "must be of type " + typeErr.Type.String(),
			}},
		})
		return
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body: " + err.Error()})
}
