package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yash-4120/applyflow/internal/dtos"
	"github.com/Yash-4120/applyflow/internal/store"
)

const (
	errValidation = "Validation Error"
	errBadRequest = "Bad Request"
	errNotFound   = "Not Found"
	errInternal   = "Internal Server Error"
)

func respondOK(c *gin.Context, status int, data any, message string) {
	c.JSON(status, dtos.APIResponse{
		Success: true,
		Data:    data,
		Message: message,
	})
}

func respondError(c *gin.Context, status int, label, message string) {
	c.JSON(status, dtos.APIError{
		Success:    false,
		Error:      label,
		Message:    message,
		StatusCode: status,
	})
}

// respondStoreError maps typed store errors onto the standard error
// envelope; anything unrecognised becomes a 500 with the error's own
// message, or the fallback when there is none.
func respondStoreError(c *gin.Context, err error, fallback string) {
	var ve *store.ValidationError
	var nfe *store.NotFoundError

	switch {
	case errors.As(err, &ve):
		respondError(c, http.StatusBadRequest, errValidation, ve.Message)
	case errors.As(err, &nfe):
		respondError(c, http.StatusNotFound, errNotFound, nfe.Error())
	default:
		message := fallback
		if err != nil && err.Error() != "" {
			message = err.Error()
		}
		respondError(c, http.StatusInternalServerError, errInternal, message)
	}
}
