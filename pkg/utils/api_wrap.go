package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	var reqErr *GenerationRequestError
	var transportErr *GenerationTransportError
	var malformedErr *MalformedOutputError

	switch {
	case errors.Is(err, ErrCatalogUnavailable):
		RespondError(c, http.StatusServiceUnavailable, "Place catalog is unavailable")
	case errors.Is(err, ErrEmptyAllowedSet):
		RespondError(c, http.StatusBadRequest, "No places available to build a schedule from")
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid request parameters")
	case errors.Is(err, ErrFavoriteNotFound):
		RespondError(c, http.StatusNotFound, "Favorite not found")
	case errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, "Account not found")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "Email already registered")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.As(err, &reqErr):
		log.Printf("Generation request failed: HTTP %d: %s", reqErr.StatusCode, reqErr.Body)
		RespondError(c, http.StatusBadGateway, "Schedule service unavailable")
	case errors.As(err, &transportErr):
		log.Printf("Generation transport error: %v", transportErr)
		RespondError(c, http.StatusBadGateway, "Schedule service unavailable")
	case errors.As(err, &malformedErr):
		log.Printf("Malformed generation output: %v, raw: %s", malformedErr.Err, malformedErr.Raw)
		RespondError(c, http.StatusBadGateway, "Schedule service returned an unusable response")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
