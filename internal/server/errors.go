package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Skufu/heartguard/internal/ml"
	"github.com/Skufu/heartguard/internal/store"
)

// AppError is an error with the HTTP status and public code it maps to.
type AppError struct {
	Err        error             `json:"-"`
	Message    string            `json:"message"`
	Code       string            `json:"code"`
	HTTPStatus int               `json:"-"`
	Details    map[string]string `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:        store.ErrNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		Code:       "NOT_FOUND",
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]string{"resource": resource, "id": id},
	}
}

func BadRequest(message string, err error) *AppError {
	return &AppError{
		Err:        err,
		Message:    message,
		Code:       "BAD_REQUEST",
		HTTPStatus: http.StatusBadRequest,
	}
}

// Validation reports a single offending field.
func Validation(field, reason string) *AppError {
	return &AppError{
		Err:        &ml.ValidationError{Field: field, Reason: reason},
		Message:    fmt.Sprintf("%s %s", field, reason),
		Code:       "VALIDATION_ERROR",
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]string{"field": field, "reason": reason},
	}
}

func PayloadTooLarge(limit int64) *AppError {
	return &AppError{
		Message:    fmt.Sprintf("request body exceeds %d bytes", limit),
		Code:       "PAYLOAD_TOO_LARGE",
		HTTPStatus: http.StatusRequestEntityTooLarge,
	}
}

func RateLimited() *AppError {
	return &AppError{
		Message:    "too many requests",
		Code:       "RATE_LIMITED",
		HTTPStatus: http.StatusTooManyRequests,
	}
}

func Internal(err error) *AppError {
	return &AppError{
		Err:        err,
		Message:    "internal server error",
		Code:       "INTERNAL_ERROR",
		HTTPStatus: http.StatusInternalServerError,
	}
}

// toAppError classifies errors from binding, the model and the store.
func toAppError(err error) *AppError {
	var (
		appErr    *AppError
		verr      *ml.ValidationError
		fieldErrs validator.ValidationErrors
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
		sizeErr   *http.MaxBytesError
	)
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.As(err, &verr):
		return Validation(verr.Field, verr.Reason)
	case errors.As(err, &fieldErrs) && len(fieldErrs) > 0:
		v := ml.FromFieldError(fieldErrs[0])
		return Validation(v.Field, v.Reason)
	case errors.As(err, &typeErr):
		if typeErr.Field == "" {
			return BadRequest("request body must be a JSON object", err)
		}
		return Validation(typeErr.Field, fmt.Sprintf("must be of type %s", typeErr.Type))
	case errors.Is(err, store.ErrNotFound):
		return &AppError{Err: err, Message: "resource not found", Code: "NOT_FOUND", HTTPStatus: http.StatusNotFound}
	case errors.As(err, &sizeErr):
		return PayloadTooLarge(sizeErr.Limit)
	case errors.As(err, &syntaxErr), errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return BadRequest("malformed JSON body", err)
	default:
		return Internal(err)
	}
}

type errorBody struct {
	Error *AppError `json:"error"`
}

func (s *Server) respondError(c *gin.Context, err error) {
	appErr := toAppError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	c.AbortWithStatusJSON(appErr.HTTPStatus, errorBody{Error: appErr})
}
