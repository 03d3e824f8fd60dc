package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yanqian/product-reviews/pkg/errors"
)

const (
	internalMessage = "something went wrong"
	summaryMessage  = "Failed to generate summary."
)

// HTTPError captures the metadata required to serialize an error response consistently.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// NewHTTPError is a helper to build an HTTPError instance.
func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

func asHTTPError(err error) *HTTPError {
	if err == nil {
		return nil
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return fromAppError(err)
}

// fromAppError maps domain error codes to statuses. 5xx responses carry a
// fixed message; the cause is only logged.
func fromAppError(err error) *HTTPError {
	code := apperrors.CodeOf(err)
	switch code {
	case apperrors.CodeInvalidInput:
		return NewHTTPError(http.StatusBadRequest, code, apperrors.MessageOf(err), err)
	case apperrors.CodeNotFound:
		return NewHTTPError(http.StatusNotFound, code, apperrors.MessageOf(err), err)
	case apperrors.CodeEmailExists:
		return NewHTTPError(http.StatusConflict, code, apperrors.MessageOf(err), err)
	case apperrors.CodeSummaryFailed:
		return NewHTTPError(http.StatusInternalServerError, code, summaryMessage, err)
	default:
		return NewHTTPError(http.StatusInternalServerError, apperrors.CodeInternal, internalMessage, err)
	}
}

func badRequest(err error) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, "invalid_request", err.Error(), err)
}

func abortWithError(c *gin.Context, err *HTTPError) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

// abortWithAppError is the common tail of every handler's error branch.
func abortWithAppError(c *gin.Context, err error) {
	abortWithError(c, asHTTPError(err))
}
