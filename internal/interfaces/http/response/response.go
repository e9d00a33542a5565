package response

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	domainerrors "tradeport.backend/internal/domain/errors"
)

// Envelope is the JSON shape every endpoint responds with
type Envelope struct {
	Success bool                     `json:"success"`
	Message string                   `json:"message,omitempty"`
	Data    interface{}              `json:"data,omitempty"`
	Error   *ErrorBody               `json:"error,omitempty"`
	Errors  domainerrors.FieldErrors `json:"errors,omitempty"`
}

// ErrorBody carries the machine-readable error details
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Envelope{Success: true, Data: data})
}

// SuccessWithMessage sends a success response with a human-readable message
func SuccessWithMessage(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

// Paginated sends a list response with pagination metadata
func Paginated(c *gin.Context, items interface{}, meta interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: gin.H{
		"items":      items,
		"pagination": meta,
	}})
}

// Error translates a domain error into the HTTP response. Sentinels map
// onto status codes here so usecases never touch HTTP.
func Error(c *gin.Context, err error) {
	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusUnprocessableEntity, Envelope{
			Success: false,
			Error:   &ErrorBody{Code: domainerrors.CodeValidation, Message: "validation failed"},
			Errors:  validationErr.Fields,
		})
		return
	}

	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, Envelope{
			Success: false,
			Error:   &ErrorBody{Code: appErr.Code, Message: appErr.Message},
		})
		return
	}

	appErr = fromSentinel(err)
	c.JSON(appErr.Status, Envelope{
		Success: false,
		Error:   &ErrorBody{Code: appErr.Code, Message: appErr.Message},
	})
}

func fromSentinel(err error) *domainerrors.AppError {
	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound("resource not found")
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		return domainerrors.Conflict("resource already exists")
	case errors.Is(err, domainerrors.ErrAlreadyResolved):
		return domainerrors.NewAppError(http.StatusConflict, domainerrors.CodeConflict, "approval request already resolved", err)
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		return domainerrors.NewAppError(http.StatusUnauthorized, domainerrors.CodeInvalidCredentials, "invalid email or password", err)
	case errors.Is(err, domainerrors.ErrAccountBlocked):
		return domainerrors.Forbidden("account is blocked")
	case errors.Is(err, domainerrors.ErrUnauthorized), errors.Is(err, domainerrors.ErrTokenExpired):
		return domainerrors.Unauthorized("unauthorized")
	case errors.Is(err, domainerrors.ErrForbidden):
		return domainerrors.Forbidden("forbidden")
	case errors.Is(err, domainerrors.ErrSellerNotApproved):
		return domainerrors.Forbidden("seller account is not approved")
	case errors.Is(err, domainerrors.ErrWrongState):
		return domainerrors.NewAppError(http.StatusConflict, domainerrors.CodeConflict, "operation not allowed in current state", err)
	case errors.Is(err, domainerrors.ErrInsufficientStock):
		return domainerrors.NewAppError(http.StatusConflict, domainerrors.CodeConflict, "insufficient stock", err)
	case errors.Is(err, domainerrors.ErrInvalidInput), errors.Is(err, domainerrors.ErrBadRequest):
		return domainerrors.BadRequest("invalid input")
	default:
		return domainerrors.InternalError(err)
	}
}

// BindError translates gin binding failures. Validator tag failures become
// per-field 422s; anything else is a plain 400.
func BindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := domainerrors.FieldErrors{}
		for _, fe := range verrs {
			field := jsonFieldName(fe.Field())
			fields[field] = append(fields[field], validationMessage(fe))
		}
		c.JSON(http.StatusUnprocessableEntity, Envelope{
			Success: false,
			Error:   &ErrorBody{Code: domainerrors.CodeValidation, Message: "validation failed"},
			Errors:  fields,
		})
		return
	}

	c.JSON(http.StatusBadRequest, Envelope{
		Success: false,
		Error:   &ErrorBody{Code: domainerrors.CodeBadRequest, Message: "malformed request body"},
	})
}

func jsonFieldName(structField string) string {
	if structField == "" {
		return structField
	}
	return strings.ToLower(structField[:1]) + structField[1:]
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "url":
		return "must be a valid URL"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	default:
		return "is invalid"
	}
}
