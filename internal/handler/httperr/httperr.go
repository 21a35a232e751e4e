package httperr

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"cozycup/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	CodeBadJSON       = "BAD_JSON"
	CodeRouteNotFound = "NOT_FOUND"
)

type Body struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details"`
}

type Response struct {
	Status int  `json:"-"`
	Error  Body `json:"error"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func New(status int, code, msg string, details any) Response {
	return Response{Status: status, Error: Body{Code: code, Message: msg, Details: details}}
}

// AbortWithError preserves the original error on the gin context for the logging middleware.
func AbortWithError(c *gin.Context, status int, err error, code, msg string, details any) {
	if err == nil {
		err = errs.New(msg)
	}
	resp := New(status, code, msg, details)

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// FromError renders a use case failure. Anything that is not an AppError is
// reported as a bare 500 so internals never reach the client.
func FromError(c *gin.Context, err error) {
	appErr, ok := errs.AsApp(err)
	if !ok {
		AbortWithError(c, http.StatusInternalServerError, err, string(errs.KindInternal), "Internal server error", nil)
		return
	}
	msg := appErr.Message
	if appErr.Kind == errs.KindInternal && msg == "" {
		msg = "Internal server error"
	}
	AbortWithError(c, appErr.Kind.HTTPStatus(), err, string(appErr.Kind), msg, appErr.Details)
}

// FromBindError separates malformed bodies from bodies that parsed but failed validation.
func FromBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
		}
		AbortWithError(c, http.StatusBadRequest, err, string(errs.KindValidation), "Invalid request", details)
		return
	}

	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &syntaxErr), errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		AbortWithError(c, http.StatusBadRequest, err, CodeBadJSON, "Malformed JSON in request body", nil)
	case errors.As(err, &typeErr):
		AbortWithError(c, http.StatusBadRequest, err, string(errs.KindValidation), "Invalid request",
			[]FieldError{{Field: typeErr.Field, Message: "must be a " + typeErr.Type.String()}})
	default:
		AbortWithError(c, http.StatusBadRequest, err, string(errs.KindValidation), err.Error(), nil)
	}
}

func NotFound(c *gin.Context) {
	AbortWithError(c, http.StatusNotFound, nil, CodeRouteNotFound, "Route not found", nil)
}
