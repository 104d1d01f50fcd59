package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorEnvelope is the uniform wire format for failed requests.
type ErrorEnvelope struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func RespondJSON(c *gin.Context, code int, payload interface{}) {
	c.JSON(code, payload)
}

// RespondError converts a service error into the wire envelope. This is the
// only place a status code is derived from an error; handlers never inspect
// error kinds themselves.
func RespondError(c *gin.Context, err error) {
	code := http.StatusInternalServerError
	var appErr *AppError
	if errors.As(err, &appErr) {
		code = appErr.StatusCode()
	}
	if code >= http.StatusInternalServerError && ErrorLogger != nil {
		ErrorLogger.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(code, ErrorEnvelope{Error: err.Error(), Code: code})
}
