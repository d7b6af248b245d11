package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint answers with. Code is 0 on
// success and the HTTP status otherwise.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{Code: 0, Data: data})
}

func Fail(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{Code: httpStatus, Message: msg})
}

// FailWith is Fail with a data payload, used when the caller still gets the
// unchanged state back.
func FailWith(c *gin.Context, httpStatus int, msg string, data any) {
	c.AbortWithStatusJSON(httpStatus, Response{Code: httpStatus, Message: msg, Data: data})
}
