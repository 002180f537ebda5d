// Package httperr is the single error envelope the API returns. Handlers
// abort through it so the logging middleware sees the original error while
// the client only sees the public message.
package httperr

import (
	"github.com/gin-gonic/gin"
)

type Body struct {
	Message string `json:"message"`
}

type Response struct {
	Status int  `json:"-"`
	Error  Body `json:"error"`
	Detail any  `json:"detail,omitempty"`
}

// AbortWithError writes the public envelope and stashes the original error
// on the gin context for the request logger.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Error: Body{Message: msg}, Detail: detail}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
