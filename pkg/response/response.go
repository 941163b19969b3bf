package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Result is the response envelope shared by every endpoint.
type Result[T any] struct {
	Code      int         `json:"code"`
	Message   string      `json:"message"`
	Data      T           `json:"data,omitempty"`
	Details   interface{} `json:"details,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Success writes a 2xx envelope with the given payload.
func Success[T any](ctx *gin.Context, status int, data T, message string) {
	if status == 0 {
		status = http.StatusOK
	}
	ctx.JSON(status, Result[T]{
		Code:      status,
		Message:   message,
		Data:      data,
		RequestID: ctx.GetString("request_id"),
		Timestamp: time.Now(),
	})
}

// Error writes a failure envelope. details carries structured validation
// output when present.
func Error(ctx *gin.Context, status int, message string, details interface{}) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	ctx.JSON(status, Result[any]{
		Code:      status,
		Message:   message,
		Details:   details,
		RequestID: ctx.GetString("request_id"),
		Timestamp: time.Now(),
	})
}
