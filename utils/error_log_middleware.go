package utils

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-Id"

type errorLogWriter struct {
	gin.ResponseWriter
	gc        *gin.Context
	requestID string
}

func (w errorLogWriter) Write(b []byte) (int, error) {
	status := w.gc.Writer.Status()
	if status >= 400 {
		log.Printf("[DEBUG ERROR] %s %s: Status %d, Request %s, Body: %s", w.gc.Request.Method, w.gc.Request.URL.Path, status, w.requestID, string(b))
	}
	return w.ResponseWriter.Write(b)
}

// ErrorLogMiddleware doesn't work with GZIP
func ErrorLogMiddleware(c *gin.Context) {
	requestID := uuid.NewString()
	c.Header(RequestIDHeader, requestID)
	blw := &errorLogWriter{gc: c, ResponseWriter: c.Writer, requestID: requestID}
	c.Writer = blw
	c.Next()
}
