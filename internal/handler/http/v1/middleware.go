package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader - заголовок, в котором передается идентификатор запроса
	RequestIDHeader = "X-Request-Id"

	requestIDKey = "request_id"
)

// RequestIDMiddleware - middleware, присваивающее каждому запросу идентификатор.
// Переданный клиентом заголовок сохраняется, иначе генерируется новый UUID.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

// RequestIDFromContext возвращает идентификатор текущего запроса
func RequestIDFromContext(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
