package middleware

import (
	"bytes"
	"io"
	"net/http"

	"github.com/DadoBotGaming/voluntary-association/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const maxAuditBody = 2000

// Audit appends an audit_logs row for every mutating request made by an
// authenticated user. Failures to write the log never affect the response.
func Audit(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			c.Next()
			return
		}

		var bodyBytes []byte
		if c.Request.Body != nil {
			bodyBytes, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}

		c.Next()

		user := CurrentUser(c)
		if user == nil {
			return
		}

		body := string(bodyBytes)
		if len(body) > maxAuditBody {
			body = body[:maxAuditBody]
		}

		entry := models.AuditLog{
			UserID:    &user.ID,
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			Body:      body,
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}
		_ = db.Create(&entry).Error
	}
}
