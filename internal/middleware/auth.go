package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mri-dashboard/internal/models"
)

const doctorIDKey = "doctor_id"

// RequireAuth resolves the bearer token to an active session and stores the
// operator's doctor id on the request context. Requests without a live
// session are rejected before any handler side effects.
func RequireAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		token, err := uuid.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		var session models.Session
		if err := db.Where("token = ? AND expires_at > ?", token, time.Now()).First(&session).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		c.Set(doctorIDKey, session.DoctorID)
		c.Next()
	}
}

// DoctorID returns the authenticated operator's id set by RequireAuth.
func DoctorID(c *gin.Context) uuid.UUID {
	if v, ok := c.Get(doctorIDKey); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}
