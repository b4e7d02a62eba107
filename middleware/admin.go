package middleware

import (
	"net/http"

	userRepo "carrental/database/repository/user"
	"carrental/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// AdminOnlyMiddleware runs after JWTAuthMiddleware and rejects requests whose
// account does not hold the admin role. The role is re-read from the database
// so a revoked admin cannot keep acting on a stale token.
func AdminOnlyMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userID")
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		proj := bson.M{"id": 1, "role": 1}
		usr, err := repo.GetByIDWithProjection(userID, proj)
		if err != nil || usr == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
			return
		}
		if usr.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}

		c.Set("role", models.RoleAdmin)
		c.Next()
	}
}
