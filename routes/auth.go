package routes

import (
	"github.com/AzracStudios/tee-vista/auth"
	"github.com/AzracStudios/tee-vista/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers registration, login, and logout.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	r.POST("/register", auth.RegisterHandler(db))
	r.POST("/login", auth.LoginHandler(db))
	r.POST("/logout", middleware.ValidateToken, auth.LogoutHandler())
}
