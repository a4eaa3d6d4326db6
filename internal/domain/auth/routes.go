package auth

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes mounts unauthenticated auth endpoints.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/login", h.Login)
}

// RegisterProtectedRoutes mounts endpoints that need a valid token.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/auth/me", h.Me)
}
