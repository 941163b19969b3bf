package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yudhapratama/userhub/internal/container"
	handlers "github.com/yudhapratama/userhub/internal/interface/http"
	"github.com/yudhapratama/userhub/internal/interface/middleware"
)

// UserModule wires the user HTTP handlers into routes under /api/users.
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	// Writes get a tighter per-IP limit than reads.
	writeLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath())
	readLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP())

	users := rg.Group("/users")
	{
		users.POST("", writeLimiter, m.Handler.Create)
		users.GET("", readLimiter, m.Handler.List)
		users.GET("/search", readLimiter, m.Handler.SearchUsers)
		users.GET("/:id", readLimiter, m.Handler.Get)
		users.PUT("/:id", writeLimiter, m.Handler.Update)
		users.DELETE("/:id", writeLimiter, m.Handler.Delete)
	}
}
