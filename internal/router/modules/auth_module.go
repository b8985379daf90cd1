package modules

import (
	"net/http"

	"github.com/gin-gonic/gin"

	handlers "github.com/formgate/formgate/internal/interface/http"
	"github.com/formgate/formgate/internal/interface/middleware"
	"github.com/formgate/formgate/pkg/helpers"
)

// AuthModule wires the signup/login endpoints and the protected root route.
// Public: POST /signup, POST /login
// Protected: GET /

type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/signup", m.Handler.Signup)
	rg.POST("/login", m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.GET("", func(c *gin.Context) {
			c.String(http.StatusOK, "Hello World!")
		})
	}
}
