package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/formgate/formgate/internal/interface/http"
)

// FormModule wires form CRUD and response collection routes.

type FormModule struct {
	Handler *handlers.FormHandler
}

func NewFormModule(h *handlers.FormHandler) *FormModule {
	return &FormModule{Handler: h}
}

func (m *FormModule) Register(rg *gin.RouterGroup) {
	rg.POST("/forms", m.Handler.Create)
	rg.GET("/forms", m.Handler.List)
	rg.GET("/forms/:id", m.Handler.Get)
	rg.PUT("/forms/:id", m.Handler.Update)
	rg.DELETE("/forms/:id", m.Handler.Delete)

	rg.POST("/forms/:id/responses", m.Handler.SubmitResponse)
	rg.GET("/forms/:id/responses", m.Handler.ListResponses)
}
