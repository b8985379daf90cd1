package router

import "github.com/gin-gonic/gin"

type Registry struct {
	Engine  *gin.Engine
	Root    *gin.RouterGroup
	modules []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	// Routes live at the root; there is no /api prefix in this service.
	return &Registry{Engine: engine, Root: &engine.RouterGroup}
}

func (r *Registry) Add(mod Module) {
	r.modules = append(r.modules, mod)
}

func (r *Registry) RegisterAll() {
	for _, m := range r.modules {
		m.Register(r.Root)
	}
}
