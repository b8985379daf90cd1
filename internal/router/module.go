package router

import "github.com/gin-gonic/gin"

// Module is implemented by each feature area (auth, forms, debug) to hang
// its routes off the shared root group.
type Module interface {
	Register(rg *gin.RouterGroup)
}
