package web

import (
	"github.com/gin-gonic/gin"
)

var (
	_ Handler = (*AuthHandler)(nil)
	_ Handler = (*UserHandler)(nil)
	_ Handler = (*UploadHandler)(nil)
)

type Handler interface {
	RegisterRoutes(e *gin.Engine)
}
