package handler

import (
	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	Info   *InfoHandler
	Upload *UploadHandler
	Assist *AssistHandler
}

func RegisterRoutes(api *gin.RouterGroup, deps RouterDeps) {
	api.GET("/", deps.Info.Banner)
	api.POST("/upload", deps.Upload.Upload)
	api.POST("/simplify", deps.Assist.Simplify)
	api.POST("/visual-model", deps.Assist.Visualize)
	api.POST("/narrate", deps.Assist.Narrate)
	api.POST("/ask-questions", deps.Assist.Ask)
}
