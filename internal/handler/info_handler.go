package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ainable/backend/internal/pkg/response"
)

type InfoHandler struct {
	version string
}

func NewInfoHandler(version string) *InfoHandler {
	return &InfoHandler{version: version}
}

func (h *InfoHandler) Banner(c *gin.Context) {
	response.Success(c, gin.H{
		"message": "Welcome to AI Nable Backend",
		"version": h.version,
		"endpoints": gin.H{
			"root":          "/",
			"upload":        "/upload",
			"simplify":      "/simplify",
			"visual_model":  "/visual-model",
			"narrate":       "/narrate",
			"ask_questions": "/ask-questions",
		},
	})
}
