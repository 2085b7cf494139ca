package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ainable/backend/internal/pkg/response"
	"github.com/ainable/backend/internal/service"
)

// AssistHandler serves the AI-backed operations: simplification, visual
// storytelling, narration, and follow-up questions.
type AssistHandler struct {
	simplifier *service.SimplifyService
	visualizer *service.VisualService
	narrator   *service.NarrateService
	qa         *service.QAService
}

func NewAssistHandler(
	simplifier *service.SimplifyService,
	visualizer *service.VisualService,
	narrator *service.NarrateService,
	qa *service.QAService,
) *AssistHandler {
	return &AssistHandler{
		simplifier: simplifier,
		visualizer: visualizer,
		narrator:   narrator,
		qa:         qa,
	}
}

type simplifyRequest struct {
	Text string `json:"text"`
}

type visualRequest struct {
	SimplifiedText string `json:"simplified_text"`
}

type narrateRequest struct {
	Text string `json:"text"`
}

type askRequest struct {
	Context  string `json:"context"`
	Question string `json:"question"`
}

func (h *AssistHandler) Simplify(c *gin.Context) {
	var req simplifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid", "invalid request")
		return
	}
	result, err := h.simplifier.Simplify(c.Request.Context(), req.Text)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, result)
}

func (h *AssistHandler) Visualize(c *gin.Context) {
	var req visualRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid", "invalid request")
		return
	}
	result, err := h.visualizer.Visualize(c.Request.Context(), req.SimplifiedText)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, result)
}

func (h *AssistHandler) Narrate(c *gin.Context) {
	var req narrateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid", "invalid request")
		return
	}
	result, err := h.narrator.Narrate(c.Request.Context(), req.Text)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, result)
}

func (h *AssistHandler) Ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid", "invalid request")
		return
	}
	result, err := h.qa.Ask(c.Request.Context(), req.Context, req.Question)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, result)
}
