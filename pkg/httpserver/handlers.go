package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/varunvj2006/sniffd-ai/pkg/notes"
	"github.com/varunvj2006/sniffd-ai/pkg/search"
	"github.com/varunvj2006/sniffd-ai/pkg/suggest"
)

const minSceneLength = 5

type handlers struct {
	service *suggest.Service
	log     zerolog.Logger
}

func newHandlers(service *suggest.Service, log zerolog.Logger) *handlers {
	return &handlers{service: service, log: log.With().Str("component", "api").Logger()}
}

type sceneRequest struct {
	Scene string `json:"scene"`
}

type notesRequest struct {
	Notes notes.NoteSet `json:"notes"`
}

func (h *handlers) extractNotes(c *gin.Context) {
	scene, ok := h.bindScene(c)
	if !ok {
		return
	}
	set, err := h.service.ExtractNotes(pipelineContext(c), scene)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notes": set})
}

func (h *handlers) findSuggestions(c *gin.Context) {
	var req notesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	result, err := h.service.FindSuggestions(pipelineContext(c), req.Notes)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handlers) findFromScene(c *gin.Context) {
	scene, ok := h.bindScene(c)
	if !ok {
		return
	}
	result, err := h.service.FindFromScene(pipelineContext(c), scene)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handlers) bindScene(c *gin.Context) (string, bool) {
	var req sceneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return "", false
	}
	scene := strings.TrimSpace(req.Scene)
	if len(scene) < minSceneLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "scene must be at least 5 characters"})
		return "", false
	}
	return scene, true
}

func (h *handlers) fail(c *gin.Context, err error) {
	status := http.StatusBadGateway
	if errors.Is(err, search.ErrNoCredentials) {
		status = http.StatusServiceUnavailable
	}
	h.log.Error().Err(err).Str("path", c.FullPath()).Msg("Pipeline request failed")
	c.JSON(status, gin.H{"error": err.Error()})
}

// pipelineContext detaches the pipeline from the request context so an early
// client disconnect does not cancel in-flight model, search, or scrape calls.
func pipelineContext(c *gin.Context) context.Context {
	return context.WithoutCancel(c.Request.Context())
}
