package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore-api/pkg/logger"
)

// HomeHandler serves the anonymous /api/home endpoints used to check the API is up.
type HomeHandler struct {
	log logger.Logger
}

func NewHomeHandler(log logger.Logger) *HomeHandler {
	return &HomeHandler{log: log}
}

// Index handles GET /api/home.
func (h *HomeHandler) Index(c *gin.Context) {
	h.log.Info("Default home controller action method (api/home) was called.", nil)
	c.String(http.StatusOK, "Hello World!")
}

// Get handles GET /api/home/:id.
func (h *HomeHandler) Get(c *gin.Context) {
	h.log.Debug("Default home controller action method (api/home/" + c.Param("id") + ") was called.")
	c.String(http.StatusOK, "value")
}

// Post handles POST /api/home. Nothing is stored.
func (h *HomeHandler) Post(c *gin.Context) {
	h.log.Error("User trying to post to home controller action via (api/home/).", nil)
	c.Status(http.StatusOK)
}

// Put handles PUT /api/home/:id. Nothing is stored.
func (h *HomeHandler) Put(c *gin.Context) {
	c.Status(http.StatusOK)
}

// Delete handles DELETE /api/home/:id. Nothing is deleted.
func (h *HomeHandler) Delete(c *gin.Context) {
	h.log.Warn("User attempting to delete record (api/home/"+c.Param("id")+").", nil)
	c.Status(http.StatusOK)
}
