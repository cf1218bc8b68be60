package systems

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo *Repo
}

func Register(rg *gin.RouterGroup, repo *Repo) {
	h := &Handler{repo: repo}

	rg.GET("/:id", h.get)
	rg.GET("/:id/layers", h.layers)
}

func (h *Handler) get(c *gin.Context) {
	detail, err := h.repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "system not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to load system"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "system": detail})
}

func (h *Handler) layers(c *gin.Context) {
	var target *int
	if raw, ok := c.GetQuery("combination"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "combination must be a positive integer"})
			return
		}
		target = &n
	}

	layers, err := h.repo.Layers(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to load layers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "combinations": GroupByCombination(layers, target)})
}
