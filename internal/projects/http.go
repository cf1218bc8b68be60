package projects

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hydroshield/specbuilder-backend/internal/auth"
)

type Handler struct {
	repo *Repo
}

func Register(rg *gin.RouterGroup, repo *Repo) {
	h := &Handler{repo: repo}

	rg.POST("", h.create)
	rg.GET("", h.list)
	rg.PATCH("/:public_id", h.rename)
	rg.DELETE("/:public_id", h.delete)

	rg.POST("/:public_id/areas", h.createArea)
	rg.GET("/:public_id/areas", h.listAreas)
	rg.PATCH("/:public_id/areas/:area_id", h.updateArea)
	rg.DELETE("/:public_id/areas/:area_id", h.deleteArea)
}

type createReq struct {
	Name    string `json:"name"`
	Client  string `json:"client"`
	Address string `json:"address"`
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	userID := auth.UserDBID(c)
	p, err := h.repo.Create(c.Request.Context(), userID, strings.TrimSpace(req.Name), req.Client, req.Address)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": p})
}

func (h *Handler) list(c *gin.Context) {
	userID := auth.UserDBID(c)
	items, err := h.repo.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items})
}

type renameReq struct {
	Name string `json:"name"`
}

func (h *Handler) rename(c *gin.Context) {
	publicID := c.Param("public_id")

	var req renameReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	userID := auth.UserDBID(c)
	p, err := h.repo.Rename(c.Request.Context(), userID, publicID, strings.TrimSpace(req.Name))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) delete(c *gin.Context) {
	publicID := c.Param("public_id")
	userID := auth.UserDBID(c)

	ok, err := h.repo.SoftDelete(c.Request.Context(), userID, publicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type areaReq struct {
	Name        string `json:"name"`
	SystemID    string `json:"system_id"`
	Combination int    `json:"combination"`
}

func (h *Handler) createArea(c *gin.Context) {
	var req areaReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" || req.SystemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if req.Combination < 1 {
		req.Combination = 1
	}

	userID := auth.UserDBID(c)
	a, err := h.repo.CreateArea(c.Request.Context(), userID, c.Param("public_id"),
		strings.TrimSpace(req.Name), req.SystemID, req.Combination)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "area": a})
}

func (h *Handler) listAreas(c *gin.Context) {
	userID := auth.UserDBID(c)
	items, err := h.repo.ListAreas(c.Request.Context(), userID, c.Param("public_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "areas": items})
}

func (h *Handler) updateArea(c *gin.Context) {
	var req areaReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	userID := auth.UserDBID(c)
	a, err := h.repo.UpdateArea(c.Request.Context(), userID, c.Param("public_id"), c.Param("area_id"),
		strings.TrimSpace(req.Name), req.SystemID, req.Combination)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "area not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "area": a})
}

func (h *Handler) deleteArea(c *gin.Context) {
	userID := auth.UserDBID(c)
	ok, err := h.repo.DeleteArea(c.Request.Context(), userID, c.Param("public_id"), c.Param("area_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "area not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
