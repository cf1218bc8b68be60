package documents

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hydroshield/specbuilder-backend/internal/auth"
	"github.com/hydroshield/specbuilder-backend/internal/projects"
	"github.com/hydroshield/specbuilder-backend/internal/systems"
)

const defaultWarrantyYears = 10

type Handler struct {
	projectRepo *projects.Repo
	systemRepo  *systems.Repo
}

func Register(rg *gin.RouterGroup, projectRepo *projects.Repo, systemRepo *systems.Repo) {
	h := &Handler{projectRepo: projectRepo, systemRepo: systemRepo}

	rg.POST("/:public_id/documents/specification", h.specification)
	rg.POST("/:public_id/documents/warranty", h.warranty)
}

func (h *Handler) specification(c *gin.Context) {
	project, areas, ok := h.load(c)
	if !ok {
		return
	}

	pdfBytes, err := BuildSpecification(SpecificationData{Project: project, Areas: areas})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to render document"})
		return
	}
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

type warrantyReq struct {
	Years int `json:"years"`
}

func (h *Handler) warranty(c *gin.Context) {
	var req warrantyReq
	// Body is optional; a bare POST uses the default term.
	_ = c.ShouldBindJSON(&req)
	if req.Years < 1 {
		req.Years = defaultWarrantyYears
	}

	project, areas, ok := h.load(c)
	if !ok {
		return
	}

	pdfBytes, err := BuildWarranty(WarrantyData{Project: project, Areas: areas, Years: req.Years})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to render document"})
		return
	}
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// load resolves the project, its areas, and each area's system into the
// assembler's input shape. Writes the error response itself on failure.
func (h *Handler) load(c *gin.Context) (ProjectInfo, []AreaSection, bool) {
	ctx := c.Request.Context()
	userID := auth.UserDBID(c)
	publicID := c.Param("public_id")

	project, err := h.projectRepo.Get(ctx, userID, publicID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return ProjectInfo{}, nil, false
	}

	areas, err := h.projectRepo.ListAreas(ctx, userID, publicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to load areas"})
		return ProjectInfo{}, nil, false
	}

	sections := make([]AreaSection, 0, len(areas))
	for _, area := range areas {
		detail, err := h.systemRepo.Get(ctx, area.SystemID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to load system " + area.SystemID})
			return ProjectInfo{}, nil, false
		}

		combination := area.Combination
		groups := systems.GroupByCombination(detail.Layers, &combination)
		group := systems.CombinationGroup{Combination: combination, Products: []systems.LayerProduct{}}
		if len(groups) > 0 {
			group = groups[0]
		}

		sections = append(sections, AreaSection{
			Name:        area.Name,
			System:      detail.SystemRecord,
			Combination: group,
		})
	}

	info := ProjectInfo{
		Name:    project.Name,
		Client:  project.Client,
		Address: project.Address,
		Date:    time.Now(),
	}
	return info, sections, true
}
