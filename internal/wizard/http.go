package wizard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hydroshield/specbuilder-backend/internal/catalog"
	"github.com/hydroshield/specbuilder-backend/internal/selection"
)

type Handler struct {
	store selection.Store
}

func Register(rg *gin.RouterGroup, store selection.Store) {
	h := &Handler{store: store}

	rg.GET("/start", h.start)
	rg.POST("/step", h.step)
}

func (h *Handler) start(c *gin.Context) {
	state := NewState()
	options, err := h.options(c, state)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to load options"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "state": state, "options": options})
}

type stepReq struct {
	State State  `json:"state"`
	Value string `json:"value"`
}

func (h *Handler) step(c *gin.Context) {
	var req stepReq
	if err := c.ShouldBindJSON(&req); err != nil || req.State.Step == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	next, err := Advance(req.State, req.Value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	if next.Step == StepResult.String() {
		system, err := Result(next, func(f selection.Filters, limit int) ([]selection.SystemRecord, error) {
			return h.store.MatchExact(c.Request.Context(), f, limit)
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to match system"})
			return
		}
		if system == nil {
			c.JSON(http.StatusOK, gin.H{
				"ok":      true,
				"state":   next,
				"matched": false,
				"message": "no matching system for the selected options",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "state": next, "matched": true, "system": system})
		return
	}

	options, err := h.options(c, next)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to load options"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "state": next, "options": options})
}

// options lists the distinct legal values for the state's current step so
// the form can render its choices.
func (h *Handler) options(c *gin.Context, state State) ([]selection.Option, error) {
	step, err := ParseStep(state.Step)
	if err != nil {
		return nil, err
	}
	attr, ok := step.Field(state.Filters)
	if !ok {
		return []selection.Option{}, nil
	}

	values, err := h.store.DistinctValues(c.Request.Context(), attr.Name, selection.Filters(state.Filters))
	if err != nil {
		return nil, err
	}
	opts := make([]selection.Option, 0, len(values))
	for _, v := range values {
		opts = append(opts, selection.Option{Value: v, Label: catalog.Label(v)})
	}
	return opts, nil
}
