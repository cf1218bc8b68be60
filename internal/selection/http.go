package selection

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hydroshield/specbuilder-backend/internal/catalog"
)

type Handler struct {
	resolver *Resolver
	matcher  *Matcher
}

func Register(rg *gin.RouterGroup, store Store) {
	h := &Handler{
		resolver: NewResolver(store),
		matcher:  NewMatcher(store),
	}

	rg.GET("/next-step", h.nextStep)
	rg.POST("/recommend", h.recommend)
}

// nextStep reads the accumulated filters from query params, one per catalog
// attribute, e.g. /next-step?distributor=Bayset&area_type=roof.
func (h *Handler) nextStep(c *gin.Context) {
	filters, err := filtersFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	step, err := h.resolver.NextStep(c.Request.Context(), filters)
	if err != nil {
		if errors.Is(err, ErrUnknownAttribute) {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to resolve next step"})
		return
	}

	var next *string
	if step.Attribute != "" {
		next = &step.Attribute
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":        true,
		"next_step": next,
		"options":   step.Options,
		"complete":  step.Complete,
	})
}

type recommendReq struct {
	Distributor string         `json:"distributor"`
	Selections  map[string]any `json:"selections"`
}

func (h *Handler) recommend(c *gin.Context) {
	var req recommendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if strings.TrimSpace(req.Distributor) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "distributor is required"})
		return
	}

	filters, err := filtersFromJSON(req.Selections)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	filters["distributor"] = strings.TrimSpace(req.Distributor)

	systems, err := h.matcher.Recommend(c.Request.Context(), filters, MaxRecommendations)
	if err != nil {
		if errors.Is(err, ErrUnknownAttribute) {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to match systems"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "systems": systems})
}

func filtersFromQuery(c *gin.Context) (Filters, error) {
	filters := make(Filters)
	for _, attr := range catalog.Attributes() {
		raw, ok := c.GetQuery(attr.Name)
		if !ok {
			continue
		}
		v, err := attr.ParseValue(raw)
		if err != nil {
			return nil, err
		}
		filters[attr.Name] = v
	}
	return filters, nil
}

// filtersFromJSON converts decoded JSON selection values into native filter
// values: strings stay strings, bools stay bools, arrays become []string.
func filtersFromJSON(selections map[string]any) (Filters, error) {
	filters := make(Filters, len(selections))
	for name, raw := range selections {
		attr, ok := catalog.ByName(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownAttribute, name)
		}

		switch v := raw.(type) {
		case string:
			parsed, err := attr.ParseValue(v)
			if err != nil {
				return nil, err
			}
			filters[name] = parsed
		case bool:
			filters[name] = v
		case []any:
			arr := make([]string, 0, len(v))
			for _, item := range v {
				s, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("attribute %s: array values must be strings", name)
				}
				arr = append(arr, s)
			}
			filters[name] = arr
		default:
			return nil, fmt.Errorf("attribute %s: unsupported value type", name)
		}
	}
	return filters, nil
}
