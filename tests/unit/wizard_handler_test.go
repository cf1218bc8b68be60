package unit

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydroshield/specbuilder-backend/internal/selection"
	"github.com/hydroshield/specbuilder-backend/internal/wizard"
)

type wizardResp struct {
	OK      bool         `json:"ok"`
	State   wizard.State `json:"state"`
	Options []struct {
		Value any    `json:"value"`
		Label string `json:"label"`
	} `json:"options"`
	Matched *bool  `json:"matched"`
	Message string `json:"message"`
	System  *struct {
		ID string `json:"id"`
	} `json:"system"`
}

func wizardRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := selection.NewMemoryStore([]selection.SystemRecord{
		{
			ID: "ps-1", Name: "BaySeal SA", Distributor: "Bayset",
			AreaType: "roof", Substrate: "concrete", Material: "bitumen",
			Insulated: true, Exposure: true, Attachment: "self-adhered",
		},
	})

	r := gin.New()
	wizard.Register(r.Group("/api/v1/wizard"), store)
	return r
}

func postStep(t *testing.T, router *gin.Engine, state wizard.State, value string) wizardResp {
	t.Helper()

	payload, err := json.Marshal(map[string]any{"state": state, "value": value})
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/wizard/step", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp wizardResp
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.True(t, resp.OK)
	return resp
}

func TestWizardStartOffersDistributors(t *testing.T) {
	router := wizardRouter()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/api/v1/wizard/start", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp wizardResp
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "system", resp.State.Step)
	require.Len(t, resp.Options, 1)
	assert.Equal(t, "Bayset", resp.Options[0].Value)
}

func TestWizardFullWalkMatchesSystem(t *testing.T) {
	router := wizardRouter()

	state := wizard.NewState()
	answers := []string{"Bayset", "roof", "", "concrete", "bitumen", "yes", "exposed", "self-adhered"}
	var last wizardResp
	for _, answer := range answers {
		last = postStep(t, router, state, answer)
		state = last.State
	}

	assert.Equal(t, "result", state.Step)
	require.NotNil(t, last.Matched)
	assert.True(t, *last.Matched)
	require.NotNil(t, last.System)
	assert.Equal(t, "ps-1", last.System.ID)
}

func TestWizardNoMatchRendersMessage(t *testing.T) {
	router := wizardRouter()

	state := wizard.NewState()
	answers := []string{"Bayset", "roof", "", "concrete", "bitumen", "no", "exposed", "self-adhered"}
	var last wizardResp
	for _, answer := range answers {
		last = postStep(t, router, state, answer)
		state = last.State
	}

	require.NotNil(t, last.Matched)
	assert.False(t, *last.Matched)
	assert.NotEmpty(t, last.Message)
	assert.Nil(t, last.System)
}

func TestWizardRejectsInvalidStep(t *testing.T) {
	router := wizardRouter()

	payload := `{"state": {"step": "nonsense", "filters": {}}, "value": "x"}`
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/wizard/step", bytes.NewReader([]byte(payload)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
