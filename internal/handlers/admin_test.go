package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"paygate/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegrationLogHandler_List(t *testing.T) {
	repo := &memoryLogRepo{rows: []models.IntegrationLog{
		{ID: 1, MerchantID: "m-1", ServiceName: "cbdc", Success: true},
		{ID: 2, MerchantID: "m-1", ServiceName: "wipay", Success: false},
		{ID: 3, MerchantID: "m-2", ServiceName: "cbdc", Success: false},
	}}
	app := fiber.New()
	app.Get("/logs", NewIntegrationLogHandler(repo).List)

	var body struct {
		Data       []models.IntegrationLog `json:"data"`
		Pagination struct {
			Total    int64 `json:"total"`
			LastPage int   `json:"last_page"`
		} `json:"pagination"`
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/logs?service=cbdc&success=false", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, uint(3), body.Data[0].ID)
	assert.Equal(t, int64(1), body.Pagination.Total)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/logs?merchant_id=m-1&limit=1&page=2", nil))
	require.NoError(t, err)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, uint(2), body.Data[0].ID)
	assert.Equal(t, 2, body.Pagination.LastPage)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/logs?success=maybe", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
