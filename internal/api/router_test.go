package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/primeestate/primeestate/internal/api/middleware"
	"github.com/primeestate/primeestate/internal/dialogue"
	"github.com/primeestate/primeestate/internal/domain"
	"github.com/primeestate/primeestate/internal/repository"
	"github.com/primeestate/primeestate/internal/service"
)

const testAPIKey = "test-key"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	db, err := repository.NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	propertyRepo := repository.NewPropertyRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	chatUserRepo := repository.NewChatUserRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	require.NoError(t, repository.SeedCatalog(propertyRepo, projectRepo))

	logger := zap.NewNop()
	catalogService := service.NewCatalogService(propertyRepo, projectRepo)
	leadService := service.NewLeadService(chatUserRepo, leadRepo, logger)
	adminService := service.NewAdminService(propertyRepo, projectRepo, chatUserRepo, leadRepo)
	engine := dialogue.NewEngine(catalogService, leadService, dialogue.Options{}, logger)
	widgetService := service.NewWidgetService(engine, time.Hour, logger)

	router := SetupRouter(catalogService, leadService, widgetService, adminService, RouterConfig{
		APIKey:       testAPIKey,
		AllowOrigins: []string{"*"},
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func postJSON(t *testing.T, url string, body any, out any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)
	resp := getJSON(t, srv.URL+"/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListProperties(t *testing.T) {
	srv := newTestServer(t)

	var properties []domain.Property
	resp := getJSON(t, srv.URL+"/api/properties", &properties)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, properties)

	var one domain.Property
	resp = getJSON(t, fmt.Sprintf("%s/api/properties/%d", srv.URL, properties[0].ID), &one)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, properties[0].Title, one.Title)

	resp = getJSON(t, srv.URL+"/api/properties/99999", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateChatUserEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var user domain.ChatUser
	resp := postJSON(t, srv.URL+"/api/chat/users", domain.CreateChatUserRequest{
		Name:    "Jordan",
		Contact: "jordan@example.com",
	}, &user)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotZero(t, user.ID)

	// same contact keeps the same id
	var again domain.ChatUser
	postJSON(t, srv.URL+"/api/chat/users", domain.CreateChatUserRequest{
		Name:    "Jordan Reyes",
		Contact: "jordan@example.com",
	}, &again)
	require.Equal(t, user.ID, again.ID)

	resp = postJSON(t, srv.URL+"/api/chat/users", map[string]string{"name": "NoContact"}, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestWidgetSessionEndpoints(t *testing.T) {
	srv := newTestServer(t)

	var view service.SessionView
	resp := postJSON(t, srv.URL+"/api/widget/sessions", nil, &view)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotEmpty(t, view.SessionID)
	require.Equal(t, "name", view.State)

	base := srv.URL + "/api/widget/sessions/" + view.SessionID

	var event service.EventResponse
	resp = postJSON(t, base+"/events", service.EventRequest{Type: "text", Text: "Jordan"}, &event)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "contact", event.State)

	resp = postJSON(t, base+"/events", service.EventRequest{Type: "poke"}, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = getJSON(t, base, &view)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "contact", view.State)

	resp = getJSON(t, srv.URL+"/api/widget/sessions/nope", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdminRequiresAPIKey(t *testing.T) {
	srv := newTestServer(t)

	resp := getJSON(t, srv.URL+"/api/admin/stats", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/admin/stats", nil)
	require.NoError(t, err)
	req.Header.Set(middleware.HeaderAPIKey, testAPIKey)
	authed, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer authed.Body.Close()
	require.Equal(t, http.StatusOK, authed.StatusCode)

	var stats domain.Stats
	require.NoError(t, json.NewDecoder(authed.Body).Decode(&stats))
	require.NotZero(t, stats.TotalProperties)
	require.NotZero(t, stats.TotalProjects)

	// the bearer token form works too
	req, err = http.NewRequest(http.MethodGet, srv.URL+"/api/admin/stats", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+testAPIKey)
	bearer, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	bearer.Body.Close()
	require.Equal(t, http.StatusOK, bearer.StatusCode)
}

func TestLeadLifecycle(t *testing.T) {
	srv := newTestServer(t)

	var logged struct {
		LeadID int64 `json:"lead_id"`
	}
	resp := postJSON(t, srv.URL+"/api/leads/log", domain.LeadPayload{
		Name:     "Jordan",
		Contact:  "jordan@example.com",
		Interest: "Browse properties",
	}, &logged)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotZero(t, logged.LeadID)

	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/api/admin/leads/%d", srv.URL, logged.LeadID), nil)
	require.NoError(t, err)
	req.Header.Set(middleware.HeaderAPIKey, testAPIKey)
	deleted, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	deleted.Body.Close()
	require.Equal(t, http.StatusOK, deleted.StatusCode)

	req, err = http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/api/admin/leads/%d", srv.URL, logged.LeadID), nil)
	require.NoError(t, err)
	req.Header.Set(middleware.HeaderAPIKey, testAPIKey)
	missing, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	missing.Body.Close()
	require.Equal(t, http.StatusNotFound, missing.StatusCode)
}
