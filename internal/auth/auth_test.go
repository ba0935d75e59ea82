package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabelabs/gabe-web/internal/database"
	"github.com/gabelabs/gabe-web/internal/services"
)

func newAuthServer(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()

	db, err := database.NewDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	Init("test-secret")
	h := NewHandlers(services.NewUserService(db))

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/auth/register", h.Register).Methods("POST")
	r.HandleFunc("/api/v1/auth/login", h.Login).Methods("POST")
	r.HandleFunc("/api/v1/auth/logout", h.Logout).Methods("POST")
	r.HandleFunc("/api/v1/auth/me", h.Me).Methods("GET")

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return srv, &http.Client{Jar: jar}
}

func post(t *testing.T, client *http.Client, url string, body interface{}) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := client.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func TestRegisterLoginMe(t *testing.T) {
	srv, client := newAuthServer(t)

	resp := post(t, client, srv.URL+"/api/v1/auth/register", map[string]string{
		"username": "dana", "password": "secret123", "name": "Dana", "age_range": "18-24",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp, err := client.Get(srv.URL + "/api/v1/auth/me")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var me struct {
		Username string `json:"username"`
		Name     string `json:"name"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&me))
	assert.Equal(t, "dana", me.Username)
	assert.Equal(t, "Dana", me.Name)
}

func TestRegisterValidation(t *testing.T) {
	srv, client := newAuthServer(t)

	resp := post(t, client, srv.URL+"/api/v1/auth/register", map[string]string{"username": "dana"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestLoginWrongPassword(t *testing.T) {
	srv, client := newAuthServer(t)

	resp := post(t, client, srv.URL+"/api/v1/auth/register", map[string]string{
		"username": "dana", "password": "secret123", "name": "Dana",
	})
	resp.Body.Close()

	resp = post(t, client, srv.URL+"/api/v1/auth/login", map[string]string{
		"username": "dana", "password": "nope",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestLogoutKeepsGuestProgressSession(t *testing.T) {
	srv, client := newAuthServer(t)

	resp := post(t, client, srv.URL+"/api/v1/auth/register", map[string]string{
		"username": "dana", "password": "secret123", "name": "Dana",
	})
	resp.Body.Close()

	resp = post(t, client, srv.URL+"/api/v1/auth/logout", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err := client.Get(srv.URL + "/api/v1/auth/me")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}
