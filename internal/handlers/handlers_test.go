package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ayasaad.dev/internal/config"
	"ayasaad.dev/internal/models"
	"ayasaad.dev/internal/mount"
	"ayasaad.dev/internal/navigation"
	"ayasaad.dev/web"
)

func newTestServer(t *testing.T) (http.Handler, *navigation.Sessions) {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 7

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	root, err := mount.New(mount.NewShell(web.Index), cfg.MountID, logger)
	require.NoError(t, err)

	sessions := navigation.NewSessions()
	return SetupRoutes(cfg, root, sessions), sessions
}

func do(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookie {
			return c
		}
	}
	t.Fatalf("no %s cookie set", SessionCookie)
	return nil
}

func navigate(h http.Handler, cookie *http.Cookie, page string) *httptest.ResponseRecorder {
	form := url.Values{"page": {page}}
	req := httptest.NewRequest(http.MethodPost, "/navigate", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return do(h, req)
}

func get(h http.Handler, cookie *http.Cookie, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return do(h, req)
}

func TestIndexStartsOnHome(t *testing.T) {
	h, sessions := newTestServer(t)

	rec := get(h, nil, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, 1, sessions.Len())

	body := rec.Body.String()
	assert.Contains(t, body, "<title>Home | Aya Saad - Product Designer</title>")
	assert.Contains(t, body, `<div id="root"><div class="portfolio-container">`)
	assert.Contains(t, body, "ethereal concepts, jawdropping creations")
	sessionCookie(t, rec)
}

func TestNavigateToSkillsThenIndex(t *testing.T) {
	h, sessions := newTestServer(t)
	cookie := sessionCookie(t, get(h, nil, "/"))

	rec := navigate(h, cookie, "skills")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/#top", rec.Header().Get("Location"))

	sess, ok := sessions.Get(cookie.Value)
	require.True(t, ok)
	assert.Equal(t, models.PageSkills, sess.Switcher.Current())
	assert.True(t, sess.Viewport.AtTop())

	body := get(h, cookie, "/").Body.String()
	assert.Contains(t, body, "<title>Toolkit | Aya Saad</title>")
	assert.Contains(t, body, `class="skills-list"`)
	assert.Contains(t, body, `aria-current="page">Toolkit</button>`)
}

func TestNavigateHomeThenProjects(t *testing.T) {
	h, _ := newTestServer(t)
	cookie := sessionCookie(t, get(h, nil, "/"))

	navigate(h, cookie, "home")
	navigate(h, cookie, "projects")

	body := get(h, cookie, "/").Body.String()
	assert.Contains(t, body, "<title>Creations | Aya Saad</title>")
	assert.Equal(t, 4, strings.Count(body, `<article class="project-card"`))
}

func TestNavigateUnknownPageFallsBackHome(t *testing.T) {
	h, sessions := newTestServer(t)
	cookie := sessionCookie(t, get(h, nil, "/"))
	navigate(h, cookie, "about")

	rec := navigate(h, cookie, "blog")
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	sess, _ := sessions.Get(cookie.Value)
	assert.Equal(t, models.PageHome, sess.Switcher.Current())
	assert.Contains(t, get(h, cookie, "/").Body.String(), "<title>Home | Aya Saad - Product Designer</title>")
}

func TestNavigateWithoutSessionStartsOne(t *testing.T) {
	h, sessions := newTestServer(t)

	rec := navigate(h, nil, "contact")
	cookie := sessionCookie(t, rec)

	sess, ok := sessions.Get(cookie.Value)
	require.True(t, ok)
	assert.Equal(t, models.PageContact, sess.Switcher.Current())
}

func TestSessionsAreIndependent(t *testing.T) {
	h, _ := newTestServer(t)
	alice := sessionCookie(t, get(h, nil, "/"))
	bob := sessionCookie(t, get(h, nil, "/"))
	require.NotEqual(t, alice.Value, bob.Value)

	navigate(h, alice, "about")

	assert.Contains(t, get(h, alice, "/").Body.String(), "<title>About Me | Aya Saad</title>")
	assert.Contains(t, get(h, bob, "/").Body.String(), "<title>Home | Aya Saad - Product Designer</title>")
}

func TestProjectsAPI(t *testing.T) {
	h, _ := newTestServer(t)

	rec := get(h, nil, "/api/projects")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var projects []models.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &projects))
	require.Len(t, projects, 4)
	assert.Equal(t, "proj1", projects[0].ID)

	rec = get(h, nil, "/api/projects/proj3")
	require.Equal(t, http.StatusOK, rec.Code)
	var project models.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &project))
	assert.Equal(t, "proj3", project.ID)
}

func TestProjectsAPINotFound(t *testing.T) {
	h, _ := newTestServer(t)

	rec := get(h, nil, "/api/projects/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Project not found"}`, rec.Body.String())
}

func TestSkillsAPI(t *testing.T) {
	h, _ := newTestServer(t)

	var all []string
	require.NoError(t, json.Unmarshal(get(h, nil, "/api/skills").Body.Bytes(), &all))
	assert.Len(t, all, 9)

	tests := map[string]int{
		"/api/skills?limit=4":   4,
		"/api/skills?limit=0":   0,
		"/api/skills?limit=-3":  0,
		"/api/skills?limit=100": 9,
		"/api/skills?limit=abc": 9,
	}
	for target, want := range tests {
		var got []string
		require.NoError(t, json.Unmarshal(get(h, nil, target).Body.Bytes(), &got), target)
		assert.Equal(t, all[:want], got, target)
	}
}

func TestPagesAndHealthAPI(t *testing.T) {
	h, _ := newTestServer(t)

	var pages []PageInfo
	require.NoError(t, json.Unmarshal(get(h, nil, "/api/pages").Body.Bytes(), &pages))
	require.Len(t, pages, 5)
	assert.Equal(t, PageInfo{ID: models.PageSkills, Title: "Toolkit | Aya Saad"}, pages[3])

	rec := get(h, nil, "/api/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestGraphicsEndpoint(t *testing.T) {
	h, _ := newTestServer(t)

	rec := get(h, nil, "/graphics/whispering-woods?width=50000&height=240")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, `<svg xmlns="http://www.w3.org/2000/svg"`))
	assert.Contains(t, body, `width="2048"`)
	assert.Contains(t, body, `height="240"`)

	body = get(h, nil, "/graphics/abstract-curve?variant=two&size=1").Body.String()
	assert.Contains(t, body, `data-variant="two"`)
	assert.Contains(t, body, `width="16"`)
	assert.Equal(t, 1, strings.Count(body, "xmlns="))

	body = get(h, nil, "/graphics/abstract-curve?variant=zzz").Body.String()
	assert.Contains(t, body, `data-variant="default"`)
	assert.Contains(t, body, `width="100"`)

	rec = get(h, nil, "/graphics/unknown")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStaticStylesheet(t *testing.T) {
	h, _ := newTestServer(t)

	rec := get(h, nil, "/static/index.css")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "@keyframes float")
}
