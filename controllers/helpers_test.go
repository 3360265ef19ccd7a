package controllers_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"contactdesk/pkg/backend"
	"contactdesk/pkg/config"
	"contactdesk/pkg/storage"
	"contactdesk/routes"
)

func newTestApp(t *testing.T) (*gin.Engine, *backend.Backend) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.AdminUsername = "admin"
	config.AdminPassword = "admin123"
	config.AdminPasswordHash = ""

	be, err := backend.Select("", filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	files, err := storage.NewAttachments(t.TempDir())
	require.NoError(t, err)

	r := gin.New()
	r.LoadHTMLGlob(filepath.Join("..", "templates", "*"))
	routes.RegisterRoutes(r, be, files)
	return r, be
}

func postForm(r *gin.Engine, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	r.ServeHTTP(w, req)
	return w
}

// submitMessage posts a valid submission and returns the token from the
// redirect target.
func submitMessage(t *testing.T, r *gin.Engine, name, contact, body string) string {
	t.Helper()
	w := postForm(r, "/", url.Values{
		"name":    {name},
		"contact": {contact},
		"message": {body},
	})
	require.Equal(t, http.StatusSeeOther, w.Code, w.Body.String())
	loc := w.Header().Get("Location")
	require.True(t, strings.HasPrefix(loc, "/m/"))
	token := strings.TrimPrefix(loc, "/m/")
	if i := strings.IndexByte(token, '?'); i >= 0 {
		token = token[:i]
	}
	return token
}

// submitWithAttachment posts a multipart submission carrying one file.
func submitWithAttachment(t *testing.T, r *gin.Engine, fileName, fileContent string) string {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for field, val := range map[string]string{
		"name":    "Ann Lee",
		"contact": "ann@x.com",
		"message": "please see the attached file",
	} {
		require.NoError(t, mw.WriteField(field, val))
	}
	fw, err := mw.CreateFormFile("attachment", fileName)
	require.NoError(t, err)
	_, err = io.WriteString(fw, fileContent)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusSeeOther, w.Code, w.Body.String())

	loc := w.Header().Get("Location")
	token := strings.TrimPrefix(loc, "/m/")
	if i := strings.IndexByte(token, '?'); i >= 0 {
		token = token[:i]
	}
	return token
}

func loginAdmin(t *testing.T, r *gin.Engine) *http.Cookie {
	t.Helper()
	w := postForm(r, "/login", url.Values{
		"username": {"admin"},
		"password": {"admin123"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/messages", w.Header().Get("Location"))
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "cd_session" {
			return ck
		}
	}
	t.Fatal("login did not set the session cookie")
	return nil
}
