package test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// PerformRequest runs one request through the engine. Headers are "Key: Value"
// strings; cookies are attached as-is.
func PerformRequest(r *gin.Engine, t *testing.T, method, url string, body io.Reader, headers []string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	for _, h := range headers {
		key, value, ok := strings.Cut(h, ":")
		if !ok {
			t.Fatalf("malformed header %q", h)
		}
		req.Header.Set(strings.TrimSpace(key), strings.TrimSpace(value))
	}

	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
