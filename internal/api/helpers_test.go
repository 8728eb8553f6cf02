package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/phylo-app/phylo/internal/httputil"
)

const (
	testTreeID   = "7d0e4a5c-1b2f-4c3d-8e9f-0a1b2c3d4e5f"
	testFromID   = "10000000-0000-4000-8000-000000000001"
	testToID     = "10000000-0000-4000-8000-000000000002"
	testMissing  = "10000000-0000-4000-8000-0000000000ff"
	testBasePath = "/trees/" + testTreeID
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.ErrorLevel)

	return l
}

// doRequest performs an HTTP request against the test router and returns the recorder.
func doRequest(r http.Handler, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

// decodeError unmarshals the standard error envelope.
func decodeError(t *testing.T, w *httptest.ResponseRecorder) httputil.ErrorResponse {
	t.Helper()

	var body httputil.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error JSON: %v (%s)", err, w.Body.String())
	}

	return body
}
