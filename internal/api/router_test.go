package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/phylo-app/phylo/internal/api"
	"github.com/phylo-app/phylo/internal/middleware"
	"github.com/phylo-app/phylo/internal/models"
)

func newFullRouter(t *testing.T, svc *mockRelationService) http.Handler {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	return api.NewRouter(ctx, &api.RouterDeps{
		Log:         testLogger(),
		Database:    &mockDatabase{},
		Schema:      &mockDatabase{},
		Relations:   svc,
		CORSOrigins: []string{"http://localhost:3000"},
		Version:     "test",
	})
}

func TestRouter_Routes(t *testing.T) {
	svc := &mockRelationService{
		betweenFn: func(_ context.Context, q models.RelationQuery) (*models.RelationResult, error) {
			return &models.RelationResult{FromMemberID: q.From, ToMemberID: q.To, Relationship: "spouse"}, nil
		},
	}
	r := newFullRouter(t, svc)

	w := doRequest(r, http.MethodGet, "/api/v1/trees/"+testTreeID+"/relations/between?from="+testFromID+"&to="+testToID)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("expected request id header")
	}

	if w.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("expected security headers")
	}

	w = doRequest(r, http.MethodGet, "/api/v1/ready")
	if w.Code != http.StatusOK {
		t.Fatalf("expected ready, got %d", w.Code)
	}
}

func TestRouter_NoRoute(t *testing.T) {
	r := newFullRouter(t, &mockRelationService{})

	w := doRequest(r, http.MethodGet, "/api/v1/nodes")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	body := decodeError(t, w)
	if body.Code != api.ErrCodeNotFound {
		t.Errorf("unexpected code %q", body.Code)
	}

	if body.RequestID == "" {
		t.Error("expected request id in error envelope")
	}
}

func TestMetricsHandler(t *testing.T) {
	w := doRequest(api.NewMetricsHandler(), http.MethodGet, "/metrics")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
