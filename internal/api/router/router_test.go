package router_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocrane/internal/api/layout"
	"gocrane/internal/api/operator"
	"gocrane/internal/api/router"
	"gocrane/internal/api/simulation"
	"gocrane/internal/domain"
	"gocrane/internal/pkg/cache"
	"gocrane/internal/pkg/logger"
	"gocrane/internal/pkg/token"
)

// memoryCache é um cache.Client em memória, suficiente para o rate limiter.
type memoryCache struct {
	mu     sync.Mutex
	values map[string]int
}

func newMemoryCache() *memoryCache { return &memoryCache{values: map[string]int{}} }

func (c *memoryCache) Get(ctx context.Context, key string) (string, error) {
	return "", cache.ErrCacheMiss
}

func (c *memoryCache) GetInt(ctx context.Context, key string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.values[key]
	if !ok {
		return 0, cache.ErrCacheMiss
	}
	return v, nil
}

func (c *memoryCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n, ok := value.(int); ok {
		c.values[key] = n
	}
	return nil
}

func (c *memoryCache) Incr(ctx context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key]++
	return int64(c.values[key]), nil
}

func (c *memoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, key)
	return nil
}

type stubLayouts struct{}

func (stubLayouts) CreateLayout(ctx context.Context, l domain.Layout) (domain.Layout, error) {
	l.ID = "novo"
	return l, nil
}
func (stubLayouts) GetLayoutByID(ctx context.Context, id string) (domain.Layout, error) {
	return domain.Layout{ID: id}, nil
}
func (stubLayouts) GetAllLayouts(ctx context.Context) ([]domain.Layout, error) {
	return []domain.Layout{}, nil
}
func (stubLayouts) UpdateLayout(ctx context.Context, l domain.Layout) (domain.Layout, error) {
	return l, nil
}
func (stubLayouts) DeleteLayout(ctx context.Context, id string) error { return nil }

type stubSimulations struct{}

func (stubSimulations) Simulate(ctx context.Context, req domain.SimulationRequest) (domain.Run, error) {
	return domain.Run{ID: "run", TopLabels: "CMZ"}, nil
}
func (stubSimulations) GetRun(ctx context.Context, id string) (domain.Run, error) {
	return domain.Run{ID: id}, nil
}
func (stubSimulations) ListRuns(ctx context.Context, limit int) ([]domain.Run, error) {
	return []domain.Run{}, nil
}

type stubOperators struct{}

func (stubOperators) Register(ctx context.Context, reg domain.OperatorRegistration) (domain.Operator, error) {
	return domain.Operator{Email: reg.Email, Role: domain.RoleOperator}, nil
}
func (stubOperators) Login(ctx context.Context, email, password string) (string, error) {
	return "token", nil
}

func newTestRouter(t *testing.T, maxRequests int) (http.Handler, *token.Service) {
	t.Helper()
	log := logger.NewNop()
	tokenSvc := token.NewService("segredo-de-teste", time.Hour)
	handlers := router.Handlers{
		Layout:     layout.NewHandler(stubLayouts{}, log),
		Simulation: simulation.NewHandler(stubSimulations{}, log, 0),
		Operator:   operator.NewHandler(stubOperators{}, log),
	}
	return router.NewRouter(handlers, tokenSvc, newMemoryCache(), router.RateLimit{MaxRequests: maxRequests, Period: time.Minute}, log), tokenSvc
}

func bearer(t *testing.T, svc *token.Service, role domain.OperatorRole) string {
	t.Helper()
	tok, err := svc.GenerateToken("op-1", string(role))
	require.NoError(t, err)
	return "Bearer " + tok
}

func TestRouter_Ping(t *testing.T) {
	h, _ := newTestRouter(t, 100)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestRouter_Permissions(t *testing.T) {
	h, tokenSvc := newTestRouter(t, 100)
	admin := bearer(t, tokenSvc, domain.RoleAdmin)
	op := bearer(t, tokenSvc, domain.RoleOperator)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		auth   string
		want   int
	}{
		{"registro é público", http.MethodPost, "/v1/register", `{"email":"a@b.c","password":"12345678"}`, "", http.StatusCreated},
		{"simulação exige token", http.MethodPost, "/v1/simulations", `{"input":"x"}`, "", http.StatusUnauthorized},
		{"operador simula", http.MethodPost, "/v1/simulations", `{"input":"x"}`, op, http.StatusCreated},
		{"operador lista layouts", http.MethodGet, "/v1/layouts", "", op, http.StatusOK},
		{"operador não cria layout", http.MethodPost, "/v1/layouts", `{"name":"abc"}`, op, http.StatusForbidden},
		{"admin cria layout", http.MethodPost, "/v1/layouts", `{"name":"abc"}`, admin, http.StatusCreated},
		{"admin apaga layout", http.MethodDelete, "/v1/layouts/abc", "", admin, http.StatusNoContent},
		{"método não suportado", http.MethodPatch, "/v1/layouts/abc", "", admin, http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRouter_RateLimit(t *testing.T) {
	h, _ := newTestRouter(t, 2)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
