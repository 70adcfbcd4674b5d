package router

import (
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "gocrane/docs" // registra a especificação Swagger gerada
	"gocrane/internal/api/layout"
	"gocrane/internal/api/operator"
	"gocrane/internal/api/simulation"
	"gocrane/internal/domain"
	"gocrane/internal/pkg/cache"
	"gocrane/internal/pkg/logger"
	"gocrane/internal/pkg/middleware"
)

// Handlers reúne os handlers já inicializados por injeção de dependências.
type Handlers struct {
	Layout     *layout.Handler
	Simulation *simulation.Handler
	Operator   *operator.Handler
}

// RateLimit configura a janela fixa aplicada a todas as rotas.
type RateLimit struct {
	MaxRequests int
	Period      time.Duration
}

// NewRouter configura e retorna o roteador HTTP principal.
func NewRouter(h Handlers, tokenSvc middleware.TokenService, cacheClient cache.Client, limit RateLimit, log logger.Logger) http.Handler {
	mux := http.NewServeMux()

	auth := middleware.NewAuthMiddleware(tokenSvc)
	adminOnly := middleware.PermissionMiddleware(domain.RoleAdmin)
	anyOperator := middleware.PermissionMiddleware(domain.RoleAdmin, domain.RoleOperator)

	protect := func(perm func(http.HandlerFunc) http.HandlerFunc, next http.HandlerFunc) http.HandlerFunc {
		return auth(perm(next))
	}

	// Health check e documentação
	mux.HandleFunc("GET /ping", PingHandler)
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Operadores (rotas públicas)
	mux.HandleFunc("POST /v1/register", h.Operator.RegisterHandler)
	mux.HandleFunc("POST /v1/login", h.Operator.LoginHandler)

	// Layouts: leitura para qualquer operador, escrita só para admin
	mux.HandleFunc("POST /v1/layouts", protect(adminOnly, h.Layout.CreateLayoutHandler))
	mux.HandleFunc("GET /v1/layouts", protect(anyOperator, h.Layout.GetAllLayoutsHandler))
	mux.HandleFunc("GET /v1/layouts/{id}", protect(anyOperator, h.Layout.GetLayoutByIDHandler))
	mux.HandleFunc("PUT /v1/layouts/{id}", protect(adminOnly, h.Layout.UpdateLayoutHandler))
	mux.HandleFunc("DELETE /v1/layouts/{id}", protect(adminOnly, h.Layout.DeleteLayoutHandler))

	// Simulações
	mux.HandleFunc("POST /v1/simulations", protect(anyOperator, h.Simulation.SimulateHandler))
	mux.HandleFunc("GET /v1/simulations", protect(anyOperator, h.Simulation.ListRunsHandler))
	mux.HandleFunc("GET /v1/simulations/{id}", protect(anyOperator, h.Simulation.GetRunHandler))

	return middleware.RateLimiter(cacheClient, limit.MaxRequests, limit.Period, log)(mux)
}

// PingHandler é o health check do serviço.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
