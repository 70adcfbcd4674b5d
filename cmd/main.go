package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"gocrane/config"
	"gocrane/internal/pkg/cache"
	"gocrane/internal/pkg/database"
	"gocrane/internal/pkg/logger"
	"gocrane/internal/pkg/token"

	"gocrane/internal/api/layout"
	"gocrane/internal/api/operator"
	"gocrane/internal/api/response"
	"gocrane/internal/api/router"
	"gocrane/internal/api/simulation"
	"gocrane/internal/domain"
	"gocrane/internal/repository/layoutrepo"
	"gocrane/internal/repository/operatorrepo"
	"gocrane/internal/repository/runrepo"
	"gocrane/internal/service/layoutservice"
	"gocrane/internal/service/operatorservice"
	"gocrane/internal/service/simulationservice"
)

func main() {
	log.Println("⚡ Inicializando serviço GoCrane...")
	if err := godotenv.Load(); err != nil {
		// As variáveis podem vir do ambiente do sistema (ex: Docker).
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	cfg := config.LoadConfig()
	appLog := logger.NewLogger(cfg.LogLevel)
	defer appLog.Sync()
	appLog.Info("Configurações carregadas.", map[string]interface{}{"env": cfg.Environment})

	// 1. Infraestrutura
	db, err := database.NewPostgresDB(cfg.DatabaseURL, cfg.DBTimeout, database.DefaultPool)
	if err != nil {
		appLog.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer db.Close()
	appLog.Info("Conexão PostgreSQL estabelecida.", nil)

	// Sem Redis o serviço continua com cacheClient nil: simulações não usam cache
	// e o rate limit fica desligado.
	var cacheClient cache.Client
	redisClient, err := cache.NewRedisClient(cfg.RedisAddr)
	if err != nil {
		appLog.Warn("Redis indisponível. Seguindo sem cache.", map[string]interface{}{"addr": cfg.RedisAddr, "error": err.Error()})
		redisClient.Close()
	} else {
		appLog.Info("Conexão Redis estabelecida.", nil)
		cacheClient = redisClient
		defer redisClient.Close()
	}

	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry)

	// 2. Injeção de dependências: Repository -> Service -> Handler
	layoutRepo := layoutrepo.NewLayoutRepository(db, cfg.DBTimeout, appLog)
	runRepo := runrepo.NewRunRepository(db, cfg.DBTimeout, appLog)
	operatorRepo := operatorrepo.NewOperatorRepository(db, cfg.DBTimeout, appLog)

	defaultMode, err := domain.ParseMoveMode(cfg.Simulator.DefaultMode)
	if err != nil {
		appLog.Fatal("CRANE_MODE inválido.", err)
	}

	layoutSvc := layoutservice.NewService(layoutRepo, appLog)
	simulationSvc := simulationservice.NewService(runRepo, layoutRepo, cacheClient, appLog, simulationservice.Options{
		DefaultMode:   defaultMode,
		CacheTTL:      cfg.CacheTimeout,
		MaxInputBytes: cfg.Simulator.MaxInputBytes,
	})
	operatorSvc := operatorservice.NewService(operatorRepo, tokenSvc, appLog, cfg.AdminEmails)
	appLog.Debug("Serviços inicializados.", nil)

	// O envelope JSON e o escape de quebras de linha ocupam mais que o texto bruto.
	simulationBodyLimit := 2*cfg.Simulator.MaxInputBytes + response.DefaultMaxBodyBytes

	handlers := router.Handlers{
		Layout:     layout.NewHandler(layoutSvc, appLog),
		Simulation: simulation.NewHandler(simulationSvc, appLog, simulationBodyLimit),
		Operator:   operator.NewHandler(operatorSvc, appLog),
	}

	// 3. Roteador e servidor
	r := router.NewRouter(handlers, tokenSvc, cacheClient, router.RateLimit{
		MaxRequests: cfg.RateLimitMaxRequests,
		Period:      cfg.RateLimitPeriod,
	}, appLog)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		appLog.Info("Servidor GoCrane ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal("Servidor falhou.", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	appLog.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLog.Error("Desligamento do servidor forçado.", err)
	}

	appLog.Info("Servidor encerrado com sucesso.", nil)
}
