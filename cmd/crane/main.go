package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"gocrane/config"
	"gocrane/internal/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("⚠️ Aviso: falha ao ler .env: %v", err)
	}

	cfg := config.LoadSimulatorConfig()
	appLog := logger.NewLogger(cfg.LogLevel)
	defer appLog.Sync()

	if err := newRootCmd(cfg, appLog).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
