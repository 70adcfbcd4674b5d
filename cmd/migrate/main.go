package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"gocrane/internal/pkg/database"
	"gocrane/internal/pkg/logger"
)

// gooseLogger encaminha as mensagens do goose para o logger da aplicação.
type gooseLogger struct {
	log logger.Logger
}

func (g gooseLogger) Fatalf(format string, v ...interface{}) {
	log.Fatalf(format, v...)
}

func (g gooseLogger) Printf(format string, v ...interface{}) {
	g.log.Info("goose", map[string]interface{}{"msg": fmt.Sprintf(format, v...)})
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Aviso: Arquivo .env não encontrado. Carregando configs apenas do ambiente do sistema.")
	}

	var migrationsDir, logLevel string
	flag.StringVar(&migrationsDir, "dir", "./sql", "diretório com os arquivos de migração")
	flag.StringVar(&logLevel, "log-level", "info", "nível de log (debug, info, warn, error)")
	flag.Parse()

	appLog := logger.NewLogger(logLevel)
	defer appLog.Sync()

	dsn, ok := os.LookupEnv("DATABASE_URL")
	if !ok {
		log.Fatal("❌ Erro de Configuração: A variável de ambiente DATABASE_URL deve ser definida.")
	}

	db, err := database.NewPostgresDB(dsn, database.DefaultTimeout, database.DefaultPool)
	if err != nil {
		appLog.Fatal("goose: falha ao conectar ao banco.", err)
	}
	defer db.Close()

	goose.SetLogger(gooseLogger{log: appLog})
	if err := goose.SetDialect("postgres"); err != nil {
		appLog.Fatal("goose: dialeto não suportado.", err)
	}

	arguments := flag.Args()
	if len(arguments) == 0 {
		arguments = []string{"up"}
	}
	command, args := arguments[0], arguments[1:]

	if err := goose.Run(command, db, migrationsDir, args...); err != nil {
		appLog.Fatal("goose "+command+" falhou.", err)
	}

	appLog.Info("goose concluído.", map[string]interface{}{"command": command, "dir": migrationsDir})
}
