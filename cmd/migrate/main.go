package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"gofinanceiro/config"
	"gofinanceiro/internal/pkg/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️ Aviso: arquivo .env não encontrado. Usando apenas as variáveis do ambiente: %v", err)
	}

	var (
		migrationsDir string
		verbose       bool
	)
	flag.StringVar(&migrationsDir, "dir", "./sql", "diretório com os arquivos de migração")
	flag.BoolVar(&verbose, "v", false, "exibe o log do goose")
	flag.Parse()

	cfg := config.LoadConfig()

	db, err := database.NewPostgresDB(cfg.DatabaseURL, database.DefaultPoolConfig())
	if err != nil {
		log.Fatalf("goose: falha ao conectar ao DB: %v\n", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Fatalf("goose: falha ao fechar o DB: %v\n", err)
		}
	}()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("goose: %v", err)
	}
	if !verbose {
		goose.SetLogger(goose.NopLogger())
	}

	arguments := flag.Args()
	if len(arguments) == 0 {
		arguments = []string{"up"} // padrão: aplica todas as migrações pendentes
	}

	command := arguments[0]
	var args []string
	if len(arguments) > 1 {
		args = arguments[1:]
	}

	if err := goose.Run(command, db, migrationsDir, args...); err != nil {
		log.Fatalf("goose %v: %v", command, err)
	}

	fmt.Printf("goose %s: sucesso\n", command)
}
