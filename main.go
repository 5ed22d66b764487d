package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/DadoBotGaming/voluntary-association/internal/config"
	"github.com/DadoBotGaming/voluntary-association/internal/database"
	"github.com/DadoBotGaming/voluntary-association/internal/router"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; the deployment may inject env vars directly
	if err := godotenv.Load(); err == nil {
		log.Printf("loaded .env file")
	}

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if err := ensureDir(filepath.Dir(cfg.Database.Path)); err != nil {
		log.Fatalf("create data dir: %v", err)
	}

	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	r := router.SetupRouter(cfg, db)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}

func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
