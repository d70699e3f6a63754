package main

import (
	"context"
	"log"
	"time"

	"github.com/raflyryhnsyh/ApotekQu-sub001/auth"
	"github.com/raflyryhnsyh/ApotekQu-sub001/config"
	"github.com/raflyryhnsyh/ApotekQu-sub001/events"
	"github.com/raflyryhnsyh/ApotekQu-sub001/routes"
	"github.com/raflyryhnsyh/ApotekQu-sub001/service"
)

func main() {
	cfg := config.Load()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("❌ Gagal konek database: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		log.Fatalf("❌ Gagal migrasi database: %v", err)
	}
	if cfg.SeedDev {
		if err := config.SeedDev(db); err != nil {
			log.Fatalf("❌ Gagal seed data: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	rdb, err := config.ConnectRedis(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	publisher, err := events.New(cfg.KafkaBrokers)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	defer publisher.Close()

	store := service.NewStore(db)

	provider, err := auth.NewPasswordProvider(store, auth.NewRedisSessionStore(rdb), cfg.JWTSecret, cfg.AccessTokenTTL)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	r := routes.NewRouter(routes.Deps{
		Provider:       provider,
		Profiles:       store,
		Suppliers:      store,
		PenyediaProduk: store,
		Orders:         store,
		BarangDiterima: store,
		Katalog:        store,
		Events:         publisher,
		AllowOrigins:   cfg.AllowOrigins,
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Server berhenti: %v", err)
	}
}
