package main

import (
	"context"
	"log"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/redis/go-redis/v9"

	"github.com/hydroshield/specbuilder-backend/config"
	"github.com/hydroshield/specbuilder-backend/internal/auth"
	"github.com/hydroshield/specbuilder-backend/internal/bootstrap"
	"github.com/hydroshield/specbuilder-backend/internal/jobs"
	"github.com/hydroshield/specbuilder-backend/internal/selection"
	"github.com/hydroshield/specbuilder-backend/internal/storage/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{
		DSN:      postgres.DSN(&cfg.Database),
		MaxConns: cfg.Database.MaxConns,
	})
	if err != nil {
		log.Fatalf("open db pool: %v", err)
	}
	defer pool.Close()

	systemsDB, err := postgres.NewConnection(&cfg.Database)
	if err != nil {
		log.Fatalf("open systems db: %v", err)
	}
	defer systemsDB.Close()

	var store selection.Store = selection.NewPostgresStore(systemsDB)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable, option cache disabled: %v", err)
	} else {
		cache := selection.NewOptionCache(store, rdb)
		store = cache
		jobs.NewScheduler(cache).Start()
	}

	var authClient *fbauth.Client
	if cfg.Firebase.CredentialsPath != "" {
		authClient, err = auth.InitializeFirebase(&cfg.Firebase)
		if err != nil {
			log.Fatalf("firebase: %v", err)
		}
	} else {
		log.Println("No Firebase credentials configured, using dev header auth")
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "specbuilder-backend",
		Version:     cfg.App.Version,
		DB:          pool,
		SystemsDB:   systemsDB,
		Selection:   store,
		AuthClient:  authClient,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
