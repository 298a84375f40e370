package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/dronewars/loot-engine/internal/config"
	"github.com/dronewars/loot-engine/internal/data"
	"github.com/dronewars/loot-engine/internal/repositories/catalogs"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	repo := catalogs.NewRedisRepository(&catalogs.RedisRepoConfig{
		Client: client,
	})

	cards := data.Cards()
	if err := repo.SeedCards(ctx, cards); err != nil {
		log.Fatalf("Failed to seed card catalog: %v", err)
	}
	log.Printf("Seeded %d cards", len(cards))

	drones := data.Drones()
	if err := repo.SeedDrones(ctx, drones); err != nil {
		log.Fatalf("Failed to seed drone catalog: %v", err)
	}
	log.Printf("Seeded %d drones", len(drones))
}
