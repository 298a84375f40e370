package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/dronewars/loot-engine/internal/config"
	"github.com/dronewars/loot-engine/internal/data"
	"github.com/dronewars/loot-engine/internal/domain/loot"
	"github.com/dronewars/loot-engine/internal/repositories/catalogs"
	"github.com/dronewars/loot-engine/internal/services/reward"
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

	droneID := flag.String("drone", "", "Drone ID to inspect (default: every drone)")
	flag.Parse()

	ctx := context.Background()

	repo, err := openCatalogs(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open catalogs: %v", err)
	}

	drones, err := repo.ListDrones(ctx)
	if err != nil {
		log.Fatalf("Failed to list drones: %v", err)
	}

	printed := 0
	for _, drone := range drones {
		if *droneID != "" && drone.ID != *droneID {
			continue
		}
		printDropInfo(drone, drones)
		printed++
	}

	if printed == 0 {
		log.Fatalf("Drone %q not found in catalog", *droneID)
	}
}

func printDropInfo(drone loot.Drone, drones []loot.Drone) {
	info := reward.DroneDropInfo(drone, drones)

	fmt.Printf("=== %s (%s) ===\n", drone.Name, drone.ID)
	fmt.Printf("Class: %d  Rarity: %s  Pool size: %d\n", drone.Class, drone.Rarity, info.PoolSize)

	if len(info.Sources) == 0 {
		fmt.Println("Never drops")
		fmt.Println()
		return
	}

	for _, source := range info.Sources {
		fmt.Printf("  %-18s tier %d  %6.3f%%\n", source.POI, source.Tier, source.Probability*100)
	}
	fmt.Println()
}

// openCatalogs returns the catalog repository named by CATALOG_SOURCE
func openCatalogs(ctx context.Context, cfg *config.Config) (catalogs.Repository, error) {
	if cfg.Catalog.Source == config.CatalogSourceBuiltin {
		return catalogs.NewInMemorySeeded(data.Cards(), data.Drones()), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return catalogs.NewRedisRepository(&catalogs.RedisRepoConfig{
		Client: client,
	}), nil
}
