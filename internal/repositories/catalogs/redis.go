package catalogs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/dronewars/loot-engine/internal/domain/loot"
	looterr "github.com/dronewars/loot-engine/internal/errors"
)

const (
	cardIndexKey  = "catalog:cards"
	droneIndexKey = "catalog:drones"
)

// cardData represents the serialized form of a card in Redis
type cardData struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Rarity      string `json:"rarity"`
	Cost        int    `json:"cost"`
	Description string `json:"description"`
	AIOnly      bool   `json:"ai_only"`
}

// droneData represents the serialized form of a drone in Redis
type droneData struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Class      int    `json:"class"`
	Rarity     string `json:"rarity"`
	Hull       int    `json:"hull"`
	Attack     int    `json:"attack"`
	Selectable bool   `json:"selectable"`
}

// redisRepo implements the Repository interface using Redis.
// Catalog order is preserved with an index list: uniform picks are
// position-sensitive, so the stored order has to be stable.
type redisRepo struct {
	client *redis.Client
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client *redis.Client
}

// NewRedisRepository creates a new Redis-backed catalog repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	return &redisRepo{
		client: cfg.Client,
	}
}

func cardKey(id string) string {
	return fmt.Sprintf("catalog:card:%s", id)
}

func droneKey(id string) string {
	return fmt.Sprintf("catalog:drone:%s", id)
}

// SeedCards replaces the stored card catalog
func (r *redisRepo) SeedCards(ctx context.Context, cards []loot.Card) error {
	pipe := r.client.Pipeline()
	pipe.Del(ctx, cardIndexKey)

	for _, card := range cards {
		data, err := json.Marshal(cardData{
			ID:          card.ID,
			Name:        card.Name,
			Type:        string(card.Type),
			Rarity:      string(card.Rarity),
			Cost:        card.Cost,
			Description: card.Description,
			AIOnly:      card.AIOnly,
		})
		if err != nil {
			return looterr.Wrapf(err, "failed to marshal card '%s'", card.ID)
		}

		pipe.Set(ctx, cardKey(card.ID), string(data), 0)
		pipe.RPush(ctx, cardIndexKey, card.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return looterr.WrapWithCode(err, looterr.CodeUnavailable, "failed to seed card catalog")
	}

	return nil
}

// SeedDrones replaces the stored drone catalog
func (r *redisRepo) SeedDrones(ctx context.Context, drones []loot.Drone) error {
	pipe := r.client.Pipeline()
	pipe.Del(ctx, droneIndexKey)

	for _, drone := range drones {
		data, err := json.Marshal(droneData{
			ID:         drone.ID,
			Name:       drone.Name,
			Class:      drone.Class,
			Rarity:     string(drone.Rarity),
			Hull:       drone.Hull,
			Attack:     drone.Attack,
			Selectable: drone.Selectable,
		})
		if err != nil {
			return looterr.Wrapf(err, "failed to marshal drone '%s'", drone.ID)
		}

		pipe.Set(ctx, droneKey(drone.ID), string(data), 0)
		pipe.RPush(ctx, droneIndexKey, drone.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return looterr.WrapWithCode(err, looterr.CodeUnavailable, "failed to seed drone catalog")
	}

	return nil
}

// ListCards returns the full card catalog in seeded order
func (r *redisRepo) ListCards(ctx context.Context) ([]loot.Card, error) {
	ids, err := r.client.LRange(ctx, cardIndexKey, 0, -1).Result()
	if err != nil {
		return nil, looterr.WrapWithCode(err, looterr.CodeUnavailable, "failed to list card catalog")
	}

	cards := make([]loot.Card, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			card, err := r.getCard(ctx, id)
			if err != nil {
				return err
			}
			cards[i] = *card
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return cards, nil
}

// ListDrones returns the full drone catalog in seeded order
func (r *redisRepo) ListDrones(ctx context.Context) ([]loot.Drone, error) {
	ids, err := r.client.LRange(ctx, droneIndexKey, 0, -1).Result()
	if err != nil {
		return nil, looterr.WrapWithCode(err, looterr.CodeUnavailable, "failed to list drone catalog")
	}

	drones := make([]loot.Drone, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			drone, err := r.getDrone(ctx, id)
			if err != nil {
				return err
			}
			drones[i] = *drone
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return drones, nil
}

func (r *redisRepo) getCard(ctx context.Context, id string) (*loot.Card, error) {
	raw, err := r.client.Get(ctx, cardKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, looterr.NotFoundf("card '%s' not found in catalog", id)
		}
		return nil, looterr.WrapWithCode(err, looterr.CodeUnavailable, "failed to get card from Redis")
	}

	var data cardData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, looterr.Wrapf(err, "failed to unmarshal card '%s'", id)
	}

	return &loot.Card{
		ID:          data.ID,
		Name:        data.Name,
		Type:        loot.CardType(data.Type),
		Rarity:      loot.Rarity(data.Rarity),
		Cost:        data.Cost,
		Description: data.Description,
		AIOnly:      data.AIOnly,
	}, nil
}

func (r *redisRepo) getDrone(ctx context.Context, id string) (*loot.Drone, error) {
	raw, err := r.client.Get(ctx, droneKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, looterr.NotFoundf("drone '%s' not found in catalog", id)
		}
		return nil, looterr.WrapWithCode(err, looterr.CodeUnavailable, "failed to get drone from Redis")
	}

	var data droneData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, looterr.Wrapf(err, "failed to unmarshal drone '%s'", id)
	}

	return &loot.Drone{
		ID:         data.ID,
		Name:       data.Name,
		Class:      data.Class,
		Rarity:     loot.Rarity(data.Rarity),
		Hull:       data.Hull,
		Attack:     data.Attack,
		Selectable: data.Selectable,
	}, nil
}
