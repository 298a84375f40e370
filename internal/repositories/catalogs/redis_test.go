package catalogs

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/dronewars/loot-engine/internal/domain/loot"
	looterr "github.com/dronewars/loot-engine/internal/errors"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient *redis.Client
	mock       redismock.ClientMock
	repo       Repository
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.repo = NewRedisRepository(&RedisRepoConfig{
		Client: s.mockClient,
	})
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) testCard() loot.Card {
	return loot.Card{
		ID:          "C1",
		Name:        "Rail Slug",
		Type:        loot.CardTypeOrdnance,
		Rarity:      loot.RarityCommon,
		Cost:        2,
		Description: "Deal 3 damage to a drone.",
	}
}

func (s *RedisRepoTestSuite) cardJSON(card loot.Card) string {
	data, err := json.Marshal(cardData{
		ID:          card.ID,
		Name:        card.Name,
		Type:        string(card.Type),
		Rarity:      string(card.Rarity),
		Cost:        card.Cost,
		Description: card.Description,
		AIOnly:      card.AIOnly,
	})
	s.Require().NoError(err)
	return string(data)
}

func (s *RedisRepoTestSuite) TestSeedCards() {
	ctx := context.Background()
	card := s.testCard()

	s.mock.ExpectDel(cardIndexKey).SetVal(1)
	s.mock.ExpectSet("catalog:card:C1", s.cardJSON(card), 0).SetVal("OK")
	s.mock.ExpectRPush(cardIndexKey, "C1").SetVal(1)

	err := s.repo.SeedCards(ctx, []loot.Card{card})
	s.NoError(err)
}

func (s *RedisRepoTestSuite) TestSeedCards_RedisError() {
	ctx := context.Background()
	card := s.testCard()

	s.mock.ExpectDel(cardIndexKey).SetErr(errors.New("redis error"))

	err := s.repo.SeedCards(ctx, []loot.Card{card})
	s.Error(err)
	s.Equal(looterr.CodeUnavailable, looterr.GetCode(err))
}

func (s *RedisRepoTestSuite) TestListCards() {
	ctx := context.Background()
	card := s.testCard()

	s.mock.ExpectLRange(cardIndexKey, 0, -1).SetVal([]string{"C1"})
	s.mock.ExpectGet("catalog:card:C1").SetVal(s.cardJSON(card))

	cards, err := s.repo.ListCards(ctx)
	s.NoError(err)
	s.Require().Len(cards, 1)
	s.Equal(card, cards[0])
}

func (s *RedisRepoTestSuite) TestListCards_PreservesSeededOrder() {
	ctx := context.Background()
	first := s.testCard()
	second := loot.Card{ID: "C2", Name: "Hull Patch", Type: loot.CardTypeSupport, Rarity: loot.RarityCommon, Cost: 1}

	// Fetches run concurrently, so expectation order is relaxed.
	s.mock.MatchExpectationsInOrder(false)
	s.mock.ExpectLRange(cardIndexKey, 0, -1).SetVal([]string{"C1", "C2"})
	s.mock.ExpectGet("catalog:card:C1").SetVal(s.cardJSON(first))
	s.mock.ExpectGet("catalog:card:C2").SetVal(s.cardJSON(second))

	cards, err := s.repo.ListCards(ctx)
	s.NoError(err)
	s.Require().Len(cards, 2)
	s.Equal("C1", cards[0].ID)
	s.Equal("C2", cards[1].ID)
}

func (s *RedisRepoTestSuite) TestListCards_MissingEntry() {
	ctx := context.Background()

	s.mock.ExpectLRange(cardIndexKey, 0, -1).SetVal([]string{"C404"})
	s.mock.ExpectGet("catalog:card:C404").RedisNil()

	_, err := s.repo.ListCards(ctx)
	s.Error(err)
	s.True(looterr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestListCards_EmptyIndex() {
	ctx := context.Background()

	s.mock.ExpectLRange(cardIndexKey, 0, -1).SetVal([]string{})

	cards, err := s.repo.ListCards(ctx)
	s.NoError(err)
	s.Empty(cards)
}

func (s *RedisRepoTestSuite) TestSeedDrones() {
	ctx := context.Background()
	drone := loot.Drone{ID: "D1", Name: "Harrier", Class: 2, Rarity: loot.RarityRare, Hull: 5, Attack: 4, Selectable: true}

	data, err := json.Marshal(droneData{
		ID: "D1", Name: "Harrier", Class: 2, Rarity: "Rare", Hull: 5, Attack: 4, Selectable: true,
	})
	s.Require().NoError(err)

	s.mock.ExpectDel(droneIndexKey).SetVal(1)
	s.mock.ExpectSet("catalog:drone:D1", string(data), 0).SetVal("OK")
	s.mock.ExpectRPush(droneIndexKey, "D1").SetVal(1)

	s.NoError(s.repo.SeedDrones(ctx, []loot.Drone{drone}))
}

func (s *RedisRepoTestSuite) TestListDrones() {
	ctx := context.Background()

	data, err := json.Marshal(droneData{
		ID: "D1", Name: "Harrier", Class: 2, Rarity: "Rare", Hull: 5, Attack: 4, Selectable: true,
	})
	s.Require().NoError(err)

	s.mock.ExpectLRange(droneIndexKey, 0, -1).SetVal([]string{"D1"})
	s.mock.ExpectGet("catalog:drone:D1").SetVal(string(data))

	drones, err := s.repo.ListDrones(ctx)
	s.NoError(err)
	s.Require().Len(drones, 1)
	s.Equal("D1", drones[0].ID)
	s.Equal(loot.RarityRare, drones[0].Rarity)
	s.True(drones[0].Selectable)
}
