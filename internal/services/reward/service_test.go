package reward_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/dronewars/loot-engine/internal/data"
	"github.com/dronewars/loot-engine/internal/domain/loot"
	looterr "github.com/dronewars/loot-engine/internal/errors"
	"github.com/dronewars/loot-engine/internal/repositories/catalogs"
	mockrng "github.com/dronewars/loot-engine/internal/rng/mock"
	"github.com/dronewars/loot-engine/internal/services/reward"
	mockuuid "github.com/dronewars/loot-engine/internal/uuid/mocks"
)

type RewardServiceSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	uuidGen  *mockuuid.MockGenerator
	src      *mockrng.ManualMockSource
	svc      reward.Service
}

func (s *RewardServiceSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.uuidGen = mockuuid.NewMockGenerator(s.mockCtrl)
	s.src = mockrng.NewManualMockSource()

	svc, err := reward.NewService(&reward.ServiceConfig{
		Catalogs:      catalogs.NewInMemorySeeded(data.Cards(), data.Drones()),
		Source:        s.src,
		UUIDGenerator: s.uuidGen,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *RewardServiceSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRewardServiceSuite(t *testing.T) {
	suite.Run(t, new(RewardServiceSuite))
}

func (s *RewardServiceSuite) TestNewService_RequiresCatalogs() {
	_, err := reward.NewService(nil)
	s.Error(err)
	s.True(looterr.IsInvalidArgument(err))

	_, err = reward.NewService(&reward.ServiceConfig{})
	s.Error(err)
	s.True(looterr.IsInvalidArgument(err))
}

func (s *RewardServiceSuite) TestSelectCard() {
	ctx := context.Background()
	s.src.SetValues([]float64{0.0})

	record, err := s.svc.SelectCard(ctx, &reward.CardRequest{
		Type:   loot.CardTypeOrdnance,
		Rarity: loot.RarityRare,
	})

	s.NoError(err)
	s.Require().NotNil(record)
	s.Equal(loot.CardTypeOrdnance, record.Type)
	s.Equal(loot.RarityRare, record.Rarity)
	s.False(loot.IsStarterCard(record.CardID))
}

func (s *RewardServiceSuite) TestSelectCard_NilRequest() {
	_, err := s.svc.SelectCard(context.Background(), nil)
	s.Error(err)
	s.True(looterr.IsInvalidArgument(err))
}

func (s *RewardServiceSuite) TestSelectCard_NothingAvailable() {
	// A catalog holding only starter cards yields nil, not an error.
	repo := catalogs.NewInMemorySeeded([]loot.Card{
		{ID: "CARD_PULSE_LASER", Type: loot.CardTypeOrdnance, Rarity: loot.RarityCommon},
	}, nil)

	svc, err := reward.NewService(&reward.ServiceConfig{
		Catalogs: repo,
		Source:   s.src,
	})
	s.Require().NoError(err)

	s.src.SetValues([]float64{0.0})
	record, err := svc.SelectCard(context.Background(), &reward.CardRequest{
		Type:   loot.CardTypeOrdnance,
		Rarity: loot.RarityCommon,
	})

	s.NoError(err)
	s.Nil(record)
}

func (s *RewardServiceSuite) TestSelectDroneBlueprint() {
	ctx := context.Background()
	s.src.SetValues([]float64{0.0})

	record, err := s.svc.SelectDroneBlueprint(ctx, &reward.BlueprintRequest{
		Class:  2,
		Rarity: loot.RarityRare,
	})

	s.NoError(err)
	s.Require().NotNil(record)
	s.Equal(2, record.Class)
	s.Equal(loot.RarityRare, record.Rarity)
}

func (s *RewardServiceSuite) TestGenerateCardBundle_GuaranteedSlot() {
	ctx := context.Background()
	s.uuidGen.EXPECT().New().Return("bundle-123")

	// Fixed bundle size of 1: only the rarity roll and the pool pick
	// consume randomness.
	s.src.SetValues([]float64{0.0, 0.0})

	bundle, err := s.svc.GenerateCardBundle(ctx, &reward.BundleRequest{
		Tier:            1,
		MinCards:        1,
		MaxCards:        1,
		GuaranteedTypes: []loot.CardType{loot.CardTypeSupport},
	})

	s.NoError(err)
	s.Require().NotNil(bundle)
	s.Equal("bundle-123", bundle.ID)
	s.Require().Len(bundle.Cards, 1)
	s.Equal(loot.CardTypeSupport, bundle.Cards[0].Type)
	s.Equal(loot.RarityCommon, bundle.Cards[0].Rarity)
}

func (s *RewardServiceSuite) TestGenerateCardBundle_SizeBounds() {
	ctx := context.Background()
	s.uuidGen.EXPECT().New().Return("bundle-456").AnyTimes()

	// The builtin catalog always has an eligible card, so the bundle
	// fills every rolled slot.
	svc, err := reward.NewService(&reward.ServiceConfig{
		Catalogs: catalogs.NewInMemorySeeded(data.Cards(), data.Drones()),
		// time-seeded source
		UUIDGenerator: s.uuidGen,
	})
	s.Require().NoError(err)

	for i := 0; i < 50; i++ {
		bundle, err := svc.GenerateCardBundle(ctx, &reward.BundleRequest{
			Tier:         2,
			MinCards:     2,
			MaxCards:     4,
			CountWeights: loot.DefaultCardCountWeights,
		})
		s.Require().NoError(err)
		s.GreaterOrEqual(len(bundle.Cards), 2)
		s.LessOrEqual(len(bundle.Cards), 4)
	}
}

func (s *RewardServiceSuite) TestGenerateCardBundle_InvalidBounds() {
	_, err := s.svc.GenerateCardBundle(context.Background(), &reward.BundleRequest{
		Tier:     1,
		MinCards: 3,
		MaxCards: 2,
	})
	s.Error(err)
	s.True(looterr.IsInvalidArgument(err))
}

func (s *RewardServiceSuite) TestDroneDropInfo() {
	ctx := context.Background()

	info, err := s.svc.DroneDropInfo(ctx, "DRONE_HARRIER")

	s.NoError(err)
	s.Require().NotNil(info)
	s.Equal("DRONE_HARRIER", info.DroneID)
	s.NotEmpty(info.Sources)
	s.Greater(info.PoolSize, 0)
}

func (s *RewardServiceSuite) TestDroneDropInfo_NotFound() {
	_, err := s.svc.DroneDropInfo(context.Background(), "DRONE_MISSING")
	s.Error(err)
	s.True(looterr.IsNotFound(err))
}

func (s *RewardServiceSuite) TestCatalogErrorsPropagate() {
	svc, err := reward.NewService(&reward.ServiceConfig{
		Catalogs: &failingRepo{},
		Source:   s.src,
	})
	s.Require().NoError(err)

	_, err = svc.SelectCard(context.Background(), &reward.CardRequest{})
	s.Error(err)

	_, err = svc.DroneDropInfo(context.Background(), "DRONE_WASP")
	s.Error(err)
}

// failingRepo simulates an unavailable catalog store
type failingRepo struct{}

func (f *failingRepo) ListCards(ctx context.Context) ([]loot.Card, error) {
	return nil, looterr.New(looterr.CodeUnavailable, "catalog store down")
}

func (f *failingRepo) ListDrones(ctx context.Context) ([]loot.Drone, error) {
	return nil, looterr.New(looterr.CodeUnavailable, "catalog store down")
}

func (f *failingRepo) SeedCards(ctx context.Context, cards []loot.Card) error {
	return looterr.New(looterr.CodeUnavailable, "catalog store down")
}

func (f *failingRepo) SeedDrones(ctx context.Context, drones []loot.Drone) error {
	return looterr.New(looterr.CodeUnavailable, "catalog store down")
}
