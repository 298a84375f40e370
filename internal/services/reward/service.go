package reward

//go:generate mockgen -destination=mock/mock_service.go -package=mockreward -source=service.go

import (
	"context"

	"github.com/dronewars/loot-engine/internal/domain/loot"
	looterr "github.com/dronewars/loot-engine/internal/errors"
	"github.com/dronewars/loot-engine/internal/repositories/catalogs"
	"github.com/dronewars/loot-engine/internal/rng"
	"github.com/dronewars/loot-engine/internal/uuid"
)

// Service defines the reward service interface
type Service interface {
	// SelectCard picks one card from the catalog for the request,
	// or nil when nothing is available
	SelectCard(ctx context.Context, req *CardRequest) (*loot.CardRecord, error)

	// SelectDroneBlueprint picks one drone blueprint for the request,
	// or nil when nothing is available
	SelectDroneBlueprint(ctx context.Context, req *BlueprintRequest) (*loot.BlueprintRecord, error)

	// GenerateCardBundle rolls a full POI card bundle
	GenerateCardBundle(ctx context.Context, req *BundleRequest) (*CardBundle, error)

	// DroneDropInfo computes the drop table for a drone by ID
	DroneDropInfo(ctx context.Context, droneID string) (*DropInfo, error)
}

// CardRequest asks for one card of a desired type and rarity
type CardRequest struct {
	Type            loot.CardType
	Rarity          loot.Rarity
	AllowedRarities []loot.Rarity
}

// BlueprintRequest asks for one drone blueprint of a desired class and rarity
type BlueprintRequest struct {
	Class           int
	Rarity          loot.Rarity
	AllowedRarities []loot.Rarity
}

// BundleRequest asks for a bundle of cards awarded at a POI
type BundleRequest struct {
	Tier            int
	MinCards        int
	MaxCards        int
	CountWeights    []float64       // optional, indexed by (count - MinCards)
	GuaranteedTypes []loot.CardType // slot 0 takes the first entry
	AllowedRarities []loot.Rarity
}

// CardBundle is a generated reward bundle. Slots whose selection came
// up empty are skipped, so Cards may be shorter than the rolled count.
type CardBundle struct {
	ID    string
	Cards []loot.CardRecord
}

type service struct {
	catalogs catalogs.Repository
	src      rng.Source
	uuidGen  uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Catalogs      catalogs.Repository // required
	Source        rng.Source          // optional - defaults to time-seeded
	UUIDGenerator uuid.Generator      // optional
}

// NewService creates a new reward service
func NewService(cfg *ServiceConfig) (Service, error) {
	if cfg == nil || cfg.Catalogs == nil {
		return nil, looterr.InvalidArgument("catalog repository is required")
	}

	svc := &service{
		catalogs: cfg.Catalogs,
		src:      cfg.Source,
		uuidGen:  cfg.UUIDGenerator,
	}

	if svc.src == nil {
		svc.src = rng.NewTimeSeeded()
	}
	if svc.uuidGen == nil {
		svc.uuidGen = uuid.NewGoogleUUIDGenerator()
	}

	return svc, nil
}

// SelectCard picks one card from the stored catalog
func (s *service) SelectCard(ctx context.Context, req *CardRequest) (*loot.CardRecord, error) {
	if req == nil {
		return nil, looterr.InvalidArgument("card request is required")
	}

	cards, err := s.catalogs.ListCards(ctx)
	if err != nil {
		return nil, looterr.Wrap(err, "failed to load card catalog")
	}

	return SelectCard(cards, req.Type, req.Rarity, req.AllowedRarities, s.src), nil
}

// SelectDroneBlueprint picks one drone blueprint from the stored catalog
func (s *service) SelectDroneBlueprint(ctx context.Context, req *BlueprintRequest) (*loot.BlueprintRecord, error) {
	if req == nil {
		return nil, looterr.InvalidArgument("blueprint request is required")
	}

	drones, err := s.catalogs.ListDrones(ctx)
	if err != nil {
		return nil, looterr.Wrap(err, "failed to load drone catalog")
	}

	return SelectDroneBlueprint(drones, req.Class, req.Rarity, req.AllowedRarities, s.src), nil
}

// GenerateCardBundle rolls the bundle size, then fills each slot with
// a type roll, a rarity roll for the POI tier, and a card selection.
func (s *service) GenerateCardBundle(ctx context.Context, req *BundleRequest) (*CardBundle, error) {
	if req == nil {
		return nil, looterr.InvalidArgument("bundle request is required")
	}
	if req.MinCards < 0 || req.MaxCards < req.MinCards {
		return nil, looterr.InvalidArgumentf("invalid bundle size bounds [%d, %d]", req.MinCards, req.MaxCards)
	}

	cards, err := s.catalogs.ListCards(ctx)
	if err != nil {
		return nil, looterr.Wrap(err, "failed to load card catalog")
	}

	bundle := &CardBundle{
		ID: s.uuidGen.New(),
	}

	count := RollCardCount(req.MinCards, req.MaxCards, req.CountWeights, s.src)
	for slot := 0; slot < count; slot++ {
		cardType := RollCardType(slot, req.GuaranteedTypes, s.src)
		rarity := RollRarity(req.Tier, s.src)

		record := SelectCard(cards, cardType, rarity, req.AllowedRarities, s.src)
		if record == nil {
			// Nothing available for this slot, skip it
			continue
		}
		bundle.Cards = append(bundle.Cards, *record)
	}

	return bundle, nil
}

// DroneDropInfo computes the drop table for a drone by ID
func (s *service) DroneDropInfo(ctx context.Context, droneID string) (*DropInfo, error) {
	if droneID == "" {
		return nil, looterr.InvalidArgument("drone ID is required")
	}

	drones, err := s.catalogs.ListDrones(ctx)
	if err != nil {
		return nil, looterr.Wrap(err, "failed to load drone catalog")
	}

	for _, drone := range drones {
		if drone.ID == droneID {
			info := DroneDropInfo(drone, drones)
			return &info, nil
		}
	}

	return nil, looterr.NotFoundf("drone '%s' not found in catalog", droneID).
		WithMeta("drone_id", droneID)
}
