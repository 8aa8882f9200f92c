// Package session is the engine surface the menu loop drives. It owns
// the live game state, sequences the other orchestrators, and commits
// state after every mutating action.
package session

//go:generate mockgen -destination=mock/mock.go -package=sessionmock github.com/castaway-games/angler/internal/orchestrators/session Service

import (
	"context"
	"log/slog"

	"github.com/castaway-games/angler/internal/catalog"
	"github.com/castaway-games/angler/internal/entities"
	"github.com/castaway-games/angler/internal/errors"
	"github.com/castaway-games/angler/internal/gametime"
	"github.com/castaway-games/angler/internal/orchestrators/cast"
	"github.com/castaway-games/angler/internal/orchestrators/progression"
	"github.com/castaway-games/angler/internal/orchestrators/quests"
	"github.com/castaway-games/angler/internal/orchestrators/skillcheck"
	"github.com/castaway-games/angler/internal/pkg/dice"
	"github.com/castaway-games/angler/internal/repositories/gamestate"
)

// FishInput carries the rendering callbacks for one cast
type FishInput struct {
	Observer      skillcheck.Observer
	OnBite        func()
	OnBossSighted func(name string)
	OnBossRound   func(round, total int)
}

// FishOutput reports everything one cast changed
type FishOutput struct {
	Cast *cast.Output

	LevelsGained    int
	NewLevel        int
	QuestsCompleted int

	Clock gametime.State
}

// Service is the complete engine surface
type Service interface {
	// Start restores the saved session or begins a fresh one. A save
	// that fails integrity verification is fatal.
	Start(ctx context.Context) error

	// Fish runs one cast in the current zone, banks the outcome, and
	// commits. The game clock advances one hour per cast.
	Fish(ctx context.Context, input *FishInput) (*FishOutput, error)

	// ChooseZone moves the session to an unlocked zone
	ChooseZone(ctx context.Context, zoneID entities.ZoneID) error

	// SellAll sells the entire inventory and commits
	SellAll(ctx context.Context) (*progression.SellOutput, error)

	// Sell sells up to limit entries matching the creature name and
	// commits. A non-positive limit sells every match.
	Sell(ctx context.Context, name string, limit int) (*progression.SellOutput, error)

	// Purchase buys a shop unlock and commits
	Purchase(ctx context.Context, itemName string) (*progression.PurchaseOutput, error)

	// FinishQuest pays out a completed quest, regenerates the slot,
	// and commits
	FinishQuest(ctx context.Context, zoneID entities.ZoneID, index int) (*quests.FinishOutput, error)

	// GrantAdminCredit applies the hidden credit grant and commits
	GrantAdminCredit(ctx context.Context) (float64, error)

	// Save commits the current state explicitly
	Save(ctx context.Context) error

	// State exposes the live session state for display. Callers must
	// not mutate it.
	State() *entities.GameState

	// CurrentZone returns the zone the next cast happens in
	CurrentZone() *entities.Zone

	// UnlockedZones lists reachable zones in catalog order
	UnlockedZones() []*entities.Zone

	// ShopItems lists the purchasable unlocks
	ShopItems() []catalog.ShopItem
}

// Config holds the dependencies for the session service
type Config struct {
	Catalog *catalog.Catalog
	Caster  cast.Service
	Ledger  progression.Service
	Quests  quests.Service
	Repo    gamestate.Repository
	Roller  dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Caster == nil {
		vb.RequiredField("Caster")
	}
	if c.Ledger == nil {
		vb.RequiredField("Ledger")
	}
	if c.Quests == nil {
		vb.RequiredField("Quests")
	}
	if c.Repo == nil {
		vb.RequiredField("Repo")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

type service struct {
	catalog *catalog.Catalog
	caster  cast.Service
	ledger  progression.Service
	quests  quests.Service
	repo    gamestate.Repository
	roller  dice.Roller

	state *entities.GameState
}

// New creates a new session service with the provided dependencies
func New(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &service{
		catalog: cfg.Catalog,
		caster:  cfg.Caster,
		ledger:  cfg.Ledger,
		quests:  cfg.Quests,
		repo:    cfg.Repo,
		roller:  cfg.Roller,
	}, nil
}

var _ Service = (*service)(nil)

// Start restores the saved session or begins a fresh one
func (s *service) Start(ctx context.Context) error {
	out, err := s.repo.Load(ctx, gamestate.LoadInput{})
	switch {
	case err == nil:
		s.state = out.State
		slog.Info("restored saved session",
			"balance", s.state.Balance,
			"level", s.state.Level,
			"day", s.state.Clock.Day)
	case errors.IsNotFound(err):
		s.state = entities.NewGameState()
		slog.Info("starting fresh session")
	default:
		// integrity failures land here and must stop the session
		return errors.Wrap(err, "cannot start session")
	}

	s.quests.Refill(s.state)
	return s.commit(ctx)
}

// Fish runs one cast in the current zone
func (s *service) Fish(ctx context.Context, input *FishInput) (*FishOutput, error) {
	if err := s.started(); err != nil {
		return nil, err
	}
	if input == nil {
		input = &FishInput{}
	}

	zone := s.CurrentZone()
	if zone == nil {
		return nil, errors.Internalf("current zone %q is not in the catalog", s.state.CurrentZone)
	}

	s.state.Clock.Advance(s.roller)

	castOut, err := s.caster.Resolve(ctx, &cast.Input{
		Zone:          zone,
		Clock:         s.state.Clock,
		Observer:      input.Observer,
		OnBite:        input.OnBite,
		OnBossSighted: input.OnBossSighted,
		OnBossRound:   input.OnBossRound,
	})
	if err != nil {
		return nil, err
	}

	out := &FishOutput{Cast: castOut, NewLevel: s.state.Level}
	if castOut.Caught {
		rec := s.ledger.RecordCatch(s.state, &progression.CatchResult{
			Item:   *castOut.Item,
			XP:     castOut.XP,
			Grants: castOut.Grants,
		})
		out.LevelsGained = rec.LevelsGained
		out.NewLevel = rec.NewLevel
		out.QuestsCompleted = s.quests.OnCatch(s.state, zone.ID, castOut.Item.Name, castOut.Item.Rarity)

		slog.Info("catch landed",
			"name", castOut.Item.Name,
			"rarity", castOut.Item.Rarity,
			"weight", castOut.Item.Weight,
			"zone", zone.ID)
	}

	out.Clock = s.state.Clock
	if err := s.commit(ctx); err != nil {
		return nil, err
	}
	return out, nil
}

// ChooseZone moves the session to an unlocked zone
func (s *service) ChooseZone(_ context.Context, zoneID entities.ZoneID) error {
	if err := s.started(); err != nil {
		return err
	}

	zone, ok := s.catalog.Zone(zoneID)
	if !ok {
		return errors.NotFoundf("no zone named %q", zoneID)
	}
	if !zone.Unlocked(s.state.Unlocks) {
		return errors.FailedPreconditionf("%s is locked", zone.Name)
	}

	s.state.CurrentZone = zoneID
	return nil
}

// SellAll sells the entire inventory
func (s *service) SellAll(ctx context.Context) (*progression.SellOutput, error) {
	if err := s.started(); err != nil {
		return nil, err
	}

	out, err := s.ledger.Sell(s.state, &progression.SellInput{})
	if err != nil {
		return nil, err
	}
	if err := s.commit(ctx); err != nil {
		return nil, err
	}
	return out, nil
}

// Sell sells up to limit entries matching the creature name
func (s *service) Sell(ctx context.Context, name string, limit int) (*progression.SellOutput, error) {
	if err := s.started(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errors.InvalidArgument("creature name cannot be empty")
	}

	out, err := s.ledger.Sell(s.state, &progression.SellInput{
		Match: func(item entities.CaughtItem) bool { return item.Name == name },
		Limit: limit,
	})
	if err != nil {
		return nil, err
	}
	if err := s.commit(ctx); err != nil {
		return nil, err
	}
	return out, nil
}

// Purchase buys a shop unlock
func (s *service) Purchase(ctx context.Context, itemName string) (*progression.PurchaseOutput, error) {
	if err := s.started(); err != nil {
		return nil, err
	}

	out, err := s.ledger.Purchase(s.state, itemName)
	if err != nil {
		return nil, err
	}
	if err := s.commit(ctx); err != nil {
		return nil, err
	}

	slog.Info("purchased unlock", "item", out.Item.Name, "balance", out.Balance)
	return out, nil
}

// FinishQuest pays out a completed quest
func (s *service) FinishQuest(ctx context.Context, zoneID entities.ZoneID, index int) (*quests.FinishOutput, error) {
	if err := s.started(); err != nil {
		return nil, err
	}

	out, err := s.quests.Finish(s.state, zoneID, index)
	if err != nil {
		return nil, err
	}
	if err := s.commit(ctx); err != nil {
		return nil, err
	}
	return out, nil
}

// GrantAdminCredit applies the hidden credit grant
func (s *service) GrantAdminCredit(ctx context.Context) (float64, error) {
	if err := s.started(); err != nil {
		return 0, err
	}

	balance := s.ledger.GrantCredit(s.state)
	if err := s.commit(ctx); err != nil {
		return 0, err
	}
	return balance, nil
}

// Save commits the current state explicitly
func (s *service) Save(ctx context.Context) error {
	if err := s.started(); err != nil {
		return err
	}
	return s.commit(ctx)
}

// State exposes the live session state
func (s *service) State() *entities.GameState {
	return s.state
}

// CurrentZone returns the zone the next cast happens in
func (s *service) CurrentZone() *entities.Zone {
	if s.state == nil {
		return nil
	}
	zone, _ := s.catalog.Zone(s.state.CurrentZone)
	return zone
}

// UnlockedZones lists reachable zones in catalog order
func (s *service) UnlockedZones() []*entities.Zone {
	if s.state == nil {
		return nil
	}
	return s.ledger.UnlockedZones(s.state)
}

// ShopItems lists the purchasable unlocks
func (s *service) ShopItems() []catalog.ShopItem {
	return s.catalog.ShopItems()
}

func (s *service) started() error {
	if s.state == nil {
		return errors.FailedPrecondition("session has not been started")
	}
	return nil
}

func (s *service) commit(ctx context.Context) error {
	if _, err := s.repo.Save(ctx, gamestate.SaveInput{State: s.state}); err != nil {
		return errors.Wrap(err, "failed to commit session state")
	}
	return nil
}
