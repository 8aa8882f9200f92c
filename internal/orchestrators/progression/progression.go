// Package progression owns the player ledger: balance, inventory,
// experience curve, unlock flags, and the discovery log.
package progression

//go:generate mockgen -destination=mock/mock.go -package=progressionmock github.com/castaway-games/angler/internal/orchestrators/progression Service

import (
	"github.com/castaway-games/angler/internal/catalog"
	"github.com/castaway-games/angler/internal/entities"
	"github.com/castaway-games/angler/internal/errors"
)

// adminCreditAmount is the hidden credit grant
const adminCreditAmount = 10_000_000

// XPForLevel returns the experience required to clear the given level
func XPForLevel(level int) int {
	return 100 + level*100
}

// CatchResult is what a resolved cast hands the ledger
type CatchResult struct {
	Item   entities.CaughtItem
	XP     int
	Grants []entities.UnlockItem
}

// RecordOutput reports what recording a catch changed
type RecordOutput struct {
	// LevelsGained counts level-ups triggered by the catch's experience
	LevelsGained int
	NewLevel     int
}

// SellInput selects inventory entries to sell
type SellInput struct {
	// Match selects sellable entries. Nil matches everything.
	Match func(entities.CaughtItem) bool

	// Limit caps how many entries are sold. Zero or negative means
	// unbounded.
	Limit int
}

// SellOutput reports a completed sale
type SellOutput struct {
	Sold   int
	Credit float64
}

// PurchaseOutput reports a completed shop purchase
type PurchaseOutput struct {
	Item    catalog.ShopItem
	Balance float64
}

// Service is the progression ledger
type Service interface {
	// AddExperience accrues experience and applies level-ups, returning
	// how many levels were gained
	AddExperience(state *entities.GameState, amount int) int

	// RecordCatch banks a resolved catch: inventory, discovery log,
	// unlock grants, experience
	RecordCatch(state *entities.GameState, result *CatchResult) *RecordOutput

	// Sell removes matching inventory entries and credits the balance
	Sell(state *entities.GameState, input *SellInput) (*SellOutput, error)

	// Purchase buys a shop unlock by name
	Purchase(state *entities.GameState, itemName string) (*PurchaseOutput, error)

	// GrantCredit applies the hidden admin credit
	GrantCredit(state *entities.GameState) float64

	// UnlockedZones lists the zones reachable with the current unlocks,
	// in catalog order. The Lake is always included.
	UnlockedZones(state *entities.GameState) []*entities.Zone
}

// Config holds the dependencies for the progression service
type Config struct {
	Catalog *catalog.Catalog
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}

	return vb.Build()
}

type service struct {
	catalog *catalog.Catalog
}

// New creates a new progression service with the provided dependencies
func New(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &service{catalog: cfg.Catalog}, nil
}

var _ Service = (*service)(nil)

// AddExperience accrues experience, then levels up while the pool covers
// the requirement. At the level cap experience is zeroed and further
// gains are discarded.
func (s *service) AddExperience(state *entities.GameState, amount int) int {
	if state.Level >= entities.MaxLevel {
		state.XP = 0
		return 0
	}

	state.XP += amount

	gained := 0
	for state.Level < entities.MaxLevel && state.XP >= XPForLevel(state.Level) {
		state.XP -= XPForLevel(state.Level)
		state.Level++
		gained++
	}
	if state.Level >= entities.MaxLevel {
		state.XP = 0
	}
	return gained
}

// RecordCatch banks one catch into the ledger
func (s *service) RecordCatch(state *entities.GameState, result *CatchResult) *RecordOutput {
	item := result.Item
	state.Inventory = append(state.Inventory, item)
	state.Discovery.Record(item.Zone, item.Name, item.Weight, item.Value())

	for _, grant := range result.Grants {
		state.Unlocks.Grant(grant)
	}

	gained := s.AddExperience(state, result.XP)
	return &RecordOutput{LevelsGained: gained, NewLevel: state.Level}
}

// Sell removes up to Limit matching entries front-to-back and credits
// their summed value, rounded once at the end
func (s *service) Sell(state *entities.GameState, input *SellInput) (*SellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	match := input.Match
	if match == nil {
		match = func(entities.CaughtItem) bool { return true }
	}

	out := &SellOutput{}
	total := 0.0
	kept := state.Inventory[:0]
	for _, item := range state.Inventory {
		if (input.Limit <= 0 || out.Sold < input.Limit) && match(item) {
			total += item.Weight * item.Price
			out.Sold++
			continue
		}
		kept = append(kept, item)
	}
	state.Inventory = kept

	out.Credit = entities.RoundMoney(total)
	state.Balance = entities.RoundMoney(state.Balance + out.Credit)
	return out, nil
}

// Purchase buys a shop unlock, checking ownership, prerequisites, and
// balance before mutating anything
func (s *service) Purchase(state *entities.GameState, itemName string) (*PurchaseOutput, error) {
	var item *catalog.ShopItem
	items := s.catalog.ShopItems()
	for i := range items {
		if items[i].Name == itemName {
			item = &items[i]
			break
		}
	}
	if item == nil {
		return nil, errors.NotFoundf("no shop item named %q", itemName)
	}

	if state.Unlocks.Has(item.Item) {
		return nil, errors.FailedPreconditionf("%s is already owned", item.Name)
	}
	for _, req := range item.Requires {
		if !state.Unlocks.Has(req) {
			return nil, errors.FailedPreconditionf("%s requires %s", item.Name, req)
		}
	}
	if state.Balance < item.Price {
		return nil, errors.FailedPreconditionf("insufficient balance for %s: need %.2f, have %.2f",
			item.Name, item.Price, state.Balance)
	}

	state.Balance = entities.RoundMoney(state.Balance - item.Price)
	state.Unlocks.Grant(item.Item)

	return &PurchaseOutput{Item: *item, Balance: state.Balance}, nil
}

// GrantCredit applies the hidden admin credit and returns the new balance
func (s *service) GrantCredit(state *entities.GameState) float64 {
	state.Balance = entities.RoundMoney(state.Balance + adminCreditAmount)
	return state.Balance
}

// UnlockedZones lists reachable zones in catalog order
func (s *service) UnlockedZones(state *entities.GameState) []*entities.Zone {
	var zones []*entities.Zone
	for _, zone := range s.catalog.Zones() {
		if zone.Unlocked(state.Unlocks) {
			zones = append(zones, zone)
		}
	}
	return zones
}
