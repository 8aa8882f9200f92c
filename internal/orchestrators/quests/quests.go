// Package quests manages the per-zone quest pools: generation, catch
// progress, and payout.
package quests

//go:generate mockgen -destination=mock/mock.go -package=questsmock github.com/castaway-games/angler/internal/orchestrators/quests Service

import (
	"github.com/castaway-games/angler/internal/catalog"
	"github.com/castaway-games/angler/internal/entities"
	"github.com/castaway-games/angler/internal/errors"
	"github.com/castaway-games/angler/internal/pkg/dice"
	"github.com/castaway-games/angler/internal/pkg/idgen"
)

// PoolSize is the fixed number of quest slots per zone
const PoolSize = 10

// amount caps per target rarity; rarer targets stay achievable
const (
	maxAmountExact     = 10
	maxAmountRarity    = 5
	maxAmountLegendary = 5
	maxAmountMythical  = 3
)

// FinishOutput reports a quest payout
type FinishOutput struct {
	Quest  entities.Quest
	Reward float64
}

// Service manages quest pools
type Service interface {
	// Refill tops every unlocked zone's pool up to capacity. Existing
	// quests are preserved; only empty slots are generated.
	Refill(state *entities.GameState)

	// OnCatch bumps every matching quest in the catch's zone, clamped
	// at each quest's requirement. Returns the number of quests that
	// reached completion on this catch.
	OnCatch(state *entities.GameState, zone entities.ZoneID, name string, rarity entities.Rarity) int

	// Finish pays out a completed quest and regenerates its slot
	Finish(state *entities.GameState, zone entities.ZoneID, index int) (*FinishOutput, error)
}

// Config holds the dependencies for the quest service
type Config struct {
	Catalog *catalog.Catalog
	Roller  dice.Roller
	IDGen   idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGen == nil {
		vb.RequiredField("IDGen")
	}

	return vb.Build()
}

type service struct {
	catalog *catalog.Catalog
	roller  dice.Roller
	idGen   idgen.Generator
}

// New creates a new quest service with the provided dependencies
func New(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &service{
		catalog: cfg.Catalog,
		roller:  cfg.Roller,
		idGen:   cfg.IDGen,
	}, nil
}

var _ Service = (*service)(nil)

// Refill tops every zone's pool up to capacity
func (s *service) Refill(state *entities.GameState) {
	if state.Quests == nil {
		state.Quests = make(map[entities.ZoneID][]entities.Quest)
	}
	for _, zone := range s.catalog.Zones() {
		pool := state.Quests[zone.ID]
		for len(pool) < PoolSize {
			pool = append(pool, s.generate(zone, state.Level))
		}
		state.Quests[zone.ID] = pool
	}
}

// OnCatch bumps every matching quest in the zone
func (s *service) OnCatch(state *entities.GameState, zone entities.ZoneID, name string, rarity entities.Rarity) int {
	completed := 0
	pool := state.Quests[zone]
	for i := range pool {
		q := &pool[i]
		if !q.Matches(name, rarity) || q.Completed() {
			continue
		}
		q.Progress++
		if q.Progress > q.Amount {
			q.Progress = q.Amount
		}
		if q.Completed() {
			completed++
		}
	}
	return completed
}

// Finish pays out the quest at the given slot and regenerates it
func (s *service) Finish(state *entities.GameState, zoneID entities.ZoneID, index int) (*FinishOutput, error) {
	pool := state.Quests[zoneID]
	if index < 0 || index >= len(pool) {
		return nil, errors.OutOfRangef("quest slot %d does not exist in %s", index, zoneID)
	}

	quest := pool[index]
	if !quest.Completed() {
		return nil, errors.FailedPreconditionf("quest %q needs %d more catches",
			quest.ID, quest.Amount-quest.Progress)
	}

	zone, ok := s.catalog.Zone(zoneID)
	if !ok {
		return nil, errors.NotFoundf("unknown zone %q", zoneID)
	}

	consume(state, quest)
	state.Balance = entities.RoundMoney(state.Balance + quest.Reward)
	pool[index] = s.generate(zone, state.Level)

	return &FinishOutput{Quest: quest, Reward: quest.Reward}, nil
}

// consume removes up to quest.Amount matching catches from the
// inventory. Turning in a quest trades the fish for the reward; they
// yield no sale value of their own.
func consume(state *entities.GameState, quest entities.Quest) {
	removed := 0
	kept := state.Inventory[:0]
	for _, item := range state.Inventory {
		if removed < quest.Amount && item.Zone == quest.Zone && quest.Matches(item.Name, item.Rarity) {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	state.Inventory = kept
}

// generate builds one fresh quest for the zone. Boss and Exotic entries
// never appear as targets, and rarity-class quests only target rarities
// the player's level has reached.
func (s *service) generate(zone *entities.Zone, level int) entities.Quest {
	candidates := questTargets(zone)

	quest := entities.Quest{
		ID:   s.idGen.Generate(),
		Zone: zone.ID,
	}

	// coin flip between the two kinds
	if s.roller.IntN(2) == 0 {
		target := candidates[s.roller.Index(len(candidates))]
		quest.Kind = entities.QuestExactCreature
		quest.TargetName = target.Name
		quest.TargetRarity = target.Rarity
		quest.Amount = s.roller.Between(1, amountCap(target.Rarity, maxAmountExact))
	} else {
		rarities := gateRarities(zoneRarities(candidates), level)
		rarity := rarities[s.roller.Index(len(rarities))]
		quest.Kind = entities.QuestRarityClass
		quest.TargetRarity = rarity
		quest.Amount = s.roller.Between(1, amountCap(rarity, maxAmountRarity))
	}

	quest.Reward = entities.RoundMoney(catalog.QuestRewardBase(quest.TargetRarity) * float64(quest.Amount))
	return quest
}

// questTargets filters a zone roster down to questable entries
func questTargets(zone *entities.Zone) []entities.CreatureDef {
	var out []entities.CreatureDef
	for _, c := range zone.Creatures {
		if c.Rarity == entities.RarityBoss || c.Rarity == entities.RarityExotic {
			continue
		}
		out = append(out, c)
	}
	return out
}

// level thresholds for rarity-class quest targets
var rarityLevelGate = map[entities.Rarity]int{
	entities.RarityRare:      5,
	entities.RarityEpic:      10,
	entities.RarityLegendary: 20,
	entities.RarityMythical:  30,
	entities.RarityExotic:    40,
}

// gateRarities drops rarities the player has not leveled into yet.
// A zone whose whole roster is still out of reach falls back to Common.
func gateRarities(rarities []entities.Rarity, level int) []entities.Rarity {
	var out []entities.Rarity
	for _, r := range rarities {
		if level >= rarityLevelGate[r] {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		out = []entities.Rarity{entities.RarityCommon}
	}
	return out
}

// zoneRarities lists the distinct rarities present, in ascending order
func zoneRarities(creatures []entities.CreatureDef) []entities.Rarity {
	present := make(map[entities.Rarity]bool, len(creatures))
	for _, c := range creatures {
		present[c.Rarity] = true
	}

	var out []entities.Rarity
	for _, r := range entities.Rarities {
		if present[r] {
			out = append(out, r)
		}
	}
	return out
}

// amountCap bounds the required amount for a target rarity
func amountCap(rarity entities.Rarity, kindMax int) int {
	limit := kindMax
	switch rarity {
	case entities.RarityLegendary:
		if limit > maxAmountLegendary {
			limit = maxAmountLegendary
		}
	case entities.RarityMythical:
		if limit > maxAmountMythical {
			limit = maxAmountMythical
		}
	case entities.RarityBoss:
		limit = 1
	}
	return limit
}
