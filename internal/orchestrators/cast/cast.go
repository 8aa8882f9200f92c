// Package cast resolves what a single cast of the line produces: the
// bite wait, the rare boss gate, the eligibility-filtered weighted draw,
// the skill check, and the synthesized catch.
package cast

//go:generate mockgen -destination=mock/mock.go -package=castmock github.com/castaway-games/angler/internal/orchestrators/cast Service

import (
	"context"
	"time"

	"github.com/castaway-games/angler/internal/catalog"
	"github.com/castaway-games/angler/internal/entities"
	"github.com/castaway-games/angler/internal/errors"
	"github.com/castaway-games/angler/internal/gametime"
	"github.com/castaway-games/angler/internal/orchestrators/skillcheck"
	"github.com/castaway-games/angler/internal/pkg/dice"
	"github.com/castaway-games/angler/internal/pkg/idgen"
)

const (
	// bossGatePct is the chance per cast that a zone's boss takes the
	// bait instead of a normal draw
	bossGatePct = 1

	// bitePct is the chance of a bite at each wait step
	bitePct = 60

	biteWaitStart = 2 * time.Second
	biteWaitStep  = 1 * time.Second
	biteWaitCap   = 6 * time.Second

	// baseTickInterval is the marker sweep interval before the zone's
	// speed divisor is applied
	baseTickInterval = 100 * time.Millisecond
	minTickInterval  = 10 * time.Millisecond

	// Full-moon exotics ignore the zone's normal check difficulty
	exoticWindowWidth  = 2
	exoticWeightLow    = 1000
	exoticWeightHigh   = 100000
	exoticTickInterval = minTickInterval

	// moonlitKeyOneIn is the odds denominator for the floating key
	// drop on night catches
	moonlitKeyOneIn = 200
)

// Input describes one cast
type Input struct {
	Zone  *entities.Zone
	Clock gametime.State

	// Observer receives skill check frames for rendering. May be nil.
	Observer skillcheck.Observer

	// OnBite is called when the wait ends and the check begins. May be nil.
	OnBite func()

	// OnBossSighted is called when the boss gate fires, before the boss
	// check runs. May be nil.
	OnBossSighted func(name string)

	// OnBossRound is called before each boss round. May be nil.
	OnBossRound func(round, total int)
}

// Output is the outcome of one cast
type Output struct {
	// Caught is true when the skill check landed the creature
	Caught bool

	// Result is the terminal skill check result
	Result skillcheck.Result

	// Item is the inventory entry for the catch. Nil unless Caught.
	Item *entities.CaughtItem

	// XP earned by the catch. Zero unless Caught.
	XP int

	// Grants lists unlock flags the catch confers: key items from the
	// catalog entry plus the floating night drop.
	Grants []entities.UnlockItem

	// Boss is true when the boss gate fired, whatever the outcome
	Boss bool

	// Name identifies what bit, caught or not
	Name string
}

// Service resolves casts
type Service interface {
	// Resolve runs one full cast: bite wait, boss gate, draw, skill
	// check, catch synthesis
	Resolve(ctx context.Context, input *Input) (*Output, error)
}

// Config holds the dependencies for the cast service
type Config struct {
	Catalog *catalog.Catalog
	Checker skillcheck.Service
	Roller  dice.Roller
	IDGen   idgen.Generator

	// Sleep is injectable for tests; nil means time.Sleep
	Sleep func(time.Duration)
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Checker == nil {
		vb.RequiredField("Checker")
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
	checker skillcheck.Service
	roller  dice.Roller
	idGen   idgen.Generator
	sleep   func(time.Duration)
}

// New creates a new cast service with the provided dependencies
func New(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	sleep := cfg.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	return &service{
		catalog: cfg.Catalog,
		checker: cfg.Checker,
		roller:  cfg.Roller,
		idGen:   cfg.IDGen,
		sleep:   sleep,
	}, nil
}

var _ Service = (*service)(nil)

// Resolve runs one full cast to completion
func (s *service) Resolve(ctx context.Context, input *Input) (*Output, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.Zone == nil {
		return nil, errors.InvalidArgument("zone cannot be nil")
	}
	if len(input.Zone.Creatures) == 0 {
		return nil, errors.FailedPreconditionf("zone %s has an empty roster", input.Zone.ID)
	}

	s.waitForBite()
	if input.OnBite != nil {
		input.OnBite()
	}

	if input.Zone.Boss != nil && s.roller.Percent() <= bossGatePct {
		return s.resolveBoss(ctx, input)
	}

	if input.Zone.ID == entities.ZoneBathyal && input.Clock.Event == gametime.FullMoon {
		return s.resolveExotic(ctx, input)
	}

	return s.resolveNormal(ctx, input)
}

// waitForBite blocks until a bite lands. The delay grows one second per
// missed roll until it caps; a bite always arrives eventually.
func (s *service) waitForBite() {
	delay := biteWaitStart
	for {
		s.sleep(delay)
		if s.roller.Percent() <= bitePct {
			return
		}
		if delay < biteWaitCap {
			delay += biteWaitStep
		}
	}
}

// resolveBoss runs the consecutive boss check. Failure ends the cast
// with nothing; the boss does not fall back to a normal draw.
func (s *service) resolveBoss(ctx context.Context, input *Input) (*Output, error) {
	boss := input.Zone.Boss
	if input.OnBossSighted != nil {
		input.OnBossSighted(boss.Name)
	}

	bossOut, err := s.checker.RunBoss(ctx, &skillcheck.BossInput{
		Round: skillcheck.Input{
			WindowWidth:  input.Zone.CatchWindow,
			TickInterval: tickInterval(input.Zone),
			Observer:     input.Observer,
		},
		OnRound: input.OnBossRound,
	})
	if err != nil {
		return nil, errors.Wrap(err, "boss check failed")
	}

	out := &Output{Boss: true, Name: boss.Name}
	if !bossOut.Caught {
		out.Result = bossOut.FailedWith
		return out, nil
	}

	out.Caught = true
	out.Result = skillcheck.ResultHit
	out.Item = s.synthesize(boss, input.Zone, entities.RarityBoss)
	out.XP = boss.XP
	return out, nil
}

// resolveExotic handles the full-moon override for the deep-water zone:
// a uniform draw from the exotic pool with its own weight range and a
// deliberately punishing check.
func (s *service) resolveExotic(ctx context.Context, input *Input) (*Output, error) {
	pool := s.catalog.ExoticPool()
	if len(pool) == 0 {
		return s.resolveNormal(ctx, input)
	}
	creature := pool[s.roller.Index(len(pool))]

	checkOut, err := s.checker.Run(ctx, &skillcheck.Input{
		WindowWidth:  exoticWindowWidth,
		TickInterval: exoticTickInterval,
		Observer:     input.Observer,
	})
	if err != nil {
		return nil, errors.Wrap(err, "skill check failed")
	}

	out := &Output{Result: checkOut.Result, Name: creature.Name}
	if !checkOut.Result.Success() {
		return out, nil
	}

	weight := entities.RoundWeight(float64(s.roller.Between(exoticWeightLow, exoticWeightHigh)))
	out.Caught = true
	out.Item = &entities.CaughtItem{
		ID:     s.idGen.Generate(),
		Name:   creature.Name,
		Rarity: creature.Rarity,
		Price:  s.priceFor(&creature, input.Zone),
		Weight: weight,
		Zone:   input.Zone.ID,
	}
	out.XP = creature.XP
	out.Grants = s.grantsFor(&creature, input.Clock)
	return out, nil
}

// resolveNormal filters the roster, draws by rarity weight, and runs
// the zone's skill check
func (s *service) resolveNormal(ctx context.Context, input *Input) (*Output, error) {
	creature := s.draw(input.Zone, input.Clock)

	checkOut, err := s.checker.Run(ctx, &skillcheck.Input{
		WindowWidth:  input.Zone.CatchWindow,
		TickInterval: tickInterval(input.Zone),
		Observer:     input.Observer,
	})
	if err != nil {
		return nil, errors.Wrap(err, "skill check failed")
	}

	out := &Output{Result: checkOut.Result, Name: creature.Name}
	if !checkOut.Result.Success() {
		return out, nil
	}

	out.Caught = true
	out.Item = s.synthesize(creature, input.Zone, creature.Rarity)
	out.XP = creature.XP
	if out.XP == 0 {
		out.XP = catalog.XPForRarity(creature.Rarity)
	}
	out.Grants = s.grantsFor(creature, input.Clock)
	return out, nil
}

// draw picks one creature from the zone roster. Time and season gating
// never empties the pool: an empty filter result falls back to the
// unfiltered roster.
func (s *service) draw(zone *entities.Zone, clock gametime.State) *entities.CreatureDef {
	tod := clock.TimeOfDay()
	season := clock.Season()

	var eligible []*entities.CreatureDef
	for i := range zone.Creatures {
		c := &zone.Creatures[i]
		if c.Rarity == entities.RarityBoss {
			continue
		}
		if c.BitesAt(tod) && c.InSeason(season) {
			eligible = append(eligible, c)
		}
	}
	if len(eligible) == 0 {
		for i := range zone.Creatures {
			eligible = append(eligible, &zone.Creatures[i])
		}
	}

	total := 0
	for _, c := range eligible {
		total += catalog.DrawWeight(c.Rarity)
	}
	if total == 0 {
		return eligible[s.roller.Index(len(eligible))]
	}

	pick := s.roller.IntN(total)
	for _, c := range eligible {
		w := catalog.DrawWeight(c.Rarity)
		if pick < w {
			return c
		}
		pick -= w
	}
	return eligible[len(eligible)-1]
}

// synthesize builds the inventory entry for a landed catch
func (s *service) synthesize(creature *entities.CreatureDef, zone *entities.Zone, rarity entities.Rarity) *entities.CaughtItem {
	wr := creature.Weights
	if wr == nil {
		fallback := catalog.FallbackWeightRange(rarity)
		wr = &fallback
	}

	return &entities.CaughtItem{
		ID:     s.idGen.Generate(),
		Name:   creature.Name,
		Rarity: rarity,
		Price:  s.priceFor(creature, zone),
		Weight: entities.RoundWeight(s.roller.FloatBetween(wr.Low, wr.High)),
		Zone:   zone.ID,
	}
}

// priceFor resolves the per-kilogram sale price under the zone's
// pricing mode
func (s *service) priceFor(creature *entities.CreatureDef, zone *entities.Zone) float64 {
	switch zone.Pricing {
	case entities.PricingMultiplier:
		return entities.RoundMoney(creature.Price * catalog.PriceMultiplier(creature.Rarity))
	default:
		return creature.Price
	}
}

// grantsFor collects the unlock flags a catch confers
func (s *service) grantsFor(creature *entities.CreatureDef, clock gametime.State) []entities.UnlockItem {
	var grants []entities.UnlockItem
	if creature.Grants != "" {
		grants = append(grants, creature.Grants)
	}
	if clock.TimeOfDay() == gametime.Night && s.roller.IntN(moonlitKeyOneIn) == 0 {
		grants = append(grants, entities.UnlockMoonlitKey)
	}
	return grants
}

// tickInterval derives the marker sweep interval from the zone's speed
// divisor, floored so the check stays playable
func tickInterval(zone *entities.Zone) time.Duration {
	divisor := zone.SpeedDivisor
	if divisor < 1 {
		divisor = 1
	}
	interval := baseTickInterval / time.Duration(divisor)
	if interval < minTickInterval {
		interval = minTickInterval
	}
	return interval
}
