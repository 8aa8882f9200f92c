// Package skillcheck implements the timing minigame that gates whether a
// resolved catch is actually obtained. A marker sweeps a fixed track; the
// player must confirm while the marker is inside the target window.
package skillcheck

//go:generate mockgen -destination=mock/mock.go -package=skillcheckmock github.com/castaway-games/angler/internal/orchestrators/skillcheck Service,Poller

import (
	"context"
	"time"

	"github.com/castaway-games/angler/internal/errors"
	"github.com/castaway-games/angler/internal/pkg/dice"
)

const (
	// TrackLength is the number of discrete marker positions
	TrackLength = 26

	// minTargetOffset keeps the window away from the track start so the
	// player always has lead time
	minTargetOffset = 5

	// escapePct is the chance a correctly timed hit still loses the fish
	escapePct = 20

	// DefaultBossRounds is how many consecutive checks a boss demands
	DefaultBossRounds = 5
)

// Confirm keys: space and enter
var confirmKeys = map[byte]bool{' ': true, '\n': true, '\r': true}

// Result is the terminal outcome of a check. Failure is a value, never
// a panic or an error.
type Result string

// Results
const (
	ResultHit      Result = "hit"
	ResultMiss     Result = "miss"
	ResultEscape   Result = "escape"
	ResultTimedOut Result = "timed_out"
)

// Success reports whether the result lands the catch
func (r Result) Success() bool {
	return r == ResultHit
}

// Poller is the non-blocking keyboard capability, implemented outside
// the engine per platform
type Poller interface {
	// Ready reports whether a key event is available without blocking
	Ready() bool

	// ReadKey consumes one key event. ok is false when none is pending.
	ReadKey() (key byte, ok bool)
}

// Frame is the per-tick render state handed to the observer
type Frame struct {
	Marker      int
	TargetStart int
	TargetEnd   int
	TrackLength int
}

// Observer receives one Frame per tick so the rendering collaborator can
// draw the track. May be nil.
type Observer func(Frame)

// Input configures one check
type Input struct {
	// WindowWidth is the width of the target window in track positions
	WindowWidth int

	// TickInterval is how long the marker rests on each position
	TickInterval time.Duration

	// Observer is the optional per-tick render callback
	Observer Observer
}

// Output is the terminal state of one check
type Output struct {
	Result Result
}

// BossInput configures a consecutive multi-round boss check
type BossInput struct {
	// Rounds to win in a row; zero means DefaultBossRounds
	Rounds int

	// Round configures each individual round
	Round Input

	// OnRound is called before each round starts, with the 1-based
	// round number. May be nil.
	OnRound func(round, total int)
}

// BossOutput reports the boss sequence outcome
type BossOutput struct {
	// Caught is true only if every round was won
	Caught bool

	// RoundsWon counts completed rounds
	RoundsWon int

	// FailedWith is the result that aborted the sequence, empty on success
	FailedWith Result
}

// Service runs timing checks
type Service interface {
	// Run executes one check to a terminal result. It always runs to
	// completion; cancellation is not exposed mid-check.
	Run(ctx context.Context, input *Input) (*Output, error)

	// RunBoss executes consecutive rounds; any failed round aborts the
	// sequence
	RunBoss(ctx context.Context, input *BossInput) (*BossOutput, error)
}

// Config holds the dependencies for the skill check service
type Config struct {
	Poller Poller
	Roller dice.Roller

	// Sleep is injectable for tests; nil means time.Sleep
	Sleep func(time.Duration)
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Poller == nil {
		vb.RequiredField("Poller")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

type service struct {
	poller Poller
	roller dice.Roller
	sleep  func(time.Duration)
}

// New creates a new skill check service with the provided dependencies
func New(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	sleep := cfg.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	return &service{
		poller: cfg.Poller,
		roller: cfg.Roller,
		sleep:  sleep,
	}, nil
}

var _ Service = (*service)(nil)

// Run sweeps the marker across the track once, evaluating the first
// confirm key against the target window
func (s *service) Run(_ context.Context, input *Input) (*Output, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.WindowWidth < 1 || input.WindowWidth > TrackLength-minTargetOffset-1 {
		return nil, errors.OutOfRangef("window width %d does not fit the track", input.WindowWidth)
	}

	targetStart := s.roller.Between(minTargetOffset, TrackLength-input.WindowWidth-1)
	targetEnd := targetStart + input.WindowWidth - 1

	for marker := 0; marker < TrackLength; marker++ {
		if input.Observer != nil {
			input.Observer(Frame{
				Marker:      marker,
				TargetStart: targetStart,
				TargetEnd:   targetEnd,
				TrackLength: TrackLength,
			})
		}

		s.sleep(input.TickInterval)

		if !s.pollConfirm() {
			continue
		}

		// One position of tolerance absorbs input latency: the confirm
		// counts at the marker's current or immediately prior position.
		if inWindow(marker, targetStart, targetEnd) || inWindow(marker-1, targetStart, targetEnd) {
			if s.roller.Percent() <= escapePct {
				return &Output{Result: ResultEscape}, nil
			}
			return &Output{Result: ResultHit}, nil
		}
		return &Output{Result: ResultMiss}, nil
	}

	return &Output{Result: ResultTimedOut}, nil
}

// RunBoss demands consecutive wins; the first failure aborts
func (s *service) RunBoss(ctx context.Context, input *BossInput) (*BossOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	rounds := input.Rounds
	if rounds == 0 {
		rounds = DefaultBossRounds
	}
	if rounds < 0 {
		return nil, errors.OutOfRangef("rounds must be positive, got %d", rounds)
	}

	out := &BossOutput{}
	for round := 1; round <= rounds; round++ {
		if input.OnRound != nil {
			input.OnRound(round, rounds)
		}

		roundOut, err := s.Run(ctx, &input.Round)
		if err != nil {
			return nil, err
		}
		if !roundOut.Result.Success() {
			out.FailedWith = roundOut.Result
			return out, nil
		}
		out.RoundsWon++
	}

	out.Caught = true
	return out, nil
}

// pollConfirm drains the poller, reporting whether a confirm key was
// seen this tick. Non-confirm keys are discarded.
func (s *service) pollConfirm() bool {
	for s.poller.Ready() {
		key, ok := s.poller.ReadKey()
		if !ok {
			return false
		}
		if confirmKeys[key] {
			return true
		}
	}
	return false
}

func inWindow(pos, start, end int) bool {
	return pos >= start && pos <= end
}
