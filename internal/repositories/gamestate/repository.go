// Package gamestate provides the interface for save-game persistence.
// The saved document carries a digest over its own canonical
// serialization; a load that fails verification is fatal.
package gamestate

//go:generate mockgen -destination=mock/mock_repository.go -package=gamestatemock github.com/castaway-games/angler/internal/repositories/gamestate Repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/castaway-games/angler/internal/entities"
	"github.com/castaway-games/angler/internal/errors"
	"github.com/castaway-games/angler/internal/gametime"
)

// Repository defines the interface for save-game persistence
type Repository interface {
	// Save durably stores the full session state with its digest.
	// Returns errors.Internal for storage failures.
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Load restores the previously saved state.
	// Returns errors.NotFound when no save exists.
	// Returns errors.DataLoss when the digest does not verify.
	// Returns errors.Internal for storage failures.
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)
}

// SaveInput defines the input for saving session state
type SaveInput struct {
	State *entities.GameState
}

// SaveOutput defines the output for saving session state
type SaveOutput struct {
	// Checksum is the digest stored alongside the document
	Checksum string
}

// LoadInput defines the input for loading session state
type LoadInput struct{}

// LoadOutput defines the output for loading session state
type LoadOutput struct {
	State *entities.GameState
}

// Document is the persisted save-game schema. Field order is part of
// the digest contract; do not reorder.
type Document struct {
	Balance   float64               `json:"balance"`
	Inventory []entities.CaughtItem `json:"inventory"`

	entities.Unlocks

	CurrentHour int            `json:"currentHour"`
	CurrentDay  int            `json:"currentDay"`
	Event       gametime.Event `json:"event"`

	Level int `json:"level"`
	XP    int `json:"xp"`

	Discovery entities.Discovery                   `json:"discovery"`
	Quests    map[entities.ZoneID][]entities.Quest `json:"quests"`

	// SavedAt is the wall-clock time of the write, RFC 3339
	SavedAt string `json:"savedAt,omitempty"`

	// Checksum is the hex SHA-256 of the document serialized with this
	// field cleared
	Checksum string `json:"checksum,omitempty"`
}

// ToDocument snapshots session state into the persisted schema
func ToDocument(state *entities.GameState) *Document {
	return &Document{
		Balance:     state.Balance,
		Inventory:   state.Inventory,
		Unlocks:     state.Unlocks,
		CurrentHour: state.Clock.Hour,
		CurrentDay:  state.Clock.Day,
		Event:       state.Clock.Event,
		Level:       state.Level,
		XP:          state.XP,
		Discovery:   state.Discovery,
		Quests:      state.Quests,
	}
}

// FromDocument restores session state, substituting explicit defaults
// for anything a document from an older schema is missing
func FromDocument(doc *Document) *entities.GameState {
	state := &entities.GameState{
		Balance:   doc.Balance,
		Inventory: doc.Inventory,
		Unlocks:   doc.Unlocks,
		Level:     doc.Level,
		XP:        doc.XP,
		Clock: gametime.State{
			Hour:  doc.CurrentHour,
			Day:   doc.CurrentDay,
			Event: doc.Event,
		},
		Discovery:   doc.Discovery,
		Quests:      doc.Quests,
		CurrentZone: entities.ZoneLake,
	}

	if state.Clock.Event == "" {
		state.Clock.Event = gametime.Nothing
	}
	if state.Discovery == nil {
		state.Discovery = make(entities.Discovery)
	}
	if state.Quests == nil {
		state.Quests = make(map[entities.ZoneID][]entities.Quest)
	}
	return state
}

// ComputeChecksum digests the document's canonical serialization with
// the checksum field cleared. encoding/json emits struct fields in
// declaration order and map keys sorted, so the serialization is stable.
func ComputeChecksum(doc *Document) (string, error) {
	clone := *doc
	clone.Checksum = ""

	data, err := json.Marshal(&clone)
	if err != nil {
		return "", errors.Wrap(err, "failed to serialize save document")
	}

	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// verify recomputes the digest and compares it to the stored one
func verify(doc *Document) error {
	want, err := ComputeChecksum(doc)
	if err != nil {
		return err
	}
	if doc.Checksum != want {
		return errors.DataLoss("save file failed integrity verification")
	}
	return nil
}
