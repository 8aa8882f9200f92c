package entities

// QuestKind selects how a quest matches catches
type QuestKind string

// Quest kinds
const (
	// QuestExactCreature targets one catalog creature by name
	QuestExactCreature QuestKind = "exact_creature"

	// QuestRarityClass targets any creature of one rarity in the zone
	QuestRarityClass QuestKind = "rarity_class"
)

// Quest is one quest slot. Progress never exceeds Amount; a quest with
// Progress >= Amount is eligible for payout.
type Quest struct {
	ID           string    `json:"id"`
	Zone         ZoneID    `json:"zone"`
	Kind         QuestKind `json:"kind"`
	TargetName   string    `json:"targetFish,omitempty"`
	TargetRarity Rarity    `json:"rarity,omitempty"`
	Amount       int       `json:"amount"`
	Progress     int       `json:"progress"`
	Reward       float64   `json:"reward"`
}

// Matches reports whether a catch in the quest's zone counts toward it
func (q *Quest) Matches(name string, rarity Rarity) bool {
	switch q.Kind {
	case QuestExactCreature:
		return q.TargetName == name
	case QuestRarityClass:
		return q.TargetRarity == rarity
	default:
		return false
	}
}

// Completed reports whether the quest is eligible for payout
func (q *Quest) Completed() bool {
	return q.Progress >= q.Amount
}
