package spectate

// Event types sent to spectators.
const (
	EventPosition  = "position"
	EventRemoval   = "removal"
	EventScore     = "score"
	EventCountdown = "countdown"
	EventRoundEnd  = "round_end"
	EventEffect    = "effect"
	EventReset     = "reset"
)

// Event is one JSON message on the spectator feed. Session, id, color and
// result are omitted when they do not apply.
type Event struct {
	Type    string        `json:"type"`
	Session string        `json:"session,omitempty"`
	ID      uint64        `json:"id,omitempty"`
	X       float64       `json:"x"`
	Y       float64       `json:"y"`
	Value   int           `json:"value"`
	Color   string        `json:"color,omitempty"`
	Result  *RoundSummary `json:"result,omitempty"`
}

// RoundSummary is the final result of a round.
type RoundSummary struct {
	Difficulty string  `json:"difficulty"`
	Score      int     `json:"score"`
	Correct    int     `json:"correct"`
	Wrong      int     `json:"wrong"`
	Accuracy   float64 `json:"accuracy"`
	Badge      string  `json:"badge"`
}
