package domain

// Difficulty labels target puzzle generation.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

// Technique identifies a propagation technique, ordered by the amount of
// lookahead it needs. Hinting is capped at a maximum technique.
type Technique int

const (
	Elimination Technique = iota // remove a solved cell's digit from peers
	OnlyChoice                   // unit has a single place left for a digit
	NakedTwins                   // twin pair prunes the rest of its unit
)

func (t Technique) String() string {
	switch t {
	case Elimination:
		return "elimination"
	case OnlyChoice:
		return "only-choice"
	case NakedTwins:
		return "naked-twins"
	default:
		return "unknown"
	}
}
