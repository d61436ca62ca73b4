package core

// Difficulty selects spawn density gates; immutable once a run starts
type Difficulty uint8

const (
	DifficultyEasy Difficulty = iota
	DifficultyModerate
	DifficultyHard
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyModerate:
		return "moderate"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

// ParseDifficulty maps a config string to a Difficulty, defaulting to moderate
func ParseDifficulty(s string) Difficulty {
	switch s {
	case "easy":
		return DifficultyEasy
	case "hard":
		return DifficultyHard
	default:
		return DifficultyModerate
	}
}
