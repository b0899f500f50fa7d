package song

import "beatinfo/internal/jsonnode"

// Difficulty is one playable variant inside a characteristic set.
type Difficulty struct {
	Difficulty              string
	Rank                    int
	Filename                string
	NoteJumpMovementSpeed   float64
	NoteJumpStartBeatOffset float64

	ColorLeft     Color
	ColorRight    Color
	EnvColorLeft  Color
	EnvColorRight Color
	ObstacleColor Color

	// CustomData is an opaque object subtree. Nil means none.
	CustomData *jsonnode.Node

	// SetIndex is the index of the parent set in Song.Sets.
	SetIndex int
}

// NewDifficulty returns a difficulty with default values that belongs to the
// set at index.
func NewDifficulty(index int) *Difficulty {
	return &Difficulty{
		Difficulty:            DefaultDifficulty,
		Rank:                  DefaultDifficultyRank,
		Filename:              DefaultDifficulty + ".dat",
		NoteJumpMovementSpeed: DefaultNoteJumpSpeed,
		ColorLeft:             DefaultLeftNote,
		ColorRight:            DefaultRightNote,
		EnvColorLeft:          DefaultLeftColor,
		EnvColorRight:         DefaultRightColor,
		ObstacleColor:         DefaultLeftColor,
		SetIndex:              index,
	}
}

// Reparent points the difficulty at another set. It does not move the entry
// between Difficulties lists.
func (d *Difficulty) Reparent(index int) {
	d.SetIndex = index
}

// DeriveFilename builds the conventional geometry filename for a difficulty.
func DeriveFilename(difficulty, characteristic string) string {
	return difficulty + characteristic + ".dat"
}
