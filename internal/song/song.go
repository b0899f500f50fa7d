package song

import "beatinfo/internal/jsonnode"

const (
	DefaultVersion            = "2.0.0"
	DefaultSongName           = "New Song"
	DefaultBeatsPerMinute     = 100
	DefaultPreviewStartTime   = 12
	DefaultPreviewDuration    = 10
	DefaultShufflePeriod      = 0.5
	DefaultSongFilename       = "song.ogg"
	DefaultCoverImageFilename = "cover.png"
	DefaultEnvironmentName    = "DefaultEnvironment"
	DefaultCharacteristic     = "Standard"
	DefaultDifficulty         = "Easy"
	DefaultDifficultyRank     = 1
	DefaultNoteJumpSpeed      = 16
)

// Song is the root of a level package descriptor.
type Song struct {
	// Directory is the package directory. Empty until the song is loaded from
	// or saved to disk.
	Directory string
	// WIP selects the work-in-progress root when a directory has to be derived.
	WIP bool

	Version            string
	SongName           string
	SongSubName        string
	SongAuthorName     string
	LevelAuthorName    string
	BeatsPerMinute     float64
	SongTimeOffset     float64
	PreviewStartTime   float64
	PreviewDuration    float64
	Shuffle            float64
	ShufflePeriod      float64
	SongFilename       string
	CoverImageFilename string
	EnvironmentName    string

	// CustomData is an opaque object subtree. Nil means none.
	CustomData *jsonnode.Node

	Sets []*CharacteristicSet
}

// CharacteristicSet groups the difficulties of one play mode.
type CharacteristicSet struct {
	Name         string
	Difficulties []*Difficulty
}

// New returns a song with default values and no characteristic sets.
func New(wip bool) *Song {
	return &Song{
		WIP:                wip,
		Version:            DefaultVersion,
		SongName:           DefaultSongName,
		BeatsPerMinute:     DefaultBeatsPerMinute,
		PreviewStartTime:   DefaultPreviewStartTime,
		PreviewDuration:    DefaultPreviewDuration,
		ShufflePeriod:      DefaultShufflePeriod,
		SongFilename:       DefaultSongFilename,
		CoverImageFilename: DefaultCoverImageFilename,
		EnvironmentName:    DefaultEnvironmentName,
	}
}

// NewCharacteristicSet returns an empty set. A blank name falls back to
// DefaultCharacteristic.
func NewCharacteristicSet(name string) *CharacteristicSet {
	if name == "" {
		name = DefaultCharacteristic
	}
	return &CharacteristicSet{Name: name}
}

// AddSet appends set and returns its index.
func (s *Song) AddSet(set *CharacteristicSet) int {
	s.Sets = append(s.Sets, set)
	return len(s.Sets) - 1
}

// AddDifficulty appends d to the set at index and points d at it. The
// filename is left alone; call UpdateFilename to derive it.
func (s *Song) AddDifficulty(index int, d *Difficulty) {
	set := s.Set(index)
	if set == nil || d == nil {
		return
	}
	d.Reparent(index)
	set.Difficulties = append(set.Difficulties, d)
}

// Set returns the characteristic set at index, or nil when out of range.
func (s *Song) Set(index int) *CharacteristicSet {
	if s == nil || index < 0 || index >= len(s.Sets) {
		return nil
	}
	return s.Sets[index]
}

// Parent resolves the characteristic set a difficulty points at.
func (s *Song) Parent(d *Difficulty) *CharacteristicSet {
	if d == nil {
		return nil
	}
	return s.Set(d.SetIndex)
}

// UpdateFilename sets the difficulty filename. A non-empty explicit name is
// authoritative; otherwise the name is derived from the difficulty label and
// the parent characteristic.
func (s *Song) UpdateFilename(d *Difficulty, explicit string) {
	if d == nil {
		return
	}
	if explicit != "" {
		d.Filename = explicit
		return
	}
	var characteristic string
	if parent := s.Parent(d); parent != nil {
		characteristic = parent.Name
	}
	d.Filename = DeriveFilename(d.Difficulty, characteristic)
}

// DifficultyCount returns the number of difficulties across all sets.
func (s *Song) DifficultyCount() int {
	total := 0
	for _, set := range s.Sets {
		if set != nil {
			total += len(set.Difficulties)
		}
	}
	return total
}
