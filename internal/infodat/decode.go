package infodat

import (
	"errors"

	"beatinfo/internal/jsonnode"
	"beatinfo/internal/song"
)

var errRootNotObject = errors.New("document root is not an object")

// Decode builds a song from a parsed descriptor. Recognized keys are applied
// in document order; everything else at the top level is ignored apart from
// _customData, which is kept verbatim. Fields whose key is absent keep the
// song.New defaults.
func Decode(doc *jsonnode.Node) (*song.Song, error) {
	if !doc.IsObject() {
		return nil, errRootNotObject
	}
	s := song.New(false)
	doc.Each(func(key string, value *jsonnode.Node) {
		switch key {
		case keySongName:
			s.SongName = value.AsString()
		case keySongSubName:
			s.SongSubName = value.AsString()
		case keySongAuthorName:
			s.SongAuthorName = value.AsString()
		case keyLevelAuthorName:
			s.LevelAuthorName = value.AsString()

		case keyBeatsPerMinute:
			s.BeatsPerMinute = value.AsFloat()
		case keySongTimeOffset:
			s.SongTimeOffset = value.AsFloat()
		case keyPreviewStartTime:
			s.PreviewStartTime = value.AsFloat()
		case keyPreviewDuration:
			s.PreviewDuration = value.AsFloat()

		case keyShuffle:
			s.Shuffle = value.AsFloat()
		case keyShufflePeriod:
			s.ShufflePeriod = value.AsFloat()

		case keyCoverImageFilename:
			s.CoverImageFilename = value.AsString()
		case keySongFilename:
			s.SongFilename = value.AsString()
		case keyEnvironmentName:
			s.EnvironmentName = value.AsString()

		case keyCustomData:
			s.CustomData = value

		case keySets:
			for _, setNode := range value.Items() {
				decodeSet(s, setNode)
			}
		}
	})
	return s, nil
}

func decodeSet(s *song.Song, node *jsonnode.Node) {
	set := &song.CharacteristicSet{Name: node.Get(keyCharacteristicName).AsString()}
	index := s.AddSet(set)
	for _, diffNode := range node.Get(keyDifficulties).Items() {
		d := decodeDifficulty(diffNode, index)
		s.AddDifficulty(index, d)
		s.UpdateFilename(d, diffNode.Get(keyBeatmapFilename).AsString())
	}
}

func decodeDifficulty(node *jsonnode.Node, index int) *song.Difficulty {
	d := song.NewDifficulty(index)
	d.Difficulty = node.Get(keyDifficulty).AsString()
	d.Rank = node.Get(keyDifficultyRank).AsInt()
	d.NoteJumpMovementSpeed = node.Get(keyNoteJumpMovementSpeed).AsFloat()
	d.NoteJumpStartBeatOffset = node.Get(keyNoteJumpStartBeatOffset).AsFloat()
	d.CustomData = node.Get(keyCustomData)

	cd := d.CustomData
	if cd.Has(keyColorLeft) {
		d.ColorLeft = ColorFromNode(cd.Get(keyColorLeft))
	}
	if cd.Has(keyColorRight) {
		d.ColorRight = ColorFromNode(cd.Get(keyColorRight))
	}
	// Packages often set only note colors and expect the environment to match.
	if cd.Has(keyEnvColorLeft) {
		d.EnvColorLeft = ColorFromNode(cd.Get(keyEnvColorLeft))
	} else if cd.Has(keyColorLeft) {
		d.EnvColorLeft = d.ColorLeft
	}
	if cd.Has(keyEnvColorRight) {
		d.EnvColorRight = ColorFromNode(cd.Get(keyEnvColorRight))
	} else if cd.Has(keyColorRight) {
		d.EnvColorRight = d.ColorRight
	}
	if cd.Has(keyObstacleColor) {
		d.ObstacleColor = ColorFromNode(cd.Get(keyObstacleColor))
	}
	return d
}
