package infodat

import (
	"beatinfo/internal/jsonnode"
	"beatinfo/internal/song"
)

// Indent is the indentation used for info.dat.
const Indent = "  "

// Encode builds the descriptor document for s. The song is not modified;
// customData subtrees are copied before pruning.
func Encode(s *song.Song) *jsonnode.Node {
	doc := jsonnode.NewObject()
	doc.Set(keyVersion, jsonnode.NewString(s.Version))
	doc.Set(keySongName, jsonnode.NewString(s.SongName))
	doc.Set(keySongSubName, jsonnode.NewString(s.SongSubName))
	doc.Set(keySongAuthorName, jsonnode.NewString(s.SongAuthorName))
	doc.Set(keyLevelAuthorName, jsonnode.NewString(s.LevelAuthorName))

	doc.Set(keyBeatsPerMinute, jsonnode.NewNumber(s.BeatsPerMinute))
	doc.Set(keyPreviewStartTime, jsonnode.NewNumber(s.PreviewStartTime))
	doc.Set(keyPreviewDuration, jsonnode.NewNumber(s.PreviewDuration))
	doc.Set(keySongTimeOffset, jsonnode.NewNumber(s.SongTimeOffset))

	doc.Set(keyShuffle, jsonnode.NewNumber(s.Shuffle))
	doc.Set(keyShufflePeriod, jsonnode.NewNumber(s.ShufflePeriod))

	doc.Set(keyCoverImageFilename, jsonnode.NewString(s.CoverImageFilename))
	doc.Set(keySongFilename, jsonnode.NewString(s.SongFilename))

	doc.Set(keyEnvironmentName, jsonnode.NewString(s.EnvironmentName))
	if customData := PruneRootCustomData(s.CustomData); customData != nil {
		doc.Set(keyCustomData, customData)
	}

	sets := jsonnode.NewArray()
	for _, set := range s.Sets {
		if set == nil {
			continue
		}
		sets.Append(encodeSet(set))
	}
	doc.Set(keySets, sets)
	return doc
}

func encodeSet(set *song.CharacteristicSet) *jsonnode.Node {
	node := jsonnode.NewObject()
	node.Set(keyCharacteristicName, jsonnode.NewString(set.Name))
	diffs := jsonnode.NewArray()
	for _, d := range set.Difficulties {
		if d == nil {
			continue
		}
		diffs.Append(encodeDifficulty(d))
	}
	node.Set(keyDifficulties, diffs)
	return node
}

func encodeDifficulty(d *song.Difficulty) *jsonnode.Node {
	node := jsonnode.NewObject()
	node.Set(keyDifficulty, jsonnode.NewString(d.Difficulty))
	node.Set(keyDifficultyRank, jsonnode.NewInt(d.Rank))
	node.Set(keyBeatmapFilename, jsonnode.NewString(d.Filename))
	node.Set(keyNoteJumpMovementSpeed, jsonnode.NewNumber(d.NoteJumpMovementSpeed))
	node.Set(keyNoteJumpStartBeatOffset, jsonnode.NewNumber(d.NoteJumpStartBeatOffset))

	customData := jsonnode.NewObject()
	if d.CustomData.IsObject() {
		customData = d.CustomData.Clone()
	}
	for _, c := range ColorEmissions(d) {
		if c.Emit {
			customData.Set(c.Key, ColorToNode(c.Color))
		}
	}
	if PruneDifficultyCustomData(customData) {
		node.Set(keyCustomData, customData)
	}
	return node
}

// Render encodes s and prints it the way info.dat is stored on disk.
func Render(s *song.Song) ([]byte, error) {
	return Encode(s).Print(Indent)
}
