package infodat

import (
	"beatinfo/internal/jsonnode"
	"beatinfo/internal/song"
)

// Optional root customData keys that external validators reject when blank.
var rootOptionalKeys = []string{keyContributors, keyCustomEnvironment, keyCustomEnvironmentHash}

// Editor bookkeeping keys some tools leave behind; dropped when not positive.
var editorOffsetKeys = []string{keyEditorOffset, keyEditorOldOffset}

// Per-difficulty list keys dropped when empty.
var difficultyListKeys = []string{keyWarnings, keyInformation, keySuggestions, keyRequirements}

// PruneRootCustomData returns a cleaned shallow copy of the root customData,
// or nil when nothing is left to emit. The input is not modified.
func PruneRootCustomData(customData *jsonnode.Node) *jsonnode.Node {
	if !customData.IsObject() {
		return nil
	}
	out := customData.Clone()
	for _, key := range rootOptionalKeys {
		if out.Has(key) && out.Get(key).IsBlank() {
			out.Remove(key)
		}
	}
	if out.Len() == 0 {
		return nil
	}
	return out
}

// ColorEmission is one color the serializer may write into a difficulty's
// customData.
type ColorEmission struct {
	Key   string
	Color song.Color
	Emit  bool
}

// ColorEmissions lists the difficulty colors in emission order and whether
// each one differs enough from its default to be written. An environment
// color equal to its note color is skipped because readers rebuild it from
// the note color. Obstacles share the left environment default.
func ColorEmissions(d *song.Difficulty) []ColorEmission {
	return []ColorEmission{
		{Key: keyColorLeft, Color: d.ColorLeft, Emit: d.ColorLeft != song.DefaultLeftNote},
		{Key: keyColorRight, Color: d.ColorRight, Emit: d.ColorRight != song.DefaultRightNote},
		{
			Key:   keyEnvColorLeft,
			Color: d.EnvColorLeft,
			Emit:  d.EnvColorLeft != song.DefaultLeftColor && d.EnvColorLeft != d.ColorLeft,
		},
		{
			Key:   keyEnvColorRight,
			Color: d.EnvColorRight,
			Emit:  d.EnvColorRight != song.DefaultRightColor && d.EnvColorRight != d.ColorRight,
		},
		{Key: keyObstacleColor, Color: d.ObstacleColor, Emit: d.ObstacleColor != song.DefaultLeftColor},
	}
}

// PruneDifficultyCustomData removes blank or noise entries from a difficulty
// customData copy in place and reports whether anything is left.
func PruneDifficultyCustomData(customData *jsonnode.Node) bool {
	if !customData.IsObject() {
		return false
	}
	if customData.Get(keyDifficultyLabel).IsBlank() {
		customData.Remove(keyDifficultyLabel)
	}
	for _, key := range editorOffsetKeys {
		if value := customData.Get(key); value != nil && value.AsFloat() <= 0 {
			customData.Remove(key)
		}
	}
	for _, key := range difficultyListKeys {
		if value := customData.Get(key); value.IsArray() && value.Len() == 0 {
			customData.Remove(key)
		}
	}
	return customData.Len() > 0
}
