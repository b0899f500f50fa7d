package infodat

// Descriptor keys.
const (
	keyVersion            = "_version"
	keySongName           = "_songName"
	keySongSubName        = "_songSubName"
	keySongAuthorName     = "_songAuthorName"
	keyLevelAuthorName    = "_levelAuthorName"
	keyBeatsPerMinute     = "_beatsPerMinute"
	keySongTimeOffset     = "_songTimeOffset"
	keyPreviewStartTime   = "_previewStartTime"
	keyPreviewDuration    = "_previewDuration"
	keyShuffle            = "_shuffle"
	keyShufflePeriod      = "_shufflePeriod"
	keyCoverImageFilename = "_coverImageFilename"
	keySongFilename       = "_songFilename"
	keyEnvironmentName    = "_environmentName"
	keyCustomData         = "_customData"
	keySets               = "_difficultyBeatmapSets"

	keyCharacteristicName = "_beatmapCharacteristicName"
	keyDifficulties       = "_difficultyBeatmaps"

	keyDifficulty              = "_difficulty"
	keyDifficultyRank          = "_difficultyRank"
	keyBeatmapFilename         = "_beatmapFilename"
	keyNoteJumpMovementSpeed   = "_noteJumpMovementSpeed"
	keyNoteJumpStartBeatOffset = "_noteJumpStartBeatOffset"
)

// customData keys the engine reads or prunes.
const (
	keyContributors          = "_contributors"
	keyCustomEnvironment     = "_customEnvironment"
	keyCustomEnvironmentHash = "_customEnvironmentHash"

	keyColorLeft     = "_colorLeft"
	keyColorRight    = "_colorRight"
	keyEnvColorLeft  = "_envColorLeft"
	keyEnvColorRight = "_envColorRight"
	keyObstacleColor = "_obstacleColor"

	keyDifficultyLabel = "_difficultyLabel"
	keyEditorOffset    = "_editorOffset"
	keyEditorOldOffset = "_editorOldOffset"
	keyWarnings        = "_warnings"
	keyInformation     = "_information"
	keySuggestions     = "_suggestions"
	keyRequirements    = "_requirements"
)

// InfoFilename is the descriptor filename inside a package directory.
const InfoFilename = "info.dat"
