package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"beatinfo/internal/infodat"
	"beatinfo/internal/testsupport"
)

func TestNewCreatesPackage(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"new", "Night Drive", "--author", "Synth", "--mapper", "Me",
		"--bpm", "128.5", "--difficulty", "hard", "--difficulty", "ExpertPlus"}, env.configPath)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	dir := filepath.Join(env.cfg.ReleaseRoot(), "Night Drive")
	requireContains(t, out, filepath.Join(dir, infodat.InfoFilename))

	content := testsupport.ReadFile(t, filepath.Join(dir, infodat.InfoFilename))
	for _, want := range []string{
		`"_songName": "Night Drive"`,
		`"_songAuthorName": "Synth"`,
		`"_levelAuthorName": "Me"`,
		`"_beatsPerMinute": 128.5`,
		`"_beatmapFilename": "HardStandard.dat"`,
		`"_difficulty": "ExpertPlus"`,
		`"_difficultyRank": 9`,
	} {
		requireContains(t, content, want)
	}

	if _, _, err := runCLI(t, []string{"new", "Night Drive"}, env.configPath); err == nil {
		t.Fatal("expected second new to fail")
	} else {
		requireContains(t, err.Error(), "already exists")
	}
}

func TestNewWorkInProgress(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"new", "Draft", "--wip"}, env.configPath); err != nil {
		t.Fatalf("new --wip: %v", err)
	}
	if _, err := os.Stat(filepath.Join(env.cfg.WorkInProgressRoot(), "Draft", infodat.InfoFilename)); err != nil {
		t.Fatalf("expected wip package: %v", err)
	}
}

func TestNewRejectsUnknownDifficulty(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"new", "Song", "--difficulty", "Impossible"}, env.configPath)
	if err == nil {
		t.Fatal("expected error")
	}
	requireContains(t, err.Error(), "unknown difficulty")
}

const showFixture = `{
  "_songName": "Fixture",
  "_songAuthorName": "Artist",
  "_beatsPerMinute": 174,
  "_customData": {"_editors": {"_lastEditedBy": "ChroMapper"}},
  "_difficultyBeatmapSets": [
    {"_beatmapCharacteristicName": "Standard", "_difficultyBeatmaps": [
      {"_difficulty": "Expert", "_difficultyRank": 7, "_beatmapFilename": "ExpertStandard.dat", "_noteJumpMovementSpeed": 18,
       "_customData": {"_colorLeft": {"r": 0, "g": 1, "b": 0}}},
      {"_difficulty": "Hard", "_difficultyRank": 5, "_beatmapFilename": "HardStandard.dat", "_noteJumpMovementSpeed": 16}
    ]}
  ]
}`

func writeShowFixture(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "Fixture")
	testsupport.WriteInfo(t, dir, showFixture)
	testsupport.WriteFile(t, filepath.Join(dir, "ExpertStandard.dat"),
		[]byte(`{"_version": "2.2.0", "_notes": [{}, {}], "_obstacles": [], "_events": [{}]}`))
	return dir
}

func TestShowTable(t *testing.T) {
	env := setupCLITestEnv(t)
	dir := writeShowFixture(t)

	out, _, err := runCLI(t, []string{"show", dir, "--content"}, env.configPath)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, out, "== Fixture ==")
	requireContains(t, out, "Artist")
	requireContains(t, out, "174")
	requireContains(t, out, "ExpertStandard.dat")
	requireContains(t, out, "colorLeft")
	requireContains(t, out, "default")
	requireContains(t, out, "missing")
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("buffer output should not be colorized: %q", out)
	}
}

func TestShowJSON(t *testing.T) {
	env := setupCLITestEnv(t)
	dir := writeShowFixture(t)

	out, _, err := runCLI(t, []string{"show", dir, "--format", "json", "--content"}, env.configPath)
	if err != nil {
		t.Fatalf("show json: %v", err)
	}
	var view songView
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if view.SongName != "Fixture" || view.BeatsPerMinute != 174 {
		t.Fatalf("unexpected view %+v", view)
	}
	if len(view.Difficulties) != 2 {
		t.Fatalf("difficulties: got %d want 2", len(view.Difficulties))
	}
	expert := view.Difficulties[0]
	if expert.Content == nil || expert.Content.Notes != 2 || expert.Content.Events != 1 {
		t.Fatalf("unexpected content %+v", expert.Content)
	}
	if hard := view.Difficulties[1]; hard.Content == nil || hard.Content.Error != "missing" {
		t.Fatalf("expected missing content for Hard, got %+v", hard.Content)
	}
	requireContains(t, out, `"_lastEditedBy": "ChroMapper"`)
}

func TestShowYAMLKeepsCustomDataOrder(t *testing.T) {
	env := setupCLITestEnv(t)
	dir := writeShowFixture(t)

	out, _, err := runCLI(t, []string{"show", dir, "--format", "yaml"}, env.configPath)
	if err != nil {
		t.Fatalf("show yaml: %v", err)
	}
	requireContains(t, out, "song_name: Fixture\n")
	requireContains(t, out, "_lastEditedBy: ChroMapper")
	requireContains(t, out, "_colorLeft:")
	if strings.Index(out, "r: 0") > strings.Index(out, "g: 1") {
		t.Fatalf("color channels out of order:\n%s", out)
	}
}

func TestShowErrors(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"show", t.TempDir()}, env.configPath)
	if err == nil {
		t.Fatal("expected error for missing descriptor")
	}
	requireContains(t, err.Error(), "no info.dat")

	dir := t.TempDir()
	testsupport.WriteInfo(t, dir, "{broken")
	_, _, err = runCLI(t, []string{"show", dir}, env.configPath)
	if !errors.Is(err, infodat.ErrCorrupt) {
		t.Fatalf("got %v want ErrCorrupt", err)
	}

	_, _, err = runCLI(t, []string{"show", dir, "--format", "xml"}, env.configPath)
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNormalizeCheckAndRewrite(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithBackup(true))
	dir := writeShowFixture(t)
	path := filepath.Join(dir, infodat.InfoFilename)

	out, _, err := runCLI(t, []string{"normalize", dir, "--check"}, env.configPath)
	if !errors.Is(err, errNeedsNormalize) {
		t.Fatalf("got %v want errNeedsNormalize", err)
	}
	requireContains(t, out, "needs normalization")
	if got := testsupport.ReadFile(t, path); got != showFixture {
		t.Fatal("--check must not modify the file")
	}

	out, _, err = runCLI(t, []string{"normalize", dir}, env.configPath)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	requireContains(t, out, "Normalized")
	if got := testsupport.ReadFile(t, path+infodat.BackupSuffix); got != showFixture {
		t.Fatal("expected backup of the original descriptor")
	}

	out, _, err = runCLI(t, []string{"normalize", dir, "--check"}, env.configPath)
	if err != nil {
		t.Fatalf("normalize --check after rewrite: %v", err)
	}
	requireContains(t, out, "already normalized")
}
