package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"beatinfo/internal/beatmap"
	"beatinfo/internal/infodat"
	"beatinfo/internal/jsonnode"
	"beatinfo/internal/song"
)

type songView struct {
	Directory       string           `json:"directory" yaml:"directory"`
	WIP             bool             `json:"wip" yaml:"wip"`
	SongName        string           `json:"song_name" yaml:"song_name"`
	SongSubName     string           `json:"song_sub_name" yaml:"song_sub_name"`
	SongAuthorName  string           `json:"song_author_name" yaml:"song_author_name"`
	LevelAuthorName string           `json:"level_author_name" yaml:"level_author_name"`
	BeatsPerMinute  float64          `json:"beats_per_minute" yaml:"beats_per_minute"`
	SongTimeOffset  float64          `json:"song_time_offset" yaml:"song_time_offset"`
	PreviewStart    float64          `json:"preview_start_time" yaml:"preview_start_time"`
	PreviewDuration float64          `json:"preview_duration" yaml:"preview_duration"`
	SongFilename    string           `json:"song_filename" yaml:"song_filename"`
	CoverImage      string           `json:"cover_image_filename" yaml:"cover_image_filename"`
	Environment     string           `json:"environment_name" yaml:"environment_name"`
	CustomData      *orderedData     `json:"custom_data,omitempty" yaml:"custom_data,omitempty"`
	Difficulties    []difficultyView `json:"difficulties" yaml:"difficulties"`
}

type difficultyView struct {
	Characteristic string       `json:"characteristic" yaml:"characteristic"`
	Difficulty     string       `json:"difficulty" yaml:"difficulty"`
	Rank           int          `json:"rank" yaml:"rank"`
	Filename       string       `json:"filename" yaml:"filename"`
	NoteJumpSpeed  float64      `json:"note_jump_speed" yaml:"note_jump_speed"`
	NoteJumpOffset float64      `json:"note_jump_offset" yaml:"note_jump_offset"`
	CustomColors   []string     `json:"custom_colors,omitempty" yaml:"custom_colors,omitempty"`
	CustomData     *orderedData `json:"custom_data,omitempty" yaml:"custom_data,omitempty"`
	Content        *contentView `json:"content,omitempty" yaml:"content,omitempty"`
}

type contentView struct {
	Version   string `json:"version,omitempty" yaml:"version,omitempty"`
	Notes     int    `json:"notes" yaml:"notes"`
	Obstacles int    `json:"obstacles" yaml:"obstacles"`
	Events    int    `json:"events" yaml:"events"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	var format string
	var content bool

	cmd := &cobra.Command{
		Use:   "show <dir>",
		Short: "Display the descriptor of a song package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(strings.TrimSpace(format))
			switch format {
			case "table", "json", "yaml":
			default:
				return fmt.Errorf("unsupported format %q (use table, json, or yaml)", format)
			}

			store, err := ctx.store()
			if err != nil {
				return err
			}
			s, err := store.Load(args[0])
			if err != nil {
				if errors.Is(err, infodat.ErrNotFound) {
					return fmt.Errorf("no %s in %s", infodat.InfoFilename, args[0])
				}
				return err
			}

			view := buildSongView(s)
			if content {
				attachContent(store, s, &view)
			}

			switch format {
			case "json":
				return writeJSON(cmd, view)
			case "yaml":
				return writeYAML(cmd, view)
			default:
				fmt.Fprint(cmd.OutOrStdout(), renderSongView(view, content, shouldColorize(cmd.OutOrStdout())))
				return nil
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table, json, or yaml")
	cmd.Flags().BoolVar(&content, "content", false, "Summarize each difficulty file")
	return cmd
}

func buildSongView(s *song.Song) songView {
	view := songView{
		Directory:       s.Directory,
		WIP:             s.WIP,
		SongName:        s.SongName,
		SongSubName:     s.SongSubName,
		SongAuthorName:  s.SongAuthorName,
		LevelAuthorName: s.LevelAuthorName,
		BeatsPerMinute:  s.BeatsPerMinute,
		SongTimeOffset:  s.SongTimeOffset,
		PreviewStart:    s.PreviewStartTime,
		PreviewDuration: s.PreviewDuration,
		SongFilename:    s.SongFilename,
		CoverImage:      s.CoverImageFilename,
		Environment:     s.EnvironmentName,
		CustomData:      customDataView(s.CustomData),
		Difficulties:    []difficultyView{},
	}
	for _, set := range s.Sets {
		if set == nil {
			continue
		}
		for _, d := range set.Difficulties {
			if d == nil {
				continue
			}
			view.Difficulties = append(view.Difficulties, difficultyView{
				Characteristic: set.Name,
				Difficulty:     d.Difficulty,
				Rank:           d.Rank,
				Filename:       d.Filename,
				NoteJumpSpeed:  d.NoteJumpMovementSpeed,
				NoteJumpOffset: d.NoteJumpStartBeatOffset,
				CustomColors:   customColorKeys(d),
				CustomData:     customDataView(d.CustomData),
			})
		}
	}
	return view
}

func customDataView(n *jsonnode.Node) *orderedData {
	if n.Len() == 0 {
		return nil
	}
	return &orderedData{node: n}
}

func customColorKeys(d *song.Difficulty) []string {
	var keys []string
	for _, c := range infodat.ColorEmissions(d) {
		if c.Emit {
			keys = append(keys, strings.TrimPrefix(c.Key, "_"))
		}
	}
	return keys
}

// attachContent summarizes difficulty files in view order. Unreadable files
// are reported per row instead of failing the whole command.
func attachContent(store *infodat.Store, s *song.Song, view *songView) {
	i := 0
	for _, set := range s.Sets {
		if set == nil {
			continue
		}
		for _, d := range set.Difficulties {
			if d == nil {
				continue
			}
			view.Difficulties[i].Content = summarize(store, s, d)
			i++
		}
	}
}

func summarize(store *infodat.Store, s *song.Song, d *song.Difficulty) *contentView {
	m, err := store.LoadDifficultyContent(s, d)
	if err != nil {
		return &contentView{Error: contentErrorLabel(err)}
	}
	return contentViewFromMap(m)
}

func contentViewFromMap(m *beatmap.Map) *contentView {
	return &contentView{Version: m.Version, Notes: m.Notes, Obstacles: m.Obstacles, Events: m.Events}
}

func contentErrorLabel(err error) string {
	switch {
	case errors.Is(err, infodat.ErrNotFound):
		return "missing"
	case errors.Is(err, infodat.ErrCorrupt):
		return "unreadable"
	default:
		return err.Error()
	}
}

func renderSongView(view songView, content bool, colorize bool) string {
	title := view.SongName
	if view.SongSubName != "" {
		title += " " + view.SongSubName
	}

	var lines []string
	lines = append(lines, renderSectionHeader(title, colorize)...)
	lines = append(lines,
		renderField("Directory", view.Directory),
		renderField("WIP", yesNo(view.WIP)),
		renderField("Artist", view.SongAuthorName),
		renderField("Mapper", view.LevelAuthorName),
		renderField("BPM", formatFloat(view.BeatsPerMinute)),
		renderField("Offset", formatFloat(view.SongTimeOffset)),
		renderField("Preview", formatFloat(view.PreviewStart)+"s for "+formatFloat(view.PreviewDuration)+"s"),
		renderField("Audio", view.SongFilename),
		renderField("Cover", view.CoverImage),
		renderField("Environment", view.Environment),
	)

	if len(view.Difficulties) == 0 {
		lines = append(lines, "", "No difficulties")
		return strings.Join(lines, "\n") + "\n"
	}

	headers := []string{"Set", "Difficulty", "Rank", "File", "NJS", "Offset", "Colors"}
	aligns := []columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignRight, alignRight, alignLeft}
	if content {
		headers = append(headers, "Notes", "Obstacles", "Events")
		aligns = append(aligns, alignRight, alignRight, alignRight)
	}

	rows := make([][]string, 0, len(view.Difficulties))
	for _, d := range view.Difficulties {
		colors := strings.Join(d.CustomColors, ",")
		if colors == "" {
			colors = "default"
		}
		row := []string{
			d.Characteristic,
			d.Difficulty,
			strconv.Itoa(d.Rank),
			d.Filename,
			formatFloat(d.NoteJumpSpeed),
			formatFloat(d.NoteJumpOffset),
			colors,
		}
		if content {
			row = append(row, contentCells(d.Content)...)
		}
		rows = append(rows, row)
	}

	lines = append(lines, "", renderTable(headers, rows, aligns))
	return strings.Join(lines, "\n") + "\n"
}

func contentCells(c *contentView) []string {
	if c == nil {
		return []string{"", "", ""}
	}
	if c.Error != "" {
		return []string{c.Error, "", ""}
	}
	return []string{strconv.Itoa(c.Notes), strconv.Itoa(c.Obstacles), strconv.Itoa(c.Events)}
}

func formatFloat(v float64) string {
	text, err := jsonnode.FormatNumber(v)
	if err != nil {
		return "NaN"
	}
	return text
}
