package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"beatinfo/internal/infodat"
	"beatinfo/internal/song"
)

// Ranks the game assigns to the standard difficulty names.
var difficultyRanks = map[string]int{
	"Easy":       1,
	"Normal":     3,
	"Hard":       5,
	"Expert":     7,
	"ExpertPlus": 9,
}

func newNewCommand(ctx *commandContext) *cobra.Command {
	var (
		wip            bool
		author         string
		mapper         string
		subName        string
		bpm            float64
		characteristic string
		difficulties   []string
	)

	cmd := &cobra.Command{
		Use:   "new <title>",
		Short: "Create a song package with a fresh info.dat",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.TrimSpace(args[0])
			if title == "" {
				return errors.New("title must not be empty")
			}
			if bpm <= 0 {
				return fmt.Errorf("bpm must be positive, got %v", bpm)
			}

			s := song.New(wip)
			s.SongName = title
			s.SongSubName = strings.TrimSpace(subName)
			s.SongAuthorName = strings.TrimSpace(author)
			s.LevelAuthorName = strings.TrimSpace(mapper)
			s.BeatsPerMinute = bpm

			if len(difficulties) > 0 {
				index := s.AddSet(song.NewCharacteristicSet(strings.TrimSpace(characteristic)))
				for _, name := range difficulties {
					d, err := newDifficulty(index, name)
					if err != nil {
						return err
					}
					s.AddDifficulty(index, d)
					s.UpdateFilename(d, "")
				}
			}

			store, err := ctx.store()
			if err != nil {
				return err
			}
			dir, err := store.ResolveDirectory(s)
			if err != nil {
				return err
			}
			if _, err := store.Load(dir); err == nil {
				return fmt.Errorf("%s already exists", filepath.Join(dir, infodat.InfoFilename))
			} else if !errors.Is(err, infodat.ErrNotFound) {
				return err
			}

			if err := store.Save(s); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", filepath.Join(s.Directory, infodat.InfoFilename))
			return nil
		},
	}

	cmd.Flags().BoolVar(&wip, "wip", false, "Create the package under the work-in-progress root")
	cmd.Flags().StringVar(&author, "author", "", "Song artist")
	cmd.Flags().StringVar(&mapper, "mapper", "", "Level author")
	cmd.Flags().StringVar(&subName, "sub-name", "", "Song subtitle")
	cmd.Flags().Float64Var(&bpm, "bpm", song.DefaultBeatsPerMinute, "Beats per minute")
	cmd.Flags().StringVar(&characteristic, "characteristic", song.DefaultCharacteristic, "Characteristic of the difficulty set")
	cmd.Flags().StringSliceVar(&difficulties, "difficulty", nil, "Difficulty to add (repeatable): Easy, Normal, Hard, Expert, ExpertPlus")
	return cmd
}

func newDifficulty(index int, name string) (*song.Difficulty, error) {
	name = strings.TrimSpace(name)
	for known, rank := range difficultyRanks {
		if strings.EqualFold(known, name) {
			d := song.NewDifficulty(index)
			d.Difficulty = known
			d.Rank = rank
			return d, nil
		}
	}
	return nil, fmt.Errorf("unknown difficulty %q (use Easy, Normal, Hard, Expert, or ExpertPlus)", name)
}
