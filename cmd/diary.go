package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/karvel/folio/internal/derive"
	"github.com/karvel/folio/internal/model"
	"github.com/karvel/folio/internal/store"
)

var (
	diaryTitle    string
	diaryDate     string
	diaryMood     int
	diaryTags     string
	diaryHappened string
	diaryFelt     string
	diaryLearned  string
	diaryQuestion string
	diaryWin      string
)

var diaryCmd = &cobra.Command{
	Use:   "diary",
	Short: "Manage diary entries",
}

var diaryAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a diary entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runDiaryAdd,
}

var diaryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List diary entries, newest first",
	Args:  cobra.NoArgs,
	RunE:  runDiaryList,
}

var diaryShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one diary entry in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runDiaryShow,
}

var diaryEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a diary entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runDiaryEdit,
}

var diaryRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a diary entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runDiaryRm,
}

func init() {
	diaryAddCmd.Flags().StringVar(&diaryDate, "date", "", "Entry date (YYYY-MM-DD, default today)")
	diaryAddCmd.Flags().IntVar(&diaryMood, "mood", model.MoodNeutral, "Mood score 1–5")
	diaryAddCmd.Flags().StringVar(&diaryTags, "tags", "", "Comma-separated tags")
	diaryAddCmd.Flags().StringVar(&diaryHappened, "happened", "", "What happened")
	diaryAddCmd.Flags().StringVar(&diaryFelt, "felt", "", "What I felt")
	diaryAddCmd.Flags().StringVar(&diaryLearned, "learned", "", "What I learned")
	diaryAddCmd.Flags().StringVar(&diaryQuestion, "question", "", "An open question")
	diaryAddCmd.Flags().StringVar(&diaryWin, "win", "", "A small win")

	diaryEditCmd.Flags().StringVar(&diaryTitle, "title", "", "Entry title")
	diaryEditCmd.Flags().StringVar(&diaryDate, "date", "", "Entry date (YYYY-MM-DD)")
	diaryEditCmd.Flags().IntVar(&diaryMood, "mood", model.MoodNeutral, "Mood score 1–5")
	diaryEditCmd.Flags().StringVar(&diaryTags, "tags", "", "Comma-separated tags")
	diaryEditCmd.Flags().StringVar(&diaryHappened, "happened", "", "What happened")
	diaryEditCmd.Flags().StringVar(&diaryFelt, "felt", "", "What I felt")
	diaryEditCmd.Flags().StringVar(&diaryLearned, "learned", "", "What I learned")
	diaryEditCmd.Flags().StringVar(&diaryQuestion, "question", "", "An open question")
	diaryEditCmd.Flags().StringVar(&diaryWin, "win", "", "A small win")

	diaryCmd.AddCommand(diaryAddCmd)
	diaryCmd.AddCommand(diaryListCmd)
	diaryCmd.AddCommand(diaryShowCmd)
	diaryCmd.AddCommand(diaryEditCmd)
	diaryCmd.AddCommand(diaryRmCmd)
}

func runDiaryAdd(cmd *cobra.Command, args []string) error {
	date, err := dateOrToday(diaryDate)
	if err != nil {
		return err
	}
	if diaryMood < model.MoodMin || diaryMood > model.MoodMax {
		return fmt.Errorf("mood must be between %d and %d", model.MoodMin, model.MoodMax)
	}

	st, _, cleanup := openStore()
	defer cleanup()

	entry := model.DiaryEntry{
		ID:           derive.NewID(),
		Date:         date,
		Title:        args[0],
		Tags:         parseTags(diaryTags),
		Mood:         diaryMood,
		WhatHappened: diaryHappened,
		WhatIFelt:    diaryFelt,
		WhatILearned: diaryLearned,
		Question:     diaryQuestion,
		SmallWin:     diaryWin,
		CreatedAt:    time.Now(),
	}
	entry.Normalize()

	store.Diary(st).Update(func(entries []model.DiaryEntry) []model.DiaryEntry {
		return append(entries, entry)
	})

	fmt.Printf("Added diary entry %s %q for %s\n", entry.ID, entry.Title, derive.FormatDate(entry.Date))
	return nil
}

func runDiaryList(cmd *cobra.Command, args []string) error {
	st, cfg, cleanup := openStore()
	defer cleanup()

	entries := store.Diary(st).Load()
	if len(entries) == 0 {
		fmt.Println("No diary entries yet.")
		return nil
	}

	now := time.Now()
	for _, e := range derive.Recent(entries, len(entries)) {
		fmt.Printf("%s  %s %s (%s)\n", e.ID, model.MoodEmoji[e.Mood], e.Title, derive.DaysAgo(e.Date, now))
		if snippet := derive.Snippet(e.WhatHappened, cfg.SnippetLength); snippet != "" {
			fmt.Printf("    %s\n", snippet)
		}
	}
	return nil
}

func runDiaryShow(cmd *cobra.Command, args []string) error {
	st, _, cleanup := openStore()
	defer cleanup()

	for _, e := range store.Diary(st).Load() {
		if e.ID != args[0] {
			continue
		}
		fmt.Printf("%s\n", e.Title)
		fmt.Printf("%s  %s %s\n", derive.FormatDateLong(e.Date), model.MoodEmoji[e.Mood], model.MoodLabel[e.Mood])
		if len(e.Tags) > 0 {
			fmt.Printf("Tags: %s\n", strings.Join(e.Tags, ", "))
		}
		printSection("What happened", e.WhatHappened)
		printSection("What I felt", e.WhatIFelt)
		printSection("What I learned", e.WhatILearned)
		printSection("Open question", e.Question)
		printSection("Small win", e.SmallWin)
		return nil
	}
	return fmt.Errorf("no diary entry with id %q", args[0])
}

func runDiaryEdit(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	if flags.Changed("date") {
		if _, ok := derive.ParseDate(diaryDate); !ok {
			return fmt.Errorf("invalid date %q, want YYYY-MM-DD", diaryDate)
		}
	}
	if flags.Changed("mood") && (diaryMood < model.MoodMin || diaryMood > model.MoodMax) {
		return fmt.Errorf("mood must be between %d and %d", model.MoodMin, model.MoodMax)
	}

	st, _, cleanup := openStore()
	defer cleanup()

	found := false
	store.Diary(st).Update(func(entries []model.DiaryEntry) []model.DiaryEntry {
		for i := range entries {
			if entries[i].ID != args[0] {
				continue
			}
			found = true
			e := entries[i]
			if flags.Changed("title") {
				e.Title = diaryTitle
			}
			if flags.Changed("date") {
				e.Date = diaryDate
			}
			if flags.Changed("mood") {
				e.Mood = diaryMood
			}
			if flags.Changed("tags") {
				e.Tags = parseTags(diaryTags)
			}
			if flags.Changed("happened") {
				e.WhatHappened = diaryHappened
			}
			if flags.Changed("felt") {
				e.WhatIFelt = diaryFelt
			}
			if flags.Changed("learned") {
				e.WhatILearned = diaryLearned
			}
			if flags.Changed("question") {
				e.Question = diaryQuestion
			}
			if flags.Changed("win") {
				e.SmallWin = diaryWin
			}
			e.Normalize()
			entries[i] = e
		}
		return entries
	})
	if !found {
		return fmt.Errorf("no diary entry with id %q", args[0])
	}

	fmt.Printf("Updated diary entry %s\n", args[0])
	return nil
}

func runDiaryRm(cmd *cobra.Command, args []string) error {
	st, _, cleanup := openStore()
	defer cleanup()

	col := store.Diary(st)
	entries := col.Load()
	kept := make([]model.DiaryEntry, 0, len(entries))
	for _, e := range entries {
		if e.ID != args[0] {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return fmt.Errorf("no diary entry with id %q", args[0])
	}
	col.Save(kept)

	fmt.Printf("Removed diary entry %s\n", args[0])
	return nil
}

// printSection prints a titled block, skipping empty content.
func printSection(title, content string) {
	if content == "" {
		return
	}
	fmt.Printf("\n%s\n  %s\n", title, content)
}
