package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/karvel/folio/internal/derive"
	"github.com/karvel/folio/internal/model"
	"github.com/karvel/folio/internal/store"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the home summary: streak, recent entries, current semester",
	Args:  cobra.NoArgs,
	RunE:  runDashboard,
}

func runDashboard(cmd *cobra.Command, args []string) error {
	st, cfg, cleanup := openStore()
	defer cleanup()

	diary := store.Diary(st).Load()
	semesters := store.Academics(st).Load()
	projects := store.Projects(st).Load()
	stories := store.Stories(st).Load()
	now := time.Now()

	fmt.Printf("Diary entries: %d   Semesters: %d   Projects: %d   Stories: %d\n",
		len(diary), len(semesters), len(projects), len(stories))
	fmt.Printf("Journal streak: %d day(s)\n", derive.Streak(diary, now))

	if overview, ok := derive.CurrentSemester(semesters); ok {
		fmt.Printf("%s: %d course(s), %.2f avg grade points\n",
			overview.Title, overview.CourseCount, overview.AvgGrade)
	}

	recent := derive.Recent(diary, 5)
	if len(recent) == 0 {
		return nil
	}
	fmt.Println("\nRecent entries")
	fmt.Println("--------------------------------")
	for _, e := range recent {
		fmt.Printf("%-14s %s %s\n", derive.DaysAgo(e.Date, now), model.MoodEmoji[e.Mood], e.Title)
		if snippet := derive.Snippet(e.WhatHappened, cfg.SnippetLength); snippet != "" {
			fmt.Printf("               %s\n", snippet)
		}
	}
	return nil
}
