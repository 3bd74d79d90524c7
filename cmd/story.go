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
	storyTitle   string
	storyCompany string
	storyRole    string
	storyStatus  string
	storyType    string
	storyDate    string
	storyContent string
)

var storyCmd = &cobra.Command{
	Use:   "story",
	Short: "Manage behavioral-interview stories",
}

var storyAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a story",
	Args:  cobra.ExactArgs(1),
	RunE:  runStoryAdd,
}

var storyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stories",
	Args:  cobra.NoArgs,
	RunE:  runStoryList,
}

var storyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one story in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runStoryShow,
}

var storyEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a story",
	Args:  cobra.ExactArgs(1),
	RunE:  runStoryEdit,
}

var storyRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a story",
	Args:  cobra.ExactArgs(1),
	RunE:  runStoryRm,
}

func init() {
	storyAddCmd.Flags().StringVar(&storyCompany, "company", "", "Company name")
	storyAddCmd.Flags().StringVar(&storyRole, "role", "", "Role applied for")
	storyAddCmd.Flags().StringVar(&storyStatus, "status", model.StatusDraft, "Status: draft, refined or submitted")
	storyAddCmd.Flags().StringVar(&storyType, "type", model.TypeLeadership, "Story type: leadership, challenge, collaboration, growth or failure")
	storyAddCmd.Flags().StringVar(&storyDate, "date", "", "Story date (YYYY-MM-DD, default today)")
	storyAddCmd.Flags().StringVar(&storyContent, "content", "", "Story content")

	storyEditCmd.Flags().StringVar(&storyTitle, "title", "", "Story title")
	storyEditCmd.Flags().StringVar(&storyCompany, "company", "", "Company name")
	storyEditCmd.Flags().StringVar(&storyRole, "role", "", "Role applied for")
	storyEditCmd.Flags().StringVar(&storyStatus, "status", "", "Status: draft, refined or submitted")
	storyEditCmd.Flags().StringVar(&storyType, "type", "", "Story type: leadership, challenge, collaboration, growth or failure")
	storyEditCmd.Flags().StringVar(&storyDate, "date", "", "Story date (YYYY-MM-DD)")
	storyEditCmd.Flags().StringVar(&storyContent, "content", "", "Story content")

	storyCmd.AddCommand(storyAddCmd)
	storyCmd.AddCommand(storyListCmd)
	storyCmd.AddCommand(storyShowCmd)
	storyCmd.AddCommand(storyEditCmd)
	storyCmd.AddCommand(storyRmCmd)
}

func runStoryAdd(cmd *cobra.Command, args []string) error {
	if !model.ValidStatus(storyStatus) {
		return fmt.Errorf("unknown status %q, want one of %s", storyStatus, strings.Join(model.StoryStatuses, ", "))
	}
	if !model.ValidStoryType(storyType) {
		return fmt.Errorf("unknown story type %q, want one of %s", storyType, strings.Join(model.StoryTypes, ", "))
	}
	date, err := dateOrToday(storyDate)
	if err != nil {
		return err
	}

	st, _, cleanup := openStore()
	defer cleanup()

	story := model.Story{
		ID:        derive.NewID(),
		Title:     args[0],
		Company:   storyCompany,
		Role:      storyRole,
		Status:    storyStatus,
		Date:      date,
		StoryType: storyType,
		Content:   storyContent,
		CreatedAt: time.Now(),
	}
	story.Normalize()

	store.Stories(st).Update(func(stories []model.Story) []model.Story {
		return append(stories, story)
	})

	fmt.Printf("Added story %s %q (%s, %s)\n", story.ID, story.Title, story.StoryType, story.Status)
	return nil
}

func runStoryList(cmd *cobra.Command, args []string) error {
	st, cfg, cleanup := openStore()
	defer cleanup()

	stories := store.Stories(st).Load()
	if len(stories) == 0 {
		fmt.Println("No stories yet.")
		return nil
	}

	now := time.Now()
	for _, s := range stories {
		fmt.Printf("%s  %s — %s at %s [%s/%s] (%s)\n",
			s.ID, s.Title, s.Role, s.Company, s.StoryType, s.Status, derive.DaysAgo(s.Date, now))
		if snippet := derive.Snippet(s.Content, cfg.SnippetLength); snippet != "" {
			fmt.Printf("    %s\n", snippet)
		}
	}
	return nil
}

func runStoryShow(cmd *cobra.Command, args []string) error {
	st, _, cleanup := openStore()
	defer cleanup()

	for _, s := range store.Stories(st).Load() {
		if s.ID != args[0] {
			continue
		}
		fmt.Printf("%s\n", s.Title)
		fmt.Printf("%s at %s\n", s.Role, s.Company)
		fmt.Printf("%s  [%s/%s]\n", derive.FormatDateLong(s.Date), s.StoryType, s.Status)
		printSection("Story", s.Content)
		return nil
	}
	return fmt.Errorf("no story with id %q", args[0])
}

func runStoryEdit(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	if flags.Changed("status") && !model.ValidStatus(storyStatus) {
		return fmt.Errorf("unknown status %q, want one of %s", storyStatus, strings.Join(model.StoryStatuses, ", "))
	}
	if flags.Changed("type") && !model.ValidStoryType(storyType) {
		return fmt.Errorf("unknown story type %q, want one of %s", storyType, strings.Join(model.StoryTypes, ", "))
	}
	if flags.Changed("date") {
		if _, ok := derive.ParseDate(storyDate); !ok {
			return fmt.Errorf("invalid date %q, want YYYY-MM-DD", storyDate)
		}
	}

	st, _, cleanup := openStore()
	defer cleanup()

	found := false
	store.Stories(st).Update(func(stories []model.Story) []model.Story {
		for i := range stories {
			if stories[i].ID != args[0] {
				continue
			}
			found = true
			s := stories[i]
			if flags.Changed("title") {
				s.Title = storyTitle
			}
			if flags.Changed("company") {
				s.Company = storyCompany
			}
			if flags.Changed("role") {
				s.Role = storyRole
			}
			if flags.Changed("status") {
				s.Status = storyStatus
			}
			if flags.Changed("type") {
				s.StoryType = storyType
			}
			if flags.Changed("date") {
				s.Date = storyDate
			}
			if flags.Changed("content") {
				s.Content = storyContent
			}
			s.Normalize()
			stories[i] = s
		}
		return stories
	})
	if !found {
		return fmt.Errorf("no story with id %q", args[0])
	}

	fmt.Printf("Updated story %s\n", args[0])
	return nil
}

func runStoryRm(cmd *cobra.Command, args []string) error {
	st, _, cleanup := openStore()
	defer cleanup()

	col := store.Stories(st)
	stories := col.Load()
	kept := make([]model.Story, 0, len(stories))
	for _, s := range stories {
		if s.ID != args[0] {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(stories) {
		return fmt.Errorf("no story with id %q", args[0])
	}
	col.Save(kept)

	fmt.Printf("Removed story %s\n", args[0])
	return nil
}
