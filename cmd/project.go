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
	projectTitle       string
	projectSlug        string
	projectDescription string
	projectImage       string
	projectLink        string
	projectGithub      string
	projectTech        string
	projectStart       string
	projectEnd         string
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage portfolio projects",
}

var projectAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectAdd,
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	Args:  cobra.NoArgs,
	RunE:  runProjectList,
}

var projectShowCmd = &cobra.Command{
	Use:   "show <id-or-slug>",
	Short: "Show one project in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectShow,
}

var projectEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectEdit,
}

var projectRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectRm,
}

func init() {
	projectAddCmd.Flags().StringVar(&projectSlug, "slug", "", "URL slug (default derived from title)")
	projectAddCmd.Flags().StringVar(&projectDescription, "description", "", "Project description")
	projectAddCmd.Flags().StringVar(&projectImage, "image", "", "Image URL")
	projectAddCmd.Flags().StringVar(&projectLink, "link", "", "Live link")
	projectAddCmd.Flags().StringVar(&projectGithub, "github", "", "GitHub URL")
	projectAddCmd.Flags().StringVar(&projectTech, "tech", "", "Comma-separated technologies")
	projectAddCmd.Flags().StringVar(&projectStart, "start", "", "Start date (YYYY-MM-DD)")
	projectAddCmd.Flags().StringVar(&projectEnd, "end", "", "End date (YYYY-MM-DD)")

	projectEditCmd.Flags().StringVar(&projectTitle, "title", "", "Project title")
	projectEditCmd.Flags().StringVar(&projectSlug, "slug", "", "URL slug")
	projectEditCmd.Flags().StringVar(&projectDescription, "description", "", "Project description")
	projectEditCmd.Flags().StringVar(&projectImage, "image", "", "Image URL")
	projectEditCmd.Flags().StringVar(&projectLink, "link", "", "Live link")
	projectEditCmd.Flags().StringVar(&projectGithub, "github", "", "GitHub URL")
	projectEditCmd.Flags().StringVar(&projectTech, "tech", "", "Comma-separated technologies")
	projectEditCmd.Flags().StringVar(&projectStart, "start", "", "Start date (YYYY-MM-DD)")
	projectEditCmd.Flags().StringVar(&projectEnd, "end", "", "End date (YYYY-MM-DD)")

	projectCmd.AddCommand(projectAddCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectShowCmd)
	projectCmd.AddCommand(projectEditCmd)
	projectCmd.AddCommand(projectRmCmd)
}

func runProjectAdd(cmd *cobra.Command, args []string) error {
	st, _, cleanup := openStore()
	defer cleanup()

	project := model.Project{
		ID:           derive.NewID(),
		Title:        args[0],
		Slug:         projectSlug,
		Description:  projectDescription,
		Image:        projectImage,
		Link:         projectLink,
		Github:       projectGithub,
		Technologies: parseTags(projectTech),
		StartDate:    projectStart,
		EndDate:      projectEnd,
		CreatedAt:    time.Now(),
	}
	project.Normalize()

	store.Projects(st).Update(func(projects []model.Project) []model.Project {
		return append(projects, project)
	})

	fmt.Printf("Added project %s %q (slug %s)\n", project.ID, project.Title, project.Slug)
	return nil
}

func runProjectList(cmd *cobra.Command, args []string) error {
	st, cfg, cleanup := openStore()
	defer cleanup()

	projects := store.Projects(st).Load()
	if len(projects) == 0 {
		fmt.Println("No projects yet.")
		return nil
	}

	for _, p := range projects {
		fmt.Printf("%s  %s [%s]\n", p.ID, p.Title, p.Slug)
		if len(p.Technologies) > 0 {
			fmt.Printf("    %s\n", strings.Join(p.Technologies, ", "))
		}
		if snippet := derive.Snippet(p.Description, cfg.SnippetLength); snippet != "" {
			fmt.Printf("    %s\n", snippet)
		}
	}
	return nil
}

func runProjectShow(cmd *cobra.Command, args []string) error {
	st, _, cleanup := openStore()
	defer cleanup()

	for _, p := range store.Projects(st).Load() {
		if p.ID != args[0] && p.Slug != args[0] {
			continue
		}
		fmt.Printf("%s [%s]\n", p.Title, p.Slug)
		if p.StartDate != "" || p.EndDate != "" {
			fmt.Printf("%s – %s\n", derive.FormatDate(p.StartDate), derive.FormatDate(p.EndDate))
		}
		if len(p.Technologies) > 0 {
			fmt.Printf("Technologies: %s\n", strings.Join(p.Technologies, ", "))
		}
		if p.Link != "" {
			fmt.Printf("Link: %s\n", p.Link)
		}
		if p.Github != "" {
			fmt.Printf("GitHub: %s\n", p.Github)
		}
		if p.Image != "" {
			fmt.Printf("Image: %s\n", p.Image)
		}
		printSection("Description", p.Description)
		return nil
	}
	return fmt.Errorf("no project with id or slug %q", args[0])
}

func runProjectEdit(cmd *cobra.Command, args []string) error {
	st, _, cleanup := openStore()
	defer cleanup()

	flags := cmd.Flags()
	found := false
	store.Projects(st).Update(func(projects []model.Project) []model.Project {
		for i := range projects {
			if projects[i].ID != args[0] {
				continue
			}
			found = true
			p := projects[i]
			if flags.Changed("title") {
				p.Title = projectTitle
			}
			if flags.Changed("slug") {
				p.Slug = projectSlug
			}
			if flags.Changed("description") {
				p.Description = projectDescription
			}
			if flags.Changed("image") {
				p.Image = projectImage
			}
			if flags.Changed("link") {
				p.Link = projectLink
			}
			if flags.Changed("github") {
				p.Github = projectGithub
			}
			if flags.Changed("tech") {
				p.Technologies = parseTags(projectTech)
			}
			if flags.Changed("start") {
				p.StartDate = projectStart
			}
			if flags.Changed("end") {
				p.EndDate = projectEnd
			}
			p.Normalize()
			projects[i] = p
		}
		return projects
	})
	if !found {
		return fmt.Errorf("no project with id %q", args[0])
	}

	fmt.Printf("Updated project %s\n", args[0])
	return nil
}

func runProjectRm(cmd *cobra.Command, args []string) error {
	st, _, cleanup := openStore()
	defer cleanup()

	col := store.Projects(st)
	projects := col.Load()
	kept := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		if p.ID != args[0] {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(projects) {
		return fmt.Errorf("no project with id %q", args[0])
	}
	col.Save(kept)

	fmt.Printf("Removed project %s\n", args[0])
	return nil
}
