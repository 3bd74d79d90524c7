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
	semesterTitle string
	semesterStart string
	semesterEnd   string

	courseName      string
	courseCredits   int
	courseGrade     string
	courseProfessor string
)

var semesterCmd = &cobra.Command{
	Use:   "semester",
	Short: "Manage semesters and courses",
}

var semesterAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a semester",
	Args:  cobra.ExactArgs(1),
	RunE:  runSemesterAdd,
}

var semesterCourseCmd = &cobra.Command{
	Use:   "course <semester-id> <code>",
	Short: "Add or replace a course in a semester",
	Args:  cobra.ExactArgs(2),
	RunE:  runSemesterCourse,
}

var semesterListCmd = &cobra.Command{
	Use:   "list",
	Short: "List semesters with their GPA",
	Args:  cobra.NoArgs,
	RunE:  runSemesterList,
}

var semesterShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one semester's courses",
	Args:  cobra.ExactArgs(1),
	RunE:  runSemesterShow,
}

var semesterEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a semester's title or dates",
	Args:  cobra.ExactArgs(1),
	RunE:  runSemesterEdit,
}

var semesterRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a semester",
	Args:  cobra.ExactArgs(1),
	RunE:  runSemesterRm,
}

func init() {
	semesterAddCmd.Flags().StringVar(&semesterStart, "start", "", "Start date (YYYY-MM-DD)")
	semesterAddCmd.Flags().StringVar(&semesterEnd, "end", "", "End date (YYYY-MM-DD)")

	semesterCourseCmd.Flags().StringVar(&courseName, "name", "", "Course name")
	semesterCourseCmd.Flags().IntVar(&courseCredits, "credits", model.CreditsDefault, "Credit count 1–4")
	semesterCourseCmd.Flags().StringVar(&courseGrade, "grade", "", "Letter grade (A+ through F)")
	semesterCourseCmd.Flags().StringVar(&courseProfessor, "professor", "", "Professor name")

	semesterEditCmd.Flags().StringVar(&semesterTitle, "title", "", "Semester title")
	semesterEditCmd.Flags().StringVar(&semesterStart, "start", "", "Start date (YYYY-MM-DD)")
	semesterEditCmd.Flags().StringVar(&semesterEnd, "end", "", "End date (YYYY-MM-DD)")

	semesterCmd.AddCommand(semesterAddCmd)
	semesterCmd.AddCommand(semesterCourseCmd)
	semesterCmd.AddCommand(semesterListCmd)
	semesterCmd.AddCommand(semesterShowCmd)
	semesterCmd.AddCommand(semesterEditCmd)
	semesterCmd.AddCommand(semesterRmCmd)
}

func runSemesterAdd(cmd *cobra.Command, args []string) error {
	st, _, cleanup := openStore()
	defer cleanup()

	semester := model.Semester{
		ID:        derive.NewID(),
		Title:     args[0],
		StartDate: semesterStart,
		EndDate:   semesterEnd,
		Courses:   []model.Course{},
		CreatedAt: time.Now(),
	}
	semester.Normalize()

	store.Academics(st).Update(func(semesters []model.Semester) []model.Semester {
		return append(semesters, semester)
	})

	fmt.Printf("Added semester %s %q\n", semester.ID, semester.Title)
	return nil
}

func runSemesterCourse(cmd *cobra.Command, args []string) error {
	semesterID, code := args[0], args[1]

	if courseCredits < model.CreditsMin || courseCredits > model.CreditsMax {
		return fmt.Errorf("credits must be between %d and %d", model.CreditsMin, model.CreditsMax)
	}
	if courseGrade != "" && !model.ValidGrade(courseGrade) {
		return fmt.Errorf("unknown grade %q, want one of %s", courseGrade, strings.Join(model.Grades, ", "))
	}

	st, _, cleanup := openStore()
	defer cleanup()

	course := model.Course{
		Code:      code,
		Name:      courseName,
		Credits:   courseCredits,
		Grade:     courseGrade,
		Professor: courseProfessor,
	}
	course.Normalize()

	found := false
	store.Academics(st).Update(func(semesters []model.Semester) []model.Semester {
		for i := range semesters {
			if semesters[i].ID != semesterID {
				continue
			}
			found = true
			// Replace an existing course with the same code, else append.
			replaced := false
			for j := range semesters[i].Courses {
				if semesters[i].Courses[j].Code == code {
					semesters[i].Courses[j] = course
					replaced = true
					break
				}
			}
			if !replaced {
				semesters[i].Courses = append(semesters[i].Courses, course)
			}
		}
		return semesters
	})
	if !found {
		return fmt.Errorf("no semester with id %q", semesterID)
	}

	fmt.Printf("Recorded course %s in semester %s\n", code, semesterID)
	return nil
}

func runSemesterList(cmd *cobra.Command, args []string) error {
	st, _, cleanup := openStore()
	defer cleanup()

	semesters := store.Academics(st).Load()
	if len(semesters) == 0 {
		fmt.Println("No semesters yet.")
		return nil
	}

	for _, s := range semesters {
		fmt.Printf("%s  %s (%s – %s)\n", s.ID, s.Title, derive.FormatDate(s.StartDate), derive.FormatDate(s.EndDate))
		fmt.Printf("    %d course(s), GPA %.2f\n", len(s.Courses), derive.GPA(s.Courses))
	}
	return nil
}

func runSemesterShow(cmd *cobra.Command, args []string) error {
	st, _, cleanup := openStore()
	defer cleanup()

	for _, s := range store.Academics(st).Load() {
		if s.ID != args[0] {
			continue
		}
		fmt.Printf("%s\n", s.Title)
		fmt.Printf("%s – %s\n", derive.FormatDate(s.StartDate), derive.FormatDate(s.EndDate))
		if len(s.Courses) == 0 {
			fmt.Println("No courses recorded.")
			return nil
		}
		fmt.Println()
		for _, c := range s.Courses {
			grade := c.Grade
			if grade == "" {
				grade = "–"
			}
			fmt.Printf("%-10s %-30s %d cr  %-3s %s\n", c.Code, c.Name, c.Credits, grade, c.Professor)
		}
		fmt.Printf("\nGPA: %.2f\n", derive.GPA(s.Courses))
		return nil
	}
	return fmt.Errorf("no semester with id %q", args[0])
}

func runSemesterEdit(cmd *cobra.Command, args []string) error {
	st, _, cleanup := openStore()
	defer cleanup()

	flags := cmd.Flags()
	found := false
	store.Academics(st).Update(func(semesters []model.Semester) []model.Semester {
		for i := range semesters {
			if semesters[i].ID != args[0] {
				continue
			}
			found = true
			if flags.Changed("title") {
				semesters[i].Title = semesterTitle
			}
			if flags.Changed("start") {
				semesters[i].StartDate = semesterStart
			}
			if flags.Changed("end") {
				semesters[i].EndDate = semesterEnd
			}
		}
		return semesters
	})
	if !found {
		return fmt.Errorf("no semester with id %q", args[0])
	}

	fmt.Printf("Updated semester %s\n", args[0])
	return nil
}

func runSemesterRm(cmd *cobra.Command, args []string) error {
	st, _, cleanup := openStore()
	defer cleanup()

	col := store.Academics(st)
	semesters := col.Load()
	kept := make([]model.Semester, 0, len(semesters))
	for _, s := range semesters {
		if s.ID != args[0] {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(semesters) {
		return fmt.Errorf("no semester with id %q", args[0])
	}
	col.Save(kept)

	fmt.Printf("Removed semester %s\n", args[0])
	return nil
}
