package derive_test

import (
	"math"
	"testing"
	"time"

	"github.com/karvel/folio/internal/derive"
	"github.com/karvel/folio/internal/model"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2025-01-05", "Jan 5, 2025"},
		{"2026-12-31", "Dec 31, 2026"},
		{"not-a-date", "Invalid Date"},
		{"", "Invalid Date"},
	}
	for _, tt := range tests {
		got := derive.FormatDate(tt.in)
		if got != tt.want {
			t.Errorf("FormatDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDateLong(t *testing.T) {
	got := derive.FormatDateLong("2025-01-05")
	want := "Sunday, January 5, 2025"
	if got != want {
		t.Errorf("FormatDateLong = %q, want %q", got, want)
	}
	if derive.FormatDateLong("nope") != "Invalid Date" {
		t.Errorf("FormatDateLong on bad input should render Invalid Date")
	}
}

func TestDaysAgo(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 30, 0, 0, time.Local)
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format(derive.DateLayout)
	}

	tests := []struct {
		in   string
		want string
	}{
		{day(0), "Today"},
		{day(2), "Today"}, // future dates clamp to today
		{day(-1), "Yesterday"},
		{day(-3), "3 days ago"},
		{day(-6), "6 days ago"},
		{day(-7), "1 weeks ago"},
		{day(-8), "1 weeks ago"},
		{day(-14), "2 weeks ago"},
		{day(-29), "4 weeks ago"},
		{day(-30), "1 months ago"},
		{day(-65), "2 months ago"},
		{"garbage", "Invalid Date"},
	}
	for _, tt := range tests {
		got := derive.DaysAgo(tt.in, now)
		if got != tt.want {
			t.Errorf("DaysAgo(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDaysAgoIgnoresTimeOfDay(t *testing.T) {
	// An entry dated today is "Today" even just after midnight, when the
	// elapsed time since its creation may be nearly a full day.
	now := time.Date(2026, 3, 15, 0, 5, 0, 0, time.Local)
	if got := derive.DaysAgo("2026-03-15", now); got != "Today" {
		t.Errorf("DaysAgo just after midnight = %q, want %q", got, "Today")
	}
	if got := derive.DaysAgo("2026-03-14", now); got != "Yesterday" {
		t.Errorf("DaysAgo for previous calendar day = %q, want %q", got, "Yesterday")
	}
}

func TestGPA(t *testing.T) {
	tests := []struct {
		name    string
		courses []model.Course
		want    float64
	}{
		{"empty", []model.Course{}, 0},
		{"nil", nil, 0},
		{
			"a and b",
			[]model.Course{
				{Code: "CS101", Credits: 3, Grade: "A"},
				{Code: "MA201", Credits: 3, Grade: "B"},
			},
			3.5,
		},
		{"single f", []model.Course{{Credits: 4, Grade: "F"}}, 0},
		{"a minus", []model.Course{{Credits: 3, Grade: "A-"}}, 3.7},
		{"zero credits", []model.Course{{Credits: 0, Grade: "A"}}, 0},
		{
			// Unknown grades are worth zero points but their credits count.
			"unknown grade",
			[]model.Course{
				{Credits: 3, Grade: "A"},
				{Credits: 3, Grade: "X"},
			},
			2.0,
		},
		{
			"weighted",
			[]model.Course{
				{Credits: 4, Grade: "A"},
				{Credits: 1, Grade: "C"},
			},
			3.6,
		},
	}
	for _, tt := range tests {
		got := derive.GPA(tt.courses)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("GPA(%s) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestStreak(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 30, 0, 0, time.Local)
	entry := func(offset int) model.DiaryEntry {
		return model.DiaryEntry{Date: now.AddDate(0, 0, offset).Format(derive.DateLayout)}
	}

	tests := []struct {
		name    string
		entries []model.DiaryEntry
		want    int
	}{
		{"empty", nil, 0},
		{"today and yesterday", []model.DiaryEntry{entry(0), entry(-1)}, 2},
		{"gap on yesterday", []model.DiaryEntry{entry(0), entry(-2)}, 1},
		{"no entry today", []model.DiaryEntry{entry(-1), entry(-2)}, 0},
		{"three days", []model.DiaryEntry{entry(-2), entry(0), entry(-1)}, 3},
		{"duplicate days count once", []model.DiaryEntry{entry(0), entry(0), entry(-1)}, 2},
		{"unparseable dates ignored", []model.DiaryEntry{{Date: "bad"}, entry(0)}, 1},
	}
	for _, tt := range tests {
		got := derive.Streak(tt.entries, now)
		if got != tt.want {
			t.Errorf("Streak(%s) = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestSnippet(t *testing.T) {
	tests := []struct {
		text string
		max  int
		want string
	}{
		{"hello world", 5, "hello..."},
		{"hi", 5, "hi"},
		{"hello", 5, "hello"},
		{"", 5, ""},
	}
	for _, tt := range tests {
		got := derive.Snippet(tt.text, tt.max)
		if got != tt.want {
			t.Errorf("Snippet(%q, %d) = %q, want %q", tt.text, tt.max, got, tt.want)
		}
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool, 10000)
	for i := 0; i < 10000; i++ {
		id := derive.NewID()
		if id == "" {
			t.Fatal("NewID returned empty string")
		}
		if seen[id] {
			t.Fatalf("duplicate id after %d calls: %q", i+1, id)
		}
		seen[id] = true
	}
}

func TestRecent(t *testing.T) {
	entries := []model.DiaryEntry{
		{ID: "b", Date: "2026-03-13"},
		{ID: "c", Date: "2026-03-15"},
		{ID: "a", Date: "2026-03-10"},
	}

	got := derive.Recent(entries, 2)
	if len(got) != 2 {
		t.Fatalf("Recent returned %d entries, want 2", len(got))
	}
	if got[0].ID != "c" || got[1].ID != "b" {
		t.Errorf("Recent order = [%s %s], want [c b]", got[0].ID, got[1].ID)
	}

	// Input order must be untouched.
	if entries[0].ID != "b" || entries[1].ID != "c" || entries[2].ID != "a" {
		t.Error("Recent modified its input")
	}
}

func TestCurrentSemester(t *testing.T) {
	if _, ok := derive.CurrentSemester(nil); ok {
		t.Error("CurrentSemester on empty list should report false")
	}

	semesters := []model.Semester{
		{ID: "old", Title: "Fall 2025"},
		{
			ID:    "cur",
			Title: "Spring 2026",
			Courses: []model.Course{
				{Code: "CS101", Credits: 3, Grade: "A"},
				{Code: "MA201", Credits: 4, Grade: "B"},
				{Code: "PE100", Credits: 1}, // ungraded, excluded from the mean
			},
		},
	}
	ov, ok := derive.CurrentSemester(semesters)
	if !ok {
		t.Fatal("CurrentSemester reported no semester")
	}
	if ov.Title != "Spring 2026" {
		t.Errorf("Title = %q, want %q", ov.Title, "Spring 2026")
	}
	if ov.CourseCount != 3 {
		t.Errorf("CourseCount = %d, want 3", ov.CourseCount)
	}
	if math.Abs(ov.AvgGrade-3.5) > 1e-9 {
		t.Errorf("AvgGrade = %v, want 3.5", ov.AvgGrade)
	}

	ov, _ = derive.CurrentSemester([]model.Semester{{ID: "x"}})
	if ov.Title != "Current Semester" || ov.CourseCount != 0 || ov.AvgGrade != 0 {
		t.Errorf("untitled empty semester overview = %+v", ov)
	}
}
