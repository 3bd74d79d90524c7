// Package derive holds the pure display computations over stored records:
// date formatting, relative-day labels, GPA, diary streaks, text snippets
// and identifier generation. Nothing here mutates its input or touches
// storage.
package derive

import (
	"crypto/rand"
	"fmt"
	"math"
	"math/big"
	"sort"
	"strconv"
	"time"

	"github.com/karvel/folio/internal/model"
)

// DateLayout is the wire format of date fields in stored records.
const DateLayout = "2006-01-02"

// InvalidDate is rendered for date strings that fail to parse.
const InvalidDate = "Invalid Date"

// ParseDate parses a stored date field. It accepts the plain date layout and
// RFC 3339 timestamps.
func ParseDate(s string) (time.Time, bool) {
	if t, err := time.ParseInLocation(DateLayout, s, time.Local); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Local(), true
	}
	return time.Time{}, false
}

// FormatDate renders a stored date as a short display date like "Jan 5, 2025".
func FormatDate(s string) string {
	t, ok := ParseDate(s)
	if !ok {
		return InvalidDate
	}
	return t.Format("Jan 2, 2006")
}

// FormatDateLong renders a stored date like "Monday, January 5, 2025".
func FormatDateLong(s string) string {
	t, ok := ParseDate(s)
	if !ok {
		return InvalidDate
	}
	return t.Format("Monday, January 2, 2006")
}

// startOfDay returns 00:00:00 of the same day.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// dayDiff returns the whole calendar days from t to now. Rounding absorbs
// the odd hour a DST transition adds or removes between the two midnights.
func dayDiff(t, now time.Time) int {
	return int(math.Round(startOfDay(now).Sub(startOfDay(t)).Hours() / 24))
}

// DaysAgo renders a stored date as a categorical relative label: "Today",
// "Yesterday", "N days ago" under a week, "N weeks ago" under a month, else
// "N months ago". The difference is calendar-day based, so an entry written
// earlier today is "Today" no matter the wall-clock gap.
func DaysAgo(s string, now time.Time) string {
	t, ok := ParseDate(s)
	if !ok {
		return InvalidDate
	}
	days := dayDiff(t, now)
	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 30:
		return fmt.Sprintf("%d weeks ago", days/7)
	default:
		return fmt.Sprintf("%d months ago", days/30)
	}
}

// gradePoints is the fixed letter-grade to grade-point table.
var gradePoints = map[string]float64{
	"A+": 4.0,
	"A":  4.0,
	"A-": 3.7,
	"B+": 3.3,
	"B":  3.0,
	"B-": 2.7,
	"C+": 2.3,
	"C":  2.0,
	"C-": 1.7,
	"D":  1.0,
	"F":  0.0,
}

// GPA computes the credit-weighted grade point average of a course list,
// rounded to two decimal places. An empty list or zero total credits yields 0.
// Unrecognized grades contribute zero points but their credits still count.
func GPA(courses []model.Course) float64 {
	if len(courses) == 0 {
		return 0
	}
	var points float64
	var credits int
	for _, c := range courses {
		points += gradePoints[c.Grade] * float64(c.Credits)
		credits += c.Credits
	}
	if credits == 0 {
		return 0
	}
	return math.Round(points/float64(credits)*100) / 100
}

// Streak returns the length of the run of consecutive calendar days, walking
// backward from now, on which a diary entry exists. A missing entry for today
// means the streak is zero.
func Streak(entries []model.DiaryEntry, now time.Time) int {
	days := make(map[string]bool, len(entries))
	for _, e := range entries {
		if t, ok := ParseDate(e.Date); ok {
			days[t.Format(DateLayout)] = true
		}
	}
	streak := 0
	for day := startOfDay(now); days[day.Format(DateLayout)]; day = day.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

// Snippet returns the first max characters of text, appending "..." when
// truncated. Empty text yields the empty string.
func Snippet(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}

// NewID returns a pseudo-unique opaque identifier: the current millisecond
// timestamp in base 36 followed by random base-36 entropy. Collision odds are
// negligible for a single-user store; this is not a distributed identifier.
func NewID() string {
	const chars = "0123456789abcdefghijklmnopqrstuvwxyz"
	suffix := make([]byte, 11)
	for i := range suffix {
		n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(chars))))
		suffix[i] = chars[n.Int64()]
	}
	return strconv.FormatInt(time.Now().UnixMilli(), 36) + string(suffix)
}

// Recent returns up to n diary entries sorted by date, newest first. The
// input list is not modified.
func Recent(entries []model.DiaryEntry, n int) []model.DiaryEntry {
	sorted := append([]model.DiaryEntry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// SemesterOverview summarizes the most recent semester for the dashboard.
type SemesterOverview struct {
	Title       string
	CourseCount int
	AvgGrade    float64
}

// CurrentSemester summarizes the last semester in the list: its course count
// and the mean grade points across graded courses. The second return value is
// false when no semester exists.
func CurrentSemester(semesters []model.Semester) (SemesterOverview, bool) {
	if len(semesters) == 0 {
		return SemesterOverview{}, false
	}
	cur := semesters[len(semesters)-1]
	ov := SemesterOverview{Title: cur.Title, CourseCount: len(cur.Courses)}
	if ov.Title == "" {
		ov.Title = "Current Semester"
	}
	var sum float64
	graded := 0
	for _, c := range cur.Courses {
		if c.Grade == "" {
			continue
		}
		graded++
		sum += gradePoints[c.Grade]
	}
	if graded > 0 {
		ov.AvgGrade = sum / float64(graded)
	}
	return ov, true
}
