package model

import (
	"strings"
	"time"
)

// DiaryEntry is a single dated journal entry with the five reflection prompts.
type DiaryEntry struct {
	ID           string    `json:"id"`
	Date         string    `json:"date"`
	Title        string    `json:"title"`
	Tags         []string  `json:"tags"`
	Mood         int       `json:"mood"`
	WhatHappened string    `json:"whatHappened"`
	WhatIFelt    string    `json:"whatIFelt"`
	WhatILearned string    `json:"whatILearned"`
	Question     string    `json:"question"`
	SmallWin     string    `json:"smallWin"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Semester groups the courses taken in one academic term.
type Semester struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	Courses   []Course  `json:"courses"`
	CreatedAt time.Time `json:"createdAt"`
}

// Course is embedded in a Semester and has no id of its own.
type Course struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Credits   int    `json:"credits"`
	Grade     string `json:"grade"`
	Professor string `json:"professor"`
}

// Project is a portfolio entry.
type Project struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	Link         string    `json:"link"`
	Github       string    `json:"github"`
	Technologies []string  `json:"technologies"`
	StartDate    string    `json:"startDate"`
	EndDate      string    `json:"endDate"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Story is a behavioral-interview story tied to a company and role.
type Story struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Company   string    `json:"company"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	Date      string    `json:"date"`
	StoryType string    `json:"storyType"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Mood bounds. A mood of zero means the field was absent and defaults to neutral.
const (
	MoodMin     = 1
	MoodMax     = 5
	MoodNeutral = 3
)

// MoodEmoji maps a mood score to its emoji.
var MoodEmoji = map[int]string{
	1: "😢",
	2: "😕",
	3: "😐",
	4: "🙂",
	5: "😄",
}

// MoodLabel maps a mood score to its label.
var MoodLabel = map[int]string{
	1: "Very Bad",
	2: "Bad",
	3: "Okay",
	4: "Good",
	5: "Great",
}

// Story status values.
const (
	StatusDraft     = "draft"
	StatusRefined   = "refined"
	StatusSubmitted = "submitted"
)

// Story type values.
const (
	TypeLeadership    = "leadership"
	TypeChallenge     = "challenge"
	TypeCollaboration = "collaboration"
	TypeGrowth        = "growth"
	TypeFailure       = "failure"
)

// StoryStatuses lists the valid story status values.
var StoryStatuses = []string{StatusDraft, StatusRefined, StatusSubmitted}

// StoryTypes lists the valid story type values.
var StoryTypes = []string{TypeLeadership, TypeChallenge, TypeCollaboration, TypeGrowth, TypeFailure}

// Grades lists the recognized letter grades.
var Grades = []string{"A+", "A", "A-", "B+", "B", "B-", "C+", "C", "C-", "D", "F"}

// Course credit bounds. Zero credits means the field was absent.
const (
	CreditsMin     = 1
	CreditsMax     = 4
	CreditsDefault = 3
)

// ValidGrade reports whether g is a recognized letter grade.
func ValidGrade(g string) bool {
	for _, v := range Grades {
		if g == v {
			return true
		}
	}
	return false
}

// ValidStatus reports whether s is a recognized story status.
func ValidStatus(s string) bool {
	for _, v := range StoryStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ValidStoryType reports whether s is a recognized story type.
func ValidStoryType(s string) bool {
	for _, v := range StoryTypes {
		if s == v {
			return true
		}
	}
	return false
}

// Slugify lower-cases a title and collapses whitespace runs into hyphens.
func Slugify(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), "-")
}

// Normalize clamps the mood score into [MoodMin, MoodMax], defaulting an
// absent score to neutral, and drops empty tags.
func (e *DiaryEntry) Normalize() {
	switch {
	case e.Mood == 0:
		e.Mood = MoodNeutral
	case e.Mood < MoodMin:
		e.Mood = MoodMin
	case e.Mood > MoodMax:
		e.Mood = MoodMax
	}
	tags := e.Tags[:0]
	for _, t := range e.Tags {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	e.Tags = tags
	if e.Tags == nil {
		e.Tags = []string{}
	}
}

// Normalize clamps the credit count into [CreditsMin, CreditsMax], defaulting
// an absent count.
func (c *Course) Normalize() {
	switch {
	case c.Credits == 0:
		c.Credits = CreditsDefault
	case c.Credits < CreditsMin:
		c.Credits = CreditsMin
	case c.Credits > CreditsMax:
		c.Credits = CreditsMax
	}
}

// Normalize normalizes every embedded course and ensures the course list is
// never nil.
func (s *Semester) Normalize() {
	for i := range s.Courses {
		s.Courses[i].Normalize()
	}
	if s.Courses == nil {
		s.Courses = []Course{}
	}
}

// Normalize derives the slug from the title when absent.
func (p *Project) Normalize() {
	if p.Slug == "" {
		p.Slug = Slugify(p.Title)
	}
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
}

// Normalize defaults unrecognized status and story type values.
func (s *Story) Normalize() {
	if !ValidStatus(s.Status) {
		s.Status = StatusDraft
	}
	if !ValidStoryType(s.StoryType) {
		s.StoryType = TypeLeadership
	}
}
