// internal/entity/app_data_entity.go
package entity

import "strings"

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"

	DefaultTheme = ThemeDark
)

// Valid reports whether t is one of the two supported themes.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Toggled returns the opposite theme. Unknown values toggle from the default.
func (t Theme) Toggled() Theme {
	if !t.Valid() {
		t = DefaultTheme
	}
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

type Profile struct {
	Name      string `json:"name"`
	Age       string `json:"age"`
	Gender    string `json:"gender"`
	Avatar    string `json:"avatar"`
	AvatarUrl string `json:"avatarUrl"`
}

type Course struct {
	Id      string `json:"id"`
	Name    string `json:"name"`
	Code    string `json:"code"`
	Website string `json:"website"`
}

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "inprogress"
	TaskStatusDone       TaskStatus = "done"
)

type Task struct {
	Id          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CourseId    string     `json:"courseId"`
	Status      TaskStatus `json:"status"`
}

type Note struct {
	Id      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type Habit struct {
	Id            string  `json:"id"`
	Name          string  `json:"name"`
	Streak        int     `json:"streak"`
	LastCompleted *string `json:"lastCompleted"`
}

type Goal struct {
	Id          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	TargetDate  string `json:"targetDate"`
	Progress    int    `json:"progress"`
}

type AssessmentType string

const (
	AssessmentTypeExam AssessmentType = "exam"
	AssessmentTypeQuiz AssessmentType = "quiz"
)

type Assessment struct {
	Id        string         `json:"id"`
	CourseId  string         `json:"courseId"`
	Type      AssessmentType `json:"type"`
	Date      string         `json:"date"`
	StartTime string         `json:"startTime"`
	Duration  int            `json:"duration"` // minutes
	Notes     string         `json:"notes"`
	Conflict  bool           `json:"conflict"`
}

type Settings struct {
	Theme Theme `json:"theme"`
}

// AppData is the whole per-user document. Its identity is the username it is stored under.
type AppData struct {
	Profile     Profile      `json:"profile"`
	Courses     []Course     `json:"courses"`
	Tasks       []Task       `json:"tasks"`
	Notes       []Note       `json:"notes"`
	Habits      []Habit      `json:"habits"`
	Goals       []Goal       `json:"goals"`
	Assessments []Assessment `json:"assessments"`
	Settings    Settings     `json:"settings"`
}

// NewDefaultAppData builds the document seeded on a username's first login.
func NewDefaultAppData(username string) *AppData {
	return &AppData{
		Profile: Profile{
			Name:   username,
			Avatar: AvatarInitial(username),
		},
		Courses:     []Course{},
		Tasks:       []Task{},
		Notes:       []Note{},
		Habits:      []Habit{},
		Goals:       []Goal{},
		Assessments: []Assessment{},
		Settings:    Settings{Theme: DefaultTheme},
	}
}

// AvatarInitial returns the uppercased first character of name, or "" for an empty name.
func AvatarInitial(name string) string {
	for _, r := range name {
		return strings.ToUpper(string(r))
	}
	return ""
}

// Normalize replaces nil collections with empty ones so documents written by
// older clients still encode their lists as [].
func (d *AppData) Normalize() {
	if d.Courses == nil {
		d.Courses = []Course{}
	}
	if d.Tasks == nil {
		d.Tasks = []Task{}
	}
	if d.Notes == nil {
		d.Notes = []Note{}
	}
	if d.Habits == nil {
		d.Habits = []Habit{}
	}
	if d.Goals == nil {
		d.Goals = []Goal{}
	}
	if d.Assessments == nil {
		d.Assessments = []Assessment{}
	}
}
