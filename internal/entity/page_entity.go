package entity

// Page is one of the sidebar destinations.
type Page string

const (
	PageDashboard  Page = "dashboard"
	PageCourses    Page = "courses"
	PageTasks      Page = "tasks"
	PageNotes      Page = "notes"
	PageHabits     Page = "habits"
	PageGoals      Page = "goals"
	PageExams      Page = "exams"
	PageMotivation Page = "motivation"
	PageAppearance Page = "appearance"
	PageProfile    Page = "profile"
)

// Pages lists the destinations in sidebar order.
var Pages = []Page{
	PageDashboard,
	PageCourses,
	PageTasks,
	PageNotes,
	PageHabits,
	PageGoals,
	PageExams,
	PageMotivation,
	PageAppearance,
	PageProfile,
}

// ParsePage maps s to a known page, falling back to the dashboard.
func ParsePage(s string) Page {
	for _, p := range Pages {
		if string(p) == s {
			return p
		}
	}
	return PageDashboard
}

type ToastType string

const (
	ToastSuccess ToastType = "success"
	ToastError   ToastType = "error"
)

type Toast struct {
	Message string
	Type    ToastType
}

// PageDescriptor is what the shell shows for a page: sidebar label and icon,
// and the header title and subtitle.
type PageDescriptor struct {
	Label    string
	Title    string
	Subtitle string
	Icon     string
}

var pageDescriptors = map[Page]PageDescriptor{
	PageDashboard:  {Label: "Dashboard", Title: "Dashboard", Subtitle: "Welcome back!", Icon: "fa-home"},
	PageCourses:    {Label: "Courses", Title: "Courses", Subtitle: "Organize your academic courses", Icon: "fa-book"},
	PageTasks:      {Label: "Tasks", Title: "Tasks", Subtitle: "Stay on top of your assignments", Icon: "fa-tasks"},
	PageNotes:      {Label: "Notes", Title: "Notes", Subtitle: "Capture and organize your learning", Icon: "fa-sticky-note"},
	PageHabits:     {Label: "Habits", Title: "Habits", Subtitle: "Build consistent learning routines", Icon: "fa-calendar-check"},
	PageGoals:      {Label: "Goals", Title: "Goals", Subtitle: "Set and achieve your objectives", Icon: "fa-bullseye"},
	PageExams:      {Label: "Exams", Title: "Exams", Subtitle: "Manage your academic assessments", Icon: "fa-calendar-alt"},
	PageMotivation: {Label: "Motivation", Title: "Motivation", Subtitle: "Your daily dose of inspiration", Icon: "fa-brain"},
	PageAppearance: {Label: "Appearance", Title: "Appearance", Subtitle: "Customize your EduAI experience", Icon: "fa-cog"},
	PageProfile:    {Label: "Profile", Title: "Profile", Subtitle: "Manage your account information", Icon: "fa-user-cog"},
}

// Describe returns the descriptor for p. Unknown pages describe the dashboard.
func (p Page) Describe() PageDescriptor {
	if d, ok := pageDescriptors[p]; ok {
		return d
	}
	return pageDescriptors[PageDashboard]
}
