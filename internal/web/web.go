// Package web renders the server-side HTML shell: the login form or the
// application frame with its sidebar, page header and chat panel.
package web

import (
	"embed"
	"html/template"
	"io"

	"ai-notetaking-be/internal/dto"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(
	template.New("web").
		Funcs(template.FuncMap{
			// Rendered chat text is escaped by the transcript renderer already
			"trusted": func(s string) template.HTML { return template.HTML(s) },
		}).
		ParseFS(templateFS, "templates/*.html"),
)

type LoginView struct {
	AppName string
	Theme   string
}

type AppView struct {
	AppName       string
	AssistantName string
	Shell         *dto.ShellResponse
	Messages      []dto.ChatMessageResponse
	ToastTTLMs    int64
}

func RenderLogin(w io.Writer, view LoginView) error {
	return templates.ExecuteTemplate(w, "login.html", view)
}

func RenderApp(w io.Writer, view AppView) error {
	return templates.ExecuteTemplate(w, "app.html", view)
}
