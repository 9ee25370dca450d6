package mail

import (
	"bytes"
	"embed"
	htmltemplate "html/template"
	texttemplate "text/template"
)

// ResetPasswordSubject is the subject line of password reset emails.
const ResetPasswordSubject = "[Microblog] Reset Your Password"

//go:embed templates/*.tmpl
var templateFS embed.FS

var (
	textTemplates = texttemplate.Must(texttemplate.ParseFS(templateFS, "templates/*.txt.tmpl"))
	htmlTemplates = htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/*.html.tmpl"))
)

// ResetPasswordData fills the password reset templates.
type ResetPasswordData struct {
	Username string
	Link     string
	// ValidFor is a human readable lifetime of the link, e.g. "30m0s".
	ValidFor string
}

// ResetPasswordMessage renders the password reset email for to.
func ResetPasswordMessage(from, to string, data ResetPasswordData) (Message, error) {
	var text, html bytes.Buffer
	if err := textTemplates.ExecuteTemplate(&text, "reset_password.txt.tmpl", data); err != nil {
		return Message{}, err
	}
	if err := htmlTemplates.ExecuteTemplate(&html, "reset_password.html.tmpl", data); err != nil {
		return Message{}, err
	}
	return Message{
		From:     from,
		To:       []string{to},
		Subject:  ResetPasswordSubject,
		TextBody: text.String(),
		HTMLBody: html.String(),
	}, nil
}
