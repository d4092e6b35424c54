package handlers

import (
	_ "embed"
	"html/template"
)

//go:embed templates/bootstrap.html
var bootstrapPageHTML string

//go:embed templates/error.html
var errorPageHTML string

var bootstrapPageTemplate = template.Must(template.New("bootstrap").Parse(bootstrapPageHTML))
var errorPageTemplate = template.Must(template.New("error").Parse(errorPageHTML))

// bootstrapPageData drives the post-callback page that copies the internal
// token into client-side storage before navigating. The delay gives the
// synchronous localStorage writes time to settle in environments where the
// HTTP-only cookie alone is not enough for client-side API calls.
type bootstrapPageData struct {
	Token      string
	UserJSON   string
	RedirectTo string
	DelayMs    int
}

type errorPageData struct {
	Code         string
	SigninURL    string
	DelaySeconds int
}
