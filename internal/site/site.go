// Package site renders the pages of the website: the landing page, which advertises the latest release, and the
// manual pages, whose content is fetched per version by the manual package.
package site

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/denotw/website/internal/model"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("").ParseFS(templateFS, "templates/*.html.tmpl"))

const (
	tmplIndex  = "index.html.tmpl"
	tmplManual = "manual.html.tmpl"
	tmplError  = "error.html.tmpl"
)

// InstallMethod is one way of installing the runtime shown on the landing page
type InstallMethod struct {
	Label    string
	Platform string
	Link     string
	Command  string
}

var installMethods = []InstallMethod{
	{Label: "Shell", Platform: "Mac, Linux", Command: "curl -fsSL https://deno.land/x/install/install.sh | sh"},
	{Label: "PowerShell", Platform: "Windows", Command: "iwr https://deno.land/x/install/install.ps1 -useb | iex"},
	{Label: "Homebrew", Platform: "Mac", Link: "https://formulae.brew.sh/formula/deno", Command: "brew install deno"},
	{Label: "Chocolatey", Platform: "Windows", Link: "https://chocolatey.org/packages/deno", Command: "choco install deno"},
	{Label: "Scoop", Platform: "Windows", Link: "https://scoop.sh/", Command: "scoop install deno"},
	{Label: "Cargo", Link: "https://crates.io/crates/deno", Command: "cargo install deno"},
}

const welcomeExample = "deno run https://deno.land/std/examples/welcome.ts"

const serverExampleFmt = `import { serve } from "https://deno.land/std@%s/http/server.ts";
const s = serve({ port: 8000 });
console.log("http://localhost:8000/");
for await (const req of s) {
  req.respond({ body: "Hello World\n" });
}`

// Landing is the data the landing page is rendered from
type Landing struct {
	LatestCLI      string
	LatestStd      string
	WelcomeExample string
	ServerExample  string
	InstallMethods []InstallMethod
}

// NewLanding selects the latest versions of the manifest and prepares the example snippets
func NewLanding(m model.Manifest) (Landing, error) {
	latestCLI, err := m.CLI.Latest()
	if err != nil {
		return Landing{}, fmt.Errorf("cli versions: %w", err)
	}
	latestStd, err := m.Std.Latest()
	if err != nil {
		return Landing{}, fmt.Errorf("std versions: %w", err)
	}
	return Landing{
		LatestCLI:      latestCLI,
		LatestStd:      latestStd,
		WelcomeExample: welcomeExample,
		ServerExample:  fmt.Sprintf(serverExampleFmt, latestStd),
		InstallMethods: installMethods,
	}, nil
}

func RenderIndex(w io.Writer, l Landing) error {
	return templates.ExecuteTemplate(w, tmplIndex, l)
}

// ErrorPage is shown instead of a manual page that could not be retrieved
type ErrorPage struct {
	Status int
	Title  string
	Detail string
}

func RenderError(w io.Writer, p ErrorPage) error {
	return templates.ExecuteTemplate(w, tmplError, p)
}
