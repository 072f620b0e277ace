package ci

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/gantry-run/gantry/pkg/commitlint"
)

// Reporter writes lint results to the CI surfaces: a markdown step summary
// (when running under GitHub Actions), a human diagnostic stream, and an
// optional rendered-markdown terminal view for local runs.
type Reporter struct {
	// Out receives plain diagnostics; usually stderr.
	Out io.Writer
	// Summary receives the markdown explanation; nil disables it.
	Summary io.Writer
	// Render renders markdown for a terminal; nil prints nothing extra.
	Render func(string) (string, error)
	// TTY receives rendered markdown; usually stdout.
	TTY io.Writer

	profile termenv.Profile
}

// NewReporter wires the default surfaces: stderr for diagnostics, the
// $GITHUB_STEP_SUMMARY file when set, and glamour rendering when stdout is a
// terminal.
func NewReporter() *Reporter {
	r := &Reporter{
		Out:     os.Stderr,
		TTY:     os.Stdout,
		profile: termenv.ColorProfile(),
	}

	if path := os.Getenv("GITHUB_STEP_SUMMARY"); path != "" {
		if f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
			r.Summary = f
		}
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		if renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle()); err == nil {
			r.Render = renderer.Render
		}
	}

	return r
}

// Close releases the step-summary file when one was opened. Reporters built
// by hand with plain writers close nothing.
func (r *Reporter) Close() error {
	if c, ok := r.Summary.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Success reports a passing title.
func (r *Reporter) Success(title string) {
	mark := termenv.String("✓").Foreground(r.profile.Color("#22c55e"))
	fmt.Fprintf(r.Out, "%s PR title ok: %s\n", mark, title)
}

// Failure reports a failing title on every configured surface.
func (r *Reporter) Failure(title string, v *commitlint.Violation, rules commitlint.Rules) {
	mark := termenv.String("✗").Foreground(r.profile.Color("#ef4444"))
	fmt.Fprintf(r.Out, "%s invalid PR title: %s\n", mark, v.Error())

	md := failureMarkdown(title, v, rules)
	if r.Summary != nil {
		fmt.Fprintln(r.Summary, md)
	}
	if r.Render != nil && r.TTY != nil {
		if rendered, err := r.Render(md); err == nil {
			fmt.Fprint(r.TTY, rendered)
		}
	}
}

// failureMarkdown builds the step-summary explanation, including the fixed
// list of valid types and the scope constraints.
func failureMarkdown(title string, v *commitlint.Violation, rules commitlint.Rules) string {
	var b strings.Builder
	b.WriteString("## PR title check failed\n\n")
	fmt.Fprintf(&b, "`%s`\n\n", title)
	fmt.Fprintf(&b, "**Problem:** %s\n\n", v.Error())
	b.WriteString("Titles must follow `type(scope): subject`:\n\n")
	fmt.Fprintf(&b, "- Valid types: %s\n", backticked(rules.Types))
	fmt.Fprintf(&b, "- Valid scopes: %s (optional)\n", backticked(rules.Scopes))
	fmt.Fprintf(&b, "- Scope: at most %d characters from `a-z`, `0-9`, space and hyphen\n", rules.MaxScope)
	fmt.Fprintf(&b, "- Subject: non-empty, at most %d characters\n", rules.MaxSubject)
	b.WriteString("\nMerge commits (`Merge ...`) are exempt.\n")
	return b.String()
}

func backticked(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "`" + v + "`"
	}
	return strings.Join(quoted, ", ")
}
