// SPDX-License-Identifier: MIT

package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/Niceman228/matrix-task-status-diagnostics/analysis"
)

// DefaultSubsetLimit is how many maximal subsets are listed before the
// remainder is summarized.
const DefaultSubsetLimit = 10

// ErrUnknownFormat is returned by ParseFormat and Write.
var ErrUnknownFormat = errors.New("report: unknown format")

// ErrNilReport is returned when a nil report is rendered.
var ErrNilReport = errors.New("report: nil report")

// Format names an output format.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
)

// ParseFormat accepts the format names and the aliases "md" and "txt".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt", "":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

const panicSubsetLimitInvalid = "report: WithSubsetLimit: limit must be ≥ 1"

// Option configures rendering.
type Option func(*Options)

// Options holds rendering settings.
type Options struct {
	subsetLimit int
}

// WithSubsetLimit caps the listed maximal subsets. It panics when n < 1.
func WithSubsetLimit(n int) Option {
	if n < 1 {
		panic(panicSubsetLimitInvalid)
	}

	return func(o *Options) { o.subsetLimit = n }
}

func gatherOptions(opts []Option) Options {
	o := Options{subsetLimit: DefaultSubsetLimit}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// Write renders rep to w in format f.
func Write(w io.Writer, rep *analysis.Report, f Format, opts ...Option) error {
	switch f {
	case FormatText:
		return Text(w, rep, opts...)
	case FormatMarkdown:
		return Markdown(w, rep, opts...)
	case FormatHTML:
		return HTML(w, rep, opts...)
	case FormatJSON:
		return JSON(w, rep)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// Text renders rep as plain text.
func Text(w io.Writer, rep *analysis.Report, opts ...Option) error {
	return render(w, rep, plainStyle{}, gatherOptions(opts))
}

// Markdown renders rep as Markdown.
func Markdown(w io.Writer, rep *analysis.Report, opts ...Option) error {
	return render(w, rep, markdownStyle{}, gatherOptions(opts))
}

// HTML renders rep as a complete HTML page.
func HTML(w io.Writer, rep *analysis.Report, opts ...Option) error {
	var md bytes.Buffer
	if err := Markdown(&md, rep, opts...); err != nil {
		return err
	}

	p := parser.NewWithExtensions(parser.CommonExtensions)
	r := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.CompletePage,
		Title: Title(rep.Mode),
	})
	_, err := w.Write(markdown.ToHTML(md.Bytes(), p, r))

	return err
}

// JSON writes rep as indented JSON.
func JSON(w io.Writer, rep *analysis.Report) error {
	if rep == nil {
		return ErrNilReport
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(rep)
}

// Title is the heading used for mode.
func Title(mode analysis.Mode) string {
	switch mode {
	case analysis.ModeStatus:
		return "Design problem status"
	case analysis.ModePair:
		return "Correctness of the pair (I, T)"
	case analysis.ModeLink:
		return "Information link between operations"
	default:
		return "Deficit analysis"
	}
}
