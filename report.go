package spoofable

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// PrintOptions controls how a report is written.
type PrintOptions struct {
	// NoColor disables ANSI colors regardless of the terminal.
	NoColor bool
}

// Trace markers. "[+]" flags a weakness, "[X]" a record that was found and
// "[-]" a check that passed.
const (
	markWeak  = "[+]"
	markFound = "[X]"
	markOK    = "[-]"
)

type palette struct {
	weak, ok, bold *color.Color
}

func newPalette(opts PrintOptions) palette {
	p := palette{
		weak: color.New(color.FgRed),
		ok:   color.New(color.FgGreen),
		bold: color.New(color.Bold),
	}
	if opts.NoColor {
		p.weak.DisableColor()
		p.ok.DisableColor()
		p.bold.DisableColor()
	}
	return p
}

// Lines returns the diagnostic trace, one line per record and condition,
// ending with the verdict.
func (r *Report) Lines(opts PrintOptions) []string {
	p := newPalette(opts)
	d := r.Domain
	var lines []string

	add := func(c *color.Color, mark, format string, args ...any) {
		lines = append(lines, c.Sprint(mark)+" "+fmt.Sprintf(format, args...))
	}

	for _, f := range r.Findings {
		switch f.Condition {
		case NoSPFRecord:
			add(p.weak, markWeak, "SPF record not found for %s", d)
		case SPFMissingCatchAll:
			add(p.ok, markFound, "SPF record found: %s", r.SPF.Text)
			if f.Held {
				add(p.weak, markWeak, "%s does not contain \"-all\" or \"~all\" in the SPF record.", d)
			} else {
				add(p.ok, markOK, "%s has \"-all\" or \"~all\" in the SPF record.", d)
			}
		case NoDMARCRecord:
			add(p.weak, markWeak, "DMARC record not found for %s", d)
		case DMARCNoPolicy:
			add(p.ok, markFound, "DMARC record found: %s", r.DMARC.Text)
			add(p.weak, markWeak, "%s does not have a policy set in the DMARC record.", d)
		case DMARCPolicyNone:
			add(p.ok, markFound, "DMARC record found: %s", r.DMARC.Text)
			if f.Held {
				add(p.weak, markWeak, "%s has policy set to \"none\" in the DMARC record.", d)
			} else {
				add(p.ok, markOK, "%s has policy set to %q in the DMARC record.", d, string(r.Policy))
			}
		}
	}

	if r.Spoofable {
		lines = append(lines, p.bold.Sprint(d+" is spoofable."))
	} else {
		lines = append(lines, p.bold.Sprint(d+" is NOT spoofable."))
	}
	return lines
}

// Write writes the trace to w.
func (r *Report) Write(w io.Writer, opts PrintOptions) error {
	_, err := io.WriteString(w, strings.Join(r.Lines(opts), "\n")+"\n")
	return err
}
