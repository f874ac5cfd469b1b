// Package report renders found keys and catalog statistics.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"golang.org/x/term"

	translate "github.com/thePortus/djangularjs-translate"
)

const (
	bold  = "\033[1m"
	red   = "\033[31m"
	green = "\033[32m"
	reset = "\033[0m"
)

// Printer writes human readable reports. Colors are only used when writing to a terminal.
type Printer struct {
	w     io.Writer
	color bool
}

func New(w io.Writer) *Printer {
	color := false
	if f, ok := w.(*os.File); ok {
		color = term.IsTerminal(int(f.Fd()))
	}

	return &Printer{w: w, color: color}
}

func (p *Printer) paint(style, s string) string {
	if !p.color {
		return s
	}

	return style + s + reset
}

// Keys prints one key per line.
func (p *Printer) Keys(keys []string) error {
	for _, key := range keys {
		if _, err := fmt.Fprintln(p.w, key); err != nil {
			return err
		}
	}

	return nil
}

// Modules prints the keys of every module below a header, modules sorted by name.
// Keys outside of a module are listed under "(root)".
func (p *Printer) Modules(modules map[string][]string) error {
	names := make([]string, 0, len(modules))
	for name, keys := range modules {
		if len(keys) > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for i, name := range names {
		if i > 0 {
			if _, err := fmt.Fprintln(p.w); err != nil {
				return err
			}
		}

		header := name
		if header == "" {
			header = "(root)"
		}

		if _, err := fmt.Fprintf(p.w, "%s (%d)\n", p.paint(bold, header), len(modules[name])); err != nil {
			return err
		}

		for _, key := range modules[name] {
			if _, err := fmt.Fprintf(p.w, "  %s\n", key); err != nil {
				return err
			}
		}
	}

	return nil
}

// Stats prints the report of a single catalog. The obsolete keys are listed when obsoletes is set.
func (p *Printer) Stats(name string, r translate.Report, obsoletes bool) error {
	if _, err := fmt.Fprintln(p.w, p.paint(bold, name)); err != nil {
		return err
	}

	rows := []struct {
		label string
		count int
		style string
	}{
		{"used", r.Used, ""},
		{"new", r.New, green},
		{"obsolete", r.Obsolete, red},
		{"empty", r.Empty, red},
	}

	for _, row := range rows {
		count := fmt.Sprintf("%5d", row.count)
		if row.count > 0 && row.style != "" {
			count = p.paint(row.style, count)
		}

		if _, err := fmt.Fprintf(p.w, "  %-10s %s\n", row.label+":", count); err != nil {
			return err
		}
	}

	if !obsoletes {
		return nil
	}

	for _, key := range r.ObsoletesList {
		if _, err := fmt.Fprintf(p.w, "  - %s\n", p.paint(red, key)); err != nil {
			return err
		}
	}

	return nil
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("unable to encode report: %w", err)
	}

	return nil
}
