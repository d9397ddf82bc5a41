package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/muesli/reflow/ansi"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69f8b99dca  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" event")
	default:
		_, _ = c.Println(" events")
	}
}

// ConflictBanner prints the unresolved-conflict notice shown above grids
// and agendas. Zero conflicts prints nothing.
func (pp *PrettyPrint) ConflictBanner(count int) {
	if count == 0 {
		return
	}
	w := color.New(color.FgHiYellow, color.Bold)
	switch count {
	case 1:
		_, _ = w.Println("⚠ 1 unresolved conflict")
	default:
		_, _ = w.Printf("⚠ %d unresolved conflicts\n", count)
	}
}

// truncate shortens s to at most width printable cells, emoji and ANSI
// aware, appending an ellipsis when it cuts.
func truncate(s string, width int) string {
	if ansi.PrintableRuneWidth(s) <= width {
		return s
	}
	var b strings.Builder
	w := 0
	for _, r := range s {
		rw := ansi.PrintableRuneWidth(string(r))
		if w+rw > width-1 {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	return b.String() + "…"
}
