package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/homec-dev/homec/pkg/viewmodel"
)

const gridWidth = len("Su Mo Tu We Th Fr Sa")

// PrintGridCompact renders the month as a compact day matrix, day numbers
// bold when the cell carries events.
func (pp *PrettyPrint) PrintGridCompact(grid *viewmodel.MonthGrid) {
	tf := color.New(color.FgWhite, color.Italic)
	mid := (gridWidth - len(grid.Name)) / 2
	if mid < 0 {
		mid = 0
	}
	tf.Printf("%s%s\n", strings.Repeat(" ", mid), grid.Name)
	fmt.Println("Su Mo Tu We Th Fr Sa")

	quiet := color.New(color.Faint, color.FgWhite)
	busy := color.New(color.Bold, color.FgHiWhite)
	today := color.New(color.Bold, color.FgHiCyan, color.Underline)

	col := 0
	for _, cell := range grid.Cells {
		if cell.Blank() {
			fmt.Print("   ")
		} else {
			printer := quiet
			if len(cell.Events) > 0 || cell.MoreCount > 0 {
				printer = busy
			}
			if cell.IsToday {
				printer = today
			}
			_, _ = printer.Printf("%2d", cell.Day)
			fmt.Print(" ")
		}
		col++
		if col == 7 {
			col = 0
			fmt.Print("\n")
		}
	}
	if col != 0 {
		fmt.Print("\n")
	}
	fmt.Print("\n")
}

// PrintGridLong renders one line per day with its event chips and the
// "+N more" marker for overflowing days.
func (pp *PrettyPrint) PrintGridLong(grid *viewmodel.MonthGrid) {
	pp.Title(grid.Name)

	p := color.New()
	b := color.New(color.Bold)
	faint := color.New(color.Faint)
	accent := color.New(color.FgHiRed)

	for _, cell := range grid.Cells {
		if cell.Blank() {
			continue
		}
		dayPrinter := p
		if cell.IsToday {
			dayPrinter = b
		}
		_, _ = dayPrinter.Printf("%2d", cell.Day)
		if cell.Accent != "" {
			_, _ = accent.Printf(" %s", cell.Accent)
		}
		if len(cell.Events) == 0 {
			fmt.Print("\n")
			continue
		}
		fmt.Print("  ")
		for i, chip := range cell.Events {
			if i > 0 {
				fmt.Print("; ")
			}
			if chip.Icon != "" {
				fmt.Printf("%s ", chip.Icon)
			}
			fmt.Print(truncate(chip.Title, 40))
			if chip.Time != "" {
				_, _ = faint.Printf(" (%s)", chip.Time)
			}
		}
		if cell.MoreCount > 0 {
			_, _ = faint.Printf(" +%d more", cell.MoreCount)
		}
		fmt.Print("\n")
	}
	fmt.Print("\n")
}
