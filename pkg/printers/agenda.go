package printers

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/homec-dev/homec/pkg/datekey"
	"github.com/homec-dev/homec/pkg/viewmodel"
)

var slotLabels = map[datekey.Slot]string{
	datekey.Morning:   "Morning",
	datekey.Afternoon: "Afternoon",
	datekey.Evening:   "Evening",
}

// PrintAgenda renders the week one day at a time, three time-of-day slots
// per day plus the dinner line.
func (pp *PrettyPrint) PrintAgenda(week *viewmodel.Week) {
	day := color.New(color.Bold, color.Underline)
	today := color.New(color.Bold, color.Underline, color.FgHiCyan)
	slot := color.New(color.Faint)
	routine := color.New(color.Italic)
	meal := color.New(color.FgHiGreen)
	p := color.New()

	for i := range week.Days {
		d := &week.Days[i]

		printer := day
		if d.IsToday {
			printer = today
		}
		_, _ = printer.Printf("%s %s\n", d.Weekday, d.Key)

		empty := true
		for _, s := range datekey.Slots() {
			items := d.Slot(s)
			if len(items) == 0 {
				continue
			}
			empty = false
			_, _ = slot.Printf("  %s\n", slotLabels[s])
			for _, item := range items {
				line := item.Title
				if item.Time != "" && item.Kind == viewmodel.KindEvent {
					line = fmt.Sprintf("%s (%s)", line, item.Time)
				}
				switch item.Kind {
				case viewmodel.KindRoutine:
					_, _ = routine.Printf("    ~ %s\n", line)
				default:
					_, _ = p.Printf("    • %s\n", truncate(line, 60))
				}
			}
		}
		if d.Meal != nil {
			empty = false
			_, _ = meal.Printf("  Dinner: %s\n", d.Meal.Text)
		}
		if empty {
			_, _ = slot.Println("  nothing planned")
		}
		fmt.Print("\n")
	}
}
