package event

// Conflict is an advisory record about overlapping or competing events.
// It never blocks a mutation; resolution state changes only by editing the
// dataset, not by dismissing the display notice.
type Conflict struct {
	ID             string   `json:"id,omitempty"`
	Dates          []string `json:"dates,omitempty"`
	Issue          string   `json:"issue"`
	AffectedEvents []string `json:"affectedEvents,omitempty"`
	Severity       string   `json:"severity,omitempty"`
	Resolution     string   `json:"resolution,omitempty"`
	Suggestions    []string `json:"suggestions,omitempty"`
	Resolved       bool     `json:"resolved"`
}

// PrepTask is a deadline-tagged preparation item aggregated across the
// dataset for the list view.
type PrepTask struct {
	Deadline string `json:"deadline"`
	Task     string `json:"task"`
	Category string `json:"category,omitempty"`
	Priority string `json:"priority,omitempty"`
}

// Milestone is a month-level marker shown alongside the grid.
type Milestone struct {
	Date     string `json:"date"`
	Title    string `json:"title"`
	Category string `json:"category,omitempty"`
	Icon     string `json:"icon,omitempty"`
}

// Aspiration is an unscheduled "want to do" item attached to a month.
type Aspiration struct {
	ID         string `json:"id,omitempty"`
	Title      string `json:"title"`
	Category   string `json:"category,omitempty"`
	TimeNeeded string `json:"timeNeeded,omitempty"`
	TargetDate string `json:"targetDate,omitempty"`
	IdealWeek  string `json:"idealWeek,omitempty"`
	Status     string `json:"status,omitempty"`
	Priority   string `json:"priority,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// Unscheduled reports whether the aspiration still needs a slot.
func (a Aspiration) Unscheduled() bool {
	return a.Status == "unscheduled"
}
