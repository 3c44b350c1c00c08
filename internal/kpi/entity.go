package kpi

type WeekCount struct {
	ThisWeek int `json:"thisWeek"`
	LastWeek int `json:"lastWeek"`
}

type CardioMiles struct {
	ThisWeek float64 `json:"thisWeek"`
	LastWeek float64 `json:"lastWeek"`
	Goal     float64 `json:"goal"`
}

// Snapshot is the weekly dashboard. OpenTasks covers the whole backlog,
// not just the current week.
type Snapshot struct {
	P0Completed    WeekCount   `json:"p0Completed"`
	CardioMiles    CardioMiles `json:"cardioMiles"`
	EventsThisWeek int         `json:"eventsThisWeek"`
	OpenTasks      int         `json:"openTasks"`
}
