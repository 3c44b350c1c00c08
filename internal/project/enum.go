package project

type ProjectStatus string

const (
	NOT_INITIALIZED ProjectStatus = "NOT_INITIALIZED"
	IN_PROGRESS     ProjectStatus = "IN_PROGRESS"
	COMPLETED       ProjectStatus = "COMPLETED"
)

var AllStatuses = []ProjectStatus{
	NOT_INITIALIZED,
	IN_PROGRESS,
	COMPLETED,
}

func (s ProjectStatus) IsValid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// statusOf derives a project's status from its milestones: nothing started
// or completed yet, some progress, or every milestone completed.
func statusOf(milestones map[string]Milestone) ProjectStatus {
	if len(milestones) == 0 {
		return NOT_INITIALIZED
	}

	started, completed := 0, 0
	for _, m := range milestones {
		switch {
		case m.IsComplete():
			completed++
		case m.StartDate != "":
			started++
		}
	}

	switch {
	case completed == len(milestones):
		return COMPLETED
	case completed > 0 || started > 0:
		return IN_PROGRESS
	default:
		return NOT_INITIALIZED
	}
}
