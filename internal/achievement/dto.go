package achievement

type IncrementRequest struct {
	Pool           Pool   `json:"pool"`
	WeekIdentifier string `json:"weekIdentifier"`
}

type LevelResponse struct {
	Level int `json:"level"`
}

type WeeklyResult struct {
	AlreadyCompleted bool `json:"alreadyCompleted"`
	Level            int  `json:"level"`
}
