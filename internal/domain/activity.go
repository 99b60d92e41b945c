package domain

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type TimePreference struct {
	StartHour int     `json:"startHour"`
	EndHour   int     `json:"endHour"`
	Weight    float64 `json:"weight"`
}

// Activity 는 추천 카탈로그에 실리는 활동 하나를 나타낸다.
// Score 와 Difficulty 는 카탈로그를 만들 때 한 번만 계산해서 채운다.
type Activity struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Category        string           `json:"category"`
	Duration        int              `json:"duration"` // 분
	MinParticipants int              `json:"minParticipants"`
	MaxParticipants int              `json:"maxParticipants,omitempty"` // 0 이면 제한 없음
	Location        string           `json:"location,omitempty"`
	Description     string           `json:"description,omitempty"`
	TimePreferences []TimePreference `json:"timePreferences,omitempty"`
	Score           int              `json:"score,omitempty"`
	Difficulty      Difficulty       `json:"difficulty,omitempty"`
	Emoji           string           `json:"emoji,omitempty"`
}
