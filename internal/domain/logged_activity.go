package domain

import "time"

// LoggedActivity 는 팀이 실제로 수행한 활동의 기록이다.
// 추가/수정/삭제 시 팀의 점수와 TeamMeta 누적치가 함께 갱신되어야 한다.
type LoggedActivity struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"` // YYYY-MM-DD
	Title       string    `json:"title"`
	Headcount   int       `json:"headcount"`
	Duration    int       `json:"duration,omitempty"` // 분
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Score       int       `json:"score"`
	CreatedAt   time.Time `json:"createdAt"`
	Version     int32     `json:"-"`
}
