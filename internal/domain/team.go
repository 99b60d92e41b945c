package domain

import "time"

type Club struct {
	ID    int64    `json:"id"`
	Name  string   `json:"name"`
	Teams []string `json:"teams"`
}

type Team struct {
	ID           int64          `json:"id"`
	ClubName     string         `json:"clubName"`
	Name         string         `json:"name"`
	Size         int            `json:"size"` // 팀 전체 인원
	Participants []*Participant `json:"participants"`
	CreatedAt    time.Time      `json:"createdAt"`
	Version      int32          `json:"-"`
}

// Context 는 현재 선택된 (동아리, 팀) 컨텍스트를 나타낸다.
// 점수와 활동 기록은 모두 이 컨텍스트의 Key 로 구분해서 저장한다.
type Context struct {
	Club string `json:"club"`
	Team string `json:"team"`
}

func (c Context) Key() string {
	return c.Club + "/" + c.Team
}

func ParseContextKey(key string) (Context, bool) {
	for i := 0; i < len(key); i++ {
		if key[i] == '/' {
			return Context{Club: key[:i], Team: key[i+1:]}, true
		}
	}
	return Context{}, false
}
