package domain

import "time"

// PersonalSchedule 은 특정 날짜에만 적용되는 일회성 개인 일정을 나타낸다.
// 수업 시간표와 달리 매주 반복되지 않고, 날짜를 요일로 환산해서 시간표에 겹쳐진다.
type PersonalSchedule struct {
	ID        string    `json:"id"`
	MemberID  string    `json:"memberId"`
	Title     string    `json:"title"`
	Date      string    `json:"date"` // YYYY-MM-DD
	StartHour int       `json:"startHour"`
	EndHour   int       `json:"endHour"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ValidTimeRange 는 startHour < endHour 이고 둘 다 [0,24] 범위인지 확인한다.
func (s *PersonalSchedule) ValidTimeRange() bool {
	return s.StartHour >= 0 && s.EndHour <= 24 && s.StartHour < s.EndHour
}
