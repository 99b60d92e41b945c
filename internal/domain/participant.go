package domain

// ClassEntry 는 매주 반복되는 수업 시간 하나를 나타낸다.
// Day 는 일..토 중 하나, Time 은 "HH:MM-HH:MM" 형식이다.
type ClassEntry struct {
	Subject  string `json:"subject"`
	Location string `json:"location"`
	Day      string `json:"day"`
	Time     string `json:"time"`
}

// Participant 는 팀에 소속된 조원 한 명을 나타낸다.
// ID 는 팀 안에서 유일해야 하며, 생성 이후에는 시간표 추가만 허용된다.
type Participant struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Timetable []ClassEntry `json:"timetable"`
}
