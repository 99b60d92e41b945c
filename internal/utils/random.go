package utils

import (
	"fmt"
	"math/rand"

	"github.com/chinba-dev/chinba/backend/internal/domain"
	"github.com/chinba-dev/chinba/backend/internal/timetable"
)

var commonSurnames = []string{
	"김", "이", "박", "최", "정", "강", "조", "윤", "장", "임",
	"한", "오", "서", "신", "권", "황", "안", "송", "전", "홍",
}
var commonNameSyllables = []string{
	"민", "서", "지", "현", "준", "우", "하", "은", "수", "연",
	"도", "윤", "예", "진", "채", "주", "승", "재", "영", "아",
}

func GenerateRandomKoreanName() string {
	name := commonSurnames[rand.Intn(len(commonSurnames))]
	for i := 0; i < 2; i++ {
		name += commonNameSyllables[rand.Intn(len(commonNameSyllables))]
	}
	return name
}

var sampleSubjects = []string{
	"자료구조", "운영체제", "미적분학", "일반물리학", "경영학원론",
	"교양영어", "데이터베이스", "심리학개론", "컴퓨터네트워크", "선형대수",
}
var sampleLocations = []string{
	"공학관 201", "자연관 105", "인문관 302", "경영관 410", "정보관 B102",
}

// 주말 수업은 드물어서 월~금만 쓴다
var weekdayPool = []string{"월", "화", "수", "목", "금"}

// GenerateRandomTimetable 은 시드용 가짜 주간 시간표를 만든다.
// 분석 창 안에 들어가는 1~2시간짜리 수업 entryCount 개를 만든다.
func GenerateRandomTimetable(entryCount int) []domain.ClassEntry {
	entries := make([]domain.ClassEntry, 0, entryCount)
	for i := 0; i < entryCount; i++ {
		start := timetable.WindowStartHour + rand.Intn(timetable.WindowEndHour-timetable.WindowStartHour-2)
		end := start + 1 + rand.Intn(2)

		entries = append(entries, domain.ClassEntry{
			Subject:  sampleSubjects[rand.Intn(len(sampleSubjects))],
			Location: sampleLocations[rand.Intn(len(sampleLocations))],
			Day:      weekdayPool[rand.Intn(len(weekdayPool))],
			Time:     fmt.Sprintf("%02d:00-%02d:00", start, end),
		})
	}
	return entries
}

// GenerateRandomParticipant 는 시드용 조원 한 명을 만든다.
func GenerateRandomParticipant(id string) *domain.Participant {
	return &domain.Participant{
		ID:        id,
		Name:      GenerateRandomKoreanName(),
		Timetable: GenerateRandomTimetable(rand.Intn(4) + 2),
	}
}
