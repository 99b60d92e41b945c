// Package catalog 은 활동 카탈로그와 난이도 점수 휴리스틱을 담당한다.
package catalog

import (
	"sort"
	"strings"

	"github.com/chinba-dev/chinba/backend/internal/domain"
)

// RecommendByMinutes 는 주어진 시간(분) 안에 끝낼 수 있는 활동만 골라
// 소요시간 오름차순으로 돌려준다. 소요시간이 같으면 카탈로그 순서를 유지한다.
func RecommendByMinutes(list []domain.Activity, minutes int) []domain.Activity {
	matched := make([]domain.Activity, 0)
	for _, a := range list {
		if a.Duration <= minutes {
			matched = append(matched, a)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Duration < matched[j].Duration
	})
	return matched
}

// 이동이 필요하다고 추정되는 교외 장소 키워드
var offCampusHints = []string{
	"보드게임카페", "영화관", "볼링장", "PC방", "문화센터", "포토부스", "맛집", "주점", "카페",
}

func hoursWindows(a domain.Activity) int {
	sum := 0
	for _, p := range a.TimePreferences {
		if span := p.EndHour - p.StartHour; span > 0 {
			sum += span
		}
	}
	return sum
}

// DifficultyScore 는 활동 하나를 얼마나 성사시키기 어려운지 [10,150] 범위의
// 정수 점수로 환산한다. 소요시간 기본 점수에 팀 구성, 조율 가능 시간대,
// 장소, 카테고리 보정을 차례로 더한 뒤 범위를 고정한다.
func DifficultyScore(a domain.Activity) int {
	// ① 기본: 소요시간
	var s int
	switch {
	case a.Duration <= 30:
		s = 30
	case a.Duration <= 60:
		s = 50
	case a.Duration <= 90:
		s = 70
	case a.Duration <= 120:
		s = 90
	default:
		s = 110
	}

	// ② 팀 구성 난도: 3명 이상 +10, 5명 이상 추가 +10, 완전 솔로면 -10
	if a.MinParticipants >= 3 {
		s += 10
	}
	if a.MinParticipants >= 5 {
		s += 10
	}
	if a.MaxParticipants == 1 {
		s -= 10
	}

	// ③ 조율 난도: 가능 시간대가 좁을수록 가산
	if avail := hoursWindows(a); avail > 0 {
		switch {
		case avail <= 2:
			s += 15
		case avail <= 4:
			s += 8
		case avail <= 6:
			s += 4
		}
	}

	// ④ 장소 난도: 이동이 필요해 보이면 +10
	for _, hint := range offCampusHints {
		if a.Location != "" && strings.Contains(a.Location, hint) {
			s += 10
			break
		}
	}

	// ⑤ 카테고리 보정
	if a.Category == "study" {
		s += 5
	}
	if a.Category == "exercise" {
		s += 5
	}

	if s < 10 {
		s = 10
	}
	if s > 150 {
		s = 150
	}
	return s
}

// DifficultyOf 는 점수를 easy/medium/hard 라벨로 바꾼다.
func DifficultyOf(score int) domain.Difficulty {
	switch {
	case score >= 100:
		return domain.DifficultyHard
	case score >= 60:
		return domain.DifficultyMedium
	default:
		return domain.DifficultyEasy
	}
}

// ActivityScore 는 활동 기록에 매길 점수를 카탈로그에서 찾는다.
// ID 우선, 없으면 이름으로 찾고, 둘 다 없으면 0 을 돌려준다.
func ActivityScore(id, name string) int {
	for _, a := range Scored {
		if id != "" && a.ID == id {
			return a.Score
		}
	}
	for _, a := range Scored {
		if name != "" && a.Name == name {
			return a.Score
		}
	}
	return 0
}
