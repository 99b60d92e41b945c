// Package timetable 은 조원들의 주간 시간표와 개인 일정을 겹쳐서
// 시간대별 점유 현황을 만들고, 거기서 공강 구간을 뽑아내는 순수 계산을 담당한다.
// 모든 함수는 부수효과가 없으므로 상태가 바뀔 때마다 전체를 다시 계산해도 안전하다.
package timetable

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/chinba-dev/chinba/backend/internal/domain"
)

// Days 는 요일 라벨이다. 인덱스는 time.Weekday 와 같게 일요일부터 시작한다.
var Days = []string{"일", "월", "화", "수", "목", "금", "토"}

// 분석 창은 09:00~21:00 로 고정한다. 점유 그리드와 공강 추출이 같은 범위를 써야 한다.
const (
	WindowStartHour = 9
	WindowEndHour   = 21
)

// SlotLabel 은 hour 시부터 한 시간짜리 슬롯의 라벨을 만든다. 예: 9 -> "09:00-10:00".
func SlotLabel(hour int) string {
	return fmt.Sprintf("%02d:00-%02d:00", hour, hour+1)
}

// SlotLabels 는 분석 창 안의 모든 슬롯 라벨을 시간 순서로 돌려준다.
func SlotLabels() []string {
	labels := make([]string, 0, WindowEndHour-WindowStartHour)
	for hour := WindowStartHour; hour < WindowEndHour; hour++ {
		labels = append(labels, SlotLabel(hour))
	}
	return labels
}

// ParseHourRange 는 "HH:MM-HH:MM" 형식의 문자열에서 시작/종료 시(時)를 꺼낸다.
// 분 단위는 :00 으로 가정하고 버린다. 형식이 어긋나면 오류를 돌려준다.
func ParseHourRange(s string) (int, int, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("잘못된 시간 범위 형식: %q", s)
	}

	start, err := parseHour(parts[0])
	if err != nil {
		return 0, 0, err
	}
	end, err := parseHour(parts[1])
	if err != nil {
		return 0, 0, err
	}

	return start, end, nil
}

func parseHour(s string) (int, error) {
	hourPart, _, found := strings.Cut(s, ":")
	if !found {
		return 0, fmt.Errorf("잘못된 시간 형식: %q", s)
	}
	hour, err := strconv.Atoi(strings.TrimSpace(hourPart))
	if err != nil || hour < 0 || hour > 24 {
		return 0, fmt.Errorf("잘못된 시간 형식: %q", s)
	}
	return hour, nil
}

// WeekdayLabel 은 "YYYY-MM-DD" 날짜를 요일 라벨(일..토)로 바꾼다.
func WeekdayLabel(date string) (string, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", fmt.Errorf("잘못된 날짜 형식: %q", date)
	}
	return Days[int(t.Weekday())], nil
}

type SlotKey struct {
	Day  string
	Time string
}

// Slot 은 (요일, 한 시간) 셀 하나의 점유 현황이다.
// Count 는 Participants 의 길이와 항상 같다. 한 사람이 같은 시간에 겹치는
// 항목을 여러 개 가지면 그대로 여러 번 센다. 원래 동작을 유지하는 것이다.
type Slot struct {
	Day          string   `json:"day"`
	Time         string   `json:"time"`
	Count        int      `json:"count"`
	Participants []string `json:"participants"`
}

// BuildOccupancy 는 선택된 조원들의 수업 시간표와 개인 일정을 겹쳐서
// (요일, 시간) 셀마다 점유 인원을 센 그리드를 만든다.
// 시간 문자열을 해석할 수 없는 항목은 그리드를 오염시키지 않도록 건너뛴다.
func BuildOccupancy(participants []*domain.Participant, selectedIDs []string, schedules []*domain.PersonalSchedule) map[SlotKey]*Slot {
	grid := make(map[SlotKey]*Slot)

	occupy := func(day string, hour int, who string) {
		key := SlotKey{Day: day, Time: SlotLabel(hour)}
		slot, exists := grid[key]
		if !exists {
			slot = &Slot{Day: key.Day, Time: key.Time, Participants: []string{}}
			grid[key] = slot
		}
		slot.Count++
		slot.Participants = append(slot.Participants, who)
	}

	selected := make([]*domain.Participant, 0, len(participants))
	for _, p := range participants {
		if slices.Contains(selectedIDs, p.ID) {
			selected = append(selected, p)
		}
	}

	// 주간 수업 시간표
	for _, p := range selected {
		for _, entry := range p.Timetable {
			start, end, err := ParseHourRange(entry.Time)
			if err != nil {
				continue
			}
			for hour := start; hour < end; hour++ {
				occupy(entry.Day, hour, p.Name)
			}
		}
	}

	// 개인 일정: 날짜를 요일로 환산해서 같은 그리드에 겹친다
	for _, p := range selected {
		for _, schedule := range schedules {
			if schedule.MemberID != p.ID {
				continue
			}
			day, err := WeekdayLabel(schedule.Date)
			if err != nil {
				continue
			}
			for hour := schedule.StartHour; hour < schedule.EndHour; hour++ {
				occupy(day, hour, p.Name+" (개인일정)")
			}
		}
	}

	return grid
}

// SortedSlots 는 그리드를 요일(일→토), 시간 순의 슬라이스로 펴서 돌려준다.
// 맵 키 구조체는 JSON 으로 내보낼 수 없으므로 응답에는 이 형태를 쓴다.
func SortedSlots(grid map[SlotKey]*Slot) []*Slot {
	slots := make([]*Slot, 0, len(grid))
	for _, day := range Days {
		for hour := WindowStartHour; hour < WindowEndHour; hour++ {
			if slot, exists := grid[SlotKey{Day: day, Time: SlotLabel(hour)}]; exists {
				slots = append(slots, slot)
			}
		}
	}
	return slots
}
