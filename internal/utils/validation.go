package utils

import (
	"fmt"
	"slices"

	"github.com/chinba-dev/chinba/backend/internal/domain"
	"github.com/chinba-dev/chinba/backend/internal/timetable"
)

// ValidateClassEntries 는 저장하기 전에 시간표 항목의 요일과 시간을 검사한다.
// 조회 시에는 깨진 항목을 조용히 건너뛰지만, 입력 시에는 명확하게 거절한다.
func ValidateClassEntries(entries []domain.ClassEntry) error {
	for i, entry := range entries {
		if !slices.Contains(timetable.Days, entry.Day) {
			return fmt.Errorf("%d번째 수업의 요일 %q 이(가) 올바르지 않습니다", i+1, entry.Day)
		}

		start, end, err := timetable.ParseHourRange(entry.Time)
		if err != nil {
			return fmt.Errorf("%d번째 수업: %v", i+1, err)
		}
		if start >= end {
			return fmt.Errorf("%d번째 수업의 시작 시간은 종료 시간보다 빨라야 합니다", i+1)
		}
	}
	return nil
}

// EnsureUniqueIDs 는 조원 ID 가 비어 있으면 채우고, 기존 조원이나
// 같은 묶음 안의 다른 조원과 겹치면 뒤에 번호를 붙여서 겹치지 않게 만든다.
func EnsureUniqueIDs(existing []string, participants []*domain.Participant) {
	used := make(map[string]bool, len(existing)+len(participants))
	for _, id := range existing {
		used[id] = true
	}

	next := 1
	for _, p := range participants {
		id := p.ID
		if id == "" {
			for {
				id = fmt.Sprintf("p%d", next)
				next++
				if !used[id] {
					break
				}
			}
		} else if used[id] {
			suffix := 2
			for used[fmt.Sprintf("%s-%d", id, suffix)] {
				suffix++
			}
			id = fmt.Sprintf("%s-%d", id, suffix)
		}

		p.ID = id
		used[id] = true
	}
}
