package extraction

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/chinba-dev/chinba/backend/internal/domain"
	"github.com/chinba-dev/chinba/backend/internal/timetable"
)

// ParseResponseText 는 모델 응답 텍스트에서 조원 목록을 꺼낸다.
// JSON 으로만 답하라고 해도 모델이 코드 펜스로 감싸는 경우가 있어서 먼저 벗겨낸다.
// 요일이나 시간이 형식에 어긋나는 수업은 버리고, 이름이 없는 조원도 버린다.
func ParseResponseText(text string) ([]*domain.Participant, error) {
	text = stripCodeFence(text)

	var decoded struct {
		Participants []struct {
			Name      string              `json:"name"`
			Timetable []domain.ClassEntry `json:"timetable"`
		} `json:"participants"`
	}
	if err := json.Unmarshal([]byte(text), &decoded); err != nil {
		return nil, fmt.Errorf("추출 결과를 해석할 수 없습니다: %w", err)
	}
	if len(decoded.Participants) == 0 {
		return nil, fmt.Errorf("이미지에서 조원을 찾지 못했습니다")
	}

	participants := make([]*domain.Participant, 0, len(decoded.Participants))
	for _, p := range decoded.Participants {
		if strings.TrimSpace(p.Name) == "" {
			continue
		}

		entries := make([]domain.ClassEntry, 0, len(p.Timetable))
		for _, entry := range p.Timetable {
			if !slices.Contains(timetable.Days, entry.Day) {
				continue
			}
			if start, end, err := timetable.ParseHourRange(entry.Time); err != nil || start >= end {
				continue
			}
			entries = append(entries, entry)
		}

		participants = append(participants, &domain.Participant{
			Name:      strings.TrimSpace(p.Name),
			Timetable: entries,
		})
	}

	if len(participants) == 0 {
		return nil, fmt.Errorf("이미지에서 조원을 찾지 못했습니다")
	}

	return participants, nil
}

func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
