package timetable

// FreeBlock 은 한 요일 안에서 아무도 일정이 없는 연속 구간이다.
// 분석 창 [9,21) 안에서만 계산한다.
type FreeBlock struct {
	Day       string `json:"day"`
	StartHour int    `json:"startHour"`
	Duration  int    `json:"duration"` // 시간 단위
}

// ExtractFreeBlocks 는 주어진 요일에서 점유 인원이 0 인 시간의
// 최대 연속 구간들을 시작 시간 순서로 돌려준다.
func ExtractFreeBlocks(grid map[SlotKey]*Slot, day string) []FreeBlock {
	blocks := []FreeBlock{}
	currentFreeStart := -1

	for hour := WindowStartHour; hour < WindowEndHour; hour++ {
		slot, exists := grid[SlotKey{Day: day, Time: SlotLabel(hour)}]
		free := !exists || slot.Count == 0

		if free && currentFreeStart < 0 {
			currentFreeStart = hour
		}
		if !free && currentFreeStart >= 0 {
			if duration := hour - currentFreeStart; duration >= 1 {
				blocks = append(blocks, FreeBlock{Day: day, StartHour: currentFreeStart, Duration: duration})
			}
			currentFreeStart = -1
		}
	}

	// 창 끝까지 공강이 이어진 경우
	if currentFreeStart >= 0 {
		blocks = append(blocks, FreeBlock{Day: day, StartHour: currentFreeStart, Duration: WindowEndHour - currentFreeStart})
	}

	return blocks
}

// AllFreeBlocks 는 일→토 요일 순서로 모든 공강 구간을 모아서 돌려준다.
// 요일 안에서는 시작 시간 순서이고, 그 외의 정렬은 하지 않는다.
func AllFreeBlocks(grid map[SlotKey]*Slot) []FreeBlock {
	blocks := []FreeBlock{}
	for _, day := range Days {
		blocks = append(blocks, ExtractFreeBlocks(grid, day)...)
	}
	return blocks
}
