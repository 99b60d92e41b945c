package timetable

import (
	"testing"

	"github.com/chinba-dev/chinba/backend/internal/domain"
)

func TestParseHourRange(t *testing.T) {
	start, end, err := ParseHourRange("09:00-11:00")
	if err != nil {
		t.Fatalf("정상 입력에서 오류 발생: %v", err)
	}
	if start != 9 || end != 11 {
		t.Fatalf("start=%d end=%d, 기대값은 9, 11", start, end)
	}

	for _, bad := range []string{"", "09:00", "9시-11시", "09:00~11:00", "25:00-26:00"} {
		if _, _, err := ParseHourRange(bad); err == nil {
			t.Fatalf("%q 는 오류를 내야 합니다", bad)
		}
	}
}

func TestWeekdayLabel(t *testing.T) {
	// 2025-03-03 은 월요일이다
	day, err := WeekdayLabel("2025-03-03")
	if err != nil {
		t.Fatalf("정상 날짜에서 오류 발생: %v", err)
	}
	if day != "월" {
		t.Fatalf("day=%q, 기대값은 월", day)
	}

	if _, err := WeekdayLabel("2025/03/03"); err == nil {
		t.Fatal("잘못된 날짜 형식은 오류를 내야 합니다")
	}
}

func TestSlotLabel(t *testing.T) {
	if got := SlotLabel(9); got != "09:00-10:00" {
		t.Fatalf("SlotLabel(9)=%q", got)
	}
	if got := SlotLabel(20); got != "20:00-21:00" {
		t.Fatalf("SlotLabel(20)=%q", got)
	}
}

func twoParticipants() []*domain.Participant {
	return []*domain.Participant{
		{
			ID:   "a",
			Name: "김민서",
			Timetable: []domain.ClassEntry{
				{Subject: "자료구조", Day: "월", Time: "09:00-11:00"},
			},
		},
		{
			ID:   "b",
			Name: "이준우",
			Timetable: []domain.ClassEntry{
				{Subject: "미적분학", Day: "월", Time: "10:00-12:00"},
			},
		},
	}
}

func TestBuildOccupancyCounts(t *testing.T) {
	participants := twoParticipants()
	grid := BuildOccupancy(participants, []string{"a", "b"}, nil)

	cases := []struct {
		hour  int
		count int
	}{
		{9, 1},
		{10, 2},
		{11, 1},
	}
	for _, c := range cases {
		slot, exists := grid[SlotKey{Day: "월", Time: SlotLabel(c.hour)}]
		if !exists {
			t.Fatalf("%d시 슬롯이 없습니다", c.hour)
		}
		if slot.Count != c.count {
			t.Fatalf("%d시 count=%d, 기대값은 %d", c.hour, slot.Count, c.count)
		}
		if len(slot.Participants) != c.count {
			t.Fatalf("%d시 참여자 수 %d 가 count 와 다릅니다", c.hour, len(slot.Participants))
		}
	}

	if _, exists := grid[SlotKey{Day: "월", Time: SlotLabel(12)}]; exists {
		t.Fatal("12시에는 아무도 수업이 없어야 합니다")
	}
}

func TestBuildOccupancySelection(t *testing.T) {
	participants := twoParticipants()

	// b 만 선택하면 a 의 수업은 그리드에 없어야 한다
	grid := BuildOccupancy(participants, []string{"b"}, nil)
	if _, exists := grid[SlotKey{Day: "월", Time: SlotLabel(9)}]; exists {
		t.Fatal("선택하지 않은 조원의 수업이 그리드에 들어갔습니다")
	}
	slot := grid[SlotKey{Day: "월", Time: SlotLabel(10)}]
	if slot == nil || slot.Count != 1 {
		t.Fatalf("10시 슬롯이 b 한 명만 있어야 합니다: %+v", slot)
	}
}

func TestBuildOccupancySkipsMalformedEntries(t *testing.T) {
	participants := []*domain.Participant{
		{
			ID:   "a",
			Name: "김민서",
			Timetable: []domain.ClassEntry{
				{Subject: "깨진 수업", Day: "월", Time: "아홉시부터"},
				{Subject: "자료구조", Day: "월", Time: "09:00-10:00"},
			},
		},
	}

	grid := BuildOccupancy(participants, []string{"a"}, nil)
	if len(grid) != 1 {
		t.Fatalf("깨진 항목은 건너뛰어야 합니다: grid=%d칸", len(grid))
	}
}

func TestBuildOccupancyPersonalSchedule(t *testing.T) {
	participants := []*domain.Participant{
		{ID: "a", Name: "김민서"},
	}
	schedules := []*domain.PersonalSchedule{
		{ID: "s1", MemberID: "a", Title: "병원", Date: "2025-03-03", StartHour: 14, EndHour: 16},
		{ID: "s2", MemberID: "other", Title: "남의 일정", Date: "2025-03-03", StartHour: 9, EndHour: 10},
	}

	grid := BuildOccupancy(participants, []string{"a"}, schedules)

	slot := grid[SlotKey{Day: "월", Time: SlotLabel(14)}]
	if slot == nil || slot.Count != 1 {
		t.Fatalf("개인 일정이 그리드에 반영되지 않았습니다: %+v", slot)
	}
	if slot.Participants[0] != "김민서 (개인일정)" {
		t.Fatalf("개인 일정 표기가 다릅니다: %q", slot.Participants[0])
	}

	// 선택되지 않은 조원의 일정은 무시한다
	if _, exists := grid[SlotKey{Day: "월", Time: SlotLabel(9)}]; exists {
		t.Fatal("팀에 없는 조원의 일정이 반영되었습니다")
	}
}

func TestExtractFreeBlocksAllFree(t *testing.T) {
	grid := map[SlotKey]*Slot{}

	blocks := ExtractFreeBlocks(grid, "월")
	if len(blocks) != 1 {
		t.Fatalf("빈 요일은 공강 구간이 하나여야 합니다: %+v", blocks)
	}
	if blocks[0].StartHour != WindowStartHour || blocks[0].Duration != WindowEndHour-WindowStartHour {
		t.Fatalf("공강 구간이 분석 창 전체가 아닙니다: %+v", blocks[0])
	}
}

func TestExtractFreeBlocksFullyOccupied(t *testing.T) {
	grid := map[SlotKey]*Slot{}
	for hour := WindowStartHour; hour < WindowEndHour; hour++ {
		key := SlotKey{Day: "월", Time: SlotLabel(hour)}
		grid[key] = &Slot{Day: "월", Time: key.Time, Count: 1, Participants: []string{"김민서"}}
	}

	if blocks := ExtractFreeBlocks(grid, "월"); len(blocks) != 0 {
		t.Fatalf("전부 찬 요일에는 공강이 없어야 합니다: %+v", blocks)
	}
}

func TestExtractFreeBlocksScenario(t *testing.T) {
	grid := BuildOccupancy(twoParticipants(), []string{"a", "b"}, nil)

	blocks := ExtractFreeBlocks(grid, "월")
	if len(blocks) != 1 {
		t.Fatalf("월요일 공강은 한 구간이어야 합니다: %+v", blocks)
	}
	if blocks[0].StartHour != 12 || blocks[0].Duration != 9 {
		t.Fatalf("월요일 공강은 12시부터 9시간이어야 합니다: %+v", blocks[0])
	}
}

func TestBuildOccupancyOrderIndependent(t *testing.T) {
	participants := twoParticipants()
	grid1 := BuildOccupancy(participants, []string{"a", "b"}, nil)
	grid2 := BuildOccupancy([]*domain.Participant{participants[1], participants[0]}, []string{"b", "a"}, nil)

	if len(grid1) != len(grid2) {
		t.Fatalf("입력 순서에 따라 그리드 크기가 달라졌습니다: %d != %d", len(grid1), len(grid2))
	}
	for key, slot := range grid1 {
		other, exists := grid2[key]
		if !exists || other.Count != slot.Count {
			t.Fatalf("입력 순서에 따라 %v 의 count 가 달라졌습니다", key)
		}
	}
}

func TestAllFreeBlocksDayOrder(t *testing.T) {
	grid := map[SlotKey]*Slot{}

	blocks := AllFreeBlocks(grid)
	if len(blocks) != len(Days) {
		t.Fatalf("요일마다 공강 구간이 하나씩 나와야 합니다: %d개", len(blocks))
	}
	for i, day := range Days {
		if blocks[i].Day != day {
			t.Fatalf("%d번째 구간의 요일이 %q 인데 %q 여야 합니다", i, blocks[i].Day, day)
		}
	}
}
