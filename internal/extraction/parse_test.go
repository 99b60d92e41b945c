package extraction

import "testing"

const sampleJSON = `{
  "participants": [
    {
      "name": "김민서",
      "timetable": [
        { "subject": "자료구조", "location": "공학관 201", "day": "월", "time": "09:00-11:00" },
        { "subject": "요일이 이상한 수업", "location": "", "day": "월요일", "time": "13:00-14:00" },
        { "subject": "시간이 이상한 수업", "location": "", "day": "화", "time": "오후 1시" }
      ]
    },
    { "name": "  ", "timetable": [] }
  ]
}`

func TestParseResponseText(t *testing.T) {
	participants, err := ParseResponseText(sampleJSON)
	if err != nil {
		t.Fatalf("정상 응답 해석 실패: %v", err)
	}
	if len(participants) != 1 {
		t.Fatalf("이름 없는 조원은 버려야 합니다: %d명", len(participants))
	}
	if participants[0].Name != "김민서" {
		t.Fatalf("이름이 다릅니다: %q", participants[0].Name)
	}
	if len(participants[0].Timetable) != 1 {
		t.Fatalf("형식이 깨진 수업은 버려야 합니다: %d개", len(participants[0].Timetable))
	}
	if participants[0].Timetable[0].Subject != "자료구조" {
		t.Fatalf("남은 수업이 다릅니다: %q", participants[0].Timetable[0].Subject)
	}
}

func TestParseResponseTextCodeFence(t *testing.T) {
	fenced := "```json\n" + sampleJSON + "\n```"
	participants, err := ParseResponseText(fenced)
	if err != nil {
		t.Fatalf("코드 펜스를 벗기지 못했습니다: %v", err)
	}
	if len(participants) != 1 {
		t.Fatalf("조원 수가 다릅니다: %d명", len(participants))
	}

	bare := "```\n" + sampleJSON + "\n```"
	if _, err := ParseResponseText(bare); err != nil {
		t.Fatalf("언어 표기 없는 펜스도 벗겨야 합니다: %v", err)
	}
}

func TestParseResponseTextErrors(t *testing.T) {
	if _, err := ParseResponseText("죄송하지만 시간표를 읽을 수 없습니다."); err == nil {
		t.Fatal("JSON 이 아닌 응답은 오류를 내야 합니다")
	}
	if _, err := ParseResponseText(`{"participants": []}`); err == nil {
		t.Fatal("조원이 없으면 오류를 내야 합니다")
	}
	if _, err := ParseResponseText(`{"participants": [{"name": ""}]}`); err == nil {
		t.Fatal("이름 있는 조원이 하나도 없으면 오류를 내야 합니다")
	}
}
