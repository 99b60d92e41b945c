package catalog

import (
	"testing"

	"github.com/chinba-dev/chinba/backend/internal/domain"
)

func findActivity(t *testing.T, id string) domain.Activity {
	t.Helper()
	for _, a := range Scored {
		if a.ID == id {
			return a
		}
	}
	t.Fatalf("카탈로그에 %q 가 없습니다", id)
	return domain.Activity{}
}

func TestDifficultyScoreVectors(t *testing.T) {
	cases := []struct {
		id         string
		score      int
		difficulty domain.Difficulty
	}{
		// 120분 +5(study)
		{"study-group", 95, domain.DifficultyMedium},
		// 30분 -10(혼자) +15(2시간 창)
		{"nap-time", 35, domain.DifficultyEasy},
		// 180분 +10(3명) +8(3시간 창) +10(주점)
		{"drinking", 138, domain.DifficultyHard},
		// 10분, 창이 12시간이라 가산 없음
		{"eta-friend", 30, domain.DifficultyEasy},
	}

	for _, c := range cases {
		a := findActivity(t, c.id)
		if a.Score != c.score {
			t.Fatalf("%s 의 점수 %d, 기대값은 %d", c.id, a.Score, c.score)
		}
		if a.Difficulty != c.difficulty {
			t.Fatalf("%s 의 난이도 %s, 기대값은 %s", c.id, a.Difficulty, c.difficulty)
		}
	}
}

func TestDifficultyScoreClamped(t *testing.T) {
	low := DifficultyScore(domain.Activity{Duration: 5, MaxParticipants: 1})
	if low < 10 {
		t.Fatalf("점수가 하한 밑으로 내려갔습니다: %d", low)
	}

	high := DifficultyScore(domain.Activity{
		Duration:        300,
		MinParticipants: 10,
		Location:        "보드게임카페",
		Category:        "study",
		TimePreferences: []domain.TimePreference{{StartHour: 9, EndHour: 10, Weight: 1}},
	})
	if high > 150 {
		t.Fatalf("점수가 상한을 넘었습니다: %d", high)
	}
}

func TestDifficultyOfBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  domain.Difficulty
	}{
		{59, domain.DifficultyEasy},
		{60, domain.DifficultyMedium},
		{99, domain.DifficultyMedium},
		{100, domain.DifficultyHard},
	}
	for _, c := range cases {
		if got := DifficultyOf(c.score); got != c.want {
			t.Fatalf("DifficultyOf(%d)=%s, 기대값은 %s", c.score, got, c.want)
		}
	}
}

func TestRecommendByMinutes(t *testing.T) {
	if got := RecommendByMinutes(Scored, 0); len(got) != 0 {
		t.Fatalf("0분에는 아무 활동도 추천하면 안 됩니다: %d개", len(got))
	}

	all := RecommendByMinutes(Scored, 10000)
	if len(all) != len(Scored) {
		t.Fatalf("충분히 긴 시간에는 전체가 나와야 합니다: %d != %d", len(all), len(Scored))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Duration > all[i].Duration {
			t.Fatalf("소요시간 정렬이 깨졌습니다: %d 뒤에 %d", all[i-1].Duration, all[i].Duration)
		}
	}

	short := RecommendByMinutes(Scored, 30)
	for _, a := range short {
		if a.Duration > 30 {
			t.Fatalf("30분 추천에 %d분짜리 %q 가 들어갔습니다", a.Duration, a.ID)
		}
	}
}

func TestRecommendByMinutesStable(t *testing.T) {
	// 소요시간이 같은 활동은 카탈로그 순서를 유지해야 한다
	list := []domain.Activity{
		{ID: "first", Duration: 60},
		{ID: "second", Duration: 60},
		{ID: "third", Duration: 30},
	}
	got := RecommendByMinutes(list, 60)
	if len(got) != 3 {
		t.Fatalf("3개가 나와야 합니다: %d개", len(got))
	}
	if got[0].ID != "third" || got[1].ID != "first" || got[2].ID != "second" {
		t.Fatalf("안정 정렬이 깨졌습니다: %s, %s, %s", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestActivityScoreLookup(t *testing.T) {
	want := findActivity(t, "study-group").Score

	if got := ActivityScore("study-group", ""); got != want {
		t.Fatalf("ID 조회 점수 %d, 기대값은 %d", got, want)
	}
	if got := ActivityScore("", "스터디 그룹"); got != want {
		t.Fatalf("이름 조회 점수 %d, 기대값은 %d", got, want)
	}
	if got := ActivityScore("없는-활동", "없는 활동"); got != 0 {
		t.Fatalf("모르는 활동은 0 이어야 합니다: %d", got)
	}
}

func TestScoredCatalogComplete(t *testing.T) {
	if len(Scored) != len(Default) {
		t.Fatalf("Scored 크기 %d 가 Default 크기 %d 와 다릅니다", len(Scored), len(Default))
	}
	for _, a := range Scored {
		if a.Score < 10 || a.Score > 150 {
			t.Fatalf("%s 의 점수 %d 가 범위를 벗어났습니다", a.ID, a.Score)
		}
		if a.Difficulty == "" {
			t.Fatalf("%s 의 난이도가 비어 있습니다", a.ID)
		}
		if a.Emoji == "" {
			t.Fatalf("%s 의 이모지가 비어 있습니다", a.ID)
		}
	}
}
