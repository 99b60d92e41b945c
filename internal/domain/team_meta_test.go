package domain

import (
	"math"
	"testing"
)

func TestTeamMetaAddThenRemove(t *testing.T) {
	meta := &TeamMeta{Members: 5}

	meta.AddSample(90, 4)
	meta.AddScore(70)
	meta.RemoveSample(90, 4)
	meta.AddScore(-70)

	if meta.ActivityCount != 0 || meta.TotalMinutes != 0 || meta.PartSamples != 0 || meta.Score != 0 {
		t.Fatalf("추가 후 삭제하면 누적치가 0 으로 돌아와야 합니다: %+v", meta)
	}
	if math.Abs(meta.PartSum) > 1e-9 {
		t.Fatalf("PartSum 이 0 으로 돌아오지 않았습니다: %f", meta.PartSum)
	}
}

func TestTeamMetaRemoveNeverNegative(t *testing.T) {
	meta := &TeamMeta{Members: 5}

	// 반영된 적 없는 기록을 지워도 음수가 되면 안 된다
	meta.RemoveSample(120, 3)
	if meta.ActivityCount != 0 || meta.TotalMinutes != 0 || meta.PartSum != 0 || meta.PartSamples != 0 {
		t.Fatalf("누적치가 음수로 내려갔습니다: %+v", meta)
	}
}

func TestTeamMetaScoreNeverNegative(t *testing.T) {
	meta := &TeamMeta{}

	meta.AddScore(30)
	meta.AddScore(-100)
	if meta.Score != 0 {
		t.Fatalf("점수는 0 밑으로 내려가면 안 됩니다: %d", meta.Score)
	}
}

func TestTeamMetaParticipationClamp(t *testing.T) {
	meta := &TeamMeta{Members: 4}

	// 팀 인원보다 많은 참여자는 1.0 으로 고정한다
	meta.AddSample(60, 10)
	if got := meta.AvgParticipation(); got != 1.0 {
		t.Fatalf("참여율이 1 로 고정되어야 합니다: %f", got)
	}

	meta.AddSample(60, 2)
	if got := meta.AvgParticipation(); math.Abs(got-0.75) > 1e-9 {
		t.Fatalf("평균 참여율 %f, 기대값은 0.75", got)
	}
}

func TestTeamMetaZeroMembers(t *testing.T) {
	meta := &TeamMeta{}

	meta.AddSample(60, 3)
	if meta.PartSum != 0 {
		t.Fatalf("인원이 0 인 팀의 참여율은 0 이어야 합니다: %f", meta.PartSum)
	}
}

func TestTeamMetaUpdateSample(t *testing.T) {
	meta := &TeamMeta{Members: 4}
	meta.AddSample(60, 2)

	meta.UpdateSample(60, 2, 120, 4)

	if meta.ActivityCount != 1 {
		t.Fatalf("수정은 활동 횟수를 바꾸면 안 됩니다: %d", meta.ActivityCount)
	}
	if meta.TotalMinutes != 120 {
		t.Fatalf("총 시간 %d, 기대값은 120", meta.TotalMinutes)
	}
	if got := meta.AvgParticipation(); got != 1.0 {
		t.Fatalf("수정 후 참여율 %f, 기대값은 1.0", got)
	}
}

func TestAvgParticipationNoSamples(t *testing.T) {
	meta := &TeamMeta{Members: 5}
	if got := meta.AvgParticipation(); got != 0 {
		t.Fatalf("샘플이 없으면 0 이어야 합니다: %f", got)
	}
}

func TestParseContextKey(t *testing.T) {
	ctx, ok := ParseContextKey("멋쟁이사자처럼/1조")
	if !ok {
		t.Fatal("정상 키를 해석하지 못했습니다")
	}
	if ctx.Club != "멋쟁이사자처럼" || ctx.Team != "1조" {
		t.Fatalf("해석 결과가 다릅니다: %+v", ctx)
	}
	if ctx.Key() != "멋쟁이사자처럼/1조" {
		t.Fatalf("Key() 왕복이 깨졌습니다: %q", ctx.Key())
	}

	if _, ok := ParseContextKey("구분자없음"); ok {
		t.Fatal("구분자가 없는 키는 실패해야 합니다")
	}
}
