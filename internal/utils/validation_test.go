package utils

import (
	"testing"

	"github.com/chinba-dev/chinba/backend/internal/domain"
)

func TestValidateClassEntries(t *testing.T) {
	valid := []domain.ClassEntry{
		{Subject: "자료구조", Day: "월", Time: "09:00-11:00"},
		{Subject: "교양영어", Day: "토", Time: "10:00-12:00"},
	}
	if err := ValidateClassEntries(valid); err != nil {
		t.Fatalf("정상 시간표가 거절되었습니다: %v", err)
	}

	cases := []domain.ClassEntry{
		{Subject: "요일 오류", Day: "월요일", Time: "09:00-11:00"},
		{Subject: "시간 형식 오류", Day: "월", Time: "아홉시"},
		{Subject: "역순 시간", Day: "월", Time: "11:00-09:00"},
	}
	for _, entry := range cases {
		if err := ValidateClassEntries([]domain.ClassEntry{entry}); err == nil {
			t.Fatalf("%q 는 거절되어야 합니다", entry.Subject)
		}
	}
}

func TestEnsureUniqueIDsFillsEmpty(t *testing.T) {
	participants := []*domain.Participant{
		{Name: "김민서"},
		{Name: "이준우"},
	}
	EnsureUniqueIDs([]string{"p1"}, participants)

	if participants[0].ID != "p2" || participants[1].ID != "p3" {
		t.Fatalf("기존 ID 를 피해서 채워야 합니다: %q, %q", participants[0].ID, participants[1].ID)
	}
}

func TestEnsureUniqueIDsSuffixesCollisions(t *testing.T) {
	participants := []*domain.Participant{
		{ID: "p1", Name: "김민서"},
		{ID: "p1", Name: "이준우"},
	}
	EnsureUniqueIDs([]string{"p1"}, participants)

	if participants[0].ID != "p1-2" {
		t.Fatalf("기존 조원과 겹치면 번호를 붙여야 합니다: %q", participants[0].ID)
	}
	if participants[1].ID != "p1-3" {
		t.Fatalf("같은 묶음 안에서도 겹치면 안 됩니다: %q", participants[1].ID)
	}
}

func TestEnsureUniqueIDsKeepsDistinct(t *testing.T) {
	participants := []*domain.Participant{
		{ID: "a", Name: "김민서"},
		{ID: "b", Name: "이준우"},
	}
	EnsureUniqueIDs(nil, participants)

	if participants[0].ID != "a" || participants[1].ID != "b" {
		t.Fatalf("겹치지 않는 ID 는 그대로 둬야 합니다: %q, %q", participants[0].ID, participants[1].ID)
	}
}
