package handler

import (
	"net/http"

	"github.com/chinba-dev/chinba/backend/internal/domain"
)

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	team := r.Context().Value(TeamCtx).(*domain.Team)
	h.successResponse(w, r, "팀 정보를 가져왔습니다", team)
}

// ResetTeam 은 한 팀의 활동 기록, 점수, 개인 일정을 전부 지운다. 관리자 전용.
func (h *Handler) ResetTeam(w http.ResponseWriter, r *http.Request) {
	team := r.Context().Value(TeamCtx).(*domain.Team)

	teamKey := domain.Context{Club: team.ClubName, Team: team.Name}.Key()
	if err := h.repository.ResetTeam(teamKey, team.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.invalidateRankings(r, team.ClubName)

	h.successResponse(w, r, "팀 기록을 초기화했습니다", nil)
}

// ResetAll 은 모든 팀의 활동 기록과 점수를 지운다. 관리자 전용.
func (h *Handler) ResetAll(w http.ResponseWriter, r *http.Request) {
	if err := h.repository.ResetAll(); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// 어떤 동아리의 캐시가 남아 있는지 알 수 없으므로 전부 지운다
	iter := h.redisClient.Scan(r.Context(), 0, "chinba:rankings:*", 0).Iterator()
	for iter.Next(r.Context()) {
		if err := h.redisClient.Del(r.Context(), iter.Val()).Err(); err != nil {
			h.internalServerError(w, r, err)
			return
		}
	}
	if err := iter.Err(); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "모든 기록을 초기화했습니다", nil)
}
