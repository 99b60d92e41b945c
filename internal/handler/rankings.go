package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/chinba-dev/chinba/backend/internal/domain"
)

func rankingsCacheKey(club string) string {
	return fmt.Sprintf("chinba:rankings:%s", club)
}

// invalidateRankings 는 동아리 순위 캐시를 지운다.
// 캐시 삭제 실패는 요청 자체를 실패시킬 일이 아니라서 로그만 남긴다.
func (h *Handler) invalidateRankings(r *http.Request, club string) {
	if err := h.redisClient.Del(r.Context(), rankingsCacheKey(club)).Err(); err != nil {
		slog.Error("순위 캐시 삭제 실패", "club", club, "error", err)
	}
}

// GetScore 는 현재 컨텍스트 팀의 누적 점수와 통계를 돌려준다.
// 아직 활동 기록이 없으면 0 으로 채운 값을 준다.
func (h *Handler) GetScore(w http.ResponseWriter, r *http.Request) {
	teamCtx := r.Context().Value(TeamContextCtx).(domain.Context)
	team := r.Context().Value(ContextTeamCtx).(*domain.Team)

	meta, err := h.repository.GetTeamMeta(teamCtx.Key())
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			meta = &domain.TeamMeta{Members: team.Size}
		default:
			h.internalServerError(w, r, err)
			return
		}
	}

	data := struct {
		Context          domain.Context `json:"context"`
		Score            int            `json:"score"`
		ActivityCount    int            `json:"activityCount"`
		TotalMinutes     int            `json:"totalMinutes"`
		AvgParticipation float64        `json:"avgParticipation"`
	}{
		Context:          teamCtx,
		Score:            meta.Score,
		ActivityCount:    meta.ActivityCount,
		TotalMinutes:     meta.TotalMinutes,
		AvgParticipation: meta.AvgParticipation(),
	}

	h.successResponse(w, r, "팀 점수를 가져왔습니다", data)
}

// GetRankings 는 컨텍스트 동아리의 팀 순위를 돌려준다.
// 순위표는 자주 조회되므로 짧게 캐시하고, 기록이 바뀌면 캐시를 지운다.
func (h *Handler) GetRankings(w http.ResponseWriter, r *http.Request) {
	teamCtx := r.Context().Value(TeamContextCtx).(domain.Context)

	cached, err := h.redisClient.Get(r.Context(), rankingsCacheKey(teamCtx.Club)).Result()
	if err == nil {
		rankings := []*domain.TeamRanking{}
		if err := json.Unmarshal([]byte(cached), &rankings); err == nil {
			h.successResponse(w, r, "동아리 순위를 가져왔습니다", rankings)
			return
		}
		// 캐시가 깨져 있으면 무시하고 다시 계산한다
	} else if !errors.Is(err, redis.Nil) {
		h.internalServerError(w, r, err)
		return
	}

	rankings, err := h.repository.GetClubRankings(teamCtx.Club)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if encoded, err := json.Marshal(rankings); err == nil {
		expiration := time.Duration(h.config.Redis.RankingExpiration) * time.Second
		if err := h.redisClient.Set(r.Context(), rankingsCacheKey(teamCtx.Club), encoded, expiration).Err(); err != nil {
			slog.Error("순위 캐시 저장 실패", "club", teamCtx.Club, "error", err)
		}
	}

	h.successResponse(w, r, "동아리 순위를 가져왔습니다", rankings)
}
