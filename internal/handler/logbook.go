package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/chinba-dev/chinba/backend/internal/catalog"
	"github.com/chinba-dev/chinba/backend/internal/domain"
	"github.com/chinba-dev/chinba/backend/internal/timetable"
)

func (h *Handler) GetLoggedActivities(w http.ResponseWriter, r *http.Request) {
	teamCtx := r.Context().Value(TeamContextCtx).(domain.Context)

	activities, err := h.repository.GetLoggedActivities(teamCtx.Key())
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "활동 기록 목록을 가져왔습니다", activities)
}

// resolveScore 는 활동 기록에 매길 점수를 정한다.
// 요청에 점수가 있으면 그대로 쓰고, 없으면 카탈로그에서 찾고,
// 카탈로그에도 없으면 소요시간과 인원으로 난이도를 직접 계산한다.
func resolveScore(explicit int, activityID, title string, duration, headcount int) int {
	if explicit > 0 {
		return explicit
	}
	if score := catalog.ActivityScore(activityID, title); score > 0 {
		return score
	}
	if duration <= 0 {
		duration = 60
	}
	return catalog.DifficultyScore(domain.Activity{
		Duration:        duration,
		MinParticipants: headcount,
	})
}

func (h *Handler) CreateLoggedActivity(w http.ResponseWriter, r *http.Request) {
	teamCtx := r.Context().Value(TeamContextCtx).(domain.Context)
	team := r.Context().Value(ContextTeamCtx).(*domain.Team)

	var req struct {
		Date        string `json:"date" validate:"required"`
		Title       string `json:"title" validate:"required"`
		Headcount   int    `json:"headcount" validate:"required,min=1"`
		Duration    int    `json:"duration" validate:"omitempty,min=1"`
		Description string `json:"description"`
		ImageURL    string `json:"imageUrl"`
		ActivityID  string `json:"activityId"`
		Score       int    `json:"score" validate:"omitempty,min=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if _, err := timetable.WeekdayLabel(req.Date); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	activity := &domain.LoggedActivity{
		ID:          uuid.NewString(),
		Date:        req.Date,
		Title:       req.Title,
		Headcount:   req.Headcount,
		Duration:    req.Duration,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Score:       resolveScore(req.Score, req.ActivityID, req.Title, req.Duration, req.Headcount),
	}

	if err := h.repository.CreateLoggedActivity(teamCtx.Key(), team.Size, activity); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.invalidateRankings(r, teamCtx.Club)

	h.successResponse(w, r, "활동을 기록했습니다", activity)
}

func (h *Handler) UpdateLoggedActivity(w http.ResponseWriter, r *http.Request) {
	teamCtx := r.Context().Value(TeamContextCtx).(domain.Context)
	activity := r.Context().Value(LoggedActivityCtx).(*domain.LoggedActivity)

	var req struct {
		Date        *string `json:"date"`
		Title       *string `json:"title"`
		Headcount   *int    `json:"headcount" validate:"omitempty,min=1"`
		Duration    *int    `json:"duration" validate:"omitempty,min=1"`
		Description *string `json:"description"`
		ImageURL    *string `json:"imageUrl"`
		ActivityID  string  `json:"activityId"`
		Score       *int    `json:"score" validate:"omitempty,min=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Date != nil {
		if _, err := timetable.WeekdayLabel(*req.Date); err != nil {
			h.errorResponse(w, r, err.Error())
			return
		}
		activity.Date = *req.Date
	}
	if req.Title != nil {
		activity.Title = *req.Title
	}
	if req.Headcount != nil {
		activity.Headcount = *req.Headcount
	}
	if req.Duration != nil {
		activity.Duration = *req.Duration
	}
	if req.Description != nil {
		activity.Description = *req.Description
	}
	if req.ImageURL != nil {
		activity.ImageURL = *req.ImageURL
	}

	// 점수를 직접 주면 그 값을 쓰고, 아니면 바뀐 내용 기준으로 다시 정한다
	if req.Score != nil && *req.Score > 0 {
		activity.Score = *req.Score
	} else {
		activity.Score = resolveScore(0, req.ActivityID, activity.Title, activity.Duration, activity.Headcount)
	}

	if err := h.repository.UpdateLoggedActivity(teamCtx.Key(), activity); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "다른 요청이 먼저 기록을 수정했습니다. 다시 시도해 주세요")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.invalidateRankings(r, teamCtx.Club)

	h.successResponse(w, r, "활동 기록을 수정했습니다", activity)
}

func (h *Handler) DeleteLoggedActivity(w http.ResponseWriter, r *http.Request) {
	teamCtx := r.Context().Value(TeamContextCtx).(domain.Context)
	activity := r.Context().Value(LoggedActivityCtx).(*domain.LoggedActivity)

	if err := h.repository.DeleteLoggedActivity(teamCtx.Key(), activity.ID); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "활동 기록이 존재하지 않습니다")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.invalidateRankings(r, teamCtx.Club)

	h.successResponse(w, r, "활동 기록을 삭제했습니다", nil)
}
