package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/chinba-dev/chinba/backend/internal/domain"
	"github.com/chinba-dev/chinba/backend/internal/timetable"
)

// GetPersonalSchedules 는 팀의 개인 일정을 돌려준다. memberId 쿼리로 한 명만 볼 수도 있다.
func (h *Handler) GetPersonalSchedules(w http.ResponseWriter, r *http.Request) {
	team := r.Context().Value(TeamCtx).(*domain.Team)

	var (
		schedules []*domain.PersonalSchedule
		err       error
	)
	if memberID := r.URL.Query().Get("memberId"); memberID != "" {
		schedules, err = h.repository.GetPersonalSchedulesByMember(team.ID, memberID)
	} else {
		schedules, err = h.repository.GetPersonalSchedulesByTeam(team.ID)
	}
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "개인 일정 목록을 가져왔습니다", schedules)
}

func (h *Handler) CreatePersonalSchedule(w http.ResponseWriter, r *http.Request) {
	team := r.Context().Value(TeamCtx).(*domain.Team)

	var req struct {
		MemberID  string `json:"memberId" validate:"required"`
		Title     string `json:"title" validate:"required"`
		Date      string `json:"date" validate:"required"`
		StartHour int    `json:"startHour" validate:"gte=0,lte=24"`
		EndHour   int    `json:"endHour" validate:"gte=0,lte=24"`
		Note      string `json:"note"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// 날짜는 요일로 환산할 수 있어야 한다
	if _, err := timetable.WeekdayLabel(req.Date); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	schedule := &domain.PersonalSchedule{
		ID:        uuid.NewString(),
		MemberID:  req.MemberID,
		Title:     req.Title,
		Date:      req.Date,
		StartHour: req.StartHour,
		EndHour:   req.EndHour,
		Note:      req.Note,
	}
	if !schedule.ValidTimeRange() {
		h.errorResponse(w, r, "시작 시간은 종료 시간보다 빨라야 합니다")
		return
	}

	// 팀에 없는 조원의 일정은 만들 수 없다
	if _, err := h.repository.GetParticipant(team.ID, req.MemberID); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "조원이 존재하지 않습니다")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := h.repository.CreatePersonalSchedule(team.ID, schedule); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "개인 일정을 추가했습니다", schedule)
}

func (h *Handler) DeletePersonalSchedule(w http.ResponseWriter, r *http.Request) {
	team := r.Context().Value(TeamCtx).(*domain.Team)
	scheduleID := chi.URLParam(r, "scheduleID")

	if err := h.repository.DeletePersonalSchedule(team.ID, scheduleID); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "개인 일정이 존재하지 않습니다")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "개인 일정을 삭제했습니다", nil)
}
