package handler

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/chinba-dev/chinba/backend/internal/domain"
	"github.com/chinba-dev/chinba/backend/internal/utils"
)

func (h *Handler) CreateParticipant(w http.ResponseWriter, r *http.Request) {
	team := r.Context().Value(TeamCtx).(*domain.Team)

	var req struct {
		ID        string              `json:"id" validate:"required"`
		Name      string              `json:"name" validate:"required"`
		Timetable []domain.ClassEntry `json:"timetable"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := utils.ValidateClassEntries(req.Timetable); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	participant := &domain.Participant{
		ID:        req.ID,
		Name:      req.Name,
		Timetable: req.Timetable,
	}

	if err := h.repository.CreateParticipant(team.ID, participant); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "participants_pkey":
			h.errorResponse(w, r, "이미 존재하는 조원 ID입니다")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "조원을 추가했습니다", participant)
}

// ImportParticipants 는 여러 조원을 한 번에 추가한다.
// ID 가 없거나 기존 조원과 겹치는 항목에는 겹치지 않는 ID 를 새로 매긴다.
func (h *Handler) ImportParticipants(w http.ResponseWriter, r *http.Request) {
	team := r.Context().Value(TeamCtx).(*domain.Team)

	var req struct {
		Participants []struct {
			ID        string              `json:"id"`
			Name      string              `json:"name" validate:"required"`
			Timetable []domain.ClassEntry `json:"timetable"`
		} `json:"participants" validate:"required,min=1,dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	participants := make([]*domain.Participant, 0, len(req.Participants))
	for _, p := range req.Participants {
		if err := utils.ValidateClassEntries(p.Timetable); err != nil {
			h.errorResponse(w, r, err.Error())
			return
		}
		participants = append(participants, &domain.Participant{
			ID:        p.ID,
			Name:      p.Name,
			Timetable: p.Timetable,
		})
	}

	existing := make([]string, 0, len(team.Participants))
	for _, p := range team.Participants {
		existing = append(existing, p.ID)
	}
	utils.EnsureUniqueIDs(existing, participants)

	if err := h.repository.ImportParticipants(team.ID, participants); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "조원들을 가져왔습니다", participants)
}

// AppendTimetable 은 기존 조원의 시간표에 수업을 추가한다. 삭제는 지원하지 않는다.
func (h *Handler) AppendTimetable(w http.ResponseWriter, r *http.Request) {
	team := r.Context().Value(TeamCtx).(*domain.Team)
	participant := r.Context().Value(ParticipantCtx).(*domain.Participant)

	var req struct {
		Entries []domain.ClassEntry `json:"entries" validate:"required,min=1"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := utils.ValidateClassEntries(req.Entries); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if err := h.repository.AppendClassEntries(team.ID, participant.ID, req.Entries); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "시간표를 추가했습니다", nil)
}
