package handler

import (
	"net/http"
	"strings"

	"github.com/chinba-dev/chinba/backend/internal/domain"
	"github.com/chinba-dev/chinba/backend/internal/timetable"
)

// GetMergedTimetable 은 선택된 조원들의 시간표와 개인 일정을 겹쳐서
// 시간대별 점유 현황과 모두가 비는 공강 구간을 돌려준다.
// participants 쿼리가 비어 있으면 팀 전체를 대상으로 한다.
func (h *Handler) GetMergedTimetable(w http.ResponseWriter, r *http.Request) {
	team := r.Context().Value(TeamCtx).(*domain.Team)

	var selectedIDs []string
	if raw := r.URL.Query().Get("participants"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				selectedIDs = append(selectedIDs, id)
			}
		}
	}
	if len(selectedIDs) == 0 {
		for _, p := range team.Participants {
			selectedIDs = append(selectedIDs, p.ID)
		}
	}

	schedules, err := h.repository.GetPersonalSchedulesByTeam(team.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	grid := timetable.BuildOccupancy(team.Participants, selectedIDs, schedules)

	data := struct {
		Slots      []*timetable.Slot     `json:"slots"`
		FreeBlocks []timetable.FreeBlock `json:"freeBlocks"`
	}{
		Slots:      timetable.SortedSlots(grid),
		FreeBlocks: timetable.AllFreeBlocks(grid),
	}

	h.successResponse(w, r, "합친 시간표를 만들었습니다", data)
}
