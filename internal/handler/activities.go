package handler

import (
	"net/http"
	"strconv"

	"github.com/chinba-dev/chinba/backend/internal/catalog"
)

func (h *Handler) GetAllActivities(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "활동 카탈로그를 가져왔습니다", catalog.Scored)
}

// RecommendActivities 는 minutes 쿼리로 받은 공강 시간 안에 끝낼 수 있는
// 활동을 소요시간 오름차순으로 돌려준다.
func (h *Handler) RecommendActivities(w http.ResponseWriter, r *http.Request) {
	minutesParam := r.URL.Query().Get("minutes")
	minutes, err := strconv.Atoi(minutesParam)
	if err != nil || minutes < 0 {
		h.errorResponse(w, r, "minutes 값이 올바르지 않습니다")
		return
	}

	h.successResponse(w, r, "추천 활동 목록입니다", catalog.RecommendByMinutes(catalog.Scored, minutes))
}
