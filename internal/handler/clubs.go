package handler

import "net/http"

func (h *Handler) GetAllClubs(w http.ResponseWriter, r *http.Request) {
	clubs, err := h.repository.GetAllClubs()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "동아리 목록을 가져왔습니다", clubs)
}
