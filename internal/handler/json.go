package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
)

func (h *Handler) logInternalServerError(r *http.Request, err error) {
	slog.Error("서버 내부 오류", "method", r.Method, "path", r.URL.Path, "error", err)
}

func (h *Handler) readJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logInternalServerError(r, err)
		http.Error(w, "서버 내부 오류", http.StatusInternalServerError)
	}
}

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func (h *Handler) errorResponse(w http.ResponseWriter, r *http.Request, msg string) {
	h.writeJSON(w, r, http.StatusOK, Response{
		Success: false,
		Message: msg,
		Data:    nil,
	})
}

func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		h.errorResponse(w, r, err.Error())
		return
	}

	h.errorResponse(w, r, koreanValidationMessage(validationErrors[0]))
}

// koreanValidationMessage 는 검증 태그를 한국어 메시지로 바꾼다.
// validator 에는 한국어 번역 카탈로그가 없어서 직접 매핑한다.
func koreanValidationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s 은(는) 필수 항목입니다", fe.Field())
	case "min":
		return fmt.Sprintf("%s 은(는) %s 이상이어야 합니다", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s 은(는) %s 이하여야 합니다", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s 은(는) %s 이상이어야 합니다", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s 은(는) %s 이하여야 합니다", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s 은(는) [%s] 중 하나여야 합니다", fe.Field(), fe.Param())
	case "dive":
		return fmt.Sprintf("%s 에 잘못된 항목이 있습니다", fe.Field())
	default:
		return fmt.Sprintf("%s 값이 올바르지 않습니다", fe.Field())
	}
}

func (h *Handler) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	h.logInternalServerError(r, err)
	h.writeJSON(w, r, http.StatusInternalServerError, Response{
		Success: false,
		Message: "서버 내부 오류",
		Data:    nil,
	})
}

func (h *Handler) successResponse(w http.ResponseWriter, r *http.Request, msg string, data any) {
	h.writeJSON(w, r, http.StatusOK, Response{
		Success: true,
		Message: msg,
		Data:    data,
	})
}
