package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/chinba-dev/chinba/backend/internal/domain"
)

// ContextClaims 는 선택된 (동아리, 팀) 을 담는 쿠키 토큰의 내용이다.
type ContextClaims struct {
	Club string `json:"club"`
	Team string `json:"team"`
	jwt.RegisteredClaims
}

// SelectContext 는 (동아리, 팀) 을 선택하고 http-only 쿠키로 내려준다.
// 점수 조회와 활동 기록은 모두 이 쿠키의 컨텍스트로 구분된다.
func (h *Handler) SelectContext(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Club string `json:"club" validate:"required"`
		Team string `json:"team" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// 존재하는 팀인지 먼저 확인한다
	team, err := h.repository.GetTeamByClubAndName(req.Club, req.Team)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "해당 동아리에 그 팀이 없습니다")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	expiration := time.Now().Add(time.Duration(h.config.JWT.Expiration) * time.Second)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, ContextClaims{
		Club: req.Club,
		Team: req.Team,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiration),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Subject:   domain.Context{Club: req.Club, Team: req.Team}.Key(),
		},
	})
	ss, err := token.SignedString([]byte(h.config.JWT.Secret))
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	cookie := &http.Cookie{
		Name:     "__chinba_context",
		Value:    ss,
		Expires:  expiration,
		Path:     "/",
		HttpOnly: true,
		Secure:   false,
	}

	if h.config.Environment == "production" {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteStrictMode
	}

	http.SetCookie(w, cookie)

	h.successResponse(w, r, "팀을 선택했습니다", team)
}

// GetContext 는 현재 쿠키에 담긴 컨텍스트를 돌려준다. 선택된 팀이 없으면 data 가 null 이다.
func (h *Handler) GetContext(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("__chinba_context")
	if err != nil {
		switch {
		case errors.Is(err, http.ErrNoCookie):
			h.successResponse(w, r, "선택된 팀이 없습니다", nil)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	claims := &ContextClaims{}
	_, err = jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(h.config.JWT.Secret), nil
	})
	if err != nil {
		h.successResponse(w, r, "선택된 팀이 없습니다", nil)
		return
	}

	h.successResponse(w, r, "현재 컨텍스트입니다", domain.Context{Club: claims.Club, Team: claims.Team})
}

func (h *Handler) ClearContext(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:    "__chinba_context",
		Value:   "",
		Expires: time.Now().Add(-time.Hour),
		Path:    "/",
	})

	h.successResponse(w, r, "팀 선택을 해제했습니다", nil)
}
