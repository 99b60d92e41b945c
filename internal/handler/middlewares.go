package handler

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/chinba-dev/chinba/backend/internal/domain"
)

type ResponseWriter struct {
	http.ResponseWriter
	StatusCode int
}

func (rw *ResponseWriter) WriteHeader(statusCode int) {
	rw.StatusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (h *Handler) logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &ResponseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)
		duration := time.Since(start)
		slog.Info("요청 처리 완료", "status", rw.StatusCode, "ip", r.RemoteAddr, "method", r.Method, "path", r.URL.Path, "duration", duration)
	})
}

func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				h.internalServerError(w, r, fmt.Errorf("panic: %v", err))
				stackTrace := string(debug.Stack())
				fmt.Print(stackTrace) // slog 로 찍으면 줄바꿈이 깨져서 읽기 어렵다
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// teamContext 는 컨텍스트 쿠키를 검증하고 (동아리, 팀) 컨텍스트와
// 해당 팀 전체를 요청 context 에 붙인다.
func (h *Handler) teamContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("__chinba_context")
		if err != nil {
			switch {
			case errors.Is(err, http.ErrNoCookie):
				h.errorResponse(w, r, "팀이 선택되지 않았습니다")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		tokenString := cookie.Value
		claims := &ContextClaims{}
		_, err = jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(h.config.JWT.Secret), nil
		})
		if err != nil {
			h.errorResponse(w, r, "유효하지 않은 컨텍스트입니다")
			return
		}

		teamCtx := domain.Context{Club: claims.Club, Team: claims.Team}

		team, err := h.repository.GetTeamByClubAndName(teamCtx.Club, teamCtx.Team)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "선택된 팀이 더 이상 존재하지 않습니다")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := r.Context()
		ctx = context.WithValue(ctx, TeamContextCtx, teamCtx)
		ctx = context.WithValue(ctx, ContextTeamCtx, team)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) team(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		teamIDParam := chi.URLParam(r, "teamID")
		teamID, err := strconv.ParseInt(teamIDParam, 10, 64)
		if err != nil {
			h.errorResponse(w, r, "팀 ID가 올바르지 않습니다")
			return
		}

		team, err := h.repository.GetTeamByID(teamID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "팀이 존재하지 않습니다")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), TeamCtx, team)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) participant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		team := r.Context().Value(TeamCtx).(*domain.Team)
		participantID := chi.URLParam(r, "participantID")

		participant, err := h.repository.GetParticipant(team.ID, participantID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "조원이 존재하지 않습니다")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), ParticipantCtx, participant)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) loggedActivity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		teamCtx := r.Context().Value(TeamContextCtx).(domain.Context)
		activityID := chi.URLParam(r, "activityID")

		activity, err := h.repository.GetLoggedActivityByID(teamCtx.Key(), activityID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "활동 기록이 존재하지 않습니다")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), LoggedActivityCtx, activity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// adminOnly 는 X-Admin-Password 헤더를 관리자 비밀번호 해시와 대조한다.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		password := r.Header.Get("X-Admin-Password")
		if err := bcrypt.CompareHashAndPassword(h.adminHash, []byte(password)); err != nil {
			switch {
			case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
				h.errorResponse(w, r, "관리자 권한이 필요합니다")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}
		next.ServeHTTP(w, r)
	})
}
