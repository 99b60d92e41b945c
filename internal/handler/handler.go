package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/chinba-dev/chinba/backend/internal/config"
	"github.com/chinba-dev/chinba/backend/internal/repository"
)

type Handler struct {
	validate          *validator.Validate
	config            *config.Config
	repository        *repository.Repository
	extractionChannel *amqp.Channel
	redisClient       *redis.Client
	adminHash         []byte

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, extractionCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// 관리자 비밀번호는 평문으로 들고 있지 않는다
	adminHash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &Handler{
		validate:          validate,
		config:            cfg,
		repository:        repo,
		extractionChannel: extractionCh,
		redisClient:       rdb,
		adminHash:         adminHash,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// 동아리와 팀 목록
	h.Mux.Get("/clubs", h.GetAllClubs)

	// 현재 선택된 (동아리, 팀) 컨텍스트
	h.Mux.Route("/context", func(r chi.Router) {
		r.Post("/", h.SelectContext)
		r.Get("/", h.GetContext)
		r.Delete("/", h.ClearContext)
	})

	// 활동 카탈로그와 추천
	h.Mux.Route("/activities", func(r chi.Router) {
		r.Get("/", h.GetAllActivities)
		r.Get("/recommend", h.RecommendActivities)
	})

	// 팀 단위 API
	h.Mux.Route("/teams/{teamID}", func(r chi.Router) {
		r.Use(h.team)
		r.Get("/", h.GetTeam)
		r.Get("/merged-timetable", h.GetMergedTimetable)

		r.Route("/participants", func(r chi.Router) {
			r.Post("/", h.CreateParticipant)
			r.Post("/import", h.ImportParticipants)
			r.Route("/{participantID}", func(r chi.Router) {
				r.Use(h.participant)
				r.Post("/timetable", h.AppendTimetable)
			})
		})

		r.Route("/personal-schedules", func(r chi.Router) {
			r.Get("/", h.GetPersonalSchedules)
			r.Post("/", h.CreatePersonalSchedule)
			r.Delete("/{scheduleID}", h.DeletePersonalSchedule)
		})

		// 시간표 이미지에서 조원을 추출하는 작업은 워커가 비동기로 처리한다
		r.Post("/extractions", h.CreateExtraction)

		r.With(h.adminOnly).Post("/reset", h.ResetTeam)
	})

	h.Mux.Get("/extractions/{jobID}", h.GetExtraction)

	// 이하 API 는 컨텍스트 쿠키가 있어야 호출할 수 있다
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.teamContext)

		r.Route("/logbook", func(r chi.Router) {
			r.Get("/", h.GetLoggedActivities)
			r.Post("/", h.CreateLoggedActivity)
			r.Route("/{activityID}", func(r chi.Router) {
				r.Use(h.loggedActivity)
				r.Patch("/", h.UpdateLoggedActivity)
				r.Delete("/", h.DeleteLoggedActivity)
			})
		})

		r.Get("/score", h.GetScore)
		r.Get("/rankings", h.GetRankings)
	})

	h.Mux.With(h.adminOnly).Post("/reset", h.ResetAll)
}
