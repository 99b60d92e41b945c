package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/chinba-dev/chinba/backend/internal/domain"
)

const maxExtractionImageSize = 10 << 20 // 10MiB

func extractionStatusKey(jobID string) string {
	return fmt.Sprintf("chinba:extraction:%s", jobID)
}

// CreateExtraction 은 시간표 이미지를 받아 추출 작업을 큐에 넣는다.
// 실제 분석은 워커가 하고, 클라이언트는 작업 ID 로 결과를 조회한다.
func (h *Handler) CreateExtraction(w http.ResponseWriter, r *http.Request) {
	team := r.Context().Value(TeamCtx).(*domain.Team)

	if err := r.ParseMultipartForm(maxExtractionImageSize); err != nil {
		h.errorResponse(w, r, "이미지 업로드 형식이 올바르지 않습니다")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		h.errorResponse(w, r, "image 파일이 필요합니다")
		return
	}
	defer file.Close()

	mimeType := header.Header.Get("Content-Type")
	switch mimeType {
	case "image/png", "image/jpeg", "image/webp":
	default:
		h.errorResponse(w, r, "지원하지 않는 이미지 형식입니다")
		return
	}

	image, err := io.ReadAll(io.LimitReader(file, maxExtractionImageSize))
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	jobID := uuid.NewString()

	// 작업 상태를 먼저 기록해 두어야 발행 직후 조회해도 404 가 나지 않는다
	result := domain.ExtractionResult{Status: domain.ExtractionPending}
	if err := h.setExtractionResult(r.Context(), jobID, result); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	message := domain.ExtractionMessage{
		JobID:    jobID,
		TeamID:   team.ID,
		MimeType: mimeType,
		Image:    image,
	}
	body, err := json.Marshal(message)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.extractionChannel.PublishWithContext(
		ctx,
		"",
		"extraction_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	data := struct {
		JobID  string                  `json:"jobId"`
		Status domain.ExtractionStatus `json:"status"`
	}{
		JobID:  jobID,
		Status: domain.ExtractionPending,
	}

	h.successResponse(w, r, "시간표 추출 작업을 접수했습니다", data)
}

func (h *Handler) setExtractionResult(ctx context.Context, jobID string, result domain.ExtractionResult) error {
	encoded, err := json.Marshal(result)
	if err != nil {
		return err
	}
	expiration := time.Duration(h.config.Redis.ExtractionExpiration) * time.Second
	return h.redisClient.Set(ctx, extractionStatusKey(jobID), encoded, expiration).Err()
}

// GetExtraction 은 추출 작업의 현재 상태를 돌려준다.
func (h *Handler) GetExtraction(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")

	raw, err := h.redisClient.Get(r.Context(), extractionStatusKey(jobID)).Result()
	if err != nil {
		switch {
		case errors.Is(err, redis.Nil):
			h.errorResponse(w, r, "추출 작업이 존재하지 않습니다")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	var result domain.ExtractionResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "추출 작업 상태입니다", result)
}
