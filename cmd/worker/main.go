package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/chinba-dev/chinba/backend/internal/config"
	"github.com/chinba-dev/chinba/backend/internal/domain"
	"github.com/chinba-dev/chinba/backend/internal/extraction"
	"github.com/chinba-dev/chinba/backend/internal/repository"
	"github.com/chinba-dev/chinba/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	/**********************************************
	 * logger 생성
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * 설정 불러오기
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("설정을 불러올 수 없습니다", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * 데이터베이스 연결
	 **********************************************/
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("데이터베이스 연결 풀을 만들 수 없습니다", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	pingCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()
	if err := dbpool.PingContext(pingCtx); err != nil {
		logger.Error("데이터베이스에 연결할 수 없습니다", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	/**********************************************
	 * redis 연결
	 **********************************************/
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       0,
	})

	/**********************************************
	 * 추출 클라이언트 생성
	 **********************************************/
	client := extraction.NewClient(cfg)

	/**********************************************
	 * RabbitMQ 연결
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("RabbitMQ 에 연결할 수 없습니다", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("채널을 만들 수 없습니다", slog.String("error", err.Error()))
		return
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		"extraction_queue", // 큐 이름
		true,               // 지속성 여부
		false,              // 자동 삭제 여부, false 로 해야 소비자가 없을 때 큐가 사라지지 않는다
		false,              // 독점 여부
		false,              // no-wait 여부, false 로 해서 큐 생성 확인을 기다린다
		nil,                // 추가 인자
	)
	if err != nil {
		logger.Error("큐를 선언할 수 없습니다", slog.String("error", err.Error()))
		return
	}

	// CTRL+C 감지
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	msgs, err := ch.Consume(
		q.Name, // 큐
		"",     // 소비자 태그, 비워 두면 RabbitMQ 가 자동으로 정한다
		false,  // 자동 ack 여부
		false,  // 독점 여부
		false,  // no-local, RabbitMQ 가 지원하지 않으므로 false
		false,  // no-wait 여부
		nil,    // 추가 인자
	)
	if err != nil {
		logger.Error("메시지를 소비할 수 없습니다", slog.String("error", err.Error()))
		os.Exit(1)
	}

	setStatus := func(jobID string, result domain.ExtractionResult) {
		encoded, err := json.Marshal(result)
		if err != nil {
			logger.Error("작업 상태 직렬화 실패", slog.String("error", err.Error()))
			return
		}
		expiration := time.Duration(cfg.Redis.ExtractionExpiration) * time.Second
		key := fmt.Sprintf("chinba:extraction:%s", jobID)
		if err := rdb.Set(context.Background(), key, encoded, expiration).Err(); err != nil {
			logger.Error("작업 상태 저장 실패", slog.String("error", err.Error()))
		}
	}

	// goroutine 종료용 컨텍스트
	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-msgs:
				logger.Info("추출 작업 수신", slog.Int("bytes", len(msg.Body)))

				job := domain.ExtractionMessage{}
				if err := json.Unmarshal(msg.Body, &job); err != nil {
					logger.Error("추출 작업 역직렬화 실패", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				setStatus(job.JobID, domain.ExtractionResult{Status: domain.ExtractionProcessing})

				// 같은 이미지를 다시 보내도 결과가 달라질 수 있어서 실패한 작업은 재시도하지 않는다
				participants, err := client.ExtractTimetable(ctx, job.Image, job.MimeType)
				if err != nil {
					logger.Error("시간표 추출 실패", slog.String("jobID", job.JobID), slog.String("error", err.Error()))
					setStatus(job.JobID, domain.ExtractionResult{Status: domain.ExtractionFailed, Message: err.Error()})
					_ = msg.Nack(false, false)
					continue
				}

				existing, err := repo.GetParticipantIDs(job.TeamID)
				if err != nil {
					logger.Error("기존 조원 조회 실패", slog.String("jobID", job.JobID), slog.String("error", err.Error()))
					setStatus(job.JobID, domain.ExtractionResult{Status: domain.ExtractionFailed, Message: "팀 정보를 불러올 수 없습니다"})
					_ = msg.Nack(false, false)
					continue
				}
				utils.EnsureUniqueIDs(existing, participants)

				if err := repo.ImportParticipants(job.TeamID, participants); err != nil {
					logger.Error("조원 저장 실패", slog.String("jobID", job.JobID), slog.String("error", err.Error()))
					setStatus(job.JobID, domain.ExtractionResult{Status: domain.ExtractionFailed, Message: "추출된 조원을 저장할 수 없습니다"})
					_ = msg.Nack(false, false)
					continue
				}

				ids := make([]string, 0, len(participants))
				for _, p := range participants {
					ids = append(ids, p.ID)
				}
				setStatus(job.JobID, domain.ExtractionResult{Status: domain.ExtractionDone, ParticipantIDs: ids})

				logger.Info("추출 작업 완료", slog.String("jobID", job.JobID), slog.Int("participants", len(ids)))
				_ = msg.Ack(false)
			}
		}
	}()

	logger.Info("작업을 기다리는 중...（CTRL+C 로 종료）")
	<-sigChan

	slog.Info("extraction worker 를 종료합니다...")
	cancel()
	wg.Wait()
	slog.Info("extraction worker 가 정상적으로 종료되었습니다")
}
