package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/chinba-dev/chinba/backend/internal/config"
	"github.com/chinba-dev/chinba/backend/internal/handler"
	"github.com/chinba-dev/chinba/backend/internal/repository"

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
		logger.Error("설정을 불러올 수 없습니다", "error", err)
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

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open 은 연결 풀 객체만 만들고 실제로 연결하지는 않으므로 ping 으로 확인한다
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("데이터베이스에 연결할 수 없습니다", "error", err)
		return
	}

	/**********************************************
	 * repository 생성
	 **********************************************/
	repo := repository.NewRepository(cfg, dbpool)

	/**********************************************
	 * rabbitmq 연결
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("rabbitmq 에 연결할 수 없습니다", "error", err)
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("채널을 만들 수 없습니다", "error", err)
		return
	}
	defer ch.Close()

	_, err = ch.QueueDeclare(
		"extraction_queue",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Error("큐를 선언할 수 없습니다", "error", err)
		return
	}

	/**********************************************
	 * redis 연결
	 **********************************************/
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       0,
	})

	/**********************************************
	 * handler 생성
	 **********************************************/
	handler, err := handler.NewHandler(cfg, repo, ch, rdb)
	if err != nil {
		logger.Error("handler 를 만들 수 없습니다", "error", err)
		return
	}
	handler.RegisterRoutes()

	/**********************************************
	 * HTTP 서버 시작
	 **********************************************/
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      handler.Mux,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("서버를 시작합니다...", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("서버를 시작할 수 없습니다", slog.String("error", err.Error()))
			return
		}
	}()

	<-quit
	logger.Info("서버를 종료합니다...")

	ctx, cancel = context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("서버 종료 실패", slog.String("error", err.Error()))
	}
	logger.Info("서버가 정상적으로 종료되었습니다")
}
