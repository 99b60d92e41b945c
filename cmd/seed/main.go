package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/chinba-dev/chinba/backend/internal/config"
	"github.com/chinba-dev/chinba/backend/internal/repository"
	"github.com/chinba-dev/chinba/backend/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var club string
	var teams int
	var members int

	flag.IntVar(&op, "op", 0, "실행할 작업 (1: 파일에서 실제 데이터 넣기, 2: 무작위 팀 넣기)")
	flag.StringVar(&club, "club", "테스트동아리", "무작위 시드를 넣을 동아리 이름")
	flag.IntVar(&teams, "teams", 3, "무작위로 만들 팀 수")
	flag.IntVar(&members, "members", 5, "팀마다 만들 조원 수")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// 설정 불러오기
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("설정을 불러올 수 없습니다", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 데이터베이스 연결 풀 생성
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

	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case 0:
		slog.Error("작업이 지정되지 않았습니다")
	case 1:
		if err := seed.SeedFromFile(repo, cfg.Seed.TimetablesPath); err != nil {
			slog.Error("파일 시드 실패", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case 2:
		if teams <= 0 || members <= 0 {
			slog.Error("팀 수와 조원 수는 1 이상이어야 합니다")
			os.Exit(1)
		}
		if err := seed.SeedRandom(repo, club, teams, members); err != nil {
			slog.Error("무작위 시드 실패", slog.String("error", err.Error()))
			os.Exit(1)
		}
	default:
		slog.Error("지정한 작업이 올바르지 않습니다")
	}
}
