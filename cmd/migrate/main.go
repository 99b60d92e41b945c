package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/chinba-dev/chinba/backend/internal/config"
)

func main() {
	var dir string
	flag.StringVar(&dir, "dir", "./migrations", "마이그레이션 파일 디렉토리")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("설정을 불러올 수 없습니다", slog.String("error", err.Error()))
		os.Exit(1)
	}

	m, err := migrate.New("file://"+dir, cfg.Database.DSN)
	if err != nil {
		logger.Error("마이그레이터를 만들 수 없습니다", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			logger.Error("마이그레이션 소스 닫기 실패", slog.String("error", srcErr.Error()))
		}
		if dbErr != nil {
			logger.Error("마이그레이션 DB 연결 닫기 실패", slog.String("error", dbErr.Error()))
		}
	}()

	switch flag.Arg(0) {
	case "up":
		if err := m.Up(); err != nil {
			if errors.Is(err, migrate.ErrNoChange) {
				logger.Info("적용할 마이그레이션이 없습니다")
				return
			}
			logger.Error("마이그레이션 실패", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("마이그레이션을 적용했습니다")
	case "down":
		steps := 1
		if arg := flag.Arg(1); arg != "" {
			steps, err = strconv.Atoi(arg)
			if err != nil || steps <= 0 {
				logger.Error("되돌릴 단계 수가 올바르지 않습니다", slog.String("arg", arg))
				os.Exit(1)
			}
		}
		if err := m.Steps(-steps); err != nil {
			if errors.Is(err, migrate.ErrNoChange) {
				logger.Info("되돌릴 마이그레이션이 없습니다")
				return
			}
			logger.Error("마이그레이션 되돌리기 실패", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("마이그레이션을 되돌렸습니다", slog.Int("steps", steps))
	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			logger.Info("아직 적용된 마이그레이션이 없습니다")
			return
		}
		if err != nil {
			logger.Error("버전을 읽을 수 없습니다", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("현재 스키마 버전", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
	default:
		logger.Error("사용법: migrate [-dir ./migrations] <up|down [n]|version>")
		os.Exit(2)
	}
}
