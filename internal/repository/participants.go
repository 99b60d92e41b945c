package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/chinba-dev/chinba/backend/internal/domain"
)

// CreateParticipant 는 조원 한 명과 그 시간표를 한 트랜잭션으로 넣는다.
func (r *Repository) CreateParticipant(teamID int64, participant *domain.Participant) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := insertParticipant(ctx, tx, teamID, participant); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

// ImportParticipants 는 여러 조원을 한 번에 넣는다. 하나라도 실패하면 전부 되돌린다.
func (r *Repository) ImportParticipants(teamID int64, participants []*domain.Participant) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, participant := range participants {
		if err := insertParticipant(ctx, tx, teamID, participant); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func insertParticipant(ctx context.Context, tx *sql.Tx, teamID int64, participant *domain.Participant) error {
	query := `
		INSERT INTO participants (team_id, id, name) VALUES ($1, $2, $3)
	`

	if _, err := tx.ExecContext(ctx, query, teamID, participant.ID, participant.Name); err != nil {
		return err
	}

	entryQuery := `
		INSERT INTO class_entries (team_id, participant_id, subject, location, day, time_range)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for _, entry := range participant.Timetable {
		params := []any{teamID, participant.ID, entry.Subject, entry.Location, entry.Day, entry.Time}
		if _, err := tx.ExecContext(ctx, entryQuery, params...); err != nil {
			return err
		}
	}

	return nil
}

// AppendClassEntries 는 기존 조원의 시간표에 수업을 추가한다.
// 조원이 없으면 sql.ErrNoRows 를 돌려준다.
func (r *Repository) AppendClassEntries(teamID int64, participantID string, entries []domain.ClassEntry) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var exists string
	checkQuery := `
		SELECT id FROM participants WHERE team_id = $1 AND id = $2
	`
	if err := tx.QueryRowContext(ctx, checkQuery, teamID, participantID).Scan(&exists); err != nil {
		return err
	}

	entryQuery := `
		INSERT INTO class_entries (team_id, participant_id, subject, location, day, time_range)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	for _, entry := range entries {
		params := []any{teamID, participantID, entry.Subject, entry.Location, entry.Day, entry.Time}
		if _, err := tx.ExecContext(ctx, entryQuery, params...); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetParticipant(teamID int64, participantID string) (*domain.Participant, error) {
	query := `
		SELECT name FROM participants WHERE team_id = $1 AND id = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	participant := &domain.Participant{
		ID: participantID,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, teamID, participantID).Scan(&participant.Name); err != nil {
		return nil, err
	}

	return participant, nil
}

// GetParticipantIDs 는 팀에 이미 있는 조원 id 목록을 돌려준다.
// 시간표 추출 결과를 합칠 때 id 충돌을 피하는 데 쓴다.
func (r *Repository) GetParticipantIDs(teamID int64) ([]string, error) {
	query := `
		SELECT id FROM participants WHERE team_id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}
