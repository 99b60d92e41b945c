package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/chinba-dev/chinba/backend/internal/domain"
)

func (r *Repository) CreatePersonalSchedule(teamID int64, schedule *domain.PersonalSchedule) error {
	query := `
		INSERT INTO personal_schedules (id, team_id, member_id, title, date, start_hour, end_hour, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	params := []any{
		schedule.ID,
		teamID,
		schedule.MemberID,
		schedule.Title,
		schedule.Date,
		schedule.StartHour,
		schedule.EndHour,
		schedule.Note,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&schedule.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetPersonalSchedulesByTeam(teamID int64) ([]*domain.PersonalSchedule, error) {
	query := `
		SELECT id, member_id, title, date, start_hour, end_hour, note, created_at
		FROM personal_schedules
		WHERE team_id = $1
		ORDER BY date, start_hour
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPersonalSchedules(rows)
}

func (r *Repository) GetPersonalSchedulesByMember(teamID int64, memberID string) ([]*domain.PersonalSchedule, error) {
	query := `
		SELECT id, member_id, title, date, start_hour, end_hour, note, created_at
		FROM personal_schedules
		WHERE team_id = $1 AND member_id = $2
		ORDER BY date, start_hour
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, teamID, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPersonalSchedules(rows)
}

func scanPersonalSchedules(rows *sql.Rows) ([]*domain.PersonalSchedule, error) {
	schedules := []*domain.PersonalSchedule{}
	for rows.Next() {
		var schedule domain.PersonalSchedule
		dst := []any{
			&schedule.ID,
			&schedule.MemberID,
			&schedule.Title,
			&schedule.Date,
			&schedule.StartHour,
			&schedule.EndHour,
			&schedule.Note,
			&schedule.CreatedAt,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		schedules = append(schedules, &schedule)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return schedules, nil
}

// DeletePersonalSchedule 은 일정이 실제로 지워졌는지 확인하기 위해 RETURNING 을 쓴다.
// 없는 일정이면 sql.ErrNoRows 를 돌려준다.
func (r *Repository) DeletePersonalSchedule(teamID int64, id string) error {
	query := `
		DELETE FROM personal_schedules WHERE team_id = $1 AND id = $2
		RETURNING id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var deleted string
	if err := r.dbpool.QueryRowContext(ctx, query, teamID, id).Scan(&deleted); err != nil {
		return err
	}

	return nil
}
