package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/chinba-dev/chinba/backend/internal/domain"
)

func (r *Repository) GetLoggedActivities(teamKey string) ([]*domain.LoggedActivity, error) {
	query := `
		SELECT id, date, title, headcount, duration, description, image_url, score, created_at, version
		FROM logged_activities
		WHERE team_key = $1
		ORDER BY created_at DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, teamKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := []*domain.LoggedActivity{}
	for rows.Next() {
		var activity domain.LoggedActivity
		dst := []any{
			&activity.ID,
			&activity.Date,
			&activity.Title,
			&activity.Headcount,
			&activity.Duration,
			&activity.Description,
			&activity.ImageURL,
			&activity.Score,
			&activity.CreatedAt,
			&activity.Version,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		activities = append(activities, &activity)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return activities, nil
}

func (r *Repository) GetLoggedActivityByID(teamKey string, id string) (*domain.LoggedActivity, error) {
	query := `
		SELECT date, title, headcount, duration, description, image_url, score, created_at, version
		FROM logged_activities
		WHERE team_key = $1 AND id = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	activity := &domain.LoggedActivity{
		ID: id,
	}
	dst := []any{
		&activity.Date,
		&activity.Title,
		&activity.Headcount,
		&activity.Duration,
		&activity.Description,
		&activity.ImageURL,
		&activity.Score,
		&activity.CreatedAt,
		&activity.Version,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, teamKey, id).Scan(dst...); err != nil {
		return nil, err
	}

	return activity, nil
}

// CreateLoggedActivity 는 활동 기록 삽입과 팀 누적치 갱신을 한 트랜잭션으로 처리한다.
// 누적치 행은 먼저 잠근 뒤에 고치기 때문에 동시에 여러 기록이 들어와도 점수가 어긋나지 않는다.
func (r *Repository) CreateLoggedActivity(teamKey string, members int, activity *domain.LoggedActivity) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	meta, err := lockTeamMeta(ctx, tx, teamKey, members)
	if err != nil {
		return err
	}

	insertQuery := `
		INSERT INTO logged_activities (id, team_key, date, title, headcount, duration, description, image_url, score)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, version
	`
	params := []any{
		activity.ID,
		teamKey,
		activity.Date,
		activity.Title,
		activity.Headcount,
		activity.Duration,
		activity.Description,
		activity.ImageURL,
		activity.Score,
	}
	if err := tx.QueryRowContext(ctx, insertQuery, params...).Scan(&activity.CreatedAt, &activity.Version); err != nil {
		return err
	}

	meta.AddSample(activity.Duration, activity.Headcount)
	meta.AddScore(activity.Score)
	if err := saveTeamMeta(ctx, tx, teamKey, meta); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

// UpdateLoggedActivity 는 기존 기록을 잠근 채로 읽어서 점수 차이만큼만 누적치에 반영한다.
// activity.Version 이 현재 값과 다르면 sql.ErrNoRows 를 돌려준다.
func (r *Repository) UpdateLoggedActivity(teamKey string, activity *domain.LoggedActivity) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	meta, err := lockTeamMeta(ctx, tx, teamKey, 0)
	if err != nil {
		return err
	}

	var (
		oldHeadcount int
		oldDuration  int
		oldScore     int
	)
	selectQuery := `
		SELECT headcount, duration, score
		FROM logged_activities
		WHERE team_key = $1 AND id = $2
		FOR UPDATE
	`
	if err := tx.QueryRowContext(ctx, selectQuery, teamKey, activity.ID).Scan(&oldHeadcount, &oldDuration, &oldScore); err != nil {
		return err
	}

	updateQuery := `
		UPDATE logged_activities
		SET
			date = $1,
			title = $2,
			headcount = $3,
			duration = $4,
			description = $5,
			image_url = $6,
			score = $7,
			version = version + 1
		WHERE team_key = $8 AND id = $9 AND version = $10
		RETURNING version
	`
	params := []any{
		activity.Date,
		activity.Title,
		activity.Headcount,
		activity.Duration,
		activity.Description,
		activity.ImageURL,
		activity.Score,
		teamKey,
		activity.ID,
		activity.Version,
	}
	if err := tx.QueryRowContext(ctx, updateQuery, params...).Scan(&activity.Version); err != nil {
		return err
	}

	meta.UpdateSample(oldDuration, oldHeadcount, activity.Duration, activity.Headcount)
	meta.AddScore(activity.Score - oldScore)
	if err := saveTeamMeta(ctx, tx, teamKey, meta); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteLoggedActivity(teamKey string, id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	meta, err := lockTeamMeta(ctx, tx, teamKey, 0)
	if err != nil {
		return err
	}

	var (
		headcount int
		duration  int
		score     int
	)
	deleteQuery := `
		DELETE FROM logged_activities
		WHERE team_key = $1 AND id = $2
		RETURNING headcount, duration, score
	`
	if err := tx.QueryRowContext(ctx, deleteQuery, teamKey, id).Scan(&headcount, &duration, &score); err != nil {
		return err
	}

	meta.RemoveSample(duration, headcount)
	meta.AddScore(-score)
	if err := saveTeamMeta(ctx, tx, teamKey, meta); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

// lockTeamMeta 는 팀 누적치 행을 만들고(없으면) FOR UPDATE 로 잠근 뒤 돌려준다.
func lockTeamMeta(ctx context.Context, tx *sql.Tx, teamKey string, members int) (*domain.TeamMeta, error) {
	ensureQuery := `
		INSERT INTO team_meta (team_key, members) VALUES ($1, $2)
		ON CONFLICT (team_key) DO NOTHING
	`
	if _, err := tx.ExecContext(ctx, ensureQuery, teamKey, members); err != nil {
		return nil, err
	}

	query := `
		SELECT members, activity_count, total_minutes, part_sum, part_samples, score, version
		FROM team_meta
		WHERE team_key = $1
		FOR UPDATE
	`

	var meta domain.TeamMeta
	dst := []any{
		&meta.Members,
		&meta.ActivityCount,
		&meta.TotalMinutes,
		&meta.PartSum,
		&meta.PartSamples,
		&meta.Score,
		&meta.Version,
	}
	if err := tx.QueryRowContext(ctx, query, teamKey).Scan(dst...); err != nil {
		return nil, err
	}

	return &meta, nil
}

func saveTeamMeta(ctx context.Context, tx *sql.Tx, teamKey string, meta *domain.TeamMeta) error {
	query := `
		UPDATE team_meta
		SET
			activity_count = $1,
			total_minutes = $2,
			part_sum = $3,
			part_samples = $4,
			score = $5,
			version = version + 1
		WHERE team_key = $6 AND version = $7
		RETURNING version
	`

	params := []any{
		meta.ActivityCount,
		meta.TotalMinutes,
		meta.PartSum,
		meta.PartSamples,
		meta.Score,
		teamKey,
		meta.Version,
	}
	if err := tx.QueryRowContext(ctx, query, params...).Scan(&meta.Version); err != nil {
		return err
	}

	return nil
}

// GetTeamMeta 는 누적치를 읽기만 한다. 행이 없으면 sql.ErrNoRows 를 돌려준다.
func (r *Repository) GetTeamMeta(teamKey string) (*domain.TeamMeta, error) {
	query := `
		SELECT members, activity_count, total_minutes, part_sum, part_samples, score, version
		FROM team_meta
		WHERE team_key = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var meta domain.TeamMeta
	dst := []any{
		&meta.Members,
		&meta.ActivityCount,
		&meta.TotalMinutes,
		&meta.PartSum,
		&meta.PartSamples,
		&meta.Score,
		&meta.Version,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, teamKey).Scan(dst...); err != nil {
		return nil, err
	}

	return &meta, nil
}

// GetClubRankings 는 동아리 안 모든 팀을 점수 내림차순으로 돌려준다.
// team_key 는 "동아리/팀" 형식이므로 접두사로 같은 동아리를 골라낸다.
func (r *Repository) GetClubRankings(clubName string) ([]*domain.TeamRanking, error) {
	query := `
		SELECT team_key, activity_count, total_minutes, part_sum, part_samples, score
		FROM team_meta
		WHERE team_key LIKE $1 || '/%'
		ORDER BY score DESC, team_key
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, clubName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rankings := []*domain.TeamRanking{}
	for rows.Next() {
		var (
			teamKey string
			meta    domain.TeamMeta
		)
		dst := []any{
			&teamKey,
			&meta.ActivityCount,
			&meta.TotalMinutes,
			&meta.PartSum,
			&meta.PartSamples,
			&meta.Score,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		teamName := teamKey
		if idx := strings.Index(teamKey, "/"); idx >= 0 {
			teamName = teamKey[idx+1:]
		}
		rankings = append(rankings, &domain.TeamRanking{
			Rank:             len(rankings) + 1,
			Team:             teamName,
			Score:            meta.Score,
			ActivityCount:    meta.ActivityCount,
			TotalMinutes:     meta.TotalMinutes,
			AvgParticipation: meta.AvgParticipation(),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rankings, nil
}

// ResetTeam 은 한 팀의 활동 기록, 누적치, 개인 일정을 모두 지운다. 관리자 전용.
func (r *Repository) ResetTeam(teamKey string, teamID int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM logged_activities WHERE team_key = $1`, teamKey); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM team_meta WHERE team_key = $1`, teamKey); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM personal_schedules WHERE team_id = $1`, teamID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

// ResetAll 은 모든 팀의 활동 기록과 누적치를 지운다. 관리자 전용.
func (r *Repository) ResetAll() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM logged_activities`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM team_meta`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM personal_schedules`); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}
