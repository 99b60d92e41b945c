package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/chinba-dev/chinba/backend/internal/domain"
)

// GetAllClubs 는 모든 동아리와 그 팀 이름 목록을 돌려준다.
func (r *Repository) GetAllClubs() ([]*domain.Club, error) {
	query := `
		SELECT
			c.id,
			c.name,
			t.name
		FROM clubs c
		LEFT JOIN teams t ON t.club_id = c.id
		ORDER BY c.id, t.id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clubs := []*domain.Club{}
	clubsByID := map[int64]*domain.Club{}

	for rows.Next() {
		var (
			clubID   int64
			clubName string
			teamName sql.NullString
		)
		if err := rows.Scan(&clubID, &clubName, &teamName); err != nil {
			return nil, err
		}

		club, exists := clubsByID[clubID]
		if !exists {
			club = &domain.Club{
				ID:    clubID,
				Name:  clubName,
				Teams: []string{},
			}
			clubsByID[clubID] = club
			clubs = append(clubs, club)
		}
		if teamName.Valid {
			club.Teams = append(club.Teams, teamName.String)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return clubs, nil
}

// GetTeamByID 는 조원 목록과 각 조원의 시간표까지 포함한 팀 전체를 돌려준다.
func (r *Repository) GetTeamByID(id int64) (*domain.Team, error) {
	query := `
		SELECT
			t.name,
			c.name,
			t.size,
			t.created_at,
			t.version
		FROM teams t
		JOIN clubs c ON c.id = t.club_id
		WHERE t.id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	team := &domain.Team{
		ID: id,
	}

	dst := []any{
		&team.Name,
		&team.ClubName,
		&team.Size,
		&team.CreatedAt,
		&team.Version,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	participants, err := r.getTeamParticipants(ctx, id)
	if err != nil {
		return nil, err
	}
	team.Participants = participants

	return team, nil
}

// GetTeamByClubAndName 은 (동아리 이름, 팀 이름) 으로 팀을 찾는다.
// 컨텍스트 키에서 팀을 되살릴 때 쓴다.
func (r *Repository) GetTeamByClubAndName(clubName string, teamName string) (*domain.Team, error) {
	query := `
		SELECT t.id
		FROM teams t
		JOIN clubs c ON c.id = t.club_id
		WHERE c.name = $1 AND t.name = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var id int64
	if err := r.dbpool.QueryRowContext(ctx, query, clubName, teamName).Scan(&id); err != nil {
		return nil, err
	}

	return r.GetTeamByID(id)
}

// getTeamParticipants 는 시간표가 비어 있는 조원도 빠뜨리지 않도록 LEFT JOIN 으로 모은다.
func (r *Repository) getTeamParticipants(ctx context.Context, teamID int64) ([]*domain.Participant, error) {
	query := `
		SELECT
			p.id,
			p.name,
			e.subject,
			e.location,
			e.day,
			e.time_range
		FROM participants p
		LEFT JOIN class_entries e ON e.team_id = p.team_id AND e.participant_id = p.id
		WHERE p.team_id = $1
		ORDER BY p.created_at, p.id, e.id
	`

	rows, err := r.dbpool.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	participants := []*domain.Participant{}
	participantsByID := map[string]*domain.Participant{}

	for rows.Next() {
		var (
			participantID   string
			participantName string
			subject         sql.NullString
			location        sql.NullString
			day             sql.NullString
			timeRange       sql.NullString
		)
		dst := []any{
			&participantID,
			&participantName,
			&subject,
			&location,
			&day,
			&timeRange,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		participant, exists := participantsByID[participantID]
		if !exists {
			participant = &domain.Participant{
				ID:        participantID,
				Name:      participantName,
				Timetable: []domain.ClassEntry{},
			}
			participantsByID[participantID] = participant
			participants = append(participants, participant)
		}
		if subject.Valid {
			participant.Timetable = append(participant.Timetable, domain.ClassEntry{
				Subject:  subject.String,
				Location: location.String,
				Day:      day.String,
				Time:     timeRange.String,
			})
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return participants, nil
}

// EnsureClub 은 동아리가 없으면 만들고 id 를 돌려준다. 시드 전용.
func (r *Repository) EnsureClub(name string) (int64, error) {
	query := `
		INSERT INTO clubs (name) VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var id int64
	if err := r.dbpool.QueryRowContext(ctx, query, name).Scan(&id); err != nil {
		return 0, err
	}

	return id, nil
}

// EnsureTeam 은 팀이 없으면 만들고 id 를 돌려준다. 있으면 size 만 맞춘다. 시드 전용.
func (r *Repository) EnsureTeam(clubID int64, name string, size int) (int64, error) {
	query := `
		INSERT INTO teams (club_id, name, size) VALUES ($1, $2, $3)
		ON CONFLICT (club_id, name) DO UPDATE SET size = EXCLUDED.size
		RETURNING id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var id int64
	if err := r.dbpool.QueryRowContext(ctx, query, clubID, name, size).Scan(&id); err != nil {
		return 0, err
	}

	return id, nil
}
