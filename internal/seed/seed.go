package seed

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/chinba-dev/chinba/backend/internal/domain"
	"github.com/chinba-dev/chinba/backend/internal/repository"
	"github.com/chinba-dev/chinba/backend/internal/utils"
)

type seedParticipant struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	Timetable []domain.ClassEntry `json:"timetable"`
}

type seedTeam struct {
	ClubName     string            `json:"clubName"`
	TeamName     string            `json:"teamName"`
	TeamSize     int               `json:"teamSize"`
	Participants []seedParticipant `json:"participants"`
}

// SeedFromFile 은 json 파일에 적힌 동아리/팀/조원 데이터를 넣는다.
// 이미 조원이 있는 팀은 건드리지 않는다.
func SeedFromFile(repo *repository.Repository, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("시드 파일을 열 수 없습니다: %w", err)
	}

	teams := map[string]seedTeam{}
	if err := json.Unmarshal(raw, &teams); err != nil {
		return fmt.Errorf("시드 파일을 해석할 수 없습니다: %w", err)
	}

	for key, team := range teams {
		if team.ClubName == "" || team.TeamName == "" {
			slog.Warn("동아리나 팀 이름이 비어 있어 건너뜁니다", "key", key)
			continue
		}
		size := team.TeamSize
		if size <= 0 {
			size = len(team.Participants)
		}

		clubID, err := repo.EnsureClub(team.ClubName)
		if err != nil {
			return err
		}
		teamID, err := repo.EnsureTeam(clubID, team.TeamName, size)
		if err != nil {
			return err
		}

		existing, err := repo.GetParticipantIDs(teamID)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			slog.Info("이미 조원이 있는 팀이라 건너뜁니다", "club", team.ClubName, "team", team.TeamName)
			continue
		}

		participants := make([]*domain.Participant, 0, len(team.Participants))
		for _, p := range team.Participants {
			participants = append(participants, &domain.Participant{
				ID:        p.ID,
				Name:      p.Name,
				Timetable: p.Timetable,
			})
		}
		utils.EnsureUniqueIDs(existing, participants)

		if err := repo.ImportParticipants(teamID, participants); err != nil {
			return err
		}
		slog.Info("팀 시드 완료", "club", team.ClubName, "team", team.TeamName, "participants", len(participants))
	}

	return nil
}

// SeedRandom 은 한 동아리에 무작위 조원으로 채운 팀들을 만든다. 개발용.
func SeedRandom(repo *repository.Repository, clubName string, teamCount, membersPerTeam int) error {
	clubID, err := repo.EnsureClub(clubName)
	if err != nil {
		return err
	}

	for i := 1; i <= teamCount; i++ {
		teamName := fmt.Sprintf("%d조", i)
		teamID, err := repo.EnsureTeam(clubID, teamName, membersPerTeam)
		if err != nil {
			return err
		}

		existing, err := repo.GetParticipantIDs(teamID)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			slog.Info("이미 조원이 있는 팀이라 건너뜁니다", "club", clubName, "team", teamName)
			continue
		}

		participants := make([]*domain.Participant, 0, membersPerTeam)
		for j := 1; j <= membersPerTeam; j++ {
			participants = append(participants, utils.GenerateRandomParticipant(fmt.Sprintf("p%d", j)))
		}

		if err := repo.ImportParticipants(teamID, participants); err != nil {
			return err
		}
		slog.Info("무작위 팀 시드 완료", "club", clubName, "team", teamName, "participants", membersPerTeam)
	}

	return nil
}
