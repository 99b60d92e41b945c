package domain

// TeamMeta 는 팀 컨텍스트별 누적 통계다.
// 활동 기록의 추가/수정/삭제와 같은 트랜잭션 안에서만 갱신해야
// avgParticipation 이 화면에 보이는 활동 목록과 어긋나지 않는다.
type TeamMeta struct {
	Members       int     `json:"members"`       // 팀 전체 인원
	ActivityCount int     `json:"activityCount"` // 활동 횟수
	TotalMinutes  int     `json:"totalMinutes"`  // 총 참여시간(분)
	PartSum       float64 `json:"partSum"`       // 참여율 샘플 합
	PartSamples   int     `json:"partSamples"`   // 참여율 샘플 개수
	Score         int     `json:"score"`         // 누적 점수, 0 미만으로 내려가지 않는다
	Version       int32   `json:"-"`
}

func clampRatio(participants, members int) float64 {
	if members <= 0 {
		return 0
	}
	ratio := float64(participants) / float64(members)
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}

// AddScore 는 점수를 delta 만큼 더하되 총점이 음수가 되지 않게 한다.
func (m *TeamMeta) AddScore(delta int) {
	m.Score += delta
	if m.Score < 0 {
		m.Score = 0
	}
}

// AddSample 은 활동 기록 하나의 기여분을 누적치에 반영한다.
func (m *TeamMeta) AddSample(duration, participants int) {
	m.ActivityCount++
	m.TotalMinutes += duration
	m.PartSum += clampRatio(participants, m.Members)
	m.PartSamples++
}

// UpdateSample 은 기존 기록의 기여분을 새 값으로 바꾼다. 횟수는 변하지 않는다.
func (m *TeamMeta) UpdateSample(oldDuration, oldParticipants, newDuration, newParticipants int) {
	m.TotalMinutes += newDuration - oldDuration
	m.PartSum += clampRatio(newParticipants, m.Members) - clampRatio(oldParticipants, m.Members)
}

// RemoveSample 은 이전에 AddSample 로 반영된 기여분을 정확히 되돌린다.
// 반복된 삭제로 값이 틀어지지 않도록 각 누적치는 0 밑으로 내려가지 않는다.
func (m *TeamMeta) RemoveSample(duration, participants int) {
	m.ActivityCount--
	m.TotalMinutes -= duration
	m.PartSum -= clampRatio(participants, m.Members)
	m.PartSamples--

	if m.ActivityCount < 0 {
		m.ActivityCount = 0
	}
	if m.TotalMinutes < 0 {
		m.TotalMinutes = 0
	}
	if m.PartSum < 0 {
		m.PartSum = 0
	}
	if m.PartSamples < 0 {
		m.PartSamples = 0
	}
}

// AvgParticipation 은 샘플 평균 참여율을 돌려준다. 샘플이 없으면 0 이다.
func (m *TeamMeta) AvgParticipation() float64 {
	if m.PartSamples <= 0 {
		return 0
	}
	return m.PartSum / float64(m.PartSamples)
}

// TeamRanking 은 동아리 안에서의 팀 순위 한 줄이다. 점수 내림차순으로 매긴다.
type TeamRanking struct {
	Rank             int     `json:"rank"`
	Team             string  `json:"team"`
	Score            int     `json:"score"`
	ActivityCount    int     `json:"activityCount"`
	TotalMinutes     int     `json:"totalMinutes"`
	AvgParticipation float64 `json:"avgParticipation"`
}
