package domain

type ExtractionStatus string

const (
	ExtractionPending    ExtractionStatus = "대기중"
	ExtractionProcessing ExtractionStatus = "처리중"
	ExtractionDone       ExtractionStatus = "완료"
	ExtractionFailed     ExtractionStatus = "실패"
)

// ExtractionMessage 는 시간표 이미지 추출 작업 큐에 실리는 메시지다.
// Image 는 JSON 직렬화 시 base64 로 인코딩된다.
type ExtractionMessage struct {
	JobID    string `json:"jobID"`
	TeamID   int64  `json:"teamID"`
	MimeType string `json:"mimeType"`
	Image    []byte `json:"image"`
}

// ExtractionResult 는 추출 작업의 진행 상태다. redis 에 작업 ID 로 저장된다.
type ExtractionResult struct {
	Status         ExtractionStatus `json:"status"`
	Message        string           `json:"message,omitempty"`
	ParticipantIDs []string         `json:"participantIDs,omitempty"`
}
