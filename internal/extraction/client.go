// Package extraction 은 시간표 이미지에서 조원들의 수업 목록을 뽑아내는
// Gemini 호출과 그 응답 해석을 담당한다.
package extraction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/chinba-dev/chinba/backend/internal/config"
	"github.com/chinba-dev/chinba/backend/internal/domain"
)

const prompt = `이 이미지는 대학생 조원들의 주간 시간표입니다.
이미지에서 각 조원의 이름과 수업 목록을 추출해서 아래 JSON 형식으로만 답하세요.

{
  "participants": [
    {
      "name": "이름",
      "timetable": [
        { "subject": "과목명", "location": "강의실", "day": "월", "time": "09:00-11:00" }
      ]
    }
  ]
}

규칙:
- day 는 반드시 일, 월, 화, 수, 목, 금, 토 중 하나입니다.
- time 은 반드시 "HH:00-HH:00" 형식입니다. 30분 단위 수업은 가까운 정시로 맞추세요.
- 읽을 수 없는 항목은 빼세요. JSON 외의 설명은 쓰지 마세요.`

type Client struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Gemini.Timeout) * time.Second,
		},
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     []byte `json:"data"` // base64 는 encoding/json 이 알아서 처리한다
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ExtractTimetable 은 시간표 이미지를 모델에 보내고 추출된 조원 목록을 돌려준다.
func (c *Client) ExtractTimetable(ctx context.Context, image []byte, mimeType string) ([]*domain.Participant, error) {
	reqBody := generateRequest{
		Contents: []content{
			{
				Parts: []part{
					{Text: prompt},
					{InlineData: &inlineData{MimeType: mimeType, Data: image}},
				},
			},
		},
	}

	encoded, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.cfg.Gemini.BaseURL, c.cfg.Gemini.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(encoded))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.cfg.Gemini.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var decoded generateResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("응답을 해석할 수 없습니다: %w", err)
	}
	if decoded.Error != nil {
		return nil, fmt.Errorf("모델 호출 실패 (code %d): %s", decoded.Error.Code, decoded.Error.Message)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("모델이 답을 주지 않았습니다")
	}

	return ParseResponseText(decoded.Candidates[0].Content.Parts[0].Text)
}
