package catalog

import "github.com/chinba-dev/chinba/backend/internal/domain"

// 이모지 매핑 테이블. 활동 데이터에 이모지가 없으면 이름으로 찾는다.
var emojiByName = map[string]string{
	"스터디 그룹":            "📚",
	"도서관 가기":            "📖",
	"코딩 연습":             "💻",
	"헬스장 운동":            "💪",
	"농구":                "🏀",
	"조깅":                "🏃",
	"함께 점심":             "🍽️",
	"함께 저녁":             "🍽️",
	"카페 타임":             "☕",
	"영화 감상":             "🎬",
	"보드게임":              "🎲",
	"음악 감상":             "🎵",
	"동아리 모임":            "👥",
	"프로젝트 회의":           "📋",
	"낮잠":                "😴",
	"명상":                "🧘",
	"캠퍼스 산책":            "🌿",
	"꽃사진 찍기":            "🌸",
	"동방에서 단체사진":         "📷",
	"신정문에서 단체사진":        "📸",
	"동아리 회장/부회장과 사진 찍기": "⭐",
	"조이름 정하기":           "💭",
	"인스타/카톡 교환":         "💬",
	"조원을 태그한 스토리 올리기":   "🏷️",
	"에타 친구 맺기":          "🤝",
	"동방에 방명록 남기기":       "📝",
	"MBTI/심리테스트 같이 해보기": "🧠",
	"카페 가기":             "☕",
	"노래방 가기":            "🎤",
	"선배들의 맛집 가기":        "🍴",
	"인생네컷 찍고 동방에 붙이기":   "📸",
	"릴스 찍고 업로드":         "🎥",
	"서로 초상화 그려주기":       "🎨",
	"동방에 있는 보드게임 하기":    "🎲",
	"함께 학식 먹기":          "🍚",
	"취미활동하기":            "🎯",
	"대운동장에 누워서 같이 사진 찍기": "🌾",
	"드레스코드 맞춰서 인증샷":     "👔",
	"다같이 낮잠자기":          "💤",
	"보드게임방 가기":          "🎲",
	"다른 조와 함께 놀기":       "🎉",
	"PC방 가기":            "🖥️",
	"볼링 치기":             "🎳",
	"영화 보기 (장편)":        "🎬",
	"술 마시기":             "🍻",
	"원데이 클래스":           "📚",
	"브이로그 제작":           "📹",
}

// Default 는 기본 활동 카탈로그 원본이다. 점수와 난이도는 채워져 있지 않다.
var Default = []domain.Activity{
	// 학습 관련 활동
	{
		ID: "study-group", Name: "스터디 그룹", Category: "study", Duration: 120,
		MinParticipants: 2, MaxParticipants: 8,
		Description: "함께 공부하며 지식을 나누는 시간",
		TimePreferences: []domain.TimePreference{
			{StartHour: 9, EndHour: 12, Weight: 0.9},
			{StartHour: 14, EndHour: 18, Weight: 0.8},
		},
	},
	{
		ID: "library-visit", Name: "도서관 가기", Category: "study", Duration: 60,
		MinParticipants: 1,
		Description:     "조용한 환경에서 개인 학습",
		TimePreferences: []domain.TimePreference{{StartHour: 9, EndHour: 18, Weight: 0.8}},
	},
	{
		ID: "coding-practice", Name: "코딩 연습", Category: "study", Duration: 90,
		MinParticipants: 1, MaxParticipants: 4, Location: "컴퓨터실",
		Description:     "프로그래밍 실력 향상을 위한 연습",
		TimePreferences: []domain.TimePreference{{StartHour: 10, EndHour: 18, Weight: 0.9}},
	},

	// 운동 관련 활동
	{
		ID: "gym-workout", Name: "헬스장 운동", Category: "exercise", Duration: 90,
		MinParticipants: 1, MaxParticipants: 6, Location: "체육관",
		Description: "체력 증진을 위한 운동",
		TimePreferences: []domain.TimePreference{
			{StartHour: 9, EndHour: 11, Weight: 0.8},
			{StartHour: 17, EndHour: 20, Weight: 0.9},
		},
	},
	{
		ID: "basketball", Name: "농구", Category: "exercise", Duration: 60,
		MinParticipants: 4, MaxParticipants: 10, Location: "농구장",
		Description:     "팀워크를 기르는 농구 경기",
		TimePreferences: []domain.TimePreference{{StartHour: 15, EndHour: 19, Weight: 0.9}},
	},
	{
		ID: "jogging", Name: "조깅", Category: "exercise", Duration: 30,
		MinParticipants: 1, MaxParticipants: 8,
		Description: "캠퍼스 둘레길 조깅", Emoji: "🏃",
		TimePreferences: []domain.TimePreference{
			{StartHour: 7, EndHour: 9, Weight: 0.9},
			{StartHour: 18, EndHour: 20, Weight: 0.8},
		},
	},

	// 식사 관련 활동
	{
		ID: "lunch-together", Name: "함께 점심", Category: "meal", Duration: 60,
		MinParticipants: 2, MaxParticipants: 12, Location: "학식당",
		Description:     "친구들과 함께하는 점심 시간",
		TimePreferences: []domain.TimePreference{{StartHour: 11, EndHour: 14, Weight: 1.0}},
	},
	{
		ID: "dinner-together", Name: "함께 저녁", Category: "meal", Duration: 90,
		MinParticipants: 2, MaxParticipants: 12, Location: "학식당",
		Description:     "친구들과 함께하는 저녁 시간",
		TimePreferences: []domain.TimePreference{{StartHour: 17, EndHour: 19, Weight: 1.0}},
	},
	{
		ID: "cafe-time", Name: "카페 타임", Category: "meal", Duration: 45,
		MinParticipants: 1, MaxParticipants: 8, Location: "카페",
		Description: "커피와 함께하는 휴식 시간",
		TimePreferences: []domain.TimePreference{
			{StartHour: 10, EndHour: 12, Weight: 0.7},
			{StartHour: 14, EndHour: 17, Weight: 0.8},
		},
	},

	// 여가 관련 활동
	{
		ID: "movie-watching", Name: "영화 감상", Category: "leisure", Duration: 120,
		MinParticipants: 1, MaxParticipants: 20, Location: "영화관",
		Description:     "최신 영화 감상",
		TimePreferences: []domain.TimePreference{{StartHour: 14, EndHour: 22, Weight: 0.8}},
	},
	{
		ID: "board-games", Name: "보드게임", Category: "leisure", Duration: 90,
		MinParticipants: 3, MaxParticipants: 8,
		Description:     "다양한 보드게임으로 즐거운 시간",
		TimePreferences: []domain.TimePreference{{StartHour: 15, EndHour: 21, Weight: 0.8}},
	},
	{
		ID: "music-listening", Name: "음악 감상", Category: "leisure", Duration: 60,
		MinParticipants: 1, MaxParticipants: 10,
		Description:     "좋아하는 음악을 함께 듣는 시간",
		TimePreferences: []domain.TimePreference{{StartHour: 14, EndHour: 20, Weight: 0.7}},
	},

	// 사회 활동
	{
		ID: "club-meeting", Name: "동아리 모임", Category: "social", Duration: 120,
		MinParticipants: 5, MaxParticipants: 30,
		Description:     "동아리 정기 모임",
		TimePreferences: []domain.TimePreference{{StartHour: 16, EndHour: 20, Weight: 0.9}},
	},
	{
		ID: "project-meeting", Name: "프로젝트 회의", Category: "social", Duration: 90,
		MinParticipants: 3, MaxParticipants: 10,
		Description:     "팀 프로젝트 진행 회의",
		TimePreferences: []domain.TimePreference{{StartHour: 10, EndHour: 18, Weight: 0.8}},
	},

	// 휴식 관련
	{
		ID: "nap-time", Name: "낮잠", Category: "rest", Duration: 30,
		MinParticipants: 1, MaxParticipants: 1, Location: "휴게실",
		Description: "짧은 휴식으로 에너지 충전", Emoji: "😴",
		TimePreferences: []domain.TimePreference{{StartHour: 13, EndHour: 15, Weight: 0.9}},
	},
	{
		ID: "meditation", Name: "명상", Category: "rest", Duration: 20,
		MinParticipants: 1, MaxParticipants: 10,
		Description: "마음을 정리하는 명상 시간", Emoji: "🧘",
		TimePreferences: []domain.TimePreference{
			{StartHour: 8, EndHour: 10, Weight: 0.8},
			{StartHour: 17, EndHour: 19, Weight: 0.7},
		},
	},
	{
		ID: "walk-campus", Name: "캠퍼스 산책", Category: "rest", Duration: 30,
		MinParticipants: 1, MaxParticipants: 5,
		Description: "캠퍼스를 걸으며 여유로운 시간", Emoji: "🌿",
		TimePreferences: []domain.TimePreference{{StartHour: 14, EndHour: 18, Weight: 0.8}},
	},

	// 30분-1시간 공강용 활동
	{
		ID: "flower-photo", Name: "꽃사진 찍기", Category: "social", Duration: 30,
		MinParticipants: 2, Location: "캠퍼스 내",
		Description: "캠퍼스에서 예쁜 꽃과 함께 사진 찍기", Emoji: "🌸",
		TimePreferences: []domain.TimePreference{{StartHour: 10, EndHour: 16, Weight: 0.9}},
	},
	{
		ID: "club-room-photo", Name: "동방에서 단체사진", Category: "social", Duration: 20,
		MinParticipants: 3, Location: "동아리 동방",
		Description: "동아리 동방에서 추억의 단체사진 촬영", Emoji: "📷",
		TimePreferences: []domain.TimePreference{{StartHour: 12, EndHour: 18, Weight: 0.8}},
	},
	{
		ID: "front-gate-photo", Name: "신정문에서 단체사진", Category: "social", Duration: 25,
		MinParticipants: 3, Location: "신정문",
		Description: "학교 대표 장소에서 기념사진 촬영", Emoji: "📷",
		TimePreferences: []domain.TimePreference{{StartHour: 10, EndHour: 17, Weight: 0.8}},
	},
	{
		ID: "leader-photo", Name: "동아리 회장/부회장과 사진 찍기", Category: "social", Duration: 15,
		MinParticipants: 2, Location: "동아리 동방",
		Description: "선배들과 함께하는 특별한 인증샷", Emoji: "⭐",
		TimePreferences: []domain.TimePreference{{StartHour: 12, EndHour: 18, Weight: 0.7}},
	},
	{
		ID: "team-naming", Name: "조이름 정하기", Category: "social", Duration: 30,
		MinParticipants: 2,
		Description:     "창의적인 브레인스토밍으로 조이름 만들기",
		TimePreferences: []domain.TimePreference{{StartHour: 10, EndHour: 18, Weight: 0.8}},
	},
	{
		ID: "contact-exchange", Name: "인스타/카톡 교환", Category: "social", Duration: 15,
		MinParticipants: 2,
		Description: "서로 소통할 수 있는 연락처 교환", Emoji: "💬",
		TimePreferences: []domain.TimePreference{{StartHour: 9, EndHour: 21, Weight: 0.9}},
	},
	{
		ID: "story-upload", Name: "조원을 태그한 스토리 올리기", Category: "social", Duration: 20,
		MinParticipants: 2,
		Description: "함께한 순간을 SNS에 공유하기", Emoji: "🏷️",
		TimePreferences: []domain.TimePreference{{StartHour: 10, EndHour: 20, Weight: 0.8}},
	},
	{
		ID: "eta-friend", Name: "에타 친구 맺기", Category: "social", Duration: 10,
		MinParticipants: 2,
		Description:     "에브리타임에서 친구 추가하기",
		TimePreferences: []domain.TimePreference{{StartHour: 9, EndHour: 21, Weight: 0.9}},
	},
	{
		ID: "guestbook", Name: "동방에 방명록 남기기", Category: "social", Duration: 20,
		MinParticipants: 2, Location: "동아리 동방",
		Description:     "동방에 추억과 감사 인사 남기기",
		TimePreferences: []domain.TimePreference{{StartHour: 12, EndHour: 18, Weight: 0.8}},
	},
	{
		ID: "mbti-test", Name: "MBTI/심리테스트 같이 해보기", Category: "social", Duration: 40,
		MinParticipants: 3,
		Description:     "재미있는 심리테스트로 서로 알아가기",
		TimePreferences: []domain.TimePreference{{StartHour: 13, EndHour: 18, Weight: 0.9}},
	},

	// 1-2시간 공강용 활동
	{
		ID: "cafe-visit", Name: "카페 가기", Category: "meal", Duration: 90,
		MinParticipants: 2, Location: "근처 카페",
		Description:     "따뜻한 음료와 함께하는 대화 시간",
		TimePreferences: []domain.TimePreference{{StartHour: 10, EndHour: 17, Weight: 0.9}},
	},
	{
		ID: "karaoke", Name: "노래방 가기", Category: "leisure", Duration: 120,
		MinParticipants: 3, Location: "노래방",
		Description:     "신나는 노래로 스트레스 해소",
		TimePreferences: []domain.TimePreference{{StartHour: 14, EndHour: 20, Weight: 0.9}},
	},
	{
		ID: "senior-restaurant", Name: "선배들의 맛집 가기", Category: "meal", Duration: 90,
		MinParticipants: 3, Location: "맛집",
		Description: "선배 추천 맛집에서 함께 식사",
		TimePreferences: []domain.TimePreference{
			{StartHour: 11, EndHour: 14, Weight: 1.0},
			{StartHour: 17, EndHour: 19, Weight: 1.0},
		},
	},
	{
		ID: "life-four-cut", Name: "인생네컷 찍고 동방에 붙이기", Category: "social", Duration: 60,
		MinParticipants: 2, Location: "포토부스",
		Description:     "추억을 담은 네컷 사진으로 동방 꾸미기",
		TimePreferences: []domain.TimePreference{{StartHour: 12, EndHour: 18, Weight: 0.8}},
	},
	{
		ID: "reels-making", Name: "릴스 찍고 업로드", Category: "social", Duration: 75,
		MinParticipants: 2,
		Description:     "트렌디한 릴스 영상 제작 및 업로드",
		TimePreferences: []domain.TimePreference{{StartHour: 13, EndHour: 17, Weight: 0.8}},
	},
	{
		ID: "portrait-drawing", Name: "서로 초상화 그려주기", Category: "leisure", Duration: 90,
		MinParticipants: 2,
		Description:     "창의력을 발휘한 초상화 그리기",
		TimePreferences: []domain.TimePreference{{StartHour: 14, EndHour: 17, Weight: 0.8}},
	},
	{
		ID: "club-board-games", Name: "동방에 있는 보드게임 하기", Category: "leisure", Duration: 100,
		MinParticipants: 3, Location: "동아리 동방",
		Description:     "동방 보드게임으로 즐거운 시간",
		TimePreferences: []domain.TimePreference{{StartHour: 13, EndHour: 18, Weight: 0.9}},
	},
	{
		ID: "campus-meal", Name: "함께 학식 먹기", Category: "meal", Duration: 60,
		MinParticipants: 2, Location: "학생식당",
		Description: "학식을 먹으며 수다 떨기",
		TimePreferences: []domain.TimePreference{
			{StartHour: 11, EndHour: 14, Weight: 1.0},
			{StartHour: 17, EndHour: 19, Weight: 0.8},
		},
	},
	{
		ID: "hobby-activity", Name: "취미활동하기", Category: "leisure", Duration: 90,
		MinParticipants: 2,
		Description:     "공예, 그림, 운동 등 상황에 맞는 취미활동",
		TimePreferences: []domain.TimePreference{{StartHour: 14, EndHour: 18, Weight: 0.8}},
	},
	{
		ID: "field-lying-photo", Name: "대운동장에 누워서 같이 사진 찍기", Category: "social", Duration: 45,
		MinParticipants: 3, Location: "대운동장",
		Description:     "넓은 운동장에서 자유롭게 사진 촬영",
		TimePreferences: []domain.TimePreference{{StartHour: 10, EndHour: 16, Weight: 0.9}},
	},
	{
		ID: "dress-code-photo", Name: "드레스코드 맞춰서 인증샷", Category: "social", Duration: 75,
		MinParticipants: 3,
		Description:     "특별한 컨셉으로 맞춤 코디 인증샷",
		TimePreferences: []domain.TimePreference{{StartHour: 13, EndHour: 17, Weight: 0.8}},
	},
	{
		ID: "group-nap", Name: "다같이 낮잠자기", Category: "rest", Duration: 60,
		MinParticipants: 3, Location: "동아리 동방",
		Description:     "돗자리나 매트에서 함께 휴식",
		TimePreferences: []domain.TimePreference{{StartHour: 13, EndHour: 15, Weight: 1.0}},
	},

	// 2시간 이상 공강용 활동
	{
		ID: "board-game-cafe", Name: "보드게임방 가기", Category: "leisure", Duration: 150,
		MinParticipants: 4, Location: "보드게임카페",
		Description:     "다양한 보드게임으로 즐거운 시간",
		TimePreferences: []domain.TimePreference{{StartHour: 14, EndHour: 18, Weight: 0.9}},
	},
	{
		ID: "multi-team-activity", Name: "다른 조와 함께 놀기", Category: "social", Duration: 180,
		MinParticipants: 6,
		Description:     "여러 조가 함께하는 대규모 활동",
		TimePreferences: []domain.TimePreference{{StartHour: 14, EndHour: 17, Weight: 0.8}},
	},
	{
		ID: "pc-room", Name: "PC방 가기", Category: "leisure", Duration: 150,
		MinParticipants: 2, MaxParticipants: 8, Location: "PC방",
		Description:     "온라인 게임으로 팀워크 다지기",
		TimePreferences: []domain.TimePreference{{StartHour: 14, EndHour: 19, Weight: 0.9}},
	},
	{
		ID: "bowling", Name: "볼링 치기", Category: "exercise", Duration: 120,
		MinParticipants: 4, Location: "볼링장",
		Description:     "스트라이크로 스트레스 해소",
		TimePreferences: []domain.TimePreference{{StartHour: 15, EndHour: 19, Weight: 0.9}},
	},
	{
		ID: "movie-watching-long", Name: "영화 보기 (장편)", Category: "leisure", Duration: 150,
		MinParticipants: 2, Location: "영화관",
		Description:     "긴 공강시간에 최신 영화 관람",
		TimePreferences: []domain.TimePreference{{StartHour: 14, EndHour: 16, Weight: 0.8}},
	},
	{
		ID: "drinking", Name: "술 마시기", Category: "social", Duration: 180,
		MinParticipants: 3, Location: "주점",
		Description:     "성인 조원들과 함께하는 회식",
		TimePreferences: []domain.TimePreference{{StartHour: 18, EndHour: 21, Weight: 1.0}},
	},
	{
		ID: "one-day-class", Name: "원데이 클래스", Category: "study", Duration: 150,
		MinParticipants: 3, Location: "문화센터",
		Description:     "새로운 기술이나 취미 배우기",
		TimePreferences: []domain.TimePreference{{StartHour: 14, EndHour: 17, Weight: 0.8}},
	},

	// 기타 활동
	{
		ID: "vlog-making", Name: "브이로그 제작", Category: "social", Duration: 120,
		MinParticipants: 2,
		Description:     "하루의 활동을 담은 브이로그 제작",
		TimePreferences: []domain.TimePreference{{StartHour: 10, EndHour: 18, Weight: 0.7}},
	},
}

// Scored 는 점수, 난이도, 이모지가 채워진 카탈로그다. 패키지 로드 시 한 번만 만든다.
var Scored = buildScored()

func buildScored() []domain.Activity {
	scored := make([]domain.Activity, len(Default))
	for i, a := range Default {
		score := DifficultyScore(a)
		a.Score = score
		a.Difficulty = DifficultyOf(score)
		if a.Emoji == "" {
			if emoji, exists := emojiByName[a.Name]; exists {
				a.Emoji = emoji
			} else {
				a.Emoji = "🔸"
			}
		}
		scored[i] = a
	}
	return scored
}
