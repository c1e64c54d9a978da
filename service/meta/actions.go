/*
 * @module service/meta/actions
 * @description 액션 바로가기 레지스트리, 자연어 검색으로 매칭되는 사전 정의 업무 8종
 * @architecture 상수 계층 - 정적 참조 데이터
 * @documentReference dev_docs/requirements.md
 * @stateFlow 기동 시 1회 로드 -> 검색/랭킹 로직에서 읽기 전용 사용
 * @rules 액션별 검색 키워드는 ActionKeywords에서만 관리
 * @refs service/analysis/actions
 */

package meta

// ActionFieldOption 선택형 필드의 옵션
type ActionFieldOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ActionField 액션 입력 양식의 필드 정의
type ActionField struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Type        string              `json:"type"`
	Required    bool                `json:"required"`
	Placeholder string              `json:"placeholder,omitempty"`
	Options     []ActionFieldOption `json:"options,omitempty"`
	AIAutoFill  bool                `json:"ai_auto_fill,omitempty"`
}

// CopilotHints 액션 실행 시 함께 노출되는 안내 정보
type CopilotHints struct {
	SuggestedActions []string `json:"suggested_actions,omitempty"`
	RelatedInfo      []string `json:"related_info,omitempty"`
	EstimatedTime    string   `json:"estimated_time,omitempty"`
}

// ActionMeta 액션 바로가기 정의
type ActionMeta struct {
	ID          string        `json:"id"`
	SystemID    string        `json:"system_id"`
	ModuleID    string        `json:"module_id"`
	Name        string        `json:"name"`
	Icon        string        `json:"icon"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	ProcessType string        `json:"process_type"` // direct / approval-required / assignment
	Fields      []ActionField `json:"fields,omitempty"`
	Hints       *CopilotHints `json:"copilot_hints,omitempty"`
}

// Actions 액션 바로가기 레지스트리
var Actions = []ActionMeta{
	{
		ID: "one-fm-emergency", SystemID: "one", ModuleID: "one-fm",
		Name: "FM 긴급 신고", Icon: "🚨",
		Description: "시설 긴급 상황 신고 (누수, 정전, 화재 등)",
		Category:    "facility_emergency", ProcessType: "direct",
		Fields: []ActionField{
			{ID: "location", Name: "위치", Type: "text", Required: true, Placeholder: "예: 3층 남자화장실", AIAutoFill: true},
			{ID: "situation", Name: "상황", Type: "select", Required: true, AIAutoFill: true, Options: []ActionFieldOption{
				{Value: "leak", Label: "누수"}, {Value: "blackout", Label: "정전"}, {Value: "fire", Label: "화재"},
				{Value: "flood", Label: "침수"}, {Value: "elevator", Label: "엘리베이터 고장"}, {Value: "other", Label: "기타"},
			}},
			{ID: "urgency", Name: "긴급도", Type: "urgency", Required: true, AIAutoFill: true},
			{ID: "description", Name: "상세 내용", Type: "textarea", Placeholder: "상황을 자세히 설명해주세요", AIAutoFill: true},
		},
		Hints: &CopilotHints{
			SuggestedActions: []string{"긴급 신고 접수", "담당자 자동 배정", "SMS 알림 발송"},
			RelatedInfo:      []string{"3층 담당: 김철수", "최근 유사 건: 2건", "평균 처리 시간: 30분"},
			EstimatedTime:    "30분 ~ 1시간",
		},
	},
	{
		ID: "one-fm-maintenance", SystemID: "one", ModuleID: "one-fm",
		Name: "FM 시설 점검 요청", Icon: "🔧",
		Description: "에어컨, 보일러, 청소 등 일반 시설 점검 요청",
		Category:    "facility_management", ProcessType: "assignment",
		Fields: []ActionField{
			{ID: "location", Name: "위치", Type: "text", Required: true, Placeholder: "예: 5층 회의실", AIAutoFill: true},
			{ID: "category", Name: "점검 유형", Type: "select", Required: true, AIAutoFill: true, Options: []ActionFieldOption{
				{Value: "aircon", Label: "에어컨/냉난방"}, {Value: "boiler", Label: "보일러/난방"}, {Value: "light", Label: "조명/전등"},
				{Value: "cleaning", Label: "청소"}, {Value: "repair", Label: "일반 수리"}, {Value: "other", Label: "기타"},
			}},
			{ID: "urgency", Name: "긴급도", Type: "urgency", Required: true},
			{ID: "preferredDate", Name: "희망 점검일", Type: "date"},
			{ID: "description", Name: "상세 내용", Type: "textarea", AIAutoFill: true},
		},
		Hints: &CopilotHints{
			SuggestedActions: []string{"점검 요청 등록", "담당자 배정", "일정 조율"},
			RelatedInfo:      []string{"담당 협력사: FM서비스", "금주 점검 가능일: 수, 목"},
			EstimatedTime:    "1~2일 내 방문",
		},
	},
	{
		ID: "one-pm-lease", SystemID: "one", ModuleID: "one-pm",
		Name: "PM 임대/공실 문의", Icon: "🏢",
		Description: "공실 현황 조회 및 임대 관련 문의",
		Category:    "facility_management", ProcessType: "direct",
		Fields: []ActionField{
			{ID: "building", Name: "건물", Type: "select", Required: true, Options: []ActionFieldOption{
				{Value: "gangnam", Label: "강남 리마크빌"}, {Value: "yeouido", Label: "여의도 리마크빌"},
				{Value: "jongno", Label: "종로 리마크빌"}, {Value: "pangyo", Label: "판교 리마크빌"},
			}},
			{ID: "inquiryType", Name: "문의 유형", Type: "select", Required: true, AIAutoFill: true, Options: []ActionFieldOption{
				{Value: "vacancy", Label: "공실 현황"}, {Value: "contract", Label: "계약 관련"},
				{Value: "movein", Label: "입주 문의"}, {Value: "other", Label: "기타"},
			}},
			{ID: "desiredSize", Name: "희망 면적", Type: "text", Placeholder: "예: 100평"},
			{ID: "description", Name: "문의 내용", Type: "textarea"},
		},
		Hints: &CopilotHints{
			SuggestedActions: []string{"공실 현황 조회", "PM 담당자 연결"},
			RelatedInfo:      []string{"현재 공실: 강남 3개, 여의도 1개", "금월 계약 예정: 2건"},
		},
	},
	{
		ID: "portal-leave", SystemID: "portal", ModuleID: "portal-leave",
		Name: "휴가 신청", Icon: "🏖️",
		Description: "연차, 반차, 병가 등 휴가 신청",
		Category:    "hr_request", ProcessType: "approval-required",
		Fields: []ActionField{
			{ID: "leaveType", Name: "휴가 유형", Type: "select", Required: true, AIAutoFill: true, Options: []ActionFieldOption{
				{Value: "annual", Label: "연차"}, {Value: "half-am", Label: "오전 반차"}, {Value: "half-pm", Label: "오후 반차"},
				{Value: "sick", Label: "병가"}, {Value: "family", Label: "경조사"}, {Value: "special", Label: "특별휴가"},
			}},
			{ID: "startDate", Name: "시작일", Type: "date", Required: true, AIAutoFill: true},
			{ID: "endDate", Name: "종료일", Type: "date", Required: true, AIAutoFill: true},
			{ID: "reason", Name: "사유", Type: "textarea"},
		},
		Hints: &CopilotHints{
			SuggestedActions: []string{"휴가 신청", "승인자에게 알림"},
			RelatedInfo:      []string{"잔여 연차: 12일", "승인자: 홍팀장", "예상 승인 시간: 1일 내"},
			EstimatedTime:    "승인 후 즉시 반영",
		},
	},
	{
		ID: "erp-expense", SystemID: "erp", ModuleID: "erp-expense",
		Name: "경비 정산", Icon: "💳",
		Description: "법인카드, 경비 지출 정산 요청",
		Category:    "finance", ProcessType: "approval-required",
		Fields: []ActionField{
			{ID: "expenseType", Name: "정산 유형", Type: "select", Required: true, AIAutoFill: true, Options: []ActionFieldOption{
				{Value: "card", Label: "법인카드"}, {Value: "cash", Label: "현금 지출"},
				{Value: "travel", Label: "출장비"}, {Value: "other", Label: "기타"},
			}},
			{ID: "amount", Name: "금액", Type: "text", Required: true, Placeholder: "예: 50,000원"},
			{ID: "date", Name: "지출일", Type: "date", Required: true},
			{ID: "purpose", Name: "지출 목적", Type: "textarea", Required: true, AIAutoFill: true},
		},
		Hints: &CopilotHints{
			SuggestedActions: []string{"정산 요청", "승인자에게 전달"},
			RelatedInfo:      []string{"이번 달 사용 한도: 500,000원", "승인자: 김부장"},
			EstimatedTime:    "2~3일 내 처리",
		},
	},
	{
		ID: "os-it-support", SystemID: "os", ModuleID: "os-it",
		Name: "IT 지원 요청", Icon: "💻",
		Description: "PC, 프린터, 네트워크 등 IT 장비 지원",
		Category:    "it_support", ProcessType: "assignment",
		Fields: []ActionField{
			{ID: "category", Name: "지원 유형", Type: "select", Required: true, AIAutoFill: true, Options: []ActionFieldOption{
				{Value: "pc", Label: "PC/노트북"}, {Value: "printer", Label: "프린터/복합기"}, {Value: "network", Label: "네트워크/인터넷"},
				{Value: "software", Label: "소프트웨어"}, {Value: "account", Label: "계정/비밀번호"}, {Value: "other", Label: "기타"},
			}},
			{ID: "symptom", Name: "증상", Type: "text", Required: true, Placeholder: "예: PC가 느려요", AIAutoFill: true},
			{ID: "location", Name: "위치/좌석", Type: "text", Required: true, Placeholder: "예: 4층 A구역 12번"},
			{ID: "urgency", Name: "긴급도", Type: "urgency", Required: true},
		},
		Hints: &CopilotHints{
			SuggestedActions: []string{"지원 요청 접수", "IT 담당자 배정"},
			RelatedInfo:      []string{"IT팀 담당: 이기술", "평균 응답 시간: 2시간"},
			EstimatedTime:    "당일 ~ 익일",
		},
	},
	{
		ID: "security-hdd", SystemID: "security", ModuleID: "security-hdd",
		Name: "외장하드 반출 신청", Icon: "🔒",
		Description: "외장하드, USB 등 저장장치 반출 승인 요청",
		Category:    "security", ProcessType: "approval-required",
		Fields: []ActionField{
			{ID: "deviceType", Name: "장치 유형", Type: "select", Required: true, Options: []ActionFieldOption{
				{Value: "hdd", Label: "외장하드"}, {Value: "usb", Label: "USB 메모리"},
				{Value: "ssd", Label: "외장 SSD"}, {Value: "other", Label: "기타 저장장치"},
			}},
			{ID: "capacity", Name: "용량", Type: "text", Required: true, Placeholder: "예: 1TB"},
			{ID: "purpose", Name: "반출 목적", Type: "textarea", Required: true},
			{ID: "returnDate", Name: "반납 예정일", Type: "date", Required: true},
		},
		Hints: &CopilotHints{
			SuggestedActions: []string{"반출 신청", "보안팀 승인 요청"},
			RelatedInfo:      []string{"승인 필요: 팀장 + 보안팀장", "평균 승인 시간: 1~2일"},
			EstimatedTime:    "승인 후 반출 가능",
		},
	},
	{
		ID: "sios-alert", SystemID: "sios", ModuleID: "sios-alert",
		Name: "관제 이상 신고", Icon: "📡",
		Description: "엘리베이터, 화재, CCTV 등 관제 시스템 이상 신고",
		Category:    "facility_emergency", ProcessType: "direct",
		Fields: []ActionField{
			{ID: "building", Name: "건물", Type: "select", Required: true, Options: []ActionFieldOption{
				{Value: "gangnam", Label: "강남 리마크빌"}, {Value: "yeouido", Label: "여의도 리마크빌"},
				{Value: "jongno", Label: "종로 리마크빌"}, {Value: "pangyo", Label: "판교 리마크빌"},
			}},
			{ID: "alertType", Name: "이상 유형", Type: "select", Required: true, AIAutoFill: true, Options: []ActionFieldOption{
				{Value: "elevator", Label: "엘리베이터 이상"}, {Value: "fire", Label: "화재 감지"}, {Value: "intrusion", Label: "침입 감지"},
				{Value: "cctv", Label: "CCTV 이상"}, {Value: "power", Label: "전력 이상"}, {Value: "other", Label: "기타"},
			}},
			{ID: "location", Name: "상세 위치", Type: "text", Required: true, AIAutoFill: true},
			{ID: "description", Name: "상황 설명", Type: "textarea", Required: true, AIAutoFill: true},
		},
		Hints: &CopilotHints{
			SuggestedActions: []string{"즉시 신고", "관제센터 알림", "현장 출동 요청"},
			RelatedInfo:      []string{"관제센터: 02-1234-5678", "현장 담당자 자동 배정"},
			EstimatedTime:    "즉시 대응",
		},
	},
}

// ActionKeywords 액션별 검색 키워드 매핑
var ActionKeywords = map[string][]string{
	"one-fm-emergency": {
		"긴급", "신고", "누수", "화장실", "3층", "화재", "정전", "침수",
		"비상", "급해", "지금", "당장", "물", "새", "고장", "안됨",
		"엘리베이터", "위험", "사고", "응급",
	},
	"one-fm-maintenance": {
		"점검", "시설", "에어컨", "보일러", "수리", "정비", "관리",
		"조명", "전등", "난방", "냉방", "청소", "요청", "교체", "수선",
	},
	"one-pm-lease": {
		"임대", "공실", "계약", "입주", "퇴거", "면적", "평", "층",
		"리마크빌", "건물", "사무실", "오피스",
	},
	"portal-leave": {
		"휴가", "연차", "반차", "병가", "월요일", "다음주", "쉬고",
		"신청", "휴일", "연휴", "경조사", "특별휴가", "오전", "오후",
	},
	"erp-expense": {
		"정산", "전표", "법인카드", "비용", "지출", "영수증", "카드",
		"출장비", "식대", "교통비", "경비", "금액",
	},
	"os-it-support": {
		"IT", "컴퓨터", "PC", "느려", "문제", "안됨", "프린터", "인터넷",
		"네트워크", "설치", "계정", "비밀번호", "느림", "노트북", "소프트웨어",
	},
	"security-hdd": {
		"외장하드", "반출", "보안", "USB", "저장장치", "SSD", "데이터",
		"반납", "승인", "신청",
	},
	"sios-alert": {
		"관제", "모니터링", "알림", "이상", "CCTV", "센서", "화재감지",
		"침입", "전력", "엘리베이터", "경보",
	},
}

// GetActionByID ID로 액션 조회
func GetActionByID(id string) *ActionMeta {
	for i := range Actions {
		if Actions[i].ID == id {
			return &Actions[i]
		}
	}
	return nil
}

// ActionsBySystem 시스템별 액션 목록
func ActionsBySystem(systemID string) []ActionMeta {
	var result []ActionMeta
	for _, a := range Actions {
		if a.SystemID == systemID {
			result = append(result, a)
		}
	}
	return result
}
