/*
 * @module service/meta/categories
 * @description 요청 유형/상태/긴급도 열거형 정의와 상태 전이 규칙
 * @architecture 상수 계층 - 메타데이터 정의
 * @documentReference dev_docs/requirements.md
 * @stateFlow 상수 정의 -> 검증 함수 -> 비즈니스 로직 사용
 * @rules 상태 전이는 전이 테이블에 명시된 경로만 허용
 * @refs service/models, service/request
 */

package meta

// RequestCategory 요청 유형
type RequestCategory string

// 요청 유형 상수
const (
	CategoryBugFix         RequestCategory = "bug_fix"
	CategoryFeatureRequest RequestCategory = "feature_request"
	CategoryInquiry        RequestCategory = "inquiry"
	CategoryEmergency      RequestCategory = "emergency"
	CategoryMaintenance    RequestCategory = "maintenance"
	CategoryApproval       RequestCategory = "approval"
	CategoryGeneral        RequestCategory = "general"
)

// AllCategories 전체 요청 유형 (표시 순서 고정)
var AllCategories = []RequestCategory{
	CategoryBugFix,
	CategoryFeatureRequest,
	CategoryInquiry,
	CategoryEmergency,
	CategoryMaintenance,
	CategoryApproval,
	CategoryGeneral,
}

// CategoryLabels 요청 유형 표시 이름
var CategoryLabels = map[RequestCategory]string{
	CategoryBugFix:         "오류 수정",
	CategoryFeatureRequest: "기능 요청",
	CategoryInquiry:        "문의",
	CategoryEmergency:      "긴급",
	CategoryMaintenance:    "점검/유지보수",
	CategoryApproval:       "승인 요청",
	CategoryGeneral:        "일반",
}

// IsValidCategory 요청 유형 유효성 확인
func IsValidCategory(category RequestCategory) bool {
	_, ok := CategoryLabels[category]
	return ok
}

// GetCategoryLabel 요청 유형의 표시 이름 조회
func GetCategoryLabel(category RequestCategory) string {
	if label, ok := CategoryLabels[category]; ok {
		return label
	}
	return "일반"
}

// RequestStatus 요청 상태
type RequestStatus string

// 요청 상태 상수
const (
	StatusPending    RequestStatus = "pending"
	StatusApproved   RequestStatus = "approved"
	StatusInProgress RequestStatus = "in_progress"
	StatusCompleted  RequestStatus = "completed"
	StatusRejected   RequestStatus = "rejected"
)

// StatusLabels 요청 상태 표시 이름
var StatusLabels = map[RequestStatus]string{
	StatusPending:    "대기",
	StatusApproved:   "승인",
	StatusInProgress: "처리중",
	StatusCompleted:  "완료",
	StatusRejected:   "반려",
}

// StatusActionLabels 상태 변경 시 이력에 기록되는 액션 이름
var StatusActionLabels = map[RequestStatus]string{
	StatusPending:    "대기 상태로 변경",
	StatusApproved:   "승인",
	StatusInProgress: "처리 시작",
	StatusCompleted:  "처리 완료",
	StatusRejected:   "반려",
}

// statusTransitions 허용된 상태 전이 테이블, completed/rejected는 종결 상태
var statusTransitions = map[RequestStatus][]RequestStatus{
	StatusPending:    {StatusApproved, StatusInProgress, StatusRejected},
	StatusApproved:   {StatusInProgress, StatusRejected},
	StatusInProgress: {StatusCompleted, StatusRejected},
	StatusCompleted:  {},
	StatusRejected:   {},
}

// IsValidStatus 요청 상태 유효성 확인
func IsValidStatus(status RequestStatus) bool {
	_, ok := StatusLabels[status]
	return ok
}

// IsTerminalStatus 종결 상태 여부
func IsTerminalStatus(status RequestStatus) bool {
	return status == StatusCompleted || status == StatusRejected
}

// CanTransition 상태 전이 허용 여부 확인
func CanTransition(from, to RequestStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Urgency 긴급도
type Urgency string

// 긴급도 상수
const (
	UrgencyLow      Urgency = "low"
	UrgencyNormal   Urgency = "normal"
	UrgencyHigh     Urgency = "high"
	UrgencyCritical Urgency = "critical"
)

// UrgencyLabels 긴급도 표시 이름
var UrgencyLabels = map[Urgency]string{
	UrgencyLow:      "낮음",
	UrgencyNormal:   "보통",
	UrgencyHigh:     "높음",
	UrgencyCritical: "긴급",
}

// IsValidUrgency 긴급도 유효성 확인
func IsValidUrgency(urgency Urgency) bool {
	_, ok := UrgencyLabels[urgency]
	return ok
}

// ApprovalStatus 결재자별 결재 상태
type ApprovalStatus string

// 결재 상태 상수
const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)
