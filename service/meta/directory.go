/*
 * @module service/meta/directory
 * @description 결재자/담당자/요청자 디렉토리, 데모 환경용 고정 명부
 * @architecture 상수 계층 - 정적 참조 데이터
 * @documentReference dev_docs/requirements.md
 * @stateFlow 기동 시 1회 로드 -> 배정/결재선 구성 시 조회
 * @rules 명부에 없는 ID 참조는 서비스 계층에서 NotFound로 처리
 * @refs service/request
 */

package meta

// UserMeta 요청자 정보
type UserMeta struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
}

// AssigneeMeta 처리 담당자 정보
type AssigneeMeta struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Contact    string `json:"contact"`
}

// ApproverMeta 결재자 정보
type ApproverMeta struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Position   string `json:"position"`
}

// CurrentUser 데모 환경의 현재 사용자
var CurrentUser = UserMeta{
	ID:         "user-001",
	Name:       "홍길동",
	Department: "디지털혁신팀",
}

// Assignees 담당자 명부
var Assignees = []AssigneeMeta{
	{ID: "assignee-001", Name: "김철수", Department: "시설관리팀", Contact: "010-1234-5678"},
	{ID: "assignee-002", Name: "이영희", Department: "IT운영팀", Contact: "010-2345-6789"},
	{ID: "assignee-003", Name: "박지성", Department: "인사팀", Contact: "010-3456-7890"},
}

// Approvers 결재자 명부
var Approvers = []ApproverMeta{
	{ID: "approver-1", Name: "김팀장", Department: "IT운영팀", Position: "팀장"},
	{ID: "approver-2", Name: "박부장", Department: "IT운영본부", Position: "부장"},
	{ID: "approver-3", Name: "이상무", Department: "경영지원실", Position: "상무"},
	{ID: "approver-4", Name: "최과장", Department: "IT운영팀", Position: "과장"},
	{ID: "approver-5", Name: "정대리", Department: "IT운영팀", Position: "대리"},
}

// GetAssigneeByID ID로 담당자 조회
func GetAssigneeByID(id string) *AssigneeMeta {
	for i := range Assignees {
		if Assignees[i].ID == id {
			return &Assignees[i]
		}
	}
	return nil
}

// GetApproverByID ID로 결재자 조회
func GetApproverByID(id string) *ApproverMeta {
	for i := range Approvers {
		if Approvers[i].ID == id {
			return &Approvers[i]
		}
	}
	return nil
}
