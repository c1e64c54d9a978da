/*
 * @module service/request/errors
 * @description 요청 생명주기 서비스의 오류 타입 정의, 참조 무결성 위반과 잘못된 상태 전이를 명시적으로 드러낸다
 * @architecture 계층형 아키텍처 - 비즈니스 서비스 계층
 * @documentReference ai_docs/request.md
 * @stateFlow 없음
 * @rules 존재하지 않는 ID 참조는 조용히 무시하지 않고 반드시 오류로 반환한다
 * @dependencies errors, fmt
 * @refs service/request/request_service.go
 */

package request

import (
	"errors"
	"fmt"

	"request-portal-service/service/meta"
)

var (
	// ErrRequestNotFound 존재하지 않는 요청 ID 참조
	ErrRequestNotFound = errors.New("요청을 찾을 수 없습니다")
	// ErrAssigneeNotFound 명부에 없는 담당자 ID 참조
	ErrAssigneeNotFound = errors.New("담당자를 찾을 수 없습니다")
	// ErrApproverNotFound 결재선에 없는 결재자 ID 참조
	ErrApproverNotFound = errors.New("결재자를 찾을 수 없습니다")
	// ErrNoApprovalChain 결재선이 설정되지 않은 요청에 대한 결재 처리
	ErrNoApprovalChain = errors.New("결재선이 설정되지 않았습니다")
	// ErrApproverAlreadyDecided 이미 승인/반려가 끝난 결재자에 대한 재처리
	ErrApproverAlreadyDecided = errors.New("이미 처리된 결재입니다")
)

// ValidationError 생성 입력의 구조적 검증 실패
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("입력 검증 실패: %s (%s)", e.Field, e.Reason)
}

// TransitionError 전이 테이블에서 허용하지 않는 상태 변경
type TransitionError struct {
	From meta.RequestStatus
	To   meta.RequestStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("허용되지 않는 상태 전이: %s -> %s", e.From, e.To)
}
