/*
 * @module service/request/approval
 * @description 결재선 상태 기계, 결재선 설정과 단계별 승인/반려 처리를 담당
 * @architecture 계층형 아키텍처 - 비즈니스 서비스 계층
 * @documentReference ai_docs/request.md
 * @stateFlow 결재선 설정(step=1) -> 단계별 승인으로 step 증가 -> 최종 승인 시 approved, 반려 시 rejected
 * @rules 반려는 즉시 요청을 종결하고 남은 결재자는 pending으로 남긴다
 * @dependencies github.com/google/uuid, request-portal-service/service/models
 * @refs service/request/request_service.go
 */

package request

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"request-portal-service/service/meta"
	"request-portal-service/service/models"
	"request-portal-service/service/monitoring"
)

// ApprovalAction 결재 행위 종류
type ApprovalAction string

const (
	ActionApprove ApprovalAction = "approve"
	ActionReject  ApprovalAction = "reject"
)

// SetApprovers 결재선 설정, 기존 결재선은 통째로 교체된다
// order 값은 1부터 시작하는 연속된 정수여야 한다
func (s *Service) SetApprovers(id string, approvers []models.ApproverInfo) (*models.Request, error) {
	if len(approvers) == 0 {
		return nil, &ValidationError{Field: "approvers", Reason: "결재선은 비워둘 수 없습니다"}
	}

	seen := map[int]bool{}
	for _, approver := range approvers {
		if approver.Order < 1 || approver.Order > len(approvers) || seen[approver.Order] {
			return nil, &ValidationError{Field: "approvers", Reason: "order 값은 1부터 시작하는 연속된 정수여야 합니다"}
		}
		seen[approver.Order] = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	req, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	chain := make(models.ApproverList, len(approvers))
	names := make([]string, len(approvers))
	for i, approver := range approvers {
		approver.Status = meta.ApprovalPending
		approver.Note = ""
		approver.ProcessedAt = nil
		chain[i] = approver
	}
	for _, approver := range chain {
		names[approver.Order-1] = approver.Name
	}

	req.Approvers = chain
	req.CurrentApprovalStep = 1
	req.UpdatedAt = now
	req.History = append(req.History, models.RequestHistory{
		ID:        uuid.New().String(),
		Timestamp: now,
		Action:    "결재선 설정: " + strings.Join(names, " → "),
		Actor:     meta.CurrentUser.Name,
	})

	if err := s.db.Save(req).Error; err != nil {
		return nil, err
	}

	s.publish("approvers_changed", req.ID, map[string]interface{}{
		"approver_count": len(chain),
	})
	return req, nil
}

// ProcessApproval 결재 처리(승인/반려)
// 현재 단계의 결재자가 승인했을 때만 단계가 전진한다, 현재 단계가 아닌 결재자의
// 처리는 해당 결재자의 상태만 기록하고 단계를 움직이지 않는다
func (s *Service) ProcessApproval(id, approverID string, action ApprovalAction, note string) (*models.Request, error) {
	if action != ActionApprove && action != ActionReject {
		return nil, &ValidationError{Field: "action", Reason: "approve 또는 reject만 허용됩니다"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	req, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if len(req.Approvers) == 0 {
		return nil, ErrNoApprovalChain
	}

	targetIdx := -1
	for i := range req.Approvers {
		if req.Approvers[i].ID == approverID {
			targetIdx = i
			break
		}
	}
	if targetIdx < 0 {
		return nil, ErrApproverNotFound
	}
	if req.Approvers[targetIdx].Status != meta.ApprovalPending {
		return nil, ErrApproverAlreadyDecided
	}

	now := time.Now()
	target := &req.Approvers[targetIdx]
	if action == ActionApprove {
		target.Status = meta.ApprovalApproved
	} else {
		target.Status = meta.ApprovalRejected
	}
	target.Note = note
	target.ProcessedAt = &now

	if action == ActionReject {
		// 반려 시 체인은 더 진행하지 않고 요청을 종결한다
		req.Status = meta.StatusRejected
	} else {
		var current *models.ApproverInfo
		for i := range req.Approvers {
			if req.Approvers[i].Order == req.CurrentApprovalStep {
				current = &req.Approvers[i]
				break
			}
		}
		if current != nil && current.Status == meta.ApprovalApproved {
			hasNext := false
			for i := range req.Approvers {
				if req.Approvers[i].Order == req.CurrentApprovalStep+1 {
					hasNext = true
					break
				}
			}
			if hasNext {
				req.CurrentApprovalStep++
			} else {
				req.Status = meta.StatusApproved
			}
		}
	}

	actionLabel := "결재 승인"
	if action == ActionReject {
		actionLabel = "결재 반려"
	}
	req.UpdatedAt = now
	req.History = append(req.History, models.RequestHistory{
		ID:        uuid.New().String(),
		Timestamp: now,
		Action:    target.Name + " " + actionLabel,
		Actor:     target.Name,
		Note:      note,
	})

	if err := s.db.Save(req).Error; err != nil {
		return nil, err
	}

	monitoring.ApprovalsTotal.WithLabelValues(string(action)).Inc()
	s.publish("approval_processed", req.ID, map[string]interface{}{
		"approver_id": approverID,
		"action":      string(action),
		"status":      string(req.Status),
	})
	return req, nil
}
