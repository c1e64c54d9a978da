/*
 * @module api/controllers/approval_controller
 * @description 결재 컨트롤러, 결재선 설정과 단계별 승인/반려 처리 API 제공
 * @architecture MVC 아키텍처 - 컨트롤러 계층
 * @documentReference ai_docs/request.md
 * @stateFlow HTTP 요청 -> 결재 상태 기계 호출 -> 응답 반환
 * @rules 결재선이 없는 요청의 결재 처리와 이미 처리된 결재의 재처리는 409로 응답한다
 * @dependencies request-portal-service/service, github.com/go-chi/chi/v5
 * @refs service/request/approval.go
 */

package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"request-portal-service/service"
	"request-portal-service/service/models"
	"request-portal-service/service/request"
)

// ApprovalController 결재 컨트롤러
type ApprovalController struct {
	service *request.Service
}

// NewApprovalController 결재 컨트롤러 인스턴스 생성
func NewApprovalController() *ApprovalController {
	return &ApprovalController{
		service: service.GlobalRequestService,
	}
}

// SetApproversRequest 결재선 설정 요청 본문
type SetApproversRequest struct {
	Approvers []models.ApproverInfo `json:"approvers"`
}

// SetApprovers 결재선 설정
// @Summary 결재선 설정
// @Description 요청에 순서가 있는 결재선을 설정한다, 기존 결재선은 통째로 교체된다
// @Tags 결재 관리
// @Accept json
// @Produce json
// @Param id path string true "요청 ID"
// @Param request body SetApproversRequest true "결재자 목록"
// @Success 200 {object} APIResponse{data=models.Request}
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /requests/{id}/approvers [put]
func (c *ApprovalController) SetApprovers(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req SetApproversRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.JSON(w, r, BadRequestResponse("요청 본문 형식 오류: "+err.Error(), nil))
		return
	}

	updated, err := c.service.SetApprovers(id, req.Approvers)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	render.JSON(w, r, SuccessResponse("결재선 설정 성공", updated))
}

// ProcessApprovalRequest 결재 처리 요청 본문
type ProcessApprovalRequest struct {
	ApproverID string                 `json:"approver_id"`
	Action     request.ApprovalAction `json:"action"`
	Note       string                 `json:"note,omitempty"`
}

// ProcessApproval 결재 처리
// @Summary 결재 처리
// @Description 결재자의 승인/반려를 처리한다, 현재 단계의 결재자가 승인하면 다음 단계로 전진하고 반려하면 요청이 즉시 종결된다
// @Tags 결재 관리
// @Accept json
// @Produce json
// @Param id path string true "요청 ID"
// @Param request body ProcessApprovalRequest true "결재 처리 내용"
// @Success 200 {object} APIResponse{data=models.Request}
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Failure 409 {object} APIResponse
// @Router /requests/{id}/approval [post]
func (c *ApprovalController) ProcessApproval(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req ProcessApprovalRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.JSON(w, r, BadRequestResponse("요청 본문 형식 오류: "+err.Error(), nil))
		return
	}

	updated, err := c.service.ProcessApproval(id, req.ApproverID, req.Action, req.Note)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	render.JSON(w, r, SuccessResponse("결재 처리 성공", updated))
}
