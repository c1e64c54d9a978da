/*
 * @module api/controllers/request_controller
 * @description 요청 컨트롤러, 요청 접수/조회/상태 변경/담당자 배정/삭제/통계/유사 요청 검색 API 제공
 * @architecture MVC 아키텍처 - 컨트롤러 계층
 * @documentReference ai_docs/request.md
 * @stateFlow HTTP 요청 -> 요청 서비스 호출 -> 응답 반환
 * @rules 참조 무결성 위반은 404, 검증 실패는 400, 허용되지 않는 전이는 409로 응답한다
 * @dependencies request-portal-service/service, github.com/go-chi/chi/v5, github.com/spf13/cast
 * @refs service/request
 */

package controllers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/spf13/cast"

	"request-portal-service/service"
	"request-portal-service/service/meta"
	"request-portal-service/service/request"
)

// RequestController 요청 컨트롤러
type RequestController struct {
	service *request.Service
}

// NewRequestController 요청 컨트롤러 인스턴스 생성
func NewRequestController() *RequestController {
	return &RequestController{
		service: service.GlobalRequestService,
	}
}

// renderServiceError 서비스 오류를 응답 규약에 맞게 변환
func renderServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *request.ValidationError
	var transitionErr *request.TransitionError

	switch {
	case errors.As(err, &validationErr):
		render.JSON(w, r, BadRequestResponse(err.Error(), nil))
	case errors.As(err, &transitionErr):
		render.JSON(w, r, ConflictResponse(err.Error(), nil))
	case errors.Is(err, request.ErrRequestNotFound),
		errors.Is(err, request.ErrAssigneeNotFound),
		errors.Is(err, request.ErrApproverNotFound):
		render.JSON(w, r, NotFoundResponse(err.Error(), nil))
	case errors.Is(err, request.ErrNoApprovalChain),
		errors.Is(err, request.ErrApproverAlreadyDecided):
		render.JSON(w, r, ConflictResponse(err.Error(), nil))
	default:
		render.JSON(w, r, InternalErrorResponse(err.Error(), nil))
	}
}

// CreateRequest 요청 접수
// @Summary 요청 접수
// @Description 새 요청을 접수한다, 접수 직후 상태는 pending이며 접수 이력 한 건이 기록된다
// @Tags 요청 관리
// @Accept json
// @Produce json
// @Param request body request.CreateInput true "요청 정보"
// @Success 200 {object} APIResponse{data=models.Request}
// @Failure 400 {object} APIResponse
// @Router /requests [post]
func (c *RequestController) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var input request.CreateInput
	if err := render.DecodeJSON(r.Body, &input); err != nil {
		render.JSON(w, r, BadRequestResponse("요청 본문 형식 오류: "+err.Error(), nil))
		return
	}

	created, err := c.service.Create(&input)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	render.JSON(w, r, SuccessResponse("접수 성공", created))
}

// GetRequestList 요청 목록 조회
// @Summary 요청 목록 조회
// @Description 최신순 요청 목록 조회, 상태/시스템/검색어 필터와 페이지네이션 지원
// @Tags 요청 관리
// @Produce json
// @Param page query int false "페이지 번호" default(1)
// @Param size query int false "페이지 크기" default(10)
// @Param status query string false "상태 필터"
// @Param system_id query string false "시스템 필터"
// @Param search query string false "제목/내용 검색어"
// @Success 200 {object} PaginatedResponse{data=[]models.Request}
// @Router /requests [get]
func (c *RequestController) GetRequestList(w http.ResponseWriter, r *http.Request) {
	page := cast.ToInt(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	size := cast.ToInt(r.URL.Query().Get("size"))
	if size < 1 {
		size = 10
	}

	requests, total, err := c.service.List(page, size,
		r.URL.Query().Get("status"),
		r.URL.Query().Get("system_id"),
		r.URL.Query().Get("search"))
	if err != nil {
		render.JSON(w, r, InternalErrorResponse(err.Error(), nil))
		return
	}
	render.JSON(w, r, PagedResponse("조회 성공", requests, total, page, size))
}

// GetMyRequests 내 요청 목록 조회
// @Summary 내 요청 목록 조회
// @Description 현재 사용자가 접수한 요청 목록을 최신순으로 조회
// @Tags 요청 관리
// @Produce json
// @Success 200 {object} APIResponse{data=[]models.Request}
// @Router /requests/my [get]
func (c *RequestController) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := c.service.MyRequests()
	if err != nil {
		render.JSON(w, r, InternalErrorResponse(err.Error(), nil))
		return
	}
	render.JSON(w, r, SuccessResponse("조회 성공", requests))
}

// GetRequest 요청 상세 조회
// @Summary 요청 상세 조회
// @Description ID로 요청 상세 정보 조회
// @Tags 요청 관리
// @Produce json
// @Param id path string true "요청 ID"
// @Success 200 {object} APIResponse{data=models.Request}
// @Failure 404 {object} APIResponse
// @Router /requests/{id} [get]
func (c *RequestController) GetRequest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	req, err := c.service.GetByID(id)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	render.JSON(w, r, SuccessResponse("조회 성공", req))
}

// UpdateStatusRequest 상태 변경 요청 본문
type UpdateStatusRequest struct {
	Status meta.RequestStatus `json:"status"`
	Note   string             `json:"note,omitempty"`
}

// UpdateStatus 요청 상태 변경
// @Summary 요청 상태 변경
// @Description 전이 테이블에서 허용하는 상태 변경을 수행하고 이력을 기록한다
// @Tags 요청 관리
// @Accept json
// @Produce json
// @Param id path string true "요청 ID"
// @Param request body UpdateStatusRequest true "변경할 상태"
// @Success 200 {object} APIResponse{data=models.Request}
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Failure 409 {object} APIResponse
// @Router /requests/{id}/status [put]
func (c *RequestController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateStatusRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.JSON(w, r, BadRequestResponse("요청 본문 형식 오류: "+err.Error(), nil))
		return
	}

	updated, err := c.service.UpdateStatus(id, req.Status, req.Note)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	render.JSON(w, r, SuccessResponse("상태 변경 성공", updated))
}

// AssignRequest 담당자 배정 요청 본문
type AssignRequest struct {
	AssigneeID string `json:"assignee_id"`
}

// Assign 담당자 배정
// @Summary 담당자 배정
// @Description 명부에 등록된 담당자를 요청에 배정한다
// @Tags 요청 관리
// @Accept json
// @Produce json
// @Param id path string true "요청 ID"
// @Param request body AssignRequest true "담당자 ID"
// @Success 200 {object} APIResponse{data=models.Request}
// @Failure 404 {object} APIResponse
// @Router /requests/{id}/assign [put]
func (c *RequestController) Assign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req AssignRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.JSON(w, r, BadRequestResponse("요청 본문 형식 오류: "+err.Error(), nil))
		return
	}

	updated, err := c.service.Assign(id, req.AssigneeID)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	render.JSON(w, r, SuccessResponse("배정 성공", updated))
}

// DeleteRequest 요청 삭제
// @Summary 요청 삭제
// @Description 요청을 완전히 삭제한다, 복구 불가
// @Tags 요청 관리
// @Produce json
// @Param id path string true "요청 ID"
// @Success 200 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /requests/{id} [delete]
func (c *RequestController) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := c.service.Delete(id); err != nil {
		renderServiceError(w, r, err)
		return
	}
	render.JSON(w, r, SuccessResponse("삭제 성공", nil))
}

// GetStats 요청 통계 조회
// @Summary 요청 통계 조회
// @Description 상태별 요청 건수 집계, in_progress 버킷은 in_progress와 approved를 합산한다
// @Tags 요청 관리
// @Produce json
// @Success 200 {object} APIResponse{data=models.RequestStats}
// @Router /requests/stats [get]
func (c *RequestController) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.service.Stats()
	if err != nil {
		render.JSON(w, r, InternalErrorResponse(err.Error(), nil))
		return
	}
	render.JSON(w, r, SuccessResponse("조회 성공", stats))
}

// GetStatsSnapshots 통계 스냅샷 조회
// @Summary 통계 스냅샷 조회
// @Description 스케줄러가 기록한 일별 통계 스냅샷을 최신순으로 조회
// @Tags 요청 관리
// @Produce json
// @Param limit query int false "조회 건수" default(30)
// @Success 200 {object} APIResponse{data=[]models.StatsSnapshot}
// @Router /requests/stats/snapshots [get]
func (c *RequestController) GetStatsSnapshots(w http.ResponseWriter, r *http.Request) {
	limit := cast.ToInt(r.URL.Query().Get("limit"))
	snapshots, err := service.GlobalSchedulerService.Snapshots(limit)
	if err != nil {
		render.JSON(w, r, InternalErrorResponse(err.Error(), nil))
		return
	}
	render.JSON(w, r, SuccessResponse("조회 성공", snapshots))
}

// FindSimilarRequest 유사 요청 검색 요청 본문
type FindSimilarRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// FindSimilar 유사 요청 검색
// @Summary 유사 요청 검색
// @Description 단어 겹침 기반으로 진행 중인 유사 요청을 최대 3건 반환, 중복 접수 감지용
// @Tags 요청 관리
// @Accept json
// @Produce json
// @Param request body FindSimilarRequest true "비교할 제목과 내용"
// @Success 200 {object} APIResponse{data=[]models.Request}
// @Router /requests/find-similar [post]
func (c *RequestController) FindSimilar(w http.ResponseWriter, r *http.Request) {
	var req FindSimilarRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.JSON(w, r, BadRequestResponse("요청 본문 형식 오류: "+err.Error(), nil))
		return
	}

	similar, err := c.service.FindSimilar(req.Title, req.Content)
	if err != nil {
		render.JSON(w, r, InternalErrorResponse(err.Error(), nil))
		return
	}
	render.JSON(w, r, SuccessResponse("검색 성공", similar))
}
