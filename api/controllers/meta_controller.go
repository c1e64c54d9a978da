/*
 * @module api/controllers/meta_controller
 * @description 메타데이터 컨트롤러, 시스템 카탈로그/요청 유형/긴급도/명부/액션 목록 등 정적 참조 데이터 제공
 * @architecture MVC 아키텍처 - 컨트롤러 계층
 * @documentReference ai_docs/requirements.md
 * @stateFlow HTTP 요청 처리 흐름
 * @rules 참조 데이터는 기동 시 1회 로드된 상수, 런타임 변경 없음
 * @dependencies request-portal-service/service/meta, github.com/go-chi/render
 * @refs service/meta
 */

package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"request-portal-service/service/meta"
)

// MetaController 메타데이터 컨트롤러
type MetaController struct{}

// NewMetaController 메타데이터 컨트롤러 인스턴스 생성
func NewMetaController() *MetaController {
	return &MetaController{}
}

// GetSystems 시스템 카탈로그 조회
// @Summary 시스템 카탈로그 조회
// @Description 등록된 전체 시스템과 하위 모듈 목록 조회, active=true면 사용 중인 시스템만 반환
// @Tags 메타데이터
// @Produce json
// @Param active query bool false "사용 중인 시스템만 조회"
// @Success 200 {object} APIResponse{data=[]meta.SystemMeta}
// @Router /meta/systems [get]
func (c *MetaController) GetSystems(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("active") == "true" {
		render.JSON(w, r, SuccessResponse("조회 성공", meta.ActiveSystems()))
		return
	}
	render.JSON(w, r, SuccessResponse("조회 성공", meta.Systems))
}

// GetSystem 시스템 상세 조회
// @Summary 시스템 상세 조회
// @Description ID로 시스템 상세 정보 조회
// @Tags 메타데이터
// @Produce json
// @Param id path string true "시스템 ID"
// @Success 200 {object} APIResponse{data=meta.SystemMeta}
// @Failure 404 {object} APIResponse
// @Router /meta/systems/{id} [get]
func (c *MetaController) GetSystem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	system := meta.GetSystemByID(id)
	if system == nil {
		render.JSON(w, r, NotFoundResponse("시스템을 찾을 수 없습니다", nil))
		return
	}
	render.JSON(w, r, SuccessResponse("조회 성공", system))
}

// GetCategories 요청 유형 목록 조회
// @Summary 요청 유형 목록 조회
// @Description 요청 유형 코드와 표시 이름 목록 조회
// @Tags 메타데이터
// @Produce json
// @Success 200 {object} APIResponse
// @Router /meta/categories [get]
func (c *MetaController) GetCategories(w http.ResponseWriter, r *http.Request) {
	type categoryItem struct {
		Category meta.RequestCategory `json:"category"`
		Label    string               `json:"label"`
	}
	items := make([]categoryItem, 0, len(meta.AllCategories))
	for _, category := range meta.AllCategories {
		items = append(items, categoryItem{Category: category, Label: meta.GetCategoryLabel(category)})
	}
	render.JSON(w, r, SuccessResponse("조회 성공", items))
}

// GetAssignees 담당자 명부 조회
// @Summary 담당자 명부 조회
// @Description 배정 가능한 담당자 목록 조회
// @Tags 메타데이터
// @Produce json
// @Success 200 {object} APIResponse{data=[]meta.AssigneeMeta}
// @Router /meta/assignees [get]
func (c *MetaController) GetAssignees(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, SuccessResponse("조회 성공", meta.Assignees))
}

// GetApprovers 결재자 명부 조회
// @Summary 결재자 명부 조회
// @Description 결재선에 올릴 수 있는 결재자 목록 조회
// @Tags 메타데이터
// @Produce json
// @Success 200 {object} APIResponse{data=[]meta.ApproverMeta}
// @Router /meta/approvers [get]
func (c *MetaController) GetApprovers(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, SuccessResponse("조회 성공", meta.Approvers))
}

// GetActions 액션 목록 조회
// @Summary 액션 목록 조회
// @Description 등록된 액션 바로가기 목록 조회, system 쿼리로 시스템별 필터 가능
// @Tags 메타데이터
// @Produce json
// @Param system query string false "시스템 ID"
// @Success 200 {object} APIResponse{data=[]meta.ActionMeta}
// @Router /meta/actions [get]
func (c *MetaController) GetActions(w http.ResponseWriter, r *http.Request) {
	if systemID := r.URL.Query().Get("system"); systemID != "" {
		render.JSON(w, r, SuccessResponse("조회 성공", meta.ActionsBySystem(systemID)))
		return
	}
	render.JSON(w, r, SuccessResponse("조회 성공", meta.Actions))
}

// GetCurrentUser 현재 사용자 조회
// @Summary 현재 사용자 조회
// @Description 데모 환경의 현재 사용자 정보 조회
// @Tags 메타데이터
// @Produce json
// @Success 200 {object} APIResponse{data=meta.UserMeta}
// @Router /meta/current-user [get]
func (c *MetaController) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, SuccessResponse("조회 성공", meta.CurrentUser))
}
