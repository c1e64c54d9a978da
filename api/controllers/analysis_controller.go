/*
 * @module api/controllers/analysis_controller
 * @description 분석 컨트롤러, 자연어 입력 분석/확장 분석/액션 검색 API 제공
 * @architecture MVC 아키텍처 - 컨트롤러 계층
 * @documentReference ai_docs/analysis.md
 * @stateFlow HTTP 요청 -> 분석기 호출 -> 응답 반환
 * @rules 입력이 3자 미만이면 null 데이터로 응답한다, 오류가 아니라 판단 보류 신호다
 * @dependencies request-portal-service/service, github.com/go-chi/render
 * @refs service/analysis
 */

package controllers

import (
	"net/http"

	"github.com/go-chi/render"

	"request-portal-service/service"
	"request-portal-service/service/analysis"
	"request-portal-service/service/meta"
	"request-portal-service/service/monitoring"
)

// AnalysisController 분석 컨트롤러
type AnalysisController struct {
	analyzer *analysis.Analyzer
}

// NewAnalysisController 분석 컨트롤러 인스턴스 생성
func NewAnalysisController() *AnalysisController {
	return &AnalysisController{
		analyzer: service.GlobalAnalyzer,
	}
}

// AnalyzeRequest 분석 요청 본문
type AnalyzeRequest struct {
	Query   string       `json:"query"`
	Urgency meta.Urgency `json:"urgency,omitempty"`
}

// Analyze 자연어 입력 분석
// @Summary 자연어 입력 분석
// @Description 입력 텍스트에서 대상 시스템/모듈/요청 유형을 감지하고 제목과 필드 제안을 생성
// @Tags 분석
// @Accept json
// @Produce json
// @Param request body AnalyzeRequest true "분석 요청"
// @Success 200 {object} APIResponse{data=models.AnalysisResult}
// @Failure 400 {object} APIResponse
// @Router /analysis/analyze [post]
func (c *AnalysisController) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.JSON(w, r, BadRequestResponse("요청 본문 형식 오류: "+err.Error(), nil))
		return
	}

	result := c.analyzer.Analyze(req.Query)
	if result == nil {
		monitoring.AnalysesTotal.WithLabelValues("insufficient_input").Inc()
		render.JSON(w, r, SuccessResponse("입력이 너무 짧아 분석하지 않았습니다", nil))
		return
	}

	monitoring.AnalysesTotal.WithLabelValues("ok").Inc()
	render.JSON(w, r, SuccessResponse("분석 성공", result))
}

// AnalyzeExtended 확장 분석
// @Summary 확장 분석
// @Description 기본 분석에 영향도 분석과 예상 처리 시간 추정을 더해 반환
// @Tags 분석
// @Accept json
// @Produce json
// @Param request body AnalyzeRequest true "분석 요청"
// @Success 200 {object} APIResponse{data=models.ExtendedAnalysisResult}
// @Failure 400 {object} APIResponse
// @Router /analysis/analyze-extended [post]
func (c *AnalysisController) AnalyzeExtended(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.JSON(w, r, BadRequestResponse("요청 본문 형식 오류: "+err.Error(), nil))
		return
	}

	urgency := req.Urgency
	if urgency == "" {
		urgency = meta.UrgencyNormal
	}
	if !meta.IsValidUrgency(urgency) {
		render.JSON(w, r, BadRequestResponse("등록되지 않은 긴급도입니다", nil))
		return
	}

	result := c.analyzer.AnalyzeExtended(req.Query, urgency)
	if result == nil {
		monitoring.AnalysesTotal.WithLabelValues("insufficient_input").Inc()
		render.JSON(w, r, SuccessResponse("입력이 너무 짧아 분석하지 않았습니다", nil))
		return
	}

	monitoring.AnalysesTotal.WithLabelValues("ok").Inc()
	render.JSON(w, r, SuccessResponse("분석 성공", result))
}

// SearchActions 액션 검색
// @Summary 액션 검색
// @Description 입력 텍스트와 관련된 액션 바로가기를 신뢰도 순으로 검색, grouped=true면 시스템별로 묶어 반환
// @Tags 분석
// @Produce json
// @Param query query string true "검색어"
// @Param grouped query bool false "시스템별 그룹화 여부"
// @Success 200 {object} APIResponse
// @Router /analysis/actions [get]
func (c *AnalysisController) SearchActions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	if r.URL.Query().Get("grouped") == "true" {
		render.JSON(w, r, SuccessResponse("검색 성공", c.analyzer.SearchActionsGrouped(query)))
		return
	}
	render.JSON(w, r, SuccessResponse("검색 성공", c.analyzer.SearchActions(query)))
}
