/*
 * @module api/controllers/health_controller
 * @description 헬스 체크 컨트롤러, 서비스 상태 점검 제공
 * @architecture MVC 아키텍처 - 컨트롤러 계층
 * @documentReference ai_docs/requirements.md
 * @stateFlow HTTP 요청 처리 흐름
 * @rules 컨테이너 헬스 체크와 로드밸런서용 단순 점검 인터페이스 제공
 * @dependencies net/http
 * @refs api/routes.go
 */

package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/render"
)

// HealthController 헬스 체크 컨트롤러
type HealthController struct{}

// NewHealthController 헬스 체크 컨트롤러 인스턴스 생성
func NewHealthController() *HealthController {
	return &HealthController{}
}

// HealthResponse 헬스 체크 응답 구조
type HealthResponse struct {
	Status    string    `json:"status" example:"ok"`
	Timestamp time.Time `json:"timestamp" example:"2024-01-01T00:00:00Z"`
	Version   string    `json:"version" example:"1.0.0"`
	Service   string    `json:"service" example:"request-portal-service"`
}

// Health 헬스 체크
// @Summary 헬스 체크
// @Description 서비스 상태 확인
// @Tags 시스템
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Service:   "request-portal-service",
	}

	render.JSON(w, r, response)
}

// Ready 준비 상태 확인
// @Summary 준비 상태 확인
// @Description 서비스가 요청을 받을 준비가 됐는지 확인
// @Tags 시스템
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /ready [get]
func (c *HealthController) Ready(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "ready",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Service:   "request-portal-service",
	}

	render.JSON(w, r, response)
}
