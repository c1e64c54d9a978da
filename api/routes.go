/*
 * @module api/routes
 * @description API 라우팅 설정 모듈, 모든 HTTP 라우트의 초기화와 구성을 담당
 * @architecture RESTful API 아키텍처
 * @documentReference ai_docs/requirements.md
 * @stateFlow 무상태 HTTP 요청 처리
 * @rules RESTful API 설계 규칙 준수, 통일된 오류 처리와 응답 형식
 * @dependencies github.com/go-chi/chi/v5, github.com/go-chi/cors, github.com/go-chi/render
 * @refs api/controllers
 */

package api

import (
	"request-portal-service/api/controllers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
)

// InitRoute 모든 API 라우트 초기화
func InitRoute(r *chi.Mux) {
	// 기본 미들웨어
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(render.SetContentType(render.ContentTypeJSON))

	// CORS 설정
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// 헬스 체크
	healthController := controllers.NewHealthController()
	r.Get("/health", healthController.Health)
	r.Get("/ready", healthController.Ready)

	// SSE 이벤트 구독
	eventController := controllers.NewEventController()
	r.Get("/sse/{user_name}", eventController.HandleSSE)

	// 이벤트 이력
	r.Route("/events", func(r chi.Router) {
		r.Get("/history", eventController.GetEventHistory)
	})

	// 메타데이터
	r.Route("/meta", func(r chi.Router) {
		metaController := controllers.NewMetaController()
		r.Get("/systems", metaController.GetSystems)
		r.Get("/systems/{id}", metaController.GetSystem)
		r.Get("/categories", metaController.GetCategories)
		r.Get("/assignees", metaController.GetAssignees)
		r.Get("/approvers", metaController.GetApprovers)
		r.Get("/actions", metaController.GetActions)
		r.Get("/current-user", metaController.GetCurrentUser)
	})

	// 자연어 분석
	r.Route("/analysis", func(r chi.Router) {
		analysisController := controllers.NewAnalysisController()
		r.Post("/analyze", analysisController.Analyze)
		r.Post("/analyze-extended", analysisController.AnalyzeExtended)
		r.Get("/actions", analysisController.SearchActions)
	})

	// 요청 관리
	r.Route("/requests", func(r chi.Router) {
		requestController := controllers.NewRequestController()
		approvalController := controllers.NewApprovalController()

		r.Post("/", requestController.CreateRequest)
		r.Get("/", requestController.GetRequestList)
		r.Get("/my", requestController.GetMyRequests)
		r.Get("/stats", requestController.GetStats)
		r.Get("/stats/snapshots", requestController.GetStatsSnapshots)
		r.Post("/find-similar", requestController.FindSimilar)

		r.Get("/{id}", requestController.GetRequest)
		r.Delete("/{id}", requestController.DeleteRequest)
		r.Put("/{id}/status", requestController.UpdateStatus)
		r.Put("/{id}/assign", requestController.Assign)

		// 결재 관리
		r.Put("/{id}/approvers", approvalController.SetApprovers)
		r.Post("/{id}/approval", approvalController.ProcessApproval)
	})
}
