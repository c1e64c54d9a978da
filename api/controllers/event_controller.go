/*
 * @module api/controllers/event_controller
 * @description 이벤트 컨트롤러, SSE 연결 수립과 이벤트 이력 조회 API 제공
 * @architecture RESTful API 아키텍처 - 컨트롤러 계층
 * @documentReference ai_docs/event.md
 * @stateFlow SSE 연결 수립 -> 이벤트 스트림 전송 -> 연결 종료 시 정리
 * @rules 연결 성공 직후 connected 이벤트를 먼저 보낸다
 * @dependencies request-portal-service/service, github.com/google/uuid
 * @refs service/event/event_service.go
 */

package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/spf13/cast"

	"request-portal-service/service"
	"request-portal-service/service/event"
)

// EventController 이벤트 컨트롤러
type EventController struct {
	eventService *event.EventService
}

// NewEventController 이벤트 컨트롤러 인스턴스 생성
func NewEventController() *EventController {
	return &EventController{
		eventService: service.GlobalEventService,
	}
}

// HandleSSE SSE 연결 수립
// @Summary SSE 연결 수립
// @Description 클라이언트가 이 엔드포인트로 SSE 연결을 수립해 요청 변경 이벤트를 실시간으로 수신한다
// @Tags 이벤트 관리
// @Param user_name path string true "사용자 이름"
// @Success 200 {string} string "SSE 이벤트 스트림"
// @Router /sse/{user_name} [get]
func (c *EventController) HandleSSE(w http.ResponseWriter, r *http.Request) {
	userName := chi.URLParam(r, "user_name")
	if userName == "" {
		http.Error(w, "사용자 이름은 비워둘 수 없습니다", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Cache-Control")

	connectionID := uuid.New().String()
	clientIP := r.RemoteAddr
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		clientIP = forwarded
	}

	client := c.eventService.AddConnection(userName, connectionID, clientIP)
	defer c.eventService.RemoveConnection(userName, connectionID)

	fmt.Fprintf(w, "data: {\"type\":\"connected\",\"connection_id\":\"%s\",\"timestamp\":\"%s\"}\n\n",
		connectionID, time.Now().Format(time.RFC3339))
	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}

	for {
		select {
		case ev := <-client.Channel:
			fmt.Fprintf(w, "data: %s\n\n", toJSON(ev))
			if flusher, ok := w.(http.Flusher); ok {
				flusher.Flush()
			}

		case <-client.Done:
			return

		case <-r.Context().Done():
			return
		}
	}
}

// GetEventHistory 이벤트 이력 조회
// @Summary 이벤트 이력 조회
// @Description 저장된 이벤트 이력을 최신순으로 조회, 유형/요청 ID 필터와 페이지네이션 지원
// @Tags 이벤트 관리
// @Produce json
// @Param page query int false "페이지 번호" default(1)
// @Param size query int false "페이지 크기" default(10)
// @Param event_type query string false "이벤트 유형 필터"
// @Param request_id query string false "요청 ID 필터"
// @Success 200 {object} PaginatedResponse{data=[]models.SSEEvent}
// @Router /events/history [get]
func (c *EventController) GetEventHistory(w http.ResponseWriter, r *http.Request) {
	page := cast.ToInt(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	size := cast.ToInt(r.URL.Query().Get("size"))
	if size < 1 {
		size = 10
	}

	events, total, err := c.eventService.EventHistory(page, size,
		r.URL.Query().Get("event_type"),
		r.URL.Query().Get("request_id"))
	if err != nil {
		render.JSON(w, r, InternalErrorResponse(err.Error(), nil))
		return
	}
	render.JSON(w, r, PagedResponse("조회 성공", events, total, page, size))
}
