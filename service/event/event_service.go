/*
 * @module service/event/event_service
 * @description 이벤트 서비스, 요청 변경 이벤트를 SSE로 클라이언트에 푸시하고 선택적으로 DB 변경 알림을 중계
 * @architecture 이벤트 기반 아키텍처 - 비즈니스 서비스 계층
 * @documentReference ai_docs/event.md
 * @stateFlow 이벤트 발행 -> DB 기록 -> 연결별 채널 분배 -> SSE 스트림 전송
 * @rules 채널이 가득 찬 연결은 건너뛴다, 이벤트 유실보다 스트림 블로킹 방지를 우선한다
 * @dependencies github.com/lib/pq, gorm.io/gorm, request-portal-service/service/models
 * @refs api/controllers/event_controller.go
 */

package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"request-portal-service/service/models"
)

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// SSEClient SSE 클라이언트 연결
type SSEClient struct {
	ID       string
	UserName string
	Channel  chan *models.SSEEvent
	Done     chan bool
	ClientIP string
}

// EventService 이벤트 관리 서비스
type EventService struct {
	db          *gorm.DB
	connections map[string]map[string]*SSEClient // userName -> connectionID -> client
	mu          sync.RWMutex
	dbListener  *pq.Listener
	ctx         context.Context
	cancel      context.CancelFunc
}

// NewEventService 이벤트 서비스 인스턴스 생성
// ENABLE_DB_LISTENER=true 이고 postgres를 사용할 때만 DB 변경 알림을 중계한다
func NewEventService(db *gorm.DB) *EventService {
	ctx, cancel := context.WithCancel(context.Background())

	service := &EventService{
		db:          db,
		connections: make(map[string]map[string]*SSEClient),
		ctx:         ctx,
		cancel:      cancel,
	}

	if os.Getenv("ENABLE_DB_LISTENER") == "true" {
		go service.startDBListener()
	}
	go service.startConnectionCleaner()

	return service
}

// AddConnection SSE 연결 추가
func (s *EventService) AddConnection(userName, connectionID, clientIP string) *SSEClient {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.connections[userName] == nil {
		s.connections[userName] = make(map[string]*SSEClient)
	}

	client := &SSEClient{
		ID:       connectionID,
		UserName: userName,
		Channel:  make(chan *models.SSEEvent, 100),
		Done:     make(chan bool),
		ClientIP: clientIP,
	}
	s.connections[userName][connectionID] = client

	slog.Info("SSE 연결 수립", "user", userName, "connection_id", connectionID, "ip", clientIP)
	return client
}

// RemoveConnection SSE 연결 제거
func (s *EventService) RemoveConnection(userName, connectionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if userConnections, exists := s.connections[userName]; exists {
		if client, exists := userConnections[connectionID]; exists {
			close(client.Done)
			delete(userConnections, connectionID)
			if len(userConnections) == 0 {
				delete(s.connections, userName)
			}
			slog.Info("SSE 연결 종료", "user", userName, "connection_id", connectionID)
		}
	}
}

// Publish 이벤트를 DB에 기록하고 모든 연결에 브로드캐스트
func (s *EventService) Publish(event *models.SSEEvent) {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	if err := s.db.Create(event).Error; err != nil {
		slog.Error("이벤트 기록 실패", "error", err, "event_type", event.EventType)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for userName, userConnections := range s.connections {
		for _, client := range userConnections {
			select {
			case client.Channel <- event:
			default:
				slog.Warn("이벤트 채널 가득 참, 전송 생략", "user", userName, "connection_id", client.ID)
			}
		}
	}
}

// EventHistory 저장된 이벤트 이력 조회, 최신순
func (s *EventService) EventHistory(page, pageSize int, eventType, requestID string) ([]models.SSEEvent, int64, error) {
	var events []models.SSEEvent
	var total int64

	query := s.db.Model(&models.SSEEvent{})
	if eventType != "" {
		query = query.Where("event_type = ?", eventType)
	}
	if requestID != "" {
		query = query.Where("request_id = ?", requestID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Offset(offset).Limit(pageSize).Order("created_at DESC").Find(&events).Error; err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// startDBListener postgres LISTEN/NOTIFY 채널을 구독해 외부 변경을 이벤트로 중계
func (s *EventService) startDBListener() {
	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		host := getEnvWithDefault("DB_HOST", "localhost")
		port := getEnvWithDefault("DB_PORT", "5432")
		user := getEnvWithDefault("DB_USER", "postgres")
		password := getEnvWithDefault("DB_PASSWORD", "postgres")
		dbname := getEnvWithDefault("DB_NAME", "postgres")
		sslmode := getEnvWithDefault("DB_SSLMODE", "disable")

		connStr = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			host, port, user, password, dbname, sslmode)
	}

	s.dbListener = pq.NewListener(connStr, 10*time.Second, time.Minute, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			slog.Error("postgres 리스너 오류", "event", ev, "error", err)
		}
	})

	if err := s.dbListener.Listen("portal_changes"); err != nil {
		slog.Error("DB 알림 구독 실패", "error", err)
		return
	}
	slog.Info("DB 변경 리스너 시작")

	for {
		select {
		case notification := <-s.dbListener.Notify:
			if notification != nil {
				s.handleDBNotification(notification)
			}
		case <-s.ctx.Done():
			slog.Info("DB 변경 리스너 중지")
			return
		}
	}
}

// handleDBNotification DB 변경 알림을 SSE 이벤트로 변환해 브로드캐스트
func (s *EventService) handleDBNotification(notification *pq.Notification) {
	var changeData map[string]interface{}
	if err := json.Unmarshal([]byte(notification.Extra), &changeData); err != nil {
		slog.Error("DB 알림 파싱 실패", "error", err)
		return
	}

	requestID, _ := changeData["record_id"].(string)
	s.Publish(&models.SSEEvent{
		EventType: "db_change",
		RequestID: requestID,
		Data:      models.JSONB(changeData),
		CreatedAt: time.Now(),
	})
}

// startConnectionCleaner 닫힌 연결을 주기적으로 정리
func (s *EventService) startConnectionCleaner() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanupClosedConnections()
		case <-s.ctx.Done():
			return
		}
	}
}

func (s *EventService) cleanupClosedConnections() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for userName, userConnections := range s.connections {
		for connectionID, client := range userConnections {
			select {
			case <-client.Done:
				delete(userConnections, connectionID)
			default:
			}
		}
		if len(userConnections) == 0 {
			delete(s.connections, userName)
		}
	}
}

// Stop 이벤트 서비스 중지, 모든 연결을 닫는다
func (s *EventService) Stop() {
	s.cancel()

	if s.dbListener != nil {
		s.dbListener.Close()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for userName, userConnections := range s.connections {
		for connectionID, client := range userConnections {
			close(client.Done)
			delete(userConnections, connectionID)
		}
		delete(s.connections, userName)
	}
}
