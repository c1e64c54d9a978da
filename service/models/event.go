/*
 * @module service/models/event
 * @description 이벤트 관련 모델 정의, SSE 이벤트 모델 포함
 * @architecture 이벤트 기반 아키텍처 - 데이터 모델 계층
 * @documentReference ai_docs/event.md
 * @stateFlow 이벤트 생성 -> 이벤트 전송 -> 클라이언트 수신
 * @rules 이벤트 ID가 비어 있으면 생성 시 UUID를 채운다
 * @dependencies gorm.io/gorm, github.com/google/uuid
 * @refs service/event/event_service.go
 */

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SSEEvent SSE 이벤트 모델
type SSEEvent struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	EventType string    `gorm:"not null" json:"event_type"` // request_created, status_changed, approval_processed 등
	RequestID string    `gorm:"index" json:"request_id"`
	Data      JSONB     `gorm:"type:text" json:"data"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	CreatedBy string    `gorm:"not null;default:'system'" json:"created_by"`
}

// BeforeCreate 생성 전 훅
func (s *SSEEvent) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.CreatedBy == "" {
		s.CreatedBy = "system"
	}
	return nil
}

func (SSEEvent) TableName() string {
	return "sse_events"
}
