/*
 * @module service/models/request
 * @description 요청 접수/결재 관련 모델 정의, 요청 본문·이력·결재선·첨부파일 및 통계 스냅샷 포함
 * @architecture 계층형 아키텍처 - 데이터 모델 계층
 * @documentReference ai_docs/model.md
 * @stateFlow 요청 생명주기: pending → in_progress → completed, 거절 시 rejected
 * @rules 이력(History)은 추가 전용이며 기존 항목을 수정하지 않는다
 * @dependencies gorm.io/gorm, request-portal-service/service/meta
 * @refs service/request/request_service.go
 */

package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"request-portal-service/service/meta"
)

// Requester 요청자 정보
type Requester struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

func (r *Requester) Scan(value interface{}) error { return scanJSONColumn(value, r) }
func (r Requester) Value() (driver.Value, error)  { return json.Marshal(r) }

// AssigneeInfo 담당자 정보
type AssigneeInfo struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Contact    string `json:"contact,omitempty"`
}

// AttachmentInfo 첨부파일 메타데이터, 내용은 base64 인코딩으로 보관
type AttachmentInfo struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Size           int64     `json:"size"`
	MimeType       string    `json:"mime_type"`
	EncodedContent string    `json:"encoded_content,omitempty"`
	UploadedAt     time.Time `json:"uploaded_at"`
}

// RequestHistory 요청 처리 이력 항목
type RequestHistory struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Actor     string    `json:"actor"`
	Note      string    `json:"note,omitempty"`
}

// ApproverInfo 결재자 정보와 결재 진행 상태
type ApproverInfo struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Department  string              `json:"department"`
	Position    string              `json:"position"`
	Order       int                 `json:"order"`
	Status      meta.ApprovalStatus `json:"status"`
	Note        string              `json:"note,omitempty"`
	ProcessedAt *time.Time          `json:"processed_at,omitempty"`
}

// HistoryList 이력 목록 JSON 컬럼 타입
type HistoryList []RequestHistory

func (h *HistoryList) Scan(value interface{}) error { return scanJSONColumn(value, h) }
func (h HistoryList) Value() (driver.Value, error) {
	if h == nil {
		return json.Marshal([]RequestHistory{})
	}
	return json.Marshal(h)
}

// ApproverList 결재선 JSON 컬럼 타입
type ApproverList []ApproverInfo

func (a *ApproverList) Scan(value interface{}) error { return scanJSONColumn(value, a) }
func (a ApproverList) Value() (driver.Value, error) {
	if a == nil {
		return json.Marshal([]ApproverInfo{})
	}
	return json.Marshal(a)
}

// AttachmentList 첨부파일 목록 JSON 컬럼 타입
type AttachmentList []AttachmentInfo

func (a *AttachmentList) Scan(value interface{}) error { return scanJSONColumn(value, a) }
func (a AttachmentList) Value() (driver.Value, error) {
	if a == nil {
		return json.Marshal([]AttachmentInfo{})
	}
	return json.Marshal(a)
}

// AssigneeColumn 담당자 JSON 컬럼 타입, 미배정이면 null
type AssigneeColumn struct {
	*AssigneeInfo
}

func (a *AssigneeColumn) Scan(value interface{}) error {
	if value == nil {
		a.AssigneeInfo = nil
		return nil
	}
	var info AssigneeInfo
	if err := scanJSONColumn(value, &info); err != nil {
		return err
	}
	if info.ID == "" {
		a.AssigneeInfo = nil
		return nil
	}
	a.AssigneeInfo = &info
	return nil
}

func (a AssigneeColumn) Value() (driver.Value, error) {
	if a.AssigneeInfo == nil {
		return nil, nil
	}
	return json.Marshal(a.AssigneeInfo)
}

// Request 요청 모델, ID는 REQ-<연도>-<일련번호> 형식
type Request struct {
	ID                  string               `gorm:"primary_key" json:"id"`
	Title               string               `gorm:"not null" json:"title"`
	Content             string               `gorm:"not null;type:text" json:"content"`
	SystemID            string               `gorm:"not null;index" json:"system_id"`
	SystemName          string               `gorm:"not null" json:"system_name"`
	ModuleID            *string              `json:"module_id"`
	ModuleName          *string              `json:"module_name"`
	RequestType         meta.RequestCategory `gorm:"not null" json:"request_type"`
	Status              meta.RequestStatus   `gorm:"not null;default:'pending';index" json:"status"`
	Urgency             meta.Urgency         `gorm:"not null;default:'normal'" json:"urgency"`
	Requester           Requester            `gorm:"type:text" json:"requester"`
	Assignee            AssigneeColumn       `gorm:"type:text" json:"assignee"`
	Attachments         AttachmentList       `gorm:"type:text" json:"attachments"`
	History             HistoryList          `gorm:"type:text" json:"history"`
	Approvers           ApproverList         `gorm:"type:text" json:"approvers"`
	CurrentApprovalStep int                  `gorm:"default:0" json:"current_approval_step"`
	SchemaVersion       int                  `gorm:"default:1" json:"schema_version"`
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"`
	CompletedAt         *time.Time           `json:"completed_at"`
}

func (Request) TableName() string {
	return "requests"
}

// RequestStats 상태별 요청 건수 집계
type RequestStats struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"in_progress"`
	Completed  int64 `json:"completed"`
	Rejected   int64 `json:"rejected"`
}

// StatsSnapshot 일별 통계 스냅샷, 스케줄러가 기록한다
type StatsSnapshot struct {
	ID         string    `gorm:"type:uuid;primary_key" json:"id"`
	Total      int64     `gorm:"not null" json:"total"`
	Pending    int64     `gorm:"not null" json:"pending"`
	InProgress int64     `gorm:"not null" json:"in_progress"`
	Completed  int64     `gorm:"not null" json:"completed"`
	Rejected   int64     `gorm:"not null" json:"rejected"`
	CapturedAt time.Time `gorm:"not null;index" json:"captured_at"`
}

func (StatsSnapshot) TableName() string {
	return "stats_snapshots"
}
