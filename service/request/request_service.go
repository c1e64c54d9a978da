/*
 * @module service/request/request_service
 * @description 요청 생명주기 서비스, 요청 생성/조회/상태 변경/담당자 배정/삭제/통계/유사 요청 검색 제공
 * @architecture 계층형 아키텍처 - 비즈니스 서비스 계층
 * @documentReference ai_docs/request.md
 * @stateFlow 요청 접수 -> 담당자 배정/결재선 설정 -> 상태 전이 -> 종결(completed/rejected)
 * @rules 이력은 추가 전용, completedAt은 최초 완료 시 한 번만 기록, ID는 연도별 단조 증가
 * @dependencies gorm.io/gorm, github.com/google/uuid, request-portal-service/service/models
 * @refs service/request/approval.go
 */

package request

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"request-portal-service/service/meta"
	"request-portal-service/service/models"
	"request-portal-service/service/monitoring"
)

// EventPublisher 요청 변경 이벤트 발행 인터페이스
type EventPublisher interface {
	Publish(event *models.SSEEvent)
}

// Service 요청 생명주기 서비스
type Service struct {
	db     *gorm.DB
	events EventPublisher
	mu     sync.Mutex // ID 채번과 읽기-수정-쓰기 직렬화
}

// NewService 요청 서비스 인스턴스 생성, events는 nil 허용
func NewService(db *gorm.DB, events EventPublisher) *Service {
	return &Service{db: db, events: events}
}

// CreateInput 요청 생성 입력
type CreateInput struct {
	Title       string                  `json:"title"`
	Content     string                  `json:"content"`
	SystemID    string                  `json:"system_id"`
	ModuleID    *string                 `json:"module_id"`
	RequestType meta.RequestCategory    `json:"request_type"`
	Urgency     meta.Urgency            `json:"urgency"`
	Attachments []models.AttachmentInfo `json:"attachments"`
}

// validate 생성 입력의 구조적 검증
func (in *CreateInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return &ValidationError{Field: "title", Reason: "제목은 비워둘 수 없습니다"}
	}
	if strings.TrimSpace(in.Content) == "" {
		return &ValidationError{Field: "content", Reason: "내용은 비워둘 수 없습니다"}
	}
	if !meta.IsValidSystem(in.SystemID) {
		return &ValidationError{Field: "system_id", Reason: "등록되지 않은 시스템입니다"}
	}
	if !meta.IsValidCategory(in.RequestType) {
		return &ValidationError{Field: "request_type", Reason: "등록되지 않은 요청 유형입니다"}
	}
	if in.Urgency != "" && !meta.IsValidUrgency(in.Urgency) {
		return &ValidationError{Field: "urgency", Reason: "등록되지 않은 긴급도입니다"}
	}
	return nil
}

// Create 요청 생성, pending 상태와 접수 이력 한 건으로 시작한다
func (s *Service) Create(input *CreateInput) (*models.Request, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	id, err := s.nextRequestID(now.Year())
	if err != nil {
		return nil, err
	}

	system := meta.GetSystemByID(input.SystemID)

	var moduleID, moduleName *string
	if input.ModuleID != nil && *input.ModuleID != "" {
		if module := meta.GetModuleByID(input.SystemID, *input.ModuleID); module != nil {
			moduleID = input.ModuleID
			name := module.Name
			moduleName = &name
		} else {
			return nil, &ValidationError{Field: "module_id", Reason: "등록되지 않은 모듈입니다"}
		}
	}

	urgency := input.Urgency
	if urgency == "" {
		urgency = meta.UrgencyNormal
	}

	attachments := input.Attachments
	if attachments == nil {
		attachments = []models.AttachmentInfo{}
	}

	req := &models.Request{
		ID:          id,
		Title:       input.Title,
		Content:     input.Content,
		SystemID:    system.ID,
		SystemName:  system.Name,
		ModuleID:    moduleID,
		ModuleName:  moduleName,
		RequestType: input.RequestType,
		Status:      meta.StatusPending,
		Urgency:     urgency,
		Requester: models.Requester{
			ID:         meta.CurrentUser.ID,
			Name:       meta.CurrentUser.Name,
			Department: meta.CurrentUser.Department,
		},
		Attachments: attachments,
		History: models.HistoryList{
			{
				ID:        uuid.New().String(),
				Timestamp: now,
				Action:    "요청 접수",
				Actor:     meta.CurrentUser.Name,
			},
		},
		Approvers:     models.ApproverList{},
		SchemaVersion: 1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.db.Create(req).Error; err != nil {
		return nil, err
	}

	monitoring.RequestsCreatedTotal.Inc()
	s.publish("request_created", req.ID, map[string]interface{}{
		"title":  req.Title,
		"status": string(req.Status),
	})
	return req, nil
}

// nextRequestID 연도별 단조 증가 ID 채번, 형식 REQ-<연도>-<3자리 일련번호>
func (s *Service) nextRequestID(year int) (string, error) {
	prefix := fmt.Sprintf("REQ-%d-", year)

	// 일련번호가 3자리를 넘으면 문자열 정렬이 깨지므로 길이 우선 정렬
	var lastID string
	err := s.db.Model(&models.Request{}).
		Where("id LIKE ?", prefix+"%").
		Order("LENGTH(id) DESC, id DESC").
		Limit(1).
		Pluck("id", &lastID).Error
	if err != nil {
		return "", err
	}

	seq := 1
	if lastID != "" {
		if n, err := strconv.Atoi(strings.TrimPrefix(lastID, prefix)); err == nil {
			seq = n + 1
		}
	}
	return fmt.Sprintf("%s%03d", prefix, seq), nil
}

// GetByID ID로 요청 조회
func (s *Service) GetByID(id string) (*models.Request, error) {
	var req models.Request
	if err := s.db.First(&req, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

// List 요청 목록 조회, 최신순 정렬과 상태/시스템/검색어 필터 지원
func (s *Service) List(page, pageSize int, status, systemID, search string) ([]models.Request, int64, error) {
	var requests []models.Request
	var total int64

	query := s.db.Model(&models.Request{})
	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}
	if systemID != "" {
		query = query.Where("system_id = ?", systemID)
	}
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Offset(offset).Limit(pageSize).Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

// MyRequests 현재 사용자가 접수한 요청 목록
// requester는 JSON 컬럼이므로 메모리에서 필터링한다
func (s *Service) MyRequests() ([]models.Request, error) {
	var requests []models.Request
	if err := s.db.Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}

	mine := []models.Request{}
	for _, req := range requests {
		if req.Requester.ID == meta.CurrentUser.ID {
			mine = append(mine, req)
		}
	}
	return mine, nil
}

// UpdateStatus 요청 상태 변경, 전이 테이블에서 허용하는 전이만 수행한다
func (s *Service) UpdateStatus(id string, status meta.RequestStatus, note string) (*models.Request, error) {
	if !meta.IsValidStatus(status) {
		return nil, &ValidationError{Field: "status", Reason: "등록되지 않은 상태입니다"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	req, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !meta.CanTransition(req.Status, status) {
		return nil, &TransitionError{From: req.Status, To: status}
	}

	now := time.Now()
	actor := "시스템"
	if req.Assignee.AssigneeInfo != nil {
		actor = req.Assignee.Name
	}

	req.Status = status
	req.UpdatedAt = now
	if status == meta.StatusCompleted && req.CompletedAt == nil {
		req.CompletedAt = &now
	}
	req.History = append(req.History, models.RequestHistory{
		ID:        uuid.New().String(),
		Timestamp: now,
		Action:    meta.StatusActionLabels[status],
		Actor:     actor,
		Note:      note,
	})

	if err := s.db.Save(req).Error; err != nil {
		return nil, err
	}

	s.publish("status_changed", req.ID, map[string]interface{}{
		"status": string(status),
	})
	return req, nil
}

// Assign 담당자 배정, 명부에 없는 담당자면 오류
func (s *Service) Assign(id, assigneeID string) (*models.Request, error) {
	assignee := meta.GetAssigneeByID(assigneeID)
	if assignee == nil {
		return nil, ErrAssigneeNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	req, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	req.Assignee = models.AssigneeColumn{AssigneeInfo: &models.AssigneeInfo{
		ID:         assignee.ID,
		Name:       assignee.Name,
		Department: assignee.Department,
		Contact:    assignee.Contact,
	}}
	req.UpdatedAt = now
	req.History = append(req.History, models.RequestHistory{
		ID:        uuid.New().String(),
		Timestamp: now,
		Action:    "담당자 배정: " + assignee.Name,
		Actor:     "시스템",
	})

	if err := s.db.Save(req).Error; err != nil {
		return nil, err
	}

	s.publish("assignee_changed", req.ID, map[string]interface{}{
		"assignee_id": assignee.ID,
	})
	return req, nil
}

// Delete 요청 삭제, 복구 불가
func (s *Service) Delete(id string) error {
	result := s.db.Delete(&models.Request{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRequestNotFound
	}
	return nil
}

// Stats 상태별 요청 건수 집계
// 화면 표기 규칙에 따라 in_progress 버킷은 in_progress와 approved를 합산한다
func (s *Service) Stats() (*models.RequestStats, error) {
	type statusCount struct {
		Status meta.RequestStatus
		Count  int64
	}

	var counts []statusCount
	err := s.db.Model(&models.Request{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	stats := &models.RequestStats{}
	for _, c := range counts {
		stats.Total += c.Count
		switch c.Status {
		case meta.StatusPending:
			stats.Pending += c.Count
		case meta.StatusInProgress, meta.StatusApproved:
			stats.InProgress += c.Count
		case meta.StatusCompleted:
			stats.Completed += c.Count
		case meta.StatusRejected:
			stats.Rejected += c.Count
		}
	}
	return stats, nil
}

// FindSimilar 단어 겹침 기반 유사 요청 검색, 종결 상태는 제외하고 상위 3건 반환
func (s *Service) FindSimilar(title, content string) ([]models.Request, error) {
	var candidates []models.Request
	err := s.db.
		Where("status NOT IN ?", []meta.RequestStatus{meta.StatusCompleted, meta.StatusRejected}).
		Order("created_at DESC").
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}

	queryWords := append(splitWords(title), splitWords(content)...)

	type scored struct {
		request    models.Request
		similarity float64
	}
	matches := []scored{}

	for _, candidate := range candidates {
		candidateWords := append(splitWords(candidate.Title), splitWords(candidate.Content)...)

		matchCount := 0
		for _, word := range queryWords {
			for _, cw := range candidateWords {
				if strings.Contains(cw, word) || strings.Contains(word, cw) {
					matchCount++
					break
				}
			}
		}

		denom := len(queryWords)
		if denom < 1 {
			denom = 1
		}
		similarity := float64(matchCount) / float64(denom)
		if similarity > 0.3 {
			matches = append(matches, scored{request: candidate, similarity: similarity})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].similarity > matches[j].similarity
	})
	if len(matches) > 3 {
		matches = matches[:3]
	}

	results := make([]models.Request, len(matches))
	for i, m := range matches {
		results[i] = m.request
	}
	return results, nil
}

// publish 이벤트 발행, 발행자가 없으면 무시
func (s *Service) publish(eventType, requestID string, data map[string]interface{}) {
	if s.events == nil {
		return
	}
	s.events.Publish(&models.SSEEvent{
		EventType: eventType,
		RequestID: requestID,
		Data:      models.JSONB(data),
		CreatedAt: time.Now(),
	})
}

func splitWords(text string) []string {
	words := []string{}
	for _, w := range strings.Fields(strings.ToLower(text)) {
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}
