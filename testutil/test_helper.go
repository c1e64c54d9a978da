/*
 * @module testutil/test_helper
 * @description 테스트 공용 도구와 데이터 팩토리
 * @architecture 테스트 기반 시설 - 테스트 환경 구성과 재사용 가능한 도구 제공
 * @documentReference ai_docs/test_plan.md
 * @stateFlow 테스트 환경 초기화 -> 테스트 데이터 생성 -> 테스트 실행 -> 자원 정리
 * @rules 재사용 가능한 테스트 도구를 제공해 테스트 환경의 일관성을 보장한다
 * @dependencies gorm, sqlite, testify, time
 * @refs service/models
 */

package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"request-portal-service/service/meta"
	"request-portal-service/service/models"
)

// TestDB 테스트 데이터베이스 구성
type TestDB struct {
	DB *gorm.DB
}

// NewTestDB 테스트 데이터베이스 생성
func NewTestDB() *TestDB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(fmt.Sprintf("failed to connect test database: %v", err))
	}

	err = db.AutoMigrate(
		&models.Request{},
		&models.StatsSnapshot{},
		&models.SSEEvent{},
	)
	if err != nil {
		panic(fmt.Sprintf("failed to migrate test database: %v", err))
	}

	return &TestDB{DB: db}
}

// CleanDB 모든 테이블 데이터 삭제
func (tdb *TestDB) CleanDB() {
	tables := []string{
		"requests",
		"stats_snapshots",
		"sse_events",
	}

	for _, table := range tables {
		tdb.DB.Exec(fmt.Sprintf("DELETE FROM %s", table))
	}
}

// Close 데이터베이스 연결 종료
func (tdb *TestDB) Close() {
	if db, err := tdb.DB.DB(); err == nil {
		db.Close()
	}
}

// TestDataFactory 테스트 데이터 팩토리
type TestDataFactory struct {
	DB *gorm.DB
}

// NewTestDataFactory 테스트 데이터 팩토리 생성
func NewTestDataFactory(db *gorm.DB) *TestDataFactory {
	return &TestDataFactory{DB: db}
}

// RequestOption 요청 옵션 함수 타입
type RequestOption func(*models.Request)

// WithStatus 상태 지정 옵션
func WithStatus(status meta.RequestStatus) RequestOption {
	return func(r *models.Request) {
		r.Status = status
	}
}

// WithTitle 제목 지정 옵션
func WithTitle(title string) RequestOption {
	return func(r *models.Request) {
		r.Title = title
	}
}

// WithContent 내용 지정 옵션
func WithContent(content string) RequestOption {
	return func(r *models.Request) {
		r.Content = content
	}
}

// WithSystem 시스템 지정 옵션
func WithSystem(systemID, systemName string) RequestOption {
	return func(r *models.Request) {
		r.SystemID = systemID
		r.SystemName = systemName
	}
}

// WithApprovers 결재선 지정 옵션
func WithApprovers(approvers []models.ApproverInfo, currentStep int) RequestOption {
	return func(r *models.Request) {
		r.Approvers = approvers
		r.CurrentApprovalStep = currentStep
	}
}

// CreateRequest 테스트 요청 생성
func (f *TestDataFactory) CreateRequest(opts ...RequestOption) *models.Request {
	now := time.Now()
	req := &models.Request{
		ID:          fmt.Sprintf("REQ-%d-%s", now.Year(), generateSuffix()),
		Title:       "테스트 요청",
		Content:     "테스트 요청 내용입니다",
		SystemID:    "one",
		SystemName:  "ONE 통합부동산관리",
		RequestType: meta.CategoryGeneral,
		Status:      meta.StatusPending,
		Urgency:     meta.UrgencyNormal,
		Requester: models.Requester{
			ID:         meta.CurrentUser.ID,
			Name:       meta.CurrentUser.Name,
			Department: meta.CurrentUser.Department,
		},
		Attachments: models.AttachmentList{},
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

	for _, opt := range opts {
		opt(req)
	}

	if err := f.DB.Create(req).Error; err != nil {
		panic(fmt.Sprintf("failed to create test request: %v", err))
	}
	return req
}

// SampleApprovers 결재자 명부 앞에서 n명을 결재선으로 구성
func SampleApprovers(n int) []models.ApproverInfo {
	if n > len(meta.Approvers) {
		n = len(meta.Approvers)
	}
	approvers := make([]models.ApproverInfo, n)
	for i := 0; i < n; i++ {
		approvers[i] = models.ApproverInfo{
			ID:         meta.Approvers[i].ID,
			Name:       meta.Approvers[i].Name,
			Department: meta.Approvers[i].Department,
			Position:   meta.Approvers[i].Position,
			Order:      i + 1,
			Status:     meta.ApprovalPending,
		}
	}
	return approvers
}

var suffixCounter int64

func generateSuffix() string {
	return fmt.Sprintf("%d", atomic.AddInt64(&suffixCounter, 1)*100000+time.Now().UnixNano()%100000)
}

// HTTPTestHelper HTTP 테스트 보조 도구
type HTTPTestHelper struct{}

// NewHTTPTestHelper HTTP 테스트 보조 도구 생성
func NewHTTPTestHelper() *HTTPTestHelper {
	return &HTTPTestHelper{}
}

// CreateJSONRequest JSON 요청 생성
func (h *HTTPTestHelper) CreateJSONRequest(method, url string, body interface{}) (*http.Request, error) {
	var reqBody io.Reader

	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// AssertJSONResponse JSON 응답 단언
func (h *HTTPTestHelper) AssertJSONResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedBody interface{}) {
	assert.Equal(t, expectedStatus, w.Code)

	if expectedBody != nil {
		var actualBody interface{}
		err := json.Unmarshal(w.Body.Bytes(), &actualBody)
		assert.NoError(t, err)

		expectedJSON, _ := json.Marshal(expectedBody)
		actualJSON, _ := json.Marshal(actualBody)

		assert.JSONEq(t, string(expectedJSON), string(actualJSON))
	}
}
