/*
 * @module service/scheduler/stats_scheduler
 * @description 통계 스냅샷 스케줄러, 매일 상태별 요청 건수를 스냅샷 테이블에 적재
 * @architecture 계층형 아키텍처 - 비즈니스 서비스 계층
 * @documentReference ai_docs/scheduler.md
 * @stateFlow 스케줄러 시작 -> cron 주기 도래 -> 통계 집계 -> 스냅샷 기록
 * @rules 스냅샷 실패는 로그만 남기고 서비스 동작에는 영향을 주지 않는다
 * @dependencies github.com/robfig/cron/v3, gorm.io/gorm
 * @refs service/request/request_service.go
 */

package scheduler

import (
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"request-portal-service/service/models"
	"request-portal-service/service/request"
)

// StatsScheduler 통계 스냅샷 스케줄러
type StatsScheduler struct {
	db       *gorm.DB
	requests *request.Service
	cron     *cron.Cron
	started  bool
}

// NewStatsScheduler 스케줄러 인스턴스 생성
func NewStatsScheduler(db *gorm.DB, requests *request.Service) *StatsScheduler {
	return &StatsScheduler{
		db:       db,
		requests: requests,
		cron:     cron.New(cron.WithSeconds()),
	}
}

// Start 스케줄러 시작
// 주기는 STATS_SNAPSHOT_CRON 환경변수로 조정한다, 기본값은 매일 자정
func (s *StatsScheduler) Start() error {
	if s.started {
		return nil
	}

	spec := os.Getenv("STATS_SNAPSHOT_CRON")
	if spec == "" {
		spec = "0 0 0 * * *"
	}

	if _, err := s.cron.AddFunc(spec, s.captureSnapshot); err != nil {
		return err
	}

	s.cron.Start()
	s.started = true
	slog.Info("통계 스냅샷 스케줄러 시작", "cron", spec)
	return nil
}

// Stop 스케줄러 중지
func (s *StatsScheduler) Stop() {
	if !s.started {
		return
	}
	s.cron.Stop()
	s.started = false
	slog.Info("통계 스냅샷 스케줄러 중지")
}

// captureSnapshot 현재 통계를 스냅샷 테이블에 기록
func (s *StatsScheduler) captureSnapshot() {
	stats, err := s.requests.Stats()
	if err != nil {
		slog.Error("통계 집계 실패", "error", err)
		return
	}

	snapshot := &models.StatsSnapshot{
		ID:         uuid.New().String(),
		Total:      stats.Total,
		Pending:    stats.Pending,
		InProgress: stats.InProgress,
		Completed:  stats.Completed,
		Rejected:   stats.Rejected,
		CapturedAt: time.Now(),
	}
	if err := s.db.Create(snapshot).Error; err != nil {
		slog.Error("통계 스냅샷 기록 실패", "error", err)
		return
	}
	slog.Info("통계 스냅샷 기록", "total", stats.Total)
}

// Snapshots 저장된 스냅샷 조회, 최신순
func (s *StatsScheduler) Snapshots(limit int) ([]models.StatsSnapshot, error) {
	if limit <= 0 {
		limit = 30
	}
	var snapshots []models.StatsSnapshot
	if err := s.db.Order("captured_at DESC").Limit(limit).Find(&snapshots).Error; err != nil {
		return nil, err
	}
	return snapshots, nil
}
