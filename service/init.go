/*
 * @module service/init
 * @description 서비스 초기화 모듈, 데이터베이스 연결과 마이그레이션 및 전역 서비스 구성 담당
 * @architecture 계층형 아키텍처 - 서비스 계층
 * @documentReference ai_docs/requirements.md
 * @stateFlow 애플리케이션 기동 시 초기화 흐름 실행
 * @rules 저장소 연결 실패 시 인메모리로 폴백해 빈 상태로 기동한다, 기동 자체는 중단하지 않는다
 * @dependencies gorm.io/gorm, gorm.io/driver/postgres, gorm.io/driver/sqlite
 * @refs main.go
 */

package service

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"request-portal-service/service/analysis"
	"request-portal-service/service/event"
	"request-portal-service/service/models"
	"request-portal-service/service/request"
	"request-portal-service/service/scheduler"
)

var (
	DB                     *gorm.DB
	GlobalEventService     *event.EventService
	GlobalAnalyzer         *analysis.Analyzer
	GlobalRequestService   *request.Service
	GlobalSchedulerService *scheduler.StatsScheduler
)

func init() {
	initDatabase()
	runMigrations()
	initServices()
}

// initDatabase 데이터베이스 연결 초기화
// DATABASE_URL 또는 DB_HOST가 설정되면 postgres, 아니면 sqlite 파일을 사용한다
// 파일 열기에 실패하면 빈 인메모리 저장소로 폴백한다
func initDatabase() {
	var err error

	if dsn := postgresDSN(); dsn != "" {
		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatalf("postgres 연결 실패: %v", err)
		}
		log.Println("postgres 연결 성공")
		return
	}

	dbPath := getEnvWithDefault("DB_PATH", "portal.db")
	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		slog.Error("저장소 파일 열기 실패, 인메모리 저장소로 폴백", "path", dbPath, "error", err)
		DB, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		if err != nil {
			log.Fatalf("인메모리 저장소 초기화 실패: %v", err)
		}
		return
	}
	log.Printf("sqlite 저장소 연결 성공: %s", dbPath)
}

// postgresDSN postgres 접속 문자열 구성, postgres를 쓰지 않으면 빈 문자열
func postgresDSN() string {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		return databaseURL
	}
	if os.Getenv("DB_HOST") == "" {
		return ""
	}

	host := os.Getenv("DB_HOST")
	port := getEnvWithDefault("DB_PORT", "5432")
	user := getEnvWithDefault("DB_USER", "postgres")
	password := getEnvWithDefault("DB_PASSWORD", "postgres")
	dbname := getEnvWithDefault("DB_NAME", "postgres")
	sslmode := getEnvWithDefault("DB_SSLMODE", "disable")
	schema := getEnvWithDefault("DB_SCHEMA", "public")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s TimeZone=Asia/Seoul",
		host, port, user, password, dbname, sslmode, schema)
}

// getEnvWithDefault 환경변수 조회, 없으면 기본값 반환
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// runMigrations 데이터베이스 마이그레이션 실행
func runMigrations() {
	log.Println("데이터베이스 마이그레이션 시작...")

	err := DB.AutoMigrate(
		&models.Request{},
		&models.StatsSnapshot{},
		&models.SSEEvent{},
	)
	if err != nil {
		log.Fatalf("데이터베이스 마이그레이션 실패: %v", err)
	}

	log.Println("데이터베이스 마이그레이션 완료")
}

// initServices 전역 서비스 초기화
func initServices() {
	GlobalEventService = event.NewEventService(DB)
	GlobalAnalyzer = analysis.NewAnalyzer()
	GlobalRequestService = request.NewService(DB, GlobalEventService)
	GlobalSchedulerService = scheduler.NewStatsScheduler(DB, GlobalRequestService)

	if err := GlobalSchedulerService.Start(); err != nil {
		log.Printf("통계 스케줄러 시작 실패: %v", err)
	}
	log.Println("서비스 초기화 완료")
}
