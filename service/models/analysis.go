/*
 * @module service/models/analysis
 * @description 요청 분석 결과 모델 정의, 시스템/모듈/유형 감지 결과와 영향도·처리시간 추정 결과 포함
 * @architecture 계층형 아키텍처 - 데이터 모델 계층
 * @documentReference ai_docs/model.md
 * @stateFlow 없음
 * @rules 신뢰도(confidence)는 항상 0과 1 사이 값으로 유지한다
 * @dependencies request-portal-service/service/meta
 * @refs service/analysis/analyzer.go
 */

package models

import "request-portal-service/service/meta"

// SystemDetection 감지된 대상 시스템
type SystemDetection struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// ModuleDetection 감지된 하위 모듈
type ModuleDetection struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// RequestTypeDetection 감지된 요청 유형
type RequestTypeDetection struct {
	Category   meta.RequestCategory `json:"category"`
	Label      string               `json:"label"`
	Confidence float64              `json:"confidence"`
}

// SuggestedFieldValue 입력 텍스트에서 추출한 필드 제안 값
type SuggestedFieldValue struct {
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source"`
}

// AnalysisResult 텍스트 분석 결과
// OverallConfidence = 시스템 0.4 + 모듈 0.3 + 유형 0.3 가중합, [0,1] 범위로 클램프
type AnalysisResult struct {
	OriginalQuery     string                         `json:"original_query"`
	System            SystemDetection                `json:"system"`
	Module            *ModuleDetection               `json:"module"`
	RequestType       RequestTypeDetection           `json:"request_type"`
	GeneratedTitle    string                         `json:"generated_title"`
	SuggestedFields   map[string]SuggestedFieldValue `json:"suggested_fields"`
	OverallConfidence float64                        `json:"overall_confidence"`
	MatchedKeywords   []string                       `json:"matched_keywords"`
}

// 영향도 위험 등급
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// AffectedSystem 연관 영향을 받는 시스템
type AffectedSystem struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// ImpactAnalysisResult 영향도 분석 결과
type ImpactAnalysisResult struct {
	AffectedSystems []AffectedSystem `json:"affected_systems"`
	RiskLevel       string           `json:"risk_level"`
	Message         string           `json:"message"`
	Recommendations []string         `json:"recommendations"`
}

// TimeRange 예상 처리 시간 범위, 값은 사람이 읽는 한국어 표현(예: "30분", "2시간")
type TimeRange struct {
	Min string `json:"min"`
	Max string `json:"max"`
}

// ProcessingTimeEstimate 처리 시간 추정 결과
type ProcessingTimeEstimate struct {
	Estimate string    `json:"estimate"`
	Range    TimeRange `json:"range"`
	Factors  []string  `json:"factors"`
}

// ExtendedAnalysisResult 확장 분석 결과, 기본 분석에 영향도·처리시간을 더한다
type ExtendedAnalysisResult struct {
	Base           *AnalysisResult         `json:"base"`
	Impact         *ImpactAnalysisResult   `json:"impact"`
	ProcessingTime *ProcessingTimeEstimate `json:"processing_time"`
}

// ActionSearchResult 액션 검색 단건 결과
type ActionSearchResult struct {
	Action          meta.ActionMeta `json:"action"`
	Confidence      float64         `json:"confidence"`
	MatchedKeywords []string        `json:"matched_keywords"`
}

// GroupedActionResult 시스템별로 묶인 액션 검색 결과
type GroupedActionResult struct {
	SystemID      string               `json:"system_id"`
	SystemName    string               `json:"system_name"`
	MaxConfidence float64              `json:"max_confidence"`
	Actions       []ActionSearchResult `json:"actions"`
}
