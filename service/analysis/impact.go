/*
 * @module service/analysis/impact
 * @description 영향도 분석과 예상 처리 시간 계산, 정적 연관관계 그래프와 기준 시간표를 사용
 * @architecture 계층형 아키텍처 - 비즈니스 서비스 계층
 * @documentReference ai_docs/analysis.md
 * @stateFlow 기본 분석 -> 영향도 분석 -> 처리 시간 추정
 * @rules factors 목록은 안내용일 뿐 수치 추정에는 영향을 주지 않는다
 * @dependencies request-portal-service/service/models
 * @refs service/analysis/corpus.go
 */

package analysis

import (
	"fmt"
	"strings"

	"request-portal-service/service/meta"
	"request-portal-service/service/models"
)

// AnalyzeImpact 요청이 다른 시스템에 미치는 영향을 분석
func (a *Analyzer) AnalyzeImpact(systemID string, category meta.RequestCategory, query string) *models.ImpactAnalysisResult {
	affected := []models.AffectedSystem{}
	recommendations := []string{}

	var deps *dependencyEntry
	for i := range systemDependencies {
		if systemDependencies[i].SystemID == systemID {
			deps = &systemDependencies[i]
			break
		}
	}

	if deps != nil {
		sourceName := systemID
		if src := systemCorpusEntry(systemID); src != nil {
			sourceName = src.Name
		}
		queryLower := strings.ToLower(query)

		for _, relatedID := range deps.Related {
			related := systemCorpusEntry(relatedID)
			if related == nil {
				continue
			}

			hasRelatedKeyword := false
			for _, kw := range related.Keywords {
				if strings.Contains(queryLower, strings.ToLower(kw)) {
					hasRelatedKeyword = true
					break
				}
			}

			if hasRelatedKeyword || category == meta.CategoryFeatureRequest || category == meta.CategoryBugFix {
				affected = append(affected, models.AffectedSystem{
					ID:     relatedID,
					Name:   related.Name,
					Reason: fmt.Sprintf("%s와(과) 연동되어 영향 가능", sourceName),
				})
			}
		}
	}

	riskLevel := models.RiskLow
	if len(affected) >= 3 || category == meta.CategoryEmergency {
		riskLevel = models.RiskHigh
	} else if len(affected) >= 1 || category == meta.CategoryBugFix {
		riskLevel = models.RiskMedium
	}

	var message string
	switch len(affected) {
	case 0:
		message = "이 요청은 다른 시스템에 영향을 주지 않을 것으로 예상됩니다."
	case 1:
		message = fmt.Sprintf("이 요청은 %s에도 영향을 줄 수 있습니다.", affected[0].Name)
	default:
		names := make([]string, len(affected))
		for i, s := range affected {
			names[i] = s.Name
		}
		message = fmt.Sprintf("이 요청은 %s 등 %d개 시스템에 영향을 줄 수 있습니다.", strings.Join(names, ", "), len(affected))
	}

	if riskLevel == models.RiskHigh {
		recommendations = append(recommendations,
			"관련 시스템 담당자를 참조자로 추가하세요.",
			"변경 전 영향 범위를 한 번 더 검토하세요.")
	}
	if category == meta.CategoryFeatureRequest || category == meta.CategoryBugFix {
		recommendations = append(recommendations, "테스트 환경에서 먼저 검증하는 것을 권장합니다.")
	}

	return &models.ImpactAnalysisResult{
		AffectedSystems: affected,
		RiskLevel:       riskLevel,
		Message:         message,
		Recommendations: recommendations,
	}
}

// EstimateProcessingTime 유형별 기준 시간에 긴급도 가중치를 반영해 예상 처리 시간을 계산
func (a *Analyzer) EstimateProcessingTime(category meta.RequestCategory, urgency meta.Urgency) *models.ProcessingTimeEstimate {
	base, ok := processingTimeTable[category]
	if !ok {
		base = processingTimeTable[meta.CategoryGeneral]
	}
	multiplier, ok := urgencyTimeMultiplier[urgency]
	if !ok {
		multiplier = 1.0
	}

	factors := []string{}
	if urgency == meta.UrgencyCritical {
		factors = append(factors, "긴급 요청으로 우선 처리됩니다")
	} else if urgency == meta.UrgencyHigh {
		factors = append(factors, "높은 우선순위로 처리됩니다")
	}
	if category == meta.CategoryEmergency {
		factors = append(factors, "긴급 신고는 즉시 담당자에게 전달됩니다")
	} else if category == meta.CategoryApproval {
		factors = append(factors, "승인 요청은 결재선에 따라 처리 시간이 달라질 수 있습니다")
	}

	estimate := base.Avg
	if multiplier < 1 {
		estimate = base.Min + " ~ " + base.Avg
	} else if multiplier > 1 {
		estimate = base.Avg + " ~ " + base.Max
	}

	return &models.ProcessingTimeEstimate{
		Estimate: estimate,
		Range:    models.TimeRange{Min: base.Min, Max: base.Max},
		Factors:  factors,
	}
}

// AnalyzeExtended 기본 분석에 영향도와 처리 시간을 더한 확장 분석
// 기본 분석이 nil이면 nil을 반환한다
// 제안 필드에서 긴급도가 추출됐다면 호출자가 준 기본값보다 우선한다
func (a *Analyzer) AnalyzeExtended(query string, urgency meta.Urgency) *models.ExtendedAnalysisResult {
	base := a.Analyze(query)
	if base == nil {
		return nil
	}

	effectiveUrgency := urgency
	if suggested, ok := base.SuggestedFields["urgency"]; ok {
		if meta.IsValidUrgency(meta.Urgency(suggested.Value)) {
			effectiveUrgency = meta.Urgency(suggested.Value)
		}
	}

	impact := a.AnalyzeImpact(base.System.ID, base.RequestType.Category, query)
	processingTime := a.EstimateProcessingTime(base.RequestType.Category, effectiveUrgency)

	return &models.ExtendedAnalysisResult{
		Base:           base,
		Impact:         impact,
		ProcessingTime: processingTime,
	}
}
