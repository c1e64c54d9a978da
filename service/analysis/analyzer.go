/*
 * @module service/analysis/analyzer
 * @description 자연어 요청 분석기, 키워드 매칭으로 시스템/모듈/유형을 감지하고 제목과 필드 제안을 생성
 * @architecture 계층형 아키텍처 - 비즈니스 서비스 계층
 * @documentReference ai_docs/analysis.md
 * @stateFlow 입력 정규화 -> 시스템 감지 -> 모듈 감지 -> 유형 감지 -> 제목/필드 생성
 * @rules 동일 입력은 항상 동일 결과를 반환한다, 동점이면 말뭉치에서 먼저 나온 항목을 유지한다
 * @dependencies golang.org/x/text/unicode/norm, request-portal-service/service/models
 * @refs service/analysis/corpus.go
 */

package analysis

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"request-portal-service/service/meta"
	"request-portal-service/service/models"
)

// Analyzer 키워드 기반 요청 분석기
type Analyzer struct{}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze 사용자 입력을 분석한다
// 공백 제거 후 3자 미만이면 nil을 반환한다
func (a *Analyzer) Analyze(query string) *models.AnalysisResult {
	query = norm.NFC.String(query)
	if utf8.RuneCountInString(strings.TrimSpace(query)) < 3 {
		return nil
	}

	system := detectSystem(query)
	module := detectModule(query, system.ID)
	requestType := detectRequestType(query)
	matchedKeywords := extractMatchedKeywords(query)
	suggestedFields := extractSuggestedFields(query)
	title := generateTitle(query, system, module, requestType)

	moduleConfidence := 0.0
	if module != nil {
		moduleConfidence = module.Confidence
	}
	overall := system.Confidence*0.4 + moduleConfidence*0.3 + requestType.Confidence*0.3
	if overall > 1 {
		overall = 1
	}

	return &models.AnalysisResult{
		OriginalQuery:     query,
		System:            system,
		Module:            module,
		RequestType:       requestType,
		GeneratedTitle:    title,
		SuggestedFields:   suggestedFields,
		OverallConfidence: overall,
		MatchedKeywords:   matchedKeywords,
	}
}

// HasHighConfidence 전체 신뢰도가 0.5 이상인지 확인
func (a *Analyzer) HasHighConfidence(result *models.AnalysisResult) bool {
	return result != nil && result.OverallConfidence >= 0.5
}

// detectSystem 시스템 감지, 매칭이 없으면 기본값 ONE(신뢰도 0.3)
func detectSystem(query string) models.SystemDetection {
	queryLower := strings.ToLower(query)
	best := models.SystemDetection{ID: "one", Name: "ONE 통합부동산관리", Confidence: 0.3}
	maxScore := 0.0

	for _, entry := range systemCorpus {
		score := 0.0
		for _, keyword := range entry.Keywords {
			if strings.Contains(queryLower, strings.ToLower(keyword)) {
				// 긴 키워드일수록 더 높은 점수
				score += 0.15 + float64(utf8.RuneCountInString(keyword))*0.02
			}
		}
		if score > maxScore {
			maxScore = score
			best = models.SystemDetection{ID: entry.ID, Name: entry.Name, Confidence: clamp1(score)}
		}
	}
	return best
}

// detectModule 모듈 감지, ONE 시스템 전용
func detectModule(query, systemID string) *models.ModuleDetection {
	if systemID != "one" {
		return nil
	}

	queryLower := strings.ToLower(query)
	var best *models.ModuleDetection
	maxScore := 0.0

	for _, entry := range oneModuleCorpus {
		score := 0.0
		for _, keyword := range entry.Keywords {
			if strings.Contains(queryLower, strings.ToLower(keyword)) {
				score += 0.2 + float64(utf8.RuneCountInString(keyword))*0.02
			}
		}
		if score > maxScore {
			maxScore = score
			best = &models.ModuleDetection{ID: entry.ID, Name: entry.Name, Confidence: clamp1(score)}
		}
	}
	return best
}

// detectRequestType 요청 유형 감지, 매칭이 없으면 일반(신뢰도 0.3)
func detectRequestType(query string) models.RequestTypeDetection {
	queryLower := strings.ToLower(query)
	best := models.RequestTypeDetection{
		Category:   meta.CategoryGeneral,
		Label:      "일반",
		Confidence: 0.3,
	}
	maxScore := 0.0

	for _, entry := range categoryCorpus {
		score := 0.0
		for _, keyword := range entry.Keywords {
			if strings.Contains(queryLower, strings.ToLower(keyword)) {
				score += 0.25
			}
		}
		if score > maxScore {
			maxScore = score
			best = models.RequestTypeDetection{
				Category:   entry.Category,
				Label:      entry.Label,
				Confidence: clamp1(score),
			}
		}
	}
	return best
}

// extractMatchedKeywords 매칭된 키워드를 말뭉치 순서대로 수집, 중복 제거 후 최대 5개
func extractMatchedKeywords(query string) []string {
	queryLower := strings.ToLower(query)
	matched := []string{}
	seen := map[string]bool{}

	appendMatches := func(keywords []string) {
		for _, keyword := range keywords {
			if strings.Contains(queryLower, strings.ToLower(keyword)) && !seen[keyword] {
				seen[keyword] = true
				matched = append(matched, keyword)
			}
		}
	}

	for _, entry := range systemCorpus {
		appendMatches(entry.Keywords)
	}
	for _, entry := range oneModuleCorpus {
		appendMatches(entry.Keywords)
	}
	for _, entry := range categoryCorpus {
		appendMatches(entry.Keywords)
	}

	if len(matched) > 5 {
		matched = matched[:5]
	}
	return matched
}

// generateTitle 제목 자동 생성, [시스템/모듈] 핵심내용 유형라벨 형식
func generateTitle(
	query string,
	system models.SystemDetection,
	module *models.ModuleDetection,
	requestType models.RequestTypeDetection,
) string {
	systemCode := strings.ToUpper(system.ID)
	moduleCode := ""
	if module != nil {
		moduleCode = strings.ToUpper(strings.Replace(module.ID, "one-", "", 1))
	}

	content := query
	content = titleStripSystem.ReplaceAllString(content, "")
	content = titleStripRelated.ReplaceAllString(content, "")
	content = titleStripWhen.ReplaceAllString(content, " ")
	content = titleStripRequest.ReplaceAllString(content, "")
	content = strings.TrimSpace(content)

	if utf8.RuneCountInString(content) > 50 {
		content = string([]rune(content)[:47]) + "..."
	}

	prefix := "[" + systemCode + "]"
	if moduleCode != "" {
		prefix = "[" + systemCode + "/" + moduleCode + "]"
	}
	suffix := ""
	if requestType.Label != "일반" {
		suffix = " " + requestType.Label
	}

	return prefix + " " + content + suffix
}

// extractSuggestedFields 입력에서 필드 자동 채움 값을 추출
func extractSuggestedFields(query string) map[string]models.SuggestedFieldValue {
	fields := map[string]models.SuggestedFieldValue{}

	// 상황/내용 필드는 항상 원문을 담는다
	fields["situation"] = models.SuggestedFieldValue{
		Value:      query,
		Confidence: 1,
		Source:     "context",
	}

	if m := floorPattern.FindStringSubmatch(query); m != nil {
		fields["location_floor"] = models.SuggestedFieldValue{
			Value:      m[1] + "층",
			Confidence: 0.95,
			Source:     "pattern",
		}
	}

	for _, loc := range locationNouns {
		if strings.Contains(query, loc) {
			fields["location_detail"] = models.SuggestedFieldValue{
				Value:      loc,
				Confidence: 0.9,
				Source:     "keyword",
			}
			break
		}
	}

	if urgencyCriticalPattern.MatchString(query) {
		fields["urgency"] = models.SuggestedFieldValue{
			Value:      string(meta.UrgencyCritical),
			Confidence: 0.9,
			Source:     "keyword",
		}
	} else if urgencyHighPattern.MatchString(query) {
		fields["urgency"] = models.SuggestedFieldValue{
			Value:      string(meta.UrgencyHigh),
			Confidence: 0.8,
			Source:     "keyword",
		}
	}

	return fields
}

func clamp1(v float64) float64 {
	if v > 1 {
		return 1
	}
	return v
}
