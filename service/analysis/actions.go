/*
 * @module service/analysis/actions
 * @description 액션 검색, 자연어 입력과 등록된 액션의 이름/키워드를 매칭해 신뢰도 순으로 반환
 * @architecture 계층형 아키텍처 - 비즈니스 서비스 계층
 * @documentReference ai_docs/analysis.md
 * @stateFlow 토큰 분리 -> 액션별 점수 계산 -> 정렬 -> 시스템별 그룹화
 * @rules 정렬은 안정 정렬을 사용해 동점 시 등록 순서를 유지한다
 * @dependencies request-portal-service/service/meta, request-portal-service/service/models
 * @refs service/meta/actions.go
 */

package analysis

import (
	"regexp"
	"sort"
	"strings"

	"request-portal-service/service/meta"
	"request-portal-service/service/models"
)

var whitespacePattern = regexp.MustCompile(`\s+`)

// SearchActions 등록된 액션을 검색해 신뢰도 내림차순으로 반환
func (a *Analyzer) SearchActions(query string) []models.ActionSearchResult {
	if strings.TrimSpace(query) == "" {
		return []models.ActionSearchResult{}
	}

	queryLower := strings.ToLower(query)
	tokens := []string{}
	for _, t := range whitespacePattern.Split(query, -1) {
		if t != "" {
			tokens = append(tokens, strings.ToLower(t))
		}
	}

	results := []models.ActionSearchResult{}
	for _, action := range meta.Actions {
		keywords := meta.ActionKeywords[action.ID]
		matched := []string{}
		score := 0.0

		// 액션 이름 매칭
		nameLower := strings.ToLower(action.Name)
		if strings.Contains(nameLower, queryLower) || strings.Contains(queryLower, nameLower) {
			score += 0.5
			matched = append(matched, action.Name)
		}

		// 키워드 매칭, 전체 질의 또는 개별 토큰과 포함 관계이면 매칭으로 본다
		for _, keyword := range keywords {
			keywordLower := strings.ToLower(keyword)
			hit := strings.Contains(queryLower, keywordLower)
			if !hit {
				for _, token := range tokens {
					if strings.Contains(token, keywordLower) || strings.Contains(keywordLower, token) {
						hit = true
						break
					}
				}
			}
			if hit {
				score += 0.15
				if !containsString(matched, keyword) {
					matched = append(matched, keyword)
				}
			}
		}

		if score > 0.1 || len(matched) > 0 {
			results = append(results, models.ActionSearchResult{
				Action:          action,
				Confidence:      clamp1(score),
				MatchedKeywords: matched,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Confidence > results[j].Confidence
	})
	return results
}

// SearchActionsGrouped 검색 결과를 시스템별로 묶어 최고 신뢰도 내림차순으로 반환
func (a *Analyzer) SearchActionsGrouped(query string) []models.GroupedActionResult {
	results := a.SearchActions(query)

	order := []string{}
	groups := map[string]*models.GroupedActionResult{}

	for _, result := range results {
		systemID := result.Action.SystemID
		group, ok := groups[systemID]
		if !ok {
			systemName := systemID
			if sys := meta.GetSystemByID(systemID); sys != nil {
				systemName = sys.Name
			}
			group = &models.GroupedActionResult{
				SystemID:   systemID,
				SystemName: systemName,
			}
			groups[systemID] = group
			order = append(order, systemID)
		}
		group.Actions = append(group.Actions, result)
		if result.Confidence > group.MaxConfidence {
			group.MaxConfidence = result.Confidence
		}
	}

	grouped := make([]models.GroupedActionResult, 0, len(order))
	for _, systemID := range order {
		grouped = append(grouped, *groups[systemID])
	}
	sort.SliceStable(grouped, func(i, j int) bool {
		return grouped[i].MaxConfidence > grouped[j].MaxConfidence
	})
	return grouped
}

func containsString(list []string, target string) bool {
	for _, item := range list {
		if item == target {
			return true
		}
	}
	return false
}
