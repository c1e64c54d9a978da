package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchActionsEmptyQuery(t *testing.T) {
	analyzer := NewAnalyzer()

	assert.Empty(t, analyzer.SearchActions(""))
	assert.Empty(t, analyzer.SearchActions("   "))
}

func TestSearchActionsNameMatch(t *testing.T) {
	analyzer := NewAnalyzer()

	results := analyzer.SearchActions("휴가 신청")
	require.NotEmpty(t, results)

	// 액션 이름과 일치하면 가장 높은 점수를 받는다
	top := results[0]
	assert.Equal(t, "portal-leave", top.Action.ID)
	assert.InDelta(t, 0.8, top.Confidence, 0.0001)
	assert.Contains(t, top.MatchedKeywords, "휴가 신청")
	assert.Contains(t, top.MatchedKeywords, "휴가")
	assert.Contains(t, top.MatchedKeywords, "신청")

	// 신뢰도 내림차순 정렬
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Confidence, results[i].Confidence)
	}
}

func TestSearchActionsKeywordMatch(t *testing.T) {
	analyzer := NewAnalyzer()

	results := analyzer.SearchActions("느려")
	require.Len(t, results, 1)

	assert.Equal(t, "os-it-support", results[0].Action.ID)
	assert.InDelta(t, 0.15, results[0].Confidence, 0.0001)
	assert.Equal(t, []string{"느려"}, results[0].MatchedKeywords)
}

func TestSearchActionsNoMatch(t *testing.T) {
	analyzer := NewAnalyzer()

	results := analyzer.SearchActions("가나다라마")
	assert.Empty(t, results)
}

func TestSearchActionsGrouped(t *testing.T) {
	analyzer := NewAnalyzer()

	grouped := analyzer.SearchActionsGrouped("엘리베이터 고장")
	require.Len(t, grouped, 2)

	// 최고 신뢰도가 높은 시스템이 먼저 온다
	assert.Equal(t, "one", grouped[0].SystemID)
	assert.Equal(t, "ONE 통합부동산관리", grouped[0].SystemName)
	assert.InDelta(t, 0.3, grouped[0].MaxConfidence, 0.0001)
	require.Len(t, grouped[0].Actions, 1)
	assert.Equal(t, "one-fm-emergency", grouped[0].Actions[0].Action.ID)

	assert.Equal(t, "sios", grouped[1].SystemID)
	assert.Equal(t, "통합관제", grouped[1].SystemName)
	assert.InDelta(t, 0.15, grouped[1].MaxConfidence, 0.0001)
}
