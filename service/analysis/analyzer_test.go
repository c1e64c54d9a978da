package analysis

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeRejectsShortInput(t *testing.T) {
	analyzer := NewAnalyzer()

	assert.Nil(t, analyzer.Analyze(""))
	assert.Nil(t, analyzer.Analyze("a"))
	assert.Nil(t, analyzer.Analyze("ab"))
	assert.Nil(t, analyzer.Analyze("  ab  "))
	assert.NotNil(t, analyzer.Analyze("abc"))
}

func TestAnalyzeFallbackDefaults(t *testing.T) {
	analyzer := NewAnalyzer()

	// 어떤 키워드에도 매칭되지 않는 입력
	result := analyzer.Analyze("가나다라마")
	require.NotNil(t, result)

	assert.Equal(t, "one", result.System.ID)
	assert.Equal(t, "ONE 통합부동산관리", result.System.Name)
	assert.InDelta(t, 0.3, result.System.Confidence, 0.0001)
	assert.Nil(t, result.Module)
	assert.Equal(t, "general", string(result.RequestType.Category))
	assert.Equal(t, "일반", result.RequestType.Label)
	assert.InDelta(t, 0.3, result.RequestType.Confidence, 0.0001)
	assert.InDelta(t, 0.21, result.OverallConfidence, 0.0001)
	assert.Empty(t, result.MatchedKeywords)
	// 일반 유형은 제목에 라벨을 붙이지 않는다
	assert.Equal(t, "[ONE] 가나다라마", result.GeneratedTitle)
}

func TestAnalyzeFacilityEmergency(t *testing.T) {
	analyzer := NewAnalyzer()

	result := analyzer.Analyze("3층 화장실 누수 긴급 신고")
	require.NotNil(t, result)

	assert.Equal(t, "one", result.System.ID)
	require.NotNil(t, result.Module)
	assert.Equal(t, "one-fm", result.Module.ID)
	assert.Equal(t, "FM관리", result.Module.Name)
	assert.Equal(t, "emergency", string(result.RequestType.Category))
	assert.Equal(t, "긴급", result.RequestType.Label)

	floor, ok := result.SuggestedFields["location_floor"]
	require.True(t, ok)
	assert.Equal(t, "3층", floor.Value)
	assert.InDelta(t, 0.95, floor.Confidence, 0.0001)

	detail, ok := result.SuggestedFields["location_detail"]
	require.True(t, ok)
	assert.Equal(t, "화장실", detail.Value)

	urgency, ok := result.SuggestedFields["urgency"]
	require.True(t, ok)
	assert.Equal(t, "critical", urgency.Value)
	assert.InDelta(t, 0.9, urgency.Confidence, 0.0001)

	situation, ok := result.SuggestedFields["situation"]
	require.True(t, ok)
	assert.Equal(t, "3층 화장실 누수 긴급 신고", situation.Value)
	assert.InDelta(t, 1.0, situation.Confidence, 0.0001)

	assert.Equal(t, []string{"누수", "긴급"}, result.MatchedKeywords)
	assert.Equal(t, "[ONE/FM] 3층 화장실 누수 긴급 신고 긴급", result.GeneratedTitle)
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	analyzer := NewAnalyzer()
	query := "ONE 시설 임대 계약 오류 수정"

	first := analyzer.Analyze(query)
	second := analyzer.Analyze(query)

	require.NotNil(t, first)
	assert.Equal(t, first, second)
}

func TestAnalyzeConfidenceBounds(t *testing.T) {
	analyzer := NewAnalyzer()

	queries := []string{
		"가나다라마",
		"3층 화장실 누수 긴급 신고",
		"ONE 시설 임대 계약 오류 수정",
		"그룹웨어 휴가 연차 결재 메일 근태 전자결재 출퇴근",
	}

	for _, query := range queries {
		result := analyzer.Analyze(query)
		require.NotNil(t, result, query)
		assert.Greater(t, result.OverallConfidence, 0.0, query)
		assert.LessOrEqual(t, result.OverallConfidence, 1.0, query)
		assert.LessOrEqual(t, result.System.Confidence, 1.0, query)
		assert.LessOrEqual(t, result.RequestType.Confidence, 1.0, query)
		assert.LessOrEqual(t, len(result.MatchedKeywords), 5, query)
	}
}

func TestAnalyzeHighConfidence(t *testing.T) {
	analyzer := NewAnalyzer()

	rich := analyzer.Analyze("ONE 시설 임대 계약 오류 수정")
	require.NotNil(t, rich)
	assert.True(t, analyzer.HasHighConfidence(rich))
	assert.Len(t, rich.MatchedKeywords, 5)

	weak := analyzer.Analyze("가나다라마")
	assert.False(t, analyzer.HasHighConfidence(weak))
	assert.False(t, analyzer.HasHighConfidence(nil))
}

func TestGeneratedTitleTruncation(t *testing.T) {
	analyzer := NewAnalyzer()
	long := strings.Repeat("가", 60)

	result := analyzer.Analyze(long)
	require.NotNil(t, result)

	assert.Equal(t, "[ONE] "+strings.Repeat("가", 47)+"...", result.GeneratedTitle)
	assert.LessOrEqual(t, utf8.RuneCountInString(strings.TrimPrefix(result.GeneratedTitle, "[ONE] ")), 50)
}

func TestGeneratedTitleStripsFiller(t *testing.T) {
	analyzer := NewAnalyzer()

	result := analyzer.Analyze("ONE 시스템 관련해서 문의")
	require.NotNil(t, result)

	// 시스템명/상투어는 제목에서 제거된다
	assert.NotContains(t, result.GeneratedTitle, "시스템")
	assert.NotContains(t, result.GeneratedTitle, "관련해서")
}

func TestSuggestedUrgencyHigh(t *testing.T) {
	analyzer := NewAnalyzer()

	result := analyzer.Analyze("프린터 설정 빨리 확인 부탁해요")
	require.NotNil(t, result)

	urgency, ok := result.SuggestedFields["urgency"]
	require.True(t, ok)
	assert.Equal(t, "high", urgency.Value)
	assert.InDelta(t, 0.8, urgency.Confidence, 0.0001)
}
