/*
 * @module api/controllers/analysis_controller_test
 * @description 분석 컨트롤러 단위 테스트
 * @architecture 테스트 계층
 * @documentReference ai_docs/test_plan.md
 * @stateFlow 요청 구성 -> 핸들러 호출 -> 응답 검증
 * @rules 짧은 입력은 오류가 아니라 null 데이터 응답임을 검증한다
 * @dependencies testing, net/http/httptest, stretchr/testify
 */

package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"request-portal-service/service/analysis"
)

func newTestAnalysisController() *AnalysisController {
	return &AnalysisController{analyzer: analysis.NewAnalyzer()}
}

func postJSON(t *testing.T, handler http.HandlerFunc, url string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestAnalyze(t *testing.T) {
	controller := newTestAnalysisController()

	w := postJSON(t, controller.Analyze, "/analysis/analyze", AnalyzeRequest{
		Query: "3층 화장실 누수 긴급 신고",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	assert.Equal(t, 0, response.Status)

	result, ok := response.Data.(map[string]interface{})
	require.True(t, ok)

	system, ok := result["system"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "one", system["id"])

	module, ok := result["module"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "one-fm", module["id"])
}

func TestAnalyzeShortInput(t *testing.T) {
	controller := newTestAnalysisController()

	w := postJSON(t, controller.Analyze, "/analysis/analyze", AnalyzeRequest{Query: "ab"})

	// 짧은 입력은 오류가 아니라 null 데이터로 응답한다
	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	assert.Equal(t, 0, response.Status)
	assert.Nil(t, response.Data)
}

func TestAnalyzeInvalidBody(t *testing.T) {
	controller := newTestAnalysisController()

	req := httptest.NewRequest(http.MethodPost, "/analysis/analyze", bytes.NewBufferString("{broken"))
	w := httptest.NewRecorder()
	controller.Analyze(w, req)

	response := decodeResponse(t, w)
	assert.Equal(t, 400, response.Status)
}

func TestAnalyzeExtendedEndpoint(t *testing.T) {
	controller := newTestAnalysisController()

	w := postJSON(t, controller.AnalyzeExtended, "/analysis/analyze-extended", AnalyzeRequest{
		Query: "3층 화장실 누수 긴급 신고",
	})

	response := decodeResponse(t, w)
	assert.Equal(t, 0, response.Status)

	result, ok := response.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, result, "base")
	assert.Contains(t, result, "impact")
	assert.Contains(t, result, "processing_time")
}

func TestAnalyzeExtendedInvalidUrgency(t *testing.T) {
	controller := newTestAnalysisController()

	w := postJSON(t, controller.AnalyzeExtended, "/analysis/analyze-extended", AnalyzeRequest{
		Query:   "프린터 고장",
		Urgency: "nope",
	})

	response := decodeResponse(t, w)
	assert.Equal(t, 400, response.Status)
}

func TestSearchActionsEndpoint(t *testing.T) {
	controller := newTestAnalysisController()

	req := httptest.NewRequest(http.MethodGet, "/analysis/actions?query=휴가+신청", nil)
	w := httptest.NewRecorder()
	controller.SearchActions(w, req)

	response := decodeResponse(t, w)
	assert.Equal(t, 0, response.Status)

	results, ok := response.Data.([]interface{})
	require.True(t, ok)
	require.NotEmpty(t, results)

	top, ok := results[0].(map[string]interface{})
	require.True(t, ok)
	action, ok := top["action"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "portal-leave", action["id"])
}

func TestSearchActionsGroupedEndpoint(t *testing.T) {
	controller := newTestAnalysisController()

	req := httptest.NewRequest(http.MethodGet, "/analysis/actions?query=엘리베이터+고장&grouped=true", nil)
	w := httptest.NewRecorder()
	controller.SearchActions(w, req)

	response := decodeResponse(t, w)
	groups, ok := response.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, groups, 2)

	first, ok := groups[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "one", first["system_id"])
}
