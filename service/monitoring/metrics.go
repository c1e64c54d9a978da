/*
 * @module service/monitoring/metrics
 * @description 서비스 지표 정의, /metrics 엔드포인트로 노출되는 프로메테우스 카운터
 * @architecture 계층형 아키텍처 - 관측 계층
 * @documentReference ai_docs/monitoring.md
 * @stateFlow 없음
 * @rules 카운터는 기본 레지스트리에 등록하고 main의 promhttp 핸들러로 노출한다
 * @dependencies github.com/prometheus/client_golang/prometheus
 * @refs main.go
 */

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AnalysesTotal 분석 요청 횟수, result 레이블은 ok/insufficient_input
	AnalysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_analyses_total",
		Help: "자연어 분석 호출 횟수",
	}, []string{"result"})

	// RequestsCreatedTotal 접수된 요청 건수
	RequestsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "portal_requests_created_total",
		Help: "접수된 요청 건수",
	})

	// ApprovalsTotal 결재 처리 건수, action 레이블은 approve/reject
	ApprovalsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_approvals_total",
		Help: "결재 처리 건수",
	}, []string{"action"})
)
