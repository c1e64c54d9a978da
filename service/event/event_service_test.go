package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"request-portal-service/service/models"
	"request-portal-service/testutil"
)

func newTestEventService(t *testing.T) *EventService {
	t.Helper()
	tdb := testutil.NewTestDB()
	t.Cleanup(tdb.Close)

	svc := NewEventService(tdb.DB)
	t.Cleanup(svc.Stop)
	return svc
}

func TestPublishBroadcastsToConnections(t *testing.T) {
	svc := newTestEventService(t)

	client := svc.AddConnection("홍길동", "conn-1", "127.0.0.1")
	other := svc.AddConnection("김철수", "conn-2", "127.0.0.2")

	svc.Publish(&models.SSEEvent{
		EventType: "status_changed",
		RequestID: "REQ-2026-001",
		Data:      models.JSONB{"status": "in_progress"},
	})

	// 모든 연결이 동일한 이벤트를 받는다
	received := <-client.Channel
	assert.Equal(t, "status_changed", received.EventType)
	assert.Equal(t, "REQ-2026-001", received.RequestID)

	receivedOther := <-other.Channel
	assert.Equal(t, "status_changed", receivedOther.EventType)
}

func TestPublishPersistsEvent(t *testing.T) {
	svc := newTestEventService(t)

	svc.Publish(&models.SSEEvent{
		EventType: "request_created",
		RequestID: "REQ-2026-001",
		Data:      models.JSONB{"title": "프린터 고장"},
	})
	svc.Publish(&models.SSEEvent{
		EventType: "status_changed",
		RequestID: "REQ-2026-002",
	})

	events, total, err := svc.EventHistory(1, 10, "", "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, events, 2)

	filtered, total, err := svc.EventHistory(1, 10, "request_created", "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, filtered, 1)
	assert.Equal(t, "REQ-2026-001", filtered[0].RequestID)

	byRequest, total, err := svc.EventHistory(1, 10, "", "REQ-2026-002")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, byRequest, 1)
	assert.Equal(t, "status_changed", byRequest[0].EventType)
}

func TestPublishSkipsFullChannel(t *testing.T) {
	svc := newTestEventService(t)
	client := svc.AddConnection("홍길동", "conn-1", "127.0.0.1")

	// 채널 용량을 넘겨도 Publish는 블로킹되지 않는다
	for i := 0; i < cap(client.Channel)+10; i++ {
		svc.Publish(&models.SSEEvent{EventType: "request_created"})
	}
	assert.Len(t, client.Channel, cap(client.Channel))
}

func TestRemoveConnection(t *testing.T) {
	svc := newTestEventService(t)
	client := svc.AddConnection("홍길동", "conn-1", "127.0.0.1")

	svc.RemoveConnection("홍길동", "conn-1")

	select {
	case <-client.Done:
	default:
		t.Fatal("연결 제거 후 Done 채널이 닫혀야 한다")
	}

	// 제거된 연결은 더 이상 이벤트를 받지 않는다
	svc.Publish(&models.SSEEvent{EventType: "request_created"})
	assert.Empty(t, client.Channel)
}
