package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"request-portal-service/service/meta"
	"request-portal-service/service/request"
	"request-portal-service/testutil"
)

func newTestScheduler(t *testing.T) (*StatsScheduler, *testutil.TestDataFactory) {
	t.Helper()
	tdb := testutil.NewTestDB()
	t.Cleanup(tdb.Close)

	requests := request.NewService(tdb.DB, nil)
	return NewStatsScheduler(tdb.DB, requests), testutil.NewTestDataFactory(tdb.DB)
}

func TestCaptureSnapshot(t *testing.T) {
	scheduler, factory := newTestScheduler(t)
	factory.CreateRequest(testutil.WithStatus(meta.StatusPending))
	factory.CreateRequest(testutil.WithStatus(meta.StatusInProgress))
	factory.CreateRequest(testutil.WithStatus(meta.StatusCompleted))

	scheduler.captureSnapshot()

	snapshots, err := scheduler.Snapshots(10)
	require.NoError(t, err)
	require.Len(t, snapshots, 1)

	snapshot := snapshots[0]
	assert.Equal(t, int64(3), snapshot.Total)
	assert.Equal(t, int64(1), snapshot.Pending)
	assert.Equal(t, int64(1), snapshot.InProgress)
	assert.Equal(t, int64(1), snapshot.Completed)
	assert.NotEmpty(t, snapshot.ID)
	assert.False(t, snapshot.CapturedAt.IsZero())
}

func TestSnapshotsLimit(t *testing.T) {
	scheduler, _ := newTestScheduler(t)
	for i := 0; i < 5; i++ {
		scheduler.captureSnapshot()
	}

	snapshots, err := scheduler.Snapshots(3)
	require.NoError(t, err)
	assert.Len(t, snapshots, 3)

	// limit이 0 이하이면 기본값을 사용한다
	all, err := scheduler.Snapshots(0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestSchedulerStartStop(t *testing.T) {
	scheduler, _ := newTestScheduler(t)

	require.NoError(t, scheduler.Start())
	assert.True(t, scheduler.started)

	// 이미 시작된 스케줄러의 재시작은 무해하다
	require.NoError(t, scheduler.Start())

	scheduler.Stop()
	assert.False(t, scheduler.started)
}
