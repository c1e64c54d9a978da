package request

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"request-portal-service/service/meta"
	"request-portal-service/service/models"
	"request-portal-service/testutil"
)

func newTestService(t *testing.T) (*Service, *testutil.TestDB, *testutil.TestDataFactory) {
	t.Helper()
	tdb := testutil.NewTestDB()
	t.Cleanup(tdb.Close)
	return NewService(tdb.DB, nil), tdb, testutil.NewTestDataFactory(tdb.DB)
}

func validCreateInput() *CreateInput {
	return &CreateInput{
		Title:       "3층 화장실 누수",
		Content:     "3층 남자화장실에서 물이 샙니다",
		SystemID:    "one",
		RequestType: meta.CategoryEmergency,
	}
}

func TestCreateRequest(t *testing.T) {
	svc, _, _ := newTestService(t)

	req, err := svc.Create(validCreateInput())
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("REQ-%d-001", time.Now().Year()), req.ID)
	assert.Equal(t, meta.StatusPending, req.Status)
	assert.Equal(t, meta.UrgencyNormal, req.Urgency)
	assert.Equal(t, "ONE 통합부동산관리", req.SystemName)
	assert.Equal(t, meta.CurrentUser.ID, req.Requester.ID)
	assert.Equal(t, meta.CurrentUser.Name, req.Requester.Name)
	require.Len(t, req.History, 1)
	assert.Equal(t, "요청 접수", req.History[0].Action)
	assert.Equal(t, meta.CurrentUser.Name, req.History[0].Actor)
	assert.Empty(t, req.Approvers)
	assert.Nil(t, req.CompletedAt)
}

func TestCreateRequestIDSequence(t *testing.T) {
	svc, _, _ := newTestService(t)
	year := time.Now().Year()

	first, err := svc.Create(validCreateInput())
	require.NoError(t, err)
	second, err := svc.Create(validCreateInput())
	require.NoError(t, err)
	third, err := svc.Create(validCreateInput())
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("REQ-%d-001", year), first.ID)
	assert.Equal(t, fmt.Sprintf("REQ-%d-002", year), second.ID)
	assert.Equal(t, fmt.Sprintf("REQ-%d-003", year), third.ID)
}

func TestCreateRequestIDSequencePastThreeDigits(t *testing.T) {
	svc, tdb, factory := newTestService(t)
	year := time.Now().Year()

	// 일련번호가 3자리를 넘어간 연도 상태를 시드
	for _, seq := range []string{"999", "1000"} {
		req := factory.CreateRequest()
		require.NoError(t, tdb.DB.Model(&models.Request{}).
			Where("id = ?", req.ID).
			Update("id", fmt.Sprintf("REQ-%d-%s", year, seq)).Error)
	}

	created, err := svc.Create(validCreateInput())
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("REQ-%d-1001", year), created.ID)
}

func TestCreateRequestWithModule(t *testing.T) {
	svc, _, _ := newTestService(t)

	moduleID := "one-fm"
	input := validCreateInput()
	input.ModuleID = &moduleID
	input.Urgency = meta.UrgencyCritical

	req, err := svc.Create(input)
	require.NoError(t, err)

	require.NotNil(t, req.ModuleID)
	assert.Equal(t, "one-fm", *req.ModuleID)
	require.NotNil(t, req.ModuleName)
	assert.Equal(t, "FM관리", *req.ModuleName)
	assert.Equal(t, meta.UrgencyCritical, req.Urgency)
}

func TestCreateRequestValidation(t *testing.T) {
	svc, _, _ := newTestService(t)

	cases := []struct {
		name   string
		mutate func(*CreateInput)
		field  string
	}{
		{"빈 제목", func(in *CreateInput) { in.Title = "  " }, "title"},
		{"빈 내용", func(in *CreateInput) { in.Content = "" }, "content"},
		{"미등록 시스템", func(in *CreateInput) { in.SystemID = "nope" }, "system_id"},
		{"미등록 유형", func(in *CreateInput) { in.RequestType = "nope" }, "request_type"},
		{"미등록 긴급도", func(in *CreateInput) { in.Urgency = "nope" }, "urgency"},
		{"미등록 모듈", func(in *CreateInput) {
			moduleID := "one-xx"
			in.ModuleID = &moduleID
		}, "module_id"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validCreateInput()
			tc.mutate(input)

			_, err := svc.Create(input)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
		})
	}
}

func TestGetByIDNotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.GetByID("REQ-2026-999")
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestUpdateStatus(t *testing.T) {
	svc, _, factory := newTestService(t)
	req := factory.CreateRequest()

	updated, err := svc.UpdateStatus(req.ID, meta.StatusInProgress, "담당자 확인 중")
	require.NoError(t, err)

	assert.Equal(t, meta.StatusInProgress, updated.Status)
	require.Len(t, updated.History, 2)
	assert.Equal(t, "처리 시작", updated.History[1].Action)
	assert.Equal(t, "시스템", updated.History[1].Actor)
	assert.Equal(t, "담당자 확인 중", updated.History[1].Note)
	assert.Nil(t, updated.CompletedAt)
}

func TestUpdateStatusSetsCompletedAt(t *testing.T) {
	svc, _, factory := newTestService(t)
	req := factory.CreateRequest(testutil.WithStatus(meta.StatusInProgress))

	updated, err := svc.UpdateStatus(req.ID, meta.StatusCompleted, "")
	require.NoError(t, err)

	assert.Equal(t, meta.StatusCompleted, updated.Status)
	require.NotNil(t, updated.CompletedAt)
}

func TestUpdateStatusInvalidTransition(t *testing.T) {
	svc, _, factory := newTestService(t)
	req := factory.CreateRequest(testutil.WithStatus(meta.StatusCompleted))

	_, err := svc.UpdateStatus(req.ID, meta.StatusPending, "")
	var tErr *TransitionError
	require.ErrorAs(t, err, &tErr)
	assert.Equal(t, meta.StatusCompleted, tErr.From)
	assert.Equal(t, meta.StatusPending, tErr.To)

	// pending에서 completed로 바로 갈 수 없다
	pending := factory.CreateRequest()
	_, err = svc.UpdateStatus(pending.ID, meta.StatusCompleted, "")
	assert.ErrorAs(t, err, &tErr)
}

func TestUpdateStatusUnknownStatus(t *testing.T) {
	svc, _, factory := newTestService(t)
	req := factory.CreateRequest()

	_, err := svc.UpdateStatus(req.ID, "nope", "")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "status", vErr.Field)
}

func TestAssign(t *testing.T) {
	svc, _, factory := newTestService(t)
	req := factory.CreateRequest()

	updated, err := svc.Assign(req.ID, "assignee-001")
	require.NoError(t, err)

	require.NotNil(t, updated.Assignee.AssigneeInfo)
	assert.Equal(t, "김철수", updated.Assignee.Name)
	require.Len(t, updated.History, 2)
	assert.Equal(t, "담당자 배정: 김철수", updated.History[1].Action)
	assert.Equal(t, "시스템", updated.History[1].Actor)

	// 배정 이후 상태 변경의 actor는 담당자 이름이 된다
	changed, err := svc.UpdateStatus(req.ID, meta.StatusInProgress, "")
	require.NoError(t, err)
	assert.Equal(t, "김철수", changed.History[2].Actor)
}

func TestAssignUnknownAssignee(t *testing.T) {
	svc, _, factory := newTestService(t)
	req := factory.CreateRequest()

	_, err := svc.Assign(req.ID, "assignee-999")
	assert.ErrorIs(t, err, ErrAssigneeNotFound)
}

func TestDelete(t *testing.T) {
	svc, _, factory := newTestService(t)
	req := factory.CreateRequest()

	require.NoError(t, svc.Delete(req.ID))

	_, err := svc.GetByID(req.ID)
	assert.ErrorIs(t, err, ErrRequestNotFound)
	assert.ErrorIs(t, svc.Delete(req.ID), ErrRequestNotFound)
}

func TestListFilters(t *testing.T) {
	svc, _, factory := newTestService(t)
	factory.CreateRequest(testutil.WithTitle("프린터 고장"), testutil.WithStatus(meta.StatusPending))
	factory.CreateRequest(testutil.WithTitle("에어컨 점검"), testutil.WithStatus(meta.StatusCompleted))
	factory.CreateRequest(
		testutil.WithTitle("휴가 신청 문의"),
		testutil.WithSystem("portal", "그룹웨어 Portal"),
		testutil.WithStatus(meta.StatusPending),
	)

	all, total, err := svc.List(1, 10, "all", "", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, int64(3), total)

	pending, total, err := svc.List(1, 10, "pending", "", "")
	require.NoError(t, err)
	assert.Len(t, pending, 2)
	assert.Equal(t, int64(2), total)

	portal, total, err := svc.List(1, 10, "", "portal", "")
	require.NoError(t, err)
	require.Len(t, portal, 1)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "휴가 신청 문의", portal[0].Title)

	searched, total, err := svc.List(1, 10, "", "", "프린터")
	require.NoError(t, err)
	require.Len(t, searched, 1)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "프린터 고장", searched[0].Title)
}

func TestListPagination(t *testing.T) {
	svc, _, factory := newTestService(t)
	for i := 0; i < 5; i++ {
		factory.CreateRequest(testutil.WithTitle(fmt.Sprintf("요청 %d", i)))
	}

	page1, total, err := svc.List(1, 2, "", "", "")
	require.NoError(t, err)
	assert.Len(t, page1, 2)
	assert.Equal(t, int64(5), total)

	page3, _, err := svc.List(3, 2, "", "", "")
	require.NoError(t, err)
	assert.Len(t, page3, 1)
}

func TestMyRequests(t *testing.T) {
	svc, tdb, factory := newTestService(t)
	mine := factory.CreateRequest()

	other := factory.CreateRequest(testutil.WithTitle("다른 사람 요청"))
	other.Requester = models.Requester{ID: "user-999", Name: "임꺽정", Department: "총무팀"}
	require.NoError(t, tdb.DB.Save(other).Error)

	results, err := svc.MyRequests()
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, mine.ID, results[0].ID)
}

func TestStatsPartition(t *testing.T) {
	svc, _, factory := newTestService(t)
	factory.CreateRequest(testutil.WithStatus(meta.StatusPending))
	factory.CreateRequest(testutil.WithStatus(meta.StatusPending))
	factory.CreateRequest(testutil.WithStatus(meta.StatusApproved))
	factory.CreateRequest(testutil.WithStatus(meta.StatusInProgress))
	factory.CreateRequest(testutil.WithStatus(meta.StatusCompleted))
	factory.CreateRequest(testutil.WithStatus(meta.StatusRejected))

	stats, err := svc.Stats()
	require.NoError(t, err)

	assert.Equal(t, int64(6), stats.Total)
	assert.Equal(t, int64(2), stats.Pending)
	// approved는 화면 표기 규칙에 따라 처리중 버킷에 합산된다
	assert.Equal(t, int64(2), stats.InProgress)
	assert.Equal(t, int64(1), stats.Completed)
	assert.Equal(t, int64(1), stats.Rejected)
	assert.Equal(t, stats.Total, stats.Pending+stats.InProgress+stats.Completed+stats.Rejected)
}

func TestFindSimilar(t *testing.T) {
	svc, _, factory := newTestService(t)
	similar := factory.CreateRequest(
		testutil.WithTitle("프린터 고장 수리"),
		testutil.WithContent("3층 프린터 수리 요청"),
	)
	factory.CreateRequest(
		testutil.WithTitle("프린터 고장 수리"),
		testutil.WithContent("이미 종결된 건"),
		testutil.WithStatus(meta.StatusCompleted),
	)
	factory.CreateRequest(
		testutil.WithTitle("휴가 신청"),
		testutil.WithContent("연차 사용 문의"),
	)

	results, err := svc.FindSimilar("프린터 고장", "")
	require.NoError(t, err)

	// 종결 상태와 무관한 요청은 제외된다
	require.Len(t, results, 1)
	assert.Equal(t, similar.ID, results[0].ID)
}

func TestSplitWords(t *testing.T) {
	assert.Equal(t, []string{"프린터", "고장"}, splitWords("  프린터  고장 "))
	assert.Empty(t, splitWords(strings.Repeat(" ", 3)))
}
