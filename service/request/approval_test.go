package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"request-portal-service/service/meta"
	"request-portal-service/service/models"
	"request-portal-service/testutil"
)

func TestSetApprovers(t *testing.T) {
	svc, _, factory := newTestService(t)
	req := factory.CreateRequest()

	updated, err := svc.SetApprovers(req.ID, testutil.SampleApprovers(2))
	require.NoError(t, err)

	require.Len(t, updated.Approvers, 2)
	assert.Equal(t, 1, updated.CurrentApprovalStep)
	for _, approver := range updated.Approvers {
		assert.Equal(t, meta.ApprovalPending, approver.Status)
		assert.Nil(t, approver.ProcessedAt)
	}
	require.Len(t, updated.History, 2)
	assert.Equal(t, "결재선 설정: 김팀장 → 박부장", updated.History[1].Action)
	assert.Equal(t, meta.CurrentUser.Name, updated.History[1].Actor)
}

func TestSetApproversReplacesChain(t *testing.T) {
	svc, _, factory := newTestService(t)
	req := factory.CreateRequest()

	_, err := svc.SetApprovers(req.ID, testutil.SampleApprovers(3))
	require.NoError(t, err)

	// 결재선 재설정은 통째 교체이며 단계는 1로 돌아간다
	updated, err := svc.SetApprovers(req.ID, testutil.SampleApprovers(1))
	require.NoError(t, err)
	require.Len(t, updated.Approvers, 1)
	assert.Equal(t, 1, updated.CurrentApprovalStep)
}

func TestSetApproversValidation(t *testing.T) {
	svc, _, factory := newTestService(t)
	req := factory.CreateRequest()

	var vErr *ValidationError

	_, err := svc.SetApprovers(req.ID, nil)
	require.ErrorAs(t, err, &vErr)

	// order에 빈 자리가 있으면 거부한다
	gapped := testutil.SampleApprovers(2)
	gapped[1].Order = 3
	_, err = svc.SetApprovers(req.ID, gapped)
	require.ErrorAs(t, err, &vErr)

	// 중복 order도 거부한다
	dup := testutil.SampleApprovers(2)
	dup[1].Order = 1
	_, err = svc.SetApprovers(req.ID, dup)
	require.ErrorAs(t, err, &vErr)
}

func TestProcessApprovalChain(t *testing.T) {
	svc, _, factory := newTestService(t)
	req := factory.CreateRequest()
	_, err := svc.SetApprovers(req.ID, testutil.SampleApprovers(2))
	require.NoError(t, err)

	// 1단계 승인: 단계만 전진하고 요청은 아직 대기
	afterFirst, err := svc.ProcessApproval(req.ID, "approver-1", ActionApprove, "확인했습니다")
	require.NoError(t, err)
	assert.Equal(t, meta.StatusPending, afterFirst.Status)
	assert.Equal(t, 2, afterFirst.CurrentApprovalStep)
	assert.Equal(t, meta.ApprovalApproved, afterFirst.Approvers[0].Status)
	require.NotNil(t, afterFirst.Approvers[0].ProcessedAt)
	assert.Equal(t, "확인했습니다", afterFirst.Approvers[0].Note)

	// 마지막 단계 승인: 요청이 approved로 전이
	afterLast, err := svc.ProcessApproval(req.ID, "approver-2", ActionApprove, "")
	require.NoError(t, err)
	assert.Equal(t, meta.StatusApproved, afterLast.Status)
	assert.Equal(t, 2, afterLast.CurrentApprovalStep)
	assert.Equal(t, meta.ApprovalApproved, afterLast.Approvers[1].Status)

	// 접수 1건 + 결재선 설정 1건 + 결재 2건
	require.Len(t, afterLast.History, 4)
	assert.Equal(t, "김팀장 결재 승인", afterLast.History[2].Action)
	assert.Equal(t, "김팀장", afterLast.History[2].Actor)
	assert.Equal(t, "박부장 결재 승인", afterLast.History[3].Action)
	assert.Equal(t, "박부장", afterLast.History[3].Actor)
}

func TestProcessApprovalReject(t *testing.T) {
	svc, _, factory := newTestService(t)
	req := factory.CreateRequest()
	_, err := svc.SetApprovers(req.ID, testutil.SampleApprovers(2))
	require.NoError(t, err)

	// 반려는 즉시 요청을 종결하고 남은 결재자는 pending으로 남는다
	rejected, err := svc.ProcessApproval(req.ID, "approver-1", ActionReject, "근거 부족")
	require.NoError(t, err)
	assert.Equal(t, meta.StatusRejected, rejected.Status)
	assert.Equal(t, 1, rejected.CurrentApprovalStep)
	assert.Equal(t, meta.ApprovalRejected, rejected.Approvers[0].Status)
	assert.Equal(t, meta.ApprovalPending, rejected.Approvers[1].Status)
	assert.Equal(t, "김팀장 결재 반려", rejected.History[len(rejected.History)-1].Action)
}

func TestProcessApprovalOutOfOrder(t *testing.T) {
	svc, _, factory := newTestService(t)
	req := factory.CreateRequest()
	_, err := svc.SetApprovers(req.ID, testutil.SampleApprovers(2))
	require.NoError(t, err)

	// 현재 단계가 아닌 결재자의 승인은 상태만 기록하고 단계를 움직이지 않는다
	updated, err := svc.ProcessApproval(req.ID, "approver-2", ActionApprove, "")
	require.NoError(t, err)
	assert.Equal(t, meta.StatusPending, updated.Status)
	assert.Equal(t, 1, updated.CurrentApprovalStep)
	assert.Equal(t, meta.ApprovalPending, updated.Approvers[0].Status)
	assert.Equal(t, meta.ApprovalApproved, updated.Approvers[1].Status)
}

func TestProcessApprovalAlreadyDecided(t *testing.T) {
	svc, _, factory := newTestService(t)
	req := factory.CreateRequest()
	_, err := svc.SetApprovers(req.ID, testutil.SampleApprovers(1))
	require.NoError(t, err)

	_, err = svc.ProcessApproval(req.ID, "approver-1", ActionApprove, "")
	require.NoError(t, err)

	_, err = svc.ProcessApproval(req.ID, "approver-1", ActionApprove, "")
	assert.ErrorIs(t, err, ErrApproverAlreadyDecided)
}

func TestProcessApprovalErrors(t *testing.T) {
	svc, _, factory := newTestService(t)

	// 결재선 미설정
	noChain := factory.CreateRequest()
	_, err := svc.ProcessApproval(noChain.ID, "approver-1", ActionApprove, "")
	assert.ErrorIs(t, err, ErrNoApprovalChain)

	// 결재선에 없는 결재자
	withChain := factory.CreateRequest(testutil.WithApprovers(testutil.SampleApprovers(1), 1))
	_, err = svc.ProcessApproval(withChain.ID, "approver-9", ActionApprove, "")
	assert.ErrorIs(t, err, ErrApproverNotFound)

	// 허용되지 않는 행위
	_, err = svc.ProcessApproval(withChain.ID, "approver-1", ApprovalAction("hold"), "")
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)

	// 존재하지 않는 요청
	_, err = svc.ProcessApproval("REQ-2026-999", "approver-1", ActionApprove, "")
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestSingleApproverChain(t *testing.T) {
	svc, _, factory := newTestService(t)
	req := factory.CreateRequest(testutil.WithApprovers([]models.ApproverInfo{
		{ID: "approver-3", Name: "이상무", Department: "경영지원실", Position: "상무", Order: 1, Status: meta.ApprovalPending},
	}, 1))

	// 단일 결재선은 한 번의 승인으로 종결된다
	updated, err := svc.ProcessApproval(req.ID, "approver-3", ActionApprove, "")
	require.NoError(t, err)
	assert.Equal(t, meta.StatusApproved, updated.Status)
	assert.Equal(t, 1, updated.CurrentApprovalStep)
}
