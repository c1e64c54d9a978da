package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	allowed := []struct{ from, to RequestStatus }{
		{StatusPending, StatusApproved},
		{StatusPending, StatusInProgress},
		{StatusPending, StatusRejected},
		{StatusApproved, StatusInProgress},
		{StatusApproved, StatusRejected},
		{StatusInProgress, StatusCompleted},
		{StatusInProgress, StatusRejected},
	}
	for _, tc := range allowed {
		assert.True(t, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}

	denied := []struct{ from, to RequestStatus }{
		{StatusPending, StatusCompleted},
		{StatusApproved, StatusCompleted},
		{StatusApproved, StatusPending},
		{StatusCompleted, StatusPending},
		{StatusCompleted, StatusInProgress},
		{StatusRejected, StatusPending},
		{StatusRejected, StatusInProgress},
	}
	for _, tc := range denied {
		assert.False(t, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestTerminalStatuses(t *testing.T) {
	assert.True(t, IsTerminalStatus(StatusCompleted))
	assert.True(t, IsTerminalStatus(StatusRejected))
	assert.False(t, IsTerminalStatus(StatusPending))
	assert.False(t, IsTerminalStatus(StatusApproved))
	assert.False(t, IsTerminalStatus(StatusInProgress))
}

func TestCategoryValidation(t *testing.T) {
	for _, category := range AllCategories {
		assert.True(t, IsValidCategory(category))
	}
	assert.False(t, IsValidCategory("nope"))

	assert.Equal(t, "긴급", GetCategoryLabel(CategoryEmergency))
	assert.Equal(t, "일반", GetCategoryLabel("nope"))
}

func TestUrgencyValidation(t *testing.T) {
	for _, urgency := range []Urgency{UrgencyLow, UrgencyNormal, UrgencyHigh, UrgencyCritical} {
		assert.True(t, IsValidUrgency(urgency))
	}
	assert.False(t, IsValidUrgency("nope"))
}

func TestDirectoryLookup(t *testing.T) {
	assignee := GetAssigneeByID("assignee-001")
	assert.NotNil(t, assignee)
	assert.Equal(t, "김철수", assignee.Name)
	assert.Nil(t, GetAssigneeByID("assignee-999"))

	approver := GetApproverByID("approver-1")
	assert.NotNil(t, approver)
	assert.Equal(t, "김팀장", approver.Name)
	assert.Nil(t, GetApproverByID("approver-9"))
}

func TestActionRegistry(t *testing.T) {
	action := GetActionByID("one-fm-emergency")
	assert.NotNil(t, action)
	assert.Equal(t, "one", action.SystemID)
	assert.Nil(t, GetActionByID("nope"))

	oneActions := ActionsBySystem("one")
	assert.Len(t, oneActions, 3)

	// 모든 액션은 검색 키워드를 가진다
	for _, a := range Actions {
		assert.NotEmpty(t, ActionKeywords[a.ID], a.ID)
	}
}
