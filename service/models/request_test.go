package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssigneeColumnNullSemantics(t *testing.T) {
	// 미배정 담당자는 null로 저장된다
	empty := AssigneeColumn{}
	value, err := empty.Value()
	require.NoError(t, err)
	assert.Nil(t, value)

	var scanned AssigneeColumn
	require.NoError(t, scanned.Scan(nil))
	assert.Nil(t, scanned.AssigneeInfo)

	// ID 없는 JSON도 미배정으로 취급한다
	require.NoError(t, scanned.Scan([]byte(`{"id":"","name":""}`)))
	assert.Nil(t, scanned.AssigneeInfo)

	require.NoError(t, scanned.Scan([]byte(`{"id":"assignee-001","name":"김철수"}`)))
	require.NotNil(t, scanned.AssigneeInfo)
	assert.Equal(t, "김철수", scanned.Name)
}

func TestListColumnsSerializeNilAsEmptyArray(t *testing.T) {
	// nil 슬라이스는 null이 아니라 빈 배열로 저장된다
	var history HistoryList
	value, err := history.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", string(value.([]byte)))

	var approvers ApproverList
	value, err = approvers.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", string(value.([]byte)))

	var attachments AttachmentList
	value, err = attachments.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", string(value.([]byte)))
}

func TestScanJSONColumnRejectsUnknownType(t *testing.T) {
	var history HistoryList
	err := history.Scan(12345)
	assert.Error(t, err)
}

func TestScanJSONColumnAcceptsString(t *testing.T) {
	var history HistoryList
	require.NoError(t, history.Scan(`[{"id":"h-1","action":"요청 접수","actor":"홍길동"}]`))
	require.Len(t, history, 1)
	assert.Equal(t, "요청 접수", history[0].Action)
}
