package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSystemByID(t *testing.T) {
	system := GetSystemByID("one")
	require.NotNil(t, system)
	assert.Equal(t, "ONE 통합부동산관리", system.Name)
	assert.True(t, IsValidSystem("one"))

	assert.Nil(t, GetSystemByID("nope"))
	assert.False(t, IsValidSystem("nope"))
}

func TestActiveSystems(t *testing.T) {
	active := ActiveSystems()
	assert.Len(t, active, len(Systems)-1)
	for _, s := range active {
		assert.True(t, s.IsActive, s.ID)
		assert.NotEqual(t, "legacy-gw", s.ID)
	}
}

func TestGetModuleByID(t *testing.T) {
	module := GetModuleByID("one", "one-fm")
	require.NotNil(t, module)
	assert.Equal(t, "FM관리", module.Name)

	// 다른 시스템의 모듈 ID는 조회되지 않는다
	assert.Nil(t, GetModuleByID("portal", "one-fm"))
	assert.Nil(t, GetModuleByID("one", "nope"))
	assert.Nil(t, GetModuleByID("nope", "one-fm"))
}
