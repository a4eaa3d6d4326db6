package ownership

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePool(t *testing.T) {
	for n := 1; n <= PoolCount; n++ {
		p, err := ParsePool(n)
		assert.NoError(t, err)
		assert.Equal(t, Pool(n), p)
	}

	for _, n := range []int{0, -1, 4, 99} {
		_, err := ParsePool(n)
		assert.ErrorIs(t, err, ErrInvalidPool)
	}
}

func TestResolve(t *testing.T) {
	agentID := int64(7)

	owner := Resolve(&agentID, NoPool)
	assert.Equal(t, KindAgent, owner.Kind)
	assert.Equal(t, int64(7), owner.AgentID)

	owner = Resolve(nil, Pool2)
	assert.Equal(t, KindPool, owner.Kind)
	assert.Equal(t, Pool2, owner.Pool)

	owner = Resolve(nil, NoPool)
	assert.Equal(t, KindUnowned, owner.Kind)
}

func TestResolve_AgentWinsOverStalePool(t *testing.T) {
	agentID := int64(3)
	owner := Resolve(&agentID, Pool1)
	assert.Equal(t, KindAgent, owner.Kind)
}
