package ownership

import (
	"errors"
	"strconv"
)

// Pool is a numbered reallocation pool. Zero means "not pooled".
type Pool int

const (
	NoPool Pool = 0
	Pool1  Pool = 1
	Pool2  Pool = 2
	Pool3  Pool = 3

	// PoolCount is the fixed number of reallocation pools.
	PoolCount = 3
)

var ErrInvalidPool = errors.New("pool must be between 1 and 3")

func (p Pool) String() string {
	if p == NoPool {
		return "none"
	}
	return "pool_" + strconv.Itoa(int(p))
}

// ParsePool validates a pool number coming from the API.
func ParsePool(n int) (Pool, error) {
	if n < 1 || n > PoolCount {
		return NoPool, ErrInvalidPool
	}
	return Pool(n), nil
}

// Kind discriminates who currently owns a record.
type Kind string

const (
	KindAgent   Kind = "agent"
	KindPool    Kind = "pool"
	KindUnowned Kind = "unowned"
)

// Owner is the resolved ownership of an enquiry or lead. A record is owned
// by exactly one of: a named agent, a numbered pool, or nobody. The two
// storage columns (owner_agent_id, pool) are never both set.
type Owner struct {
	Kind    Kind  `json:"kind"`
	AgentID int64 `json:"agent_id,omitempty"`
	Pool    Pool  `json:"pool,omitempty"`
}

// Resolve builds the Owner view from the two storage columns. An agent id
// wins if both are somehow set; callers writing the columns must always
// clear the other side in the same update.
func Resolve(agentID *int64, pool Pool) Owner {
	if agentID != nil && *agentID != 0 {
		return Owner{Kind: KindAgent, AgentID: *agentID}
	}
	if pool >= Pool1 && pool <= Pool(PoolCount) {
		return Owner{Kind: KindPool, Pool: pool}
	}
	return Owner{Kind: KindUnowned}
}
