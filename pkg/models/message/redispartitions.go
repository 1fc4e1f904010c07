package message

import (
	"fmt"
)

const partitionNumber = 5

// RedisPartition is a work list of finished games waiting for an audit.
type RedisPartition int

func (r RedisPartition) ListKey() string {
	return fmt.Sprintf("Audit-Partition-%d", r)
}

func (r RedisPartition) OwnerKey() string {
	return fmt.Sprintf("Audit-Partition-%d-Owner", r)
}

func (r RedisPartition) LockName() string {
	return fmt.Sprintf("Audit-Partition-%d-Lock", r)
}

var RedisPartitions []RedisPartition

func init() {
	for i := range partitionNumber {
		RedisPartitions = append(RedisPartitions, RedisPartition(i+1))
	}
}
