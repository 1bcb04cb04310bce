package redis

const (
	// KeyPrefixPartition is the prefix for partition blob keys.
	// It plays the role of the parent container: one namespace of
	// named blobs.
	KeyPrefixPartition = "linkstash:partition:"
	// KeyAllPartitions is the key for the set of all partition names.
	KeyAllPartitions = "linkstash:partitions:all"
)

// PartitionKey returns the Redis key for a partition blob by name.
func PartitionKey(name string) string {
	return KeyPrefixPartition + name
}

// AllPartitionsKey returns the key for the set of all partition names.
func AllPartitionsKey() string {
	return KeyAllPartitions
}
