package kv

// Store defines the interface for a set-structured key-value store.
// Each key names one unordered set of unique member strings.
// Implementations of this interface can be swapped out,
// allowing for different storage backends (e.g., in-memory, Raft-replicated).
type Store interface {
	// Exists reports whether the key currently holds a set.
	Exists(key string) bool

	// AddMembers adds members to the key's set, creating the set if the
	// key does not exist. Returns the number of members newly added;
	// duplicates within the batch or against existing members are not
	// counted.
	AddMembers(key string, members []string) (int, error)

	// RemoveMember removes one member from the key's set.
	// Returns true if the member was present before the call.
	RemoveMember(key, member string) (bool, error)

	// Members returns the current members of the key's set, in no
	// particular order. An absent key yields an empty slice.
	Members(key string) []string

	// Cardinality returns the number of members in the key's set.
	// An absent key has cardinality 0.
	Cardinality(key string) int

	// DeleteKey removes a key and its set entirely.
	// Returns true if the key existed.
	DeleteKey(key string) (bool, error)

	// FlushAll removes every key in the store.
	FlushAll() error
}
