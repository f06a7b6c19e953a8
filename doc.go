/*
Package chash provides an in-memory hash table with separate chaining.

Table maps string keys to values of any type. Collisions are resolved by
singly linked chains hanging off each bucket, and the bucket array doubles
whenever an insert finds the load factor at or above the threshold.

Basic usage:

	import "github.com/theflywheel/chash"

	t, err := chash.New[int]()
	if err != nil {
		log.Fatal(err)
	}
	defer t.Destroy()

	if err := t.Insert("answer", 42); err != nil {
		log.Fatal(err)
	}

	if v, ok := t.Lookup("answer"); ok {
		fmt.Println("Value:", v)
	}

	if err := t.Remove("answer"); errors.Is(err, chash.ErrNotFound) {
		fmt.Println("already gone")
	}

Features:

  - Initial capacity of 10 buckets, doubled before an insert whenever
    size/capacity >= 0.7
  - Pluggable hash function (xxHash64 by default, FNV-1a and MurmurHash3
    are also provided)
  - Keys are owned by the table; values are stored as given and never
    inspected
  - Snapshot enumeration through Entries and Keys
  - Not safe for concurrent use; callers sharing a Table must hold a lock
    for the duration of each call

Implementation Details:

Each bucket holds the head of a chain of nodes. Insert appends new keys to
the tail of their chain and overwrites the value in place when the key is
already present. A resize allocates the doubled bucket array first, so a
failed allocation leaves the table exactly as it was. It then walks every
old chain once, detaching each node and appending it to the tail of the
chain for its new bucket. Nodes that land in the same new bucket stay
chained together and nodes that diverge are split apart, all without
re-running Insert.
*/
package chash
