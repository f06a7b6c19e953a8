package main

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/theflywheel/chash"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	// Create a table that logs its resizes
	tbl, err := chash.New[int](chash.WithLogger(logger))
	if err != nil {
		log.Fatalf("Failed to create table: %v", err)
	}
	defer tbl.Destroy()

	fmt.Println("Table created successfully")

	// Insert some data
	for i := 0; i < 10; i++ {
		if err := tbl.Insert(fmt.Sprintf("key-%d", i), i*100); err != nil {
			log.Fatalf("Failed to insert key %d: %v", i, err)
		}
	}

	fmt.Printf("Inserted 10 key-value pairs (capacity now %d)\n", tbl.Cap())

	// Retrieve and display some values
	for i := 0; i < 15; i += 2 {
		key := fmt.Sprintf("key-%d", i)
		if val, found := tbl.Lookup(key); found {
			fmt.Printf("%s => Value %d\n", key, val)
		} else {
			fmt.Printf("%s not found\n", key)
		}
	}

	// Update a value
	if err := tbl.Insert("key-2", 999); err != nil {
		log.Fatalf("Failed to update key: %v", err)
	}
	if val, found := tbl.Lookup("key-2"); found {
		fmt.Printf("Updated key-2 => Value %d\n", val)
	}

	// Remove a value, then try again
	if err := tbl.Remove("key-4"); err != nil {
		log.Fatalf("Failed to remove key: %v", err)
	}
	if err := tbl.Remove("key-4"); errors.Is(err, chash.ErrNotFound) {
		fmt.Println("key-4 already removed")
	}

	s := tbl.Stats()
	fmt.Printf("Size %d, capacity %d, %d buckets used, longest chain %d\n",
		s.Size, s.Capacity, s.UsedBuckets, s.LongestChain)

	fmt.Println("Example completed successfully")
}
