package main

import (
	"fmt"
	"io"
	"reflect"

	"gopkg.in/yaml.v3"

	"github.com/theflywheel/chash"
)

type check struct {
	name string
	ok   func(tbl *chash.Table[any]) (bool, string)
}

func valueCheck(key string, want any) check {
	return check{
		name: fmt.Sprintf("lookup %s", key),
		ok: func(tbl *chash.Table[any]) (bool, string) {
			got, found := tbl.Lookup(key)
			if !found {
				return false, "not found"
			}
			if !reflect.DeepEqual(got, want) {
				return false, fmt.Sprintf("expected %v, got %v", want, got)
			}
			return true, ""
		},
	}
}

// runSelfTest exercises a fresh table, printing one line per failed check
// followed by a summary and a YAML dump of the final contents. It returns
// the number of failed checks and the total run.
func runSelfTest(w io.Writer) (failed, total int) {
	fmt.Fprintln(w, "Running tests...")

	tbl, err := chash.New[any]()
	if err != nil {
		fmt.Fprintf(w, "Failed to create table: %v\n", err)
		return 1, 1
	}
	defer tbl.Destroy()

	inserts := []struct {
		key   string
		value any
	}{
		{"a", 1},
		{"b", 3},
		{"c", 10},
		{"d", 10},
		{"pi", float32(3.14)},
		{"name", "steven"},
		{"numbers", []int{1, 2, 3}},
		{"string", "hello"},
		{"string", "test"},
	}
	for _, in := range inserts {
		if err := tbl.Insert(in.key, in.value); err != nil {
			fmt.Fprintf(w, "Insert %s failed: %v\n", in.key, err)
			return 1, 1
		}
	}

	checks := []check{
		valueCheck("a", 1),
		valueCheck("b", 3),
		valueCheck("c", 10),
		valueCheck("pi", float32(3.14)),
		valueCheck("name", "steven"),
		valueCheck("numbers", []int{1, 2, 3}),
		valueCheck("string", "test"),
		{"capacity doubled", func(tbl *chash.Table[any]) (bool, string) {
			return tbl.Cap() == chash.DefaultInitialCapacity*2, fmt.Sprintf("got %d", tbl.Cap())
		}},
		{"size after inserts", func(tbl *chash.Table[any]) (bool, string) {
			return tbl.Len() == 8, fmt.Sprintf("expected 8, got %d", tbl.Len())
		}},
		{"remove d", func(tbl *chash.Table[any]) (bool, string) {
			if err := tbl.Remove("d"); err != nil {
				return false, err.Error()
			}
			return true, ""
		}},
		{"d absent after remove", func(tbl *chash.Table[any]) (bool, string) {
			return !tbl.Contains("d"), "item exists after deletion"
		}},
		{"size after remove", func(tbl *chash.Table[any]) (bool, string) {
			return tbl.Len() == 7, fmt.Sprintf("deletion didn't decrement size: got %d", tbl.Len())
		}},
	}

	for i, c := range checks {
		total++
		if ok, detail := c.ok(tbl); !ok {
			failed++
			fmt.Fprintf(w, "Test %d (%s) failed! %s\n", i+1, c.name, detail)
		}
	}

	if err := dumpEntries(w, tbl); err != nil {
		fmt.Fprintf(w, "Failed to list items: %v\n", err)
	}

	if failed > 0 {
		fmt.Fprintf(w, "%d tests failed out of %d\n", failed, total)
	} else {
		fmt.Fprintln(w, "All tests successfully passed")
	}
	return failed, total
}

func dumpEntries(w io.Writer, tbl *chash.Table[any]) error {
	items := make(map[string]any, tbl.Len())
	for _, e := range tbl.Entries() {
		items[e.Key] = e.Value
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(map[string]any{"items": items}); err != nil {
		return err
	}
	return enc.Close()
}
