// Copyright 2025 Ghaith Chrit
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package trees

import (
	"fmt"
	"math/rand"
	"reflect"
	"sort"
	"testing"
)

// engines lists every Tree implementation under its display name, each
// with a fresh deterministic constructor.
func engines() []struct {
	Name string
	New  func() Tree
} {
	return []struct {
		Name string
		New  func() Tree
	}{
		{"avl", func() Tree { return NewAVLTree() }},
		{"rb", func() Tree { return NewRBTree() }},
		{"treap", func() Tree { return NewTreapWithSource(rand.NewSource(99), DefaultMaxPriority) }},
	}
}

func TestInorderMatchesSortedKeys(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	var keys []string
	for i := 0; i < 300; i++ {
		keys = append(keys, fmt.Sprintf("key-%04d", rng.Intn(10_000)))
	}

	for _, e := range engines() {
		t.Run(e.Name, func(t *testing.T) {
			tree := e.New()
			present := map[string]bool{}
			for _, key := range keys {
				inserted := tree.Insert(key)
				if inserted == present[key] {
					t.Fatalf("Insert(%q) = %t with present = %t", key, inserted, present[key])
				}
				present[key] = true
			}
			// Delete a third of them.
			for i := 0; i < len(keys); i += 3 {
				if tree.Delete(keys[i]) != present[keys[i]] {
					t.Fatalf("Delete(%q) disagreed with bookkeeping", keys[i])
				}
				present[keys[i]] = false
			}

			var want []string
			for key, ok := range present {
				if ok {
					want = append(want, key)
				}
			}
			sort.Strings(want)
			got := InorderKeys(tree.Root())
			if len(want) == 0 {
				want = nil
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("InorderKeys() has %d keys; want %d", len(got), len(want))
			}
			if err := tree.Validate(); err != nil {
				t.Errorf("Validate() = %v; want nil", err)
			}
		})
	}
}

func TestDuplicateInsertLeavesTreeUntouched(t *testing.T) {
	for _, e := range engines() {
		t.Run(e.Name, func(t *testing.T) {
			tree := e.New()
			for _, key := range []string{"m", "c", "t", "a", "e"} {
				tree.Insert(key)
			}
			before := InorderKeys(tree.Root())
			rotBefore := tree.TotalRotations()

			if tree.Insert("c") {
				t.Errorf("Insert(%q) on duplicate = true; want false", "c")
			}
			if got := InorderKeys(tree.Root()); !reflect.DeepEqual(got, before) {
				t.Errorf("duplicate insert changed keys: %v -> %v", before, got)
			}
			if tree.TotalRotations() != rotBefore {
				t.Errorf("duplicate insert changed rotation count: %d -> %d", rotBefore, tree.TotalRotations())
			}
		})
	}
}

func TestDeleteAbsentLeavesTreeUntouched(t *testing.T) {
	for _, e := range engines() {
		t.Run(e.Name, func(t *testing.T) {
			tree := e.New()
			for _, key := range []string{"m", "c", "t"} {
				tree.Insert(key)
			}
			before := InorderKeys(tree.Root())
			rotBefore := tree.TotalRotations()

			if tree.Delete("zzz") {
				t.Errorf("Delete(%q) on absent key = true; want false", "zzz")
			}
			if got := InorderKeys(tree.Root()); !reflect.DeepEqual(got, before) {
				t.Errorf("absent delete changed keys: %v -> %v", before, got)
			}
			if tree.TotalRotations() != rotBefore {
				t.Errorf("absent delete changed rotation count: %d -> %d", rotBefore, tree.TotalRotations())
			}
		})
	}
}

func TestRotationCountersPerOperation(t *testing.T) {
	for _, e := range engines() {
		t.Run(e.Name, func(t *testing.T) {
			tree := e.New()
			var keys []string
			for i := 0; i < 100; i++ {
				keys = append(keys, fmt.Sprintf("key-%03d", i))
			}
			for _, key := range keys {
				insBefore := tree.RotationsInsert()
				delBefore := tree.RotationsDelete()
				tree.Insert(key)
				if tree.RotationsDelete() != delBefore {
					t.Fatalf("Insert(%q) changed RotationsDelete", key)
				}
				if tree.RotationsInsert() < insBefore {
					t.Fatalf("RotationsInsert decreased during Insert(%q)", key)
				}
			}

			for _, key := range keys[:50] {
				insBefore := tree.RotationsInsert()
				delBefore := tree.RotationsDelete()
				tree.Delete(key)
				if tree.RotationsInsert() != insBefore {
					t.Fatalf("Delete(%q) changed RotationsInsert", key)
				}
				if tree.RotationsDelete() < delBefore {
					t.Fatalf("RotationsDelete decreased during Delete(%q)", key)
				}
			}

			if got := tree.TotalRotations(); got != tree.RotationsInsert()+tree.RotationsDelete() {
				t.Errorf("TotalRotations() = %d; want %d", got, tree.RotationsInsert()+tree.RotationsDelete())
			}
			tree.ResetMetrics()
			if tree.RotationsInsert() != 0 || tree.RotationsDelete() != 0 || tree.TotalRotations() != 0 {
				t.Errorf("counters after ResetMetrics = %d/%d; want 0/0", tree.RotationsInsert(), tree.RotationsDelete())
			}
		})
	}
}

func TestTwoChildrenDeleteScenario(t *testing.T) {
	want := []string{"a", "c", "e", "r", "t", "z"}
	for _, e := range engines() {
		t.Run(e.Name, func(t *testing.T) {
			tree := e.New()
			for _, key := range []string{"m", "c", "t", "a", "e", "r", "z"} {
				tree.Insert(key)
			}
			if !tree.Delete("m") {
				t.Fatalf("Delete(%q) = false; want true", "m")
			}
			if tree.Contains("m") {
				t.Errorf("Contains(%q) after delete = true; want false", "m")
			}
			if got := InorderKeys(tree.Root()); !reflect.DeepEqual(got, want) {
				t.Errorf("InorderKeys() = %v; want %v", got, want)
			}
			if err := tree.Validate(); err != nil {
				t.Errorf("Validate() = %v; want nil", err)
			}
		})
	}
}

func TestFullDrainReturnsToEmpty(t *testing.T) {
	orders := map[string]func([]string) []string{
		"insertion order": func(keys []string) []string { return keys },
		"reverse order": func(keys []string) []string {
			out := make([]string, len(keys))
			for i, key := range keys {
				out[len(keys)-1-i] = key
			}
			return out
		},
		"shuffled": func(keys []string) []string {
			out := append([]string(nil), keys...)
			rand.New(rand.NewSource(3)).Shuffle(len(out), func(i, j int) {
				out[i], out[j] = out[j], out[i]
			})
			return out
		},
	}

	var keys []string
	for i := 0; i < 60; i++ {
		keys = append(keys, fmt.Sprintf("key-%02d", i))
	}

	for _, e := range engines() {
		for orderName, order := range orders {
			t.Run(e.Name+"/"+orderName, func(t *testing.T) {
				tree := e.New()
				for _, key := range keys {
					tree.Insert(key)
				}
				for _, key := range order(keys) {
					if !tree.Delete(key) {
						t.Fatalf("Delete(%q) = false; want true", key)
					}
				}
				if tree.Root() != nil {
					t.Errorf("Root() after drain = %v; want nil", tree.Root())
				}
				if got := InorderKeys(tree.Root()); got != nil {
					t.Errorf("InorderKeys() after drain = %v; want nil", got)
				}
				if err := tree.Validate(); err != nil {
					t.Errorf("Validate() after drain = %v; want nil", err)
				}
			})
		}
	}
}
