package bsearch_test

import (
	"fmt"
	"strings"

	"github.com/Johniel/skeleton/bsearch"
)

// ExampleSearchOrdered shows lookups and insertion points on a table of even numbers.
func ExampleSearchOrdered() {
	table := []int{0, 2, 4, 6, 8, 10, 12, 14, 16, 18, 20}

	for _, key := range []int{0, 1, 8, 9, 20, 21} {
		slot, found := bsearch.SearchOrdered(table, key)
		fmt.Printf("key=%d slot=%d found=%t\n", key, slot, found)
	}
	// Output:
	// key=0 slot=0 found=true
	// key=1 slot=1 found=false
	// key=8 slot=4 found=true
	// key=9 slot=5 found=false
	// key=20 slot=10 found=true
	// key=21 slot=11 found=false
}

// ExampleSearch demonstrates searching records by a key of another type.
func ExampleSearch() {
	type user struct {
		name string
		age  int
	}
	users := []user{{"alice", 31}, {"bob", 27}, {"dave", 45}}
	byName := func(name string, u user) int { return strings.Compare(name, u.name) }

	if slot, found := bsearch.Search(users, "bob", byName); found {
		fmt.Printf("bob is %d\n", users[slot].age)
	}
	slot, _ := bsearch.Search(users, "carol", byName)
	fmt.Printf("carol goes to slot %d\n", slot)
	// Output:
	// bob is 27
	// carol goes to slot 2
}

// ExampleInsert builds a sorted table one element at a time.
func ExampleInsert() {
	var words []string
	for _, w := range []string{"pear", "apple", "fig"} {
		words, _ = bsearch.Insert(words, w, strings.Compare)
	}
	fmt.Println(words)
	// Output:
	// [apple fig pear]
}
