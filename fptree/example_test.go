package fptree_test

import (
	"fmt"

	"github.com/katalvlaran/fpgrowth/fptree"
)

// ExampleBuild builds a small basket tree and walks its header table.
//
// Scenario:
//
//	Four shopping baskets, min support 2. "jam" appears once and is dropped;
//	the rest is ordered bread(4) > milk(3) > butter(2).
func ExampleBuild() {
	tree, err := fptree.Build([][]string{
		{"milk", "bread"},
		{"bread", "butter", "jam"},
		{"butter", "milk", "bread"},
		{"bread", "milk"},
	}, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	h := tree.Header()
	for _, item := range h.Items() {
		fmt.Printf("%s support=%d nodes=%d\n", item, h.Support(item), h.ChainLength(item))
	}
	fmt.Println("tree nodes:", tree.Len())
	// Output:
	// bread support=4 nodes=1
	// milk support=3 nodes=1
	// butter support=2 nodes=2
	// tree nodes: 4
}

// ExampleTree_PrefixPaths prints the conditional pattern base of one item.
func ExampleTree_PrefixPaths() {
	tree, _ := fptree.Build([][]string{
		{"milk", "bread"},
		{"bread", "butter", "jam"},
		{"butter", "milk", "bread"},
		{"bread", "milk"},
	}, 2)

	for _, p := range tree.PrefixPaths("butter") {
		fmt.Println(p.Items, p.Count)
	}
	// Output:
	// [bread] 1
	// [bread milk] 1
}
