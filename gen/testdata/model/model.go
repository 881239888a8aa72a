package model

import "time"

// Node is a binary tree node.
type Node struct {
	Name  string
	Left  *Node
	Right *Node
	Tags  map[string]string
}

// Item is deliberately not generated; it stays reachable through the
// reflection fallback.
type Item struct {
	SKU string
}

// Order exercises the remaining field kinds.
type Order struct {
	ID     int
	When   time.Time `visit:"with=TraverseTime"`
	Items  []Item
	Root   Node
	Secret string `visit:"skip"`
}
