// Package visitor implements the visitor pattern for traversing arbitrary
// Go data structures. A traversal drives a user supplied visitor across
// every reachable node of a value, firing an enter event before a node's
// children and a leave event after them.
//
// Types may implement Traversable/TraversableMut themselves, typically
// through code generated by visitorgen, or rely on the reflection engine
// (Traverse, TraverseMut) which walks any value with zero setup. Both paths
// produce the same event sequence for the same shape.
package visitor

// Visitor observes nodes during a read-only traversal.
// Enter is called before a node's children, Leave after them.
// Returning (false, nil) stops the whole traversal without error.
// Returning an error aborts the traversal and propagates the error.
type Visitor interface {
	Enter(node interface{}) (bool, error)
	Leave(node interface{}) (bool, error)
}

// VisitorMut observes nodes during a mutating traversal. Nodes are passed
// as pointers, so the visitor may update them in place while the walk is
// in progress. Control flow follows the same rules as Visitor.
type VisitorMut interface {
	EnterMut(node interface{}) (bool, error)
	LeaveMut(node interface{}) (bool, error)
}

// Traversable is implemented by types that know how to drive a visitor
// across their own nodes. The returned bool is the continue flag: false
// unwinds the enclosing traversal.
type Traversable interface {
	Traverse(v Visitor) (bool, error)
}

// TraversableMut is the mutable counterpart of Traversable.
type TraversableMut interface {
	TraverseMut(v VisitorMut) (bool, error)
}
