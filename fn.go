package visitor

// FnVisitor adapts a pair of functions into a Visitor that only fires for
// nodes of type T. Nodes of any other type pass through untouched.
type FnVisitor[T any] struct {
	enter func(T) (bool, error)
	leave func(T) (bool, error)
}

// Enter implements Visitor.
func (f *FnVisitor[T]) Enter(node interface{}) (bool, error) {
	if f.enter == nil {
		return true, nil
	}
	item, ok := node.(T)
	if !ok {
		return true, nil
	}
	return f.enter(item)
}

// Leave implements Visitor.
func (f *FnVisitor[T]) Leave(node interface{}) (bool, error) {
	if f.leave == nil {
		return true, nil
	}
	item, ok := node.(T)
	if !ok {
		return true, nil
	}
	return f.leave(item)
}

// On creates a visitor that calls enter and leave for nodes of type T only.
// Either function may be nil.
func On[T any](enter, leave func(T) (bool, error)) *FnVisitor[T] {
	return &FnVisitor[T]{enter: enter, leave: leave}
}

// OnEnter is like On, but only fires on entering a node.
func OnEnter[T any](enter func(T) (bool, error)) *FnVisitor[T] {
	return &FnVisitor[T]{enter: enter}
}

// OnLeave is like On, but only fires on leaving a node.
func OnLeave[T any](leave func(T) (bool, error)) *FnVisitor[T] {
	return &FnVisitor[T]{leave: leave}
}

// FnVisitorMut adapts a pair of functions into a VisitorMut that only
// fires for nodes of type *T.
type FnVisitorMut[T any] struct {
	enter func(*T) (bool, error)
	leave func(*T) (bool, error)
}

// EnterMut implements VisitorMut.
func (f *FnVisitorMut[T]) EnterMut(node interface{}) (bool, error) {
	if f.enter == nil {
		return true, nil
	}
	item, ok := node.(*T)
	if !ok {
		return true, nil
	}
	return f.enter(item)
}

// LeaveMut implements VisitorMut.
func (f *FnVisitorMut[T]) LeaveMut(node interface{}) (bool, error) {
	if f.leave == nil {
		return true, nil
	}
	item, ok := node.(*T)
	if !ok {
		return true, nil
	}
	return f.leave(item)
}

// OnMut creates a mutable visitor that calls enter and leave for nodes of
// type *T only. Either function may be nil.
func OnMut[T any](enter, leave func(*T) (bool, error)) *FnVisitorMut[T] {
	return &FnVisitorMut[T]{enter: enter, leave: leave}
}

// OnEnterMut is like OnMut, but only fires on entering a node.
func OnEnterMut[T any](enter func(*T) (bool, error)) *FnVisitorMut[T] {
	return &FnVisitorMut[T]{enter: enter}
}

// OnLeaveMut is like OnMut, but only fires on leaving a node.
func OnLeaveMut[T any](leave func(*T) (bool, error)) *FnVisitorMut[T] {
	return &FnVisitorMut[T]{leave: leave}
}
