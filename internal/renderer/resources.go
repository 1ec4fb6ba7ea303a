package renderer

// Releaser is a GPU resource that can be freed. Release must be idempotent.
type Releaser interface {
	Release()
}

// Resources releases tracked resources in reverse acquisition order.
type Resources struct {
	stack []Releaser
}

// Track registers res for release and returns it.
func Track[T Releaser](r *Resources, res T) T {
	r.stack = append(r.stack, res)
	return res
}

func (r *Resources) Len() int {
	return len(r.stack)
}

func (r *Resources) ReleaseAll() {
	for i := len(r.stack) - 1; i >= 0; i-- {
		r.stack[i].Release()
	}
	r.stack = nil
}
