package workspace

// dependencySet keeps registered dependencies in registration order.
type dependencySet struct {
	names []string
	opts  map[string]DependencyOptions
}

func newDependencySet() *dependencySet {
	return &dependencySet{opts: make(map[string]DependencyOptions)}
}

// add records opts for name unless name is already present.
func (s *dependencySet) add(name string, opts DependencyOptions) bool {
	if _, ok := s.opts[name]; ok {
		return false
	}
	s.names = append(s.names, name)
	s.opts[name] = opts
	return true
}

func (s *dependencySet) get(name string) (DependencyOptions, bool) {
	opts, ok := s.opts[name]
	return opts, ok
}

// each calls fn for every dependency in registration order.
func (s *dependencySet) each(fn func(name string, opts DependencyOptions)) {
	for _, name := range s.names {
		fn(name, s.opts[name])
	}
}
