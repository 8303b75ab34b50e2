package component

// Script attaches a behavior script to a game object. Source is tengo code
// that must define an update function; see the script package for the
// contract. Path is an optional origin used as the compile cache key, falling
// back to the source itself when empty.
type Script struct {
	Path   string
	Source string
}

func (s *Script) Type() Type { return TypeScript }

func (s *Script) Clone() Component {
	c := *s
	return &c
}

// CacheKey identifies the compiled form of this script.
func (s *Script) CacheKey() string {
	if s.Path != "" {
		return s.Path
	}
	return s.Source
}
