package input

// Keys is the set of keys held down during one frame.
type Keys map[Key]struct{}

// NewKeys returns a set holding the given keys.
func NewKeys(keys ...Key) Keys {
	s := make(Keys, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Pressed reports whether key is held. A nil set holds nothing.
func (s Keys) Pressed(key Key) bool {
	_, ok := s[key]
	return ok
}

// Axis returns 1 if only pos is held, -1 if only neg is held, and 0 otherwise.
func (s Keys) Axis(pos, neg Key) float32 {
	var v float32
	if s.Pressed(pos) {
		v++
	}
	if s.Pressed(neg) {
		v--
	}
	return v
}

// Poll builds a set by asking isDown about every candidate key. The host passes its
// engine's key query (e.g. a wrapper around rl.IsKeyDown).
func Poll(isDown func(Key) bool, candidates ...Key) Keys {
	s := make(Keys)
	for _, k := range candidates {
		if isDown(k) {
			s[k] = struct{}{}
		}
	}
	return s
}
