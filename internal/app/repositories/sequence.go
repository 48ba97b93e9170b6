package repositories

// Sequence hands out increasing IDs starting at 1
type Sequence struct {
	last int
}

// Next allocates the next ID
func (s *Sequence) Next() int {
	s.last++
	return s.last
}

// Current returns the last allocated ID, 0 when none was handed out
func (s *Sequence) Current() int {
	return s.last
}
