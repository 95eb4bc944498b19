package mission

// Apply exposes the sequence-checked apply step to tests.
func (p *Poller) Apply(seq uint64, st Status) bool {
	_, _, ok := p.apply(seq, st)

	return ok
}
