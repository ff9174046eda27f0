package sproute

// Trigger supplies candidate paths from the host environment: link clicks,
// history pops, the initial load, anything that signals a navigation intent.
// The App consumes them one at a time (see App.Run).
type Trigger interface {
	Paths() <-chan string
}

// ChanTrigger is a channel-backed Trigger for hosts that deliver navigation
// intents programmatically.
type ChanTrigger struct {
	paths chan string
}

// NewChanTrigger creates a ChanTrigger. A small buffer decouples the host's
// event dispatch from navigation resolution.
func NewChanTrigger(buffer int) *ChanTrigger {
	return &ChanTrigger{paths: make(chan string, buffer)}
}

// Paths implements Trigger.
func (t *ChanTrigger) Paths() <-chan string {
	return t.paths
}

// Fire submits a candidate path.
func (t *ChanTrigger) Fire(pathEtc string) {
	t.paths <- pathEtc
}

// Close stops the trigger; App.Run returns once pending paths drain.
func (t *ChanTrigger) Close() {
	close(t.paths)
}
