package catalog

// Status is the tag of a LoadState.
type Status int

const (
	// StatusIdle means the loader was never asked to load.
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "idle"
	}
}

// LoadState is one loader's status. Message is set only when Failed. Seq
// orders transitions across loaders of the same Session.
type LoadState struct {
	Status  Status
	Message string
	Seq     uint64
}

// Loading reports whether the loader has a request in flight.
func (s LoadState) Loading() bool { return s.Status == StatusLoading }

// Ready reports whether the last load succeeded.
func (s LoadState) Ready() bool { return s.Status == StatusReady }

// Failed reports whether the last load failed.
func (s LoadState) Failed() bool { return s.Status == StatusFailed }
