package launcher

type State int

const (
	Idle State = iota
	Starting
	Active
	Restarting
	BeingKilled
	BeingForceKilled
	Finished
)

var stateNames = map[State]string{
	Idle:             "idle",
	Starting:         "starting",
	Active:           "active",
	Restarting:       "restarting",
	BeingKilled:      "being_killed",
	BeingForceKilled: "being_force_killed",
	Finished:         "finished",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "unknown"
}

// tearingDown reports whether teardown of the session is already in progress
func (s State) tearingDown() bool {
	return s == Restarting || s == BeingKilled || s == BeingForceKilled
}
