package domain

// Pin is one lockfile entry: the known-good revision for a target.
type Pin struct {
	Revision string `json:"revision"`
}

// Lockfile is the persisted mapping from target identifier to pinned
// revision. It is loaded once at first use per run and read-only afterwards;
// an absent lockfile behaves as an empty mapping.
type Lockfile struct {
	Pins map[string]Pin
}

// NewLockfile creates an empty Lockfile.
func NewLockfile() *Lockfile {
	return &Lockfile{Pins: make(map[string]Pin)}
}

// Revision returns the pinned revision for a target, if any.
func (l *Lockfile) Revision(target string) (string, bool) {
	if l == nil || l.Pins == nil {
		return "", false
	}
	pin, ok := l.Pins[target]
	if !ok || pin.Revision == "" {
		return "", false
	}
	return pin.Revision, true
}
