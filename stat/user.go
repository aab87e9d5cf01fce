package stat

// UserStat is a free-form stat: a name bound to a callback that renders
// the current value as a string. There is no per-goroutine aggregation,
// the callback is the single source of truth and is invoked once per
// report. User stats stay active even in nostat builds, they carry no
// hot-path cost.
type UserStat struct {
	name string
	desc string
	fn   func() string
}

var userDir = newDirectory[*UserStat]()

// NewUserStat registers a callback-backed stat in the process-wide user
// stat directory. Panics on an empty name or nil callback.
func NewUserStat(name string, fn func() string, desc string) *UserStat {
	mustName(name)
	if fn == nil {
		panic("stat: nil user stat callback")
	}
	u := &UserStat{name: name, desc: desc, fn: fn}
	userDir.add(u)
	return u
}

func (u *UserStat) Name() string { return u.name }
func (u *UserStat) Desc() string { return u.desc }

// Value invokes the callback.
func (u *UserStat) Value() string { return u.fn() }

// Close removes the stat from the directory. Tied to the callback
// owner's lifetime: close before the state the callback reads goes away.
func (u *UserStat) Close() {
	userDir.remove(u)
}

// ListUserStats enumerates registered user stats ordered by name. The
// directory is snapshotted under its lock; callbacks run outside it.
func ListUserStats() []UserStatEntry {
	entries := userDir.snapshot()
	out := make([]UserStatEntry, 0, len(entries))
	for _, u := range entries {
		out = append(out, UserStatEntry{Name: u.Name(), Desc: u.Desc(), Value: u.Value()})
	}
	return out
}
