package stat

// CounterEntry is one row of a counter report.
type CounterEntry struct {
	Name  string
	Desc  string
	Total CounterAgg
}

// TimerEntry is one row of a timer report.
type TimerEntry struct {
	Name string
	Desc string
	Agg  TimerAgg
}

// UserStatEntry is one row of a user stat report. Value is the callback's
// return captured when the entry was listed.
type UserStatEntry struct {
	Name  string
	Desc  string
	Value string
}
