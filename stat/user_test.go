package stat

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserStat_ListInvokesCallback(t *testing.T) {
	n := 0
	u := NewUserStat("calls", func() string {
		n++
		return strconv.Itoa(n)
	}, "callback invocations")
	defer u.Close()

	require.Equal(t, "1", findUserStat(t, "calls").Value)
	require.Equal(t, "2", findUserStat(t, "calls").Value)
}

func TestUserStat_CloseRemoves(t *testing.T) {
	u := NewUserStat("transient", func() string { return "x" }, "")
	u.Close()
	for _, e := range ListUserStats() {
		require.NotEqual(t, "transient", e.Name)
	}
}

func TestUserStat_OrderedByName(t *testing.T) {
	b := NewUserStat("user-b", func() string { return "" }, "")
	defer b.Close()
	a := NewUserStat("user-a", func() string { return "" }, "")
	defer a.Close()

	var prev string
	for _, e := range ListUserStats() {
		require.LessOrEqual(t, prev, e.Name)
		prev = e.Name
	}
}

func TestNewUserStat_Validation(t *testing.T) {
	require.Panics(t, func() { NewUserStat("", func() string { return "" }, "") })
	require.Panics(t, func() { NewUserStat("nilfn", nil, "") })
}

func findUserStat(t *testing.T, name string) UserStatEntry {
	t.Helper()
	for _, e := range ListUserStats() {
		if e.Name == name {
			return e
		}
	}
	t.Fatalf("user stat %q not listed", name)
	return UserStatEntry{}
}
