package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func ids(emps []Employee) []string {
	out := make([]string, 0, len(emps))
	for _, e := range emps {
		out = append(out, e.ID)
	}
	return out
}

func TestDirectory_ReportingChain(t *testing.T) {
	d := NewDirectory([]Employee{
		{ID: "ceo"},
		{ID: "vp", ManagerID: ptr("ceo")},
		{ID: "lead", ManagerID: ptr("vp")},
		{ID: "dev", ManagerID: ptr("lead")},
	})

	assert.Equal(t, []string{"lead", "vp", "ceo"}, ids(d.ReportingChain("dev")))
	assert.Empty(t, d.ReportingChain("ceo"))
	assert.Nil(t, d.ReportingChain("unknown"))
}

func TestDirectory_ReportingChain_StopsOnCycle(t *testing.T) {
	d := NewDirectory([]Employee{
		{ID: "a", ManagerID: ptr("b")},
		{ID: "b", ManagerID: ptr("c")},
		{ID: "c", ManagerID: ptr("b")},
	})

	assert.Equal(t, []string{"b", "c"}, ids(d.ReportingChain("a")))
}

func TestDirectory_ReportingChain_MissingManager(t *testing.T) {
	d := NewDirectory([]Employee{
		{ID: "a", ManagerID: ptr("gone")},
	})

	assert.Empty(t, d.ReportingChain("a"))
}

func TestDirectory_Subordinates(t *testing.T) {
	d := NewDirectory([]Employee{
		{ID: "ceo"},
		{ID: "vp2", ManagerID: ptr("ceo")},
		{ID: "vp1", ManagerID: ptr("ceo")},
		{ID: "dev", ManagerID: ptr("vp1")},
	})

	assert.Equal(t, []string{"vp1", "vp2"}, ids(d.Subordinates("ceo")))
	assert.Equal(t, []string{"vp1", "vp2", "dev"}, ids(d.AllSubordinates("ceo")))
	assert.Empty(t, d.Subordinates("dev"))
}

func TestDirectory_AllSubordinates_Cycle(t *testing.T) {
	d := NewDirectory([]Employee{
		{ID: "a", ManagerID: ptr("b")},
		{ID: "b", ManagerID: ptr("a")},
	})

	got := d.AllSubordinates("a")

	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}
