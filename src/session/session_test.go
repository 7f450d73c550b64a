package session

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EntangledQuantum/CSV-Viewer/src/table"
)

const first = "x,y,z\n1,2,3\n2,4,6\n3,6,9\n"

func opened(t *testing.T) *Session {
	t.Helper()
	s := New()
	require.NoError(t, s.OpenReader("first.csv", strings.NewReader(first)))
	return s
}

func TestSession_InitialState(t *testing.T) {
	s := New()
	assert.Nil(t, s.Table())
	assert.Empty(t, s.Charts())
	assert.Equal(t, "No file loaded", s.Status())
	_, err := s.AddChart()
	assert.ErrorIs(t, err, ErrNoTable)
}

func TestSession_OpenAddsOneChart(t *testing.T) {
	s := opened(t)
	assert.Equal(t, "Loaded: first.csv with 3 rows and 3 columns", s.Status())
	charts := s.Charts()
	require.Len(t, charts, 1)
	c := charts[0]
	assert.NoError(t, c.Err())
	assert.Equal(t, "x", c.Config().X)
	assert.Equal(t, "y", c.Config().Y)
	assert.Equal(t, []float64{2, 4, 6}, c.Spec().Raw().Y)
}

func TestSession_FailedOpenKeepsPriorState(t *testing.T) {
	s := opened(t)
	c, err := s.AddChart()
	require.NoError(t, err)
	before := s.Table()

	err = s.OpenReader("bad.csv", strings.NewReader("only\n1\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, table.ErrFormat)
	assert.Same(t, before, s.Table())
	assert.Len(t, s.Charts(), 2)
	_, ok := s.Chart(c.ID())
	assert.True(t, ok)

	err = s.Open(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, table.ErrFormat)
	assert.Same(t, before, s.Table())
}

func TestSession_SuccessfulOpenInvalidatesCharts(t *testing.T) {
	s := opened(t)
	_, err := s.AddChart()
	require.NoError(t, err)
	old := s.Charts()

	path := filepath.Join(t.TempDir(), "second.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,1\n"), 0o644))
	require.NoError(t, s.Open(path))

	assert.Equal(t, "Loaded: second.csv with 1 rows and 2 columns", s.Status())
	charts := s.Charts()
	require.Len(t, charts, 1)
	for _, c := range old {
		_, ok := s.Chart(c.ID())
		assert.False(t, ok, "chart %d survived the reload", c.ID())
	}
	assert.Equal(t, "a", charts[0].Config().X)
}

func TestChart_UpdateKeepsPreviousSpecOnError(t *testing.T) {
	s := opened(t)
	sibling, err := s.AddChart()
	require.NoError(t, err)
	c := s.Charts()[0]

	require.NoError(t, c.Update(c.Config().WithY("z")))
	good := c.Spec()
	assert.Equal(t, "z vs x", good.Title)

	err = c.Update(c.Config().WithY("nope"))
	require.Error(t, err)
	assert.Equal(t, err, c.Err())
	assert.Equal(t, good, c.Spec())
	assert.Equal(t, "z", c.Config().Y)

	assert.NoError(t, sibling.Err())
	assert.Equal(t, "y vs x", sibling.Spec().Title)
}

func TestSession_RemoveChart(t *testing.T) {
	s := opened(t)
	a := s.Charts()[0]
	b, err := s.AddChart()
	require.NoError(t, err)
	assert.NotEqual(t, a.ID(), b.ID())

	assert.True(t, s.RemoveChart(a.ID()))
	assert.False(t, s.RemoveChart(a.ID()))
	charts := s.Charts()
	require.Len(t, charts, 1)
	assert.Equal(t, b.ID(), charts[0].ID())
}
