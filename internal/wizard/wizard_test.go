package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresSteps(t *testing.T) {
	_, err := New(nil, nil)
	assert.ErrorIs(t, err, ErrNoSteps)

	_, err = New([]string{}, Draft{"x": 1})
	assert.ErrorIs(t, err, ErrNoSteps)
}

func TestEngine_PatchAndNavigate(t *testing.T) {
	e, err := New([]string{"A", "B"}, Draft{})
	require.NoError(t, err)

	e.Patch(Draft{"x": 1})
	e.Next()
	e.Patch(Draft{"y": 2})
	e.Prev()

	assert.Equal(t, Draft{"x": 1, "y": 2}, e.Draft())
	assert.Equal(t, 0, e.Step())
}

func TestEngine_PatchLastWriteWins(t *testing.T) {
	e, err := New([]string{"A"}, Draft{"title": "old"})
	require.NoError(t, err)

	e.Patch(Draft{"title": "mid"})
	got := e.Patch(Draft{"title": "new", "city": "Tunis"})

	assert.Equal(t, "new", got["title"])
	assert.Equal(t, "Tunis", got["city"])
}

func TestEngine_NextClampsAtLastStep(t *testing.T) {
	e, err := New([]string{"A", "B"}, nil)
	require.NoError(t, err)

	e.Next()
	e.Next()
	e.Next()
	assert.Equal(t, 1, e.Step())
	assert.True(t, e.IsLast())
}

func TestEngine_PrevClampsAtZero(t *testing.T) {
	e, err := New([]string{"A", "B"}, nil)
	require.NoError(t, err)

	e.Prev()
	assert.Equal(t, 0, e.Step())
}

func TestEngine_GotoClampsToBounds(t *testing.T) {
	e, err := New([]string{"A", "B", "C"}, nil)
	require.NoError(t, err)

	e.Goto(-5)
	assert.Equal(t, 0, e.Step())

	e.Goto(99)
	assert.Equal(t, 2, e.Step())

	e.Goto(1)
	assert.Equal(t, 1, e.Step())
	assert.Equal(t, "B", e.StepName())
}

func TestEngine_Percent(t *testing.T) {
	e, err := New([]string{"A", "B", "C"}, nil)
	require.NoError(t, err)

	assert.Equal(t, 33, e.Percent())
	e.Next()
	assert.Equal(t, 67, e.Percent())
	e.Next()
	assert.Equal(t, 100, e.Percent())
}

func TestEngine_DraftIsCopied(t *testing.T) {
	seed := Draft{"x": 1}
	e, err := New([]string{"A"}, seed)
	require.NoError(t, err)

	seed["x"] = 99
	v, ok := e.Get("x")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	// mutating a returned draft must not leak back into the engine
	d := e.Draft()
	d["x"] = 42
	v, _ = e.Get("x")
	assert.Equal(t, 1, v)
}
