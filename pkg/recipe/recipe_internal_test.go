package recipe

import (
	"context"
	"errors"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepare(t *testing.T) {
	tcs := map[string]struct {
		bev      func(j *journal) Beverage
		expected []string
	}{
		"default hook": {
			bev: func(j *journal) Beverage {
				return &spyBeverage{name: "spy", journal: j}
			},
			expected: []string{"Boiling water", "brewing spy", "Pouring into cup", "condiments for spy"},
		},
		"hook returns true": {
			bev: func(j *journal) Beverage {
				return hookedBeverage{&spyBeverage{name: "spy", journal: j, hookFunc: func() bool { return true }}}
			},
			expected: []string{"Boiling water", "brewing spy", "Pouring into cup", "hook", "condiments for spy"},
		},
		"hook returns false": {
			bev: func(j *journal) Beverage {
				return hookedBeverage{&spyBeverage{name: "spy", journal: j, hookFunc: func() bool { return false }}}
			},
			expected: []string{"Boiling water", "brewing spy", "Pouring into cup", "hook"},
		},
		"no name and no hook": {
			bev: func(*journal) Beverage {
				return plainBeverage{}
			},
			expected: []string{"Boiling water", "plain brew", "Pouring into cup", "plain condiments"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			j := &journal{}
			rcp, err := New(j)
			require.NoError(t, err)

			err = rcp.Prepare(context.Background(), tc.bev(j))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, j.Messages())
		})
	}
}

func TestPrepareCondimentsOncePerCall(t *testing.T) {
	j := &journal{}
	rcp, err := New(j)
	require.NoError(t, err)
	bev := &spyBeverage{name: "spy"}

	for i := 0; i < 3; i++ {
		j.Reset()
		require.NoError(t, rcp.Prepare(context.Background(), bev))

		count := 0
		for _, msg := range j.Messages() {
			if msg == "condiments for spy" {
				count++
			}
		}
		assert.Equal(t, 1, count)
	}
}

func TestPrepareFixedStepsIdenticalAcrossBeverages(t *testing.T) {
	bevs := []Beverage{
		&spyBeverage{name: "one"},
		hookedBeverage{&spyBeverage{name: "two", hookFunc: func() bool { return false }}},
		plainBeverage{},
	}

	for _, bev := range bevs {
		rec := &Recorder{}
		rcp, err := New(rec)
		require.NoError(t, err)
		require.NoError(t, rcp.Prepare(context.Background(), bev))

		msgs := rec.Messages()
		require.GreaterOrEqual(t, len(msgs), 3)
		assert.Equal(t, "Boiling water", msgs[0])
		assert.Equal(t, "Pouring into cup", msgs[2])
	}
}

func TestPrepareBrewError(t *testing.T) {
	rec := &Recorder{}
	rcp, err := New(rec)
	require.NoError(t, err)

	err = rcp.Prepare(context.Background(), &spyBeverage{name: "spy", brewErr: assert.AnError})
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, assert.AnError, pkgerrors.Cause(err))
	assert.Contains(t, err.Error(), "unable to brew")
	assert.Equal(t, []string{"Boiling water"}, rec.Messages())
}

func TestPrepareAddCondimentsError(t *testing.T) {
	rec := &Recorder{}
	rcp, err := New(rec)
	require.NoError(t, err)

	err = rcp.Prepare(context.Background(), &spyBeverage{name: "spy", addErr: assert.AnError})
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, []string{"Boiling water", "brewing spy", "Pouring into cup"}, rec.Messages())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, assert.AnError
}

func TestPrepareNotifierError(t *testing.T) {
	rcp, err := New(NewWriterNotifier(failingWriter{}))
	require.NoError(t, err)

	err = rcp.Prepare(context.Background(), &spyBeverage{name: "spy"})
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "unable to boil water")
}

func TestPrepareNilBeverage(t *testing.T) {
	rec := &Recorder{}
	rcp, err := New(rec)
	require.NoError(t, err)

	err = rcp.Prepare(context.Background(), nil)
	assert.ErrorIs(t, err, ErrBeverageMustBeSet)
	assert.Empty(t, rec.Messages())
}

func TestNewNilNotifier(t *testing.T) {
	_, err := New(nil)
	assert.True(t, errors.Is(err, ErrNotifierMustBeSet))
}

func TestOptions(t *testing.T) {
	t.Run("lifecycle with condiments", func(t *testing.T) {
		spy := &optionSpy{}
		rcp, err := New(&Recorder{}, spy)
		require.NoError(t, err)
		assert.Equal(t, 1, spy.initiated)

		require.NoError(t, rcp.Prepare(context.Background(), &spyBeverage{name: "spy"}))
		require.NoError(t, rcp.Finish())

		assert.Equal(t, []string{
			"before start -> boil water",
			"after boil water",
			"before boil water -> spy/brew",
			"after spy/brew",
			"before spy/brew -> pour in cup",
			"after pour in cup",
			"before pour in cup -> spy/add condiments",
			"after spy/add condiments",
			"prepared spy last spy/add condiments",
		}, spy.Events())
		assert.Equal(t, 1, spy.finished)
	})

	t.Run("lifecycle without condiments", func(t *testing.T) {
		spy := &optionSpy{}
		rcp, err := New(&Recorder{}, spy)
		require.NoError(t, err)

		bev := hookedBeverage{&spyBeverage{name: "spy", hookFunc: func() bool { return false }}}
		require.NoError(t, rcp.Prepare(context.Background(), bev))

		events := spy.Events()
		assert.Equal(t, []string{
			"skipped spy/add condiments",
			"prepared spy last pour in cup",
		}, events[len(events)-2:])
	})

	t.Run("new fails", func(t *testing.T) {
		_, err := New(&Recorder{}, &optionSpy{failOn: "new"})
		assert.Error(t, err)
	})

	t.Run("before step fails", func(t *testing.T) {
		rec := &Recorder{}
		rcp, err := New(rec, &optionSpy{failOn: "before boil water -> spy/brew"})
		require.NoError(t, err)

		err = rcp.Prepare(context.Background(), &spyBeverage{name: "spy"})
		assert.Error(t, err)
		assert.Equal(t, []string{"Boiling water"}, rec.Messages())
	})

	t.Run("finish fails", func(t *testing.T) {
		rcp, err := New(&Recorder{}, &optionSpy{failOn: "finish"})
		require.NoError(t, err)
		assert.Error(t, rcp.Finish())
	})
}

func TestBeverageName(t *testing.T) {
	assert.Equal(t, "spy", BeverageName(&spyBeverage{name: "spy"}))
	assert.Equal(t, "plainBeverage", BeverageName(plainBeverage{}))
	assert.Equal(t, "plainBeverage", BeverageName(&plainBeverage{}))
}

func TestWantsCondiments(t *testing.T) {
	assert.True(t, WantsCondiments(plainBeverage{}))
	assert.True(t, DefaultHook{}.CustomerWantsCondiments())
	assert.False(t, WantsCondiments(hookedBeverage{&spyBeverage{hookFunc: func() bool { return false }}}))
}
