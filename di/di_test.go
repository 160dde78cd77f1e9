package di_test

import (
	"errors"
	"testing"

	"github.com/sghaida/solid/di"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Toy types for wiring tests.
type clock struct{ zone string }

type greeter struct {
	clk  *clock
	name string
}

func TestNewAndValue(t *testing.T) {
	t.Parallel()

	c := di.New(func() *greeter { return &greeter{name: "g"} })

	require.NotNil(t, c)
	require.NotNil(t, c.Value())
	assert.Equal(t, "g", c.Value().name)
}

func TestValue_NilComponent(t *testing.T) {
	t.Parallel()

	var c *di.Component[greeter]
	assert.Nil(t, c.Value())
}

func TestBind_AttachesAndRecordsKey(t *testing.T) {
	t.Parallel()

	const keyClock di.Key = "clock"

	clk := di.New(func() *clock { return &clock{zone: "UTC"} })
	g := di.New(func() *greeter { return &greeter{} })

	err := g.Apply(di.Bind(keyClock, clk, func(g *greeter, c *clock) { g.clk = c }))
	require.NoError(t, err)

	assert.Same(t, clk.Value(), g.Value().clk)
	assert.True(t, g.Bound(keyClock))
	assert.False(t, g.Bound("other"))
}

func TestBind_Errors(t *testing.T) {
	t.Parallel()

	const key di.Key = "clock"

	validDep := di.New(func() *clock { return &clock{} })
	validAttach := func(g *greeter, c *clock) { g.clk = c }

	cases := []struct {
		name   string
		target *di.Component[greeter]
		dep    *di.Component[clock]
		attach func(*greeter, *clock)

		wantIs error
		wantAs any
	}{
		{
			name:   "nil target component",
			target: nil,
			dep:    validDep,
			attach: validAttach,
			wantIs: di.ErrNilComponent,
		},
		{
			name:   "nil dependency component",
			target: di.New(func() *greeter { return &greeter{} }),
			dep:    nil,
			attach: validAttach,
			wantAs: &di.NilDependencyError{},
		},
		{
			name:   "nil attach function",
			target: di.New(func() *greeter { return &greeter{} }),
			dep:    validDep,
			attach: nil,
			wantAs: &di.NilAttachError{},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := di.Bind(key, tc.dep, tc.attach)(tc.target)
			require.Error(t, err)

			if tc.wantIs != nil {
				assert.ErrorIs(t, err, tc.wantIs)
			}
			if tc.wantAs != nil {
				assert.ErrorAs(t, err, tc.wantAs)
			}
		})
	}
}

func TestBind_DuplicateKey(t *testing.T) {
	t.Parallel()

	const key di.Key = "clock"

	clk := di.New(func() *clock { return &clock{} })
	g := di.New(func() *greeter { return &greeter{} })

	bind := di.Bind(key, clk, func(g *greeter, c *clock) { g.clk = c })

	require.NoError(t, g.Apply(bind))
	err := g.Apply(bind)
	require.Error(t, err)

	var dup di.DuplicateKeyError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, key, dup.Key)
}

func TestApply_StopsOnFirstErrorAndSkipsNil(t *testing.T) {
	t.Parallel()

	const (
		keyClock di.Key = "clock"
		keyAgain di.Key = "clock-again"
	)

	clk := di.New(func() *clock { return &clock{} })
	g := di.New(func() *greeter { return &greeter{} })

	bindOK := di.Bind(keyClock, clk, func(g *greeter, c *clock) { g.clk = c })
	bindBad := di.Bind(keyAgain, (*di.Component[clock])(nil), func(g *greeter, c *clock) {})
	bindNever := di.Bind(di.Key("never"), clk, func(g *greeter, c *clock) {
		t.Fatal("binder after failure must not run")
	})

	err := g.Apply(nil, bindOK, bindBad, bindNever)
	require.Error(t, err)

	var nilDep di.NilDependencyError
	require.True(t, errors.As(err, &nilDep))
	assert.Equal(t, keyAgain, nilDep.Key)

	// First binder applied, failing one recorded nothing.
	assert.True(t, g.Bound(keyClock))
	assert.False(t, g.Bound(keyAgain))
}

func TestErrorStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `di: duplicate binding key "k"`, di.DuplicateKeyError{Key: "k"}.Error())
	assert.Equal(t, `di: nil dependency for key "k"`, di.NilDependencyError{Key: "k"}.Error())
	assert.Equal(t, `di: nil attach function for key "k"`, di.NilAttachError{Key: "k"}.Error())
}
