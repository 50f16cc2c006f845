package args_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hymnist/hymnist/internal/args"
)

type fakeRegistrar struct {
	groups []args.Group
	lists  [][]args.Argument
	err    error
}

func (r *fakeRegistrar) AddArguments(group args.Group, list ...args.Argument) error {
	r.groups, r.lists = append(r.groups, group), append(r.lists, list)

	return r.err
}

type (
	emptyModule  struct{}
	lazyModule   struct{ args.UnimplementedModule }
	groupModule  struct{}
	brokenModule struct{}
)

func (emptyModule) Arguments() ([]args.Argument, error) { return []args.Argument{}, nil }

func (groupModule) Arguments() ([]args.Argument, error) {
	return []args.Argument{{Flags: []string{"--size"}, Type: args.Int}}, nil
}

func (groupModule) ArgumentGroup() args.Group {
	return args.Group{Name: "Sizes", Description: "Size things."}
}

func (brokenModule) Arguments() ([]args.Argument, error) {
	return []args.Argument{{Flags: []string{"-h"}}}, nil
}

func TestRegister(t *testing.T) {
	t.Parallel()

	var r = &fakeRegistrar{}

	require.NoError(t, args.Register(r, emptyModule{}, groupModule{}))

	assert.Equal(t, []args.Group{{}, {Name: "Sizes", Description: "Size things."}}, r.groups)
	require.Len(t, r.lists, 2)
	assert.Empty(t, r.lists[0])
	assert.Equal(t, []string{"--size"}, r.lists[1][0].Flags)
}

func TestRegister_NotImplemented(t *testing.T) {
	t.Parallel()

	var r = &fakeRegistrar{}

	err := args.Register(r, lazyModule{}, groupModule{})

	assert.ErrorIs(t, err, args.ErrNotImplemented)
	assert.Contains(t, err.Error(), "args_test.lazyModule")
	assert.Empty(t, r.groups, "nothing must be registered")
}

func TestRegister_RegistrarError(t *testing.T) {
	t.Parallel()

	var (
		wantErr = errors.New("boom")
		r       = &fakeRegistrar{err: wantErr}
	)

	assert.ErrorIs(t, args.Register(r, groupModule{}, emptyModule{}), wantErr)
	assert.Len(t, r.groups, 1)
}

func TestRegister_Provider(t *testing.T) {
	t.Parallel()

	p, _, _ := newTestProvider(t)

	assert.ErrorContains(t, args.Register(p, brokenModule{}), "conflicting option string: -h")
	require.NoError(t, args.Register(p, groupModule{}))

	assert.Contains(t, p.Help(), "\nSizes:\n  Size things.\n")
}
