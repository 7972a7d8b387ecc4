package registry_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paygate-dev/paygate-host-sdk/gateway"
	"github.com/paygate-dev/paygate-host-sdk/registry"
)

// fakeGateway is a minimal gateway.Gateway for registry tests.
type fakeGateway struct {
	name string
}

func (f *fakeGateway) Name() string { return f.name }

func (f *fakeGateway) Deposit(ctx context.Context, amount int64) (string, error) {
	return fmt.Sprintf("Deposited %d into %s", amount, f.name), nil
}

func Test_Registry_RegisterAndLookup(t *testing.T) {
	reg := registry.NewRegistry()

	acme := &fakeGateway{name: "acme_bank"}
	require.NoError(t, reg.Register(acme))

	got, err := reg.Lookup("acme_bank")
	require.NoError(t, err)

	// Lookup must be identity-preserving, not just equal.
	assert.Same(t, gateway.Gateway(acme), got)
}

func Test_Registry_Lookup_NotFound(t *testing.T) {
	reg := registry.NewRegistry()

	_, err := reg.Lookup("unknown_bank")
	require.Error(t, err)
	assert.ErrorIs(t, err, registry.ErrGatewayNotFound)

	var nfe *registry.NotFoundError
	require.ErrorAs(t, err, &nfe)
	assert.Equal(t, "unknown_bank", nfe.Name)
}

func Test_Registry_Lookup_Idempotent(t *testing.T) {
	reg := registry.NewRegistry()
	require.NoError(t, reg.Register(&fakeGateway{name: "acme_bank"}))

	first, err := reg.Lookup("acme_bank")
	require.NoError(t, err)

	for range 3 {
		again, err := reg.Lookup("acme_bank")
		require.NoError(t, err)
		assert.Same(t, first, again)
	}
	assert.Equal(t, 1, reg.Len())
}

func Test_Registry_DuplicateName_FailsByDefault(t *testing.T) {
	reg := registry.NewRegistry()

	first := &fakeGateway{name: "acme_bank"}
	second := &fakeGateway{name: "acme_bank"}

	require.NoError(t, reg.Register(first))
	err := reg.Register(second)
	require.Error(t, err)
	assert.ErrorIs(t, err, registry.ErrDuplicateName)

	// The original registration survives.
	got, err := reg.Lookup("acme_bank")
	require.NoError(t, err)
	assert.Same(t, gateway.Gateway(first), got)
}

func Test_Registry_DuplicateName_Overwrite(t *testing.T) {
	reg := registry.NewRegistry(registry.WithOverwrite(true))

	first := &fakeGateway{name: "acme_bank"}
	second := &fakeGateway{name: "acme_bank"}

	require.NoError(t, reg.Register(first))
	require.NoError(t, reg.Register(second))

	got, err := reg.Lookup("acme_bank")
	require.NoError(t, err)
	assert.Same(t, gateway.Gateway(second), got)
	assert.Equal(t, 1, reg.Len())
}

func Test_Registry_InvalidName_Rejected(t *testing.T) {
	reg := registry.NewRegistry()

	err := reg.Register(&fakeGateway{name: "Not A Name"})
	require.Error(t, err)
	assert.ErrorIs(t, err, registry.ErrInvalidGateway)
	assert.Equal(t, 0, reg.Len())
}

func Test_Registry_All_PreservesRegistrationOrder(t *testing.T) {
	reg := registry.NewRegistry()

	names := []string{"zeta_bank", "acme_bank", "globex"}
	for _, n := range names {
		require.NoError(t, reg.Register(&fakeGateway{name: n}))
	}

	var got []string
	for name, g := range reg.All() {
		got = append(got, name)
		assert.Equal(t, name, g.Name())
	}
	assert.Equal(t, names, got)

	// Restartable: a second range yields the same walk.
	var again []string
	for name := range reg.All() {
		again = append(again, name)
	}
	assert.Equal(t, names, again)
}

func Test_Registry_All_EarlyBreak(t *testing.T) {
	reg := registry.NewRegistry()
	require.NoError(t, reg.Register(&fakeGateway{name: "acme_bank"}))
	require.NoError(t, reg.Register(&fakeGateway{name: "globex"}))

	count := 0
	for range reg.All() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func Test_Registry_LookupDistinguishesByName(t *testing.T) {
	reg := registry.NewRegistry()

	acme := &fakeGateway{name: "acme_bank"}
	globex := &fakeGateway{name: "globex"}
	require.NoError(t, reg.Register(acme))
	require.NoError(t, reg.Register(globex))

	gotAcme, err := reg.Lookup("acme_bank")
	require.NoError(t, err)
	gotGlobex, err := reg.Lookup("globex")
	require.NoError(t, err)

	assert.Same(t, gateway.Gateway(acme), gotAcme)
	assert.Same(t, gateway.Gateway(globex), gotGlobex)
	assert.NotSame(t, gotAcme, gotGlobex)
}

func Test_Registry_Freeze(t *testing.T) {
	reg := registry.NewRegistry()
	require.NoError(t, reg.Register(&fakeGateway{name: "acme_bank"}))

	reg.Freeze()
	reg.Freeze() // idempotent

	err := reg.Register(&fakeGateway{name: "globex"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, registry.ErrRegistryFrozen))

	// Reads keep working on a frozen registry.
	_, err = reg.Lookup("acme_bank")
	assert.NoError(t, err)
	assert.Equal(t, 1, reg.Len())
}

func Test_Registry_DepositScenario(t *testing.T) {
	reg := registry.NewRegistry()
	require.NoError(t, reg.Register(&fakeGateway{name: "acme_bank"}))

	g, err := reg.Lookup("acme_bank")
	require.NoError(t, err)

	result, err := g.Deposit(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, "Deposited 100 into acme_bank", result)
}

func Test_Registry_ConcurrentLookups(t *testing.T) {
	reg := registry.NewRegistry()
	for i := range 8 {
		require.NoError(t, reg.Register(&fakeGateway{name: fmt.Sprintf("bank_%d", i)}))
	}
	reg.Freeze()

	done := make(chan struct{})
	for range 4 {
		go func() {
			defer func() { done <- struct{}{} }()
			for i := range 100 {
				name := fmt.Sprintf("bank_%d", i%8)
				g, err := reg.Lookup(name)
				if err != nil || g.Name() != name {
					t.Errorf("lookup %s failed: %v", name, err)
					return
				}
				for range reg.All() {
				}
			}
		}()
	}
	for range 4 {
		<-done
	}
}
