// Package facade_test contains functional tests for the umbrella builder:
// live-snapshot conversion, facet commutativity, sequence accumulation, and
// snapshot detachment from the still-mutable builder.
package facade_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fluentforge/core"
	"github.com/katalvlaran/fluentforge/facade"
)

// TestFacade_LiveSnapshot converts before, between, and after facet visits;
// each snapshot must reflect exactly the calls made so far.
func TestFacade_LiveSnapshot(t *testing.T) {
	t.Parallel()

	b := facade.New()

	empty := b.Listing()
	require.Empty(t, empty.Name)
	require.NotNil(t, empty.Tags, "sequence default must be empty, never nil")
	require.Empty(t, empty.Tags)
	require.Zero(t, empty.Price, "unset scalar must be the type default")

	b.Details().Named("Mustang")
	mid := b.Listing()
	require.Equal(t, "Mustang", mid.Name)
	require.Zero(t, mid.Price, "pricing facet not visited yet")

	b.Pricing().InCurrency(core.USD).Costing(38_500)
	full := b.Listing()
	require.Equal(t, "Mustang", full.Name)
	require.Equal(t, core.USD, full.Currency)
	require.Equal(t, 38_500.0, full.Price)
}

// TestFacade_FacetOrderCommutes builds the same listing with facets visited
// in opposite orders; the snapshots must be equal.
func TestFacade_FacetOrderCommutes(t *testing.T) {
	t.Parallel()

	detailsFirst := facade.New().
		Details().Named("Mustang").Describe("1989 classic").Tagged("v8", "classic").Done().
		Pricing().InCurrency(core.GBP).Costing(30_000).Done().
		Listing()

	pricingFirst := facade.New().
		Pricing().Costing(30_000).InCurrency(core.GBP).Done().
		Details().Tagged("v8", "classic").Describe("1989 classic").Named("Mustang").Done().
		Listing()

	require.Equal(t, detailsFirst, pricingFirst)
}

// TestFacade_NoConversionCoupling: the pricing facet stores the price as
// given, independent of currency (ordering-free by construction).
func TestFacade_NoConversionCoupling(t *testing.T) {
	t.Parallel()

	l := facade.New().
		Pricing().Costing(100_000).InCurrency(core.EUR).Done().
		Listing()
	require.Equal(t, 100_000.0, l.Price, "facade must not convert")
	require.Equal(t, core.EUR, l.Currency)
}

// TestFacade_TagsAccumulateInOrder: repeated Tagged calls append, preserving
// call order across facet handles.
func TestFacade_TagsAccumulateInOrder(t *testing.T) {
	t.Parallel()

	b := facade.New()
	b.Details().Tagged("a").Tagged("b", "c")
	b.Details().Tagged("d") // a second handle onto the same shared listing
	require.Equal(t, []string{"a", "b", "c", "d"}, b.Listing().Tags)
}

// TestFacade_SnapshotDetached: snapshots and builder state share nothing;
// mutations on either side are invisible to the other.
func TestFacade_SnapshotDetached(t *testing.T) {
	t.Parallel()

	b := facade.New()
	b.Details().Named("Mustang").Tagged("v8")

	snap := b.Listing()
	b.Details().Tagged("classic").Named("Capri")

	require.Equal(t, "Mustang", snap.Name)
	require.Equal(t, []string{"v8"}, snap.Tags)

	snap.Tags[0] = "mutated"
	require.Equal(t, []string{"v8", "classic"}, b.Listing().Tags)
}

// TestFacade_RepeatedConversionIdempotent: converting twice with no calls in
// between yields field-equal listings.
func TestFacade_RepeatedConversionIdempotent(t *testing.T) {
	t.Parallel()

	b := facade.New()
	b.Details().Named("Mustang").Tagged("v8")
	require.Equal(t, b.Listing(), b.Listing())
}

// TestFacade_LastWriteWins: scalar setters repeated within and across facet
// handles keep the later value.
func TestFacade_LastWriteWins(t *testing.T) {
	t.Parallel()

	b := facade.New()
	b.Details().Named("Capri").Named("Mustang")
	b.Pricing().InCurrency(core.EUR).Costing(1).Done().
		Pricing().InCurrency(core.USD).Costing(38_500)

	l := b.Listing()
	require.Equal(t, "Mustang", l.Name)
	require.Equal(t, core.USD, l.Currency)
	require.Equal(t, 38_500.0, l.Price)
}
