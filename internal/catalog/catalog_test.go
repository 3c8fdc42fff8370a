package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServicesCatalog(t *testing.T) {
	assert.Len(t, Services(), 13)

	svc, ok := ServiceByID("immigration")
	require.True(t, ok)
	assert.Equal(t, "Immigration", svc.Title)

	_, ok = ServiceByID("conveyancing")
	assert.False(t, ok)
}

func TestDurationPricedServices(t *testing.T) {
	for _, id := range []string{"immigration", "personal-injury", "family-solicitors"} {
		pkgs := PackagesFor(id)
		require.Len(t, pkgs, 2, "service %s", id)
		assert.Equal(t, "30-min", pkgs[0].ID)
		assert.Equal(t, "30 Mins", pkgs[0].Label())
		assert.Equal(t, "£60.00", pkgs[0].PriceLabel())
		assert.Equal(t, "1-hour", pkgs[1].ID)
		assert.Equal(t, "£100.00", pkgs[1].PriceLabel())
	}
}

func TestTwoSignatoryServices(t *testing.T) {
	for _, id := range []string{"occupier-consent", "deposit-gift"} {
		pkgs := PackagesFor(id)
		require.Len(t, pkgs, 2, "service %s", id)
		assert.Equal(t, "1 Person", pkgs[0].Label())
		assert.Equal(t, "£150.00", pkgs[0].PriceLabel())
		assert.Equal(t, "2 Persons", pkgs[1].Label())
		assert.Equal(t, "£270.00", pkgs[1].PriceLabel())
		assert.Equal(t, "10%", pkgs[1].Savings)
	}
}

func TestPersonPricedServices(t *testing.T) {
	pkgs := PackagesFor("buy-to-let")
	require.Len(t, pkgs, 4)
	assert.Equal(t, "£150.00", pkgs[0].PriceLabel())
	assert.Equal(t, "£270.00", pkgs[1].PriceLabel())
	assert.Equal(t, "£382.50", pkgs[2].PriceLabel())
	assert.Equal(t, "£480.00", pkgs[3].PriceLabel())
	assert.Equal(t, "20%", pkgs[3].Savings)
	assert.Equal(t, "4 Persons", pkgs[3].Label())
}

func TestPackagesForUnknownService(t *testing.T) {
	assert.Nil(t, PackagesFor("nope"))
}

func TestPackageByIDScopedToService(t *testing.T) {
	// Tier tables do not leak across pricing models.
	_, ok := PackageByID("immigration", "2-persons")
	assert.False(t, ok)

	_, ok = PackageByID("buy-to-let", "30-min")
	assert.False(t, ok)

	_, ok = PackageByID("occupier-consent", "3-persons")
	assert.False(t, ok)

	pkg, ok := PackageByID("immigration", "30-min")
	require.True(t, ok)
	assert.Equal(t, "60.00", pkg.PriceString())
}

func TestSolicitors(t *testing.T) {
	require.Len(t, Solicitors(), 2)

	dennis, ok := SolicitorByID("dennis-brewer")
	require.True(t, ok)
	assert.Len(t, dennis.TimeSlots, 22)

	kevin, ok := SolicitorByID("kevin-ogle")
	require.True(t, ok)
	assert.Len(t, kevin.TimeSlots, 16)
	assert.Equal(t, "9:00 - 9:15", kevin.TimeSlots[0])

	_, ok = SolicitorByID("nobody")
	assert.False(t, ok)
}

func TestLenders(t *testing.T) {
	l := Lenders()
	assert.Len(t, l, 11)
	assert.Contains(t, l, "HSBC")
	assert.Equal(t, "Other", l[len(l)-1])
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "£382.50", FormatPrice(382.5))
	assert.Equal(t, "£60.00", FormatPrice(60))
}
