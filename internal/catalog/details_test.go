package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetailsDurationService(t *testing.T) {
	d := Details("immigration", "30-min")
	require.NotNil(t, d)
	assert.Equal(t, "Immigration Legal Services - 30 Mins", d.FullTitle)
	assert.Contains(t, d.CostDescription, "£60.00")
	assert.Contains(t, d.CostDescription, "30 Mins")
	assert.Len(t, d.MeetingPoints, 4)
}

func TestDetailsILAService(t *testing.T) {
	d := Details("bridging-finance", "2-persons")
	require.NotNil(t, d)
	assert.Equal(t, "Independent Legal Advice (ILA) for 2 Persons for Bridging Finance", d.FullTitle)
	assert.Contains(t, d.CostDescription, "£270.00")
	assert.Contains(t, d.CostDescription, "2 persons")
	assert.Contains(t, d.CostDescription, "Special Delivery")
}

func TestDetailsSinglePerson(t *testing.T) {
	d := Details("buy-to-let", "1-person")
	require.NotNil(t, d)
	assert.Equal(t, "Independent Legal Advice (ILA) for 1 Person for Buy-to-Let", d.FullTitle)
	assert.Contains(t, d.CostDescription, "one person")
	assert.Contains(t, d.CostDescription, "£150.00")
}

func TestDetailsUnknownCombination(t *testing.T) {
	assert.Nil(t, Details("immigration", "2-persons"))
	assert.Nil(t, Details("no-such-service", "1-person"))
	assert.Nil(t, Details("occupier-consent", "4-persons"))
}

func TestEveryServiceHasDetails(t *testing.T) {
	for _, svc := range Services() {
		pkgs := PackagesFor(svc.ID)
		require.NotEmpty(t, pkgs, "service %s", svc.ID)
		for _, pkg := range pkgs {
			d := Details(svc.ID, pkg.ID)
			require.NotNil(t, d, "service %s package %s", svc.ID, pkg.ID)
			assert.NotEmpty(t, d.FullTitle)
			assert.NotEmpty(t, d.ServiceDescription)
			assert.NotEmpty(t, d.MeetingPoints)
		}
	}
}
