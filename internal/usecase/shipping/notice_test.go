package shipping

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildNotice_TotalWeight(t *testing.T) {
	n := BuildNotice([]Unit{
		{Name: "Cheese", Weight: 0.4},
		{Name: "Cheese", Weight: 0.4},
		{Name: "Biscuits", Weight: 0.7},
	}, map[string]int64{"Cheese": 2, "Biscuits": 1})

	require.InDelta(t, 1.5, n.TotalWeight, 1e-9)
}

func TestRender_DeduplicatesNamesKeepsUnitLines(t *testing.T) {
	n := BuildNotice([]Unit{
		{Name: "Cheese", Weight: 0.4},
		{Name: "Cheese", Weight: 0.4},
		{Name: "Biscuits", Weight: 0.7},
	}, map[string]int64{"Cheese": 2, "Biscuits": 1})

	want := "** Shipment notice **\n" +
		"2x Cheese\n" +
		"1x Biscuits\n" +
		"400g\n" +
		"400g\n" +
		"700g\n" +
		"Total package weight 1.5kg\n"
	require.Equal(t, want, n.Render())
}

func TestRender_SingleHeavyUnit(t *testing.T) {
	n := BuildNotice([]Unit{{Name: "TV", Weight: 7.0}}, map[string]int64{"TV": 1})

	want := "** Shipment notice **\n" +
		"1x TV\n" +
		"7000g\n" +
		"Total package weight 7.0kg\n"
	require.Equal(t, want, n.Render())
}
