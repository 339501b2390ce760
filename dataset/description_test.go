package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/cpdgen/dist"
)

func mustNormal(t *testing.T, mean, variance float64) dist.Distribution {
	t.Helper()
	d, err := dist.NewNormal(mean, variance)
	require.NoError(t, err)
	return d
}

func buildDescription(t *testing.T, name string, lengths []int) *SampleDescription {
	t.Helper()
	distributions := make([]dist.Distribution, len(lengths))
	for i := range distributions {
		distributions[i] = mustNormal(t, float64(i), 1)
	}
	desc, err := NewBuilder().
		SetName(name).
		SetLengths(lengths).
		SetDistributions(distributions).
		Build()
	require.NoError(t, err)
	return desc
}

func TestChangepoints(t *testing.T) {
	cases := []struct {
		lengths []int
		want    []int
	}{
		{[]int{20, 20, 10}, []int{20, 40}},
		{[]int{5, 5}, []int{5}},
		{[]int{100}, []int{}},
		{[]int{1, 1, 1, 1}, []int{1, 2, 3}},
	}
	for _, tc := range cases {
		desc := buildDescription(t, "cp", tc.lengths)
		assert.Equal(t, tc.want, desc.Changepoints(), "lengths %v", tc.lengths)
	}
}

func TestChangepointsStrictlyIncreasing(t *testing.T) {
	desc := buildDescription(t, "inc", []int{3, 7, 2, 11, 5})
	cps := desc.Changepoints()
	require.Len(t, cps, desc.Segments()-1)
	for i := 1; i < len(cps); i++ {
		assert.Greater(t, cps[i], cps[i-1])
	}
}

func TestTotalLength(t *testing.T) {
	desc := buildDescription(t, "total", []int{3, 7, 2})
	assert.Equal(t, 12, desc.TotalLength())
	assert.Equal(t, 3, desc.Segments())
}

func TestAccessorsReturnCopies(t *testing.T) {
	desc := buildDescription(t, "copy", []int{4, 6})

	lengths := desc.Lengths()
	lengths[0] = 999
	assert.Equal(t, []int{4, 6}, desc.Lengths())

	distributions := desc.Distributions()
	distributions[0] = nil
	assert.NotNil(t, desc.Distributions()[0])
}

func TestAsciiDocRendering(t *testing.T) {
	normal, err := dist.NormalFromParams(map[string]string{"mean": "0", "variance": "1"})
	require.NoError(t, err)
	shifted, err := dist.NormalFromParams(map[string]string{"mean": "10", "variance": "1"})
	require.NoError(t, err)

	desc, err := NewBuilder().
		SetName("A").
		SetLengths([]int{5, 5}).
		SetDistributions([]dist.Distribution{normal, shifted}).
		Build()
	require.NoError(t, err)

	doc := desc.AsciiDoc()
	assert.Contains(t, doc, "= Sample A")
	assert.Contains(t, doc, "Total length:: 10")
	assert.Contains(t, doc, "Segment lengths:: [5 5]")
	assert.Contains(t, doc, "Change points:: [5]")
	assert.Contains(t, doc, "== Distributions")
	assert.Contains(t, doc, "* normal")
	assert.Contains(t, doc, "** mean:: 0")
	assert.Contains(t, doc, "** mean:: 10")
	assert.Contains(t, doc, "** variance:: 1")
}
