package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/cpdgen/dataset"
	"github.com/teranos/cpdgen/dist"
	"github.com/teranos/cpdgen/errors"
	"github.com/teranos/cpdgen/gen"
)

// memorySink records saved samples in arrival order.
type memorySink struct {
	names   []string
	samples [][]float64
	failOn  string
}

func (s *memorySink) SaveSample(sample []float64, description *dataset.SampleDescription) error {
	if s.failOn != "" && description.Name() == s.failOn {
		return errors.New("sink unavailable")
	}
	s.names = append(s.names, description.Name())
	s.samples = append(s.samples, sample)
	return nil
}

func description(t *testing.T, name string, lengths []int) *dataset.SampleDescription {
	t.Helper()
	distributions := make([]dist.Distribution, len(lengths))
	for i := range distributions {
		d, err := dist.NewNormal(float64(10*i), 1)
		require.NoError(t, err)
		distributions[i] = d
	}
	desc, err := dataset.NewBuilder().
		SetName(name).
		SetLengths(lengths).
		SetDistributions(distributions).
		Build()
	require.NoError(t, err)
	return desc
}

func TestDriverRunsInOrder(t *testing.T) {
	generator, err := gen.ForBackend(gen.SerialBackend)
	require.NoError(t, err)
	sink := &memorySink{}

	descriptions := []*dataset.SampleDescription{
		description(t, "first", []int{5, 5}),
		description(t, "second", []int{3}),
		description(t, "third", []int{2, 2, 2}),
	}

	driver := NewDriver(generator, sink, nil)
	require.NoError(t, driver.Run(descriptions))

	assert.Equal(t, []string{"first", "second", "third"}, sink.names)
	require.Len(t, sink.samples, 3)
	assert.Len(t, sink.samples[0], 10)
	assert.Len(t, sink.samples[1], 3)
	assert.Len(t, sink.samples[2], 6)
}

func TestDriverAbortsOnSinkError(t *testing.T) {
	generator, err := gen.ForBackend(gen.SerialBackend)
	require.NoError(t, err)
	sink := &memorySink{failOn: "second"}

	descriptions := []*dataset.SampleDescription{
		description(t, "first", []int{2}),
		description(t, "second", []int{2}),
		description(t, "third", []int{2}),
	}

	driver := NewDriver(generator, sink, nil)
	err = driver.Run(descriptions)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"second"`)

	// Nothing after the failing description is delivered.
	assert.Equal(t, []string{"first"}, sink.names)
}

func TestDriverEmptyDescriptionList(t *testing.T) {
	generator, err := gen.ForBackend(gen.SerialBackend)
	require.NoError(t, err)
	sink := &memorySink{}

	driver := NewDriver(generator, sink, nil)
	require.NoError(t, driver.Run(nil))
	assert.Empty(t, sink.names)
}
