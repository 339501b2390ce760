// Package pipeline drives dataset generation: it walks parsed sample
// descriptions in order, invokes the generator, and hands each numeric
// sample to a sink together with its description for labeling.
package pipeline

import (
	"go.uber.org/zap"

	"github.com/teranos/cpdgen/dataset"
	"github.com/teranos/cpdgen/errors"
	"github.com/teranos/cpdgen/gen"
)

// Sink accepts one generated sample with the description it was generated
// from. Sinks own naming, overwrite-vs-skip policy, and physical storage;
// the description's name is the primary key for output identity.
type Sink interface {
	SaveSample(sample []float64, description *dataset.SampleDescription) error
}

// Driver runs the generation pipeline over a sequence of descriptions.
type Driver struct {
	generator gen.Generator
	sink      Sink
	log       *zap.SugaredLogger
}

// NewDriver wires a generator and a sink into a pipeline driver.
func NewDriver(generator gen.Generator, sink Sink, log *zap.SugaredLogger) *Driver {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Driver{generator: generator, sink: sink, log: log}
}

// Run generates and saves every description in order. Descriptions are
// independent; the first generation or sink error aborts the run.
func (d *Driver) Run(descriptions []*dataset.SampleDescription) error {
	for _, description := range descriptions {
		d.log.Infow("Generating sample",
			"name", description.Name(),
			"segments", description.Segments(),
			"total_length", description.TotalLength(),
			"changepoints", description.Changepoints(),
		)

		sample, err := d.generator.GenerateSample(description.Distributions(), description.Lengths())
		if err != nil {
			return errors.Wrapf(err, "generate sample %q", description.Name())
		}

		if err := d.sink.SaveSample(sample, description); err != nil {
			return errors.Wrapf(err, "save sample %q", description.Name())
		}

		d.log.Debugw("Sample saved", "name", description.Name(), "values", len(sample))
	}
	return nil
}
