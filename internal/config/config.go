// Package config holds the runtime knobs for a classification run.
package config

import "github.com/pkg/errors"

// Config captures the network geometry and driver behavior for one run.
type Config struct {
	InputSize    int
	HiddenSize   int
	OutputSize   int
	LearningRate float64

	WeightsFile string
	Verbose     bool
	DumpWeights bool
	LoadWeights bool
}

// Default returns the configuration for the 28x28 handwritten digit task.
func Default() Config {
	return Config{
		InputSize:    784,
		HiddenSize:   300,
		OutputSize:   10,
		LearningRate: 0.3,
		WeightsFile:  "weights.data",
	}
}

// Validate rejects configurations the network core cannot run with.
func (c Config) Validate() error {
	if c.InputSize <= 0 || c.HiddenSize <= 0 || c.OutputSize <= 0 {
		return errors.Errorf("layer sizes must be positive, got %d/%d/%d",
			c.InputSize, c.HiddenSize, c.OutputSize)
	}
	if c.LearningRate <= 0 || c.LearningRate > 1 {
		return errors.Errorf("learning rate must be in (0, 1], got %g", c.LearningRate)
	}
	if (c.DumpWeights || c.LoadWeights) && c.WeightsFile == "" {
		return errors.New("weights file must be set when dumping or loading weights")
	}
	return nil
}
