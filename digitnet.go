// Package digitnet re-exports the feedforward network engine for library
// consumers: the matrix engine, the activation functions, the three-layer
// network, and the record readers that feed it.
package digitnet

import (
	"io"

	"digitnet/internal/activations"
	"digitnet/internal/dataset"
	"digitnet/internal/matrix"
	"digitnet/internal/net"
)

// Re-export common types for easier access
type (
	Matrix        = matrix.Matrix
	Activation    = activations.Activation
	Network       = net.Network
	TrainingLabel = net.TrainingLabel
	TrainingSet   = net.TrainingSet
	Reporter      = net.Reporter
	Option        = net.Option
)

// Activations
var (
	Sigmoid = activations.Sigmoid{}
	Tanh    = activations.Tanh{}
	ReLU    = activations.ReLU{}
)

// Network creation
func New(inputSize, hiddenSize, outputSize int, learningRate float64, opts ...Option) *Network {
	return net.New(inputSize, hiddenSize, outputSize, learningRate, opts...)
}

func WithActivation(act Activation) Option {
	return net.WithActivation(act)
}

func WithReporter(r Reporter) Option {
	return net.WithReporter(r)
}

// Matrices
func NewMatrix(rows, cols int) *Matrix {
	return matrix.New(rows, cols)
}

func NewColumnVector(entries []float64) *Matrix {
	return matrix.NewColumnVector(entries)
}

func RandomMatrix(rows, cols int) *Matrix {
	return matrix.Random(rows, cols)
}

// Datasets
func ReadTrainingSet(r io.Reader, inputSize, outputSize int) (TrainingSet, error) {
	return dataset.ReadTrainingSet(r, inputSize, outputSize)
}
