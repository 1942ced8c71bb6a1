// Package net provides the three-layer feedforward network core.
package net

import (
	"gonum.org/v1/gonum/floats"

	"digitnet/internal/activations"
	"digitnet/internal/matrix"
)

// TrainingLabel is one labeled example: the class index, the target column
// vector, and the normalized input column vector.
//
// Label is not a strict one-hot encoding: the entry at Value is 1.0 and
// every other entry is 0.01, which keeps the sigmoid derivative away from
// its saturated extremes. Input entries are expected in [0.01, 1.0].
type TrainingLabel struct {
	Value int
	Label *matrix.Matrix
	Input *matrix.Matrix
}

// TrainingSet is an ordered sequence of training labels. Order matters:
// Train applies per-example updates in exactly this order.
type TrainingSet []TrainingLabel

// Network is a three-layer (input, hidden, output) neural network holding
// the two weight matrices between its layers.
//
// A Network is built with random weights and reaches useful predictions
// either through Train or through loading previously dumped weights. It is
// not safe for concurrent use.
type Network struct {
	inputSize  int
	hiddenSize int
	outputSize int

	learningRate float64
	act          activations.Activation
	reporter     Reporter

	// inputWeights is hiddenSize x inputSize, hiddenWeights is
	// outputSize x hiddenSize. Mutated in place only by Train and a
	// successful LoadWeights.
	inputWeights  *matrix.Matrix
	hiddenWeights *matrix.Matrix
}

// Option configures a Network at construction time.
type Option func(*Network)

// WithActivation swaps the activation function. The default is Sigmoid.
func WithActivation(act activations.Activation) Option {
	return func(n *Network) {
		n.act = act
	}
}

// WithReporter attaches a progress reporter invoked during Train and the
// weight dump/load passes. The default reporter discards everything.
func WithReporter(r Reporter) Option {
	return func(n *Network) {
		n.reporter = r
	}
}

// New creates a network with the given layer sizes and learning rate.
// Weights start out random in [-1, 1] with exact zeros nudged away.
func New(inputSize, hiddenSize, outputSize int, learningRate float64, opts ...Option) *Network {
	n := &Network{
		inputSize:     inputSize,
		hiddenSize:    hiddenSize,
		outputSize:    outputSize,
		learningRate:  learningRate,
		act:           activations.Sigmoid{},
		reporter:      NopReporter{},
		inputWeights:  matrix.Random(hiddenSize, inputSize),
		hiddenWeights: matrix.Random(outputSize, hiddenSize),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Sizes returns the input, hidden and output layer sizes.
func (n *Network) Sizes() (input, hidden, output int) {
	return n.inputSize, n.hiddenSize, n.outputSize
}

// activate applies the activation function elementwise.
func (n *Network) activate(m *matrix.Matrix) *matrix.Matrix {
	return m.Apply(n.act.Activate)
}

// activateDerivative applies the activation derivative elementwise to a
// matrix of pre-activation values.
func (n *Network) activateDerivative(m *matrix.Matrix) *matrix.Matrix {
	return m.Apply(n.act.Derivative)
}

// Query runs a forward pass over input (an inputSize x 1 column vector) and
// returns the class index with the highest output signal. Ties go to the
// lowest index. Query never mutates network state, so it is valid both
// before and after training; only the quality of the answer differs.
func (n *Network) Query(input *matrix.Matrix) int {
	hiddenOutput := n.activate(matrix.Mul(n.inputWeights, input))
	output := n.activate(matrix.Mul(n.hiddenWeights, hiddenOutput))
	return floats.MaxIdx(output.RawData())
}

// Train runs exactly one in-order pass over the training set, updating the
// weights after every single example (online gradient descent). Because
// each example's update is visible to the next example's forward pass, the
// sequence order is part of the result.
func (n *Network) Train(trainingSet TrainingSet) {
	total := len(trainingSet)

	for i, example := range trainingSet {
		// Forward pass, keeping both pre-activation and activated
		// values per layer. The backward pass needs the
		// pre-activation values for the derivative terms.
		hiddenInput := matrix.Mul(n.inputWeights, example.Input)
		hiddenOutput := n.activate(hiddenInput)
		outputInput := matrix.Mul(n.hiddenWeights, hiddenOutput)
		output := n.activate(outputInput)

		// Error at the output layer is target minus prediction; the
		// hidden layer error is that error propagated back through
		// the hidden weights.
		outputErrors := matrix.Sub(example.Label, output)
		hiddenErrors := matrix.Mul(n.hiddenWeights.Transpose(), outputErrors)

		outputGrad := matrix.Mul(
			matrix.Hadamard(matrix.Neg(outputErrors), n.activateDerivative(outputInput)),
			hiddenOutput.Transpose(),
		)
		hiddenGrad := matrix.Mul(
			matrix.Hadamard(matrix.Neg(hiddenErrors), n.activateDerivative(hiddenInput)),
			example.Input.Transpose(),
		)

		// Commit both updates for this example before moving on.
		n.hiddenWeights = matrix.Sub(n.hiddenWeights, matrix.Scale(n.learningRate, outputGrad))
		n.inputWeights = matrix.Sub(n.inputWeights, matrix.Scale(n.learningRate, hiddenGrad))

		n.reporter.Progress("Training Network", i+1, total)
	}

	n.reporter.Done("Training Network")
}
