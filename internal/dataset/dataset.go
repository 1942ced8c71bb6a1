// Package dataset reads MNIST-style training records.
//
// Each record is one comma-separated line: the class index first, followed
// by the raw pixel values in [0, 255]. Pixels are normalized into
// [0.01, 1.0] and the class index becomes a near-one-hot target vector, so
// the network core never sees raw text or raw pixel integers.
package dataset

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"digitnet/internal/matrix"
	"digitnet/internal/net"
)

// NormalizePixel maps a raw pixel value in [0, 255] into [0.01, 1.0]:
// divide by 255, scale by 0.99, then shift by 0.01. The lower bound stays
// above zero so no input can fully silence a connection.
func NormalizePixel(pixel int) float64 {
	return float64(pixel)/255.0*0.99 + 0.01
}

// ParseRecord parses one comma-separated record into a TrainingLabel. The
// target vector holds 1.0 at the class index and 0.01 everywhere else.
func ParseRecord(line string, inputSize, outputSize int) (net.TrainingLabel, error) {
	fields := strings.Split(line, ",")
	if len(fields) != inputSize+1 {
		return net.TrainingLabel{}, errors.Errorf("record has %d fields, want %d", len(fields), inputSize+1)
	}

	value, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return net.TrainingLabel{}, errors.Wrap(err, "parse class index")
	}
	if value < 0 || value >= outputSize {
		return net.TrainingLabel{}, errors.Errorf("class index %d out of range [0, %d)", value, outputSize)
	}

	label := matrix.New(outputSize, 1)
	for i := 0; i < outputSize; i++ {
		if i == value {
			label.Set(i, 0, 1)
		} else {
			label.Set(i, 0, 0.01)
		}
	}

	input := matrix.New(inputSize, 1)
	for i := 0; i < inputSize; i++ {
		pixel, err := strconv.Atoi(strings.TrimSpace(fields[i+1]))
		if err != nil {
			return net.TrainingLabel{}, errors.Wrapf(err, "parse pixel %d", i)
		}
		input.Set(i, 0, NormalizePixel(pixel))
	}

	return net.TrainingLabel{Value: value, Label: label, Input: input}, nil
}

// ReadTrainingSet reads records from r line by line until EOF, preserving
// their order. Blank lines are skipped.
func ReadTrainingSet(r io.Reader, inputSize, outputSize int) (net.TrainingSet, error) {
	var trainingSet net.TrainingSet

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		trainingLabel, err := ParseRecord(line, inputSize, outputSize)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		trainingSet = append(trainingSet, trainingLabel)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read records")
	}

	return trainingSet, nil
}
