package net

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"digitnet/internal/matrix"
)

// ErrInvalidWeights is returned when a weights stream is malformed or does
// not hold exactly the entry counts implied by the network's layer sizes.
var ErrInvalidWeights = errors.New("invalid weights format")

// DumpWeights writes the network weights to w as two blocks of space-
// terminated decimal entries in row-major order, input weights first, the
// blocks separated by a newline. The stream carries no shape header: the
// counts are implied by the layer sizes of the network that wrote it, so a
// dump is only loadable by a network of identical configuration.
func (n *Network) DumpWeights(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if err := n.dumpMatrix("Dumping Input Weights", bw, n.inputWeights); err != nil {
		return err
	}
	if _, err := bw.WriteString("\n"); err != nil {
		return errors.Wrap(err, "write weights")
	}
	if err := n.dumpMatrix("Dumping Hidden Weights", bw, n.hiddenWeights); err != nil {
		return err
	}

	return errors.Wrap(bw.Flush(), "write weights")
}

// LoadWeights reads weights in the DumpWeights grammar from r. Both blocks
// are parsed into scratch matrices and validated against the network's
// fixed shapes before anything is committed, so a failed load leaves the
// existing weights completely untouched.
func (n *Network) LoadWeights(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	inputWeights, err := n.loadMatrix("Loading Input Weights", scanner, n.hiddenSize, n.inputSize)
	if err != nil {
		return err
	}
	hiddenWeights, err := n.loadMatrix("Loading Hidden Weights", scanner, n.outputSize, n.hiddenSize)
	if err != nil {
		return err
	}
	if scanner.Scan() {
		return errors.Wrap(ErrInvalidWeights, "trailing entries after hidden weights")
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "read weights")
	}

	n.inputWeights = inputWeights
	n.hiddenWeights = hiddenWeights
	return nil
}

// dumpMatrix writes every entry of m followed by a single space.
func (n *Network) dumpMatrix(title string, w *bufio.Writer, m *matrix.Matrix) error {
	entries := m.RawData()
	total := len(entries)
	for i, v := range entries {
		if _, err := w.WriteString(strconv.FormatFloat(v, 'g', -1, 64)); err != nil {
			return errors.Wrap(err, "write weights")
		}
		if err := w.WriteByte(' '); err != nil {
			return errors.Wrap(err, "write weights")
		}
		n.reporter.Progress(title, i+1, total)
	}
	n.reporter.Done(title)
	return nil
}

// loadMatrix reads exactly rows*cols entries into a fresh matrix.
func (n *Network) loadMatrix(title string, scanner *bufio.Scanner, rows, cols int) (*matrix.Matrix, error) {
	m := matrix.New(rows, cols)
	entries := m.RawData()
	total := len(entries)
	for i := range entries {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, errors.Wrap(err, "read weights")
			}
			return nil, errors.Wrapf(ErrInvalidWeights, "want %d entries, stream ended after %d", total, i)
		}
		v, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidWeights, "entry %d: %q is not a number", i, scanner.Text())
		}
		entries[i] = v
		n.reporter.Progress(title, i+1, total)
	}
	n.reporter.Done(title)
	return m, nil
}

// SaveFile dumps the weights to the named file.
func (n *Network) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer f.Close()

	return n.DumpWeights(f)
}

// LoadFile loads weights from the named file. On any failure the network
// keeps its current weights; retraining from scratch is the caller's
// fallback.
func (n *Network) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	return n.LoadWeights(f)
}
