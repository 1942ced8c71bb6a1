// Command mnist trains and evaluates the digit classifier on records read
// from standard input, e.g.:
//
//	mnist -v < data/mnist_train.csv
//
// Each input line is a comma-separated record: the digit first, then the
// 784 raw pixel values of a 28x28 image.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"digitnet/internal/config"
	"digitnet/internal/dataset"
	"digitnet/internal/metrics"
	"digitnet/internal/net"
)

func main() {
	cfg := config.Default()

	flag.BoolVar(&cfg.Verbose, "v", false, "Enable verbose progress output")
	flag.BoolVar(&cfg.DumpWeights, "dump", false, "Dump network weights after training")
	flag.BoolVar(&cfg.LoadWeights, "load", false, "Load network weights from a previous run instead of training")
	flag.StringVar(&cfg.WeightsFile, "weights", cfg.WeightsFile, "Weights file for -dump and -load")
	flag.IntVar(&cfg.HiddenSize, "hidden", cfg.HiddenSize, "Hidden layer size")
	flag.Float64Var(&cfg.LearningRate, "lr", cfg.LearningRate, "Learning rate")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	var reporter net.Reporter = net.NopReporter{}
	if cfg.Verbose {
		reporter = net.NewConsoleReporter(os.Stdout)
	}

	network := net.New(cfg.InputSize, cfg.HiddenSize, cfg.OutputSize, cfg.LearningRate,
		net.WithReporter(reporter))

	var report metrics.Report

	var trainingSet net.TrainingSet
	report.ParseTime = metrics.Timed(func() {
		var err error
		trainingSet, err = dataset.ReadTrainingSet(os.Stdin, cfg.InputSize, cfg.OutputSize)
		if err != nil {
			log.Fatalf("failed to read training set: %v", err)
		}
	})
	if len(trainingSet) == 0 {
		log.Fatal("no training records on stdin")
	}

	report.TrainTime = metrics.Timed(func() {
		if cfg.LoadWeights {
			err := network.LoadFile(cfg.WeightsFile)
			if err == nil {
				return
			}
			// A bad or missing weights file is recoverable: fall
			// back to a full training pass.
			if cfg.Verbose {
				fmt.Printf("Unable to load weights (%v). Resorting to full training of network.\n", err)
			}
		}
		network.Train(trainingSet)
	})

	if cfg.DumpWeights {
		if err := network.SaveFile(cfg.WeightsFile); err != nil {
			log.Printf("failed to dump weights: %v", err)
		}
	}

	report.MatchTime = metrics.Timed(func() {
		report.Matches = countCorrectPredictions(network, trainingSet, reporter)
	})
	report.Total = len(trainingSet)

	fmt.Println(report)
}

// countCorrectPredictions queries the network for every record and counts
// how many answers match the record's class.
func countCorrectPredictions(network *net.Network, trainingSet net.TrainingSet, reporter net.Reporter) int {
	const title = "Counting Correct Predictions"

	count := 0
	for i, trainingLabel := range trainingSet {
		if network.Query(trainingLabel.Input) == trainingLabel.Value {
			count++
		}
		reporter.Progress(title, i+1, len(trainingSet))
	}
	reporter.Done(title)

	return count
}
