package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gilchrisn/cluster-similarity-service/pkg/comparison"
	"github.com/gilchrisn/cluster-similarity-service/pkg/partition"
)

func main() {
	configFile := flag.String("config", "", "Optional config file (yaml/json/toml)")
	refName := flag.String("ref-name", "GT", "Display name for the reference clustering")
	candName := flag.String("cand-name", "algo", "Display name for the candidate clustering")
	strategy := flag.String("strategy", "", "Matching strategy override: greedy or optimal")
	flag.Parse()

	if flag.NArg() < 2 {
		fmt.Println("Usage: compare [flags] <reference_file> <candidate_file>")
		fmt.Println("Each file holds one cluster label per node, whitespace or comma separated.")
		flag.PrintDefaults()
		os.Exit(1)
	}

	ref, err := loadPartition(flag.Arg(0))
	if err != nil {
		log.Fatalf("Failed to load reference partition: %v", err)
	}
	cand, err := loadPartition(flag.Arg(1))
	if err != nil {
		log.Fatalf("Failed to load candidate partition: %v", err)
	}

	config := comparison.NewConfig()
	if *configFile != "" {
		if err := config.LoadFromFile(*configFile); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *strategy != "" {
		config.Set("matching.strategy", *strategy)
	}

	result, err := comparison.Compare(config, *refName, ref, *candName, cand)
	if err != nil {
		log.Fatalf("Comparison failed: %v", err)
	}

	if err := comparison.VerifyResult(result); err != nil {
		log.Fatalf("Result verification failed: %v", err)
	}

	fmt.Print(result.Report(config.Precision()))
}

// loadPartition reads one cluster label per node from a text file; labels
// may be separated by any mix of whitespace and commas.
func loadPartition(path string) (partition.Partition[string], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read partition file: %w", err)
	}

	fields := strings.FieldsFunc(string(data), func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("partition file is empty: %s", path)
	}

	return partition.Partition[string](fields), nil
}
