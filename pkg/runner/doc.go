// Package runner provides batch comparison of unit-dump corpora.
//
// A run pairs files by relative name across two directory trees (typically
// the outputs of two compiler versions over the same sources), compares each
// pair under a shared policy, and reports one verdict per pair. Verdicts can
// optionally be recorded through a Sink for regression tracking across runs.
//
// Example usage:
//
//	r := runner.New(runner.Config{
//		Workers: 8,
//		Options: cfg.Compare.Options(),
//		Sink:    sink,
//	})
//
//	results, err := r.Run(ctx, "out/base", "out/candidate")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for _, result := range results {
//		fmt.Printf("%s: %s\n", result.Name, result.Status)
//	}
package runner
