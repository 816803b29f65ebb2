package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"mundell-fleming/internal/analysis"
	"mundell-fleming/internal/curve"
	"mundell-fleming/internal/data"
	"mundell-fleming/internal/model"
	"mundell-fleming/internal/render"
)

// Demo:
// - Load every shipped scenario preset
// - Evaluate each one and print the headline metrics and narrative
// - Optionally write the IS/LM curve samples of each preset to CSV
func main() {
	dir := flag.String("dir", "scenarios", "Directory of scenario presets")
	outDir := flag.String("out", "", "Optional directory for per-scenario curve CSVs (e.g. results)")
	flag.Parse()

	scenarios, skipped, err := data.ListScenarios(*dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for _, s := range skipped {
		fmt.Fprintf(os.Stderr, "skipping %s: %v\n", s.File, s.Err)
	}
	if len(scenarios) == 0 {
		fmt.Printf("no scenarios in %s, using defaults\n", *dir)
		scenarios = []data.Scenario{{ID: "default", Name: "Default inputs", Inputs: model.DefaultInputs()}}
	}

	for _, sc := range scenarios {
		res := model.Evaluate(sc.Inputs)

		fmt.Printf("== %s (%s)\n", sc.Name, sc.ID)
		fmt.Printf("inputs: tariff=%.1f ad=%.1f fiscal=%s monetary=%s\n",
			sc.Inputs.TariffShock, sc.Inputs.ADContraction, sc.Inputs.Fiscal, sc.Inputs.Monetary)
		fmt.Println(render.MetricsLine(render.Metrics(res)))
		fmt.Println(analysis.NarrativeText(sc.Inputs, res))

		if *outDir != "" {
			path := filepath.Join(*outDir, sc.ID+"_curve.csv")
			if err := curve.WriteCSVFile(path, curve.Sample(res)); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			fmt.Printf("wrote %s\n", path)
		}
		fmt.Println()
	}
}
