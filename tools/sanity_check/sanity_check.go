package sanity_check

import (
	"flag"
	"fmt"
	"os"

	"nanoplot_go/config"
	"nanoplot_go/flowcell"
)

// Run verifies the flowcell layout table and, when given, a settings file
// before reporting a healthy installation. A broken channel mapping would
// silently corrupt every activity map, so it is checked here rather than
// at plot time.
func Run(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	settingsFile := fs.String("settings", "", "TOML settings file to validate")

	err := fs.Parse(args)										// Parse inputs
	if err != nil {
		fmt.Println("Error parsing flags:", err)
		os.Exit(1)
	}
	if len(fs.Args()) > 0 {
		fmt.Printf("Unrecognized arguments: %v\n", fs.Args())
		fmt.Println("Use -h to view valid flags.")
		os.Exit(1)
	}

	layout := flowcell.Layout()
	if err := layout.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Flowcell layout check failed: %v\n", err)
		os.Exit(1)
	}

	if *settingsFile != "" {
		if _, err := config.Load(*settingsFile); err != nil {
			fmt.Fprintf(os.Stderr, "Settings file check failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Settings file %s loads cleanly\n", *settingsFile)
	}

	fmt.Printf("Successfully running NanoPlot Go! (%s)\n", config.Main_version)
	fmt.Printf("Flowcell layout: %d channels on a %dx%d grid\n",
		flowcell.Channels, flowcell.Rows, flowcell.Cols)
	fmt.Printf("Tool versions: nanoplot %s, nanocomp %s\n", config.NanoPlot, config.NanoComp)
}
