package config

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executible
	Main_version = "v1.1.0"

	// Modular tools
	NanoPlot     = "v1.1.0"
	NanoComp     = "v1.0.1"
	Sanity_check = "v1.0.0"
	Benchmark    = "v1.0.0"
)
