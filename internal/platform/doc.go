package platform

// Package platform contains local filesystem glue: output directory
// creation and existence checks used by the CLI and tests.
