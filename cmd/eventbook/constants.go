package main

// Default limits for CLI commands.
const (
	DefaultExportLimit = 1000
)

// Valid export and import formats.
var (
	validExportFormats = []string{"json", "csv", "markdown"}
	validImportFormats = []string{"json", "csv", "auto"}
)

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
