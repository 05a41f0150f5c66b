package cli

// Config holds the configuration for the CLI generator
type Config struct {
	// Directories is the list of directories to scan for annotated Go files
	Directories []string

	// ModuleName is the custom module name for diagnostics and path
	// reporting. If empty, it is resolved from the nearest go.mod file.
	ModuleName string

	// Verbose enables detailed logging and error reporting
	Verbose bool
}
