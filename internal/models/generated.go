package models

// GeneratedFile is one emitted dispatch file, ready to be written.
type GeneratedFile struct {
	// Interface is the source interface the file was generated for.
	Interface   string
	PackageName string
	// FilePath is the destination, autogen_<iface>_graphql.go next to the
	// source declaration.
	FilePath string
	Content  string
}
