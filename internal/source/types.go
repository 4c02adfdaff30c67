package source

// FileID uniquely identifies a source file within a FileSet.
type FileID uint32

// File captures metadata and content for a single source file. Virtual
// files come from FileSet.AddVirtual — one per REPL line, the `Prompt`
// variant of the interpreter's source map; everything else holds a file
// read from disk (added through Load, or through Add by `loxwalk run`)
// and is the `File(index)` variant.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Virtual bool
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
