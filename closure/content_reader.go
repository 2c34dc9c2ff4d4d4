package closure

// ContentReader is a function that reads file content given a file path.
// This allows the caller to control how repository files are read
// (filesystem, test fakes, etc.)
type ContentReader func(filePath string) ([]byte, error)
