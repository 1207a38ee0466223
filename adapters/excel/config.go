package excel

// ReaderConfig holds options for reading spreadsheet sources
type ReaderConfig struct {
	FilePath string `json:"file_path"`
	Sheet    string `json:"sheet"` // empty selects the first sheet
	Comma    rune   `json:"comma"` // CSV delimiter, ',' when zero
}

// DefaultReaderConfig returns sensible defaults for a file path
func DefaultReaderConfig(filePath string) ReaderConfig {
	return ReaderConfig{
		FilePath: filePath,
		Comma:    ',',
	}
}
