package excel

// File types handled by DataReader
const (
	FileTypeCSV  = "csv"
	FileTypeXLSX = "xlsx"
)
