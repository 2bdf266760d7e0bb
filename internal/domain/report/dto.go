package report

import "bytes"

// Workbook is a rendered spreadsheet export ready to stream to the client.
type Workbook struct {
	FileName string
	Content  *bytes.Buffer
}
