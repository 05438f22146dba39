package question

// Record is one question row of the source sheet with its answer options in source order.
type Record struct {
	// Row is the 1-based row the record was read from.
	Row     int
	Text    string
	Answers []string
}

// Bank is the ordered set of records read from the data sheet.
type Bank []Record

// Texts returns the question texts in bank order.
func (b Bank) Texts() []string {
	texts := make([]string, 0, len(b))
	for _, record := range b {
		texts = append(texts, record.Text)
	}
	return texts
}
