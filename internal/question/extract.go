package question

// ExtractBank reads the first questions rows of a grid. Column one is the
// question text and the next answers columns are its options. Rows shorter
// than the shape are padded with empty cells.
func ExtractBank(rows [][]string, questions, answers int) (Bank, error) {
	if err := CheckShape(rows, questions, answers); err != nil {
		return nil, err
	}
	bank := make(Bank, 0, questions)
	for i := 0; i < questions; i++ {
		row := rows[i]
		record := Record{
			Row:     i + 1,
			Text:    cell(row, 0),
			Answers: make([]string, answers),
		}
		for k := 0; k < answers; k++ {
			record.Answers[k] = cell(row, k+1)
		}
		bank = append(bank, record)
	}
	return bank, nil
}

func cell(row []string, index int) string {
	if index < len(row) {
		return row[index]
	}
	return ""
}
