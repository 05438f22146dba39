package spec

type Config struct {
	Version            int          `yaml:"version"`
	Input              string       `yaml:"input"`
	Output             string       `yaml:"output"`
	QuizCount          int          `yaml:"quiz_count"`
	QuestionsPerQuiz   int          `yaml:"questions_per_quiz"`
	AnswersPerQuestion int          `yaml:"answers_per_question"`
	Seed               *uint64      `yaml:"seed"`
	Sheets             SheetsConfig `yaml:"sheets"`
	Layout             LayoutConfig `yaml:"layout"`
}

type SheetsConfig struct {
	Data     string `yaml:"data"`
	Template string `yaml:"template"`
	Prefix   string `yaml:"prefix"`
}

type LayoutConfig struct {
	LabelCell        string   `yaml:"label_cell"`
	QuestionColumn   string   `yaml:"question_column"`
	FirstQuestionRow int      `yaml:"first_question_row"`
	AnswerRowOffset  int      `yaml:"answer_row_offset"`
	RowStride        int      `yaml:"row_stride"`
	AnswerColumns    []string `yaml:"answer_columns"`
}
