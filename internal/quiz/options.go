package quiz

import (
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"quizgen/internal/logging"
	"quizgen/internal/workbook"
)

// Workbook is the spreadsheet surface the generator drives.
type Workbook interface {
	HasSheet(name string) bool
	Rows(sheet string) ([][]string, error)
	CloneSheet(src, dst string) error
	SetCell(sheet, cell string, value any) error
	Save() error
	Close() error
}

// Opener loads the workbook stored at a path.
type Opener func(path string) (Workbook, error)

// OpenWorkbook opens path with the excelize-backed workbook.
func OpenWorkbook(path string) (Workbook, error) {
	book, err := workbook.Open(path)
	if err != nil {
		return nil, err
	}
	return book, nil
}

// Option customizes a Generate or Check call.
type Option func(*settings)

type settings struct {
	seed    uint64
	hasSeed bool
	runID   string
	logger  logrus.FieldLogger
	open    Opener
}

// WithSeed fixes the shuffle seed so a run can be reproduced.
func WithSeed(seed uint64) Option {
	return func(s *settings) {
		s.seed = seed
		s.hasSeed = true
	}
}

// WithRunID sets the id recorded in the summary and log entries.
func WithRunID(id string) Option {
	return func(s *settings) {
		s.runID = id
	}
}

// WithLogger routes progress entries to logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithOpener replaces the workbook backend.
func WithOpener(open Opener) Option {
	return func(s *settings) {
		s.open = open
	}
}

func newSettings(opts []Option) settings {
	s := settings{}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	if !s.hasSeed {
		s.seed = rand.Uint64()
	}
	if s.runID == "" {
		s.runID = uuid.NewString()
	}
	if s.logger == nil {
		s.logger = logging.Discard()
	}
	if s.open == nil {
		s.open = OpenWorkbook
	}
	return s
}

// seedStream is the fixed PCG stream selector; the seed alone picks the sequence.
const seedStream = 0x9e3779b97f4a7c15

func (s settings) newRand() *rand.Rand {
	return rand.New(rand.NewPCG(s.seed, seedStream))
}
