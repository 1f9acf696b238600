// Package output writes generated sheets and the run manifest to disk.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/bjquiz/internal/quiz"
)

const filePerm = 0o644

// Written records the files produced for one version.
type Written struct {
	Version    string
	Seed       int64
	TestFile   string
	AnswerFile string
}

// TestFileName returns the test sheet file name for a version.
func TestFileName(version string) string {
	return fmt.Sprintf("test_%s.txt", version)
}

// AnswerFileName returns the answer key file name for a version.
func AnswerFileName(version string) string {
	return fmt.Sprintf("test_%s_answers.txt", version)
}

// Writer stores sheets in a directory.
type Writer struct {
	dir    string
	logger *log.Logger
}

// NewWriter creates a Writer for dir. A nil logger discards output.
func NewWriter(dir string, logger *log.Logger) *Writer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Writer{dir: dir, logger: logger}
}

// Dir returns the output directory.
func (w *Writer) Dir() string {
	return w.dir
}

// WriteSheets writes the test and answer files of every sheet in res. Labels
// are checked before anything is written so a bad label leaves no files.
func (w *Writer) WriteSheets(res *quiz.Result) ([]Written, error) {
	for _, s := range res.Sheets {
		if err := checkLabel(s.Version); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	written := make([]Written, 0, len(res.Sheets))
	for _, s := range res.Sheets {
		testPath := filepath.Join(w.dir, TestFileName(s.Version))
		if err := writeFileAtomic(testPath, []byte(s.QuestionText), filePerm); err != nil {
			return written, fmt.Errorf("write test %s: %w", s.Version, err)
		}
		answerPath := filepath.Join(w.dir, AnswerFileName(s.Version))
		if err := writeFileAtomic(answerPath, []byte(s.AnswerText), filePerm); err != nil {
			return written, fmt.Errorf("write answer key %s: %w", s.Version, err)
		}

		w.logger.Debug("wrote version", "version", s.Version, "seed", s.Seed, "test", testPath, "answers", answerPath)
		written = append(written, Written{
			Version:    s.Version,
			Seed:       s.Seed,
			TestFile:   testPath,
			AnswerFile: answerPath,
		})
	}
	return written, nil
}

func checkLabel(version string) error {
	if strings.ContainsAny(version, `/\`) || version == "." || version == ".." {
		return fmt.Errorf("%w: version %q cannot be used in a file name", quiz.ErrInvalidVersions, version)
	}
	return nil
}
