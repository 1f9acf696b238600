package output

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/lox/bjquiz/internal/quiz"
)

// ManifestFile is the manifest file name inside the output directory.
const ManifestFile = "manifest.yaml"

// Manifest records how a batch of sheets was produced so any version can be
// regenerated from its seed.
type Manifest struct {
	RunID       string            `yaml:"run_id"`
	GeneratedAt time.Time         `yaml:"generated_at"`
	Chart       string            `yaml:"chart"`
	Rules       string            `yaml:"rules"`
	Size        int               `yaml:"size"`
	BaseSeed    int64             `yaml:"base_seed"`
	Versions    []ManifestVersion `yaml:"versions"`
}

// ManifestVersion is one version entry in a Manifest.
type ManifestVersion struct {
	Label      string `yaml:"label"`
	Seed       int64  `yaml:"seed"`
	TestFile   string `yaml:"test_file"`
	AnswerFile string `yaml:"answer_file"`
}

// NewManifest builds a manifest for a result and the files written for it.
func NewManifest(res *quiz.Result, rules string, written []Written, now time.Time) Manifest {
	m := Manifest{
		RunID:       uuid.NewString(),
		GeneratedAt: now.UTC(),
		Chart:       res.Chart,
		Rules:       rules,
		Size:        res.Size,
		BaseSeed:    res.BaseSeed,
	}
	for _, w := range written {
		m.Versions = append(m.Versions, ManifestVersion{
			Label:      w.Version,
			Seed:       w.Seed,
			TestFile:   filepath.Base(w.TestFile),
			AnswerFile: filepath.Base(w.AnswerFile),
		})
	}
	return m
}

// WriteManifest stores m as YAML in the writer's directory and returns the path.
func (w *Writer) WriteManifest(m Manifest) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return "", fmt.Errorf("encode manifest: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encode manifest: %w", err)
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(w.dir, ManifestFile)
	if err := writeFileAtomic(path, buf.Bytes(), filePerm); err != nil {
		return "", fmt.Errorf("write manifest: %w", err)
	}
	w.logger.Debug("wrote manifest", "path", path, "run_id", m.RunID)
	return path, nil
}

// ReadManifest loads a manifest written by WriteManifest.
func ReadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return Manifest{}, fmt.Errorf("parse manifest: %w", err)
	}
	return m, nil
}
