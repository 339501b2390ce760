// Package sink persists generated samples together with their descriptions.
//
// Two sinks are provided: a filesystem sink writing one directory per
// dataset, and a SQLite sink storing datasets in a single database file.
// Both key output identity by the description's name and honor a
// replace-or-skip policy for existing datasets.
package sink

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/teranos/cpdgen/dataset"
	"github.com/teranos/cpdgen/errors"
)

// Names of the files written per dataset by the filesystem sink.
const (
	SampleFileName      = "sample.csv"
	DescriptionFileName = "description.adoc"
)

// FS writes each dataset to <root>/<name>/ as a CSV sample plus an AsciiDoc
// description.
type FS struct {
	root    string
	replace bool
	log     *zap.SugaredLogger
}

// NewFS creates a filesystem sink rooted at root, creating the directory if
// needed. With replace disabled, existing datasets are skipped.
func NewFS(root string, replace bool, log *zap.SugaredLogger) (*FS, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create output directory %s", root)
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &FS{root: root, replace: replace, log: log}, nil
}

// SaveSample implements pipeline.Sink.
func (s *FS) SaveSample(sample []float64, description *dataset.SampleDescription) error {
	dir := filepath.Join(s.root, description.Name())

	if _, err := os.Stat(dir); err == nil {
		if !s.replace {
			s.log.Warnw("Dataset already exists, skipping",
				"name", description.Name(), "path", dir)
			return nil
		}
		if err := os.RemoveAll(dir); err != nil {
			return errors.Wrapf(err, "replace dataset %q", description.Name())
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "create dataset directory %s", dir)
	}

	var csv strings.Builder
	for _, v := range sample {
		csv.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		csv.WriteByte('\n')
	}
	if err := os.WriteFile(filepath.Join(dir, SampleFileName), []byte(csv.String()), 0o644); err != nil {
		return errors.Wrapf(err, "write sample for %q", description.Name())
	}

	if err := os.WriteFile(filepath.Join(dir, DescriptionFileName), []byte(description.AsciiDoc()), 0o644); err != nil {
		return errors.Wrapf(err, "write description for %q", description.Name())
	}

	s.log.Infow("Dataset written",
		"name", description.Name(),
		"path", dir,
		"values", len(sample),
	)
	return nil
}
