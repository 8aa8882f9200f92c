package gamestate

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/castaway-games/angler/internal/errors"
	"github.com/castaway-games/angler/internal/pkg/clock"
)

// FileConfig holds configuration for the file repository
type FileConfig struct {
	// Path is the location of the save file
	Path string

	// Clock stamps saves; nil means the real clock
	Clock clock.Clock
}

// Validate ensures the config is valid
func (cfg *FileConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if cfg.Path == "" {
		vb.RequiredField("Path")
	}

	return vb.Build()
}

type fileRepository struct {
	path  string
	clock clock.Clock
}

// NewFile creates a file-backed save repository
func NewFile(cfg *FileConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &fileRepository{path: cfg.Path, clock: clk}, nil
}

var _ Repository = (*fileRepository)(nil)

// Save writes the document to a temp file in the target directory and
// renames it into place, so a crash mid-write leaves the old save intact
func (r *fileRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if input.State == nil {
		return nil, errors.InvalidArgument("state cannot be nil")
	}

	doc := ToDocument(input.State)
	doc.SavedAt = r.clock.Now().UTC().Format(time.RFC3339)
	checksum, err := ComputeChecksum(doc)
	if err != nil {
		return nil, err
	}
	doc.Checksum = checksum

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize save document")
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create save directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create temp save file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return nil, errors.Wrap(err, "failed to write save file")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return nil, errors.Wrap(err, "failed to close save file")
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		_ = os.Remove(tmpName)
		return nil, errors.Wrapf(err, "failed to move save file into place at %s", r.path)
	}

	slog.Debug("saved game state", "path", r.path, "checksum", checksum)
	return &SaveOutput{Checksum: checksum}, nil
}

// Load reads the save file and verifies its digest before trusting it
func (r *fileRepository) Load(_ context.Context, _ LoadInput) (*LoadOutput, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("no save file at %s", r.path)
		}
		return nil, errors.Wrapf(err, "failed to read save file %s", r.path)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "save file is not valid JSON")
	}

	if err := verify(&doc); err != nil {
		return nil, err
	}

	return &LoadOutput{State: FromDocument(&doc)}, nil
}
