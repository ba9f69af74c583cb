package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"svw.info/dsudoku/internal/domain"
)

// FS persists solve records as JSON files, bucketed by constraint variant.
// The stored trace frames are the hand-off point for an external
// visualizer.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func variantDir(diagonal bool) string {
	if diagonal {
		return "diagonal"
	}
	return "standard"
}

func (s *FS) pathFor(id string, diagonal bool) string {
	return filepath.Join(s.dir, variantDir(diagonal), strings.TrimSpace(id)+".json")
}

// Save writes the record, assigning it a fresh ID when it has none.
func (s *FS) Save(ctx context.Context, rec *domain.SolveRecord) error {
	if rec == nil {
		return errors.New("invalid record: nil")
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	target := s.pathFor(rec.ID, rec.Diagonal)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.SolveRecord, error) {
	var data []byte
	for _, diagonal := range []bool{false, true} {
		b, err := os.ReadFile(s.pathFor(id, diagonal))
		if err == nil {
			data = b
			break
		}
		if !os.IsNotExist(err) {
			return nil, err
		}
	}
	if data == nil {
		return nil, os.ErrNotExist
	}
	var out domain.SolveRecord
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FS) List(ctx context.Context) ([]domain.RecordMeta, error) {
	var out []domain.RecordMeta
	for _, diagonal := range []bool{false, true} {
		dir := filepath.Join(s.dir, variantDir(diagonal))
		ents, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dir, e.Name()))
			if err != nil {
				continue
			}
			var rec domain.SolveRecord
			if err := json.Unmarshal(data, &rec); err != nil || rec.ID == "" {
				continue
			}
			out = append(out, domain.RecordMeta{
				ID:        rec.ID,
				Grid:      rec.Grid,
				Diagonal:  rec.Diagonal,
				CreatedAt: rec.CreatedAt,
			})
		}
	}
	return out, nil
}
