package store

import (
	"context"
	"crypto/md5"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"github.com/homec-dev/homec/pkg/dataset"
)

// Snapshots archives point-in-time copies of the dataset so an edit gone
// wrong can be rolled back by hand. Keys are `YYYY-MM-DD-<hash>` where the
// hash covers the serialized document, so saving an unchanged dataset twice
// on the same day is a no-op.
type Snapshots interface {
	Save(doc *dataset.Document, now time.Time) (string, error)
	List(ctx context.Context) []string
	Read(key string) (*dataset.Document, error)
	Erase(key string) error
}

// OpenSnapshots creates a Snapshots archive backed by diskv under the
// configured snapshot path.
func OpenSnapshots(cfg Config) (Snapshots, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	return &snapshots{d: diskv.New(diskv.Options{
		BasePath:          cfg.SnapshotPath(),
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	})}, nil
}

type snapshots struct {
	d *diskv.Diskv
}

func (s *snapshots) Save(doc *dataset.Document, now time.Time) (string, error) {
	data, err := dataset.Export(doc)
	if err != nil {
		return "", err
	}
	key := toSnapshotKey(data, now)
	if s.d.Has(key) {
		return key, nil
	}
	if err := s.d.Write(key, data); err != nil {
		return "", err
	}
	return key, nil
}

func (s *snapshots) List(ctx context.Context) []string {
	keys := make([]string, 0)
	for key := range s.d.Keys(ctx.Done()) {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (s *snapshots) Read(key string) (*dataset.Document, error) {
	data, err := s.d.Read(key)
	if err != nil {
		return nil, err
	}
	return dataset.Parse(data)
}

func (s *snapshots) Erase(key string) error {
	return s.d.Erase(key)
}

// toSnapshotKey makes `date-hash` so snapshots shard by day on disk.
func toSnapshotKey(data []byte, now time.Time) string {
	sum := md5.Sum(data)
	return fmt.Sprintf("%s-%x", now.Format("2006-01-02"), sum[:8])
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}
