package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// SlotName is the key the record collection is persisted under.
const SlotName = "health-app-records"

// Slot is a single named key-value slot holding the serialized record
// collection. Load returns (nil, nil) when the slot has never been
// written.
type Slot interface {
	Load(ctx context.Context) ([]byte, error)
	Store(ctx context.Context, data []byte) error
}

// FileSlot persists the collection to a single JSON file. Writes go
// through a temp file and rename so a crash mid-write cannot corrupt the
// slot.
type FileSlot struct {
	path string
}

func NewFileSlot(path string) *FileSlot {
	return &FileSlot{path: path}
}

func (f *FileSlot) Load(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read slot file: %w", err)
	}
	return data, nil
}

func (f *FileSlot) Store(ctx context.Context, data []byte) error {
	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp slot file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp slot file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp slot file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace slot file: %w", err)
	}
	return nil
}
