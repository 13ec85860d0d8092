package world

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ForPath picks a codec from the file extension.
func ForPath(path string) (Codec, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return XML{}, nil
	case ".json":
		return JSON{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// LoadFile reads a world from path.
func LoadFile(path string) (World, error) {
	codec, err := ForPath(path)
	if err != nil {
		return World{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return World{}, fmt.Errorf("opening world file: %w", err)
	}
	defer f.Close()

	wd, err := codec.Load(f)
	if err != nil {
		return World{}, fmt.Errorf("loading %s: %w", path, err)
	}
	return wd, nil
}

// SaveFile writes wd to path, replacing any existing file.
func SaveFile(path string, wd World) (err error) {
	codec, err := ForPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating world file: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	if err := codec.Write(f, wd); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
