package configutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

// LocalPath returns the path of the local override file for `name`,
// ex. "mathviews.json5" -> "mathviews.local.json5".
func LocalPath(name string) string {
	dirname := filepath.Dir(name)
	ext := filepath.Ext(name)
	prefix := strings.TrimSuffix(filepath.Base(name), ext)
	return filepath.Join(dirname, fmt.Sprintf("%s.local%s", prefix, ext))
}

func readJson5[T any](path string) (T, bool, error) {
	var out T
	contents, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return out, false, nil
	}
	if err != nil {
		return out, false, err
	}
	if len(contents) == 0 {
		return out, false, nil
	}
	err = json5.Unmarshal(contents, &out)
	if err != nil {
		return out, false, fmt.Errorf("parse %s: %w", path, err)
	}
	return out, true, nil
}

// ReadConfig reads a configuration file, `name` should come with a file extension.
// The following files are merged, where higher number is more prioritized.
// 1. <name>.<ext>
// 2. <name>.local.<ext>
//
// If neither file exists, os.ErrNotExist is returned along with the zero value.
func ReadConfig[T any](name string) (T, error) {
	out, found, err := readJson5[T](name)
	if err != nil {
		return out, err
	}

	override, foundLocal, err := readJson5[T](LocalPath(name))
	if err != nil {
		return out, err
	}
	if foundLocal {
		err = mergo.Merge(&out, override, mergo.WithOverride)
		if err != nil {
			return out, fmt.Errorf("merge local overrides: %w", err)
		}
	}

	if !found && !foundLocal {
		return out, os.ErrNotExist
	}
	return out, nil
}
