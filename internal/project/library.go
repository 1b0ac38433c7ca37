package project

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/piwi3910/TrayCalc/internal/catalogue"
	"github.com/piwi3910/TrayCalc/internal/model"
)

// DefaultLibraryPath returns the default file path for the preset library.
// This is located at ~/.traycalc/library.json.
func DefaultLibraryPath() string {
	return filepath.Join(DefaultConfigDir(), "library.json")
}

// SaveLibrary writes the library to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveLibrary(path string, lib model.Library) error {
	return writeJSON(path, "library", lib)
}

// LoadLibrary reads the library from the specified JSON file.
// If the file does not exist, it returns the default library and saves it.
func LoadLibrary(path string) (model.Library, error) {
	var lib model.Library
	if err := readJSON(path, "library", &lib); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			lib = catalogue.DefaultLibrary()
			return lib, SaveLibrary(path, lib)
		}
		return model.Library{}, err
	}
	return lib, nil
}

// LoadOrCreateLibrary loads the library from the default path.
// If the file does not exist, it creates one seeded from the catalogue.
func LoadOrCreateLibrary() (model.Library, string, error) {
	path := DefaultLibraryPath()
	lib, err := LoadLibrary(path)
	return lib, path, err
}

// ExportLibrary exports the library to a user-specified JSON file.
func ExportLibrary(path string, lib model.Library) error {
	return SaveLibrary(path, lib)
}

// ImportLibrary imports a library from a user-specified JSON file,
// merging it with the existing library. Duplicate IDs are skipped.
func ImportLibrary(path string, existing model.Library) (model.Library, error) {
	var imported model.Library
	if err := readJSON(path, "library", &imported); err != nil {
		return existing, err
	}
	existing.Merge(imported)
	return existing, nil
}
