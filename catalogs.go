package translate

import (
	"fmt"

	"github.com/spf13/afero"
)

// CatalogsFromFs reads all catalog files in the root of fs that match the default FileMatcher.
func CatalogsFromFs(fs afero.Fs) (map[LanguageID]*Catalog, error) {
	return CatalogsFromFsAndMatcher(fs, defaultMatcher)
}

// CatalogsFromFsAndMatcher reads all catalog files in the root of fs that match matcher, keyed by their language.
func CatalogsFromFsAndMatcher(fs afero.Fs, matcher FileMatcher) (map[LanguageID]*Catalog, error) {
	entries, err := afero.ReadDir(fs, ".")
	if err != nil {
		return nil, fmt.Errorf("unable to read fs: %w", err)
	}

	files := make(map[LanguageID]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if !matcher.IsMatch(entry.Name()) {
			continue
		}

		langID, err := matcher.LanguageID(entry.Name())
		if err != nil {
			return nil, fmt.Errorf("unable to parse language %q: %w", entry.Name(), err)
		}

		if existing, ok := files[langID]; ok {
			return nil, fmt.Errorf("duplicate catalog files %q and %q for language %s", existing, entry.Name(), langID.String())
		}

		files[langID] = entry.Name()
	}

	catalogs := make(map[LanguageID]*Catalog, len(files))
	for langID, file := range files {
		c, err := ReadCatalogFile(fs, file)
		if err != nil {
			return nil, err
		}

		catalogs[langID] = c
	}

	return catalogs, nil
}

// ReadCatalogFile reads a single JSON or YAML catalog from fs.
func ReadCatalogFile(fs afero.Fs, name string) (*Catalog, error) {
	f, err := fs.Open(name)
	if err != nil {
		return nil, fmt.Errorf("unable to open file %q: %w", name, err)
	}
	defer f.Close()

	c, err := ReadCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("unable to read catalog %q: %w", name, err)
	}

	return c, nil
}
