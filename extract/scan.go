package extract

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

var (
	DefaultExtensions = []string{".js", ".html", ".ts"}
	DefaultExclude    = []string{"node_modules", "bower_components"}
)

// Result holds the keys found in a single file.
type Result struct {
	Path   string
	Module string
	Keys   []string
}

type scanner struct {
	extractor  *Extractor
	extensions []string
	exclude    []string
	workers    int
}

type ScanOpt func(s *scanner)

// WithExtensions only scans files with one of the given extensions, e.g. ".html".
func WithExtensions(exts ...string) ScanOpt {
	return func(s *scanner) {
		s.extensions = exts
	}
}

// WithExclude skips files and directories whose base name matches one of the filepath.Match patterns.
func WithExclude(patterns ...string) ScanOpt {
	return func(s *scanner) {
		s.exclude = patterns
	}
}

// WithWorkers limits the number of files read and extracted concurrently.
func WithWorkers(n int) ScanOpt {
	return func(s *scanner) {
		if n > 0 {
			s.workers = n
		}
	}
}

func WithExtractor(e *Extractor) ScanOpt {
	return func(s *scanner) {
		s.extractor = e
	}
}

// Scan finds the translation keys of every matching file below root in fs.
// Results are returned in walk order, the keys of every file in the order they appear in the file.
func Scan(ctx context.Context, fs afero.Fs, root string, opts ...ScanOpt) ([]Result, error) {
	s := &scanner{
		extractor:  defaultExtractor,
		extensions: DefaultExtensions,
		exclude:    DefaultExclude,
		workers:    runtime.NumCPU(),
	}

	for _, opt := range opts {
		opt(s)
	}

	for _, pattern := range s.exclude {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
	}

	files, err := s.files(fs, root)
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			content, err := afero.ReadFile(fs, file)
			if err != nil {
				return fmt.Errorf("unable to read %q: %w", file, err)
			}

			results[i] = Result{
				Path:   file,
				Module: ModuleName(sourcePath(root, file)),
				Keys:   s.extractor.Find(string(content)),
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (s *scanner) files(fs afero.Fs, root string) ([]string, error) {
	var files []string

	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if path != root && s.excluded(info.Name()) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() || !slices.Contains(s.extensions, filepath.Ext(path)) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to walk %q: %w", root, err)
	}

	return files, nil
}

func (s *scanner) excluded(name string) bool {
	for _, pattern := range s.exclude {
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}

	return false
}

// sourcePath returns file relative to the parent of root, so its first segment names the source root.
func sourcePath(root, file string) string {
	rel, err := filepath.Rel(root, file)
	if err != nil {
		return filepath.ToSlash(file)
	}

	base := filepath.Base(filepath.Clean(root))
	if base == "." || base == string(filepath.Separator) {
		base = "src"
	}

	return path.Join(filepath.ToSlash(base), filepath.ToSlash(rel))
}

// ModuleName returns the name of the module directory a file belongs to.
// The first segment of p is the source root, the module is the directory directly below it:
// "public/module0/views/index.html" belongs to "module0".
// Files at the root of the source directory belong to no module and return an empty string.
func ModuleName(p string) string {
	segments := strings.Split(strings.TrimPrefix(path.Clean(filepath.ToSlash(p)), "/"), "/")
	if len(segments) < 3 {
		return ""
	}

	return segments[1]
}

// Keys returns the keys of all results without duplicates, in the order they were first found.
func Keys(results []Result) []string {
	var all []string
	for _, r := range results {
		all = append(all, r.Keys...)
	}

	return removeDuplicates(all)
}

// ByModule groups the keys of all results by module. Keys are unique per module.
func ByModule(results []Result) map[string][]string {
	modules := make(map[string][]string)
	for _, r := range results {
		modules[r.Module] = append(modules[r.Module], r.Keys...)
	}

	for module, keys := range modules {
		modules[module] = removeDuplicates(keys)
	}

	return modules
}
