package corpus

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// maxLineSize bounds a single JSONL line. Structured-contents articles can
// carry very long abstract fields.
const maxLineSize = 16 * 1024 * 1024

// Loader reads JSONL files from language-named directories into a Corpus.
type Loader struct {
	logger *slog.Logger

	// OnFile, if set, is called after each file finishes loading.
	// It is observational only and has no effect on control flow.
	OnFile func(name string)
}

// NewLoader creates a Loader. A nil logger discards diagnostics.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loader{logger: logger}
}

// LoadFile parses one JSONL file into an ordered sequence of records.
// Each non-empty line must hold a standalone JSON object; a malformed line
// fails the whole file rather than being skipped.
func (l *Loader) LoadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file %s does not exist: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("parse %s:%d: %w", path, lineNo, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return records, nil
}

// LoadDir loads up to maxFiles JSONL files from dir, keyed by filename.
// File names are sorted before the cap is applied so the selection is
// deterministic across platforms. maxFiles <= 0 loads everything.
func (l *Loader) LoadDir(dir string, maxFiles int) (map[string][]Record, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("directory %s does not exist: %w", dir, ErrNotFound)
		}
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	// os.ReadDir returns entries sorted by filename, so the cap below
	// picks the same files on every platform.
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Ext) {
			continue
		}
		names = append(names, e.Name())
	}
	if maxFiles > 0 && len(names) > maxFiles {
		names = names[:maxFiles]
	}

	files := make(map[string][]Record, len(names))
	for _, name := range names {
		records, err := l.LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		files[name] = records
		if l.OnFile != nil {
			l.OnFile(name)
		}
	}

	return files, nil
}

// LoadAll walks the configured language directories under root and builds
// the corpus. Every configured directory gets a corpus entry even when it
// is absent on disk; absent directories are logged and left empty.
func (l *Loader) LoadAll(root string, langDirs []string, maxFiles int) (Corpus, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("data directory %s does not exist: %w", root, ErrNotFound)
	}
	if len(langDirs) == 0 {
		return nil, fmt.Errorf("language directory list is empty: %w", ErrConfig)
	}

	corpus := make(Corpus, len(langDirs))
	for _, langDir := range langDirs {
		if _, ok := corpus[langDir]; !ok {
			corpus[langDir] = map[string][]Record{}
		}

		dir := filepath.Join(root, langDir)
		st, statErr := os.Stat(dir)
		exists := statErr == nil
		isDir := exists && st.IsDir()
		l.logger.Debug("checking directory", "path", dir, "exists", exists, "is_dir", isDir)

		if !exists || !isDir {
			l.logger.Warn("directory missing or not a directory, skipping", "path", dir)
			continue
		}

		// Load each directory at most once per configured name.
		if len(corpus[langDir]) > 0 {
			continue
		}

		l.logger.Info("loading directory", "path", dir)
		files, err := l.LoadDir(dir, maxFiles)
		if err != nil {
			return nil, err
		}
		corpus[langDir] = files
	}

	l.logger.Info("corpus loaded",
		"root", root,
		"languages", len(corpus),
		"files", corpus.Files(),
		"records", corpus.Records())

	return corpus, nil
}
