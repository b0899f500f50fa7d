package infodat

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"beatinfo/internal/beatmap"
	"beatinfo/internal/fileutil"
	"beatinfo/internal/logging"
	"beatinfo/internal/song"
	"beatinfo/internal/textutil"
)

// BackupSuffix is appended to info.dat for the copy kept before a save.
const BackupSuffix = ".bak"

// Roots resolves where new song packages are created.
type Roots interface {
	ReleaseRoot() string
	WorkInProgressRoot() string
}

// Options configures a Store.
type Options struct {
	Roots Roots
	// LockDir holds per-package lock files. Empty disables locking.
	LockDir string
	// Backup copies the current info.dat to info.dat.bak before replacing it.
	Backup bool
	// Loader parses difficulty files. Defaults to beatmap.SummaryLoader.
	Loader beatmap.Loader
	Logger *slog.Logger
}

// Store reads and writes info.dat descriptors inside song package directories.
type Store struct {
	roots   Roots
	lockDir string
	backup  bool
	loader  beatmap.Loader
	logger  *slog.Logger
}

// NewStore builds a Store from opts.
func NewStore(opts Options) *Store {
	loader := opts.Loader
	if loader == nil {
		loader = beatmap.SummaryLoader{}
	}
	return &Store{
		roots:   opts.Roots,
		lockDir: strings.TrimSpace(opts.LockDir),
		backup:  opts.Backup,
		loader:  loader,
		logger:  logging.NewComponentLogger(opts.Logger, "infodat"),
	}
}

// Load reads {dir}/info.dat. A package without a descriptor yields
// ErrNotFound; unparseable content yields ErrCorrupt and no partial song.
func (st *Store) Load(dir string) (*song.Song, error) {
	path := filepath.Join(dir, InfoFilename)
	logger := st.logger.With(logging.Song(dir))

	doc, err := ReadDocument(path)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			logger.Debug("no descriptor in package", logging.String("path", path))
			return nil, err
		}
		st.logFailure(logger, "descriptor unreadable", "info_load_failed", "fix or restore info.dat", err)
		return nil, err
	}

	s, err := Decode(doc)
	if err != nil {
		err = &CorruptError{Path: path, Err: err}
		st.logFailure(logger, "descriptor unreadable", "info_load_failed", "fix or restore info.dat", err)
		return nil, err
	}
	s.Directory = dir
	s.WIP = st.underWorkInProgress(dir)

	logger.Debug("descriptor loaded",
		logging.Int("sets", len(s.Sets)),
		logging.Int("difficulties", s.DifficultyCount()),
	)
	return s, nil
}

// ResolveDirectory returns the package directory for s. An empty Directory
// is derived from the song name under the release or work-in-progress root
// and recorded on the song.
func (st *Store) ResolveDirectory(s *song.Song) (string, error) {
	if strings.TrimSpace(s.Directory) != "" {
		return s.Directory, nil
	}
	if st.roots == nil {
		return "", errors.New("no song roots configured")
	}
	root := st.roots.ReleaseRoot()
	if s.WIP {
		root = st.roots.WorkInProgressRoot()
	}
	if strings.TrimSpace(root) == "" {
		return "", errors.New("song root is empty")
	}
	name := textutil.SanitizeFileName(s.SongName)
	if name == "" {
		return "", fmt.Errorf("song name %q does not yield a directory name", s.SongName)
	}
	s.Directory = filepath.Join(root, name)
	return s.Directory, nil
}

// Save writes s to {Directory}/info.dat, creating the directory when needed.
// The file is replaced atomically while holding the package lock.
func (st *Store) Save(s *song.Song) error {
	if s == nil {
		return &WriteError{Op: "encode", Err: errors.New("nil song")}
	}
	dir, err := st.ResolveDirectory(s)
	if err != nil {
		err = &WriteError{Path: s.SongName, Op: "resolve", Err: err}
		st.logFailure(st.logger, "descriptor not saved", "info_save_failed", "set a song name or configure song roots", err)
		return err
	}
	path := filepath.Join(dir, InfoFilename)
	logger := st.logger.With(logging.Song(dir))

	if err := st.save(dir, path, s, logger); err != nil {
		st.logFailure(logger, "descriptor not saved", "info_save_failed", "check permissions and free space for the package directory", err)
		return err
	}

	logger.Info("descriptor saved",
		logging.String("path", path),
		logging.Int("difficulties", s.DifficultyCount()),
	)
	return nil
}

func (st *Store) save(dir, path string, s *song.Song, logger *slog.Logger) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &WriteError{Path: dir, Op: "mkdir", Err: err}
	}

	data, err := Render(s)
	if err != nil {
		return &WriteError{Path: path, Op: "encode", Err: err}
	}

	unlock, err := st.lock(dir)
	if err != nil {
		return &WriteError{Path: path, Op: "lock", Err: err}
	}
	defer unlock()

	if st.backup {
		st.backupExisting(path, logger)
	}

	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return &WriteError{Path: path, Op: "write", Err: err}
	}
	return nil
}

func (st *Store) backupExisting(path string, logger *slog.Logger) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := fileutil.CopyFileVerified(path, path+BackupSuffix); err != nil {
		logging.WarnWithContext(logger, "descriptor backup failed", "info_backup_failed",
			logging.Error(err),
			logging.String(logging.FieldImpact, "previous info.dat is not preserved"),
			logging.String(logging.FieldErrorHint, "check free space in the package directory"),
		)
		return
	}
	logger.Debug("descriptor backed up", logging.String("path", path+BackupSuffix))
}

// LockPath returns the lock file used to serialize writes to dir.
func (st *Store) LockPath(dir string) string {
	if st.lockDir == "" {
		return ""
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = filepath.Clean(dir)
	}
	return filepath.Join(st.lockDir, fileutil.Digest([]byte(abs))[:32]+".lock")
}

func (st *Store) lock(dir string) (func(), error) {
	lockPath := st.LockPath(dir)
	if lockPath == "" {
		return func() {}, nil
	}
	if err := os.MkdirAll(st.lockDir, 0o755); err != nil {
		return nil, err
	}
	fileLock := flock.New(lockPath)
	if err := fileLock.Lock(); err != nil {
		return nil, err
	}
	return func() {
		_ = fileLock.Unlock()
	}, nil
}

// LoadDifficultyContent reads the geometry file of d and hands it to the
// configured loader.
func (st *Store) LoadDifficultyContent(s *song.Song, d *song.Difficulty) (*beatmap.Map, error) {
	if s == nil || d == nil {
		return nil, errors.New("song and difficulty are required")
	}
	path := filepath.Join(s.Directory, d.Filename)
	doc, err := ReadDocument(path)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			st.logFailure(st.logger.With(logging.Song(s.Directory)), "difficulty file unreadable", "beatmap_load_failed", "fix or restore the difficulty file", err)
		}
		return nil, err
	}
	m, err := st.loader.LoadMap(doc, path)
	if err != nil {
		return nil, &CorruptError{Path: path, Err: err}
	}
	return m, nil
}

func (st *Store) underWorkInProgress(dir string) bool {
	if st.roots == nil {
		return false
	}
	root := strings.TrimSpace(st.roots.WorkInProgressRoot())
	if root == "" {
		return false
	}
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(dir))
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func (st *Store) logFailure(logger *slog.Logger, msg, eventType, hint string, err error) {
	logging.ErrorWithContext(logger, msg, eventType,
		logging.Error(err),
		logging.String(logging.FieldErrorKind, Kind(err)),
		logging.String(logging.FieldErrorHint, hint),
	)
}
