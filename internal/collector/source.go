package collector

import (
	"bufio"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const (
	DefaultProcRoot  = "/proc"
	DefaultOSRelease = "/etc/os-release"
	DefaultPasswd    = "/etc/passwd"
)

// Source reads kernel-exposed records and returns them as typed values. Every
// method is a fresh read with no caching. A missing record or an unparsable
// token yields the zero value: processes exit between being listed and being
// read, and that must never fail a refresh.
type Source struct {
	fs        afero.Fs
	procRoot  string
	osRelease string
	passwd    string
	log       *zap.Logger
}

type Option func(*Source)

// WithProcRoot points the source at a procfs mounted somewhere other than
// /proc, e.g. a host's procfs inside a container.
func WithProcRoot(root string) Option {
	return func(s *Source) { s.procRoot = root }
}

func WithOSRelease(path string) Option {
	return func(s *Source) { s.osRelease = path }
}

func WithPasswd(path string) Option {
	return func(s *Source) { s.passwd = path }
}

func WithLogger(log *zap.Logger) Option {
	return func(s *Source) { s.log = log }
}

// NewSource returns a Source reading through fs. A nil fs means the real
// filesystem.
func NewSource(fs afero.Fs, opts ...Option) *Source {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	s := &Source{
		fs:        fs,
		procRoot:  DefaultProcRoot,
		osRelease: DefaultOSRelease,
		passwd:    DefaultPasswd,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	return s
}

func (s *Source) procPath(elem ...string) string {
	return filepath.Join(append([]string{s.procRoot}, elem...)...)
}

func (s *Source) pidPath(pid int, name string) string {
	return s.procPath(strconv.Itoa(pid), name)
}

// scanLines calls fn for each line of path until fn returns false. It reports
// whether the record could be opened.
func (s *Source) scanLines(path string, fn func(line string) bool) bool {
	f, err := s.fs.Open(path)
	if err != nil {
		s.log.Debug("record unavailable", zap.String("path", path), zap.Error(err))
		return false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	// command lines may be far longer than the default token size
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)
	for scanner.Scan() {
		if !fn(scanner.Text()) {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		s.log.Debug("record truncated", zap.String("path", path), zap.Error(err))
	}
	return true
}

func (s *Source) firstLine(path string) string {
	var first string
	s.scanLines(path, func(line string) bool {
		first = line
		return false
	})
	return first
}

// labeledValue returns the token following the first line whose leading token
// is exactly label.
func (s *Source) labeledValue(path, label string) string {
	var value string
	s.scanLines(path, func(line string) bool {
		fields := strings.Fields(line)
		if len(fields) < 2 || fields[0] != label {
			return true
		}
		value = fields[1]
		return false
	})
	return value
}

func (s *Source) labeledInt(path, label string) int {
	n, err := strconv.Atoi(s.labeledValue(path, label))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
