package fsworkspace

import (
	"bytes"
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aalvaropc/aoc/internal/app/template"
	"github.com/aalvaropc/aoc/internal/domain"
	"github.com/aalvaropc/aoc/internal/infra/logger"
	"github.com/aalvaropc/aoc/internal/ports"
)

//go:embed templates
var templatesFS embed.FS

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.WorkspaceInitializer = (*Initializer)(nil)

func (i *Initializer) Init(spec domain.WorkspaceSpec, force bool) error {
	root := filepath.Clean(spec.Root)
	def := domain.DefaultConfig()

	year := spec.Year
	if year == 0 {
		year = def.Defaults.Year
	}
	vars := map[string]string{"year": strconv.Itoa(year)}

	dirs := []string{
		filepath.Join(root, def.Paths.InputsDir, strconv.Itoa(year)),
		filepath.Join(root, def.Paths.RunsDir),
		filepath.Join(root, filepath.FromSlash(logger.Dir)),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return initError(d, err)
		}
	}

	if err := ensureGitignore(root); err != nil {
		return initError(filepath.Join(root, ".gitignore"), err)
	}

	return fs.WalkDir(templatesFS, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel := strings.TrimPrefix(p, "templates/")
		dst := filepath.Join(root, filepath.FromSlash(rel))

		if !force {
			if _, statErr := os.Stat(dst); statErr == nil {
				return nil
			}
		}

		b, err := fs.ReadFile(templatesFS, p)
		if err != nil {
			return err
		}
		out, err := template.RenderString(string(b), vars)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return initError(dst, err)
		}
		if err := os.WriteFile(dst, []byte(out), 0o644); err != nil {
			return initError(dst, err)
		}
		return nil
	})
}

func initError(path string, err error) error {
	return &domain.OpError{
		Op:   "fsworkspace.init",
		Kind: domain.KindExecution,
		Path: path,
		Err:  err,
	}
}

// gitignoreEntries keep puzzle inputs out of version control along with
// local run history and logs.
var gitignoreEntries = []string{
	"inputs/",
	"runs/",
	".aoc/",
}

const gitignoreHeader = "# aoc"

// ignoreKey normalises a .gitignore pattern so "inputs", "/inputs" and
// "inputs/" count as the same entry.
func ignoreKey(line string) string {
	return strings.Trim(strings.TrimSpace(line), "/")
}

// ensureGitignore appends the missing entries under a single header and
// leaves existing lines untouched.
func ensureGitignore(root string) error {
	path := filepath.Join(root, ".gitignore")

	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	have := map[string]bool{}
	hasHeader := false
	for _, line := range strings.Split(string(existing), "\n") {
		if strings.TrimSpace(line) == gitignoreHeader {
			hasHeader = true
			continue
		}
		if k := ignoreKey(line); k != "" && !strings.HasPrefix(k, "#") {
			have[k] = true
		}
	}

	var block []string
	for _, e := range gitignoreEntries {
		if !have[ignoreKey(e)] {
			block = append(block, e)
		}
	}
	if len(block) == 0 {
		return nil
	}
	if !hasHeader {
		block = append([]string{gitignoreHeader}, block...)
	}

	var out bytes.Buffer
	out.Write(existing)
	if len(existing) > 0 {
		if !bytes.HasSuffix(existing, []byte("\n")) {
			out.WriteByte('\n')
		}
		out.WriteByte('\n')
	}
	out.WriteString(strings.Join(block, "\n"))
	out.WriteByte('\n')

	return os.WriteFile(path, out.Bytes(), 0o644)
}
