package main

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/user/pathkit/pkg/mocks"
	"github.com/user/pathkit/pkg/path"
	"github.com/user/pathkit/pkg/platform"
	"github.com/user/pathkit/pkg/ports"
)

type harness struct {
	fs     *mocks.FileSystem
	pm     *mocks.ProcessManager
	lm     *mocks.LibraryManager
	sys    *mocks.System
	log    *mocks.Logger
	out    bytes.Buffer
	errOut bytes.Buffer
	level  ports.LogLevel
}

func newHarness() *harness {
	return &harness{
		fs:  mocks.NewFileSystem(),
		pm:  mocks.NewProcessManager(),
		lm:  mocks.NewLibraryManager(),
		sys: mocks.NewSystem(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		log: mocks.NewLogger(),
	}
}

func (h *harness) run(t *testing.T, args ...string) error {
	t.Helper()
	h.out.Reset()
	h.errOut.Reset()

	app := newApp(environment{
		out:    &h.out,
		errOut: &h.errOut,
		logger: func(level ports.LogLevel) ports.Logger {
			h.level = level
			return h.log
		},
		platform: func(log ports.Logger) *platform.Platform {
			return platform.New(
				platform.UseFileSystem(h.fs),
				platform.UseProcessManager(h.pm),
				platform.UseLibraryManager(h.lm),
				platform.UseSystem(h.sys),
				platform.UseLogger(log),
			)
		},
	})
	app.ExitErrHandler = func(*cli.Context, error) {}
	return app.RunContext(context.Background(), append([]string{"pathkit"}, args...))
}

func TestNormalize(t *testing.T) {
	h := newHarness()

	require.NoError(t, h.run(t, "normalize", "a\\b/../c", "/x/./y/"))
	assert.Equal(t, "./a/c\n/x/y/\n", h.out.String())

	require.NoError(t, h.run(t, "--native-output", "normalize", "a/b"))
	assert.Equal(t, ".\\a\\b\n", h.out.String())

	require.Error(t, h.run(t, "normalize"))
}

func TestJoin(t *testing.T) {
	h := newHarness()

	require.NoError(t, h.run(t, "join", "C:/src/", "../include/", "lib.h"))
	assert.Equal(t, "C:/include/lib.h\n", h.out.String())

	require.ErrorIs(t, h.run(t, "join", "./file.txt", "a"), path.ErrInvalidOperation)
	require.ErrorIs(t, h.run(t, "join", "./a/", "/b"), path.ErrInvalidOperation)
}

func TestRelative(t *testing.T) {
	h := newHarness()

	require.NoError(t, h.run(t, "relative", "/repo/src/main.go", "/repo/docs/"))
	assert.Equal(t, "../src/main.go\n", h.out.String())

	// The default base is "./"
	require.NoError(t, h.run(t, "relative", "./a/b/"))
	assert.Equal(t, "./a/b/\n", h.out.String())
}

func TestParent(t *testing.T) {
	h := newHarness()

	require.NoError(t, h.run(t, "parent", "/a/b/c.txt"))
	assert.Equal(t, "/a/b/\n", h.out.String())

	require.NoError(t, h.run(t, "parent", "-n", "3", "./a/"))
	assert.Equal(t, "../../\n", h.out.String())
}

func TestInfo_YAML(t *testing.T) {
	h := newHarness()

	require.NoError(t, h.run(t, "info", "--format", "yaml", "C:\\src\\archive.tar.gz"))

	var info pathInfo
	require.NoError(t, yaml.Unmarshal(h.out.Bytes(), &info))
	assert.Equal(t, pathInfo{
		Path:          "C:/src/archive.tar.gz",
		Root:          "C:/",
		Directories:   []string{"src"},
		FileName:      "archive.tar.gz",
		FileStem:      "archive.tar",
		FileExtension: ".gz",
		Parent:        "C:/src/",
	}, info)
}

func TestInfo_Text(t *testing.T) {
	h := newHarness()

	require.NoError(t, h.run(t, "info", "./docs/readme.md"))
	assert.Contains(t, h.out.String(), "./docs/readme.md")
	assert.Contains(t, h.out.String(), ".md")

	require.Error(t, h.run(t, "info", "--format", "json", "./a"))
}

func TestInfo_Output(t *testing.T) {
	h := newHarness()

	require.NoError(t, h.run(t, "info", "-f", "yaml", "-o", "/out/info.yaml", "/a/b.txt"))
	assert.Empty(t, h.out.String())

	content, ok := h.fs.File(path.Parse("/out/info.yaml"))
	require.True(t, ok)
	assert.Contains(t, content, "file_name: b.txt")
	assert.Contains(t, h.fs.Requests(), "CreateDirectory: /out/")
}

func TestFind(t *testing.T) {
	h := newHarness()
	h.fs.Working = path.Parse("/repo/src/lib/")
	h.fs.AddFile(path.Parse("/repo/Recipe.sml"), "")

	require.NoError(t, h.run(t, "find"))
	assert.Equal(t, "/repo/Recipe.sml\n", h.out.String())

	require.NoError(t, h.run(t, "find", "--start", "/repo/src", "--name", "Recipe.sml"))
	assert.Equal(t, "/repo/Recipe.sml\n", h.out.String())

	require.Error(t, h.run(t, "find", "--name", "missing.txt"))
}

func TestFind_Config(t *testing.T) {
	h := newHarness()
	h.fs.AddFile(path.Parse("/etc/pathkit.yaml"), "marker_file: go.mod\nlog_level: debug\n")
	h.fs.AddFile(path.Parse("/work/go.mod"), "")

	require.NoError(t, h.run(t, "--config", "/etc/pathkit.yaml", "find", "--start", "/work/cmd"))
	assert.Equal(t, "/work/go.mod\n", h.out.String())
	assert.Equal(t, ports.LevelDebug, h.level)
	assert.Contains(t, h.log.Messages(ports.LevelDebug), "Found /work/go.mod")

	require.NoError(t, h.run(t, "--config", "/etc/pathkit.yaml", "--quiet", "normalize", "a"))
	assert.Equal(t, ports.LevelQuiet, h.level)

	require.Error(t, h.run(t, "--config", "/etc/missing.yaml", "normalize", "a"))
}

func TestLs(t *testing.T) {
	h := newHarness()
	h.fs.AddFile(path.Parse("/src/b.go"), "")
	h.fs.AddFile(path.Parse("/src/a.go"), "")
	h.fs.AddFile(path.Parse("/src/notes.txt"), "")

	require.NoError(t, h.run(t, "ls", "--ext", "go", "/src"))
	assert.Equal(t, "/src/a.go\n/src/b.go\n", h.out.String())

	require.NoError(t, h.run(t, "ls", "-r", "/src/"))
	assert.Equal(t, "./a.go\n./b.go\n./notes.txt\n", h.out.String())
}

func TestRun(t *testing.T) {
	h := newHarness()
	h.pm.RegisterResult(path.Parse("/bin/tool"), mocks.ProcessResult{Stdout: "ok\n", Stderr: "warn\n"})
	h.pm.RegisterResult(path.Parse("/bin/fail"), mocks.ProcessResult{ExitCode: 7})

	require.NoError(t, h.run(t, "run", "--capture", "--dir", "/work", "/bin/tool", "-x"))
	assert.Equal(t, "ok\n", h.out.String())
	assert.Equal(t, "warn\n", h.errOut.String())
	assert.Contains(t, h.pm.Requests(), "CreateProcess: /bin/tool [-x] /work/")

	err := h.run(t, "run", "/bin/fail")
	var exitErr cli.ExitCoder
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 7, exitErr.ExitCode())

	require.Error(t, h.run(t, "run", "/bin/unknown"))
	assert.Equal(t, []string{"GetCurrentTime", "GetCurrentTime"}, h.sys.Requests()[:2])
}

func TestRun_BareName(t *testing.T) {
	h := newHarness()
	h.pm.RegisterExecutable("tool", path.Parse("/usr/bin/tool"))
	h.pm.RegisterResult(path.Parse("/usr/bin/tool"), mocks.ProcessResult{})
	h.pm.RegisterResult(path.Parse("./tool"), mocks.ProcessResult{ExitCode: 2})

	require.NoError(t, h.run(t, "run", "tool"))
	assert.Contains(t, h.pm.Requests(), "FindExecutable: tool")
	assert.Contains(t, h.pm.Requests(), "CreateProcess: /usr/bin/tool [] ./")

	h.pm.ClearRequests()
	err := h.run(t, "run", "./tool")
	var exitErr cli.ExitCoder
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.ExitCode())
	assert.NotContains(t, h.pm.Requests(), "FindExecutable: tool")

	require.Error(t, h.run(t, "run", "missing"))
}

func TestRun_Cancelled(t *testing.T) {
	h := newHarness()
	h.pm.CreateProcessFunc = func(executable path.Path, arguments []string, workingDirectory path.Path, interceptInputOutput bool) ports.Process {
		return &cancelledProcess{}
	}

	err := h.run(t, "run", "/bin/tool")
	require.ErrorIs(t, err, context.Canceled)
	var exitErr cli.ExitCoder
	assert.False(t, errors.As(err, &exitErr))
}

type cancelledProcess struct{}

func (p *cancelledProcess) Start(ctx context.Context) error { return nil }
func (p *cancelledProcess) Wait() error                     { return context.Canceled }
func (p *cancelledProcess) ExitCode() int                   { return -1 }
func (p *cancelledProcess) Stdout() string                  { return "" }
func (p *cancelledProcess) Stderr() string                  { return "" }

func TestLookup(t *testing.T) {
	h := newHarness()
	h.lm.RegisterLibrary(path.Parse("/lib/ext.so"), map[string]any{"Build": func() {}})

	require.NoError(t, h.run(t, "lookup", "/lib/ext.so", "Build"))
	assert.Equal(t, "Build: func()\n", h.out.String())

	require.Error(t, h.run(t, "lookup", "/lib/ext.so", "Missing"))
	require.Error(t, h.run(t, "lookup", "/lib/none.so", "Build"))
}

func TestSemver(t *testing.T) {
	h := newHarness()

	require.NoError(t, h.run(t, "semver", "compare", "1.2.3", "1.10"))
	assert.Equal(t, "-1\n", h.out.String())

	require.NoError(t, h.run(t, "semver", "compare", "2", "2.0.0"))
	assert.Equal(t, "0\n", h.out.String())

	require.Error(t, h.run(t, "semver", "compare", "x", "1"))

	h.fs.AddFile(path.Parse("/etc/pathkit.yaml"), "min_version: 2.1\n")
	require.Error(t, h.run(t, "--config", "/etc/pathkit.yaml", "semver", "check", "2.0.9"))
	require.NoError(t, h.run(t, "--config", "/etc/pathkit.yaml", "semver", "check", "2.1.0"))
	assert.Equal(t, "2.1.0\n", h.out.String())
}

func TestVersionFlag(t *testing.T) {
	h := newHarness()

	require.NoError(t, h.run(t, "--version"))
	assert.Contains(t, h.out.String(), "pathkit version")
}
