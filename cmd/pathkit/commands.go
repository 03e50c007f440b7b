package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/pathkit/pkg/config"
	"github.com/user/pathkit/pkg/locate"
	"github.com/user/pathkit/pkg/path"
	"github.com/user/pathkit/pkg/semver"
)

// requireArgs fails unless the command received at least n arguments.
func requireArgs(c *cli.Context, n int) error {
	if c.NArg() < n {
		return errors.New(l10n.F("%s requires at least %d argument(s)", c.Command.Name, n))
	}
	return nil
}

func (st *state) println(c *cli.Context, p path.Path) {
	fmt.Fprintln(c.App.Writer, st.cfg.FormatPath(p))
}

func normalizeCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:      "normalize",
		Usage:     l10n.T("Print the canonical form of each path"),
		ArgsUsage: "<path>...",
		Action: func(c *cli.Context) error {
			if err := requireArgs(c, 1); err != nil {
				return err
			}
			for _, raw := range c.Args().Slice() {
				st.println(c, st.cfg.ParsePath(raw))
			}
			return nil
		},
	}
}

func joinCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:      "join",
		Usage:     l10n.T("Join paths from left to right"),
		ArgsUsage: "<directory> <path>...",
		Action: func(c *cli.Context) error {
			if err := requireArgs(c, 2); err != nil {
				return err
			}
			args := c.Args().Slice()
			result := st.cfg.ParsePath(args[0])
			for _, raw := range args[1:] {
				joined, err := result.Join(st.cfg.ParsePath(raw))
				if err != nil {
					return err
				}
				result = joined
			}
			st.println(c, result)
			return nil
		},
	}
}

func relativeCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:      "relative",
		Usage:     l10n.T("Express a path relative to a base directory"),
		ArgsUsage: "<target> [base]",
		Action: func(c *cli.Context) error {
			if err := requireArgs(c, 1); err != nil {
				return err
			}
			base := st.cfg.Base
			if c.NArg() > 1 {
				base = st.cfg.ParsePath(c.Args().Get(1))
			}
			relative, err := st.cfg.ParsePath(c.Args().First()).RelativeTo(base)
			if err != nil {
				return err
			}
			st.println(c, relative)
			return nil
		},
	}
}

func parentCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:      "parent",
		Usage:     l10n.T("Print the parent of a path"),
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "levels",
				Aliases: []string{"n"},
				Value:   1,
				Usage:   l10n.T("Number of levels to go up"),
			},
		},
		Action: func(c *cli.Context) error {
			if err := requireArgs(c, 1); err != nil {
				return err
			}
			p := st.cfg.ParsePath(c.Args().First())
			for range c.Int("levels") {
				p = p.Parent()
			}
			st.println(c, p)
			return nil
		},
	}
}

// pathInfo is the decomposition printed by the info command.
type pathInfo struct {
	Path          string   `yaml:"path"`
	Root          string   `yaml:"root,omitempty"`
	Directories   []string `yaml:"directories"`
	FileName      string   `yaml:"file_name,omitempty"`
	FileStem      string   `yaml:"file_stem,omitempty"`
	FileExtension string   `yaml:"file_extension,omitempty"`
	Parent        string   `yaml:"parent"`
}

func describe(cfg config.Config, p path.Path) pathInfo {
	info := pathInfo{
		Path:        cfg.FormatPath(p),
		Directories: p.Directories(),
		Parent:      cfg.FormatPath(p.Parent()),
	}
	if root, err := p.Root(); err == nil {
		info.Root = root + "/"
	}
	if name, err := p.FileName(); err == nil {
		info.FileName = name
		info.FileStem, _ = p.FileStem()
		info.FileExtension, _ = p.FileExtension()
	}
	return info
}

func infoCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     l10n.T("Describe the components of a path"),
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   l10n.T("Output format (text, yaml)"),
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   l10n.T("Write the description to a file"),
			},
		},
		Action: func(c *cli.Context) error {
			if err := requireArgs(c, 1); err != nil {
				return err
			}
			format := st.cfg.OutputFormat
			if c.IsSet("format") {
				format = c.String("format")
			}
			formatter, err := formatterFor(format)
			if err != nil {
				return err
			}

			info := describe(st.cfg, st.cfg.ParsePath(c.Args().First()))
			if c.IsSet("output") {
				fs, err := st.platform.FileSystem()
				if err != nil {
					return err
				}
				return writeFormatted(fs, st.cfg.ParsePath(c.String("output")), formatter, info)
			}

			content, err := formatter.Format(info)
			if err != nil {
				return err
			}
			_, err = io.WriteString(c.App.Writer, content)
			return err
		},
	}
}

func findCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:  "find",
		Usage: l10n.T("Search upward for a marker file"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "start",
				Usage: l10n.T("Directory to start from (default: current directory)"),
			},
			&cli.StringFlag{
				Name:  "name",
				Usage: l10n.T("Marker file name (default: marker_file from config)"),
			},
		},
		Action: func(c *cli.Context) error {
			fs, err := st.platform.FileSystem()
			if err != nil {
				return err
			}

			var start path.Path
			if c.IsSet("start") {
				start = st.cfg.ParsePath(c.String("start") + "/")
			} else if start, err = fs.CurrentDirectory(); err != nil {
				return err
			}
			name := st.cfg.MarkerFile
			if c.IsSet("name") {
				name = c.String("name")
			}

			found, err := locate.FindUpward(c.Context, fs, start, name,
				locate.WithMaxDepth(st.cfg.SearchDepth), locate.WithLogger(st.log))
			if err != nil {
				return err
			}
			st.println(c, found)
			return nil
		},
	}
}

func lsCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:      "ls",
		Usage:     l10n.T("List files in a directory"),
		ArgsUsage: "<directory>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "ext",
				Aliases: []string{"e"},
				Usage:   l10n.T("Only list files with this extension"),
			},
			&cli.BoolFlag{
				Name:    "relative",
				Aliases: []string{"r"},
				Usage:   l10n.T("Print paths relative to the directory"),
			},
		},
		Action: func(c *cli.Context) error {
			if err := requireArgs(c, 1); err != nil {
				return err
			}
			fs, err := st.platform.FileSystem()
			if err != nil {
				return err
			}

			dir := st.cfg.ParsePath(c.Args().First() + "/")
			files, err := locate.ListFiles(c.Context, fs, dir, c.String("ext"), locate.WithLogger(st.log))
			if err != nil {
				return err
			}
			if c.Bool("relative") {
				if files, err = locate.Relativize(dir, files); err != nil {
					return err
				}
			}
			for _, file := range files {
				st.println(c, file)
			}
			return nil
		},
	}
}

func runCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     l10n.T("Run an executable and report its exit code"),
		ArgsUsage: "<executable> [arguments]...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "dir",
				Usage: l10n.T("Working directory (default: current directory)"),
			},
			&cli.BoolFlag{
				Name:  "capture",
				Usage: l10n.T("Capture output and print it after the process exits"),
			},
		},
		Action: func(c *cli.Context) error {
			if err := requireArgs(c, 1); err != nil {
				return err
			}
			pm, err := st.platform.ProcessManager()
			if err != nil {
				return err
			}
			sys, err := st.platform.System()
			if err != nil {
				return err
			}

			dir := path.Empty()
			if c.IsSet("dir") {
				dir = st.cfg.ParsePath(c.String("dir") + "/")
			}
			args := c.Args().Slice()
			executable := st.cfg.ParsePath(args[0])
			if !strings.ContainsAny(args[0], `/\`) {
				if executable, err = pm.FindExecutable(args[0]); err != nil {
					return err
				}
			}
			process := pm.CreateProcess(executable, args[1:], dir, c.Bool("capture"))

			started := sys.CurrentTime()
			if err := process.Start(c.Context); err != nil {
				return err
			}
			if err := process.Wait(); err != nil {
				return err
			}
			st.log.Debug("Process %s finished in %s", args[0], sys.CurrentTime().Sub(started))
			if c.Bool("capture") {
				fmt.Fprint(c.App.Writer, process.Stdout())
				fmt.Fprint(c.App.ErrWriter, process.Stderr())
			}

			if code := process.ExitCode(); code != 0 {
				return cli.Exit(l10n.F("Process %s exited with code %d", args[0], code), code)
			}
			return nil
		},
	}
}

func lookupCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:      "lookup",
		Usage:     l10n.T("Check that a dynamic library exports a symbol"),
		ArgsUsage: "<library> <symbol>",
		Action: func(c *cli.Context) error {
			if err := requireArgs(c, 2); err != nil {
				return err
			}
			lm, err := st.platform.LibraryManager()
			if err != nil {
				return err
			}

			library, err := lm.LoadDynamicLibrary(st.cfg.ParsePath(c.Args().Get(0)))
			if err != nil {
				return err
			}
			symbol, err := library.Lookup(c.Args().Get(1))
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "%s: %T\n", c.Args().Get(1), symbol)
			return nil
		},
	}
}

func semverCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:  "semver",
		Usage: l10n.T("Work with semantic versions"),
		Subcommands: []*cli.Command{
			{
				Name:      "compare",
				Usage:     l10n.T("Print -1, 0 or 1 comparing two versions"),
				ArgsUsage: "<version> <version>",
				Action: func(c *cli.Context) error {
					if err := requireArgs(c, 2); err != nil {
						return err
					}
					lhs, err := semver.Parse(c.Args().Get(0))
					if err != nil {
						return err
					}
					rhs, err := semver.Parse(c.Args().Get(1))
					if err != nil {
						return err
					}
					fmt.Fprintln(c.App.Writer, lhs.Compare(rhs))
					return nil
				},
			},
			{
				Name:      "check",
				Usage:     l10n.T("Fail if a version is older than min_version"),
				ArgsUsage: "<version>",
				Action: func(c *cli.Context) error {
					if err := requireArgs(c, 1); err != nil {
						return err
					}
					v, err := semver.Parse(c.Args().First())
					if err != nil {
						return err
					}
					if v.Less(st.cfg.MinVersion) {
						return errors.New(l10n.F("Version %s is older than the minimum %s", v, st.cfg.MinVersion))
					}
					fmt.Fprintln(c.App.Writer, v)
					return nil
				},
			},
		},
	}
}
