package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ideamans/go-l10n"
	"gopkg.in/yaml.v3"

	"github.com/user/pathkit/pkg/config"
	"github.com/user/pathkit/pkg/path"
	"github.com/user/pathkit/pkg/ports"
)

// Formatter renders a path description.
type Formatter interface {
	Format(info pathInfo) (string, error)
}

// FormatFunc is a function adapter for the Formatter interface.
type FormatFunc func(info pathInfo) (string, error)

// Format implements the Formatter interface.
func (f FormatFunc) Format(info pathInfo) (string, error) {
	return f(info)
}

var formatters = map[string]Formatter{
	config.FormatText: FormatFunc(formatText),
	config.FormatYAML: FormatFunc(formatYAML),
}

func formatterFor(name string) (Formatter, error) {
	f, ok := formatters[name]
	if !ok {
		return nil, errors.New(l10n.F("Unknown output format %s", name))
	}
	return f, nil
}

func formatText(info pathInfo) (string, error) {
	var sb strings.Builder
	line := func(label, value string) {
		fmt.Fprintf(&sb, "%s: %s\n", l10n.T(label), value)
	}
	line("path", info.Path)
	line("root", info.Root)
	line("directories", strings.Join(info.Directories, " "))
	line("file name", info.FileName)
	line("file stem", info.FileStem)
	line("file extension", info.FileExtension)
	line("parent", info.Parent)
	return sb.String(), nil
}

func formatYAML(info pathInfo) (string, error) {
	data, err := yaml.Marshal(info)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// writeFormatted renders info to file through fs, creating parent
// directories as needed.
func writeFormatted(fs ports.FileSystem, file path.Path, formatter Formatter, info pathInfo) error {
	content, err := formatter.Format(info)
	if err != nil {
		return err
	}
	if err := fs.CreateDirectory(file.Parent()); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	w, err := fs.OpenWrite(file)
	if err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	if _, err := io.WriteString(w, content); err != nil {
		w.Close()
		return fmt.Errorf("write file: %w", err)
	}
	return w.Close()
}
