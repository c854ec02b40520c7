// Package build drives whole-file compilation for the helix CLI: it
// discovers DSL sources, compiles each definition in order, and writes
// the emitted code.
package build

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alidlorenzo/helix"
	"github.com/alidlorenzo/helix/lib/sexp"
)

// srcExt is the extension of helix DSL source files.
const srcExt = ".hlx"

// Options configures a build run.
type Options struct {
	// Debug emits hot-reload instrumentation.
	Debug bool

	// Namespace qualifies every definition name. When empty, each
	// file's basename is used.
	Namespace string
}

// Builder compiles DSL source files.
type Builder struct {
	opts Options
}

// New creates a builder.
func New(opts Options) *Builder {
	return &Builder{opts: opts}
}

// Run compiles the sources matching the given patterns and writes the
// emitted code to w. A pattern is a source file, a directory, or a
// "dir/..." tree pattern.
func (b *Builder) Run(w io.Writer, patterns ...string) error {
	files, err := b.findSources(patterns)
	if err != nil {
		return err
	}

	for _, file := range files {
		if err := b.compileFile(w, file); err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
	}
	return nil
}

// findSources resolves patterns to an ordered list of source files.
func (b *Builder) findSources(patterns []string) ([]string, error) {
	var files []string

	for _, pattern := range patterns {
		if strings.HasSuffix(pattern, "/...") {
			root := strings.TrimSuffix(pattern, "/...")
			if root == "" {
				root = "."
			}

			err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}
				if info.IsDir() {
					// Skip hidden directories and vendor
					base := filepath.Base(path)
					if path != root && (strings.HasPrefix(base, ".") || base == "vendor") {
						return filepath.SkipDir
					}
					return nil
				}
				if strings.HasSuffix(path, srcExt) {
					files = append(files, path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
			continue
		}

		info, err := os.Stat(pattern)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, pattern)
			continue
		}
		entries, err := os.ReadDir(pattern)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if !entry.IsDir() && strings.HasSuffix(entry.Name(), srcExt) {
				files = append(files, filepath.Join(pattern, entry.Name()))
			}
		}
	}

	return files, nil
}

// compileFile compiles every top-level form of one source file.
// Definition forms emit their full instruction order; any other
// top-level form is expanded and printed as-is.
func (b *Builder) compileFile(w io.Writer, file string) error {
	src, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	ns := b.opts.Namespace
	if ns == "" {
		ns = strings.TrimSuffix(filepath.Base(file), srcExt)
	}
	compiler := helix.New(helix.Config{Debug: b.opts.Debug, Namespace: ns})

	forms, err := sexp.ReadAll(string(src))
	if err != nil {
		return err
	}

	reg := helix.NewRegistry()
	var out []sexp.Node
	for _, form := range forms {
		if _, ok := helix.IsDefinition(form); ok {
			compiled, err := compiler.Compile(form)
			if err != nil {
				return err
			}
			reg.Add(compiled)
			out = append(out, compiled.Forms()...)
			continue
		}
		expanded, err := compiler.Expand(form)
		if err != nil {
			return err
		}
		out = append(out, expanded)
	}

	for _, form := range out {
		if _, err := fmt.Fprintln(w, form.String()); err != nil {
			return err
		}
	}
	return nil
}
