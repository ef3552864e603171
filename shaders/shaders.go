// Package shaders holds the GLSL sources of the demos and resolves them by
// logical name.
//
// Each .glsl file is split into sections introduced by a line of the form
// "-- Name", where Name is an identifier. A section is addressed as "File.Name", so the tessellation
// evaluation stage of Torus.glsl is "Torus.TES". Text before the first
// section is a free-form comment.
package shaders

import (
	"bufio"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strings"
	"sync"
)

//go:embed *.glsl
var files embed.FS

// sectionHeader matches "-- Name" lines. GLSL such as "--i;" does not match.
var sectionHeader = regexp.MustCompile(`^--[ \t]+([A-Za-z_][A-Za-z0-9_]*)[ \t]*$`)

// Library maps "File.Section" keys to shader source.
type Library struct {
	sources map[string]string
}

var (
	defaultOnce sync.Once
	defaultLib  *Library
	defaultErr  error
)

// Default returns the library built from the embedded sources.
func Default() (*Library, error) {
	defaultOnce.Do(func() {
		defaultLib, defaultErr = Load(files)
	})
	return defaultLib, defaultErr
}

// Load parses every *.glsl file at the root of fsys.
func Load(fsys fs.FS) (*Library, error) {
	names, err := fs.Glob(fsys, "*.glsl")
	if err != nil {
		return nil, err
	}
	lib := &Library{sources: make(map[string]string)}
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		prefix := strings.TrimSuffix(path.Base(name), path.Ext(name))
		if err := lib.Add(prefix, string(data)); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	return lib, nil
}

// Add parses text into sections and registers them under prefix.
func (l *Library) Add(prefix, text string) error {
	if l.sources == nil {
		l.sources = make(map[string]string)
	}
	var (
		section string
		body    strings.Builder
	)
	flush := func() error {
		if section == "" {
			return nil
		}
		key := prefix + "." + section
		if _, dup := l.sources[key]; dup {
			return fmt.Errorf("duplicate section %q", key)
		}
		l.sources[key] = strings.TrimLeft(body.String(), "\n")
		body.Reset()
		return nil
	}

	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		line := sc.Text()
		if m := sectionHeader.FindStringSubmatch(line); m != nil {
			if err := flush(); err != nil {
				return err
			}
			section = m[1]
			continue
		}
		if section != "" {
			body.WriteString(line)
			body.WriteByte('\n')
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	return flush()
}

// Source implements surfaces.SourceLookup.
func (l *Library) Source(key string) (string, bool) {
	src, ok := l.sources[key]
	return src, ok
}

// Keys returns every registered key in sorted order.
func (l *Library) Keys() []string {
	keys := make([]string, 0, len(l.sources))
	for k := range l.sources {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
