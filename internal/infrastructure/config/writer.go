package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

var sectionHeader = regexp.MustCompile(`^\s*\[([^\]]+)\]\s*$`)

// EncodeConfigOrdered renders cfg as TOML with sections sorted by name.
func EncodeConfigOrdered(cfg *Config) ([]byte, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return []byte(sortTOMLSections(buf.String())), nil
}

// WriteConfigOrdered writes cfg to path, creating the parent directory.
func WriteConfigOrdered(cfg *Config, path string) error {
	data, err := EncodeConfigOrdered(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// sortTOMLSections reorders [section] blocks alphabetically; top-level keys stay first.
func sortTOMLSections(content string) string {
	type section struct {
		name  string
		lines []string
	}

	var (
		preamble []string
		sections []section
	)
	for _, line := range strings.Split(content, "\n") {
		if match := sectionHeader.FindStringSubmatch(line); match != nil {
			sections = append(sections, section{name: match[1], lines: []string{line}})
			continue
		}
		if len(sections) == 0 {
			preamble = append(preamble, line)
			continue
		}
		last := &sections[len(sections)-1]
		last.lines = append(last.lines, line)
	}

	slices.SortStableFunc(sections, func(a, b section) int {
		return strings.Compare(a.name, b.name)
	})

	var out strings.Builder
	for _, line := range preamble {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out.WriteString(line)
		out.WriteString("\n")
	}
	for _, sec := range sections {
		if out.Len() > 0 {
			out.WriteString("\n")
		}
		body := strings.TrimRight(strings.Join(sec.lines, "\n"), "\n ")
		out.WriteString(body)
		out.WriteString("\n")
	}
	return out.String()
}
