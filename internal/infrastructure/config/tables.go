package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/bnema/clonecfg/internal/domain/entity"
)

type tablesFile struct {
	NonInteractiveKeys *[]string           `toml:"non_interactive_keys"`
	CustomEditorKeys   *[]string           `toml:"custom_editor_keys"`
	CustomOptionKeys   *[]string           `toml:"custom_option_keys"`
	EscapeTextKeys     *[]string           `toml:"escape_text_keys"`
	EscapeListFields   map[string][]string `toml:"escape_list_fields"`
	PrefixAliases      *[]prefixAliasDTO   `toml:"prefix_aliases"`
	ExplicitGroups     *[]explicitGroupDTO `toml:"explicit_groups"`
	Composites         *[]compositeDTO     `toml:"composites"`
	ResetOnDisable     *[]resetGroupDTO    `toml:"reset_on_disable"`
}

type prefixAliasDTO struct {
	Parent string `toml:"parent"`
	Prefix string `toml:"prefix"`
}

type explicitGroupDTO struct {
	Parent     string   `toml:"parent"`
	Children   []string `toml:"children"`
	DeriveFrom string   `toml:"derive_from"`
}

type compositeDTO struct {
	Key      string               `toml:"key"`
	Category string               `toml:"category"`
	Members  []compositeMemberDTO `toml:"members"`
}

type compositeMemberDTO struct {
	Key     string `toml:"key"`
	Default any    `toml:"default"`
}

type resetGroupDTO struct {
	Parent   string   `toml:"parent"`
	Children []string `toml:"children"`
}

// LoadTables returns the built-in tables with any table named in the TOML
// file at path replaced wholesale. An empty path yields the defaults.
func LoadTables(path string) (*entity.Tables, error) {
	tables := entity.DefaultTables()
	if path == "" {
		return tables, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tables file: %w", err)
	}
	if err := applyTables(tables, data); err != nil {
		return nil, fmt.Errorf("failed to parse tables file %s: %w", path, err)
	}
	if err := tables.Validate(); err != nil {
		return nil, err
	}
	return tables, nil
}

func applyTables(tables *entity.Tables, data []byte) error {
	var file tablesFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return err
	}

	if file.NonInteractiveKeys != nil {
		tables.NonInteractiveKeys = *file.NonInteractiveKeys
	}
	if file.CustomEditorKeys != nil {
		tables.CustomEditorKeys = *file.CustomEditorKeys
	}
	if file.CustomOptionKeys != nil {
		tables.CustomOptionKeys = *file.CustomOptionKeys
	}
	if file.EscapeTextKeys != nil {
		tables.EscapeTextKeys = *file.EscapeTextKeys
	}
	if file.EscapeListFields != nil {
		tables.EscapeListFields = file.EscapeListFields
	}
	if file.PrefixAliases != nil {
		aliases := make([]entity.PrefixAlias, 0, len(*file.PrefixAliases))
		for _, a := range *file.PrefixAliases {
			aliases = append(aliases, entity.PrefixAlias{Parent: a.Parent, Prefix: a.Prefix})
		}
		tables.PrefixAliases = aliases
	}
	if file.ExplicitGroups != nil {
		groups := make([]entity.ExplicitGroup, 0, len(*file.ExplicitGroups))
		for _, g := range *file.ExplicitGroups {
			groups = append(groups, entity.ExplicitGroup{Parent: g.Parent, Children: g.Children, DeriveFrom: g.DeriveFrom})
		}
		tables.ExplicitGroups = groups
	}
	if file.ResetOnDisable != nil {
		groups := make([]entity.ResetGroup, 0, len(*file.ResetOnDisable))
		for _, g := range *file.ResetOnDisable {
			groups = append(groups, entity.ResetGroup{Parent: g.Parent, Children: g.Children})
		}
		tables.ResetOnDisable = groups
	}
	if file.Composites != nil {
		composites := make([]entity.CompositeGroup, 0, len(*file.Composites))
		for _, c := range *file.Composites {
			group := entity.CompositeGroup{Key: c.Key, Category: c.Category}
			for _, m := range c.Members {
				def, err := entity.FromAny(m.Default)
				if err != nil {
					return fmt.Errorf("composite %s member %s: %w", c.Key, m.Key, err)
				}
				group.Members = append(group.Members, entity.CompositeMember{Key: m.Key, Default: def})
			}
			composites = append(composites, group)
		}
		tables.Composites = composites
	}
	return nil
}
