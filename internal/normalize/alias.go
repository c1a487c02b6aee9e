package normalize

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/passbook/internal/model"
)

//go:embed aliases.yaml
var builtinAliases []byte

// AliasTable maps source column labels to canonical ones. It is built once
// and never modified.
type AliasTable struct {
	labels map[string]string
}

// NewAliasTable builds the table from the built-in aliases plus extra, which
// has the same shape: canonical column → source labels.
func NewAliasTable(extra map[string][]string) (*AliasTable, error) {
	var builtin map[string][]string
	if err := yaml.Unmarshal(builtinAliases, &builtin); err != nil {
		return nil, fmt.Errorf("parsing built-in aliases: %w", err)
	}

	t := &AliasTable{labels: make(map[string]string)}
	for _, col := range model.Columns {
		t.labels[col] = col
	}
	if err := t.add(builtin); err != nil {
		return nil, fmt.Errorf("built-in aliases: %w", err)
	}
	if err := t.add(extra); err != nil {
		return nil, fmt.Errorf("configured aliases: %w", err)
	}
	return t, nil
}

// DefaultAliases returns the built-in table. Panics if the embedded
// document is invalid.
func DefaultAliases() *AliasTable {
	t, err := NewAliasTable(nil)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *AliasTable) add(groups map[string][]string) error {
	for target, labels := range groups {
		if !isCanonical(target) {
			return fmt.Errorf("unknown column %q", target)
		}
		for _, l := range labels {
			key := collapse(l)
			if key == "" {
				return fmt.Errorf("blank alias for %q", target)
			}
			if prev, ok := t.labels[key]; ok && prev != target {
				return fmt.Errorf("alias %q maps to both %q and %q", key, prev, target)
			}
			t.labels[key] = target
		}
	}
	return nil
}

// Resolve returns the canonical label for label, or label itself
// (whitespace-collapsed) when it has no alias.
func (t *AliasTable) Resolve(label string) string {
	key := collapse(label)
	if c, ok := t.labels[key]; ok {
		return c
	}
	return key
}

// Len returns the number of known labels.
func (t *AliasTable) Len() int { return len(t.labels) }

func isCanonical(label string) bool {
	for _, c := range model.Columns {
		if c == label {
			return true
		}
	}
	return false
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
