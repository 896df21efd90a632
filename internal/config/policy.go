package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/djmisieq/chmurowy-system-mrp/internal/domain"
	"github.com/djmisieq/chmurowy-system-mrp/internal/validation"
	"gopkg.in/yaml.v3"
)

// ErrEmptyPolicy indicates a policy file without any rules.
var ErrEmptyPolicy = errors.New("policy file defines no rules")

// PolicyFile is the YAML layout of a compatibility table.
type PolicyFile struct {
	AllowedChildren map[string][]string `yaml:"allowed_children"`
}

// LoadPolicy reads a compatibility table from a YAML file.
func LoadPolicy(path string) (validation.Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return validation.Policy{}, fmt.Errorf("reading policy file: %w", err)
	}
	return ParsePolicy(data)
}

// ParsePolicy decodes a YAML compatibility table. Every parent and child
// kind must be a known kind.
func ParsePolicy(data []byte) (validation.Policy, error) {
	var pf PolicyFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return validation.Policy{}, fmt.Errorf("parsing policy file: %w", err)
	}
	if len(pf.AllowedChildren) == 0 {
		return validation.Policy{}, ErrEmptyPolicy
	}

	table := make(map[domain.NodeKind][]domain.NodeKind, len(pf.AllowedChildren))
	var errs []error
	for parentName, childNames := range pf.AllowedChildren {
		parent, ok := domain.ParseNodeKind(parentName)
		if !ok {
			errs = append(errs, fmt.Errorf("allowed_children: unknown parent kind %q", parentName))
			continue
		}
		children := make([]domain.NodeKind, 0, len(childNames))
		for _, name := range childNames {
			child, ok := domain.ParseNodeKind(name)
			if !ok {
				errs = append(errs, fmt.Errorf("allowed_children.%s: unknown child kind %q", parentName, name))
				continue
			}
			children = append(children, child)
		}
		table[parent] = children
	}
	if len(errs) > 0 {
		return validation.Policy{}, errors.Join(errs...)
	}
	return validation.NewPolicy(table), nil
}
