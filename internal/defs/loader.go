// internal/defs/loader.go
package defs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnemyLibrary holds enemy definitions keyed by ID, in file order.
type EnemyLibrary struct {
	byID  map[string]EnemyDefinition
	order []EnemyDefinition
}

type enemyListFile struct {
	Enemies []EnemyDefinition `yaml:"enemies"`
}

// NewEnemyLibrary validates definitions and indexes them by ID.
func NewEnemyLibrary(enemyDefs []EnemyDefinition) (*EnemyLibrary, error) {
	if len(enemyDefs) == 0 {
		return nil, fmt.Errorf("no enemy definitions")
	}
	lib := &EnemyLibrary{byID: make(map[string]EnemyDefinition, len(enemyDefs))}
	for _, def := range enemyDefs {
		if def.ID == "" {
			return nil, fmt.Errorf("enemy definition without id")
		}
		if _, dup := lib.byID[def.ID]; dup {
			return nil, fmt.Errorf("duplicate enemy id %q", def.ID)
		}
		if def.Weight < 0 {
			return nil, fmt.Errorf("enemy %q: negative weight %d", def.ID, def.Weight)
		}
		if def.Radius <= 0 {
			return nil, fmt.Errorf("enemy %q: radius must be positive", def.ID)
		}
		lib.byID[def.ID] = def
		lib.order = append(lib.order, def)
	}
	return lib, nil
}

// LoadEnemyDefinitions reads the enemy definitions file.
func LoadEnemyDefinitions(path string) (*EnemyLibrary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read enemy definitions: %w", err)
	}
	var f enemyListFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse enemy definitions: %w", err)
	}
	lib, err := NewEnemyLibrary(f.Enemies)
	if err != nil {
		return nil, fmt.Errorf("enemy definitions %s: %w", path, err)
	}
	return lib, nil
}

// Get returns the definition with the given ID.
func (l *EnemyLibrary) Get(id string) (EnemyDefinition, bool) {
	def, ok := l.byID[id]
	return def, ok
}

// All returns definitions in file order.
func (l *EnemyLibrary) All() []EnemyDefinition {
	return l.order
}

// Len returns the number of definitions.
func (l *EnemyLibrary) Len() int {
	return len(l.order)
}
