// internal/defs/loader.go
package defs

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

// EnemyLibrary is a map to hold all enemy definitions, keyed by their kind.
var EnemyLibrary map[EnemyKind]EnemyDefinition

// UpgradeCatalog holds the fixed set of upgrades offered at level-up.
var UpgradeCatalog []UpgradeDefinition

// Weapons holds the starting parameters of the three weapon systems.
var Weapons WeaponDefaults

var loadOnce sync.Once

// LoadAll загружает и валидирует все встроенные определения.
func LoadAll() error {
	var err error
	loadOnce.Do(func() {
		err = loadAll()
	})
	return err
}

// MustLoad — как LoadAll, но с паникой. Для точек входа и тестов.
func MustLoad() {
	if err := LoadAll(); err != nil {
		panic(fmt.Sprintf("defs: %v", err))
	}
}

func loadAll() error {
	enemies, err := dataFS.ReadFile("data/enemies.yaml")
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions: %w", err)
	}
	if EnemyLibrary, err = parseEnemies(enemies); err != nil {
		return err
	}

	upgrades, err := dataFS.ReadFile("data/upgrades.yaml")
	if err != nil {
		return fmt.Errorf("failed to read upgrade catalog: %w", err)
	}
	if UpgradeCatalog, err = parseUpgrades(upgrades); err != nil {
		return err
	}

	weapons, err := dataFS.ReadFile("data/weapons.yaml")
	if err != nil {
		return fmt.Errorf("failed to read weapon defaults: %w", err)
	}
	if Weapons, err = parseWeapons(weapons); err != nil {
		return err
	}
	return nil
}

func parseEnemies(data []byte) (map[EnemyKind]EnemyDefinition, error) {
	var file struct {
		Kinds map[EnemyKind]EnemyDefinition `yaml:"kinds"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}
	if len(file.Kinds) == 0 {
		return nil, fmt.Errorf("invalid enemy definitions: at least one kind is required")
	}
	for kind, def := range file.Kinds {
		if def.HPBase <= 0 {
			return nil, fmt.Errorf("enemy %s: hpBase must be positive, got %v", kind, def.HPBase)
		}
		if def.SpeedBase <= 0 {
			return nil, fmt.Errorf("enemy %s: speedBase must be positive, got %v", kind, def.SpeedBase)
		}
		if def.Radius <= 0 {
			return nil, fmt.Errorf("enemy %s: radius must be positive, got %v", kind, def.Radius)
		}
		if def.GemValue <= 0 {
			return nil, fmt.Errorf("enemy %s: gemValue must be positive, got %d", kind, def.GemValue)
		}
	}
	return file.Kinds, nil
}

func parseUpgrades(data []byte) ([]UpgradeDefinition, error) {
	var file struct {
		Upgrades []UpgradeDefinition `yaml:"upgrades"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal upgrade catalog: %w", err)
	}
	seen := make(map[UpgradeID]bool)
	for _, u := range file.Upgrades {
		if u.ID == "" {
			return nil, fmt.Errorf("upgrade catalog: entry without id")
		}
		if seen[u.ID] {
			return nil, fmt.Errorf("upgrade catalog: duplicate id %q", u.ID)
		}
		seen[u.ID] = true
	}
	// Розыгрыш берёт 3 различных записи, каталог обязан быть не меньше.
	if len(file.Upgrades) < 3 {
		return nil, fmt.Errorf("upgrade catalog: need at least 3 entries, got %d", len(file.Upgrades))
	}
	return file.Upgrades, nil
}

func parseWeapons(data []byte) (WeaponDefaults, error) {
	var w WeaponDefaults
	if err := yaml.Unmarshal(data, &w); err != nil {
		return w, fmt.Errorf("failed to unmarshal weapon defaults: %w", err)
	}
	if w.Missile.BulletSpeed <= 0 || w.Missile.BulletLife <= 0 || w.Missile.Penetration <= 0 {
		return w, fmt.Errorf("weapon defaults: missile bullet parameters must be positive")
	}
	if w.Orbit.OrbitRadius <= 0 || w.Orbit.SatelliteRadius <= 0 {
		return w, fmt.Errorf("weapon defaults: orbit radii must be positive")
	}
	if w.Aura.TickRate <= 0 {
		return w, fmt.Errorf("weapon defaults: aura tickRate must be positive")
	}
	return w, nil
}
