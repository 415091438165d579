// internal/defs/loader_test.go
package defs

import (
	"strings"
	"testing"
)

func TestLoadAll(t *testing.T) {
	if err := LoadAll(); err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	t.Run("все четыре типа врагов присутствуют", func(t *testing.T) {
		for _, kind := range []EnemyKind{KindMinion, KindBat, KindWitch, KindGolem} {
			if _, ok := EnemyLibrary[kind]; !ok {
				t.Errorf("missing enemy kind %q", kind)
			}
		}
	})

	t.Run("формулы здоровья", func(t *testing.T) {
		cases := []struct {
			kind       EnemyKind
			difficulty float64
			want       float64
		}{
			{KindMinion, 0, 15},
			{KindMinion, 2, 25},
			{KindBat, 3, 16},
			{KindWitch, 1, 50},
			{KindGolem, 2, 300},
		}
		for _, c := range cases {
			got := EnemyLibrary[c.kind].HP(c.difficulty)
			if got != c.want {
				t.Errorf("%s hp at difficulty %v: want %v, got %v", c.kind, c.difficulty, c.want, got)
			}
		}
	})

	t.Run("фиксированные значения из спеки", func(t *testing.T) {
		if s := EnemyLibrary[KindBat].Speed(10); s != 3.5 {
			t.Errorf("bat speed must stay 3.5, got %v", s)
		}
		if d := EnemyLibrary[KindWitch].Damage; d != 15 {
			t.Errorf("witch damage: want 15, got %v", d)
		}
		if d := EnemyLibrary[KindGolem].Damage; d != 25 {
			t.Errorf("golem damage: want 25, got %v", d)
		}
	})

	t.Run("каталог апгрейдов из пяти записей", func(t *testing.T) {
		if len(UpgradeCatalog) != 5 {
			t.Fatalf("catalog size: want 5, got %d", len(UpgradeCatalog))
		}
		seen := map[UpgradeID]bool{}
		for _, u := range UpgradeCatalog {
			seen[u.ID] = true
		}
		for _, id := range []UpgradeID{UpgradeMissile, UpgradeOrbit, UpgradeAura, UpgradeSpeed, UpgradeHeal} {
			if !seen[id] {
				t.Errorf("missing upgrade %q", id)
			}
		}
	})
}

func TestParseEnemiesValidation(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"пустой список", "kinds: {}", "at least one kind"},
		{"нулевое здоровье", "kinds:\n  minion:\n    hpBase: 0\n    speedBase: 1\n    radius: 5\n    gemValue: 1\n", "hpBase"},
		{"нулевой радиус", "kinds:\n  minion:\n    hpBase: 10\n    speedBase: 1\n    radius: 0\n    gemValue: 1\n", "radius"},
		{"битый yaml", "kinds: [", "unmarshal"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := parseEnemies([]byte(c.yaml))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), c.wantErr) {
				t.Errorf("error %q does not mention %q", err, c.wantErr)
			}
		})
	}
}

func TestParseUpgradesValidation(t *testing.T) {
	t.Run("дубликат id", func(t *testing.T) {
		data := "upgrades:\n  - id: heal\n  - id: heal\n  - id: speed\n"
		if _, err := parseUpgrades([]byte(data)); err == nil {
			t.Fatal("duplicate ids must be rejected")
		}
	})
	t.Run("каталог меньше трёх", func(t *testing.T) {
		data := "upgrades:\n  - id: heal\n  - id: speed\n"
		if _, err := parseUpgrades([]byte(data)); err == nil {
			t.Fatal("catalog smaller than the draw must be rejected")
		}
	})
}
