package module

import (
	"testing"

	"worthit/internal/core/i18n"
	"worthit/internal/modkit"
	"worthit/internal/modkit/module"
	kit "worthit/internal/platform/testkit"
	worthmod "worthit/internal/services/api/worth/module"
)

func TestWorthCheck(t *testing.T) {
	kit.Serial(t)
	module.Reset()
	t.Cleanup(module.Reset)

	if err := worthCheck(); err == nil {
		t.Fatal("check should fail before the worth module registers")
	}

	w := worthmod.New(modkit.Deps{})
	module.Register(w.Name(), w.Ports())
	if err := worthCheck(); err != nil {
		t.Fatalf("check: %v", err)
	}
}

func TestCatalogCheck(t *testing.T) {
	if err := catalogCheck(i18n.Default())(); err != nil {
		t.Fatalf("default catalog: %v", err)
	}
}
