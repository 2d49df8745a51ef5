package modkit

import (
	"testing"

	"worthit/internal/core/i18n"
	"worthit/internal/platform/config"
)

func TestDeps_ZeroValueFallsBack(t *testing.T) {
	t.Parallel()
	var d Deps
	if d.CatalogOrDefault() != i18n.Default() {
		t.Fatal("zero-value Deps should fall back to the default catalog")
	}
}

func TestDeps_InjectedCatalogWins(t *testing.T) {
	t.Parallel()

	cat, err := i18n.New()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	d := Deps{
		// Log left zero (allowed)
		Cfg:     config.New(), // safe zero-friendly Conf
		Catalog: cat,
	}

	if d.CatalogOrDefault() != cat {
		t.Fatal("injected catalog should win")
	}
}
