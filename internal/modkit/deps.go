package modkit

import (
	"worthit/internal/core/i18n"
	"worthit/internal/platform/config"
	"worthit/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log     logger.Logger
	Cfg     config.Conf
	Catalog *i18n.Catalog
}

// CatalogOrDefault returns the injected catalog or the built-in one
func (d Deps) CatalogOrDefault() *i18n.Catalog {
	if d.Catalog != nil {
		return d.Catalog
	}
	return i18n.Default()
}
