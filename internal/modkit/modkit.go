// Package modkit builds the API and web modules from shared deps and options
package modkit

import "worthit/internal/modkit/module"

// Module is the surface every module builds into; it lives in the module
// package so a module can export its own ports type without an import knot
type Module = module.Module
