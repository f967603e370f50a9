package idgen

import "go.uber.org/fx"

// Module provides the identifier generator.
var Module = fx.Provide(New)
