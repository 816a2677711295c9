package dbfx

import (
	"go.uber.org/fx"

	"namdo/internal/infra"
)

var Module = fx.Provide(
	infra.InitPostgresql,
)
