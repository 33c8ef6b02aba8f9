package bootstrap

import (
	"context"

	"console-rental/internal/infra/seed"
	"console-rental/internal/pkg/config"
	"console-rental/internal/usecase/commands"

	"go.uber.org/fx"
)

var SeedModule = fx.Module("seed",
	fx.Invoke(ApplySeed),
)

type seedParams struct {
	fx.In

	Lifecycle    fx.Lifecycle
	Config       config.Config
	Renters      commands.RenterCommands
	Games        commands.GameCommands
	PlayStations commands.PlayStationCommands
}

// ApplySeed loads SEED_FILE, if set, before the server starts accepting requests.
func ApplySeed(p seedParams) {
	if p.Config.Seed.File == "" {
		return
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			fixture, err := seed.LoadFile(p.Config.Seed.File)
			if err != nil {
				return err
			}
			_, err = seed.Apply(ctx, fixture, seed.Commands{
				Renters:      p.Renters,
				Games:        p.Games,
				PlayStations: p.PlayStations,
			})
			return err
		},
	})
}
