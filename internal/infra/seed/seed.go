// Package seed loads YAML fixtures and replays them through the usecase
// commands, so seeded records obey the same rules as API-created ones.
package seed

import (
	"context"
	"log/slog"
	"os"

	"console-rental/internal/pkg/errs"
	"console-rental/internal/pkg/ident"
	"console-rental/internal/usecase/commands"

	"gopkg.in/yaml.v3"
)

type Fixture struct {
	Games        []GameFixture        `yaml:"games"`
	Renters      []RenterFixture      `yaml:"renters"`
	PlayStations []PlayStationFixture `yaml:"playstations"`
}

type GameFixture struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Developers  string `yaml:"developers"`
}

type RenterFixture struct {
	Name        string `yaml:"name"`
	ContactInfo string `yaml:"contactInfo"`
}

// PlayStationFixture references games by the title given in the same file.
type PlayStationFixture struct {
	Games []string `yaml:"games"`
}

type Commands struct {
	Renters      commands.RenterCommands
	Games        commands.GameCommands
	PlayStations commands.PlayStationCommands
}

type Summary struct {
	Games        int
	Renters      int
	PlayStations int
}

func Decode(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errs.Wrap(err, "decode seed fixture")
	}
	return &f, nil
}

func LoadFile(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrapf(err, "read seed file %s", path)
	}
	return Decode(data)
}

// Apply stops at the first failing record; records created before it are kept.
func Apply(ctx context.Context, f *Fixture, cmds Commands) (Summary, error) {
	var sum Summary
	titles := make(map[string]ident.ID, len(f.Games))

	for i, g := range f.Games {
		if _, dup := titles[g.Title]; dup {
			return sum, errs.Newf("games[%d]: duplicate title %q", i, g.Title)
		}
		view, err := cmds.Games.Create(ctx, commands.CreateGameRequest{
			Title:       g.Title,
			Description: g.Description,
			Developers:  g.Developers,
		})
		if err != nil {
			return sum, errs.Wrapf(err, "games[%d]", i)
		}
		titles[g.Title] = ident.ID(view.ID)
		sum.Games++
	}

	for i, r := range f.Renters {
		if _, err := cmds.Renters.Create(ctx, commands.CreateRenterRequest{
			Name:        r.Name,
			ContactInfo: r.ContactInfo,
		}); err != nil {
			return sum, errs.Wrapf(err, "renters[%d]", i)
		}
		sum.Renters++
	}

	for i, p := range f.PlayStations {
		games := make([]ident.ID, 0, len(p.Games))
		for _, title := range p.Games {
			id, ok := titles[title]
			if !ok {
				return sum, errs.Newf("playstations[%d]: unknown game title %q", i, title)
			}
			games = append(games, id)
		}
		if _, err := cmds.PlayStations.Create(ctx, games); err != nil {
			return sum, errs.Wrapf(err, "playstations[%d]", i)
		}
		sum.PlayStations++
	}

	slog.Info("seed fixture applied",
		"games", sum.Games,
		"renters", sum.Renters,
		"playstations", sum.PlayStations)
	return sum, nil
}
