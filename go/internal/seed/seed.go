// Package seed loads demo fixtures (profiles, teams, agents, players,
// pitches) from YAML into Postgres.
package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Fixture mirrors the YAML layout. IDs are explicit so rows can reference each other.
type Fixture struct {
	Profiles []Profile `yaml:"profiles"`
	Teams    []Team    `yaml:"teams"`
	Agents   []Agent   `yaml:"agents"`
	Players  []Player  `yaml:"players"`
	Pitches  []Pitch   `yaml:"pitches"`
}

type Profile struct {
	ID          uuid.UUID `yaml:"id"`
	UserID      uuid.UUID `yaml:"user_id"`
	DisplayName string    `yaml:"display_name"`
	Email       string    `yaml:"email"`
}

type Team struct {
	ID        uuid.UUID  `yaml:"id"`
	ProfileID *uuid.UUID `yaml:"profile_id"`
	Name      string     `yaml:"name"`
	Country   string     `yaml:"country"`
}

type Agent struct {
	ID        uuid.UUID  `yaml:"id"`
	ProfileID *uuid.UUID `yaml:"profile_id"`
	Name      string     `yaml:"name"`
	Agency    string     `yaml:"agency"`
}

type Player struct {
	ID          uuid.UUID `yaml:"id"`
	FullName    string    `yaml:"full_name"`
	Position    string    `yaml:"position"`
	Nationality string    `yaml:"nationality"`
}

type Pitch struct {
	ID       uuid.UUID `yaml:"id"`
	TeamID   uuid.UUID `yaml:"team_id"`
	PlayerID uuid.UUID `yaml:"player_id"`
	Title    string    `yaml:"title"`
	Status   string    `yaml:"status"`
}

// Execer is satisfied by *pgxpool.Pool and pgx.Tx.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Counts tallies one table's seed outcome.
type Counts struct {
	Total    int
	Inserted int
	Skipped  int
}

// Summary is keyed by table name.
type Summary map[string]Counts

// LoadFile reads and validates a fixture file.
func LoadFile(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	return Parse(data)
}

// Parse decodes a fixture and checks that every reference resolves.
func Parse(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("unmarshal fixture: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *Fixture) validate() error {
	profiles := map[uuid.UUID]bool{}
	for _, p := range f.Profiles {
		if p.ID == uuid.Nil || p.UserID == uuid.Nil {
			return fmt.Errorf("profile %q: id and user_id are required", p.Email)
		}
		profiles[p.ID] = true
	}

	teams := map[uuid.UUID]bool{}
	for _, t := range f.Teams {
		if t.ProfileID != nil && !profiles[*t.ProfileID] {
			return fmt.Errorf("team %q: unknown profile %s", t.Name, t.ProfileID)
		}
		teams[t.ID] = true
	}
	for _, a := range f.Agents {
		if a.ProfileID != nil && !profiles[*a.ProfileID] {
			return fmt.Errorf("agent %q: unknown profile %s", a.Name, a.ProfileID)
		}
	}

	players := map[uuid.UUID]bool{}
	for _, p := range f.Players {
		players[p.ID] = true
	}
	for _, p := range f.Pitches {
		if !teams[p.TeamID] {
			return fmt.Errorf("pitch %q: unknown team %s", p.Title, p.TeamID)
		}
		if !players[p.PlayerID] {
			return fmt.Errorf("pitch %q: unknown player %s", p.Title, p.PlayerID)
		}
		if p.Status != "" && p.Status != "open" && p.Status != "closed" {
			return fmt.Errorf("pitch %q: invalid status %q", p.Title, p.Status)
		}
	}
	return nil
}

type row struct {
	table string
	key   string
	sql   string
	args  []any
}

func (f *Fixture) rows() []row {
	var out []row
	for _, p := range f.Profiles {
		out = append(out, row{"profiles", p.Email, `
            INSERT INTO profiles (id, user_id, display_name, email)
            VALUES ($1, $2, $3, $4)
            ON CONFLICT DO NOTHING`,
			[]any{p.ID, p.UserID, p.DisplayName, p.Email}})
	}
	for _, t := range f.Teams {
		out = append(out, row{"teams", t.Name, `
            INSERT INTO teams (id, profile_id, name, country)
            VALUES ($1, $2, $3, $4)
            ON CONFLICT (id) DO NOTHING`,
			[]any{t.ID, t.ProfileID, t.Name, t.Country}})
	}
	for _, a := range f.Agents {
		out = append(out, row{"agents", a.Name, `
            INSERT INTO agents (id, profile_id, name, agency)
            VALUES ($1, $2, $3, $4)
            ON CONFLICT (id) DO NOTHING`,
			[]any{a.ID, a.ProfileID, a.Name, a.Agency}})
	}
	for _, p := range f.Players {
		out = append(out, row{"players", p.FullName, `
            INSERT INTO players (id, full_name, position, nationality)
            VALUES ($1, $2, $3, $4)
            ON CONFLICT (id) DO NOTHING`,
			[]any{p.ID, p.FullName, p.Position, p.Nationality}})
	}
	for _, p := range f.Pitches {
		status := p.Status
		if status == "" {
			status = "open"
		}
		out = append(out, row{"pitches", p.Title, `
            INSERT INTO pitches (id, team_id, player_id, title, status)
            VALUES ($1, $2, $3, $4, $5)
            ON CONFLICT (id) DO NOTHING`,
			[]any{p.ID, p.TeamID, p.PlayerID, p.Title, status}})
	}
	return out
}

// Run inserts the fixture in dependency order. Existing rows are skipped,
// so running it twice is harmless. It stops at the first failed insert.
func Run(ctx context.Context, db Execer, f *Fixture) (Summary, error) {
	summary := Summary{}
	for _, r := range f.rows() {
		c := summary[r.table]
		c.Total++

		tag, err := db.Exec(ctx, r.sql, r.args...)
		if err != nil {
			summary[r.table] = c
			return summary, fmt.Errorf("insert %s %q: %w", r.table, r.key, err)
		}
		if tag.RowsAffected() == 1 {
			c.Inserted++
		} else {
			c.Skipped++
		}
		summary[r.table] = c
	}

	for table, c := range summary {
		log.Info().
			Str("table", table).
			Int("total", c.Total).
			Int("inserted", c.Inserted).
			Int("skipped", c.Skipped).
			Msg("seeded")
	}
	return summary, nil
}
