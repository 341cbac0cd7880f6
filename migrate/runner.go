package migrate

import (
	"database/sql"
	"errors"

	"github.com/bhoirtrip-alt/plutocollrctions/config"
	"github.com/bhoirtrip-alt/plutocollrctions/database"
)

// State tracks how far a migration run progressed.
type State int

const (
	StateNotStarted State = iota
	// StateSourceMissing is a terminal success: there was no SQLite
	// database, so there is nothing to migrate.
	StateSourceMissing
	// StateDestinationUnreachable is a terminal failure reached before any
	// entity was touched.
	StateDestinationUnreachable
	StateMigrating
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not started"
	case StateSourceMissing:
		return "source missing"
	case StateDestinationUnreachable:
		return "destination unreachable"
	case StateMigrating:
		return "migrating"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// A Migrator copies all rows of one entity from the source to the
// destination.
type Migrator func(src, dst *sql.DB) Result

// migrators run in foreign-key order: parents before children, so orders
// never reference a user that has not arrived yet.
var migrators = []Migrator{
	MigrateUsers,
	MigrateProducts,
	MigrateOrders,
	MigrateOrderItems,
}

// Runner executes the full SQLite to PostgreSQL data migration.
type Runner struct {
	cfg   config.Config
	state State

	// OnResult, when set, is called with each entity's result as soon as
	// that entity finishes, so progress can be reported while later
	// entities are still running.
	OnResult func(Result)

	// openDestination is swappable so tests can exercise the
	// destination-unreachable path without a PostgreSQL server.
	openDestination func(config.Config) (*sql.DB, error)
}

func NewRunner(cfg config.Config) *Runner {
	return &Runner{
		cfg:             cfg,
		state:           StateNotStarted,
		openDestination: database.OpenDestination,
	}
}

// State returns the state the last Run ended in.
func (r *Runner) State() State {
	return r.state
}

// Run opens both stores and migrates the four entities in order. A missing
// source ends the run successfully with no results; a source file that
// exists but cannot be opened is surfaced as an error before the run
// starts. An unreachable destination ends the run with the connection
// error. A failure in one entity is recorded in its Result and the
// remaining entities still run. Both connections are closed on every path.
func (r *Runner) Run() ([]Result, error) {
	src, err := database.OpenSource(r.cfg)
	if errors.Is(err, database.ErrSourceMissing) {
		r.state = StateSourceMissing
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer src.Close()

	dst, err := r.openDestination(r.cfg)
	if err != nil {
		r.state = StateDestinationUnreachable
		return nil, err
	}
	defer dst.Close()

	r.state = StateMigrating
	results := make([]Result, 0, len(migrators))
	for _, m := range migrators {
		res := m(src, dst)
		if r.OnResult != nil {
			r.OnResult(res)
		}
		results = append(results, res)
	}
	r.state = StateCompleted
	return results, nil
}

// RunAll migrates the four entities in foreign-key order against already
// open connections. Exposed separately so the stores are injectable.
func RunAll(src, dst *sql.DB) []Result {
	results := make([]Result, 0, len(migrators))
	for _, m := range migrators {
		results = append(results, m(src, dst))
	}
	return results
}
