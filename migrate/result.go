package migrate

// Result is the outcome of one entity's migration. The orchestrator decides
// what to do with a failure; the entity migrators never abort each other.
type Result struct {
	Entity  string
	Rows    int
	Skipped bool // the source had nothing to migrate for this entity
	Err     error
}

// Failed reports whether the entity's migration was rolled back.
func (r Result) Failed() bool { return r.Err != nil }
