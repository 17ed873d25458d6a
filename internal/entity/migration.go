package entity

// Migration tracks the schema version applied by the migration package.
type Migration struct {
	Base
	Version int
}
