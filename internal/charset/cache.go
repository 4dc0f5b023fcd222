package charset

// Cache keeps the table for the most recently used profile. A profile
// change rebuilds the table; the old one is dropped, never mutated.
// The zero value is ready to use.
type Cache struct {
	table *Table
}

// NewCache returns an empty cache.
func NewCache() *Cache { return &Cache{} }

// Table returns the cached table for the profile, building it on first
// use or whenever the requested profile differs from the cached one.
func (c *Cache) Table(p Profile) *Table {
	if c.table == nil || c.table.Profile() != p.Name {
		c.table = Build(p)
	}
	return c.table
}
