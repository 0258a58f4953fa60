package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Listings key recency off the seq insertion counter, so every table must
// carry it: created_at alone cannot break ties between rows inserted within
// the same clock tick.
func TestEveryTableCarriesInsertionCounter(t *testing.T) {
	tables := 0
	for _, stmt := range schema {
		if !strings.HasPrefix(strings.TrimSpace(stmt), "CREATE TABLE") {
			continue
		}
		tables++
		assert.Contains(t, stmt, "seq BIGSERIAL", "statement: %s", stmt)
	}
	assert.Equal(t, 3, tables)
}

func TestSchemaEnforcesNonNegativeNumericFields(t *testing.T) {
	ddl := strings.Join(schema, "\n")
	assert.Contains(t, ddl, "CHECK (age >= 0)")
	assert.Contains(t, ddl, "CHECK (amount >= 0)")
}
