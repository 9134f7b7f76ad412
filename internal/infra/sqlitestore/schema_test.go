//go:build unit

package sqlitestore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitStatements(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   []string
	}{
		{
			name:   "success: semicolon inside a comment does not cut a statement",
			script: "-- ordered; dates are text\nCREATE TABLE a (id TEXT);\n",
			want:   []string{"CREATE TABLE a (id TEXT)"},
		},
		{
			name:   "success: trailing comments and blank fragments are dropped",
			script: "CREATE TABLE a (id TEXT); -- first; table\n\nCREATE INDEX i ON a (id);\n-- done;\n",
			want:   []string{"CREATE TABLE a (id TEXT)", "CREATE INDEX i ON a (id)"},
		},
		{
			name:   "success: comment-only script yields nothing",
			script: "-- nothing here; really\n",
			want:   nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, splitStatements(tc.script))
		})
	}
}

func TestSplitStatements_EmbeddedSchema(t *testing.T) {
	for _, stmt := range splitStatements(schema) {
		assert.Regexp(t, `^CREATE (TABLE|INDEX|UNIQUE INDEX)`, stmt)
	}
}
