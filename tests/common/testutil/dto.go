//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"
)

// DtoMap turns a request DTO into its JSON map so a test can break a single
// field, such as an unparseable run time, before posting it.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()
	b, _ := json.Marshal(v)
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	for _, f := range muts {
		f(m)
	}
	return m
}
