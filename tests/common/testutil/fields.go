//go:build unit || e2e

package testutil

// Field sets key on a DtoMap result; a nil value removes it.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}
