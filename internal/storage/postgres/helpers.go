package postgres

// derefString safely dereferences a string pointer, returning empty string if nil
func derefString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

// nullIfEmpty maps the empty string to NULL for optional text columns.
func nullIfEmpty(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
