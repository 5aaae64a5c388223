package model

// boolOrDefault dereferences an optional boolean, falling back to def.
// Visibility flags default to true so freshly created content is public.
func boolOrDefault(v *bool, def bool) bool {
	if v != nil {
		return *v
	}
	return def
}
