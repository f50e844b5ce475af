package agent

// labelFallback is the attribute order tried when naming a field.
var labelFallback = []string{"name", "id", "placeholder", "type"}

// resolveFieldLabel names a field for reporting without reading its value:
// name, then id, then placeholder, then input type, then "unknown".
func resolveFieldLabel(el Element) string {
	for _, attr := range labelFallback {
		if v := el.Attr(attr); v != "" {
			return v
		}
	}
	return "unknown"
}
