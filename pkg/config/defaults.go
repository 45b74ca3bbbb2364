package config

// EmptyValue maps a property type tag to its canonical empty value. Unknown
// or absent tags resolve to nil.
func EmptyValue(typeTag string) interface{} {
	switch typeTag {
	case "string":
		return ""
	case "number":
		return 0
	case "object":
		return map[string]interface{}{}
	case "array":
		return []interface{}{}
	case "boolean":
		return false
	default:
		return nil
	}
}
