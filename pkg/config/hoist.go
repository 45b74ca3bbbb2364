package config

import (
	"reflect"
	"sort"
)

// HoistDuplicates moves properties that appear with an identical value in
// more than one non-base profile into the base profile, removing them from
// every sibling. Returns the hoisted property names so the caller can act on
// them (for example, to prompt for secure equivalents). Running it again on
// an already-hoisted set is a no-op.
func HoistDuplicates(profiles map[string]*Profile, baseType string) []string {
	base, ok := profiles[baseType]
	if !ok {
		return nil
	}

	// Collect observed values per property name across non-base profiles.
	values := make(map[string][]interface{})
	for key, profile := range profiles {
		if key == baseType {
			continue
		}
		for name, value := range profile.Properties {
			values[name] = append(values[name], value)
		}
	}

	var hoisted []string
	for name, observed := range values {
		if len(observed) < 2 {
			continue
		}
		if !allEqual(observed) {
			continue
		}
		hoisted = append(hoisted, name)
	}
	sort.Strings(hoisted)

	// Stage first, mutate after: the scan above must not race map edits.
	for _, name := range hoisted {
		base.Properties[name] = values[name][0]
		for key, profile := range profiles {
			if key == baseType {
				continue
			}
			delete(profile.Properties, name)
		}
	}

	return hoisted
}

// allEqual reports whether every value in the slice is equal to the first,
// by value (not identity).
func allEqual(values []interface{}) bool {
	for _, v := range values[1:] {
		if !reflect.DeepEqual(values[0], v) {
			return false
		}
	}
	return true
}
