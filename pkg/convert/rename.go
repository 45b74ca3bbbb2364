package convert

// renameRule maps a deprecated property name to its current one.
type renameRule struct {
	old string
	new string
}

// Checked in order; the first matching rule wins and later rules are not
// applied to an already-renamed key within the same pass.
var renameRules = []renameRule{
	{"hostname", "host"},
	{"username", "user"},
	{"pass", "password"},
}

// RenameProperties applies the deprecated-name table to every profile in the
// result, mutating it in place. Plain property renames are staged during the
// scan and applied afterwards; secure name lists are renamed in place by
// index. Applying it twice is a no-op on the second pass.
func RenameProperties(result *Result) {
	for _, profile := range result.Config.Profiles {
		type staged struct {
			from string
			to   string
		}
		var renames []staged

		for name := range profile.Properties {
			if to, ok := renameFor(name); ok {
				renames = append(renames, staged{from: name, to: to})
			}
		}
		for _, r := range renames {
			value := profile.Properties[r.from]
			delete(profile.Properties, r.from)
			profile.Properties[r.to] = value
		}

		for i, name := range profile.Secure {
			if to, ok := renameFor(name); ok {
				profile.Secure[i] = to
			}
		}
	}
}

func renameFor(name string) (string, bool) {
	for _, rule := range renameRules {
		if rule.old == name {
			return rule.new, true
		}
	}
	return "", false
}
