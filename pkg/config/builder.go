package config

import (
	"context"
	"sort"
)

// GetValueBackFunc obtains a live value for a base-profile property during a
// build. Returning a nil value skips the property. Invoked sequentially, one
// property at a time.
type GetValueBackFunc func(ctx context.Context, name string, prop PropertySchema) (interface{}, error)

// BuildOptions control how Build populates the document.
type BuildOptions struct {
	// BaseProfileType designates the shared base profile; empty disables
	// hoisting and the value-back pass.
	BaseProfileType string

	// PopulateProperties fills template values and per-type defaults.
	PopulateProperties bool

	// GetValueBack, when set, supplies live values for hoisted and secure
	// base-profile properties after the hoist pass.
	GetValueBack GetValueBackFunc
}

// Build synthesizes a new config document from an application's profile-type
// declarations. Declarations with a missing Properties map are a caller
// contract violation and are not guarded against.
func Build(ctx context.Context, decls []TypeDeclaration, opts BuildOptions) (*Document, error) {
	doc := NewDocument()

	for _, decl := range decls {
		profile := NewProfile(decl.Type)

		for _, name := range sortedPropertyNames(decl.Schema.Properties) {
			prop := decl.Schema.Properties[name]
			if !prop.IncludeInTemplate {
				continue
			}
			if prop.Secure {
				// Name only; the value lives outside the document.
				profile.Secure = append(profile.Secure, name)
				continue
			}
			if opts.PopulateProperties {
				profile.Properties[name] = prop.TemplateValue()
			}
		}

		doc.Profiles[decl.Type] = profile
		if opts.PopulateProperties {
			doc.Defaults[decl.Type] = decl.Type
		}
	}

	var hoisted []string
	if opts.BaseProfileType != "" && len(doc.Profiles) > 0 {
		hoisted = HoistDuplicates(doc.Profiles, opts.BaseProfileType)
	}

	if opts.GetValueBack != nil && opts.BaseProfileType != "" {
		if err := populateValuesBack(ctx, doc, decls, opts, hoisted); err != nil {
			return nil, err
		}
	}

	doc.AutoStore = true
	return doc, nil
}

// populateValuesBack asks the callback for live values of every base-profile
// property that was hoisted or is declared secure-in-template. Non-nil values
// are written into the base profile's plain properties even when the name is
// also listed secure: a later externally-owned step re-secures them.
func populateValuesBack(ctx context.Context, doc *Document, decls []TypeDeclaration, opts BuildOptions, hoisted []string) error {
	base, ok := doc.Profiles[opts.BaseProfileType]
	if !ok {
		return nil
	}

	var baseSchema Schema
	found := false
	for _, decl := range decls {
		if decl.Type == opts.BaseProfileType {
			baseSchema = decl.Schema
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	hoistedSet := make(map[string]bool, len(hoisted))
	for _, name := range hoisted {
		hoistedSet[name] = true
	}

	for _, name := range sortedPropertyNames(baseSchema.Properties) {
		prop := baseSchema.Properties[name]
		if !hoistedSet[name] && !(prop.IncludeInTemplate && prop.Secure) {
			continue
		}
		value, err := opts.GetValueBack(ctx, name, prop)
		if err != nil {
			return err
		}
		if value != nil {
			base.Properties[name] = value
		}
	}
	return nil
}

func sortedPropertyNames(props map[string]PropertySchema) []string {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
