// Package profile exposes profile persistence to the auth layer.
package profile

import (
	"context"

	"github.com/vanecli/vane/pkg/config"
	"github.com/vanecli/vane/pkg/types"
)

// UpdateRequest merges (or replaces) properties of a named profile.
type UpdateRequest struct {
	Name  string
	Args  map[string]interface{}
	Merge bool
}

// SaveRequest stores a full profile under a name.
type SaveRequest struct {
	Name      string
	Type      string
	Overwrite bool
	Profile   *config.Profile
}

// Meta describes the active profile of a type.
type Meta struct {
	Name    string
	Type    string
	Profile *config.Profile
}

// Store is the profile persistence collaborator consumed by the auth handler.
type Store interface {
	Update(ctx context.Context, req UpdateRequest) error
	Save(ctx context.Context, req SaveRequest) error
	GetMeta(profileType string, strict bool) (*Meta, error)
}

// DocumentStore persists profiles inside a config document, writing the
// document through to disk after every mutation.
type DocumentStore struct {
	doc  *config.Document
	path string
}

// NewDocumentStore creates a store over the given document. Mutations are
// written to path; an empty path keeps the document in memory only.
func NewDocumentStore(doc *config.Document, path string) *DocumentStore {
	return &DocumentStore{doc: doc, path: path}
}

// Document returns the backing document.
func (s *DocumentStore) Document() *config.Document {
	return s.doc
}

// Update merges the request args into the named profile's properties. With
// Merge false the property map is replaced wholesale.
func (s *DocumentStore) Update(ctx context.Context, req UpdateRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	profile, ok := s.doc.Profiles[req.Name]
	if !ok {
		return types.NewNotFoundError("profile", req.Name)
	}

	if !req.Merge {
		profile.Properties = make(map[string]interface{}, len(req.Args))
	}
	for k, v := range req.Args {
		profile.Properties[k] = v
	}
	return s.flush()
}

// Save stores the request's profile under its name. Without Overwrite an
// existing profile is left untouched and a ValidationError is returned.
func (s *DocumentStore) Save(ctx context.Context, req SaveRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, exists := s.doc.Profiles[req.Name]; exists && !req.Overwrite {
		return types.NewValidationError("profile %q already exists", req.Name)
	}
	s.doc.Profiles[req.Name] = req.Profile
	return s.flush()
}

// GetMeta resolves the active profile of a type via the document defaults.
// With strict false an unset default yields a Meta with only the type filled
// in; with strict true it is a NotFoundError.
func (s *DocumentStore) GetMeta(profileType string, strict bool) (*Meta, error) {
	name, ok := s.doc.Defaults[profileType]
	if !ok || name == "" {
		if strict {
			return nil, types.NewNotFoundError("default profile for type", profileType)
		}
		return &Meta{Type: profileType}, nil
	}

	profile, ok := s.doc.Profiles[name]
	if !ok {
		if strict {
			return nil, types.NewNotFoundError("profile", name)
		}
		return &Meta{Name: name, Type: profileType}, nil
	}
	return &Meta{Name: name, Type: profileType, Profile: profile}, nil
}

func (s *DocumentStore) flush() error {
	if s.path == "" {
		return nil
	}
	return config.Save(s.doc, s.path)
}
