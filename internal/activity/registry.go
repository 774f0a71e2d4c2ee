package activity

import (
	"maps"
	"slices"
	"strconv"

	"github.com/heartmarshall/localize-backend/internal/domain"
)

// ComputeFunc derives a display value from all values of one side (old or
// new) of an entity's modifications. The bool is false when the value is
// undefined for that side.
type ComputeFunc func(values map[string]any) (any, bool)

// ReferenceFunc extracts references from a raw modified entity.
type ReferenceFunc func(e domain.ModifiedEntity) []Reference

// MergeFunc folds a newly seen reference into an existing one with the same identity.
type MergeFunc func(existing, incoming Reference) Reference

// FieldOptions configures how a field is labelled and resolved.
// A nil Compute means the raw modification pair is used.
type FieldOptions struct {
	Label   string
	Compute ComputeFunc
}

// FieldSpec is a declared field of an entity type.
type FieldSpec struct {
	Name    string
	Options FieldOptions
}

// EntityOptions is the declarative configuration of one entity type.
// Fields are kept in declaration order, which is also the output order.
type EntityOptions struct {
	Label      string
	Fields     []FieldSpec
	References ReferenceFunc
}

// FieldNames returns the declared field names in order.
func (o EntityOptions) FieldNames() []string {
	names := make([]string, len(o.Fields))
	for i, f := range o.Fields {
		names[i] = f.Name
	}
	return names
}

// FieldSelection chooses which fields of an entity type an action shows:
// either every declared field or an explicit subset.
type FieldSelection struct {
	isSubset bool
	subset   []string
}

// AllFields selects every field declared for the entity type.
func AllFields() FieldSelection {
	return FieldSelection{}
}

// FieldSubset selects only the named fields. An empty subset selects none.
func FieldSubset(names ...string) FieldSelection {
	return FieldSelection{isSubset: true, subset: slices.Clone(names)}
}

// Subset returns the selected names and true for a FieldSubset selection.
func (s FieldSelection) Subset() ([]string, bool) {
	if !s.isSubset {
		return nil, false
	}
	return slices.Clone(s.subset), true
}

// EntityDeclaration is an entity type an action is interested in.
type EntityDeclaration struct {
	Class  domain.EntityClass
	Fields FieldSelection
}

// ActionOptions configures one activity type.
type ActionOptions struct {
	Label    string
	Entities []EntityDeclaration
}

// Registry holds the entity, action and reference-merge tables.
// It is populated once at startup and must not be modified afterwards;
// lookups are then safe for concurrent use.
type Registry struct {
	entities    map[domain.EntityClass]EntityOptions
	entityOrder []domain.EntityClass
	actions     map[domain.ActivityType]ActionOptions
	mergers     map[ReferenceType]MergeFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entities: make(map[domain.EntityClass]EntityOptions),
		actions:  make(map[domain.ActivityType]ActionOptions),
		mergers:  make(map[ReferenceType]MergeFunc),
	}
}

// RegisterEntity declares an entity type. Re-registering replaces the
// options but keeps the original position.
func (r *Registry) RegisterEntity(class domain.EntityClass, opts EntityOptions) *Registry {
	if _, ok := r.entities[class]; !ok {
		r.entityOrder = append(r.entityOrder, class)
	}
	r.entities[class] = opts
	return r
}

// RegisterAction declares an activity type.
func (r *Registry) RegisterAction(typ domain.ActivityType, opts ActionOptions) *Registry {
	r.actions[typ] = opts
	return r
}

// RegisterMerger makes references of the given type mergeable.
func (r *Registry) RegisterMerger(typ ReferenceType, fn MergeFunc) *Registry {
	r.mergers[typ] = fn
	return r
}

// Entity returns the configuration of an entity type.
func (r *Registry) Entity(class domain.EntityClass) (EntityOptions, bool) {
	opts, ok := r.entities[class]
	return opts, ok
}

// Action returns the configuration of an activity type.
func (r *Registry) Action(typ domain.ActivityType) (ActionOptions, bool) {
	opts, ok := r.actions[typ]
	return opts, ok
}

// EntityClasses returns the registered entity types in declaration order.
func (r *Registry) EntityClasses() []domain.EntityClass {
	return slices.Clone(r.entityOrder)
}

// Mergers returns a copy of the reference merge table.
func (r *Registry) Mergers() map[ReferenceType]MergeFunc {
	return maps.Clone(r.mergers)
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
