package activity

import (
	"maps"

	"github.com/heartmarshall/localize-backend/internal/domain"
)

// Assembler builds Activity records from revisions using a Registry.
type Assembler struct {
	registry *Registry
}

// NewAssembler creates an Assembler over a fully populated registry.
func NewAssembler(registry *Registry) *Assembler {
	return &Assembler{registry: registry}
}

// Assemble converts one revision.
//
// With filter set, only the entity types and fields declared by the
// revision's action are shown. Without it, every configured entity type
// present in the revision is shown with all its declared fields. Entity
// types without configuration are skipped in both modes.
func (a *Assembler) Assemble(rev domain.ActivityRevision, filter bool) Activity {
	action, hasAction := a.registry.Action(rev.Type)

	result := Activity{
		RevisionID: rev.ID,
		AuthorID:   rev.AuthorID,
		Timestamp:  rev.Timestamp.UnixMilli(),
		Type:       rev.Type,
		Entities:   []Entity{},
		References: []Reference{},
		Counts:     make(map[domain.EntityClass]int, len(rev.Counts)),
	}
	if hasAction {
		result.Label = action.Label
	}
	maps.Copy(result.Counts, rev.Counts)

	if rev.ModifiedEntities == nil {
		return result
	}

	var pooled []Reference
	for _, decl := range a.declarations(rev, action, filter) {
		opts, ok := a.registry.Entity(decl.Class)
		if !ok {
			continue
		}

		selected := opts.FieldNames()
		if subset, isSubset := decl.Fields.Subset(); filter && isSubset {
			selected = subset
		}

		for _, raw := range rev.ModifiedEntities[decl.Class] {
			entity := BuildEntity(decl.Class, raw, opts, selected)
			result.Entities = append(result.Entities, entity)
			pooled = append(pooled, entity.References...)
		}
	}

	result.References = ReduceReferences(pooled, a.registry.mergers)
	return result
}

// AssembleAll converts a page of revisions, preserving their order.
func (a *Assembler) AssembleAll(revs []domain.ActivityRevision, filter bool) []Activity {
	out := make([]Activity, len(revs))
	for i, rev := range revs {
		out[i] = a.Assemble(rev, filter)
	}
	return out
}

// declarations lists the entity types to process. In filter mode these are
// the action's declared types; otherwise every registered type that has
// data in the revision, in registration order.
func (a *Assembler) declarations(rev domain.ActivityRevision, action ActionOptions, filter bool) []EntityDeclaration {
	if filter {
		return action.Entities
	}

	var decls []EntityDeclaration
	for _, class := range a.registry.EntityClasses() {
		if _, present := rev.ModifiedEntities[class]; !present {
			continue
		}
		decls = append(decls, EntityDeclaration{Class: class, Fields: AllFields()})
	}
	return decls
}
