package domain

import (
	"reflect"
	"sort"
	"time"
)

// PropertyModification is the before/after value pair of a single changed field.
// A nil Old means the field did not exist before (entity added), a nil New
// means it no longer exists (entity deleted).
type PropertyModification struct {
	Old any `json:"old"`
	New any `json:"new"`
}

// EntityDescriptionRef points from a modified entity to an entity that
// describes it (e.g. the key and language of a translation).
type EntityDescriptionRef struct {
	EntityClass EntityClass `json:"entityClass"`
	EntityID    int64       `json:"entityId"`
}

// ModifiedEntity records the changes made to one entity within a revision.
// It is identified by (EntityClass, EntityID) inside its revision.
type ModifiedEntity struct {
	EntityClass         EntityClass
	EntityID            int64
	Modifications       map[string]PropertyModification
	Description         map[string]any
	DescribingRelations map[string]EntityDescriptionRef
	RevisionType        RevisionType
}

// ActivityRevision is the batch of changes produced by one user action.
type ActivityRevision struct {
	ID        int64
	ProjectID int64
	AuthorID  *int64
	Type      ActivityType
	Timestamp time.Time

	// ModifiedEntities groups the changed entities by class.
	ModifiedEntities map[EntityClass][]ModifiedEntity

	// Counts holds the number of modified entities per class. It may be
	// larger than len(ModifiedEntities[class]) when the list was truncated.
	Counts map[EntityClass]int
}

// NewRevision creates an empty revision of the given type.
func NewRevision(projectID int64, authorID *int64, typ ActivityType) *ActivityRevision {
	return &ActivityRevision{
		ProjectID:        projectID,
		AuthorID:         authorID,
		Type:             typ,
		Timestamp:        time.Now().UTC(),
		ModifiedEntities: make(map[EntityClass][]ModifiedEntity),
		Counts:           make(map[EntityClass]int),
	}
}

// Add appends a modified entity and bumps the class counter.
// Entities without modifications are ignored.
func (r *ActivityRevision) Add(e ModifiedEntity) {
	if len(e.Modifications) == 0 {
		return
	}
	if r.ModifiedEntities == nil {
		r.ModifiedEntities = make(map[EntityClass][]ModifiedEntity)
	}
	if r.Counts == nil {
		r.Counts = make(map[EntityClass]int)
	}
	r.ModifiedEntities[e.EntityClass] = append(r.ModifiedEntities[e.EntityClass], e)
	r.Counts[e.EntityClass]++
}

// IsEmpty reports whether the revision carries no modified entity.
func (r *ActivityRevision) IsEmpty() bool {
	for _, entities := range r.ModifiedEntities {
		if len(entities) > 0 {
			return false
		}
	}
	return true
}

// AllModifiedEntities returns every modified entity ordered by class then id.
func (r *ActivityRevision) AllModifiedEntities() []ModifiedEntity {
	var all []ModifiedEntity
	for _, entities := range r.ModifiedEntities {
		all = append(all, entities...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].EntityClass != all[j].EntityClass {
			return all[i].EntityClass < all[j].EntityClass
		}
		return all[i].EntityID < all[j].EntityID
	})
	return all
}

// DiffFields compares two field snapshots and returns a modification for every
// field whose value differs. A nil old map describes a created entity, a nil
// new map a deleted one.
func DiffFields(old, new map[string]any) map[string]PropertyModification {
	changes := make(map[string]PropertyModification)
	for name, newValue := range new {
		oldValue, existed := old[name]
		if existed && reflect.DeepEqual(derefValue(oldValue), derefValue(newValue)) {
			continue
		}
		if !existed && derefValue(newValue) == nil {
			continue
		}
		changes[name] = PropertyModification{Old: derefValue(oldValue), New: derefValue(newValue)}
	}
	for name, oldValue := range old {
		if _, ok := new[name]; ok {
			continue
		}
		if derefValue(oldValue) == nil {
			continue
		}
		changes[name] = PropertyModification{Old: derefValue(oldValue)}
	}
	return changes
}

// derefValue flattens typed pointers so that (*string)(nil) compares as nil
// and &"x" compares as "x".
func derefValue(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer {
		return v
	}
	if rv.IsNil() {
		return nil
	}
	return rv.Elem().Interface()
}
