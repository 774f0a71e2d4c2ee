package activity

import "github.com/heartmarshall/localize-backend/internal/domain"

type side int

const (
	sideOld side = iota
	sideNew
)

// diffVersion projects one side of every modification into a flat map.
func diffVersion(s side, mods map[string]domain.PropertyModification) map[string]any {
	values := make(map[string]any, len(mods))
	for name, mod := range mods {
		if s == sideNew {
			values[name] = mod.New
		} else {
			values[name] = mod.Old
		}
	}
	return values
}

// ResolveField returns the before/after value of a field, or false when the
// field has nothing to show.
//
// Without a compute function the raw modification pair is returned when
// present. With one, the function runs once over all old values and once
// over all new values; the field is absent only if both sides are undefined.
func ResolveField(name string, mods map[string]domain.PropertyModification, opts FieldOptions) (DiffValue, bool) {
	if opts.Compute == nil {
		mod, ok := mods[name]
		if !ok {
			return DiffValue{}, false
		}
		return DiffValue{Old: mod.Old, New: mod.New}, true
	}

	newValue, newOK := opts.Compute(diffVersion(sideNew, mods))
	oldValue, oldOK := opts.Compute(diffVersion(sideOld, mods))
	if !newOK && !oldOK {
		return DiffValue{}, false
	}
	return DiffValue{Old: oldValue, New: newValue}, true
}
