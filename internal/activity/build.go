package activity

import (
	"slices"

	"github.com/heartmarshall/localize-backend/internal/domain"
)

// BuildEntity assembles the presentable entity for one modified entity.
// Only fields named in selected are considered; they are emitted in the
// configuration's declared order and dropped when they resolve to nothing.
func BuildEntity(class domain.EntityClass, raw domain.ModifiedEntity, opts EntityOptions, selected []string) Entity {
	entity := Entity{
		Type:         class,
		ID:           raw.EntityID,
		Label:        opts.Label,
		RevisionType: raw.RevisionType,
		Description:  raw.Description,
		Fields:       []Field{},
		References:   []Reference{},
	}

	if opts.References != nil {
		if refs := opts.References(raw); refs != nil {
			entity.References = refs
		}
	}

	for _, fd := range opts.Fields {
		if !slices.Contains(selected, fd.Name) {
			continue
		}
		value, ok := ResolveField(fd.Name, raw.Modifications, fd.Options)
		if !ok {
			continue
		}
		entity.Fields = append(entity.Fields, Field{
			Name:  fd.Name,
			Label: fd.Options.Label,
			Value: value,
		})
	}

	return entity
}
