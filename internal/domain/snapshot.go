package domain

// Snapshots are the field maps diffed into activity modifications. Field
// names match the activity entity configuration.

// Fields returns the tracked fields of a project.
func (p Project) Fields() map[string]any {
	return map[string]any{
		"name":           p.Name,
		"description":    p.Description,
		"baseLanguageId": p.BaseLanguageID,
	}
}

// Fields returns the tracked fields of a language.
func (l Language) Fields() map[string]any {
	return map[string]any{
		"name":         l.Name,
		"tag":          l.Tag,
		"originalName": l.OriginalName,
		"flagEmoji":    l.FlagEmoji,
	}
}

// Fields returns the tracked fields of a key.
func (k Key) Fields() map[string]any {
	return map[string]any{
		"name": k.Name,
	}
}

// Fields returns the tracked fields of a translation.
func (t Translation) Fields() map[string]any {
	return map[string]any{
		"text":       t.Text,
		"state":      string(t.State),
		"auto":       t.Auto,
		"mtProvider": t.MTProvider,
	}
}

// ProjectChange builds the modified entity for a project transition.
// A nil old means the project was created, a nil new that it was deleted.
func ProjectChange(old, new *Project) ModifiedEntity {
	return change(EntityClassProject, old, new, func(p *Project) (int64, map[string]any) {
		return p.ID, p.Fields()
	})
}

// LanguageChange builds the modified entity for a language transition.
func LanguageChange(old, new *Language) ModifiedEntity {
	e := change(EntityClassLanguage, old, new, func(l *Language) (int64, map[string]any) {
		return l.ID, l.Fields()
	})
	cur := latest(old, new)
	e.Description = map[string]any{"tag": cur.Tag, "name": cur.Name}
	return e
}

// KeyChange builds the modified entity for a key transition.
func KeyChange(old, new *Key) ModifiedEntity {
	e := change(EntityClassKey, old, new, func(k *Key) (int64, map[string]any) {
		return k.ID, k.Fields()
	})
	e.Description = map[string]any{"name": latest(old, new).Name}
	return e
}

// TranslationChange builds the modified entity for a translation transition.
// The key and language describe the translation in the feed.
func TranslationChange(old, new *Translation, key Key, lang Language) ModifiedEntity {
	e := change(EntityClassTranslation, old, new, func(t *Translation) (int64, map[string]any) {
		return t.ID, t.Fields()
	})
	e.Description = map[string]any{
		"keyName":      key.Name,
		"languageTag":  lang.Tag,
		"languageName": lang.Name,
	}
	e.DescribingRelations = map[string]EntityDescriptionRef{
		"key":      {EntityClass: EntityClassKey, EntityID: key.ID},
		"language": {EntityClass: EntityClassLanguage, EntityID: lang.ID},
	}
	return e
}

func change[T any](class EntityClass, old, new *T, fields func(*T) (int64, map[string]any)) ModifiedEntity {
	e := ModifiedEntity{EntityClass: class, RevisionType: RevisionTypeMod}
	var oldFields, newFields map[string]any
	switch {
	case old == nil && new != nil:
		e.RevisionType = RevisionTypeAdd
	case old != nil && new == nil:
		e.RevisionType = RevisionTypeDel
	}
	if old != nil {
		e.EntityID, oldFields = fields(old)
	}
	if new != nil {
		e.EntityID, newFields = fields(new)
	}
	e.Modifications = DiffFields(oldFields, newFields)
	return e
}

func latest[T any](old, new *T) T {
	if new != nil {
		return *new
	}
	return *old
}
