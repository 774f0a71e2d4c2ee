package activity

import (
	"github.com/heartmarshall/localize-backend/internal/domain"
)

// DefaultRegistry returns the configuration used by the activity feed.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.RegisterEntity(domain.EntityClassProject, EntityOptions{
		Label: "activity_entity_project",
		Fields: []FieldSpec{
			{Name: "name", Options: FieldOptions{Label: "activity_entity_project.name"}},
			{Name: "description", Options: FieldOptions{Label: "activity_entity_project.description"}},
			{Name: "baseLanguageId", Options: FieldOptions{Label: "activity_entity_project.base_language"}},
		},
		References: projectReferences,
	})

	r.RegisterEntity(domain.EntityClassLanguage, EntityOptions{
		Label: "activity_entity_language",
		Fields: []FieldSpec{
			{Name: "name", Options: FieldOptions{Label: "activity_entity_language.name"}},
			{Name: "tag", Options: FieldOptions{Label: "activity_entity_language.tag"}},
			{Name: "originalName", Options: FieldOptions{Label: "activity_entity_language.original_name"}},
			{Name: "flagEmoji", Options: FieldOptions{Label: "activity_entity_language.flag"}},
		},
		References: languageReferences,
	})

	r.RegisterEntity(domain.EntityClassKey, EntityOptions{
		Label: "activity_entity_key",
		Fields: []FieldSpec{
			{Name: "name", Options: FieldOptions{Label: "activity_entity_key.name"}},
		},
		References: keyReferences,
	})

	r.RegisterEntity(domain.EntityClassTranslation, EntityOptions{
		Label: "activity_entity_translation",
		Fields: []FieldSpec{
			{Name: "text", Options: FieldOptions{}},
			{Name: "state", Options: FieldOptions{Label: "activity_entity_translation.state"}},
			{Name: "auto", Options: FieldOptions{Label: "activity_entity_translation.auto", Compute: computeAutoTranslated}},
		},
		References: translationReferences,
	})

	r.RegisterMerger(ReferenceKey, MergeLanguages)

	actions := map[domain.ActivityType]ActionOptions{
		domain.ActivityCreateProject: {
			Label:    "activity_create_project",
			Entities: []EntityDeclaration{{Class: domain.EntityClassProject, Fields: AllFields()}},
		},
		domain.ActivityEditProject: {
			Label:    "activity_edit_project",
			Entities: []EntityDeclaration{{Class: domain.EntityClassProject, Fields: AllFields()}},
		},
		domain.ActivityCreateLanguage: {
			Label:    "activity_create_language",
			Entities: []EntityDeclaration{{Class: domain.EntityClassLanguage, Fields: AllFields()}},
		},
		domain.ActivityEditLanguage: {
			Label:    "activity_edit_language",
			Entities: []EntityDeclaration{{Class: domain.EntityClassLanguage, Fields: AllFields()}},
		},
		domain.ActivityDeleteLanguage: {
			Label:    "activity_delete_language",
			Entities: []EntityDeclaration{{Class: domain.EntityClassLanguage, Fields: FieldSubset("name", "tag")}},
		},
		domain.ActivityCreateKey: {
			Label: "activity_create_key",
			Entities: []EntityDeclaration{
				{Class: domain.EntityClassKey, Fields: AllFields()},
				{Class: domain.EntityClassTranslation, Fields: FieldSubset("text")},
			},
		},
		domain.ActivityKeyNameEdit: {
			Label:    "activity_key_name_edit",
			Entities: []EntityDeclaration{{Class: domain.EntityClassKey, Fields: FieldSubset("name")}},
		},
		domain.ActivityDeleteKey: {
			Label:    "activity_delete_key",
			Entities: []EntityDeclaration{{Class: domain.EntityClassKey, Fields: AllFields()}},
		},
		domain.ActivitySetTranslations: {
			Label:    "activity_set_translations",
			Entities: []EntityDeclaration{{Class: domain.EntityClassTranslation, Fields: FieldSubset("text", "auto")}},
		},
		domain.ActivitySetTranslationState: {
			Label:    "activity_set_translation_state",
			Entities: []EntityDeclaration{{Class: domain.EntityClassTranslation, Fields: FieldSubset("state")}},
		},
		domain.ActivityImport: {
			Label: "activity_import",
			Entities: []EntityDeclaration{
				{Class: domain.EntityClassLanguage, Fields: FieldSubset("tag", "name")},
				{Class: domain.EntityClassKey, Fields: FieldSubset("name")},
				{Class: domain.EntityClassTranslation, Fields: FieldSubset("text")},
			},
		},
	}
	for typ, opts := range actions {
		r.RegisterAction(typ, opts)
	}

	return r
}

// computeAutoTranslated shows the machine translation provider when a
// translation was filled automatically.
func computeAutoTranslated(values map[string]any) (any, bool) {
	auto, _ := values["auto"].(bool)
	if !auto {
		return nil, false
	}
	if provider, ok := values["mtProvider"].(string); ok && provider != "" {
		return provider, true
	}
	return "MACHINE", true
}

func projectReferences(e domain.ModifiedEntity) []Reference {
	return []Reference{{
		Type: ReferenceProject,
		ID:   e.EntityID,
		Name: stringValue(e, "name"),
	}}
}

func languageReferences(e domain.ModifiedEntity) []Reference {
	return []Reference{{
		Type:      ReferenceLanguage,
		ID:        e.EntityID,
		Name:      stringValue(e, "name"),
		Tag:       stringValue(e, "tag"),
		FlagEmoji: stringValue(e, "flagEmoji"),
	}}
}

func keyReferences(e domain.ModifiedEntity) []Reference {
	return []Reference{{
		Type: ReferenceKey,
		ID:   e.EntityID,
		Name: stringValue(e, "name"),
	}}
}

// translationReferences points a translation to its key, listing the
// translation's language so that edits of one key in several languages
// collapse into a single key reference.
func translationReferences(e domain.ModifiedEntity) []Reference {
	keyRel, ok := e.DescribingRelations["key"]
	if !ok {
		return nil
	}
	ref := Reference{
		Type: ReferenceKey,
		ID:   keyRel.EntityID,
		Name: describedString(e, "keyName"),
	}
	if langRel, ok := e.DescribingRelations["language"]; ok {
		ref.Languages = []LanguageRef{{
			ID:   langRel.EntityID,
			Tag:  describedString(e, "languageTag"),
			Name: describedString(e, "languageName"),
		}}
	}
	return []Reference{ref}
}

// stringValue returns the newest known string value of a field: the new
// value, else the old one, else the entity description.
func stringValue(e domain.ModifiedEntity, field string) string {
	if mod, ok := e.Modifications[field]; ok {
		if s, ok := mod.New.(string); ok && s != "" {
			return s
		}
		if s, ok := mod.Old.(string); ok && s != "" {
			return s
		}
	}
	return describedString(e, field)
}

func describedString(e domain.ModifiedEntity, field string) string {
	s, _ := e.Description[field].(string)
	return s
}
