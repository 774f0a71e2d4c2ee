package domain

// TranslationState represents the review status of a single translation.
type TranslationState string

const (
	TranslationStateUntranslated TranslationState = "UNTRANSLATED"
	TranslationStateTranslated   TranslationState = "TRANSLATED"
	TranslationStateReviewed     TranslationState = "REVIEWED"
)

func (s TranslationState) String() string { return string(s) }

func (s TranslationState) IsValid() bool {
	switch s {
	case TranslationStateUntranslated, TranslationStateTranslated, TranslationStateReviewed:
		return true
	}
	return false
}

// Scope is a permission granted to an API key.
type Scope string

const (
	ScopeTranslationsView Scope = "translations.view"
	ScopeTranslationsEdit Scope = "translations.edit"
	ScopeKeysEdit         Scope = "keys.edit"
	ScopeLanguagesEdit    Scope = "languages.edit"
	ScopeActivityView     Scope = "activity.view"
)

func (s Scope) String() string { return string(s) }

func (s Scope) IsValid() bool {
	switch s {
	case ScopeTranslationsView, ScopeTranslationsEdit, ScopeKeysEdit,
		ScopeLanguagesEdit, ScopeActivityView:
		return true
	}
	return false
}

// AllScopes lists every scope in a stable order.
func AllScopes() []Scope {
	return []Scope{
		ScopeTranslationsView,
		ScopeTranslationsEdit,
		ScopeKeysEdit,
		ScopeLanguagesEdit,
		ScopeActivityView,
	}
}

// EntityClass names a persisted entity kind as it appears in the activity log.
type EntityClass string

const (
	EntityClassProject     EntityClass = "Project"
	EntityClassLanguage    EntityClass = "Language"
	EntityClassKey         EntityClass = "Key"
	EntityClassTranslation EntityClass = "Translation"
)

func (c EntityClass) String() string { return string(c) }

// RevisionType tells whether a modified entity was added, modified or deleted.
type RevisionType string

const (
	RevisionTypeAdd RevisionType = "ADD"
	RevisionTypeMod RevisionType = "MOD"
	RevisionTypeDel RevisionType = "DEL"
)

func (r RevisionType) String() string { return string(r) }

func (r RevisionType) IsValid() bool {
	switch r {
	case RevisionTypeAdd, RevisionTypeMod, RevisionTypeDel:
		return true
	}
	return false
}

// ActivityType identifies the user action that produced an activity revision.
type ActivityType string

const (
	ActivityCreateProject       ActivityType = "CREATE_PROJECT"
	ActivityEditProject         ActivityType = "EDIT_PROJECT"
	ActivityCreateLanguage      ActivityType = "CREATE_LANGUAGE"
	ActivityEditLanguage        ActivityType = "EDIT_LANGUAGE"
	ActivityDeleteLanguage      ActivityType = "DELETE_LANGUAGE"
	ActivityCreateKey           ActivityType = "CREATE_KEY"
	ActivityKeyNameEdit         ActivityType = "KEY_NAME_EDIT"
	ActivityDeleteKey           ActivityType = "DELETE_KEY"
	ActivitySetTranslations     ActivityType = "SET_TRANSLATIONS"
	ActivitySetTranslationState ActivityType = "SET_TRANSLATION_STATE"
	ActivityImport              ActivityType = "IMPORT"
)

func (a ActivityType) String() string { return string(a) }
