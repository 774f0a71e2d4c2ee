package dataloader

import (
	"context"
	"errors"

	"github.com/heartmarshall/localize-backend/internal/activity"
	"github.com/heartmarshall/localize-backend/internal/domain"
)

// FillLanguageRefs completes language references of assembled activities
// whose tag or name was not captured when the revision was written.
// Known values are never overwritten; deleted languages stay as they are.
func (l *Loaders) FillLanguageRefs(ctx context.Context, items []activity.Activity) error {
	var ids []int64
	seen := make(map[int64]bool)
	visitLanguageRefs(items, func(id int64, tag, name *string, _ *string) {
		if (*tag == "" || *name == "") && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	})
	if len(ids) == 0 {
		return nil
	}

	langs, errs := l.LanguagesByID.LoadMany(ctx, ids)()
	if err := errors.Join(errs...); err != nil {
		return err
	}
	byID := make(map[int64]*domain.Language, len(langs))
	for i, lang := range langs {
		if lang != nil {
			byID[ids[i]] = lang
		}
	}

	visitLanguageRefs(items, func(id int64, tag, name, flag *string) {
		lang, ok := byID[id]
		if !ok {
			return
		}
		if *tag == "" {
			*tag = lang.Tag
		}
		if *name == "" {
			*name = lang.Name
		}
		if *flag == "" && lang.FlagEmoji != nil {
			*flag = *lang.FlagEmoji
		}
	})
	return nil
}

// visitLanguageRefs calls fn for every language mentioned by a reference,
// either as a language reference or inside a key reference's language list.
func visitLanguageRefs(items []activity.Activity, fn func(id int64, tag, name, flag *string)) {
	visit := func(refs []activity.Reference) {
		for i := range refs {
			ref := &refs[i]
			if ref.Type == activity.ReferenceLanguage {
				fn(ref.ID, &ref.Tag, &ref.Name, &ref.FlagEmoji)
			}
			for j := range ref.Languages {
				lr := &ref.Languages[j]
				fn(lr.ID, &lr.Tag, &lr.Name, &lr.FlagEmoji)
			}
		}
	}
	for i := range items {
		visit(items[i].References)
		for j := range items[i].Entities {
			visit(items[i].Entities[j].References)
		}
	}
}
