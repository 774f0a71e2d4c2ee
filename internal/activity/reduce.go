package activity

// ReduceReferences merges references that share a type and id when the type
// has a merge function. Merged references come first, in the order their
// identity was first seen, followed by all other references in their
// original relative order.
func ReduceReferences(refs []Reference, mergers map[ReferenceType]MergeFunc) []Reference {
	merged := make(map[string]Reference)
	var order []string
	var others []Reference

	for _, ref := range refs {
		merge, ok := mergers[ref.Type]
		if !ok {
			others = append(others, ref)
			continue
		}
		id := ref.identity()
		if existing, seen := merged[id]; seen {
			merged[id] = merge(existing, ref)
			continue
		}
		merged[id] = ref
		order = append(order, id)
	}

	result := make([]Reference, 0, len(order)+len(others))
	for _, id := range order {
		result = append(result, merged[id])
	}
	return append(result, others...)
}

// MergeLanguages concatenates the language lists of two key references,
// existing languages first. Duplicates are kept. Every other attribute of
// the existing reference wins.
func MergeLanguages(existing, incoming Reference) Reference {
	out := existing
	out.Languages = make([]LanguageRef, 0, len(existing.Languages)+len(incoming.Languages))
	out.Languages = append(out.Languages, existing.Languages...)
	out.Languages = append(out.Languages, incoming.Languages...)
	return out
}
