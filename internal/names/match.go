package names

// Matches reports whether a stored inventory entry corresponds to the given
// registry-qualified name. An entry matches when its stored name equals the
// qualified name verbatim or its sanitized form, or when either form appears
// as an exact element of the entry's argument list.
//
// Argument matching is exact-element, never substring: qualified names are
// often short common words ("redis") that would otherwise false-positive
// against unrelated tokens ("redis-cli").
//
// Matches is a pure predicate. It returns false, never an error, for empty
// inputs.
func Matches(qualifiedName, entryName string, entryArgs []string) bool {
	if qualifiedName == "" {
		return false
	}

	sanitized := Sanitize(qualifiedName)
	if entryName == qualifiedName || entryName == sanitized {
		return true
	}

	return containsExact(entryArgs, qualifiedName) || containsExact(entryArgs, sanitized)
}

// containsExact reports whether want appears as a complete argument in args.
func containsExact(args []string, want string) bool {
	if want == "" {
		return false
	}
	for _, arg := range args {
		if arg == want {
			return true
		}
	}
	return false
}
