package repository

import "strings"

// likeEscaper makes LIKE wildcards in user input match literally; queries
// using containsPattern must declare ESCAPE '\'.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a case-folded "%term%" LIKE pattern.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}
