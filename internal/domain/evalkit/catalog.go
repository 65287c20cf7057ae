package evalkit

import (
	"fmt"
	"strings"
)

// The role catalog is fixed content: built once at init from the static
// data in catalog_data.go, read-only afterwards.
var roleIndex = map[string]int{}

func init() {
	for i, role := range roleCatalog {
		if _, dup := roleIndex[role.ID]; dup {
			panic(fmt.Sprintf("evalkit: duplicate role id %q", role.ID))
		}
		roleIndex[role.ID] = i
	}
}

// Roles returns all roles in catalog order. Question slices are copied so
// callers cannot mutate the catalog.
func Roles() []Role {
	out := make([]Role, 0, len(roleCatalog))
	for _, role := range roleCatalog {
		out = append(out, copyRole(role))
	}
	return out
}

// RoleByID returns the role with the given id or ErrRoleNotFound.
func RoleByID(id string) (Role, error) {
	i, ok := roleIndex[id]
	if !ok {
		return Role{}, ErrRoleNotFound
	}
	return copyRole(roleCatalog[i]), nil
}

func copyRole(role Role) Role {
	questions := make([]Question, len(role.Questions))
	copy(questions, role.Questions)
	role.Questions = questions
	return role
}

// questionSet builds the question list for one role from per-category
// statement texts, assigning ids of the form <role>-<category>-<nn>.
func questionSet(roleID string, byCategory map[Category][]string) []Question {
	var questions []Question
	for _, category := range categoryOrder {
		for i, text := range byCategory[category] {
			questions = append(questions, Question{
				ID:       fmt.Sprintf("%s-%s-%02d", roleID, strings.ToLower(string(category)), i+1),
				Text:     text,
				Category: category,
			})
		}
	}
	return questions
}
