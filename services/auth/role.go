package auth

import (
	"strings"

	"growlife/models"
)

// InferRole derives an account's role from its username. The mapping is a
// compatibility contract with existing accounts: a username containing
// "@agent" is an agent, the literal "admin" is the admin, everything else is
// a regular customer. Keep all role derivation behind this function.
func InferRole(username string) string {
	switch {
	case strings.Contains(username, "@agent"):
		return models.RoleAgent
	case username == "admin":
		return models.RoleAdmin
	default:
		return models.RoleUser
	}
}
