// Package roles holds the role enumeration shared by stores and handlers.
//
// Roles are stored on the user document as a string set; the set decides
// which role-scoped queries return the user.
package roles

const (
	CEDHead        = "CED_HEAD"
	LaboratoryHead = "LABORATORY_HEAD"
	Researcher     = "RESEARCHER"
	Director       = "DIRECTOR"
)

// Assignable lists the roles an admin-style caller may hand out when
// creating an account. Anything else is rejected with a validation error.
var Assignable = []string{CEDHead, LaboratoryHead, Researcher}

// IsAssignable reports whether role may be given to a new account.
func IsAssignable(role string) bool {
	for _, r := range Assignable {
		if r == role {
			return true
		}
	}
	return false
}
