package access

import "encoding/json"

// PermissionSet is the canonical form of a custom role's permissions:
// module name -> set of granted action names. Either stored payload form
// (array of actions, or action->bool object) normalizes into this.
type PermissionSet map[string]map[string]bool

// Allows reports whether the set grants action on module
func (ps PermissionSet) Allows(module, action string) bool {
	return ps[module][action]
}

// Normalize converts a raw permissions payload into a PermissionSet.
//
// Per module the payload value may be a JSON array of action names or a
// JSON object mapping action names to booleans; only flags that are
// exactly true grant. A module value in neither form is dropped, which
// denies every action on that module. A payload that is not a JSON object
// at the top level yields an empty set. Never returns an error.
func Normalize(raw []byte) PermissionSet {
	set := PermissionSet{}
	if len(raw) == 0 {
		return set
	}

	var modules map[string]json.RawMessage
	if err := json.Unmarshal(raw, &modules); err != nil {
		return set
	}

	for module, value := range modules {
		granted := map[string]bool{}

		var list []string
		if err := json.Unmarshal(value, &list); err == nil {
			for _, action := range list {
				granted[action] = true
			}
			set[module] = granted
			continue
		}

		var flags map[string]bool
		if err := json.Unmarshal(value, &flags); err == nil {
			for action, ok := range flags {
				if ok {
					granted[action] = true
				}
			}
			set[module] = granted
		}
	}
	return set
}

// ValidatePermissions checks a raw permissions payload for the role CRUD:
// the top level must be an object, every module value must be an action
// array or an action->bool object, and every action name must be one of the
// known actions. Returns the offending module name and false on failure.
func ValidatePermissions(raw []byte) (string, bool) {
	if len(raw) == 0 {
		return "", true
	}

	var modules map[string]json.RawMessage
	if err := json.Unmarshal(raw, &modules); err != nil {
		return "", false
	}

	known := map[string]bool{}
	for _, a := range Actions {
		known[a] = true
	}

	for module, value := range modules {
		var list []string
		if err := json.Unmarshal(value, &list); err == nil {
			for _, action := range list {
				if !known[action] {
					return module, false
				}
			}
			continue
		}

		var flags map[string]bool
		if err := json.Unmarshal(value, &flags); err != nil {
			return module, false
		}
		for action := range flags {
			if !known[action] {
				return module, false
			}
		}
	}
	return "", true
}
