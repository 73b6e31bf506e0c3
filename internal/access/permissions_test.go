package access

import "testing"

func TestNormalize(t *testing.T) {
	set := Normalize([]byte(`{
		"Clients": ["Read", "Update"],
		"Users": {"Read": true, "Delete": false},
		"Settings": "bogus"
	}`))

	if !set.Allows(ModuleClients, ActionRead) || !set.Allows(ModuleClients, ActionUpdate) {
		t.Error("list form actions should be granted")
	}
	if set.Allows(ModuleClients, ActionDelete) {
		t.Error("absent action should be denied")
	}
	if !set.Allows(ModuleUsers, ActionRead) {
		t.Error("true flag should be granted")
	}
	if set.Allows(ModuleUsers, ActionDelete) {
		t.Error("false flag should be denied")
	}
	if set.Allows(ModuleSettings, ActionRead) {
		t.Error("malformed module entry should be dropped")
	}
}

func TestNormalizeEmpty(t *testing.T) {
	for _, raw := range [][]byte{nil, []byte(``), []byte(`null`), []byte(`{}`)} {
		set := Normalize(raw)
		if set.Allows(ModuleClients, ActionRead) {
			t.Errorf("payload %q should deny everything", raw)
		}
	}
}

func TestValidatePermissions(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		ok      bool
	}{
		{"empty", ``, true},
		{"empty object", `{}`, true},
		{"list form", `{"Clients": ["Read", "Update"]}`, true},
		{"flag form", `{"Users": {"Read": true, "Delete": false}}`, true},
		{"mixed forms", `{"Clients": ["Read"], "Users": {"Update": true}}`, true},
		{"unknown action in list", `{"Clients": ["Approve"]}`, false},
		{"unknown action in flags", `{"Clients": {"Approve": true}}`, false},
		{"scalar module value", `{"Clients": 5}`, false},
		{"top level array", `["Clients"]`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := ValidatePermissions([]byte(tt.payload)); ok != tt.ok {
				t.Errorf("ValidatePermissions(%s) ok = %v, want %v", tt.payload, ok, tt.ok)
			}
		})
	}
}
