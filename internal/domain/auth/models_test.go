package auth

import (
	"reflect"
	"testing"
)

func TestPermissionsFor(t *testing.T) {
	cases := []struct {
		role Role
		want []Permission
	}{
		{RoleAdmin, []Permission{PermRead, PermCreate, PermUpdate, PermDelete}},
		{RoleWriter, []Permission{PermRead, PermCreate, PermUpdate}},
		{RoleVisitor, []Permission{PermRead}},
		{Role("GUEST"), []Permission{PermRead}},
	}
	for _, tc := range cases {
		if got := PermissionsFor(tc.role); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("PermissionsFor(%s) = %v, want %v", tc.role, got, tc.want)
		}
	}
}

func TestAllows(t *testing.T) {
	all := []Permission{PermRead, PermCreate, PermUpdate, PermDelete}
	for _, p := range all {
		if !Allows(RoleAdmin, nil, p) {
			t.Fatalf("admin should be allowed %s without explicit permissions", p)
		}
		if Allows(RoleVisitor, nil, p) {
			t.Fatalf("visitor without permissions should not be allowed %s", p)
		}
		if !Allows(RoleVisitor, []Permission{p}, p) {
			t.Fatalf("explicit %s permission should allow it", p)
		}
	}
	if Allows(RoleWriter, PermissionsFor(RoleWriter), PermDelete) {
		t.Fatal("writer set must not include delete")
	}
}

func TestParseRole(t *testing.T) {
	if r, ok := ParseRole(" admin "); !ok || r != RoleAdmin {
		t.Fatalf("expected ADMIN, got %q %v", r, ok)
	}
	if _, ok := ParseRole("owner"); ok {
		t.Fatal("expected unknown role to be rejected")
	}
}
