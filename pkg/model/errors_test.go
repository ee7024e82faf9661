package model

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMapErrors(t *testing.T) {
	payload := map[string][]string{
		"email":                {"is taken", " is taken "},
		"user[name]":           {"is too short"},
		"/body/user/tags/0":    {"must be unique"},
		"$.data.nickname":      {"is reserved"},
		"non_field_errors":     {"Account is locked"},
		"request/body/unknown": {"Unknown failure"},
		"":                     {"Try again later"},
		"user.address.street":  {"is blank"},
		"phone":                {"   "},
	}

	mapped := MapErrors("user", []string{"email", "name", "tags", "nickname", "address"}, payload)

	wantFields := map[string][]string{
		"email":    {"is taken"},
		"name":     {"is too short"},
		"tags":     {"must be unique"},
		"nickname": {"is reserved"},
		"address":  {"is blank"},
	}
	if diff := cmp.Diff(wantFields, mapped.Fields); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}

	form := append([]string(nil), mapped.Form...)
	sort.Strings(form)
	wantForm := []string{"Account is locked", "Try again later", "Unknown failure"}
	if diff := cmp.Diff(wantForm, form); diff != "" {
		t.Fatalf("form errors mismatch (-want +got):\n%s", diff)
	}
}

func TestMapErrorsEmpty(t *testing.T) {
	mapped := MapErrors("user", []string{"email"}, nil)
	if mapped.Fields != nil || mapped.Form != nil {
		t.Fatalf("expected empty mapping, got %+v", mapped)
	}
}

func TestMergeFormErrors(t *testing.T) {
	merged := MergeFormErrors([]string{" First ", "Second"}, "Second", "third", "  ")
	if diff := cmp.Diff([]string{"First", "Second", "third"}, merged); diff != "" {
		t.Fatalf("merged form errors mismatch (-want +got):\n%s", diff)
	}
}
