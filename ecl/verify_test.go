package ecl

import (
	"testing"

	"github.com/openpbs/go-pbs/attr"
)

func TestVerifyAttrOpListUnknownAttribute(t *testing.T) {
	ops := attr.AttrOplList{{Name: "not_a_real_attribute", Value: "1", Op: attr.OpSet}}
	err := VerifyAttrOpList(VerifyContext{Class: attr.ClassJob}, ops)
	if err == nil {
		t.Fatal("expected error for unknown attribute")
	}
}

func TestVerifyAttrOpListValid(t *testing.T) {
	ops := attr.AttrOplList{{Name: "Job_Name", Value: "myjob", Op: attr.OpSet}}
	if err := VerifyAttrOpList(VerifyContext{Class: attr.ClassJob}, ops); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestVerifyAttrOpListAccumulatesErrors(t *testing.T) {
	ops := attr.AttrOplList{
		{Name: "not_real_1", Value: "x", Op: attr.OpSet},
		{Name: "not_real_2", Value: "y", Op: attr.OpSet},
	}
	err := VerifyAttrOpList(VerifyContext{Class: attr.ClassJob}, ops)
	errs, ok := err.(ErrorList)
	if !ok {
		t.Fatalf("expected ErrorList, got %T", err)
	}
	if len(errs) != 2 {
		t.Errorf("expected 2 accumulated errors, got %d", len(errs))
	}
}

func TestSetNoAttributeVerificationDisablesChecks(t *testing.T) {
	SetNoAttributeVerification()
	defer func() { disabled = false }()

	ops := attr.AttrOplList{{Name: "not_a_real_attribute", Value: "1", Op: attr.OpSet}}
	if err := VerifyAttrOpList(VerifyContext{Class: attr.ClassJob}, ops); err != nil {
		t.Fatalf("expected no error once verification disabled, got %v", err)
	}
}

func TestVerifyJobArrayRange(t *testing.T) {
	valid := []string{"0-9", "1-100:2", "0-1"}
	for _, v := range valid {
		if err := VerifyJobArrayRange(v); err != nil {
			t.Errorf("VerifyJobArrayRange(%q): unexpected error: %v", v, err)
		}
	}
	invalid := []string{"", "5", "9-1", "1-2:0", "a-b"}
	for _, v := range invalid {
		if err := VerifyJobArrayRange(v); err == nil {
			t.Errorf("VerifyJobArrayRange(%q): expected error", v)
		}
	}
}
