package schema

import (
	"math/big"
	"testing"
)

func TestUint32TypeAccept(t *testing.T) {
	u32 := Uint32Type()

	if !u32.RequiresOverflowProtection() {
		t.Error("Uint32 should require overflow protection")
	}

	if got := u32.BitWidth(); got != 32 {
		t.Errorf("BitWidth() = %d, want 32", got)
	}

	if !u32.AcceptInt(4294967295) {
		t.Error("expected max uint32 value to be accepted")
	}

	if u32.AcceptInt(4294967296) {
		t.Error("expected value one past max uint32 to be rejected")
	}

	if u32.AcceptInt(-1) {
		t.Error("expected negative value to be rejected")
	}
}

func TestInt32TypeAccept(t *testing.T) {
	i32 := Int32Type()

	if !i32.AcceptInt(-2147483648) {
		t.Error("expected min int32 value to be accepted")
	}

	if !i32.AcceptInt(2147483647) {
		t.Error("expected max int32 value to be accepted")
	}

	if i32.AcceptInt(2147483648) {
		t.Error("expected value one past max int32 to be rejected")
	}
}

func TestStringAndBoolNeverOverflow(t *testing.T) {
	if StringType().RequiresOverflowProtection() {
		t.Error("string type should never require overflow protection")
	}

	if BoolType().RequiresOverflowProtection() {
		t.Error("bool type should never require overflow protection")
	}

	if DecimalType().RequiresOverflowProtection() {
		t.Error("decimal type should never require overflow protection")
	}
}

func TestCustomTypeRangeBounds(t *testing.T) {
	minV := big.NewInt(0)
	maxV := big.NewInt(100)
	percent := CustomType("Percentage", minV, maxV)

	gotMin, gotMax := percent.RangeBounds()
	if gotMin.Cmp(minV) != 0 || gotMax.Cmp(maxV) != 0 {
		t.Errorf("RangeBounds() = (%v, %v), want (%v, %v)", gotMin, gotMax, minV, maxV)
	}

	if got := percent.Name(); got != "Percentage" {
		t.Errorf("Name() = %q, want %q", got, "Percentage")
	}
}

func TestSchemaDefaultsUnknownVariableToInt32(t *testing.T) {
	s := NewSchema("trace-001")

	got, known := s.GetType("mystery")
	if known {
		t.Error("expected an undeclared variable to report known=false")
	}

	if got.Tag() != TagInt32 {
		t.Errorf("defaulted tag = %v, want TagInt32", got.Tag())
	}
}

func TestSchemaFreezeRejectsFurtherMutation(t *testing.T) {
	s := NewSchema("trace-002")
	if err := s.AddField("balance", Uint64Type(), "account balance"); err != nil {
		t.Fatalf("unexpected AddField error: %v", err)
	}

	s.Freeze()

	if err := s.AddField("amount", Uint64Type(), ""); err != ErrSchemaFrozen {
		t.Errorf("AddField after freeze = %v, want ErrSchemaFrozen", err)
	}
}

func TestSchemaMissingFields(t *testing.T) {
	s := NewSchema("trace-003")
	if err := s.AddField("balance", Uint64Type(), ""); err != nil {
		t.Fatalf("unexpected AddField error: %v", err)
	}

	missing := s.MissingFields([]string{"balance", "amount"})
	if len(missing) != 1 || missing[0] != "amount" {
		t.Errorf("MissingFields() = %v, want [amount]", missing)
	}
}
