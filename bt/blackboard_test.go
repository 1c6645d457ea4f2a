package bt

import "testing"

func TestBlackboardSetGet(t *testing.T) {
	bb := NewBlackboard()

	bb.SetInt(1, 42)
	bb.SetFixed(2, NewFixed(1.5))
	bb.SetBool(3, true)
	bb.SetEntity(4, Entity(7))
	bb.SetVec2(5, Vec2{X: 1, Y: 2})

	if v, ok := bb.Int(1); !ok || v != 42 {
		t.Errorf("Int(1) = (%d, %v), want (42, true)", v, ok)
	}

	if v, ok := bb.Fixed(2); !ok || v.Float() != 1.5 {
		t.Errorf("Fixed(2) = (%v, %v), want (1.5, true)", v.Float(), ok)
	}

	if v, ok := bb.Bool(3); !ok || !v {
		t.Errorf("Bool(3) = (%v, %v), want (true, true)", v, ok)
	}

	if v, ok := bb.EntityID(4); !ok || v != 7 {
		t.Errorf("EntityID(4) = (%d, %v), want (7, true)", v, ok)
	}

	if v, ok := bb.Vec2At(5); !ok || v != (Vec2{X: 1, Y: 2}) {
		t.Errorf("Vec2At(5) = (%v, %v), want ({1 2}, true)", v, ok)
	}
}

func TestBlackboardMissingKey(t *testing.T) {
	bb := NewBlackboard()

	if _, ok := bb.Int(99); ok {
		t.Errorf("Int(99) ok = true for missing key")
	}

	if bb.Has(99) {
		t.Errorf("Has(99) = true for missing key")
	}
}

func TestBlackboardTypeMismatch(t *testing.T) {
	bb := NewBlackboard()
	bb.SetInt(1, 5)

	if _, ok := bb.Fixed(1); ok {
		t.Errorf("Fixed(1) ok = true for an Int-typed key")
	}
}

func TestBlackboardTruthy(t *testing.T) {
	bb := NewBlackboard()
	bb.SetInt(1, 0)
	bb.SetInt(2, 1)

	if bb.IsTruthy(1) {
		t.Errorf("IsTruthy(1) = true for zero value")
	}

	if !bb.IsTruthy(2) {
		t.Errorf("IsTruthy(2) = false for nonzero value")
	}

	if bb.IsTruthy(99) {
		t.Errorf("IsTruthy(99) = true for missing key")
	}
}

func TestBlackboardRemoveClearLen(t *testing.T) {
	bb := NewBlackboard()
	bb.SetInt(1, 1)
	bb.SetInt(2, 2)

	if bb.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", bb.Len())
	}

	bb.Remove(1)

	if bb.Has(1) {
		t.Errorf("Has(1) = true after Remove")
	}

	if bb.Len() != 1 {
		t.Errorf("Len() = %d after Remove, want 1", bb.Len())
	}

	bb.Clear()

	if bb.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", bb.Len())
	}
}

func TestFixedRoundTrip(t *testing.T) {
	f := NewFixed(3.25)
	if f.Float() != 3.25 {
		t.Errorf("NewFixed(3.25).Float() = %v, want 3.25", f.Float())
	}
}
