// SPDX-License-Identifier: MPL-2.0

package harness

import "testing"

// TestDefaultMatrix_TrialCount verifies that the stock matrix enumerates
// exactly 3 x 2 x 2 = 12 trials.
func TestDefaultMatrix_TrialCount(t *testing.T) {
	t.Parallel()

	trials := DefaultMatrix().Trials()
	if len(trials) != 12 {
		t.Fatalf("len(Trials()) = %d, want 12", len(trials))
	}
}

// TestMatrix_TrialOrder verifies standard product ordering: axes in
// declaration order with the store axis varying fastest, and the
// "no override" password entry enumerated last.
func TestMatrix_TrialOrder(t *testing.T) {
	t.Parallel()

	trials := DefaultMatrix().Trials()

	want := []Trial{
		{Password: SomePassword("aPassword"), ClearRetval: "1", StoreRetval: "1"},
		{Password: SomePassword("aPassword"), ClearRetval: "1", StoreRetval: "0"},
		{Password: SomePassword("aPassword"), ClearRetval: "0", StoreRetval: "1"},
		{Password: SomePassword("aPassword"), ClearRetval: "0", StoreRetval: "0"},
		{Password: SomePassword("another"), ClearRetval: "1", StoreRetval: "1"},
		{Password: SomePassword("another"), ClearRetval: "1", StoreRetval: "0"},
		{Password: SomePassword("another"), ClearRetval: "0", StoreRetval: "1"},
		{Password: SomePassword("another"), ClearRetval: "0", StoreRetval: "0"},
		{Password: NoPassword(), ClearRetval: "1", StoreRetval: "1"},
		{Password: NoPassword(), ClearRetval: "1", StoreRetval: "0"},
		{Password: NoPassword(), ClearRetval: "0", StoreRetval: "1"},
		{Password: NoPassword(), ClearRetval: "0", StoreRetval: "0"},
	}

	if len(trials) != len(want) {
		t.Fatalf("len(Trials()) = %d, want %d", len(trials), len(want))
	}
	for i, tr := range trials {
		if tr != want[i] {
			t.Errorf("trial %d = %+v, want %+v", i, tr, want[i])
		}
	}
}

// TestMatrix_CustomAxes verifies that trial enumeration respects
// caller-supplied axis values.
func TestMatrix_CustomAxes(t *testing.T) {
	t.Parallel()

	m := Matrix{
		Passwords:    []string{"only"},
		ClearRetvals: []string{"1"},
		StoreRetvals: []string{"1", "0"},
	}

	trials := m.Trials()
	if len(trials) != 4 { // (1 password + absent) x 1 x 2
		t.Fatalf("len(Trials()) = %d, want 4", len(trials))
	}
	if !trials[0].Password.Present || trials[0].Password.Value != "only" {
		t.Errorf("trial 0 password = %+v, want present %q", trials[0].Password, "only")
	}
	if trials[2].Password.Present {
		t.Errorf("trial 2 password = %+v, want no override", trials[2].Password)
	}
}

// TestPassword_Constructors verifies the present/absent distinction.
func TestPassword_Constructors(t *testing.T) {
	t.Parallel()

	if pw := SomePassword("secret"); !pw.Present || pw.Value != "secret" {
		t.Errorf("SomePassword() = %+v", pw)
	}
	if pw := NoPassword(); pw.Present {
		t.Errorf("NoPassword() = %+v, want not present", pw)
	}
}
