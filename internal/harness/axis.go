// SPDX-License-Identifier: MPL-2.0

package harness

// Default axis values exercised against the mocked library.
var (
	// DefaultPasswords are the password lookup values to test, plus one
	// trial with no override at all.
	DefaultPasswords = []string{"aPassword", "another"}

	// DefaultRetvals are the boolean-ish return codes understood by the
	// mock for its clear and store entry points.
	DefaultRetvals = []string{"1", "0"}
)

type (
	// Password is one value of the password axis. A non-present password
	// means the trial leaves the ambient MOCK_SECRET_PASSWORD_LOOKUP
	// variable untouched instead of overriding it.
	Password struct {
		Value   string
		Present bool
	}

	// Trial is one fixed combination of axis values, executed as a single
	// child-process invocation.
	Trial struct {
		Password    Password
		ClearRetval string
		StoreRetval string
	}

	// Matrix describes the three configuration axes whose Cartesian
	// product forms the set of trials.
	Matrix struct {
		// Passwords holds the password axis. The enumeration appends one
		// implicit "no override" entry after these.
		Passwords []string
		// ClearRetvals holds the values for MOCK_SECRET_PASSWORD_CLEAR_RETVAL.
		ClearRetvals []string
		// StoreRetvals holds the values for MOCK_SECRET_PASSWORD_STORE_RETVAL.
		StoreRetvals []string
	}
)

// SomePassword returns a present password axis value.
func SomePassword(value string) Password {
	return Password{Value: value, Present: true}
}

// NoPassword returns the "no override" password axis value.
func NoPassword() Password {
	return Password{}
}

// DefaultMatrix returns the matrix exercised by the stock test run:
// two passwords plus absent, times two clear return codes, times two
// store return codes (12 trials).
func DefaultMatrix() Matrix {
	return Matrix{
		Passwords:    DefaultPasswords,
		ClearRetvals: DefaultRetvals,
		StoreRetvals: DefaultRetvals,
	}
}

// Trials enumerates the Cartesian product of the axes in declaration
// order, with the store axis varying fastest. The password axis runs
// through every configured value followed by the "no override" entry.
func (m Matrix) Trials() []Trial {
	passwords := make([]Password, 0, len(m.Passwords)+1)
	for _, pw := range m.Passwords {
		passwords = append(passwords, SomePassword(pw))
	}
	passwords = append(passwords, NoPassword())

	trials := make([]Trial, 0, len(passwords)*len(m.ClearRetvals)*len(m.StoreRetvals))
	for _, pw := range passwords {
		for _, clear := range m.ClearRetvals {
			for _, store := range m.StoreRetvals {
				trials = append(trials, Trial{
					Password:    pw,
					ClearRetval: clear,
					StoreRetval: store,
				})
			}
		}
	}
	return trials
}
