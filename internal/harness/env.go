// SPDX-License-Identifier: MPL-2.0

package harness

import (
	"maps"
	"os"
	"sort"
)

// Environment variables understood by the mocked libsecret library.
const (
	// EnvPasswordLookup is the value secret_password_lookup_sync returns.
	EnvPasswordLookup = "MOCK_SECRET_PASSWORD_LOOKUP"
	// EnvClearRetval controls the secret_password_clear_sync return value.
	EnvClearRetval = "MOCK_SECRET_PASSWORD_CLEAR_RETVAL"
	// EnvStoreRetval controls the secret_password_store_sync return value.
	EnvStoreRetval = "MOCK_SECRET_PASSWORD_STORE_RETVAL"
	// EnvPreload is the dynamic loader override that substitutes the mock
	// for the real libsecret at process start.
	EnvPreload = "LD_PRELOAD"
)

// EnvBuilder builds the child environment for a trial with the following
// precedence (higher number wins):
//
//  1. Host environment snapshot
//  2. Extra overrides (--env-file files, then --env-var flags)
//  3. The trial's axis overrides and the preload path
//
// Every Build call copies the snapshot fresh, so axis overrides never
// leak between trials.
type EnvBuilder struct {
	// Preload is the shared library path installed as LD_PRELOAD.
	Preload string
	// Extra contains additional overrides applied to every trial.
	Extra map[string]string
	// Environ returns the host environment as "KEY=VALUE" strings.
	// When nil, os.Environ() is used.
	Environ func() []string
}

// Build constructs the environment map for one trial.
func (b *EnvBuilder) Build(tr Trial) map[string]string {
	environ := os.Environ
	if b.Environ != nil {
		environ = b.Environ
	}

	env := snapshotEnviron(environ())
	maps.Copy(env, b.Extra)

	// The password override is skipped, not cleared, when absent: any
	// ambient lookup value passes through to the child unchanged.
	if tr.Password.Present {
		env[EnvPasswordLookup] = tr.Password.Value
	}
	env[EnvClearRetval] = tr.ClearRetval
	env[EnvStoreRetval] = tr.StoreRetval
	env[EnvPreload] = b.Preload

	return env
}

// snapshotEnviron parses "KEY=VALUE" entries into a map. Malformed
// entries without a separator are dropped.
func snapshotEnviron(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, entry := range environ {
		idx := findEnvSeparator(entry)
		if idx == -1 {
			continue
		}
		env[entry[:idx]] = entry[idx+1:]
	}
	return env
}

// findEnvSeparator returns the index of the first '=' in an environment
// entry, skipping a leading '=' (Windows uses names like "=C:").
func findEnvSeparator(e string) int {
	for i := 1; i < len(e); i++ {
		if e[i] == '=' {
			return i
		}
	}
	return -1
}

// EnvToSlice converts an environment map to a sorted "KEY=VALUE" slice
// suitable for exec. Sorting keeps child invocations deterministic.
func EnvToSlice(env map[string]string) []string {
	result := make([]string, 0, len(env))
	for k, v := range env {
		result = append(result, k+"="+v)
	}
	sort.Strings(result)
	return result
}
