package convert

import "testing"

// FuzzSourceToJSON mirrors the teacher's converter fuzz test: the function
// must never panic, regardless of how malformed the input is, and any
// bytes it accepts must produce output a strict JSON parser would accept.
func FuzzSourceToJSON(f *testing.F) {
	f.Add([]byte(`{"a":1}`))
	f.Add([]byte{tagObject, 0, 0, 0, 0})
	f.Add([]byte{0xFF})
	f.Add([]byte(nil))

	f.Fuzz(func(t *testing.T, data []byte) {
		out, err := SourceToJSON(data)
		if err != nil {
			return
		}
		if !jsonValid(out) {
			t.Fatalf("SourceToJSON produced invalid JSON for input %x: %s", data, out)
		}
	})
}

// FuzzVersionToString ensures malformed packed versions are rejected
// cleanly rather than panicking.
func FuzzVersionToString(f *testing.F) {
	f.Add([]byte{0, 0, 0, 8})
	f.Add([]byte{1, 2, 3})
	f.Add([]byte(nil))

	f.Fuzz(func(t *testing.T, data []byte) {
		_, _ = VersionToString(data)
	})
}
