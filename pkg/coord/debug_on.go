//go:build gocubedebug

package coord

// debugProbes re-verifies every probe state while building tables.
const debugProbes = true
