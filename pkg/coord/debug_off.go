//go:build !gocubedebug

package coord

const debugProbes = false
