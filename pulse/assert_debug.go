//go:build !pulseprod

package pulse

const assertionsEnabled = true
