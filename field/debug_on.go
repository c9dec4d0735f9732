//go:build kyberdebug

package field

// debug enables range checks on reduction inputs.
const debug = true
