//go:build !kyberdebug

package field

const debug = false
