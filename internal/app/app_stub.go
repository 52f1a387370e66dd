//go:build !ebiten

package app

// Available reports whether the GUI frontend was compiled in. Build with the
// 'ebiten' tag to enable it.
const Available = false
