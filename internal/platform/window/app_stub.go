//go:build !ebiten

package window

// Run reports that this binary was built without window support.
func Run(Options) error {
	return ErrUnavailable
}
