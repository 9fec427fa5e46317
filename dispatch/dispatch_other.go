//go:build !amd64 && !arm64

package dispatch

func init() {
	// No detection on other architectures yet.
	currentLevel = Scalar
}
