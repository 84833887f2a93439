//go:build !js

package stylesheet

// Detect returns the Document of the current execution context. Outside a
// browser there is none.
func Detect() Document {
	return nil
}
