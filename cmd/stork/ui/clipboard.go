package ui

import "github.com/atotto/clipboard"

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

// clipboardUnsupported reports whether no clipboard utility was found.
var clipboardUnsupported = func() bool { return clipboard.Unsupported }

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

// Available reports whether a clipboard utility is installed.
func (SystemClipboard) Available() bool {
	return !clipboardUnsupported()
}

func (SystemClipboard) Write(text string) error {
	return clipboardWriteAll(text)
}
