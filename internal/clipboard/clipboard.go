// Package clipboard copies text to the system clipboard by shelling out to
// the platform's copy utility, since there is no portable clipboard API in
// the standard library.
package clipboard

import (
	"context"
	"fmt"
	"runtime"

	"splitdiff/internal/util"
)

// CopyText sends text to the system clipboard. On an unrecognized platform
// it returns an error rather than silently doing nothing, so a caller like
// splitdiff render --copy can tell the user the copy didn't happen.
func CopyText(ctx context.Context, text string) error {
	switch runtime.GOOS {
	case "darwin":
		_, err := util.RunWithStdin(ctx, "", text, "pbcopy")
		return err
	case "linux":
		_, err := util.RunWithStdin(ctx, "", text, "xclip", "-selection", "clipboard")
		return err
	case "windows":
		_, err := util.RunWithStdin(ctx, "", text, "clip")
		return err
	default:
		return fmt.Errorf("clipboard: unsupported platform %q", runtime.GOOS)
	}
}
