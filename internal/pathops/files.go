package pathops

import (
	"fmt"
	"io"
	"os"
)

// copyFile copies src to dst, carrying over the source file's mode.
// A same-path copy is a no-op so overwriting the source with itself
// (the default --out) cannot truncate it.
func copyFile(src, dst string) error {
	if src == dst {
		return nil
	}

	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}
	return out.Close()
}

// cleanup removes the working copy, best effort.
func cleanup(path string) {
	_ = os.Remove(path)
}
