// Package pdftext renders PDF documents to layout-preserving text by
// invoking the external pdftotext tool. It is the only place the importer
// touches the PDF bytes; everything downstream works on the returned text.
package pdftext

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// Renderer invokes pdftotext. The zero value is ready to use.
type Renderer struct {
	// Binary overrides the pdftotext executable name, for tests.
	Binary string
}

func (r Renderer) binary() string {
	if r.Binary != "" {
		return r.Binary
	}
	return "pdftotext"
}

// Render returns the text content of the PDF at path. When password is
// non-empty the first attempt unlocks the document with it; if that fails
// the document is retried without one, since banks also issue the same
// statements unprotected. A failure of the final attempt is returned as a
// wrapped error carrying pdftotext's stderr.
func (r Renderer) Render(ctx context.Context, path, password string) (string, error) {
	if password != "" {
		out, err := r.run(ctx, "-layout", "-upw", password, path, "-")
		if err == nil {
			return out, nil
		}
	}

	out, err := r.run(ctx, "-layout", path, "-")
	if err != nil {
		return "", fmt.Errorf("pdftotext %s: %w", path, err)
	}
	return out, nil
}

func (r Renderer) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, r.binary(), args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := bytes.TrimSpace(stderr.Bytes()); len(msg) > 0 {
			return "", fmt.Errorf("%w: %s", err, msg)
		}
		return "", err
	}
	return stdout.String(), nil
}
