package export

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// pandocArgs is the pandoc invocation for a contract export: HTML on stdin,
// DOCX on stdout, contract title stamped into the document metadata.
func pandocArgs(title string) []string {
	return []string{
		"-f", "html",
		"-t", "docx",
		"--standalone",
		"--metadata", "title=" + title,
		"-o", "-",
	}
}

// renderDOCX converts the fully resolved contract HTML to DOCX through
// pandoc.
func renderDOCX(html, title string) (*Result, error) {
	if _, err := exec.LookPath("pandoc"); err != nil {
		return nil, fmt.Errorf("%w: pandoc not installed", ErrDOCXDependencyMissing)
	}

	cmd := exec.Command("pandoc", pandocArgs(title)...)
	cmd.Stdin = strings.NewReader(html)

	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("pandoc: %s", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("run pandoc: %w", err)
	}

	return &Result{
		Data:     out,
		Filename: sanitizeFilename(title) + ".docx",
		MimeType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	}, nil
}
