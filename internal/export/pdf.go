package export

import (
	"context"
	"fmt"
	"html/template"
	"os/exec"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

const pdfRenderTimeout = 30 * time.Second

// percentEncodeForDataURL percent-encodes markup for embedding in a data URL.
// url.QueryEscape is unsuitable here: it emits + for spaces, which a data URL
// reads literally.
func percentEncodeForDataURL(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '-', r == '_', r == '.', r == '~':
			// Unreserved per RFC 3986.
			b.WriteRune(r)
		case r == ' ':
			b.WriteString("%20")
		default:
			for _, c := range []byte(string(r)) {
				fmt.Fprintf(&b, "%%%02X", c)
			}
		}
	}
	return b.String()
}

// pdfFooter builds the Chrome print footer: the contract title next to the
// page counter. The title is user-authored and must be escaped.
func pdfFooter(title string) string {
	return fmt.Sprintf(
		`<div style="font-size:8px;width:100%%;text-align:center;color:#777;">%s &middot; page <span class="pageNumber"></span> of <span class="totalPages"></span></div>`,
		template.HTMLEscapeString(title),
	)
}

// renderPDF prints the fully resolved contract HTML through headless
// Chromium. US Letter with 0.75in margins; the contract title lands in the
// page footer.
func renderPDF(html, title string) (*Result, error) {
	if _, err := exec.LookPath("chromium-browser"); err != nil {
		if _, err := exec.LookPath("chromium"); err != nil {
			return nil, fmt.Errorf("%w: chromium not installed", ErrPDFDependencyMissing)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), pdfRenderTimeout)
	defer cancel()

	// Container-safe flags: no sandbox, no GPU, no /dev/shm.
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-setuid-sandbox", true),
	)
	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()
	taskCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	dataURL := "data:text/html;charset=utf-8," + percentEncodeForDataURL(html)

	var data []byte
	err := chromedp.Run(taskCtx,
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			data, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.5).
				WithPaperHeight(11.0).
				WithMarginTop(0.75).
				WithMarginBottom(0.9).
				WithMarginLeft(0.75).
				WithMarginRight(0.75).
				WithDisplayHeaderFooter(true).
				WithHeaderTemplate(`<span></span>`).
				WithFooterTemplate(pdfFooter(title)).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("pdf render: %w", err)
	}

	return &Result{
		Data:     data,
		Filename: sanitizeFilename(title) + ".pdf",
		MimeType: "application/pdf",
	}, nil
}

// sanitizeFilename derives a header-safe artifact name from the contract
// title. Empty or fully stripped titles fall back to "contract".
func sanitizeFilename(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('-')
		}
	}
	name := b.String()
	if len(name) > 50 {
		name = name[:50]
	}
	if name == "" {
		name = "contract"
	}
	return name
}
