// Package pages serves the two browser pages of text-share.
//
// The submission page (index.html) posts to /submit-text and the reading page
// (read.html) polls /get-text. Both are embedded in the binary; the
// SERVER_PUBLIC_DIR setting swaps in a directory on disk, which must contain
// both pages.
//
// # HTTP Endpoints
//
//   - GET / : Submission page.
//   - GET /read : Reading page.
//   - GET /* : Any other file of the public directory (e.g. /style.css).
//     Unknown files fall through to the remaining routes.
package pages
