package consts

// MIME types the dev server needs when serving an SPA shell and its assets.
const (
	MIMETextPlain   = "text/plain"
	MIMEOctetStream = "application/octet-stream"
	MIMEJSON        = "application/json"
	MIMEHTML        = "text/html"
	MIMECSS         = "text/css"
	MIMEJS          = "text/javascript"
	MIMEMarkdown    = "text/markdown"
	MIMEMustache    = "text/x-mustache"
	MIMEPNG         = "image/png"
	MIMEJPEG        = "image/jpeg"
	MIMEGIF         = "image/gif"
	MIMESVG         = "image/svg+xml"
	MIMEIcon        = "image/x-icon"
)
