package tokenize

import "strings"

// mimeByExtension is Table M from spec.md §4.3.6/§4.3.9: extension -> MIME
// type, covering images, audio, video, documents, archives, structured
// text, scripts/styles and fonts, plus a handful of executables. It is
// stored as a plain map with a single entry per extension; where the
// original source's two scanning tables disagreed (".ts" appears as both
// "video/mp2t" and "application/typescript"), the original's first-match
// order is preserved by simply never writing the shadowed value — see
// DESIGN.md for the provenance of this policy.
var mimeByExtension = map[string]string{
	// Images
	".jpg": "image/jpeg", ".jpeg": "image/jpeg", ".png": "image/png", ".gif": "image/gif",
	".bmp": "image/bmp", ".webp": "image/webp", ".svg": "image/svg+xml", ".ico": "image/x-icon",
	".tiff": "image/tiff", ".tif": "image/tiff", ".heic": "image/heic", ".heif": "image/heif",
	".apng": "image/apng", ".avif": "image/avif",
	// Audio
	".mp3": "audio/mpeg", ".wav": "audio/wav", ".ogg": "audio/ogg", ".oga": "audio/ogg",
	".flac": "audio/flac", ".aac": "audio/aac", ".m4a": "audio/mp4", ".opus": "audio/opus",
	".mid": "audio/midi", ".midi": "audio/midi", ".amr": "audio/amr",
	// Video
	".mp4": "video/mp4", ".webm": "video/webm", ".mov": "video/quicktime", ".avi": "video/x-msvideo",
	".mkv": "video/x-matroska", ".flv": "video/x-flv", ".mpg": "video/mpeg", ".mpeg": "video/mpeg",
	".3gp": "video/3gpp", ".3g2": "video/3gpp2", ".wmv": "video/x-ms-wmv", ".m4v": "video/x-m4v",
	".ts": "video/mp2t", ".ogv": "video/ogg",
	// Documents
	".pdf": "application/pdf", ".doc": "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".ppt": "application/vnd.ms-powerpoint",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	".xls": "application/vnd.ms-excel",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".epub": "application/epub+zip", ".mobi": "application/x-mobipocket-ebook",
	".azw3": "application/vnd.amazon.ebook", ".fb2": "application/x-fictionbook+xml",
	".chm": "application/vnd.ms-htmlhelp", ".xps": "application/vnd.ms-xpsdocument",
	".odt": "application/vnd.oasis.opendocument.text",
	".ods": "application/vnd.oasis.opendocument.spreadsheet",
	".odp": "application/vnd.oasis.opendocument.presentation",
	".odg": "application/vnd.oasis.opendocument.graphics",
	".odf": "application/vnd.oasis.opendocument.formula",
	".odc": "application/vnd.oasis.opendocument.chart",
	".odm": "application/vnd.oasis.opendocument.text-master",
	// Archives
	".zip": "application/zip", ".tar": "application/x-tar", ".gz": "application/gzip",
	".rar": "application/x-rar-compressed", ".7z": "application/x-7z-compressed",
	".bz2": "application/x-bzip2", ".xz": "application/x-xz",
	// Structured text
	".csv": "text/csv", ".json": "application/json", ".xml": "application/xml",
	".yaml": "application/x-yaml", ".yml": "application/x-yaml", ".md": "text/markdown",
	".rst": "text/x-rst",
	// Scripts/styles
	".js": "application/javascript", ".mjs": "application/javascript", ".cjs": "application/javascript",
	".tsx": "application/typescript", ".jsx": "application/javascript",
	".css": "text/css", ".scss": "text/x-scss", ".sass": "text/x-sass", ".less": "text/x-less",
	// Fonts
	".woff": "font/woff", ".woff2": "font/woff2", ".ttf": "font/ttf", ".otf": "font/otf",
	".eot": "application/vnd.ms-fontobject",
	// Others
	".swf": "application/x-shockwave-flash", ".jar": "application/java-archive",
	".exe": "application/vnd.microsoft.portable-executable",
	".apk": "application/vnd.android.package-archive",
	".dmg": "application/x-apple-diskimage", ".iso": "application/x-iso9660-image",
}

// mimeForPath returns the table-M MIME type for the file extension in
// urlPath (query/fragment already stripped by the caller), and whether a
// match was found.
func mimeForPath(urlPath string) (string, bool) {
	ext := extensionOf(urlPath)
	if ext == "" {
		return "", false
	}
	m, ok := mimeByExtension[strings.ToLower(ext)]
	return m, ok
}

func extensionOf(path string) string {
	// last path segment, then last '.' within it
	slash := strings.LastIndexByte(path, '/')
	name := path
	if slash != -1 {
		name = path[slash+1:]
	}
	dot := strings.LastIndexByte(name, '.')
	if dot == -1 || dot == len(name)-1 {
		return ""
	}
	return name[dot:]
}
