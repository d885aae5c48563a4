package finder

import "strings"

// typeMappings maps natural-language category words to the extensions
// they cover. This is an ordered list, not a map: several keys can
// match overlapping text ("document" vs "doc") and the first declared
// key must win.
var typeMappings = []struct {
	keyword    string
	extensions []string
}{
	// Documents
	{"pdf", []string{"pdf"}},
	{"document", []string{"doc", "docx", "txt", "odt", "rtf", "pdf"}},
	{"doc", []string{"doc", "docx"}},
	{"word", []string{"doc", "docx"}},
	{"text", []string{"txt", "rtf"}},

	// Spreadsheets
	{"excel", []string{"xlsx", "xls", "csv"}},
	{"spreadsheet", []string{"xlsx", "xls", "csv", "ods"}},
	{"csv", []string{"csv"}},
	{"xlsx", []string{"xlsx"}},
	{"xls", []string{"xls"}},

	// Presentations
	{"powerpoint", []string{"pptx", "ppt"}},
	{"presentation", []string{"pptx", "ppt", "odp"}},
	{"ppt", []string{"ppt", "pptx"}},

	// Images
	{"image", []string{"jpg", "jpeg", "png", "gif", "bmp", "svg", "webp"}},
	{"picture", []string{"jpg", "jpeg", "png", "gif", "bmp"}},
	{"photo", []string{"jpg", "jpeg", "png"}},
	{"png", []string{"png"}},
	{"jpg", []string{"jpg", "jpeg"}},
	{"jpeg", []string{"jpg", "jpeg"}},

	// Videos
	{"video", []string{"mp4", "avi", "mkv", "mov", "wmv", "flv"}},
	{"mp4", []string{"mp4"}},
	{"movie", []string{"mp4", "avi", "mkv", "mov"}},

	// Audio
	{"audio", []string{"mp3", "wav", "flac", "aac", "ogg"}},
	{"music", []string{"mp3", "wav", "flac", "aac"}},
	{"mp3", []string{"mp3"}},

	// Code
	{"code", []string{"py", "js", "java", "cpp", "c", "html", "css", "json", "xml"}},
	{"python", []string{"py"}},
	{"javascript", []string{"js"}},
	{"html", []string{"html"}},

	// Archives
	{"zip", []string{"zip"}},
	{"archive", []string{"zip", "rar", "7z", "tar", "gz"}},
	{"compressed", []string{"zip", "rar", "7z"}},
}

// bareExtensions are matched only when written as ".ext" or set off by
// spaces, to avoid treating arbitrary substrings as extensions.
var bareExtensions = []string{
	"pdf", "doc", "docx", "txt", "xlsx", "xls", "csv", "ppt", "pptx",
	"jpg", "jpeg", "png", "gif", "mp4", "mp3", "zip",
}

// NormalizeFileType extracts a set of file extensions from a
// natural-language query, or nil if the query names no file type.
func NormalizeFileType(text string) []string {
	query := strings.ToLower(text)

	for _, mapping := range typeMappings {
		if strings.Contains(query, mapping.keyword) {
			out := make([]string, len(mapping.extensions))
			copy(out, mapping.extensions)
			return out
		}
	}

	for _, ext := range bareExtensions {
		if strings.Contains(query, "."+ext) || strings.Contains(query, " "+ext+" ") {
			return []string{ext}
		}
	}

	return nil
}
