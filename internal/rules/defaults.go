package rules

// defaultCategoryExtensions mirrors the extension lists sortd ships with when
// no rule configuration is supplied.
var defaultCategoryOrder = []string{
	"Images",
	"Documents",
	"Videos",
	"Audio",
	"Archives",
	"Code",
	"Spreadsheets",
	"Presentations",
	"Executables",
	FallbackCategory,
}

var defaultCategoryExtensions = map[string][]string{
	"Images": {
		".jpg", ".jpeg", ".png", ".gif", ".bmp", ".svg", ".webp", ".tiff",
		".ico", ".raw", ".heic", ".heif", ".cr2", ".nef", ".arw", ".dng", ".psd",
	},
	"Documents": {
		".pdf", ".doc", ".docx", ".txt", ".rtf", ".odt", ".pages", ".md",
		".tex", ".epub", ".mobi", ".azw", ".azw3", ".log",
	},
	"Videos": {
		".mp4", ".avi", ".mov", ".wmv", ".flv", ".webm", ".mkv", ".m4v",
		".3gp", ".mpg", ".mpeg", ".vob", ".ogv",
	},
	"Audio": {
		".mp3", ".wav", ".flac", ".aac", ".ogg", ".m4a", ".wma", ".opus",
		".aiff", ".au", ".mid", ".midi",
	},
	"Archives": {
		".zip", ".rar", ".7z", ".tar", ".gz", ".bz2", ".xz", ".cab",
		".iso", ".img",
	},
	"Code": {
		".py", ".js", ".html", ".css", ".java", ".cpp", ".c", ".php", ".rb",
		".go", ".rs", ".ts", ".jsx", ".tsx", ".swift", ".kt", ".scala",
		".sh", ".bash", ".json", ".xml", ".yaml", ".yml", ".sql",
	},
	"Spreadsheets": {
		".xls", ".xlsx", ".csv", ".ods", ".numbers", ".tsv", ".xlsm",
	},
	"Presentations": {
		".ppt", ".pptx", ".odp", ".key", ".pps", ".ppsx",
	},
	"Executables": {
		".exe", ".msi", ".deb", ".rpm", ".dmg", ".app", ".apk", ".jar",
	},
	FallbackCategory: {},
}

// Default returns the built-in rule table. It is used whenever no rule
// configuration exists or the configured one fails validation.
func Default() Table {
	table, err := NewTable(defaultCategoryOrder, defaultCategoryExtensions)
	if err != nil {
		// The built-in lists are validated by tests; failing here means the
		// binary itself is broken.
		panic(err)
	}
	return table
}
