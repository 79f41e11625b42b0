package analyze

// Finding is a component definition found inside another function.
type Finding struct {
	// Code is the source text of the nested declaration.
	Code string `json:"code"`
	// Line is the 1-based line where the declaration starts. 0 means unknown.
	Line       int    `json:"line"`
	ParentName string `json:"parent_name"`
	FilePath   string `json:"file_path"`
}
