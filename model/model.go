package model

// Geometry is the size of the editor window in terminal cells.
type Geometry struct {
	Width  int
	Height int
}

// Settings represents the config sidecar written on close.
type Settings struct {
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	LastFile *string `json:"last_file"`
}

// NewSettings builds Settings for the given geometry and file path.
// An empty path is stored as null.
func NewSettings(g Geometry, path string) Settings {
	s := Settings{Width: g.Width, Height: g.Height}
	if path != "" {
		s.LastFile = &path
	}
	return s
}

// LastFilePath returns the stored file path, or "" when none was stored.
func (s Settings) LastFilePath() string {
	if s.LastFile == nil {
		return ""
	}
	return *s.LastFile
}

// Summary holds the outcome of a session run for display after exit.
type Summary struct {
	LastFile string
	Saved    bool
	Warnings []string
}
