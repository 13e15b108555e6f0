package entities

// Region is a supported target market for generated scripts
type Region string

const (
	RegionPhilippines Region = "philippines"
	RegionVietnam     Region = "vietnam"
	RegionMalaysia    Region = "malaysia"
)

// Language is an output language tag for scripts and voiceovers
type Language string

const (
	LanguageFilipino   Language = "fil"
	LanguageVietnamese Language = "vi"
	LanguageMalay      Language = "ms"
	LanguageEnglish    Language = "en"
)

// ContentType categorizes the kind of short-form video being produced
type ContentType string

const (
	ContentTypeEducational    ContentType = "educational"
	ContentTypeProblemSolving ContentType = "problem-solving"
	ContentTypeSeasonalTips   ContentType = "seasonal-tips"
	ContentTypeProductDemo    ContentType = "product-demo"
)

// RegionContext carries the locale framing injected into script prompts
type RegionContext struct {
	Language      string
	CulturalNotes string
	Audience      string
}

// GeneratedScript is the script-generation stage output. Immutable once
// produced; regenerating replaces the whole value, there is no versioning.
type GeneratedScript struct {
	Title          string   `json:"title"`
	Script         string   `json:"script"`
	KeyPoints      []string `json:"key_points"`
	TargetAudience string   `json:"target_audience"`
	Language       Language `json:"language"`
}
