package script

import (
	"regexp"
	"strings"

	"github.com/agrireel/content-remix/internal/domain/entities"
)

var (
	sentenceSplitRe  = regexp.MustCompile(`[.!?]+`)
	leadingFillerRe  = regexp.MustCompile(`(?i)^(and|but|so|then)\s+`)
	keyPointKeywords = []string{"important", "remember", "tip", "key", "best", "effective"}
)

// ExtractKeyPoints pulls up to four sentences carrying key-indicator words
// out of the script. When fewer than two match, the second through fifth
// meaningful sentences are used instead.
func ExtractKeyPoints(scriptText string) []string {
	var sentences []string
	for _, s := range sentenceSplitRe.Split(scriptText, -1) {
		if strings.TrimSpace(s) != "" {
			sentences = append(sentences, s)
		}
	}

	var keyPoints []string
	for _, sentence := range sentences {
		if len(keyPoints) >= 4 {
			break
		}
		for _, kw := range keyPointKeywords {
			if strings.Contains(sentence, kw) {
				trimmed := leadingFillerRe.ReplaceAllString(strings.TrimSpace(sentence), "")
				keyPoints = append(keyPoints, trimmed)
				break
			}
		}
	}

	// Fallback to the first few meaningful sentences when the keyword
	// filter found too little
	if len(keyPoints) < 2 {
		var fallback []string
		end := len(sentences)
		if end > 5 {
			end = 5
		}
		for i := 1; i < end; i++ {
			s := strings.TrimSpace(sentences[i])
			if len(s) > 20 {
				fallback = append(fallback, s)
			}
		}
		return fallback
	}

	return keyPoints
}

var contentTypeLabels = map[entities.ContentType]string{
	entities.ContentTypeEducational:    "Tutorial",
	entities.ContentTypeProblemSolving: "Solution",
	entities.ContentTypeSeasonalTips:   "Tips",
	entities.ContentTypeProductDemo:    "Guide",
}

var regionLabels = map[entities.Region]string{
	entities.RegionPhilippines: "Filipino",
	entities.RegionVietnam:     "Vietnamese",
	entities.RegionMalaysia:    "Malaysian",
}

// GenerateTitle derives a display title from the script topic, the content
// type and the target region.
func GenerateTitle(scriptText string, contentType entities.ContentType, region entities.Region) string {
	typeLabel, ok := contentTypeLabels[contentType]
	if !ok {
		typeLabel = "Guide"
	}
	regionLabel, ok := regionLabels[region]
	if !ok {
		regionLabel = "Southeast Asian"
	}

	words := strings.Fields(strings.ToLower(scriptText))
	has := func(w string) bool {
		for _, word := range words {
			if word == w {
				return true
			}
		}
		return false
	}

	mainTopic := "Farming"
	switch {
	case has("rice"):
		mainTopic = "Rice"
	case has("pest") || has("disease"):
		mainTopic = "Crop Protection"
	case has("fertilizer"):
		mainTopic = "Fertilizer"
	case has("harvest"):
		mainTopic = "Harvest"
	case has("plant"):
		mainTopic = "Planting"
	}

	return "Effective " + mainTopic + " " + typeLabel + " for " + regionLabel + " Farmers"
}
