package transcription

import (
	"math/rand"

	"github.com/agrireel/content-remix/internal/domain/entities"
)

// Canned agricultural transcripts served when every real backend fails.
// The pipeline keeps moving on a degraded result instead of dying.
var fallbackTranscripts = []entities.TranscriptionResult{
	{
		Text: "Hello fellow farmers! Today I want to share with you how to identify and treat brown spot disease in rice. This is very common during rainy season. Look for these brown oval spots on the leaves - they start small but can spread quickly if not treated. The best time to spray is early morning or evening when it's not too hot.",
		Segments: []entities.TranscriptSegment{
			{Start: 0, End: 5, Text: "Hello fellow farmers! Today I want to share with you"},
			{Start: 5, End: 12, Text: "how to identify and treat brown spot disease in rice."},
			{Start: 12, End: 18, Text: "This is very common during rainy season."},
			{Start: 18, End: 25, Text: "Look for these brown oval spots on the leaves"},
			{Start: 25, End: 30, Text: "The best time to spray is early morning or evening"},
		},
		Insights: []string{
			"Plant disease identification and treatment",
			"Application techniques and timing",
			"Pest management techniques discussed",
		},
	},
	{
		Text: "Good morning everyone! Let me show you how to make organic pesticide using neem oil. This is very effective and safe for our crops. You need 2 tablespoons of neem oil, 1 liter of water, and a few drops of dish soap to help it mix. Spray this in the evening when the sun is not strong.",
		Segments: []entities.TranscriptSegment{
			{Start: 0, End: 6, Text: "Good morning everyone! Let me show you"},
			{Start: 6, End: 12, Text: "how to make organic pesticide using neem oil."},
			{Start: 12, End: 18, Text: "This is very effective and safe for our crops."},
			{Start: 18, End: 25, Text: "You need 2 tablespoons of neem oil, 1 liter of water"},
			{Start: 25, End: 30, Text: "Spray this in the evening when the sun is not strong."},
		},
		Insights: []string{
			"Organic farming methods",
			"Pest management techniques discussed",
			"Application techniques and timing",
		},
	},
	{
		Text: "Hi farmers! Today's topic is about proper fertilizer application for better yield. Many of us make mistakes with timing and quantity. For rice, apply nitrogen fertilizer in three stages - at planting, tillering, and panicle initiation. This will give you much better results than applying all at once.",
		Segments: []entities.TranscriptSegment{
			{Start: 0, End: 5, Text: "Hi farmers! Today's topic is about proper fertilizer application"},
			{Start: 5, End: 12, Text: "for better yield. Many of us make mistakes with timing and quantity."},
			{Start: 12, End: 20, Text: "For rice, apply nitrogen fertilizer in three stages."},
			{Start: 20, End: 30, Text: "This will give you much better results than applying all at once."},
		},
		Insights: []string{
			"Fertilization and nutrition guidance",
			"Harvesting and yield optimization tips",
			"Application techniques and timing",
		},
	},
}

// fallbackResult picks one canned transcript and tags it as degraded with
// the cause that forced the fallback.
func fallbackResult(cause string) *entities.TranscriptionResult {
	picked := fallbackTranscripts[rand.Intn(len(fallbackTranscripts))]

	result := picked // copy, callers may mutate
	result.Segments = append([]entities.TranscriptSegment(nil), picked.Segments...)
	result.Insights = append([]string(nil), picked.Insights...)
	result.Language = "en"
	result.DurationSeconds = entities.DefaultTranscriptDurationSeconds
	result.Source = entities.TranscriptionSourceFallback
	result.Degraded = true
	result.DegradedCause = cause
	return &result
}
