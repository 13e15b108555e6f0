package speech

import "github.com/agrireel/content-remix/internal/domain/entities"

// AvailableVoices is the curated voice catalog. Provider ids point at
// ElevenLabs voices vetted for each market.
var AvailableVoices = []entities.VoiceOption{
	{
		ID:          "kael-filipino",
		Name:        "Kael",
		Language:    "Filipino",
		Accent:      "Provincial",
		Gender:      "male",
		ProviderID:  "53HEM9cpXMMsKDVvXwHV",
		CulturalFit: "Youthful tone, male voice with smooth charming tone",
	},
	{
		ID:          "ninh-vietnamese",
		Name:        "Ninh Don",
		Language:    "Vietnamese",
		Accent:      "Northern",
		Gender:      "male",
		ProviderID:  "aN7cv9yXNrfIR87bDmyD",
		CulturalFit: "Funny tone, male voice for entertainment and media",
	},
	{
		ID:          "athira-malay",
		Name:        "Athira",
		Language:    "Malaysian",
		Accent:      "Penang",
		Gender:      "female",
		ProviderID:  "BeIxObt4dYBRJLYoe1hU",
		CulturalFit: "Northern Malaysian accent, warm voice easy to connect",
	},
}

// regionVoiceIDs maps each market to its single curated voice
var regionVoiceIDs = map[entities.Region]string{
	entities.RegionPhilippines: "kael-filipino",
	entities.RegionVietnam:     "ninh-vietnamese",
	entities.RegionMalaysia:    "athira-malay",
}

// regionSettings tunes synthesis per market: more expressive for Taglish,
// more stable for tonal Vietnamese.
var regionSettings = map[entities.Region]entities.SpeechOptions{
	entities.RegionPhilippines: {Stability: 0.7, SimilarityBoost: 0.8, Style: 0.3},
	entities.RegionVietnam:     {Stability: 0.8, SimilarityBoost: 0.75, Style: 0.1},
	entities.RegionMalaysia:    {Stability: 0.7, SimilarityBoost: 0.8, Style: 0.25},
}

// VoiceByID looks up a catalog voice
func VoiceByID(id string) (entities.VoiceOption, bool) {
	for _, v := range AvailableVoices {
		if v.ID == id {
			return v, true
		}
	}
	return entities.VoiceOption{}, false
}

// VoiceForRegion returns the curated voice for a region, falling back to
// the first catalog entry for unknown regions.
func VoiceForRegion(region entities.Region) entities.VoiceOption {
	if id, ok := regionVoiceIDs[region]; ok {
		if v, found := VoiceByID(id); found {
			return v
		}
	}
	return AvailableVoices[0]
}

// OptionsForRegion returns tuned synthesis settings for a region
func OptionsForRegion(region entities.Region) entities.SpeechOptions {
	opts, ok := regionSettings[region]
	if !ok {
		opts = entities.SpeechOptions{Stability: 0.5, SimilarityBoost: 0.75}
	}
	opts.VoiceID = VoiceForRegion(region).ID
	opts.UseSpeakerBoost = true
	return opts
}
