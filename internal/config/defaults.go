package config

import (
	_ "embed"
)

//go:embed defaults/drops.yaml
var defaultRulesYAML []byte

var (
	defaultWinMessages = []string{
		"You're a water hero!",
		"Amazing — you're helping bring clean water!",
		"Champion of drops!",
	}
	defaultLoseMessages = []string{
		"Almost there — try again!",
		"Keep practicing — you can do it!",
		"Don't give up — go for it again!",
	}
)

// DefaultClassicRules returns the hardcoded classic rule set: difficulty
// choice, three strikes, first to 50.
func DefaultClassicRules() RuleSet {
	return RuleSet{
		Title: "Water Drops",
		Difficulties: []Difficulty{
			{Name: "easy", Timing: Timing{FallSeconds: 5, SpawnMS: 1100}},
			{Name: "moderate", Timing: Timing{FallSeconds: 3.2, SpawnMS: 900}},
			{Name: "hard", Timing: Timing{FallSeconds: 1.8, SpawnMS: 600}},
		},
		DefaultDifficulty: "moderate",
		WinTarget:         50,
		WinThreshold:      50,
		MaxStrikes:        3,
		PlayAgain:         PlayAgainPrompt,
		Drop:              DropConfig{Width: 2, Height: 1, MinScale: 1, MaxScale: 1},
		Slider:            SliderConfig{Width: 8, Height: 1},
		Effects:           EffectsConfig{PollMS: 80, SplashMS: 300, RemovalFallbackMS: 400},
		Messages: MessagesConfig{
			Win:       append([]string(nil), defaultWinMessages...),
			Lose:      append([]string(nil), defaultLoseMessages...),
			StrikeOut: "GAME OVER",
		},
	}
}

// DefaultTimedRules returns the hardcoded timed rule set: thirty seconds,
// fixed rates, 20 catches for a win message.
func DefaultTimedRules() RuleSet {
	return RuleSet{
		Title:            "Water Drops",
		Timing:           Timing{FallSeconds: 4, SpawnMS: 1000},
		WinThreshold:     20,
		CountdownSeconds: 30,
		PlayAgain:        PlayAgainRestart,
		Drop:             DropConfig{Width: 2, Height: 1, MinScale: 0.5, MaxScale: 1.3},
		Slider:           SliderConfig{Width: 8, Height: 1},
		Effects:          EffectsConfig{PollMS: 80, SplashMS: 300, RemovalFallbackMS: 400},
		Messages: MessagesConfig{
			Win:  append([]string(nil), defaultWinMessages...),
			Lose: append([]string(nil), defaultLoseMessages...),
		},
	}
}

// DefaultRules returns both hardcoded rule sets.
func DefaultRules() RulesFile {
	return RulesFile{
		Classic: DefaultClassicRules(),
		Timed:   DefaultTimedRules(),
	}
}

// DefaultYAML returns the embedded default rules document.
func DefaultYAML() []byte {
	return defaultRulesYAML
}
