package registry

import "sort"

// PresetEntry is one indicator of a preset bundle.
type PresetEntry struct {
	Type   Type   `json:"type"`
	Period int    `json:"period"` // 0 = use the schema default
	Color  string `json:"color"`
}

// Preset is a named bundle of indicators applied atomically: either every
// entry is added or none is.
type Preset struct {
	Name    string       `json:"name"`
	Entries []PresetEntry `json:"entries"`
}

var presets = map[string]Preset{
	"trend-follow": {
		Name: "trend-follow",
		Entries: []PresetEntry{
			{Type: Supertrend, Period: 10, Color: "#00c853"},
			{Type: EMA, Period: 21, Color: "#ff6d00"},
			{Type: ADX, Period: 14, Color: "#ef6c00"},
		},
	},
	"momentum": {
		Name: "momentum",
		Entries: []PresetEntry{
			{Type: RSI, Period: 14, Color: "#7e57c2"},
			{Type: MACD, Period: 12, Color: "#2962ff"},
			{Type: Stochastic, Period: 14, Color: "#039be5"},
		},
	},
	"volatility": {
		Name: "volatility",
		Entries: []PresetEntry{
			{Type: Bollinger, Period: 20, Color: "#7b1fa2"},
			{Type: ATR, Period: 14, Color: "#6d4c41"},
		},
	},
	"volume-flow": {
		Name: "volume-flow",
		Entries: []PresetEntry{
			{Type: OBV, Color: "#1565c0"},
			{Type: MFI, Period: 14, Color: "#2e7d32"},
			{Type: VWAP, Color: "#ad1457"},
		},
	},
}

// GetPreset returns a named preset.
func GetPreset(name string) (Preset, bool) {
	p, ok := presets[name]
	return p, ok
}

// PresetNames returns all preset names in deterministic order.
func PresetNames() []string {
	out := make([]string, 0, len(presets))
	for name := range presets {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
