// Package registry is the declarative catalog of indicator types: parameter
// schemas, defaults, output-channel shapes and pane placement. It carries no
// behavior - adding a new indicator kind requires both an entry here and a
// compute branch in the engine. That duplication is a deliberate seam: the
// registry stays serializable pure data.
package registry

import "sort"

// Type identifies an indicator kind.
type Type string

const (
	SMA           Type = "sma"
	EMA           Type = "ema"
	WMA           Type = "wma"
	VWMA          Type = "vwma"
	MACD          Type = "macd"
	Bollinger     Type = "bollinger"
	Ichimoku      Type = "ichimoku"
	Supertrend    Type = "supertrend"
	PSAR          Type = "psar"
	ADX           Type = "adx"
	Aroon         Type = "aroon"
	RSI           Type = "rsi"
	Stochastic    Type = "stochastic"
	StochRSI      Type = "stochrsi"
	CCI           Type = "cci"
	ROC           Type = "roc"
	WilliamsR     Type = "williamsr"
	TRIX          Type = "trix"
	Momentum      Type = "momentum"
	ATR           Type = "atr"
	OBV           Type = "obv"
	MFI           Type = "mfi"
	CMF           Type = "cmf"
	ADL           Type = "adl"
	VolumeProfile Type = "volumeprofile"
	VWAP          Type = "vwap"
	VWAPBands     Type = "vwapbands"
	AnchoredVWAP  Type = "anchoredvwap"
)

// Category groups indicator kinds for the UI palette.
type Category string

const (
	CategoryTrend      Category = "trend"
	CategoryMomentum   Category = "momentum"
	CategoryVolatility Category = "volatility"
	CategoryVolume     Category = "volume"
	CategoryProfile    Category = "profile"
)

// ParamKind is the type of a user-facing parameter.
type ParamKind string

const (
	ParamNumber ParamKind = "number"
	ParamColor  ParamKind = "color"
	ParamSelect ParamKind = "select"
)

// Param describes one entry of a kind's parameter schema.
type Param struct {
	Name    string    `json:"name"`
	Kind    ParamKind `json:"kind"`
	Default any       `json:"default"`
	Options []string  `json:"options,omitempty"` // for ParamSelect
}

// ChannelKind is how a rendered channel is drawn.
type ChannelKind string

const (
	ChannelLine      ChannelKind = "line"
	ChannelSignal    ChannelKind = "signal"
	ChannelHistogram ChannelKind = "histogram"
	ChannelBand      ChannelKind = "band"
)

// Output describes one output channel of an indicator kind.
type Output struct {
	Name string      `json:"name"` // primary, signal, histogram, upper, lower
	Kind ChannelKind `json:"kind"`
}

// Pane says where the indicator is plotted.
type Pane string

const (
	PaneOverlay  Pane = "overlay"  // drawn on the price chart
	PaneSeparate Pane = "separate" // drawn in its own pane
)

// Definition is the full catalog entry for one indicator kind.
type Definition struct {
	Type        Type       `json:"type"`
	Category    Category   `json:"category"`
	DisplayName string     `json:"display_name"`
	Params      []Param    `json:"params"`
	Outputs     []Output   `json:"outputs"`
	Pane        Pane       `json:"pane"`
}

// Get returns the definition for a type.
func Get(t Type) (Definition, bool) {
	d, ok := definitions[t]
	return d, ok
}

// All returns every registered type in deterministic (sorted) order.
func All() []Type {
	out := make([]Type, 0, len(definitions))
	for t := range definitions {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// DefaultPeriod returns the schema default for the kind's main numeric
// parameter ("period", or "rows" for volumeprofile), or 0 if it has none.
func DefaultPeriod(t Type) int {
	d, ok := definitions[t]
	if !ok {
		return 0
	}
	for _, p := range d.Params {
		if p.Name == "period" || p.Name == "rows" {
			if n, ok := p.Default.(int); ok {
				return n
			}
		}
	}
	return 0
}

func period(def int) Param {
	return Param{Name: "period", Kind: ParamNumber, Default: def}
}

func color(def string) Param {
	return Param{Name: "color", Kind: ParamColor, Default: def}
}

func style() Param {
	return Param{Name: "style", Kind: ParamSelect, Default: "solid",
		Options: []string{"solid", "dashed", "dotted"}}
}

var primaryLine = []Output{{Name: "primary", Kind: ChannelLine}}

var bandOutputs = []Output{
	{Name: "primary", Kind: ChannelLine},
	{Name: "upper", Kind: ChannelBand},
	{Name: "lower", Kind: ChannelBand},
}

var definitions = map[Type]Definition{
	SMA: {Type: SMA, Category: CategoryTrend, DisplayName: "Simple Moving Average",
		Params: []Param{period(20), color("#2962ff"), style()}, Outputs: primaryLine, Pane: PaneOverlay},
	EMA: {Type: EMA, Category: CategoryTrend, DisplayName: "Exponential Moving Average",
		Params: []Param{period(20), color("#ff6d00"), style()}, Outputs: primaryLine, Pane: PaneOverlay},
	WMA: {Type: WMA, Category: CategoryTrend, DisplayName: "Weighted Moving Average",
		Params: []Param{period(20), color("#6200ea"), style()}, Outputs: primaryLine, Pane: PaneOverlay},
	VWMA: {Type: VWMA, Category: CategoryVolume, DisplayName: "Volume Weighted Moving Average",
		Params: []Param{period(20), color("#00897b"), style()}, Outputs: primaryLine, Pane: PaneOverlay},
	MACD: {Type: MACD, Category: CategoryMomentum, DisplayName: "MACD",
		Params: []Param{period(12), color("#2962ff"), style()},
		Outputs: []Output{
			{Name: "primary", Kind: ChannelLine},
			{Name: "signal", Kind: ChannelSignal},
			{Name: "histogram", Kind: ChannelHistogram},
		}, Pane: PaneSeparate},
	Bollinger: {Type: Bollinger, Category: CategoryVolatility, DisplayName: "Bollinger Bands",
		Params: []Param{period(20), color("#7b1fa2"), style()}, Outputs: bandOutputs, Pane: PaneOverlay},
	Ichimoku: {Type: Ichimoku, Category: CategoryTrend, DisplayName: "Ichimoku Cloud",
		Params: []Param{period(9), color("#d32f2f"), style()},
		Outputs: []Output{
			{Name: "primary", Kind: ChannelLine},   // tenkan
			{Name: "signal", Kind: ChannelSignal},  // kijun
			{Name: "upper", Kind: ChannelBand},     // senkou A
			{Name: "lower", Kind: ChannelBand},     // senkou B
		}, Pane: PaneOverlay},
	Supertrend: {Type: Supertrend, Category: CategoryTrend, DisplayName: "Supertrend",
		Params: []Param{period(10), color("#00c853"), style()},
		Outputs: []Output{
			{Name: "primary", Kind: ChannelLine},
			{Name: "signal", Kind: ChannelSignal}, // direction: +1 / -1
		}, Pane: PaneOverlay},
	PSAR: {Type: PSAR, Category: CategoryTrend, DisplayName: "Parabolic SAR",
		Params: []Param{color("#455a64"), style()}, Outputs: primaryLine, Pane: PaneOverlay},
	ADX: {Type: ADX, Category: CategoryTrend, DisplayName: "ADX / DMI",
		Params: []Param{period(14), color("#ef6c00"), style()},
		Outputs: []Output{
			{Name: "primary", Kind: ChannelLine}, // ADX
			{Name: "upper", Kind: ChannelLine},   // +DI
			{Name: "lower", Kind: ChannelLine},   // -DI
		}, Pane: PaneSeparate},
	Aroon: {Type: Aroon, Category: CategoryTrend, DisplayName: "Aroon",
		Params: []Param{period(25), color("#00838f"), style()},
		Outputs: []Output{
			{Name: "primary", Kind: ChannelLine}, // oscillator
			{Name: "upper", Kind: ChannelLine},   // aroon up
			{Name: "lower", Kind: ChannelLine},   // aroon down
		}, Pane: PaneSeparate},
	RSI: {Type: RSI, Category: CategoryMomentum, DisplayName: "Relative Strength Index",
		Params: []Param{period(14), color("#7e57c2"), style()}, Outputs: primaryLine, Pane: PaneSeparate},
	Stochastic: {Type: Stochastic, Category: CategoryMomentum, DisplayName: "Stochastic",
		Params: []Param{period(14), color("#039be5"), style()},
		Outputs: []Output{
			{Name: "primary", Kind: ChannelLine},  // %K
			{Name: "signal", Kind: ChannelSignal}, // %D
		}, Pane: PaneSeparate},
	StochRSI: {Type: StochRSI, Category: CategoryMomentum, DisplayName: "Stochastic RSI",
		Params: []Param{period(14), color("#c2185b"), style()},
		Outputs: []Output{
			{Name: "primary", Kind: ChannelLine},
			{Name: "signal", Kind: ChannelSignal},
		}, Pane: PaneSeparate},
	CCI: {Type: CCI, Category: CategoryMomentum, DisplayName: "Commodity Channel Index",
		Params: []Param{period(20), color("#5d4037"), style()}, Outputs: primaryLine, Pane: PaneSeparate},
	ROC: {Type: ROC, Category: CategoryMomentum, DisplayName: "Rate of Change",
		Params: []Param{period(12), color("#455a64"), style()}, Outputs: primaryLine, Pane: PaneSeparate},
	WilliamsR: {Type: WilliamsR, Category: CategoryMomentum, DisplayName: "Williams %R",
		Params: []Param{period(14), color("#8e24aa"), style()}, Outputs: primaryLine, Pane: PaneSeparate},
	TRIX: {Type: TRIX, Category: CategoryMomentum, DisplayName: "TRIX",
		Params: []Param{period(15), color("#00acc1"), style()}, Outputs: primaryLine, Pane: PaneSeparate},
	Momentum: {Type: Momentum, Category: CategoryMomentum, DisplayName: "Momentum",
		Params: []Param{period(10), color("#f4511e"), style()}, Outputs: primaryLine, Pane: PaneSeparate},
	ATR: {Type: ATR, Category: CategoryVolatility, DisplayName: "Average True Range",
		Params: []Param{period(14), color("#6d4c41"), style()}, Outputs: primaryLine, Pane: PaneSeparate},
	OBV: {Type: OBV, Category: CategoryVolume, DisplayName: "On-Balance Volume",
		Params: []Param{color("#1565c0"), style()}, Outputs: primaryLine, Pane: PaneSeparate},
	MFI: {Type: MFI, Category: CategoryVolume, DisplayName: "Money Flow Index",
		Params: []Param{period(14), color("#2e7d32"), style()}, Outputs: primaryLine, Pane: PaneSeparate},
	CMF: {Type: CMF, Category: CategoryVolume, DisplayName: "Chaikin Money Flow",
		Params: []Param{period(20), color("#9e9d24"), style()}, Outputs: primaryLine, Pane: PaneSeparate},
	ADL: {Type: ADL, Category: CategoryVolume, DisplayName: "Accumulation/Distribution",
		Params: []Param{color("#00695c"), style()}, Outputs: primaryLine, Pane: PaneSeparate},
	VolumeProfile: {Type: VolumeProfile, Category: CategoryVolume, DisplayName: "Volume Profile",
		Params: []Param{{Name: "rows", Kind: ParamNumber, Default: 24}, color("#78909c"), style()},
		Outputs: []Output{
			{Name: "primary", Kind: ChannelLine}, // POC
			{Name: "upper", Kind: ChannelBand},   // value area high
			{Name: "lower", Kind: ChannelBand},   // value area low
		}, Pane: PaneOverlay},
	VWAP: {Type: VWAP, Category: CategoryProfile, DisplayName: "VWAP",
		Params: []Param{color("#ad1457"), style()}, Outputs: primaryLine, Pane: PaneOverlay},
	VWAPBands: {Type: VWAPBands, Category: CategoryProfile, DisplayName: "VWAP Bands",
		Params: []Param{color("#ad1457"), style()}, Outputs: bandOutputs, Pane: PaneOverlay},
	AnchoredVWAP: {Type: AnchoredVWAP, Category: CategoryProfile, DisplayName: "Anchored VWAP",
		Params: []Param{{Name: "anchor", Kind: ParamNumber, Default: 0}, color("#283593"), style()},
		Outputs: primaryLine, Pane: PaneOverlay},
}
