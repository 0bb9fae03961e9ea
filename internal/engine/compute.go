package engine

import (
	"github.com/aaravjj2/tradingview-sim-sub000/internal/indicator"
	"github.com/aaravjj2/tradingview-sim-sub000/internal/model"
	"github.com/aaravjj2/tradingview-sim-sub000/internal/registry"
)

// Params are the user-tunable parameters of an indicator instance.
// Period doubles as the row count for volumeprofile and the anchor index for
// anchoredvwap - the public surface is (type, period, color) for every kind.
type Params struct {
	Period int    `json:"period"`
	Color  string `json:"color"`
	Style  string `json:"style"`
}

// Compute dispatches one indicator instance to its calculator and shapes the
// result into channels. The switch is exhaustive over every registry type;
// the registry and this dispatch must be extended together when a kind is
// added. An unregistered type cannot reach here - AddIndicator validates
// against the registry first - so the default branch returns warmup-only
// channels rather than panicking.
func Compute(t registry.Type, cs []model.Candle, p Params) model.Channels {
	switch t {
	case registry.SMA:
		return model.Channels{Primary: indicator.SMASeries(cs, p.Period)}
	case registry.EMA:
		return model.Channels{Primary: indicator.EMASeries(cs, p.Period)}
	case registry.WMA:
		return model.Channels{Primary: indicator.WMASeries(cs, p.Period)}
	case registry.VWMA:
		return model.Channels{Primary: indicator.VWMASeries(cs, p.Period)}
	case registry.MACD:
		macd, signal, hist := indicator.MACDSeries(cs, p.Period)
		return model.Channels{Primary: macd, Signal: signal, Histogram: hist}
	case registry.Bollinger:
		middle, upper, lower := indicator.BollingerSeries(cs, p.Period)
		return model.Channels{Primary: middle, Upper: upper, Lower: lower}
	case registry.Ichimoku:
		tenkan, kijun, senkouA, senkouB := indicator.IchimokuSeries(cs, p.Period)
		return model.Channels{Primary: tenkan, Signal: kijun, Upper: senkouA, Lower: senkouB}
	case registry.Supertrend:
		line, direction := indicator.SupertrendSeries(cs, p.Period)
		return model.Channels{Primary: line, Signal: direction}
	case registry.PSAR:
		return model.Channels{Primary: indicator.PSARSeries(cs)}
	case registry.ADX:
		adx, plusDI, minusDI := indicator.ADXSeries(cs, p.Period)
		return model.Channels{Primary: adx, Upper: plusDI, Lower: minusDI}
	case registry.Aroon:
		osc, up, down := indicator.AroonSeries(cs, p.Period)
		return model.Channels{Primary: osc, Upper: up, Lower: down}
	case registry.RSI:
		return model.Channels{Primary: indicator.RSISeries(cs, p.Period)}
	case registry.Stochastic:
		k, d := indicator.StochasticSeries(cs, p.Period)
		return model.Channels{Primary: k, Signal: d}
	case registry.StochRSI:
		k, d := indicator.StochRSISeries(cs, p.Period)
		return model.Channels{Primary: k, Signal: d}
	case registry.CCI:
		return model.Channels{Primary: indicator.CCISeries(cs, p.Period)}
	case registry.ROC:
		return model.Channels{Primary: indicator.ROCSeries(cs, p.Period)}
	case registry.WilliamsR:
		return model.Channels{Primary: indicator.WilliamsRSeries(cs, p.Period)}
	case registry.TRIX:
		return model.Channels{Primary: indicator.TRIXSeries(cs, p.Period)}
	case registry.Momentum:
		return model.Channels{Primary: indicator.MomentumSeries(cs, p.Period)}
	case registry.ATR:
		return model.Channels{Primary: indicator.ATRSeries(cs, p.Period)}
	case registry.OBV:
		return model.Channels{Primary: indicator.OBVSeries(cs)}
	case registry.MFI:
		return model.Channels{Primary: indicator.MFISeries(cs, p.Period)}
	case registry.CMF:
		return model.Channels{Primary: indicator.CMFSeries(cs, p.Period)}
	case registry.ADL:
		return model.Channels{Primary: indicator.ADLSeries(cs)}
	case registry.VolumeProfile:
		poc, vah, val := indicator.VolumeProfileSeries(cs, p.Period)
		return model.Channels{Primary: poc, Upper: vah, Lower: val}
	case registry.VWAP:
		return model.Channels{Primary: indicator.VWAPSeries(cs)}
	case registry.VWAPBands:
		vwap, upper, lower := indicator.VWAPBandsSeries(cs)
		return model.Channels{Primary: vwap, Upper: upper, Lower: lower}
	case registry.AnchoredVWAP:
		return model.Channels{Primary: indicator.AnchoredVWAPSeries(cs, p.Period)}
	default:
		return model.Channels{Primary: model.NewWarmupSeries(len(cs))}
	}
}
