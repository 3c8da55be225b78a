package wisdom

// The interpretation rule set is expressed as literal tables rather than
// nested conditionals so each family stays auditable and testable on its
// own. A family reads a few snapshot values, then evaluates its rules in
// order under the classified regime; the first matching rule wins. The
// rationale text is the canonical wording used verbatim (with value
// substitution) in the reasoning trace.

type input struct {
	alias    string
	key      string
	part     string // set when the key holds a tuple
	fallback float64
}

type tableRule struct {
	regimes  []Regime // nil matches any regime
	when     func(v map[string]float64) bool
	dir      SignalDirection
	strength float64
	text     string
	args     []string // input aliases substituted into text
}

type family struct {
	name   string
	tier   Tier
	inputs []input
	rules  []tableRule
}

func in(regimes ...Regime) []Regime { return regimes }

// families is the full interpretation table set, grouped by tier.
var families = []family{
	// ------------------------------------------------------------------
	// TREND tier
	// ------------------------------------------------------------------
	{
		name: "ma_alignment",
		tier: TierTrend,
		inputs: []input{
			{alias: "fast", key: "SMA_20"},
			{alias: "mid", key: "SMA_50"},
			{alias: "slow", key: "SMA_200"},
		},
		rules: []tableRule{
			{
				when:     func(v map[string]float64) bool { return v["fast"] > v["mid"] && v["mid"] > v["slow"] },
				dir:      Bullish,
				strength: 0.9,
				text:     "moving averages in full bullish alignment (SMA20=%.6f > SMA50=%.6f > SMA200=%.6f)",
				args:     []string{"fast", "mid", "slow"},
			},
			{
				when:     func(v map[string]float64) bool { return v["fast"] < v["mid"] && v["mid"] < v["slow"] },
				dir:      Bearish,
				strength: 0.9,
				text:     "moving averages in full bearish alignment (SMA20=%.6f < SMA50=%.6f < SMA200=%.6f)",
				args:     []string{"fast", "mid", "slow"},
			},
			{
				when:     func(v map[string]float64) bool { return v["fast"] > v["mid"] },
				dir:      Bullish,
				strength: 0.4,
				text:     "short-term averages rising (SMA20=%.6f > SMA50=%.6f), long-term not yet aligned",
				args:     []string{"fast", "mid"},
			},
			{
				when:     func(v map[string]float64) bool { return v["fast"] < v["mid"] },
				dir:      Bearish,
				strength: 0.4,
				text:     "short-term averages falling (SMA20=%.6f < SMA50=%.6f), long-term not yet aligned",
				args:     []string{"fast", "mid"},
			},
		},
	},
	{
		name: "ema_cross",
		tier: TierTrend,
		inputs: []input{
			{alias: "fast", key: "EMA_12"},
			{alias: "slow", key: "EMA_26"},
		},
		rules: []tableRule{
			{
				when:     func(v map[string]float64) bool { return v["fast"] > v["slow"] },
				dir:      Bullish,
				strength: 0.6,
				text:     "EMA12=%.6f above EMA26=%.6f",
				args:     []string{"fast", "slow"},
			},
			{
				when:     func(v map[string]float64) bool { return v["fast"] < v["slow"] },
				dir:      Bearish,
				strength: 0.6,
				text:     "EMA12=%.6f below EMA26=%.6f",
				args:     []string{"fast", "slow"},
			},
		},
	},
	{
		name: "mama",
		tier: TierTrend,
		inputs: []input{
			{alias: "mama", key: "MAMA", part: "mama"},
			{alias: "fama", key: "MAMA", part: "fama"},
		},
		rules: []tableRule{
			{
				when:     func(v map[string]float64) bool { return v["mama"] > v["fama"] && v["fama"] > 0 },
				dir:      Bullish,
				strength: 0.5,
				text:     "adaptive MA above its following line (MAMA=%.6f > FAMA=%.6f)",
				args:     []string{"mama", "fama"},
			},
			{
				when:     func(v map[string]float64) bool { return v["mama"] < v["fama"] && v["mama"] > 0 },
				dir:      Bearish,
				strength: 0.5,
				text:     "adaptive MA below its following line (MAMA=%.6f < FAMA=%.6f)",
				args:     []string{"mama", "fama"},
			},
		},
	},
	{
		name: "sar",
		tier: TierTrend,
		inputs: []input{
			{alias: "sar", key: "SAR"},
			{alias: "mid", key: "BBANDS", part: "middle"},
		},
		rules: []tableRule{
			{
				when:     func(v map[string]float64) bool { return v["sar"] > 0 && v["sar"] < v["mid"] },
				dir:      Bullish,
				strength: 0.5,
				text:     "parabolic SAR %.6f below the band midline %.6f, stops trailing under price",
				args:     []string{"sar", "mid"},
			},
			{
				when:     func(v map[string]float64) bool { return v["sar"] > v["mid"] },
				dir:      Bearish,
				strength: 0.5,
				text:     "parabolic SAR %.6f above the band midline %.6f, stops trailing over price",
				args:     []string{"sar", "mid"},
			},
		},
	},
	{
		name: "linreg_slope",
		tier: TierTrend,
		inputs: []input{
			{alias: "slope", key: "LINEARREG_SLOPE_14"},
		},
		rules: []tableRule{
			{
				when:     func(v map[string]float64) bool { return v["slope"] > 0 },
				dir:      Bullish,
				strength: 0.4,
				text:     "linear regression slope positive (%.6f)",
				args:     []string{"slope"},
			},
			{
				when:     func(v map[string]float64) bool { return v["slope"] < 0 },
				dir:      Bearish,
				strength: 0.4,
				text:     "linear regression slope negative (%.6f)",
				args:     []string{"slope"},
			},
		},
	},
	{
		name: "ht_trendmode",
		tier: TierTrend,
		inputs: []input{
			{alias: "mode", key: "HT_TRENDMODE"},
			{alias: "sine", key: "HT_SINE", part: "sine"},
			{alias: "lead", key: "HT_SINE", part: "leadsine"},
		},
		rules: []tableRule{
			{
				regimes:  in(TrendingUp),
				when:     func(v map[string]float64) bool { return v["mode"] >= 1 },
				dir:      Bullish,
				strength: 0.6,
				text:     "Hilbert transform in trend mode, confirming the uptrend",
			},
			{
				regimes:  in(TrendingDown),
				when:     func(v map[string]float64) bool { return v["mode"] >= 1 },
				dir:      Bearish,
				strength: 0.6,
				text:     "Hilbert transform in trend mode, confirming the downtrend",
			},
			{
				when:     func(v map[string]float64) bool { return v["mode"] < 1 && v["sine"] < v["lead"] && v["sine"] < 0 },
				dir:      Bullish,
				strength: 0.4,
				text:     "cycle mode approaching bottom (sine=%.2f below lead=%.2f), reversal up forming",
				args:     []string{"sine", "lead"},
			},
			{
				when:     func(v map[string]float64) bool { return v["mode"] < 1 && v["sine"] > v["lead"] && v["sine"] > 0 },
				dir:      Bearish,
				strength: 0.4,
				text:     "cycle mode approaching top (sine=%.2f above lead=%.2f), reversal down forming",
				args:     []string{"sine", "lead"},
			},
		},
	},

	// ------------------------------------------------------------------
	// MOMENTUM tier
	// ------------------------------------------------------------------
	{
		name: "rsi",
		tier: TierMomentum,
		inputs: []input{
			{alias: "rsi", key: "RSI_14", fallback: 50},
		},
		rules: []tableRule{
			{
				regimes:  in(TrendingUp),
				when:     func(v map[string]float64) bool { return v["rsi"] < 30 },
				dir:      Bullish,
				strength: 0.8,
				text:     "RSI=%.1f: pullback in uptrend, buying opportunity",
				args:     []string{"rsi"},
			},
			{
				regimes:  in(TrendingUp),
				when:     func(v map[string]float64) bool { return v["rsi"] < 50 },
				dir:      Bullish,
				strength: 0.5,
				text:     "RSI=%.1f: shallow pullback, uptrend intact",
				args:     []string{"rsi"},
			},
			{
				regimes:  in(TrendingUp),
				when:     func(v map[string]float64) bool { return v["rsi"] <= 70 },
				dir:      Bullish,
				strength: 0.6,
				text:     "RSI=%.1f: healthy uptrend momentum",
				args:     []string{"rsi"},
			},
			{
				regimes:  in(TrendingUp),
				dir:      Bullish,
				strength: 0.4,
				text:     "RSI=%.1f: strong momentum, trend may stay overbought",
				args:     []string{"rsi"},
			},
			{
				regimes:  in(TrendingDown),
				when:     func(v map[string]float64) bool { return v["rsi"] < 30 },
				dir:      Bearish,
				strength: 0.8,
				text:     "RSI=%.1f: trend strength, no buy",
				args:     []string{"rsi"},
			},
			{
				regimes:  in(TrendingDown),
				when:     func(v map[string]float64) bool { return v["rsi"] < 50 },
				dir:      Bearish,
				strength: 0.6,
				text:     "RSI=%.1f: healthy downtrend momentum",
				args:     []string{"rsi"},
			},
			{
				regimes:  in(TrendingDown),
				when:     func(v map[string]float64) bool { return v["rsi"] <= 70 },
				dir:      Bearish,
				strength: 0.5,
				text:     "RSI=%.1f: momentum weakening, watch for bounce",
				args:     []string{"rsi"},
			},
			{
				regimes:  in(TrendingDown),
				dir:      Bearish,
				strength: 0.8,
				text:     "RSI=%.1f: rally in downtrend, shorting opportunity",
				args:     []string{"rsi"},
			},
			{
				regimes:  in(Ranging),
				when:     func(v map[string]float64) bool { return v["rsi"] < 30 },
				dir:      Bullish,
				strength: 0.8,
				text:     "RSI=%.1f: oversold at range bottom, potential long",
				args:     []string{"rsi"},
			},
			{
				regimes:  in(Ranging),
				when:     func(v map[string]float64) bool { return v["rsi"] > 70 },
				dir:      Bearish,
				strength: 0.8,
				text:     "RSI=%.1f: overbought at range top, sell",
				args:     []string{"rsi"},
			},
			{
				regimes:  in(Ranging),
				dir:      Neutral,
				strength: 0,
				text:     "RSI=%.1f: mid-range, wait for extremes",
				args:     []string{"rsi"},
			},
		},
	},
	{
		name: "macd",
		tier: TierMomentum,
		inputs: []input{
			{alias: "line", key: "MACD", part: "line"},
			{alias: "signal", key: "MACD", part: "signal"},
			{alias: "hist", key: "MACD", part: "hist"},
		},
		rules: []tableRule{
			{
				when:     func(v map[string]float64) bool { return v["line"] > v["signal"] && v["hist"] > 0 },
				dir:      Bullish,
				strength: 0.7,
				text:     "MACD above signal with positive histogram (%.6f)",
				args:     []string{"hist"},
			},
			{
				when:     func(v map[string]float64) bool { return v["line"] < v["signal"] && v["hist"] < 0 },
				dir:      Bearish,
				strength: 0.7,
				text:     "MACD below signal with negative histogram (%.6f)",
				args:     []string{"hist"},
			},
		},
	},
	{
		name: "adx_di",
		tier: TierMomentum,
		inputs: []input{
			{alias: "adx", key: "ADX_14", fallback: 20},
			{alias: "plus", key: "PLUS_DI_14"},
			{alias: "minus", key: "MINUS_DI_14"},
		},
		rules: []tableRule{
			{
				when:     func(v map[string]float64) bool { return v["adx"] >= 50 && v["plus"] > v["minus"] },
				dir:      Bullish,
				strength: 0.9,
				text:     "ADX=%.1f very strong, +DI=%.1f leading -DI=%.1f",
				args:     []string{"adx", "plus", "minus"},
			},
			{
				when:     func(v map[string]float64) bool { return v["adx"] >= 50 && v["minus"] > v["plus"] },
				dir:      Bearish,
				strength: 0.9,
				text:     "ADX=%.1f very strong, -DI=%.1f leading +DI=%.1f",
				args:     []string{"adx", "minus", "plus"},
			},
			{
				when:     func(v map[string]float64) bool { return v["adx"] >= 25 && v["plus"] > v["minus"] },
				dir:      Bullish,
				strength: 0.7,
				text:     "ADX=%.1f trending, +DI=%.1f leading -DI=%.1f",
				args:     []string{"adx", "plus", "minus"},
			},
			{
				when:     func(v map[string]float64) bool { return v["adx"] >= 25 && v["minus"] > v["plus"] },
				dir:      Bearish,
				strength: 0.7,
				text:     "ADX=%.1f trending, -DI=%.1f leading +DI=%.1f",
				args:     []string{"adx", "minus", "plus"},
			},
			{
				when:     func(v map[string]float64) bool { return v["adx"] >= 20 && v["plus"] > v["minus"] },
				dir:      Bullish,
				strength: 0.3,
				text:     "ADX=%.1f emerging trend, +DI=%.1f over -DI=%.1f",
				args:     []string{"adx", "plus", "minus"},
			},
			{
				when:     func(v map[string]float64) bool { return v["adx"] >= 20 && v["minus"] > v["plus"] },
				dir:      Bearish,
				strength: 0.3,
				text:     "ADX=%.1f emerging trend, -DI=%.1f over +DI=%.1f",
				args:     []string{"adx", "minus", "plus"},
			},
			{
				dir:  Neutral,
				text: "ADX=%.1f: no trend strength, directional readings unreliable",
				args: []string{"adx"},
			},
		},
	},
	{
		name: "stochastic",
		tier: TierMomentum,
		inputs: []input{
			{alias: "k", key: "STOCH", part: "slowk", fallback: 50},
			{alias: "d", key: "STOCH", part: "slowd", fallback: 50},
		},
		rules: []tableRule{
			{
				regimes:  in(TrendingUp),
				when:     func(v map[string]float64) bool { return v["k"] < 20 },
				dir:      Bullish,
				strength: 0.8,
				text:     "stochastic %%K=%.1f oversold in uptrend, excellent buying opportunity",
				args:     []string{"k"},
			},
			{
				regimes:  in(TrendingUp),
				when:     func(v map[string]float64) bool { return v["k"] > 80 },
				dir:      Bullish,
				strength: 0.3,
				text:     "stochastic %%K=%.1f overbought but trend is up, may stay overbought",
				args:     []string{"k"},
			},
			{
				regimes:  in(TrendingDown),
				when:     func(v map[string]float64) bool { return v["k"] > 80 },
				dir:      Bearish,
				strength: 0.8,
				text:     "stochastic %%K=%.1f overbought in downtrend, excellent shorting opportunity",
				args:     []string{"k"},
			},
			{
				regimes:  in(TrendingDown),
				when:     func(v map[string]float64) bool { return v["k"] < 20 },
				dir:      Bearish,
				strength: 0.3,
				text:     "stochastic %%K=%.1f oversold but trend is down, may stay oversold",
				args:     []string{"k"},
			},
			{
				regimes:  in(Ranging),
				when:     func(v map[string]float64) bool { return v["k"] < 20 && v["k"] > v["d"] },
				dir:      Bullish,
				strength: 0.7,
				text:     "stochastic oversold with bullish crossover (%%K=%.1f over %%D=%.1f)",
				args:     []string{"k", "d"},
			},
			{
				regimes:  in(Ranging),
				when:     func(v map[string]float64) bool { return v["k"] > 80 && v["k"] < v["d"] },
				dir:      Bearish,
				strength: 0.7,
				text:     "stochastic overbought with bearish crossover (%%K=%.1f under %%D=%.1f)",
				args:     []string{"k", "d"},
			},
			{
				when:     func(v map[string]float64) bool { return v["k"] > 50 },
				dir:      Bullish,
				strength: 0.3,
				text:     "stochastic %%K=%.1f in upper half",
				args:     []string{"k"},
			},
			{
				when:     func(v map[string]float64) bool { return v["k"] < 50 },
				dir:      Bearish,
				strength: 0.3,
				text:     "stochastic %%K=%.1f in lower half",
				args:     []string{"k"},
			},
		},
	},
	{
		name: "aroon",
		tier: TierMomentum,
		inputs: []input{
			{alias: "up", key: "AROON", part: "up"},
			{alias: "down", key: "AROON", part: "down"},
			{alias: "osc", key: "AROONOSC"},
		},
		rules: []tableRule{
			{
				when:     func(v map[string]float64) bool { return v["up"] > 70 && v["down"] < 30 },
				dir:      Bullish,
				strength: 0.8,
				text:     "AROON up=%.0f dominant over down=%.0f, fresh highs driving",
				args:     []string{"up", "down"},
			},
			{
				when:     func(v map[string]float64) bool { return v["down"] > 70 && v["up"] < 30 },
				dir:      Bearish,
				strength: 0.8,
				text:     "AROON down=%.0f dominant over up=%.0f, fresh lows driving",
				args:     []string{"down", "up"},
			},
			{
				when:     func(v map[string]float64) bool { return v["osc"] > 0 },
				dir:      Bullish,
				strength: 0.4,
				text:     "AROON oscillator positive (%.0f)",
				args:     []string{"osc"},
			},
			{
				when:     func(v map[string]float64) bool { return v["osc"] < 0 },
				dir:      Bearish,
				strength: 0.4,
				text:     "AROON oscillator negative (%.0f)",
				args:     []string{"osc"},
			},
		},
	},
	{
		name: "cci",
		tier: TierMomentum,
		inputs: []input{
			{alias: "cci", key: "CCI_14"},
		},
		rules: []tableRule{
			{
				regimes:  in(Ranging),
				when:     func(v map[string]float64) bool { return v["cci"] > 100 },
				dir:      Bearish,
				strength: 0.7,
				text:     "CCI=%.1f stretched above the channel in a range, fade the move",
				args:     []string{"cci"},
			},
			{
				regimes:  in(Ranging),
				when:     func(v map[string]float64) bool { return v["cci"] < -100 },
				dir:      Bullish,
				strength: 0.7,
				text:     "CCI=%.1f stretched below the channel in a range, fade the move",
				args:     []string{"cci"},
			},
			{
				when:     func(v map[string]float64) bool { return v["cci"] > 0 },
				dir:      Bullish,
				strength: 0.4,
				text:     "CCI=%.1f positive",
				args:     []string{"cci"},
			},
			{
				when:     func(v map[string]float64) bool { return v["cci"] < 0 },
				dir:      Bearish,
				strength: 0.4,
				text:     "CCI=%.1f negative",
				args:     []string{"cci"},
			},
		},
	},
	{
		name: "cmo",
		tier: TierMomentum,
		inputs: []input{
			{alias: "cmo", key: "CMO_14"},
		},
		rules: []tableRule{
			{
				regimes:  in(Ranging),
				when:     func(v map[string]float64) bool { return v["cmo"] > 50 },
				dir:      Bearish,
				strength: 0.6,
				text:     "CMO=%.1f overbought in range",
				args:     []string{"cmo"},
			},
			{
				regimes:  in(Ranging),
				when:     func(v map[string]float64) bool { return v["cmo"] < -50 },
				dir:      Bullish,
				strength: 0.6,
				text:     "CMO=%.1f oversold in range",
				args:     []string{"cmo"},
			},
			{
				when:     func(v map[string]float64) bool { return v["cmo"] > 0 },
				dir:      Bullish,
				strength: 0.3,
				text:     "CMO=%.1f positive",
				args:     []string{"cmo"},
			},
			{
				when:     func(v map[string]float64) bool { return v["cmo"] < 0 },
				dir:      Bearish,
				strength: 0.3,
				text:     "CMO=%.1f negative",
				args:     []string{"cmo"},
			},
		},
	},
	{
		name: "willr",
		tier: TierMomentum,
		inputs: []input{
			{alias: "willr", key: "WILLR_14", fallback: -50},
		},
		rules: []tableRule{
			{
				regimes:  in(Ranging),
				when:     func(v map[string]float64) bool { return v["willr"] > -20 },
				dir:      Bearish,
				strength: 0.6,
				text:     "Williams %%R=%.1f overbought in range",
				args:     []string{"willr"},
			},
			{
				regimes:  in(Ranging),
				when:     func(v map[string]float64) bool { return v["willr"] < -80 },
				dir:      Bullish,
				strength: 0.6,
				text:     "Williams %%R=%.1f oversold in range",
				args:     []string{"willr"},
			},
			{
				when:     func(v map[string]float64) bool { return v["willr"] > -50 },
				dir:      Bullish,
				strength: 0.3,
				text:     "Williams %%R=%.1f in upper half",
				args:     []string{"willr"},
			},
			{
				when:     func(v map[string]float64) bool { return v["willr"] < -50 },
				dir:      Bearish,
				strength: 0.3,
				text:     "Williams %%R=%.1f in lower half",
				args:     []string{"willr"},
			},
		},
	},
	{
		name: "ultosc",
		tier: TierMomentum,
		inputs: []input{
			{alias: "ultosc", key: "ULTOSC", fallback: 50},
		},
		rules: []tableRule{
			{
				regimes:  in(Ranging),
				when:     func(v map[string]float64) bool { return v["ultosc"] > 70 },
				dir:      Bearish,
				strength: 0.6,
				text:     "ultimate oscillator %.1f overbought in range",
				args:     []string{"ultosc"},
			},
			{
				regimes:  in(Ranging),
				when:     func(v map[string]float64) bool { return v["ultosc"] < 30 },
				dir:      Bullish,
				strength: 0.6,
				text:     "ultimate oscillator %.1f oversold in range",
				args:     []string{"ultosc"},
			},
			{
				when:     func(v map[string]float64) bool { return v["ultosc"] > 50 },
				dir:      Bullish,
				strength: 0.3,
				text:     "ultimate oscillator %.1f above midline",
				args:     []string{"ultosc"},
			},
			{
				when:     func(v map[string]float64) bool { return v["ultosc"] < 50 },
				dir:      Bearish,
				strength: 0.3,
				text:     "ultimate oscillator %.1f below midline",
				args:     []string{"ultosc"},
			},
		},
	},
	{
		name: "mfi",
		tier: TierMomentum,
		inputs: []input{
			{alias: "mfi", key: "MFI_14", fallback: 50},
		},
		rules: []tableRule{
			{
				regimes:  in(Ranging),
				when:     func(v map[string]float64) bool { return v["mfi"] > 80 },
				dir:      Bearish,
				strength: 0.6,
				text:     "MFI=%.1f overbought money flow in range",
				args:     []string{"mfi"},
			},
			{
				regimes:  in(Ranging),
				when:     func(v map[string]float64) bool { return v["mfi"] < 20 },
				dir:      Bullish,
				strength: 0.6,
				text:     "MFI=%.1f oversold money flow in range",
				args:     []string{"mfi"},
			},
			{
				when:     func(v map[string]float64) bool { return v["mfi"] > 50 },
				dir:      Bullish,
				strength: 0.3,
				text:     "MFI=%.1f above midline, money flowing in",
				args:     []string{"mfi"},
			},
			{
				when:     func(v map[string]float64) bool { return v["mfi"] < 50 },
				dir:      Bearish,
				strength: 0.3,
				text:     "MFI=%.1f below midline, money flowing out",
				args:     []string{"mfi"},
			},
		},
	},
	{
		name: "rate_of_change",
		tier: TierMomentum,
		inputs: []input{
			{alias: "roc", key: "ROC_10"},
			{alias: "mom", key: "MOM_10"},
			{alias: "trix", key: "TRIX_30"},
		},
		rules: []tableRule{
			{
				when: func(v map[string]float64) bool {
					return v["roc"] > 0 && v["mom"] > 0 && v["trix"] > 0
				},
				dir:      Bullish,
				strength: 0.6,
				text:     "rate-of-change family all positive (ROC=%.2f, MOM=%.4f, TRIX=%.4f)",
				args:     []string{"roc", "mom", "trix"},
			},
			{
				when: func(v map[string]float64) bool {
					return v["roc"] < 0 && v["mom"] < 0 && v["trix"] < 0
				},
				dir:      Bearish,
				strength: 0.6,
				text:     "rate-of-change family all negative (ROC=%.2f, MOM=%.4f, TRIX=%.4f)",
				args:     []string{"roc", "mom", "trix"},
			},
			{
				when:     func(v map[string]float64) bool { return v["roc"] > 0 },
				dir:      Bullish,
				strength: 0.3,
				text:     "ROC=%.2f positive with mixed confirmation",
				args:     []string{"roc"},
			},
			{
				when:     func(v map[string]float64) bool { return v["roc"] < 0 },
				dir:      Bearish,
				strength: 0.3,
				text:     "ROC=%.2f negative with mixed confirmation",
				args:     []string{"roc"},
			},
		},
	},
	{
		name: "price_oscillators",
		tier: TierMomentum,
		inputs: []input{
			{alias: "apo", key: "APO"},
			{alias: "ppo", key: "PPO"},
			{alias: "bop", key: "BOP"},
		},
		rules: []tableRule{
			{
				when:     func(v map[string]float64) bool { return v["apo"] > 0 && v["ppo"] > 0 && v["bop"] > 0.3 },
				dir:      Bullish,
				strength: 0.5,
				text:     "price oscillators aligned bullish (APO=%.4f, PPO=%.2f, BOP=%.2f)",
				args:     []string{"apo", "ppo", "bop"},
			},
			{
				when:     func(v map[string]float64) bool { return v["apo"] < 0 && v["ppo"] < 0 && v["bop"] < -0.3 },
				dir:      Bearish,
				strength: 0.5,
				text:     "price oscillators aligned bearish (APO=%.4f, PPO=%.2f, BOP=%.2f)",
				args:     []string{"apo", "ppo", "bop"},
			},
			{
				when:     func(v map[string]float64) bool { return v["ppo"] > 0 },
				dir:      Bullish,
				strength: 0.3,
				text:     "PPO=%.2f%% positive",
				args:     []string{"ppo"},
			},
			{
				when:     func(v map[string]float64) bool { return v["ppo"] < 0 },
				dir:      Bearish,
				strength: 0.3,
				text:     "PPO=%.2f%% negative",
				args:     []string{"ppo"},
			},
		},
	},

	// ------------------------------------------------------------------
	// VOLUME tier
	// ------------------------------------------------------------------
	{
		name: "chaikin_flow",
		tier: TierVolume,
		inputs: []input{
			{alias: "adosc", key: "ADOSC"},
		},
		rules: []tableRule{
			{
				when:     func(v map[string]float64) bool { return v["adosc"] > 0 },
				dir:      Bullish,
				strength: 0.6,
				text:     "Chaikin oscillator %.2f positive, volume flow rising",
				args:     []string{"adosc"},
			},
			{
				when:     func(v map[string]float64) bool { return v["adosc"] < 0 },
				dir:      Bearish,
				strength: 0.6,
				text:     "Chaikin oscillator %.2f negative, volume flow falling",
				args:     []string{"adosc"},
			},
		},
	},
	{
		name: "accumulation",
		tier: TierVolume,
		inputs: []input{
			{alias: "ad", key: "AD"},
			{alias: "adosc", key: "ADOSC"},
		},
		rules: []tableRule{
			{
				when:     func(v map[string]float64) bool { return v["ad"] > 0 && v["adosc"] > 0 },
				dir:      Bullish,
				strength: 0.5,
				text:     "accumulation phase (A/D=%.2f with rising oscillator)",
				args:     []string{"ad"},
			},
			{
				when:     func(v map[string]float64) bool { return v["ad"] < 0 || v["adosc"] < 0 },
				dir:      Bearish,
				strength: 0.5,
				text:     "distribution phase (A/D=%.2f)",
				args:     []string{"ad"},
			},
		},
	},
}
