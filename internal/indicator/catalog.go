package indicator

// Category groups the documented indicator set the way TA-Lib does.
type Category string

const (
	CategoryOverlap        Category = "overlap"
	CategoryMomentum       Category = "momentum"
	CategoryVolume         Category = "volume"
	CategoryVolatility     Category = "volatility"
	CategoryCycle          Category = "cycle"
	CategoryPattern        Category = "pattern"
	CategoryStatistics     Category = "statistics"
	CategoryPriceTransform Category = "price_transform"
	CategoryMathTransform  Category = "math_transform"
	CategoryMathOperators  Category = "math_operators"
)

// Def describes one indicator of the documented set: its canonical TA-Lib
// name, its category, and the snapshot keys its readings appear under.
// Periodised indicators (SMA, EMA, ...) emit one key per configured period;
// multi-output indicators emit a single tuple key.
type Def struct {
	Name     string
	Category Category
	Keys     []string
	Tuple    []string // component names when the key holds a tuple
}

// catalog lists the 161 documented indicators. Keys not derivable from one
// of these entries are rejected with UnknownIndicatorError.
var catalog = []Def{
	// Overlap studies (18)
	{Name: "SMA", Category: CategoryOverlap, Keys: []string{"SMA_20", "SMA_50", "SMA_200"}},
	{Name: "EMA", Category: CategoryOverlap, Keys: []string{"EMA_12", "EMA_26", "EMA_50"}},
	{Name: "WMA", Category: CategoryOverlap, Keys: []string{"WMA_30"}},
	{Name: "DEMA", Category: CategoryOverlap, Keys: []string{"DEMA_30"}},
	{Name: "TEMA", Category: CategoryOverlap, Keys: []string{"TEMA_30"}},
	{Name: "TRIMA", Category: CategoryOverlap, Keys: []string{"TRIMA_30"}},
	{Name: "KAMA", Category: CategoryOverlap, Keys: []string{"KAMA_30"}},
	{Name: "MAMA", Category: CategoryOverlap, Keys: []string{"MAMA"}, Tuple: []string{"mama", "fama"}},
	{Name: "T3", Category: CategoryOverlap, Keys: []string{"T3_5"}},
	{Name: "MA", Category: CategoryOverlap, Keys: []string{"MA_30"}},
	{Name: "MAVP", Category: CategoryOverlap, Keys: []string{"MAVP"}},
	{Name: "BBANDS", Category: CategoryOverlap, Keys: []string{"BBANDS"}, Tuple: []string{"upper", "middle", "lower"}},
	{Name: "ACCBANDS", Category: CategoryOverlap, Keys: []string{"ACCBANDS"}, Tuple: []string{"upper", "middle", "lower"}},
	{Name: "HT_TRENDLINE", Category: CategoryOverlap, Keys: []string{"HT_TRENDLINE"}},
	{Name: "MIDPOINT", Category: CategoryOverlap, Keys: []string{"MIDPOINT_14"}},
	{Name: "MIDPRICE", Category: CategoryOverlap, Keys: []string{"MIDPRICE_14"}},
	{Name: "SAR", Category: CategoryOverlap, Keys: []string{"SAR"}},
	{Name: "SAREXT", Category: CategoryOverlap, Keys: []string{"SAREXT"}},

	// Momentum (31)
	{Name: "ADX", Category: CategoryMomentum, Keys: []string{"ADX_14"}},
	{Name: "ADXR", Category: CategoryMomentum, Keys: []string{"ADXR_14"}},
	{Name: "APO", Category: CategoryMomentum, Keys: []string{"APO"}},
	{Name: "AROON", Category: CategoryMomentum, Keys: []string{"AROON"}, Tuple: []string{"up", "down"}},
	{Name: "AROONOSC", Category: CategoryMomentum, Keys: []string{"AROONOSC"}},
	{Name: "BOP", Category: CategoryMomentum, Keys: []string{"BOP"}},
	{Name: "CCI", Category: CategoryMomentum, Keys: []string{"CCI_14"}},
	{Name: "CMO", Category: CategoryMomentum, Keys: []string{"CMO_14"}},
	{Name: "DX", Category: CategoryMomentum, Keys: []string{"DX_14"}},
	{Name: "IMI", Category: CategoryMomentum, Keys: []string{"IMI_14"}},
	{Name: "MACD", Category: CategoryMomentum, Keys: []string{"MACD"}, Tuple: []string{"line", "signal", "hist"}},
	{Name: "MACDEXT", Category: CategoryMomentum, Keys: []string{"MACDEXT"}, Tuple: []string{"line", "signal", "hist"}},
	{Name: "MACDFIX", Category: CategoryMomentum, Keys: []string{"MACDFIX"}, Tuple: []string{"line", "signal", "hist"}},
	{Name: "MFI", Category: CategoryMomentum, Keys: []string{"MFI_14"}},
	{Name: "MINUS_DI", Category: CategoryMomentum, Keys: []string{"MINUS_DI_14"}},
	{Name: "MINUS_DM", Category: CategoryMomentum, Keys: []string{"MINUS_DM_14"}},
	{Name: "MOM", Category: CategoryMomentum, Keys: []string{"MOM_10"}},
	{Name: "PLUS_DI", Category: CategoryMomentum, Keys: []string{"PLUS_DI_14"}},
	{Name: "PLUS_DM", Category: CategoryMomentum, Keys: []string{"PLUS_DM_14"}},
	{Name: "PPO", Category: CategoryMomentum, Keys: []string{"PPO"}},
	{Name: "ROC", Category: CategoryMomentum, Keys: []string{"ROC_10"}},
	{Name: "ROCP", Category: CategoryMomentum, Keys: []string{"ROCP_10"}},
	{Name: "ROCR", Category: CategoryMomentum, Keys: []string{"ROCR_10"}},
	{Name: "ROCR100", Category: CategoryMomentum, Keys: []string{"ROCR100_10"}},
	{Name: "RSI", Category: CategoryMomentum, Keys: []string{"RSI_14"}},
	{Name: "STOCH", Category: CategoryMomentum, Keys: []string{"STOCH"}, Tuple: []string{"slowk", "slowd"}},
	{Name: "STOCHF", Category: CategoryMomentum, Keys: []string{"STOCHF"}, Tuple: []string{"fastk", "fastd"}},
	{Name: "STOCHRSI", Category: CategoryMomentum, Keys: []string{"STOCHRSI"}, Tuple: []string{"fastk", "fastd"}},
	{Name: "TRIX", Category: CategoryMomentum, Keys: []string{"TRIX_30"}},
	{Name: "ULTOSC", Category: CategoryMomentum, Keys: []string{"ULTOSC"}},
	{Name: "WILLR", Category: CategoryMomentum, Keys: []string{"WILLR_14"}},

	// Volume (3)
	{Name: "AD", Category: CategoryVolume, Keys: []string{"AD"}},
	{Name: "ADOSC", Category: CategoryVolume, Keys: []string{"ADOSC"}},
	{Name: "OBV", Category: CategoryVolume, Keys: []string{"OBV"}},

	// Volatility (3)
	{Name: "ATR", Category: CategoryVolatility, Keys: []string{"ATR_14", "ATR_14_AVG"}},
	{Name: "NATR", Category: CategoryVolatility, Keys: []string{"NATR_14"}},
	{Name: "TRANGE", Category: CategoryVolatility, Keys: []string{"TRANGE"}},

	// Cycle (5)
	{Name: "HT_DCPERIOD", Category: CategoryCycle, Keys: []string{"HT_DCPERIOD"}},
	{Name: "HT_DCPHASE", Category: CategoryCycle, Keys: []string{"HT_DCPHASE"}},
	{Name: "HT_PHASOR", Category: CategoryCycle, Keys: []string{"HT_PHASOR"}, Tuple: []string{"inphase", "quadrature"}},
	{Name: "HT_SINE", Category: CategoryCycle, Keys: []string{"HT_SINE"}, Tuple: []string{"sine", "leadsine"}},
	{Name: "HT_TRENDMODE", Category: CategoryCycle, Keys: []string{"HT_TRENDMODE"}},

	// Statistics (9)
	{Name: "BETA", Category: CategoryStatistics, Keys: []string{"BETA_5"}},
	{Name: "CORREL", Category: CategoryStatistics, Keys: []string{"CORREL_30"}},
	{Name: "LINEARREG", Category: CategoryStatistics, Keys: []string{"LINEARREG_14"}},
	{Name: "LINEARREG_ANGLE", Category: CategoryStatistics, Keys: []string{"LINEARREG_ANGLE_14"}},
	{Name: "LINEARREG_INTERCEPT", Category: CategoryStatistics, Keys: []string{"LINEARREG_INTERCEPT_14"}},
	{Name: "LINEARREG_SLOPE", Category: CategoryStatistics, Keys: []string{"LINEARREG_SLOPE_14"}},
	{Name: "STDDEV", Category: CategoryStatistics, Keys: []string{"STDDEV_5"}},
	{Name: "TSF", Category: CategoryStatistics, Keys: []string{"TSF_14"}},
	{Name: "VAR", Category: CategoryStatistics, Keys: []string{"VAR_5"}},

	// Price transform (5)
	{Name: "AVGPRICE", Category: CategoryPriceTransform, Keys: []string{"AVGPRICE"}},
	{Name: "MEDPRICE", Category: CategoryPriceTransform, Keys: []string{"MEDPRICE"}},
	{Name: "TYPPRICE", Category: CategoryPriceTransform, Keys: []string{"TYPPRICE"}},
	{Name: "WCLPRICE", Category: CategoryPriceTransform, Keys: []string{"WCLPRICE"}},
	{Name: "AVGDEV", Category: CategoryPriceTransform, Keys: []string{"AVGDEV_14"}},

	// Math transform (15)
	{Name: "ACOS", Category: CategoryMathTransform, Keys: []string{"ACOS"}},
	{Name: "ASIN", Category: CategoryMathTransform, Keys: []string{"ASIN"}},
	{Name: "ATAN", Category: CategoryMathTransform, Keys: []string{"ATAN"}},
	{Name: "CEIL", Category: CategoryMathTransform, Keys: []string{"CEIL"}},
	{Name: "COS", Category: CategoryMathTransform, Keys: []string{"COS"}},
	{Name: "COSH", Category: CategoryMathTransform, Keys: []string{"COSH"}},
	{Name: "EXP", Category: CategoryMathTransform, Keys: []string{"EXP"}},
	{Name: "FLOOR", Category: CategoryMathTransform, Keys: []string{"FLOOR"}},
	{Name: "LN", Category: CategoryMathTransform, Keys: []string{"LN"}},
	{Name: "LOG10", Category: CategoryMathTransform, Keys: []string{"LOG10"}},
	{Name: "SIN", Category: CategoryMathTransform, Keys: []string{"SIN"}},
	{Name: "SINH", Category: CategoryMathTransform, Keys: []string{"SINH"}},
	{Name: "SQRT", Category: CategoryMathTransform, Keys: []string{"SQRT"}},
	{Name: "TAN", Category: CategoryMathTransform, Keys: []string{"TAN"}},
	{Name: "TANH", Category: CategoryMathTransform, Keys: []string{"TANH"}},

	// Math operators (11)
	{Name: "ADD", Category: CategoryMathOperators, Keys: []string{"ADD"}},
	{Name: "SUB", Category: CategoryMathOperators, Keys: []string{"SUB"}},
	{Name: "MULT", Category: CategoryMathOperators, Keys: []string{"MULT"}},
	{Name: "DIV", Category: CategoryMathOperators, Keys: []string{"DIV"}},
	{Name: "MAX", Category: CategoryMathOperators, Keys: []string{"MAX_30"}},
	{Name: "MAXINDEX", Category: CategoryMathOperators, Keys: []string{"MAXINDEX_30"}},
	{Name: "MIN", Category: CategoryMathOperators, Keys: []string{"MIN_30"}},
	{Name: "MININDEX", Category: CategoryMathOperators, Keys: []string{"MININDEX_30"}},
	{Name: "MINMAX", Category: CategoryMathOperators, Keys: []string{"MINMAX_30"}, Tuple: []string{"min", "max"}},
	{Name: "MINMAXINDEX", Category: CategoryMathOperators, Keys: []string{"MINMAXINDEX_30"}, Tuple: []string{"min", "max"}},
	{Name: "SUM", Category: CategoryMathOperators, Keys: []string{"SUM_30"}},
}

var patternDefs = buildPatternDefs()

// patternNames are the 61 candlestick recognisers. Readings are integral
// votes in {-200,-100,0,100,200}; non-zero means the pattern fired.
var patternNames = []string{
	"CDL2CROWS", "CDL3BLACKCROWS", "CDL3INSIDE", "CDL3LINESTRIKE",
	"CDL3OUTSIDE", "CDL3STARSINSOUTH", "CDL3WHITESOLDIERS", "CDLABANDONEDBABY",
	"CDLADVANCEBLOCK", "CDLBELTHOLD", "CDLBREAKAWAY", "CDLCLOSINGMARUBOZU",
	"CDLCONCEALBABYSWALL", "CDLCOUNTERATTACK", "CDLDARKCLOUDCOVER", "CDLDOJI",
	"CDLDOJISTAR", "CDLDRAGONFLYDOJI", "CDLENGULFING", "CDLEVENINGDOJISTAR",
	"CDLEVENINGSTAR", "CDLGAPSIDESIDEWHITE", "CDLGRAVESTONEDOJI", "CDLHAMMER",
	"CDLHANGINGMAN", "CDLHARAMI", "CDLHARAMICROSS", "CDLHIGHWAVE",
	"CDLHIKKAKE", "CDLHIKKAKEMOD", "CDLHOMINGPIGEON", "CDLIDENTICAL3CROWS",
	"CDLINNECK", "CDLINVERTEDHAMMER", "CDLKICKING", "CDLKICKINGBYLENGTH",
	"CDLLADDERBOTTOM", "CDLLONGLEGGEDDOJI", "CDLLONGLINE", "CDLMARUBOZU",
	"CDLMATCHINGLOW", "CDLMATHOLD", "CDLMORNINGDOJISTAR", "CDLMORNINGSTAR",
	"CDLONNECK", "CDLPIERCING", "CDLRICKSHAWMAN", "CDLRISEFALL3METHODS",
	"CDLSEPARATINGLINES", "CDLSHOOTINGSTAR", "CDLSHORTLINE", "CDLSPINNINGTOP",
	"CDLSTALLEDPATTERN", "CDLSTICKSANDWICH", "CDLTAKURI", "CDLTASUKIGAP",
	"CDLTHRUSTING", "CDLTRISTAR", "CDLUNIQUE3RIVER", "CDLUPSIDEGAP2CROWS",
	"CDLXSIDEGAP3METHODS",
}

func buildPatternDefs() []Def {
	defs := make([]Def, 0, len(patternNames))
	for _, name := range patternNames {
		defs = append(defs, Def{Name: name, Category: CategoryPattern, Keys: []string{name}})
	}
	return defs
}

var (
	defsByName = buildNameIndex()
	defsByKey  = buildKeyIndex()
)

func buildNameIndex() map[string]*Def {
	idx := make(map[string]*Def, len(catalog)+len(patternDefs))
	for i := range catalog {
		idx[catalog[i].Name] = &catalog[i]
	}
	for i := range patternDefs {
		idx[patternDefs[i].Name] = &patternDefs[i]
	}
	return idx
}

func buildKeyIndex() map[string]*Def {
	idx := make(map[string]*Def)
	for i := range catalog {
		for _, k := range catalog[i].Keys {
			idx[k] = &catalog[i]
		}
	}
	for i := range patternDefs {
		for _, k := range patternDefs[i].Keys {
			idx[k] = &patternDefs[i]
		}
	}
	return idx
}

// Count reports the number of documented indicators.
func Count() int { return len(catalog) + len(patternDefs) }

// Lookup resolves a snapshot key to its indicator definition.
func Lookup(key string) (Def, bool) {
	d, ok := defsByKey[key]
	if !ok {
		return Def{}, false
	}
	return *d, true
}

// ByName resolves a canonical indicator name.
func ByName(name string) (Def, bool) {
	d, ok := defsByName[name]
	if !ok {
		return Def{}, false
	}
	return *d, true
}

// PatternKeys returns the 61 candlestick snapshot keys.
func PatternKeys() []string {
	out := make([]string, len(patternNames))
	copy(out, patternNames)
	return out
}

// Names returns every canonical indicator name grouped under cat.
func Names(cat Category) []string {
	var out []string
	for i := range catalog {
		if catalog[i].Category == cat {
			out = append(out, catalog[i].Name)
		}
	}
	for i := range patternDefs {
		if patternDefs[i].Category == cat {
			out = append(out, patternDefs[i].Name)
		}
	}
	return out
}
