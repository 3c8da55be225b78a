package indicator

import (
	"fmt"
	"math"

	talib "github.com/markcheno/go-talib"

	"github.com/Shershaah24/kuiper-v2/internal/market"
)

// Params carries the periods used when computing a snapshot from candles.
// Zero fields fall back to the documented defaults.
type Params struct {
	RSIPeriod    int
	ADXPeriod    int
	ATRPeriod    int
	BBandsPeriod int
	BBandsStdDev float64
	ATRAvgWindow int
}

func (p Params) withDefaults() Params {
	if p.RSIPeriod <= 0 {
		p.RSIPeriod = 14
	}
	if p.ADXPeriod <= 0 {
		p.ADXPeriod = 14
	}
	if p.ATRPeriod <= 0 {
		p.ATRPeriod = 14
	}
	if p.BBandsPeriod <= 0 {
		p.BBandsPeriod = 20
	}
	if p.BBandsStdDev <= 0 {
		p.BBandsStdDev = 2.0
	}
	if p.ATRAvgWindow <= 0 {
		p.ATRAvgWindow = 20
	}
	return p
}

// Engine computes an indicator snapshot from OHLCV candles. It is pure
// arithmetic over the candle arrays; any key whose input window is not yet
// covered is simply left out of the snapshot.
type Engine struct {
	params Params
}

func NewEngine(p Params) *Engine {
	return &Engine{params: p.withDefaults()}
}

// minCandles is the shortest series the engine accepts. SMA_200 and the
// Hilbert set need much more; keys short on data are omitted, not zeroed.
const minCandles = 40

func (e *Engine) Compute(symbol, interval string, candles []market.Candle) (*Snapshot, error) {
	if len(candles) < minCandles {
		return nil, fmt.Errorf("computing snapshot for %s@%s: need at least %d candles, got %d", symbol, interval, minCandles, len(candles))
	}
	opens := make([]float64, len(candles))
	highs := make([]float64, len(candles))
	lows := make([]float64, len(candles))
	closes := make([]float64, len(candles))
	volumes := make([]float64, len(candles))
	for i, c := range candles {
		opens[i] = c.Open
		highs[i] = c.High
		lows[i] = c.Low
		closes[i] = c.Close
		volumes[i] = c.Volume
	}
	p := e.params
	values := make(map[string]Value, 196)

	put := func(key string, series []float64) {
		if v, ok := lastValid(series); ok {
			values[key] = Scalar(v)
		}
	}
	putScalar := func(key string, v float64) {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			values[key] = Scalar(v)
		}
	}
	putTuple := func(key string, parts map[string]float64) {
		for _, f := range parts {
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return
			}
		}
		values[key] = Tuple(parts)
	}
	tupleLast := func(key string, names []string, series ...[]float64) {
		parts := make(map[string]float64, len(series))
		for i, s := range series {
			v, ok := lastValid(s)
			if !ok {
				return
			}
			parts[names[i]] = v
		}
		putTuple(key, parts)
	}

	// Overlap studies.
	for _, period := range []int{20, 50, 200} {
		if len(closes) > period {
			put(fmt.Sprintf("SMA_%d", period), talib.Sma(closes, period))
		}
	}
	for _, period := range []int{12, 26, 50} {
		put(fmt.Sprintf("EMA_%d", period), talib.Ema(closes, period))
	}
	put("WMA_30", talib.Wma(closes, 30))
	put("DEMA_30", talib.Dema(closes, 30))
	put("TEMA_30", talib.Tema(closes, 30))
	put("TRIMA_30", talib.Trima(closes, 30))
	put("KAMA_30", talib.Kama(closes, 30))
	put("T3_5", talib.T3(closes, 5, 0.7))
	put("MA_30", talib.Ma(closes, 30, talib.SMA))
	mama, fama := talib.Mama(closes, 0.5, 0.05)
	tupleLast("MAMA", []string{"mama", "fama"}, mama, fama)
	upper, middle, lower := talib.BBands(closes, p.BBandsPeriod, p.BBandsStdDev, p.BBandsStdDev, talib.SMA)
	tupleLast("BBANDS", []string{"upper", "middle", "lower"}, upper, middle, lower)
	accUp, accMid, accLow := accBands(highs, lows, closes, 20)
	tupleLast("ACCBANDS", []string{"upper", "middle", "lower"}, accUp, accMid, accLow)
	put("HT_TRENDLINE", talib.HtTrendline(closes))
	put("MIDPOINT_14", talib.MidPoint(closes, 14))
	put("MIDPRICE_14", talib.MidPrice(highs, lows, 14))
	put("SAR", talib.Sar(highs, lows, 0.02, 0.2))

	// Momentum.
	put("RSI_14", talib.Rsi(closes, p.RSIPeriod))
	macd, macdSignal, macdHist := talib.Macd(closes, 12, 26, 9)
	tupleLast("MACD", []string{"line", "signal", "hist"}, macd, macdSignal, macdHist)
	put("ADX_14", talib.Adx(highs, lows, closes, p.ADXPeriod))
	put("ADXR_14", talib.AdxR(highs, lows, closes, p.ADXPeriod))
	put("DX_14", talib.Dx(highs, lows, closes, p.ADXPeriod))
	put("PLUS_DI_14", talib.PlusDI(highs, lows, closes, p.ADXPeriod))
	put("MINUS_DI_14", talib.MinusDI(highs, lows, closes, p.ADXPeriod))
	put("PLUS_DM_14", talib.PlusDM(highs, lows, p.ADXPeriod))
	put("MINUS_DM_14", talib.MinusDM(highs, lows, p.ADXPeriod))
	slowK, slowD := talib.Stoch(highs, lows, closes, 5, 3, talib.SMA, 3, talib.SMA)
	tupleLast("STOCH", []string{"slowk", "slowd"}, slowK, slowD)
	fastK, fastD := talib.StochF(highs, lows, closes, 5, 3, talib.SMA)
	tupleLast("STOCHF", []string{"fastk", "fastd"}, fastK, fastD)
	srsiK, srsiD := talib.StochRsi(closes, p.RSIPeriod, 5, 3, talib.SMA)
	tupleLast("STOCHRSI", []string{"fastk", "fastd"}, srsiK, srsiD)
	aroonDown, aroonUp := talib.Aroon(highs, lows, 14)
	tupleLast("AROON", []string{"up", "down"}, aroonUp, aroonDown)
	put("AROONOSC", talib.AroonOsc(highs, lows, 14))
	put("CCI_14", talib.Cci(highs, lows, closes, 14))
	put("CMO_14", talib.Cmo(closes, 14))
	put("MOM_10", talib.Mom(closes, 10))
	put("APO", talib.Apo(closes, 12, 26, talib.SMA))
	put("PPO", talib.Ppo(closes, 12, 26, talib.SMA))
	putScalar("BOP", balanceOfPower(opens, highs, lows, closes))
	putScalar("IMI_14", intradayMomentum(opens, closes, 14))
	put("ROC_10", talib.Roc(closes, 10))
	put("ROCP_10", talib.Rocp(closes, 10))
	put("ROCR_10", talib.Rocr(closes, 10))
	put("ROCR100_10", talib.Rocr100(closes, 10))
	if len(closes) > 3*30 {
		put("TRIX_30", talib.Trix(closes, 30))
	}
	put("ULTOSC", talib.UltOsc(highs, lows, closes, 7, 14, 28))
	put("WILLR_14", talib.WillR(highs, lows, closes, 14))
	put("MFI_14", talib.Mfi(highs, lows, closes, volumes, 14))

	// Volume.
	put("AD", talib.Ad(highs, lows, closes, volumes))
	put("ADOSC", talib.AdOsc(highs, lows, closes, volumes, 3, 10))
	put("OBV", talib.Obv(closes, volumes))

	// Volatility.
	atr := talib.Atr(highs, lows, closes, p.ATRPeriod)
	put("ATR_14", atr)
	putScalar("ATR_14_AVG", trailingMean(atr, p.ATRAvgWindow))
	put("NATR_14", talib.Natr(highs, lows, closes, p.ATRPeriod))
	put("TRANGE", talib.TRange(highs, lows, closes))

	// Cycle.
	put("HT_DCPERIOD", talib.HtDcPeriod(closes))
	put("HT_DCPHASE", talib.HtDcPhase(closes))
	inPhase, quadrature := talib.HtPhasor(closes)
	tupleLast("HT_PHASOR", []string{"inphase", "quadrature"}, inPhase, quadrature)
	sine, leadSine := talib.HtSine(closes)
	tupleLast("HT_SINE", []string{"sine", "leadsine"}, sine, leadSine)
	put("HT_TRENDMODE", talib.HtTrendMode(closes))

	// Statistics.
	put("BETA_5", talib.Beta(highs, lows, 5))
	put("CORREL_30", talib.Correl(highs, lows, 30))
	put("LINEARREG_14", talib.LinearReg(closes, 14))
	put("LINEARREG_ANGLE_14", talib.LinearRegAngle(closes, 14))
	put("LINEARREG_INTERCEPT_14", talib.LinearRegIntercept(closes, 14))
	put("LINEARREG_SLOPE_14", talib.LinearRegSlope(closes, 14))
	put("STDDEV_5", talib.StdDev(closes, 5, 1.0))
	put("VAR_5", talib.Var(closes, 5))
	put("TSF_14", talib.Tsf(closes, 14))

	// Price transform.
	put("AVGPRICE", talib.AvgPrice(opens, highs, lows, closes))
	put("MEDPRICE", talib.MedPrice(highs, lows))
	put("TYPPRICE", talib.TypPrice(highs, lows, closes))
	put("WCLPRICE", talib.WclPrice(highs, lows, closes))
	putScalar("AVGDEV_14", avgDeviation(closes, 14))

	// Math transform of the latest close. Domain misses (ACOS of a price
	// above 1, say) drop the key instead of emitting NaN.
	lastClose := closes[len(closes)-1]
	putScalar("LN", math.Log(lastClose))
	putScalar("LOG10", math.Log10(lastClose))
	putScalar("SQRT", math.Sqrt(lastClose))
	putScalar("CEIL", math.Ceil(lastClose))
	putScalar("FLOOR", math.Floor(lastClose))
	putScalar("EXP", math.Exp(lastClose))
	putScalar("ACOS", math.Acos(lastClose))
	putScalar("ASIN", math.Asin(lastClose))
	putScalar("ATAN", math.Atan(lastClose))
	putScalar("COS", math.Cos(lastClose))
	putScalar("COSH", math.Cosh(lastClose))
	putScalar("SIN", math.Sin(lastClose))
	putScalar("SINH", math.Sinh(lastClose))
	putScalar("TAN", math.Tan(lastClose))
	putScalar("TANH", math.Tanh(lastClose))

	// Math operators over the trailing window; MIN/MAX double as
	// support/resistance references for the risk sizer.
	lastHigh := highs[len(highs)-1]
	lastLow := lows[len(lows)-1]
	putScalar("ADD", lastHigh+lastLow)
	putScalar("SUB", lastHigh-lastLow)
	putScalar("MULT", lastHigh*lastLow)
	if lastLow != 0 {
		putScalar("DIV", lastHigh/lastLow)
	}
	put("MAX_30", talib.Max(highs, 30))
	put("MIN_30", talib.Min(lows, 30))
	put("SUM_30", talib.Sum(closes, 30))
	maxIdx, minIdx := extremeIndexes(highs, lows, 30)
	putScalar("MAXINDEX_30", float64(maxIdx))
	putScalar("MININDEX_30", float64(minIdx))
	if hi, ok := lastValid(talib.Max(highs, 30)); ok {
		if lo, ok := lastValid(talib.Min(lows, 30)); ok {
			putTuple("MINMAX_30", map[string]float64{"min": lo, "max": hi})
			putTuple("MINMAXINDEX_30", map[string]float64{"min": float64(minIdx), "max": float64(maxIdx)})
		}
	}

	// Candlestick recognisers.
	for key, vote := range recognizePatterns(candles) {
		values[key] = Scalar(float64(vote))
	}

	return NewSnapshot(symbol, interval, values)
}

// lastValid walks a series backwards past NaN padding.
func lastValid(series []float64) (float64, bool) {
	for i := len(series) - 1; i >= 0; i-- {
		v := series[i]
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			return v, true
		}
	}
	return 0, false
}

func trailingMean(series []float64, window int) float64 {
	var sum float64
	var n int
	for i := len(series) - 1; i >= 0 && n < window; i-- {
		v := series[i]
		if math.IsNaN(v) || math.IsInf(v, 0) || v == 0 {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

func balanceOfPower(opens, highs, lows, closes []float64) float64 {
	i := len(closes) - 1
	rng := highs[i] - lows[i]
	if rng <= 0 {
		return 0
	}
	return (closes[i] - opens[i]) / rng
}

// intradayMomentum is the Intraday Momentum Index: RSI over close-vs-open.
func intradayMomentum(opens, closes []float64, period int) float64 {
	if len(closes) < period {
		return math.NaN()
	}
	var gains, losses float64
	for i := len(closes) - period; i < len(closes); i++ {
		d := closes[i] - opens[i]
		if d > 0 {
			gains += d
		} else {
			losses -= d
		}
	}
	total := gains + losses
	if total == 0 {
		return 50
	}
	return gains / total * 100
}

func avgDeviation(series []float64, period int) float64 {
	if len(series) < period {
		return math.NaN()
	}
	window := series[len(series)-period:]
	var mean float64
	for _, v := range window {
		mean += v
	}
	mean /= float64(period)
	var dev float64
	for _, v := range window {
		dev += math.Abs(v - mean)
	}
	return dev / float64(period)
}

// accBands implements Acceleration Bands, which the talib port lacks:
// SMA of high*(1+4*(h-l)/(h+l)) over, close for middle, mirrored for lower.
func accBands(highs, lows, closes []float64, period int) (upper, middle, lower []float64) {
	n := len(closes)
	upRaw := make([]float64, n)
	lowRaw := make([]float64, n)
	for i := 0; i < n; i++ {
		span := highs[i] + lows[i]
		if span == 0 {
			upRaw[i] = highs[i]
			lowRaw[i] = lows[i]
			continue
		}
		factor := 4 * (highs[i] - lows[i]) / span
		upRaw[i] = highs[i] * (1 + factor)
		lowRaw[i] = lows[i] * (1 - factor)
	}
	return talib.Sma(upRaw, period), talib.Sma(closes, period), talib.Sma(lowRaw, period)
}

func extremeIndexes(highs, lows []float64, window int) (maxIdx, minIdx int) {
	start := len(highs) - window
	if start < 0 {
		start = 0
	}
	maxIdx, minIdx = start, start
	for i := start; i < len(highs); i++ {
		if highs[i] > highs[maxIdx] {
			maxIdx = i
		}
		if lows[i] < lows[minIdx] {
			minIdx = i
		}
	}
	return maxIdx, minIdx
}
