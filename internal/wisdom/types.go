package wisdom

// Regime is the coarse market classification that changes how every other
// reading is interpreted. Exactly one regime holds per analysis call.
type Regime string

const (
	TrendingUp   Regime = "TRENDING_UP"
	TrendingDown Regime = "TRENDING_DOWN"
	Ranging      Regime = "RANGING"
	Volatile     Regime = "VOLATILE"
)

// SignalDirection is the interpreted lean of one indicator in context.
type SignalDirection string

const (
	Bullish    SignalDirection = "BULLISH"
	Bearish    SignalDirection = "BEARISH"
	Neutral    SignalDirection = "NEUTRAL"
	Unreliable SignalDirection = "UNRELIABLE"
)

// TradeDirection is the final call handed to the executor.
type TradeDirection string

const (
	Long  TradeDirection = "LONG"
	Short TradeDirection = "SHORT"
	Flat  TradeDirection = "FLAT"
)

// Tier is one priority level of the decision hierarchy, highest first.
type Tier string

const (
	TierRegime   Tier = "REGIME"
	TierTrend    Tier = "TREND"
	TierMomentum Tier = "MOMENTUM"
	TierVolume   Tier = "VOLUME"
	TierPattern  Tier = "PATTERN"
)

// categoryTiers is the fixed walk order below the regime tier.
var categoryTiers = []Tier{TierTrend, TierMomentum, TierVolume, TierPattern}

// Signal is one indicator family's interpretation under the current regime.
// Strength is a relative-importance weight in [0,1], not a probability; it
// only breaks ties inside a category.
type Signal struct {
	Family    string          `json:"family"`
	Tier      Tier            `json:"tier"`
	Direction SignalDirection `json:"direction"`
	Strength  float64         `json:"strength"`
	Rationale string          `json:"rationale"`
}

// CategorySignal is the majority-vote reduction of one tier's members.
type CategorySignal struct {
	Tier      Tier            `json:"tier"`
	Direction SignalDirection `json:"direction"`
	Strength  float64         `json:"strength"`
	Bullish   int             `json:"bullish"`
	Bearish   int             `json:"bearish"`
	Members   int             `json:"members"`
	Rationale string          `json:"rationale"`
}

// RegimeResult carries the classification, the rule that fired, and the
// literal evidence values, so the reasoning trace can reproduce the call.
// Fallback is the regime the remaining rules would have produced had the
// volatility rule not fired; it equals Regime outside VOLATILE.
type RegimeResult struct {
	Regime   Regime   `json:"regime"`
	Fallback Regime   `json:"fallback"`
	Rule     string   `json:"rule"`
	Evidence []string `json:"evidence"`
}

// TradeDecision is the sole output artifact. Stop/take-profit distances and
// the size fraction are price-relative units; the executor converts them to
// absolute levels with the current price.
type TradeDecision struct {
	TraceID              string         `json:"trace_id"`
	Symbol               string         `json:"symbol"`
	Interval             string         `json:"interval"`
	Direction            TradeDirection `json:"direction"`
	Regime               Regime         `json:"regime"`
	Confidence           float64        `json:"confidence"`
	StopLossDistance     float64        `json:"stop_loss_distance"`
	TakeProfitDistance   float64        `json:"take_profit_distance"`
	PositionSizeFraction float64        `json:"position_size_fraction"`
	Reasoning            []string       `json:"reasoning"`
}

// RiskConfig holds the per-call tunables. Zero values are filled in by
// WithDefaults; cross-field conflicts are rejected by Validate at load time.
type RiskConfig struct {
	RSIPeriod               int     `mapstructure:"rsi_period"`
	ATRSLMultiplier         float64 `mapstructure:"atr_sl_multiplier"`
	ATRTPMultiplier         float64 `mapstructure:"atr_tp_multiplier"`
	MaxRiskPercent          float64 `mapstructure:"max_risk_percent"`
	ADXTrendThreshold       float64 `mapstructure:"adx_trend_threshold"`
	ADXRangeThreshold       float64 `mapstructure:"adx_range_threshold"`
	NATRVolatilityThreshold float64 `mapstructure:"natr_volatility_threshold"`
	MinRewardRiskRatio      float64 `mapstructure:"min_reward_risk_ratio"`
	HighConvictionThreshold float64 `mapstructure:"high_conviction_threshold"`
}

func (c RiskConfig) WithDefaults() RiskConfig {
	if c.RSIPeriod <= 0 {
		c.RSIPeriod = 14
	}
	if c.ATRSLMultiplier <= 0 {
		c.ATRSLMultiplier = 1.5
	}
	if c.ATRTPMultiplier <= 0 {
		c.ATRTPMultiplier = 2.5
	}
	if c.MaxRiskPercent <= 0 {
		c.MaxRiskPercent = 2.0
	}
	if c.ADXTrendThreshold <= 0 {
		c.ADXTrendThreshold = 25
	}
	if c.ADXRangeThreshold <= 0 {
		c.ADXRangeThreshold = 20
	}
	if c.NATRVolatilityThreshold <= 0 {
		c.NATRVolatilityThreshold = 1.0
	}
	if c.MinRewardRiskRatio <= 0 {
		c.MinRewardRiskRatio = 1.5
	}
	if c.HighConvictionThreshold <= 0 {
		c.HighConvictionThreshold = 0.8
	}
	return c
}

// Validate rejects cross-field conflicts. Runs at configuration load, never
// mid-analysis.
func (c RiskConfig) Validate() error {
	c = c.WithDefaults()
	if c.ADXRangeThreshold >= c.ADXTrendThreshold {
		return &ConflictingConfigurationError{
			Option: "adx_range_threshold",
			Reason: "must be below adx_trend_threshold",
		}
	}
	if c.ATRTPMultiplier/c.ATRSLMultiplier < c.MinRewardRiskRatio {
		return &ConflictingConfigurationError{
			Option: "atr_tp_multiplier",
			Reason: "implied reward:risk ratio is below min_reward_risk_ratio",
		}
	}
	if c.HighConvictionThreshold > 1 {
		return &ConflictingConfigurationError{
			Option: "high_conviction_threshold",
			Reason: "must be within (0, 1]",
		}
	}
	return nil
}
