// Package visual renders an HTML decision report: the candle series with
// the stop/take-profit band of the latest decision overlaid, plus the
// reasoning trace. Output is plain HTML for the report endpoint.
package visual

import (
	"fmt"
	"html"
	"io"
	"math"
	"strings"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/Shershaah24/kuiper-v2/internal/market"
	"github.com/Shershaah24/kuiper-v2/internal/wisdom"
)

const (
	colorBull = "#34d399"
	colorBear = "#f87171"
	colorStop = "#fb7185"
	colorTake = "#22d3ee"

	chartWidthPx  = 1400
	chartHeightPx = 560
)

type ReportInput struct {
	Symbol       string
	Interval     string
	Candles      []market.Candle
	Decision     *wisdom.TradeDecision
	CurrentPrice float64
}

// RenderReport writes the full HTML report for one symbol.
func RenderReport(w io.Writer, input ReportInput) error {
	if input.Symbol == "" {
		return fmt.Errorf("symbol required for report")
	}
	if len(input.Candles) == 0 {
		return fmt.Errorf("no candles for %s", input.Symbol)
	}

	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(buildCandleChart(input))

	if err := page.Render(w); err != nil {
		return err
	}
	return renderReasoning(w, input.Decision)
}

func buildCandleChart(input ReportInput) *charts.Kline {
	kline := charts.NewKLine()

	subtitle := "no decision yet"
	if d := input.Decision; d != nil {
		subtitle = fmt.Sprintf("%s | regime %s | confidence %.2f | size %.4f",
			d.Direction, d.Regime, d.Confidence, d.PositionSizeFraction)
	}

	minPrice, maxPrice := priceBounds(input.Candles)
	padding := (maxPrice - minPrice) * 0.05
	if padding <= 0 {
		padding = math.Max(1, math.Abs(maxPrice)*0.01)
	}

	kline.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  fmt.Sprintf("%dpx", chartWidthPx),
			Height: fmt.Sprintf("%dpx", chartHeightPx),
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%s %s", strings.ToUpper(input.Symbol), input.Interval),
			Subtitle: subtitle,
			Left:     "left",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider", XAxisIndex: []int{0}}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: opts.Bool(true),
			Min:   round(minPrice-padding, 6),
			Max:   round(maxPrice+padding, 6),
		}),
	)
	kline.SetSeriesOptions(
		charts.WithItemStyleOpts(opts.ItemStyle{
			Color:        colorBull,
			Color0:       colorBear,
			BorderColor:  colorBull,
			BorderColor0: colorBear,
		}),
	)

	xAxis := make([]string, len(input.Candles))
	data := make([]opts.KlineData, len(input.Candles))
	for i, c := range input.Candles {
		xAxis[i] = time.UnixMilli(c.CloseTime).UTC().Format("01-02 15:04")
		data[i] = opts.KlineData{Value: [4]float64{c.Open, c.Close, c.Low, c.High}}
	}
	kline.SetXAxis(xAxis)
	kline.AddSeries("Price", data)

	if line := buildRiskBand(input, xAxis); line != nil {
		kline.Overlap(line)
	}
	return kline
}

// buildRiskBand overlays the absolute stop and take-profit levels implied
// by the decision's relative distances.
func buildRiskBand(input ReportInput, xAxis []string) *charts.Line {
	d := input.Decision
	if d == nil || d.Direction == wisdom.Flat || input.CurrentPrice <= 0 {
		return nil
	}
	var stop, take float64
	switch d.Direction {
	case wisdom.Long:
		stop = input.CurrentPrice - d.StopLossDistance
		take = input.CurrentPrice + d.TakeProfitDistance
	case wisdom.Short:
		stop = input.CurrentPrice + d.StopLossDistance
		take = input.CurrentPrice - d.TakeProfitDistance
	}

	line := charts.NewLine()
	line.SetSeriesOptions(
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
	)
	line.SetXAxis(xAxis)
	line.AddSeries("Stop", flatLine(stop, len(xAxis)),
		charts.WithLineStyleOpts(opts.LineStyle{Color: colorStop, Width: 1.5, Type: "dashed"}))
	line.AddSeries("Target", flatLine(take, len(xAxis)),
		charts.WithLineStyleOpts(opts.LineStyle{Color: colorTake, Width: 1.5, Type: "dashed"}))
	return line
}

func flatLine(v float64, length int) []opts.LineData {
	out := make([]opts.LineData, length)
	for i := range out {
		out[i] = opts.LineData{Value: round(v, 6)}
	}
	return out
}

func renderReasoning(w io.Writer, d *wisdom.TradeDecision) error {
	if d == nil {
		return nil
	}
	var b strings.Builder
	b.WriteString(`<div style="font-family:monospace;margin:24px;max-width:1400px">`)
	b.WriteString(fmt.Sprintf("<h3>Reasoning trace %s</h3><ol>", html.EscapeString(d.TraceID)))
	for _, line := range d.Reasoning {
		b.WriteString("<li>")
		b.WriteString(html.EscapeString(line))
		b.WriteString("</li>")
	}
	b.WriteString("</ol></div>")
	_, err := io.WriteString(w, b.String())
	return err
}

func round(val float64, decimals int) float64 {
	scale := math.Pow10(decimals)
	return math.Round(val*scale) / scale
}

func priceBounds(candles []market.Candle) (minVal, maxVal float64) {
	minVal = candles[0].Low
	maxVal = candles[0].High
	for _, c := range candles {
		if c.Low < minVal {
			minVal = c.Low
		}
		if c.High > maxVal {
			maxVal = c.High
		}
	}
	return minVal, maxVal
}
