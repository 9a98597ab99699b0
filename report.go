package surgereport

import (
	"fmt"
	"math"
	"sort"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mkodera/go-surgereport/internal/dateutil"
)

// systemName appears on the title page and in the footer.
const systemName = "手術分析ダッシュボード v1.0"

// Chart images are embedded at 6x3 inches.
const (
	chartImageWidth  = 152.4 // mm
	chartImageHeight = 76.2  // mm
)

// Column widths in millimeters.
var (
	kpiColWidths  = []float64{35, 20, 15, 35}
	perfColWidths = []float64{30, 18, 18, 18, 18}
)

// jpPrinter groups digits the way the ja-JP report surface expects.
var jpPrinter = message.NewPrinter(language.Japanese)

func formatCount(v float64) string {
	return jpPrinter.Sprintf("%d", int64(math.Round(v)))
}

func formatRate(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

func (s *Service) titleBlocks(period PeriodInfo, now time.Time) []Block {
	periodText := fmt.Sprintf(
		"<b>分析期間:</b> %s<br/><br/>"+
			"<b>対象日:</b> %s ～ %s<br/><br/>"+
			"<b>分析日数:</b> %d日間 (平日: %d日)",
		period.PeriodName, period.StartDate, period.EndDate, period.TotalDays, period.Weekdays)

	generatedText := fmt.Sprintf(
		"<b>レポート生成日時:</b> %s<br/><br/>"+
			"<b>生成システム:</b> %s",
		dateutil.ReportDateTime(now), systemName)

	return []Block{
		Paragraph{Style: StyleTitle, Text: "手術分析ダッシュボード"},
		Spacer{Height: 20},
		Paragraph{Style: StyleHeading, Text: "管理者向けサマリーレポート"},
		Spacer{Height: 12},
		Paragraph{Style: StyleNormal, Text: periodText},
		Spacer{Height: 25},
		Paragraph{Style: StyleNormal, Text: generatedText},
	}
}

func (s *Service) summaryBlocks(kpi KPIData, period PeriodInfo) []Block {
	text := fmt.Sprintf(
		"選択期間（%s）における手術実績の概要：<br/><br/>"+
			"・ <b>全身麻酔手術件数:</b> %s件<br/>"+
			"・ <b>全手術件数:</b> %s件<br/>"+
			"・ <b>平日1日あたり全身麻酔手術:</b> %s件/日<br/>"+
			"・ <b>手術室稼働率:</b> %s%%<br/><br/>"+
			"手術室稼働率は OP-1～OP-12（OP-11A, OP-11B除く）11室の平日9:00～17:15における"+
			"実際の稼働時間を基準として算出されています。",
		period.PeriodName,
		formatCount(kpi.Get(KPIGasCases)),
		formatCount(kpi.Get(KPITotalCases)),
		formatRate(kpi.Get(KPIDailyAvgGas)),
		formatRate(kpi.Get(KPIUtilizationRate)))

	return []Block{
		Paragraph{Style: StyleHeading, Text: "エグゼクティブサマリー"},
		Paragraph{Style: StyleNormal, Text: text},
		Spacer{Height: 7.5},
	}
}

func (s *Service) kpiBlocks(kpi KPIData) []Block {
	table := Table{
		Header: []string{"指標", "値", "単位", "備考"},
		Rows: [][]string{
			{"全身麻酔手術件数", formatCount(kpi.Get(KPIGasCases)), "件", "20分以上の全身麻酔手術"},
			{"全手術件数", formatCount(kpi.Get(KPITotalCases)), "件", "全ての手術(局麻等含む)"},
			{"平日1日あたり全身麻酔手術", formatRate(kpi.Get(KPIDailyAvgGas)), "件/日", "平日(月～金)の平均"},
			{"手術室稼働率", formatRate(kpi.Get(KPIUtilizationRate)), "%", "OP-1～12の実稼働時間ベース"},
		},
		ColWidths: kpiColWidths,
		Style:     TableKPI,
	}

	actual := kpi.Get(KPIActualMinutes)
	maxMinutes := kpi.Get(KPIMaxMinutes)
	detail := fmt.Sprintf(
		"<b>手術室稼働詳細:</b><br/>"+
			"・ 実際稼働時間: %s分 (%s時間)<br/>"+
			"・ 最大稼働時間: %s分 (%s時間)<br/>"+
			"・ 平日数: %s日",
		formatCount(actual), formatRate(actual/60),
		formatCount(maxMinutes), formatRate(maxMinutes/60),
		formatCount(kpi.Get(KPIWeekdays)))

	return []Block{
		Paragraph{Style: StyleHeading, Text: "主要業績指標 (KPI)"},
		table,
		Spacer{Height: 7.5},
		Paragraph{Style: StyleNormal, Text: detail},
		Spacer{Height: 7.5},
	}
}

func (s *Service) performanceBlocks(rows []PerformanceRow) []Block {
	table := Table{
		Header:    []string{"診療科", "期間平均", "直近週実績", "週次目標", "達成率(%)"},
		Rows:      make([][]string, 0, len(rows)),
		ColWidths: perfColWidths,
		Style:     TablePerformance,
	}
	for _, r := range rows {
		table.Rows = append(table.Rows, []string{
			r.Department,
			formatRate(r.PeriodAverage),
			formatCount(r.LatestWeekActual),
			formatRate(r.WeeklyTarget),
			formatRate(r.AchievementRate),
		})
	}

	achieved, watch := 0, 0
	var top *PerformanceRow
	for i := range rows {
		switch {
		case rows[i].AchievementRate >= 100:
			achieved++
			if top == nil || rows[i].AchievementRate > top.AchievementRate {
				top = &rows[i]
			}
		case rows[i].AchievementRate < 80:
			watch++
		}
	}

	analysis := fmt.Sprintf(
		"<b>達成率分析:</b><br/>"+
			"・ 目標達成科数: %d科 / %d科<br/>"+
			"・ 要注意科数: %d科 (達成率80%%未満)",
		achieved, len(rows), watch)
	if top != nil {
		analysis += fmt.Sprintf("<br/>・ 最高達成率: %s (%s%%)", top.Department, formatRate(top.AchievementRate))
	}

	return []Block{
		PageBreak{},
		Paragraph{Style: StyleHeading, Text: "診療科別パフォーマンス"},
		table,
		Spacer{Height: 7.5},
		Paragraph{Style: StyleNormal, Text: analysis},
		Spacer{Height: 7.5},
	}
}

// chartBlocks rasterizes each chart in sorted-title order. A failed chart
// degrades to a placeholder paragraph; the remaining charts still render.
func (s *Service) chartBlocks(charts map[string]*ChartSpec) []Block {
	titles := make([]string, 0, len(charts))
	for title := range charts {
		titles = append(titles, title)
	}
	sort.Strings(titles)

	blocks := []Block{
		PageBreak{},
		Paragraph{Style: StyleHeading, Text: "グラフ・チャート"},
	}
	for _, title := range titles {
		result := s.renderChart(title, charts[title])
		caption := chartCaption(title)
		if result.Failed() {
			blocks = append(blocks,
				Paragraph{Style: StyleNormal, Text: fmt.Sprintf(
					"グラフ '%s' - データは正常ですが、PDF変換時にエラーが発生しました", caption)},
				Spacer{Height: 5},
			)
			continue
		}
		blocks = append(blocks,
			Image{PNG: result.PNG, Width: chartImageWidth, Height: chartImageHeight},
			Paragraph{Style: StyleNormal, Text: "図: " + caption},
			Spacer{Height: 5},
		)
	}
	return blocks
}

// chartCaption sanitizes a chart title for display, replacing the generic
// placeholder with a domain label.
func chartCaption(title string) string {
	clean := Sanitize(title)
	if clean == PlaceholderLabel {
		return "手術分析グラフ"
	}
	return clean
}

func (s *Service) footerBlocks(now time.Time) []Block {
	text := fmt.Sprintf(
		"<b>レポート生成情報:</b><br/>"+
			"・ システム: %s<br/>"+
			"・ 生成日時: %s<br/>"+
			"・ 注意事項: このレポートに含まれる情報は分析対象期間のデータに基づいています",
		systemName, dateutil.FooterDateTime(now))

	return []Block{
		Spacer{Height: 12},
		Paragraph{Style: StyleNormal, Text: "ーーーーーーーーーーーーーーーーーーーーーーーーーーーー"},
		Paragraph{Style: StyleNormal, Text: text},
	}
}

// fontInfoBlocks emits the diagnostic block naming the active font set.
func (s *Service) fontInfoBlocks() []Block {
	text := fmt.Sprintf(
		"<b>使用フォント情報:</b><br/>"+
			"・ 通常フォント: %s<br/>"+
			"・ 太字フォント: %s<br/>"+
			"・ 軽量フォント: %s<br/>"+
			"・ フォント取得元: %s",
		s.resources.Regular.Family,
		s.resources.Bold.Family,
		s.resources.Light.Family,
		s.resources.Source)

	return []Block{
		Paragraph{Style: StyleSmall, Text: text},
	}
}
