package dto

import (
	"github.com/0Hoxy/fixedExpenses/internal/application/usecase/dashboard"
)

// UpcomingPaymentResponse describes the next payment due.
type UpcomingPaymentResponse struct {
	ExpenditureID string  `json:"expenditureId"`
	ItemName      string  `json:"itemName"`
	DueDate       string  `json:"dueDate"` // YYYY-MM-DD
	Amount        float64 `json:"amount"`
	DaysUntil     int     `json:"daysUntil"`
}

// CategoryBreakdownResponse is one category's share of a month's total.
type CategoryBreakdownResponse struct {
	CategoryID string  `json:"categoryId"`
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Ratio      float64 `json:"ratio"`
}

// DashboardResponse represents the aggregated dashboard for one month.
type DashboardResponse struct {
	Month          string                      `json:"month"`
	MonthTotal     float64                     `json:"monthTotal"`
	LastMonthTotal float64                     `json:"lastMonthTotal"`
	DeltaMessage   string                      `json:"deltaMessage"`
	Upcoming       *UpcomingPaymentResponse    `json:"upcomingPayment"`
	ByCategory     []CategoryBreakdownResponse `json:"categoryBreakdown"`
}

// SeriesPointResponse is one month's total in a report series.
type SeriesPointResponse struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

// MonthlyReportResponse represents a month-by-month series plus the
// period-accumulated category breakdown.
type MonthlyReportResponse struct {
	Series     []SeriesPointResponse       `json:"series"`
	ByCategory []CategoryBreakdownResponse `json:"categoryBreakdown"`
}

// ToDashboardResponse converts dashboard output to a response DTO.
func ToDashboardResponse(output *dashboard.GetDashboardOutput) DashboardResponse {
	resp := DashboardResponse{
		Month:          output.Month.String(),
		MonthTotal:     output.MonthTotal.InexactFloat64(),
		LastMonthTotal: output.LastMonthTotal.InexactFloat64(),
		DeltaMessage:   output.DeltaMessage,
		ByCategory:     toBreakdownResponses(output.ByCategory),
	}
	if output.Upcoming != nil {
		resp.Upcoming = &UpcomingPaymentResponse{
			ExpenditureID: output.Upcoming.ExpenditureID.String(),
			ItemName:      output.Upcoming.ItemName,
			DueDate:       output.Upcoming.DueDate.Format("2006-01-02"),
			Amount:        output.Upcoming.Amount.InexactFloat64(),
			DaysUntil:     output.Upcoming.DaysUntil,
		}
	}
	return resp
}

// ToMonthlyReportResponse converts report output to a response DTO.
func ToMonthlyReportResponse(output *dashboard.GetMonthlyReportOutput) MonthlyReportResponse {
	series := make([]SeriesPointResponse, len(output.Series))
	for i, point := range output.Series {
		series[i] = SeriesPointResponse{
			Month: point.Month.String(),
			Total: point.Total.InexactFloat64(),
		}
	}
	return MonthlyReportResponse{
		Series:     series,
		ByCategory: toBreakdownResponses(output.ByCategory),
	}
}

func toBreakdownResponses(breakdown []dashboard.CategoryBreakdown) []CategoryBreakdownResponse {
	responses := make([]CategoryBreakdownResponse, len(breakdown))
	for i, item := range breakdown {
		responses[i] = CategoryBreakdownResponse{
			CategoryID: item.CategoryID.String(),
			Name:       item.Name,
			Amount:     item.Amount.InexactFloat64(),
			Ratio:      item.Ratio,
		}
	}
	return responses
}
