package adminapi

import (
	"time"

	"github.com/araddon/dateparse"
	"github.com/glowandgather/storefront/internal/domain"
	"github.com/glowandgather/storefront/internal/webserver"
	"github.com/glowandgather/storefront/pkg/apperrors"
	"github.com/glowandgather/storefront/pkg/metrics"
	"github.com/labstack/echo/v4"
	"github.com/montanaflynn/stats"
)

// registerStatsRoutes registers dashboard statistics endpoints
func registerStatsRoutes() {
	webserver.ApiGET("/stats", dashboardStats)
	webserver.ApiGET("/stats/requests", requestStats)
}

// dashboardStats summarizes the catalog and inbox for the dashboard
// landing page, including descriptive statistics over product prices.
func dashboardStats(c echo.Context) error {
	db := GetDB(c)

	var productTotal, activeTotal, messageTotal, unreadTotal, adminTotal int64
	db.Model(&domain.Product{}).Count(&productTotal)
	db.Model(&domain.Product{}).Where("is_active = ?", true).Count(&activeTotal)
	db.Model(&domain.ContactMessage{}).Count(&messageTotal)
	db.Model(&domain.ContactMessage{}).Where("is_read = ?", false).Count(&unreadTotal)
	db.Model(&domain.Admin{}).Count(&adminTotal)

	var prices []float64
	db.Model(&domain.Product{}).Pluck("price", &prices)

	priceStats := map[string]float64{}
	if len(prices) > 0 {
		data := stats.LoadRawData(prices)
		if v, err := data.Min(); err == nil {
			priceStats["min"] = v
		}
		if v, err := data.Max(); err == nil {
			priceStats["max"] = v
		}
		if v, err := data.Mean(); err == nil {
			priceStats["mean"] = v
		}
		if v, err := data.Median(); err == nil {
			priceStats["median"] = v
		}
	}

	return ok(c, map[string]interface{}{
		"products": map[string]interface{}{
			"total":  productTotal,
			"active": activeTotal,
			"prices": priceStats,
		},
		"messages": map[string]interface{}{
			"total":  messageTotal,
			"unread": unreadTotal,
		},
		"admins": adminTotal,
	})
}

// requestStats returns day-bucketed traffic and contact form counters for
// the dashboard charts. Accepts flexible start/end date formats, defaulting
// to the last seven days.
func requestStats(c echo.Context) error {
	end := time.Now()
	start := end.AddDate(0, 0, -7)

	if s := c.QueryParam("start"); s != "" {
		parsed, err := dateparse.ParseAny(s)
		if err != nil {
			return apperrors.Validation("Invalid start date")
		}
		start = parsed
	}
	if s := c.QueryParam("end"); s != "" {
		parsed, err := dateparse.ParseAny(s)
		if err != nil {
			return apperrors.Validation("Invalid end date")
		}
		end = parsed
	}
	if end.Before(start) {
		return apperrors.Validation("End date must be after start date")
	}

	requests, err := metrics.DailyTotals("http_requests", start, end)
	if err != nil {
		return err
	}
	submissions, err := metrics.DailyTotals("contact_message_created", start, end)
	if err != nil {
		return err
	}

	return ok(c, map[string]interface{}{
		"start":       start.Format("2006-01-02"),
		"end":         end.Format("2006-01-02"),
		"requests":    requests,
		"submissions": submissions,
	})
}
