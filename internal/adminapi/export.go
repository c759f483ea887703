package adminapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/glowandgather/storefront/internal/webserver"
	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// registerExportRoutes registers inbox and catalog export endpoints
func registerExportRoutes() {
	webserver.ApiGET("/export/messages", exportMessages)
	webserver.ApiGET("/export/products", exportProducts)
}

// exportMessages streams the full contact inbox as an .xlsx workbook.
func exportMessages(c echo.Context) error {
	messages, err := contactService(c).ListAll(c.Request().Context())
	if err != nil {
		return err
	}

	xlsx := excelize.NewFile()
	sheet := "Sheet1"
	headers := []string{"ID", "Name", "Email", "Subject", "Message", "Read", "Status", "Received"}
	for i, h := range headers {
		xlsx.SetCellValue(sheet, fmt.Sprintf("%s1", excelize.ToAlphaString(i)), h)
	}
	for row, m := range messages {
		values := []interface{}{
			fmt.Sprintf("%d", m.ID),
			m.Name,
			m.Email,
			m.Subject,
			m.Message,
			m.IsRead,
			m.Status,
			m.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			xlsx.SetCellValue(sheet, fmt.Sprintf("%s%d", excelize.ToAlphaString(col), row+2), v)
		}
	}

	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="contact_messages.xlsx"`)
	c.Response().WriteHeader(http.StatusOK)
	if err := xlsx.Write(c.Response().Writer); err != nil {
		return errors.Wrap(err, "write workbook")
	}
	return nil
}

type productCsvRow struct {
	ID           string  `csv:"id"`
	Name         string  `csv:"name"`
	Category     string  `csv:"category"`
	Price        float64 `csv:"price"`
	InStock      bool    `csv:"in_stock"`
	IsBestSeller bool    `csv:"is_best_seller"`
	IsActive     bool    `csv:"is_active"`
	Images       string  `csv:"images"`
	Created      string  `csv:"created_at"`
}

// exportProducts streams the catalog as CSV.
func exportProducts(c echo.Context) error {
	products, err := productService(c).ListAll(c.Request().Context())
	if err != nil {
		return err
	}

	rows := make([]*productCsvRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, &productCsvRow{
			ID:           fmt.Sprintf("%d", p.ID),
			Name:         p.Name,
			Category:     p.Category,
			Price:        p.Price,
			InStock:      p.InStock,
			IsBestSeller: p.IsBestSeller,
			IsActive:     p.IsActive,
			Images:       strings.Join(p.Images, ";"),
			Created:      p.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="products.csv"`)
	c.Response().WriteHeader(http.StatusOK)
	if err := gocsv.Marshal(&rows, c.Response().Writer); err != nil {
		return errors.Wrap(err, "write csv")
	}
	return nil
}
