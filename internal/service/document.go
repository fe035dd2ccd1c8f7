package service

import (
	"fmt"
	"strings"

	"toolrent-backend/internal/domain"
)

// DocumentGenerator renders the textual rental agreement.
type DocumentGenerator struct{}

func NewDocumentGenerator() *DocumentGenerator {
	return &DocumentGenerator{}
}

// RentalAgreement creates the legal document for a rental.
func (g *DocumentGenerator) RentalAgreement(rental *domain.Rental, tool *domain.Tool) string {
	var b strings.Builder
	b.WriteString("Rental Agreement\n\n")
	fmt.Fprintf(&b, "Tool code: %s\n", tool.Code)
	fmt.Fprintf(&b, "Tool type: %s\n", tool.ToolType)
	fmt.Fprintf(&b, "Tool brand: %s\n", tool.Brand)
	fmt.Fprintf(&b, "Rental days: %d\n", rental.DayCount)
	fmt.Fprintf(&b, "Checkout date: %s\n", rental.CheckOutDate.Format("2006-01-02"))
	fmt.Fprintf(&b, "Due date: %s\n", rental.DueDate().Format("2006-01-02"))
	fmt.Fprintf(&b, "Daily rental charge: %s\n", rental.DailyCharge.StringFixed(2))
	fmt.Fprintf(&b, "Charge days: %d\n", rental.ChargedDaysCount)
	fmt.Fprintf(&b, "Pre-discount charge: %s\n", rental.ChargeAmount.StringFixed(2))
	fmt.Fprintf(&b, "Discount percent: %d%%\n", rental.DiscountPercent)
	fmt.Fprintf(&b, "Discount amount: %s\n", rental.DiscountAmount().StringFixed(2))
	fmt.Fprintf(&b, "Final charge: %s\n", rental.FinalCharge().StringFixed(2))
	return b.String()
}
