// Package earning converts a completed job's billing breakdown into the vendor's payable amount.
package earning

import (
	"github.com/chris/amc-warranty-claims/pkg/models"
	"github.com/shopspring/decimal"
)

// FeeSchedule holds the platform's tax and revenue-share rates as fractions (0.18 == 18%).
type FeeSchedule struct {
	GSTRate        decimal.Decimal
	VendorShare    decimal.Decimal
	GatewayFeeRate decimal.Decimal
}

// DefaultFeeSchedule is 18% GST, a 50% vendor share of the service charge and no gateway fee.
func DefaultFeeSchedule() FeeSchedule {
	return FeeSchedule{
		GSTRate:        decimal.NewFromFloat(0.18),
		VendorShare:    decimal.NewFromFloat(0.5),
		GatewayFeeRate: decimal.Zero,
	}
}

// Input is the billing breakdown of one job, in minor currency units.
type Input struct {
	BillingAmount    int64
	SpareAmount      int64
	TravellingAmount int64
	BookingAmount    int64
	PaymentMethod    models.PaymentMethod
	GSTIncluded      bool
}

// InputFromBilling adapts a claim's billing payload.
func InputFromBilling(b models.JobBilling) Input {
	return Input{
		BillingAmount:    b.BillingAmount,
		SpareAmount:      b.SpareAmount,
		TravellingAmount: b.TravellingAmount,
		BookingAmount:    b.BookingAmount,
		PaymentMethod:    b.PaymentMethod,
		GSTIncluded:      b.GSTIncluded,
	}
}

// Result is the calculated vendor payable and the GST reported alongside it.
type Result struct {
	CalculatedAmount int64
	GSTAmount        int64
}

// Calculate computes the vendor earning for a job.
//
// When GSTIncluded is set the billing amount is tax-inclusive and GST is extracted from it;
// otherwise GST is charged on top and only reported. Spares and travel are reimbursed in full,
// and the vendor receives VendorShare of what remains of the net bill after spares, travel and
// the booking amount already collected by the platform. Online payments additionally bear the
// gateway fee before the split.
func Calculate(in Input, fees FeeSchedule) Result {
	gross := decimal.NewFromInt(in.BillingAmount)
	spare := decimal.NewFromInt(in.SpareAmount)
	travel := decimal.NewFromInt(in.TravellingAmount)
	booking := decimal.NewFromInt(in.BookingAmount)

	var gst, net decimal.Decimal
	if in.GSTIncluded {
		gst = gross.Mul(fees.GSTRate).Div(decimal.NewFromInt(1).Add(fees.GSTRate)).Round(0)
		net = gross.Sub(gst)
	} else {
		gst = gross.Mul(fees.GSTRate).Round(0)
		net = gross
	}

	serviceCharge := net.Sub(spare).Sub(travel).Sub(booking)
	if serviceCharge.IsNegative() {
		serviceCharge = decimal.Zero
	}
	if in.PaymentMethod == models.PaymentOnline {
		serviceCharge = serviceCharge.Sub(serviceCharge.Mul(fees.GatewayFeeRate))
	}

	calculated := serviceCharge.Mul(fees.VendorShare).Add(spare).Add(travel).Round(0)

	return Result{
		CalculatedAmount: calculated.IntPart(),
		GSTAmount:        gst.IntPart(),
	}
}
