// Package invoice renders the customer invoice attached to the order
// confirmation email.
package invoice

import (
	"bytes"
	"context"
	_ "embed"
	"html/template"
	"strings"

	"fastereats/internal/core/domain/model/order"
	"fastereats/internal/core/ports"
)

//go:embed invoice.html.tmpl
var invoiceTemplate string

type lineView struct {
	Name      string
	Quantity  int
	UnitPrice string
	Amount    string
}

type invoiceView struct {
	Number            string
	PlacedAt          string
	CustomerName      string
	CustomerEmail     string
	DeliveryAddress   string
	RestaurantName    string
	RestaurantAddress string
	Lines             []lineView
	Currency          string
	Subtotal          string
	DeliveryFee       string
	CouponCode        string
	Discount          string
	TotalAmount       string
	PaymentMethod     string
}

// HTMLRenderer implements ports.InvoiceRenderer.
type HTMLRenderer struct {
	tmpl     *template.Template
	currency string
}

func NewHTMLRenderer(currency string) (*HTMLRenderer, error) {
	tmpl, err := template.New("invoice").Parse(invoiceTemplate)
	if err != nil {
		return nil, err
	}
	return &HTMLRenderer{tmpl: tmpl, currency: currency}, nil
}

func (r *HTMLRenderer) Render(_ context.Context, o *order.Order, customer ports.Contact) (ports.Attachment, error) {
	view := invoiceView{
		Number:            o.Number(),
		PlacedAt:          o.CreatedAt().Format("2006-01-02 15:04 MST"),
		CustomerName:      strings.TrimSpace(customer.FirstName + " " + customer.LastName),
		CustomerEmail:     customer.Email,
		DeliveryAddress:   o.DeliveryAddress(),
		RestaurantName:    o.Restaurant().Name(),
		RestaurantAddress: o.Restaurant().Address(),
		Currency:          r.currency,
		Subtotal:          o.Subtotal().String(),
		DeliveryFee:       o.DeliveryFee().String(),
		CouponCode:        o.CouponCode(),
		Discount:          o.Discount().String(),
		TotalAmount:       o.TotalAmount().String(),
		PaymentMethod:     o.PaymentMethod().String(),
	}
	for _, l := range o.CartLines() {
		view.Lines = append(view.Lines, lineView{
			Name:      l.Name(),
			Quantity:  l.Quantity(),
			UnitPrice: l.UnitPrice().String(),
			Amount:    l.Total().String(),
		})
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, view); err != nil {
		return ports.Attachment{}, err
	}

	return ports.Attachment{
		Filename:    "Invoice-" + o.Number() + ".html",
		ContentType: "text/html; charset=utf-8",
		Content:     buf.Bytes(),
	}, nil
}
