// Package mailer renders recovery emails from the configurable placeholder
// templates.
package mailer

import (
	"fmt"
	"html"
	"strings"

	"github.com/ekorolev/cart-recovery/internal/model"
)

// fallbackName greets customers whose name was never captured.
const fallbackName = "there"

// TemplateData carries the values substituted into a subject/body template.
type TemplateData struct {
	CustomerName  string
	CartItemsHTML string
	CartTotal     string
	CheckoutURL   string
	SiteName      string
}

// Render substitutes the {placeholder} tokens of a template.
//
// The token syntax is fixed: merchants write templates with {customer_name},
// {cart_items}, {cart_total}, {checkout_url} and {site_name}.
func Render(template string, data TemplateData) string {
	name := data.CustomerName
	if name == "" {
		name = fallbackName
	}

	r := strings.NewReplacer(
		"{customer_name}", name,
		"{cart_items}", data.CartItemsHTML,
		"{cart_total}", data.CartTotal,
		"{checkout_url}", data.CheckoutURL,
		"{site_name}", data.SiteName,
	)

	return r.Replace(template)
}

// ItemsHTML renders cart line items as an HTML list for the {cart_items} token.
func ItemsHTML(items []model.CartItem, currencySymbol string) string {
	var b strings.Builder
	b.WriteString("<ul>")

	for _, item := range items {
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}

		fmt.Fprintf(&b, "<li>%s &times; %d - %s</li>",
			html.EscapeString(item.Name), qty, FormatPrice(item.LineSubtotal, currencySymbol))
	}

	b.WriteString("</ul>")
	return b.String()
}

// FormatPrice renders a monetary amount with the configured currency symbol.
func FormatPrice(amount float64, currencySymbol string) string {
	if currencySymbol == "" {
		currencySymbol = "$"
	}
	return fmt.Sprintf("%s%.2f", currencySymbol, amount)
}
