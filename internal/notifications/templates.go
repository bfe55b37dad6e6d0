package notifications

import (
	"html/template"
	"strings"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

const customerSubject = "Order Confirmation - Your Order has been placed"

const vendorSubject = "New Order Received"

var customerTemplate = template.Must(template.New("customer").Parse(`
<h2>Thank you for your order, {{.Name}}!</h2>
<p>Your order ID: <strong>{{.OrderID}}</strong></p>
<p>Total Amount: <strong>${{.TotalCost}}</strong></p>
<h3>Order Details:</h3>
<table border="1" cellspacing="0" cellpadding="10">
    <thead>
        <tr>
            <th>Product Name</th>
            <th>Original Price</th>
            <th>Discounted Price</th>
            <th>Quantity</th>
        </tr>
    </thead>
    <tbody>
        {{range .Items}}
        <tr>
            <td>{{.ProductName}}</td>
            <td>${{.ProductPrice}}</td>
            <td>{{if .DiscountedPrice}}${{.DiscountedPrice}}{{else}}-{{end}}</td>
            <td>{{.Quantity}}</td>
        </tr>
        {{end}}
    </tbody>
</table>
<p>We will notify you when your order is shipped.</p>
`))

var vendorTemplate = template.Must(template.New("vendor").Parse(`
<h2>New Order Received</h2>
<p>Store: <strong>{{.StoreName}}</strong></p>
<p>Product: <strong>{{.ProductName}}</strong></p>
<p>Customer: <strong>{{.CustomerName}}</strong></p>
<p>Address: {{.Address}}, {{.City}}, {{.Country}}</p>
<p>Please process the order as soon as possible.</p>
`))

type customerEmailData struct {
	Name      string
	OrderID   string
	TotalCost string
	Items     []customerEmailItem
}

type customerEmailItem struct {
	ProductName     string
	ProductPrice    string
	DiscountedPrice string
	Quantity        int
}

type vendorEmailData struct {
	StoreName    string
	ProductName  string
	CustomerName string
	Address      string
	City         string
	Country      string
}

// BuildCustomerMessage renders the order confirmation email for the customer.
// The line-item table reflects the client-submitted cart items, including the
// client-submitted prices.
func BuildCustomerMessage(o *order.Order) (ports.MailMessage, error) {
	client := o.ClientDetails()
	items := o.CartItems()

	data := customerEmailData{
		Name:      client.Name,
		OrderID:   o.ID().String(),
		TotalCost: o.TotalCost().String(),
		Items:     make([]customerEmailItem, 0, len(items)),
	}
	for _, item := range items {
		row := customerEmailItem{
			ProductName:  item.ProductName(),
			ProductPrice: item.UnitPrice().String(),
			Quantity:     item.Quantity(),
		}
		if price := item.DiscountedPrice(); price != nil {
			row.DiscountedPrice = price.String()
		}
		data.Items = append(data.Items, row)
	}

	var body strings.Builder
	if err := customerTemplate.Execute(&body, data); err != nil {
		return ports.MailMessage{}, err
	}

	return ports.MailMessage{
		To:       client.Email,
		Subject:  customerSubject,
		HTMLBody: body.String(),
	}, nil
}

// BuildVendorMessage renders the new-order email for one vendor group.
func BuildVendorMessage(o *order.Order, group order.VendorGroup) (ports.MailMessage, error) {
	client := o.ClientDetails()

	data := vendorEmailData{
		StoreName:    group.StoreName(),
		ProductName:  group.ProductName(),
		CustomerName: client.Name,
		Address:      client.Address,
		City:         client.City,
		Country:      client.Country,
	}

	var body strings.Builder
	if err := vendorTemplate.Execute(&body, data); err != nil {
		return ports.MailMessage{}, err
	}

	return ports.MailMessage{
		To:       group.VendorEmail(),
		Subject:  vendorSubject,
		HTMLBody: body.String(),
	}, nil
}
