package mailer

import "html/template"

var adminTemplate = template.Must(template.New("admin").Parse(`<h2>New Studio Booking Request</h2>

<h3>Booking Details</h3>
<p><strong>Reference:</strong> {{.Reference}}</p>
<p><strong>Date:</strong> {{.Date}}</p>
<p><strong>Time:</strong> {{.TimeSlot}}</p>

<h3>Selected Service</h3>
<p>
  <strong>{{.Product.Name}}</strong>{{if gt .Product.Quantity 1}} ({{.Product.Quantity}}x){{end}}<br>
  {{.Product.Description}}<br>
  {{.Product.UnitPrice}}{{if gt .Product.Quantity 1}} x {{.Product.Quantity}} = {{.Product.LineTotal}}{{end}}
</p>

{{if .Extras}}<h3>Additional Services</h3>
<ul>
{{range .Extras}}  <li>
    <strong>{{.Name}}</strong>{{if gt .Quantity 1}} ({{.Quantity}}x){{end}} - {{.UnitPrice}}{{if gt .Quantity 1}} x {{.Quantity}} = {{.LineTotal}}{{end}}<br>
    {{.Description}}
  </li>
{{end}}</ul>
{{end}}
{{if .Mandatory}}<h3>Service Fees</h3>
<ul>
{{range .Mandatory}}  <li><strong>{{.Name}}</strong> - {{.LineTotal}}</li>
{{end}}</ul>
{{end}}
<h3>Customer Information</h3>
<p>
  <strong>Name:</strong> {{.FirstName}} {{.LastName}}<br>
  <strong>Email:</strong> {{.Email}}<br>
  <strong>Phone:</strong> {{.Phone}}
</p>

{{if .Note}}<h3>Additional Notes</h3>
<p>{{.Note}}</p>
{{end}}
{{if .HasSavings}}<p><strong>Discount applied:</strong> {{.Savings}}</p>
{{end}}
<h3>Total: {{.Total}}</h3>
`))

var customerTemplate = template.Must(template.New("customer").Parse(`<h2>Thank you for your booking request, {{.FirstName}}!</h2>

<p>We have received your request and will confirm it shortly.</p>

<p>
  <strong>Reference:</strong> {{.Reference}}<br>
  <strong>Date:</strong> {{.Date}}<br>
  <strong>Time:</strong> {{.TimeSlot}}<br>
  <strong>Service:</strong> {{.Product.Name}}{{if gt .Product.Quantity 1}} ({{.Product.Quantity}}x){{end}}
</p>

{{if .HasSavings}}<p>Your booking includes a discount of {{.Savings}}.</p>
{{end}}
<p><strong>Total: {{.Total}}</strong></p>

<p>This is not a final confirmation yet. We will get back to you within 24 hours.</p>
`))
