package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"biztime/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay thin; business rules live in the services.
func RegisterRoutes(app *fiber.App, db *sql.DB, companies service.CompanyService, invoices service.InvoiceService) {
	// Serve the committed OpenAPI spec and a Swagger UI page
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	// Readiness (DB connectivity) and liveness probes
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Get("/companies", ListCompanies(companies))
	app.Get("/companies/:code", GetCompany(companies))
	app.Post("/companies", CreateCompany(companies))

	app.Get("/invoices", ListInvoices(invoices))
	app.Get("/invoices/:id", GetInvoice(invoices))
	app.Post("/invoices", CreateInvoice(invoices))
	app.Put("/invoices/:id", UpdateInvoice(invoices))
	app.Delete("/invoices/:id", DeleteInvoice(invoices))
}
