// Package serve exposes the camt.053 parser over HTTP.
package serve

import (
	"bytes"

	"fjacquet/camt-json/cmd/root"
	"fjacquet/camt-json/internal/camtparser"
	"fjacquet/camt-json/internal/xmlutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var listenAddr string

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run an HTTP service that converts camt.053 documents to JSON",
	Long: `Start an HTTP service with a single conversion endpoint: POST a
camt.053 XML document to /v1/statements and receive the mapped message
tree as JSON.`,
	Run: serveFunc,
}

func init() {
	Cmd.Flags().StringVarP(&listenAddr, "listen", "l", "", "Listen address (defaults to server.listen from config)")
}

func serveFunc(cmd *cobra.Command, args []string) {
	addr := listenAddr
	if addr == "" && root.Cfg != nil {
		addr = root.Cfg.Server.Listen
	}
	if addr == "" {
		addr = ":8087"
	}

	app := newApp()
	root.Log.WithField("addr", addr).Info("Starting camt-json HTTP service")
	if err := app.Listen(addr); err != nil {
		root.Log.Fatalf("HTTP service failed: %v", err)
	}
}

// newApp builds the fiber application with its routes.
func newApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "camt-json",
		DisableStartupMessage: true,
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Post("/v1/statements", handleStatements)

	return app
}

// handleStatements converts one uploaded camt.053 document. The fail-fast
// parse contract applies per request: a required-field violation yields
// an error response with no partial payload.
func handleStatements(c *fiber.Ctx) error {
	log := root.Log.WithField("request_id", uuid.NewString())

	body := c.Body()
	if len(body) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "empty request body"})
	}

	node, err := xmlutils.Parse(bytes.NewReader(body))
	if err != nil {
		log.WithError(err).Warn("Rejecting malformed XML upload")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	p := camtparser.New(root.Log)
	messages, err := p.ParseDocument(node)
	if err != nil {
		log.WithError(err).Warn("Failed to map camt.053 document")
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	log.WithField("messages", len(messages)).Info("Converted camt.053 upload")
	return c.JSON(fiber.Map{"messages": messages})
}
