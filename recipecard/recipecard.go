// Package recipecard renders printable recipe cards and share QR codes.
package recipecard

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"

	"mongochef/models"
)

// QRSize is the edge of the QR image in pixels.
const QRSize = 256

// Link returns the public URL of a recipe.
func Link(publicURL, title string) string {
	return strings.TrimRight(publicURL, "/") + "/recipes/" + url.PathEscape(title)
}

// QR encodes the recipe link as a PNG.
func QR(publicURL string, recipe *models.Recipe) ([]byte, error) {
	png, err := qrcode.Encode(Link(publicURL, recipe.Title), qrcode.Medium, QRSize)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}

// PDF renders a one-page A4 card with the recipe and its share QR code.
func PDF(publicURL string, recipe *models.Recipe) ([]byte, error) {
	qrPNG, err := QR(publicURL, recipe)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	// core fonts are cp1252
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(recipe.Title, true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(130, 10, tr(strings.ToUpper(recipe.Title)))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Category: %s", recipe.Category.Name)))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Portions: %d", recipe.Portions))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Cooking time: %d min", recipe.CookingTime.Minutes()))
	pdf.Ln(10)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 155, 10, 40, 40, false, imageOpts, 0, "")

	section(pdf, "Ingredients")
	for _, usage := range recipe.Ingredients {
		line := fmt.Sprintf("- %s %s %s", formatQuantity(usage.Quantity), usage.Unit, usage.Ingredient.Name)
		pdf.Cell(0, 6, tr(line))
		pdf.Ln(6)
	}

	if len(recipe.KitchenTools) > 0 {
		section(pdf, "Kitchen tools")
		names := make([]string, len(recipe.KitchenTools))
		for i, tool := range recipe.KitchenTools {
			names[i] = tool.Name
		}
		pdf.MultiCell(0, 6, tr(strings.Join(names, ", ")), "", "L", false)
	}

	section(pdf, "Instructions")
	pdf.MultiCell(0, 6, tr(recipe.Instructions), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, title)
	pdf.Ln(9)
	pdf.SetFont("Arial", "", 11)
}

// formatQuantity drops trailing zeros: 2 -> "2", 0.5 -> "0.5".
func formatQuantity(q float64) string {
	return fmt.Sprintf("%g", q)
}

// Filename returns a download name such as "pancakes.pdf".
func Filename(title, ext string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r == ' ':
			return '-'
		case r == '/' || r == '\\' || r == '"':
			return -1
		}
		return r
	}, title)
	return url.PathEscape(slug) + "." + ext
}
