// Package documents turns a resolved project into printable PDF output.
// The drawing is deliberately linear: the selection core hands over a
// well-formed structure and never looks at document bytes.
package documents

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/hydroshield/specbuilder-backend/internal/catalog"
	"github.com/hydroshield/specbuilder-backend/internal/selection"
	"github.com/hydroshield/specbuilder-backend/internal/systems"
)

type ProjectInfo struct {
	Name    string
	Client  string
	Address string
	Date    time.Time
}

// AreaSection is one project area with its resolved system and the chosen
// bill-of-materials combination.
type AreaSection struct {
	Name        string
	System      selection.SystemRecord
	Combination systems.CombinationGroup
}

type SpecificationData struct {
	Project ProjectInfo
	Areas   []AreaSection
}

type WarrantyData struct {
	Project ProjectInfo
	Areas   []AreaSection
	Years   int
}

// BuildSpecification renders the project specification document.
func BuildSpecification(data SpecificationData) ([]byte, error) {
	pdf := newDoc("Product System Specification")

	writeProjectHeader(pdf, data.Project)

	for i, area := range data.Areas {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 8, fmt.Sprintf("%d. %s", i+1, area.Name), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, "System: "+area.System.Name, "", 1, "L", false, 0, "")

		for _, attrName := range attributeOrder() {
			v := area.System.AttributeValue(attrName)
			if v == nil {
				continue
			}
			line := fmt.Sprintf("%s: %s", catalog.Label(attrName), catalog.Label(v))
			pdf.CellFormat(0, 5, line, "", 1, "L", false, 0, "")
		}

		writeLayerTable(pdf, area.Combination)
	}

	return output(pdf)
}

// BuildWarranty renders the warranty certificate for the same data.
func BuildWarranty(data WarrantyData) ([]byte, error) {
	pdf := newDoc("Warranty Certificate")

	writeProjectHeader(pdf, data.Project)

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, fmt.Sprintf(
		"The waterproofing systems listed below are warranted for a period of %d years "+
			"from the date of practical completion, subject to installation per the "+
			"published specification.", data.Years), "", "L", false)

	for _, area := range data.Areas {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 6, area.Name, "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 5, fmt.Sprintf("%s (combination %d)", area.System.Name, area.Combination.Combination),
			"", 1, "L", false, 0, "")
	}

	return output(pdf)
}

func newDoc(title string) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(2)
	return pdf
}

func writeProjectHeader(pdf *fpdf.Fpdf, p ProjectInfo) {
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, "Project: "+p.Name, "", 1, "L", false, 0, "")
	if p.Client != "" {
		pdf.CellFormat(0, 5, "Client: "+p.Client, "", 1, "L", false, 0, "")
	}
	if p.Address != "" {
		pdf.CellFormat(0, 5, "Address: "+p.Address, "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 5, "Date: "+p.Date.Format("2 January 2006"), "", 1, "L", false, 0, "")
}

func writeLayerTable(pdf *fpdf.Fpdf, group systems.CombinationGroup) {
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Bill of materials (combination %d)", group.Combination), "", 1, "L", false, 0, "")

	if len(group.Products) == 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(0, 5, "No layers configured", "", 1, "L", false, 0, "")
		return
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(50, 6, "Layer", "1", 0, "L", false, 0, "")
	pdf.CellFormat(90, 6, "Product", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 6, "Distributor", "1", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, product := range group.Products {
		name := ""
		if product.Name != nil {
			name = *product.Name
		}
		pdf.CellFormat(50, 6, catalog.Label(product.Layer), "1", 0, "L", false, 0, "")
		pdf.CellFormat(90, 6, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, product.Distributor, "1", 1, "L", false, 0, "")
	}
}

func attributeOrder() []string {
	attrs := catalog.Attributes()
	names := make([]string, 0, len(attrs))
	for _, a := range attrs {
		names = append(names, a.Name)
	}
	return names
}

func output(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
