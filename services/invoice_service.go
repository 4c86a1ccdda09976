package services

import (
	"bytes"
	"context"
	"html/template"
	"log"
	"time"

	config "github.com/alexvr-dev/code_tutors/configs"
	"github.com/alexvr-dev/code_tutors/database"
	"github.com/alexvr-dev/code_tutors/models"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// GenerateAndStoreInvoice renders an invoice PDF for a paid booking, uploads
// it and records the URL on the booking. Runs in the background; failures are
// logged and the booking simply keeps no invoice link.
func GenerateAndStoreInvoice(booking models.Booking) {
	htmlData, err := generateInvoiceHTML(booking)
	if err != nil {
		log.Printf("🔥 Failed to generate invoice HTML for booking %s: %v", booking.ID, err)
		return
	}

	pdfBytes, err := generatePDFFromHTML(htmlData)
	if err != nil {
		log.Printf("🔥 Failed to generate invoice PDF for booking %s: %v", booking.ID, err)
		return
	}

	uploadURL, err := uploadInvoicePDF(pdfBytes, booking.ID.String())
	if err != nil {
		log.Printf("🔥 Failed to upload invoice for booking %s: %v", booking.ID, err)
		return
	}

	booking.InvoiceURL = &uploadURL
	if err := database.DB.Model(&models.Booking{}).Where("id = ?", booking.ID).
		Update("invoice_url", uploadURL).Error; err != nil {
		log.Printf("🔥 Failed to store invoice URL for booking %s: %v", booking.ID, err)
		return
	}

	log.Printf("✅ Generated invoice for booking %s.", booking.ID)
}

func generateInvoiceHTML(booking models.Booking) (string, error) {
	tmpl, err := template.ParseFiles("templates/invoice.html")
	if err != nil {
		return "", err
	}

	data := struct {
		TuteeName  string
		TutorName  string
		Language   string
		DateTime   string
		Duration   string
		Price      string
		IssuedDate string
	}{
		TuteeName:  booking.Tutee.User.FullName(),
		TutorName:  booking.Tutor.User.FullName(),
		Language:   booking.Language,
		DateTime:   booking.DateTime.Format("2006-01-02 15:04"),
		Duration:   booking.Duration.String(),
		Price:      booking.Price.StringFixed(2),
		IssuedDate: time.Now().Format("January 2, 2006"),
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadInvoicePDF(pdfBytes []byte, bookingID string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	uploadResult, err := cld.Upload.Upload(context.Background(), bytes.NewReader(pdfBytes), uploader.UploadParams{
		PublicID:     "invoices/" + bookingID,
		ResourceType: "raw",
	})
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
