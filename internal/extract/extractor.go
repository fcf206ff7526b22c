package extract

import (
	"fmt"
	"log"
	"math"
	"regexp"
	"time"

	"facturo/internal/catalog"
	"facturo/internal/domain"
)

// Threshold for whole-document brand spotting.
const catalogThreshold = catalog.DefaultThreshold

// Stated totals further than this from the recomputed total get logged.
// The validator turns the same condition into a warning for callers.
const discrepancyTolerance = 1.0

// Extractor turns noisy recognized text into an InvoiceRecord. It never
// fails: missing fields get their documented fallbacks and a document
// with no recognizable order line simply yields an unusable record.
type Extractor struct {
	catalog *catalog.Catalog
	refs    RefSource
	now     func() time.Time
}

// Options configures an Extractor. Zero values select the default
// catalog, random refs and the wall clock.
type Options struct {
	Catalog *catalog.Catalog
	Refs    RefSource
	Now     func() time.Time
}

func New(opts Options) *Extractor {
	e := &Extractor{
		catalog: opts.Catalog,
		refs:    opts.Refs,
		now:     opts.Now,
	}
	if e.catalog == nil {
		e.catalog = catalog.Default()
	}
	if e.refs == nil {
		e.refs = randomRefSource{}
	}
	if e.now == nil {
		e.now = time.Now
	}
	return e
}

// Catalog returns the catalog the extractor resolves products against.
func (e *Extractor) Catalog() *catalog.Catalog {
	return e.catalog
}

// ExtractInvoiceRecord runs every field cascade over text, reconstructs
// line items and reconciles the totals. The subtotal is always
// recomputed from the surviving items; the stated total wins when
// present, otherwise subtotal plus tax.
func (e *Extractor) ExtractInvoiceRecord(text string) *domain.InvoiceRecord {
	buyer := String(text, buyerRules)
	if buyer == NotFound {
		buyer = "Unknown Customer"
	}

	statedTotal := Number(text, totalRules)
	tax := Number(text, taxRules)
	unitPrice := Number(text, unitPriceRules)

	invoiceDate := e.now()
	if s := String(text, invoiceDateRules); s != NotFound {
		if t, ok := parseDate(s); ok {
			invoiceDate = t
		}
	}

	var dueDate *time.Time
	if s := String(text, dueDateRules); s != NotFound {
		if t, ok := parseDate(s); ok {
			dueDate = &t
		}
	}

	items := e.lineItems(text, unitPrice, statedTotal)
	kept := items[:0]
	for _, it := range items {
		if it.Qty > 0 && it.UnitPrice > 0 {
			kept = append(kept, it)
		}
	}
	items = kept

	subtotal := 0.0
	for _, it := range items {
		subtotal += float64(it.Qty) * it.UnitPrice
	}

	total := statedTotal
	if total <= 0 {
		total = subtotal + tax
	} else if d := math.Abs(total - (subtotal + tax)); d > discrepancyTolerance {
		log.Printf("extract.Extractor: stated total %.2f differs from computed %.2f", total, subtotal+tax)
	}

	invoiceRef := String(text, invoiceRefRules)
	if invoiceRef == NotFound {
		invoiceRef = fmt.Sprintf("INV-%d", e.now().UnixMilli())
	}

	paymentTerms := String(text, paymentTermsRules)
	if paymentTerms == NotFound {
		paymentTerms = "À réception"
	}
	reference := String(text, referenceRules)
	if reference == NotFound {
		reference = ""
	}
	notes := String(text, notesRules)
	if notes == NotFound {
		notes = ""
	}

	return &domain.InvoiceRecord{
		BuyerName:   buyer,
		InvoiceRef:  invoiceRef,
		InvoiceDate: invoiceDate,
		Subtotal:    subtotal,
		Tax:         tax,
		Total:       total,
		Items:       items,
		Vendor: domain.VendorInfo{
			Name:      String(text, vendorNameRules),
			Address:   String(text, vendorAddressRules),
			City:      String(text, vendorCityRules),
			SIRET:     String(text, vendorSIRETRules),
			VATNumber: String(text, vendorVATRules),
			Phone:     String(text, vendorPhoneRules),
			Email:     String(text, vendorEmailRules),
			Website:   String(text, vendorWebsiteRules),
		},
		Client: domain.ClientInfo{
			Address: String(text, clientAddressRules),
			City:    String(text, clientCityRules),
		},
		Bank: domain.BankInfo{
			Bank: String(text, bankNameRules),
			IBAN: String(text, bankIBANRules),
			BIC:  String(text, bankBICRules),
		},
		DueDate:      dueDate,
		PaymentTerms: paymentTerms,
		Reference:    reference,
		Notes:        notes,
	}
}

var dateSepRe = regexp.MustCompile(`[.\-]`)

// parseDate handles day-first dates with /, . or - separators.
func parseDate(s string) (time.Time, bool) {
	s = dateSepRe.ReplaceAllString(s, "/")
	for _, layout := range []string{"2/1/2006", "2/1/06"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
