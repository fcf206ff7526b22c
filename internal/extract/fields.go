package extract

// Field cascades for French and English invoice text. Each list is
// tried in order; the first pattern whose last capture group is
// non-empty wins.
var (
	// The name capture stays on one line; a class with \s would swallow
	// the following label.
	buyerRules = []Rule{
		NewRule(`Client\s*:?[\s\n]*([A-Z][A-Za-z \-']+)`),
		NewRule(`Nom\s*:?[\s\n]*([A-Z][A-Za-z \-']+)`),
		NewRule(`Billed?\s*To\s*:?[\s\n]*([A-Z][A-Za-z \-']+)`),
	}

	totalRules     = []Rule{NewRule(`(?:Total\s*(?:TTC)?|Prix total)\s*:?\s*([\d.,]+)`)}
	taxRules       = []Rule{NewRule(`(?:TVA|Tax)\s*:?\s*([\d.,]+)`)}
	unitPriceRules = []Rule{NewRule(`Prix\s*(?:unitaire|par pièce)\s*:?\s*([\d.,]+)`)}

	invoiceDateRules = []Rule{
		NewRule(`Date\s*(?:de facturation|de livraison)?\s*:?\s*(\d{1,2}[/.\-]\d{1,2}[/.\-]\d{2,4})`),
	}

	invoiceRefRules = []Rule{NewRule(`Facture\s*(?:n°|numéro)?\s*:?[\s\n]*([A-Z0-9\-]+)`)}

	vendorNameRules = []Rule{
		NewRule(`Vendeur\s*:?[\s\n]*(.+)`),
		NewRule(`Société\s*:?[\s\n]*(.+)`),
	}
	vendorAddressRules = []Rule{NewRule(`Adresse\s*:?[\s\n]*(.+)`)}
	vendorCityRules    = []Rule{NewRule(`(?:Ville|Code postal)\s*:?[\s\n]*(.+)`)}
	vendorSIRETRules   = []Rule{NewRule(`SIRET\s*:?[\s\n]*([0-9 ]+)`)}
	vendorVATRules     = []Rule{NewRule(`TVA\s*(?:Intra)?\s*:?[\s\n]*([A-Z0-9 ]+)`)}
	vendorPhoneRules   = []Rule{
		NewRule(`Téléphone\s*:?[\s\n]*([+0-9 .]+)`),
		NewRule(`Tel\s*:?[\s\n]*([+0-9 .]+)`),
	}
	vendorEmailRules = []Rule{
		NewRule(`E[- ]?mail\s*:?[\s\n]*([a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-z]{2,})`),
	}
	vendorWebsiteRules = []Rule{
		NewRule(`(?:Site|Website)\s*:?[\s\n]*(https?://\S+)`),
		NewRule(`(?:Site|Website)\s*:?[\s\n]*([A-Za-z0-9.\-]+\.[a-z]{2,})`),
	}

	clientAddressRules = []Rule{
		NewRule(`Adresse client\s*:?[\s\n]*(.+)`),
		NewRule(`Adresse\s*:?[\s\n]*(.+)`),
	}
	clientCityRules = []Rule{
		NewRule(`Ville client\s*:?[\s\n]*(.+)`),
		NewRule(`(?:Code postal|Ville)\s*:?[\s\n]*(.+)`),
	}

	bankNameRules = []Rule{NewRule(`Banque\s*:?[\s\n]*(.+)`)}
	bankIBANRules = []Rule{NewRule(`IBAN\s*:?[\s\n]*([A-Z0-9 ]+)`)}
	bankBICRules  = []Rule{NewRule(`(?:BIC|SWIFT)\s*:?[\s\n]*([A-Z0-9]+)`)}

	dueDateRules = []Rule{
		NewRule(`Échéance\s*:?\s*(\d{1,2}[/.\-]\d{1,2}[/.\-]\d{2,4})`),
		NewRule(`Due\s*Date\s*:?\s*(\d{1,2}[/.\-]\d{1,2}[/.\-]\d{2,4})`),
	}
	paymentTermsRules = []Rule{
		NewRule(`Conditions?\s*de\s*paiement\s*:?\s*([A-Za-z0-9\s]+)`),
		NewRule(`Paiement\s*:?\s*([A-Za-z0-9\s]+)`),
		NewRule(`Payment\s*Terms\s*:?\s*([A-Za-z0-9\s]+)`),
	}
	referenceRules = []Rule{
		NewRule(`Référence\s*:?\s*([A-Z0-9\-]+)`),
		NewRule(`Ref\.?\s*:?\s*([A-Z0-9\-]+)`),
	}
	notesRules = []Rule{
		NewRule(`Informations?\s*additionnelles?\s*:?\s*([\s\S]+)`),
		NewRule(`Notes?\s*:?\s*([\s\S]+)`),
	}

	orderLineRules = []Rule{NewRule(`Commande\s*:?\s*(.*)`)}
)
