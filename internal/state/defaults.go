package state

import "github.com/mmynk/agencydesk/internal/models"

// DefaultTerms is the terms text used when no template is chosen.
const DefaultTerms = `1. Validez de la oferta: 15 días hábiles.
2. Forma de pago: 50% anticipo, 50% contra entrega.
3. Valores netos, no incluyen IVA.
4. Tiempos de entrega sujetos a disponibilidad de información por parte del cliente.`

// QuoteValidityDays is how long a new quote stays valid.
const QuoteValidityDays = 15

// DefaultSettings is the company profile used until one is saved.
func DefaultSettings() models.Settings {
	return models.Settings{
		CompanyName:   "Liu Digital Agency",
		RUT:           "76.123.456-K",
		Address:       "Av. Providencia 1234, Of 601, Santiago",
		LogoURL:       "https://picsum.photos/100/100",
		ContactEmail:  "contacto@liu.cl",
		CapacityHours: 160,
	}
}

// DefaultTermTemplates are the templates offered on first run.
func DefaultTermTemplates() []models.TermTemplate {
	return []models.TermTemplate{
		{ID: "1", Name: "General", Content: DefaultTerms},
		{ID: "2", Name: "Diseño Web", Content: "Términos y Condiciones para Diseño Web:\n- Se requiere un 50% de anticipo.\n- El cliente debe proveer todo el contenido (textos e imágenes).\n- Se incluyen 2 rondas de revisiones."},
		{ID: "3", Name: "Marketing", Content: "Términos y Condiciones para Marketing Digital:\n- Contrato mínimo de 3 meses.\n- El pago es mensual y por adelantado.\n- Los resultados pueden variar."},
	}
}

// DefaultSnapshot is the state of a fresh installation.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Settings:      DefaultSettings(),
		Costs:         []models.Cost{},
		Services:      []models.Service{},
		Clients:       []models.Client{},
		Quotes:        []models.Quote{},
		Assets:        []models.Asset{},
		MonthlySales:  []models.MonthlySale{},
		TermTemplates: DefaultTermTemplates(),
	}
}
