package i18n

// Display strings keyed by the identifiers the storefront UI consumes.
// The catalog itself emits data, never display text; these tables exist
// solely for the locale provider endpoint.
var messages = map[Locale]map[string]string{
	LocaleEN: {
		"loading":             "Loading...",
		"vrPrescriptionLenses": "VR Prescription Lenses",
		"customLensesForVR":   "Custom prescription lenses for your VR headset",
		"configure":           "Configure",
		"details":             "Details",
		"noProducts":          "No products available",
		"noProductsDesc":      "Products will appear here once they are added.",
		"addNewProduct":       "Add New Product",
		"productManagement":   "Product Management",
		"totalProducts":       "Total Products",
		"activeProducts":      "Active Products",
		"inactiveProducts":    "Inactive Products",
		"name":                "Name",
		"price":               "Price",
		"status":              "Status",
		"created":             "Created",
		"actions":             "Actions",
	},
	LocaleDE: {
		"loading":             "Wird geladen...",
		"vrPrescriptionLenses": "VR-Brillengläser",
		"customLensesForVR":   "Maßgefertigte Brillengläser für Ihr VR-Headset",
		"configure":           "Konfigurieren",
		"details":             "Details",
		"noProducts":          "Keine Produkte verfügbar",
		"noProductsDesc":      "Produkte erscheinen hier, sobald sie hinzugefügt wurden.",
		"addNewProduct":       "Neues Produkt hinzufügen",
		"productManagement":   "Produktverwaltung",
		"totalProducts":       "Produkte gesamt",
		"activeProducts":      "Aktive Produkte",
		"inactiveProducts":    "Inaktive Produkte",
		"name":                "Name",
		"price":               "Preis",
		"status":              "Status",
		"created":             "Erstellt",
		"actions":             "Aktionen",
	},
	// Austrian German only overrides where wording differs; the rest falls
	// back to de, then en.
	LocaleDEAT: {
		"loading":       "Wird geladen...",
		"addNewProduct": "Neues Produkt anlegen",
	},
	LocaleFR: {
		"loading":             "Chargement...",
		"vrPrescriptionLenses": "Verres correcteurs VR",
		"customLensesForVR":   "Verres correcteurs sur mesure pour votre casque VR",
		"configure":           "Configurer",
		"details":             "Détails",
		"noProducts":          "Aucun produit disponible",
		"noProductsDesc":      "Les produits apparaîtront ici une fois ajoutés.",
		"addNewProduct":       "Ajouter un produit",
		"productManagement":   "Gestion des produits",
		"totalProducts":       "Produits au total",
		"activeProducts":      "Produits actifs",
		"inactiveProducts":    "Produits inactifs",
		"name":                "Nom",
		"price":               "Prix",
		"status":              "Statut",
		"created":             "Créé",
		"actions":             "Actions",
	},
	LocaleES: {
		"loading":             "Cargando...",
		"vrPrescriptionLenses": "Lentes graduadas para VR",
		"customLensesForVR":   "Lentes graduadas a medida para tu visor VR",
		"configure":           "Configurar",
		"details":             "Detalles",
		"noProducts":          "No hay productos disponibles",
		"noProductsDesc":      "Los productos aparecerán aquí cuando se añadan.",
		"addNewProduct":       "Añadir producto",
		"productManagement":   "Gestión de productos",
		"totalProducts":       "Productos en total",
		"activeProducts":      "Productos activos",
		"inactiveProducts":    "Productos inactivos",
		"name":                "Nombre",
		"price":               "Precio",
		"status":              "Estado",
		"created":             "Creado",
		"actions":             "Acciones",
	},
}

// Messages returns the full message table for a locale. Missing keys fall
// back regionally (de-at -> de) and finally to en, so the returned map is
// always complete.
func Messages(locale Locale) map[string]string {
	base := messages[LocaleEN]
	out := make(map[string]string, len(base))
	for k, v := range base {
		out[k] = v
	}
	if locale == LocaleDEAT {
		for k, v := range messages[LocaleDE] {
			out[k] = v
		}
	}
	for k, v := range messages[locale] {
		out[k] = v
	}
	return out
}
