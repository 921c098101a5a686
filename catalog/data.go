package catalog

// Reference data. Modifiers are calibrated against the same documented
// reference setup as the engine's micron constants; treat them as fixed
// domain constants, not tunables.

var origins = []Origin{
	{ID: "ethiopia", Name: "Ethiopia", ExtractionModifier: -1.5, Characteristics: "Floral, tea-like, citrus; dense high-grown beans that resist extraction."},
	{ID: "kenya", Name: "Kenya", ExtractionModifier: -1, Characteristics: "Blackcurrant, winey acidity; dense SL cultivars."},
	{ID: "colombia", Name: "Colombia", ExtractionModifier: 0, Characteristics: "Caramel, red fruit, balanced; the classic espresso reference."},
	{ID: "guatemala", Name: "Guatemala", ExtractionModifier: -0.5, Characteristics: "Chocolate, apple acidity, medium density."},
	{ID: "costa-rica", Name: "Costa Rica", ExtractionModifier: -0.5, Characteristics: "Clean, honeyed sweetness, bright."},
	{ID: "brazil", Name: "Brazil", ExtractionModifier: 1, Characteristics: "Nutty, chocolatey, low acidity; softer low-grown beans extract easily."},
	{ID: "honduras", Name: "Honduras", ExtractionModifier: 0.5, Characteristics: "Sweet, round, mild acidity."},
	{ID: "peru", Name: "Peru", ExtractionModifier: 0.5, Characteristics: "Soft, sweet, gentle acidity."},
	{ID: "sumatra", Name: "Sumatra", ExtractionModifier: 1.5, Characteristics: "Earthy, herbal, heavy body; wet-hulled beans extract very easily."},
	{ID: "india", Name: "India", ExtractionModifier: 1, Characteristics: "Spicy, full-bodied, low acidity; common in traditional blends."},
}

var varietals = []Varietal{
	{ID: "bourbon", Name: "Bourbon", ExtractionModifier: 0, Characteristics: "Sweet, balanced, caramel."},
	{ID: "typica", Name: "Typica", ExtractionModifier: 0, Characteristics: "Clean, classic cup."},
	{ID: "caturra", Name: "Caturra", ExtractionModifier: 0.5, Characteristics: "Bright, citric, lighter body."},
	{ID: "catuai", Name: "Catuai", ExtractionModifier: 0.5, Characteristics: "Sweet, mild, dependable."},
	{ID: "geisha", Name: "Geisha", ExtractionModifier: -1.5, Characteristics: "Jasmine, bergamot, delicate; dense and extraction-shy."},
	{ID: "sl28", Name: "SL28", ExtractionModifier: -1, Characteristics: "Blackcurrant, intense acidity, very dense."},
	{ID: "pacamara", Name: "Pacamara", ExtractionModifier: -0.5, Characteristics: "Large beans, savory complexity."},
	{ID: "heirloom", Name: "Ethiopian Heirloom", ExtractionModifier: -1, Characteristics: "Mixed landraces, floral and fruited."},
}

var blendProfiles = []BlendProfile{
	{ID: "classic-italian", Name: "Classic Italian", ExtractionModifier: 1.5, Description: "Dark, often with robusta; built for crema and body, extracts easily."},
	{ID: "traditional", Name: "Traditional", ExtractionModifier: 1, Description: "Medium-dark arabica blend, chocolate-forward."},
	{ID: "modern-light", Name: "Modern Light", ExtractionModifier: -1, Description: "Lightly roasted blend aimed at clarity and acidity."},
	{ID: "balanced", Name: "Balanced House", ExtractionModifier: 0, Description: "Middle-of-the-road roast and composition."},
	{ID: "single-origin-espresso", Name: "Single Origin Espresso", ExtractionModifier: -0.5, Description: "One origin roasted for espresso; behaves closer to single-origin."},
}
