package store

import "github.com/mountainmixology/cocktail-catering/internal/model"

// SeedCocktails loads the signature cocktail menu into the store. The
// catalogue is fixed marketing content; it is seeded at process start
// and never mutated by request handlers.
func SeedCocktails(s *CocktailStore) {
	for _, c := range []model.InsertCocktail{
		{
			Name:        "Alpine Botanist",
			Description: "Alberta premium gin, elderflower liqueur, fresh foraged spruce tips, mountain spring water, and a hint of local wildflower honey, served over crystal-clear ice with a pine garnish.",
			BaseSpirit:  "Alberta Gin",
			ImageURL:    "https://pixabay.com/get/g9c4a7ec9bd557c3eaac00eefd972beb8924c22aa69b2a4a4e160d88b066a1d1d83093231c082857f70589a6b92a6ee94f9df8094363d47b4b560812c51358424_1280.jpg",
			Featured:    true,
		},
		{
			Name:        "Rocky Mountain Old Fashioned",
			Description: "Canadian rye whisky, Alberta wildflower honey, local birch bitters, and applewood smoke, garnished with a cedar-smoked orange peel and a whisky-soaked saskatoon berry.",
			BaseSpirit:  "Canadian Whisky",
			ImageURL:    "https://images.unsplash.com/photo-1470337458703-46ad1756a187?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
			Featured:    true,
		},
		{
			Name:        "Bow Valley Sunset",
			Description: "Premium white rum, locally-foraged berry cordial, fresh mountain berry juice, and lime, topped with a spruce tip and edible wildflowers from the Bow Valley region.",
			BaseSpirit:  "Premium Rum",
			ImageURL:    "https://images.unsplash.com/photo-1536935338788-846bb9981813?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
			Featured:    true,
		},
		{
			Name:        "Canmore Frost Martini",
			Description: "Locally-distilled vodka, dry vermouth, and a touch of glacier water with pine essence, served straight up in a chilled martini glass rimmed with local mountain salt.",
			BaseSpirit:  "Alberta Vodka",
			ImageURL:    "https://pixabay.com/get/gfd907d660cc37c063cea7f0952bc79a647077238e1bf6a1025f13ddfef654ee5e1bd28975db21dc21a1ca87e4777676ef96bf014922e38a299ad244fbec1acac_1280.jpg",
			Featured:    true,
		},
		{
			Name:        "Mountain Fire",
			Description: "Premium tequila, fresh lime, house-made fireweed syrup, local ginger, and a dash of alpine pepper tincture, served over ice with a black salt rim and dehydrated lime.",
			BaseSpirit:  "Premium Tequila",
			ImageURL:    "https://images.unsplash.com/photo-1587223962930-cb7f31384c19?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
			Featured:    true,
		},
		{
			Name:        "Banff Bubbles",
			Description: "Canadian sparkling wine, locally-foraged berry liqueur, fresh saskatoon berry purée, and a touch of mountain honey, garnished with an edible flower from the Rockies.",
			BaseSpirit:  "Canadian Sparkling Wine",
			ImageURL:    "https://images.unsplash.com/photo-1560963689-b5682b6440f8?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
			Featured:    true,
		},
	} {
		s.Create(c)
	}
}
