package catalog

// PlaceholderImage is served for products without dedicated artwork.
const PlaceholderImage = "/placeholder.svg"

type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	MinAmount   int64  `json:"minAmount"`
	MaxAmount   int64  `json:"maxAmount"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Featured    bool   `json:"featured"`
}

// Detail is the product page view: the catalog record plus purchase options.
// Features, AvailableAmounts, Rating and Reviews are empty for products
// without a curated page.
type Detail struct {
	Product
	Features         []string `json:"features,omitempty"`
	AvailableAmounts []int64  `json:"availableAmounts,omitempty"`
	Rating           float64  `json:"rating,omitempty"`
	Reviews          int      `json:"reviews,omitempty"`
}

// Seed returns a fresh copy of the storefront catalog.
func Seed() []Product {
	return []Product{
		{ID: "netflix", Name: "Netflix", Image: "/assets/netflix-card.jpg", MinAmount: 15, MaxAmount: 100, Category: "Entertainment", Description: "Stream unlimited movies and TV shows", Featured: true},
		{ID: "amazon", Name: "Amazon", Image: "/assets/amazon-card.jpg", MinAmount: 10, MaxAmount: 500, Category: "Shopping", Description: "Everything you need, delivered to your door", Featured: true},
		{ID: "google", Name: "Google Play", Image: "/assets/google-card.jpg", MinAmount: 5, MaxAmount: 200, Category: "Apps & Games", Description: "Apps, games, movies and more on Google Play", Featured: true},
		{ID: "spotify", Name: "Spotify", Image: "/assets/spotify-card.jpg", MinAmount: 10, MaxAmount: 60, Category: "Music", Description: "Listen to millions of songs and podcasts"},
		{ID: "steam", Name: "Steam", Image: "/assets/steam-card.jpg", MinAmount: 5, MaxAmount: 100, Category: "Gaming", Description: "The ultimate gaming platform"},
		{ID: "playstation", Name: "PlayStation", Image: "/assets/playstation-card.jpg", MinAmount: 10, MaxAmount: 100, Category: "Gaming", Description: "Games, add-ons and more for PlayStation"},
		{ID: "apple", Name: "Apple iTunes", Image: PlaceholderImage, MinAmount: 5, MaxAmount: 200, Category: "Apps & Games", Description: "Apps, music, movies and more from Apple", Featured: true},
		{ID: "xbox", Name: "Xbox", Image: PlaceholderImage, MinAmount: 10, MaxAmount: 100, Category: "Gaming", Description: "Xbox games and Live Gold membership"},
		{ID: "uber", Name: "Uber", Image: PlaceholderImage, MinAmount: 10, MaxAmount: 100, Category: "Transportation", Description: "Rides and food delivery with Uber"},
		{ID: "starbucks", Name: "Starbucks", Image: PlaceholderImage, MinAmount: 5, MaxAmount: 100, Category: "Food & Drinks", Description: "Coffee, tea and snacks at Starbucks"},
		{ID: "nike", Name: "Nike", Image: PlaceholderImage, MinAmount: 25, MaxAmount: 200, Category: "Fashion", Description: "Athletic wear and sneakers from Nike"},
		{ID: "target", Name: "Target", Image: PlaceholderImage, MinAmount: 10, MaxAmount: 200, Category: "Shopping", Description: "Everything you need at Target"},
		{ID: "walmart", Name: "Walmart", Image: PlaceholderImage, MinAmount: 10, MaxAmount: 200, Category: "Shopping", Description: "Save money, live better at Walmart"},
		{ID: "airbnb", Name: "Airbnb", Image: PlaceholderImage, MinAmount: 25, MaxAmount: 500, Category: "Travel", Description: "Unique stays and experiences worldwide"},
		{ID: "doordash", Name: "DoorDash", Image: PlaceholderImage, MinAmount: 10, MaxAmount: 100, Category: "Food & Drinks", Description: "Food delivery from your favorite restaurants"},
		{ID: "sephora", Name: "Sephora", Image: PlaceholderImage, MinAmount: 10, MaxAmount: 200, Category: "Beauty", Description: "Beauty products and cosmetics"},
		{ID: "bestbuy", Name: "Best Buy", Image: PlaceholderImage, MinAmount: 10, MaxAmount: 500, Category: "Electronics", Description: "Technology and electronics at Best Buy"},
		{ID: "roblox", Name: "Roblox", Image: PlaceholderImage, MinAmount: 10, MaxAmount: 100, Category: "Gaming", Description: "Robux for Roblox games and experiences"},
	}
}

type pageInfo struct {
	description string
	features    []string
	amounts     []int64
	rating      float64
	reviews     int
}

// curatedPages holds the long-form product page copy, keyed by product id.
var curatedPages = map[string]pageInfo{
	"netflix": {
		description: "Stream unlimited movies and TV shows with Netflix. Access thousands of titles across all genres.",
		features:    []string{"Unlimited streaming", "No ads on standard plan", "Download for offline viewing", "Multiple device support"},
		amounts:     []int64{15, 25, 50, 100},
		rating:      4.8,
		reviews:     2456,
	},
	"amazon": {
		description: "Everything you need, delivered to your door. Shop millions of products with Amazon gift cards.",
		features:    []string{"Millions of products", "Fast shipping", "Prime member benefits", "Digital and physical items"},
		amounts:     []int64{10, 25, 50, 100, 200, 500},
		rating:      4.9,
		reviews:     5432,
	},
	"google": {
		description: "Apps, games, movies and more on Google Play. Perfect for Android users.",
		features:    []string{"Apps and games", "Movies and TV shows", "Books and audiobooks", "In-app purchases"},
		amounts:     []int64{5, 10, 25, 50, 100, 200},
		rating:      4.7,
		reviews:     3241,
	},
	"spotify": {
		description: "Listen to millions of songs and podcasts with Spotify Premium.",
		features:    []string{"Ad-free music", "Download for offline", "High quality audio", "Unlimited skips"},
		amounts:     []int64{10, 30, 60},
		rating:      4.6,
		reviews:     1987,
	},
	"steam": {
		description: "The ultimate gaming platform. Buy games, DLC, and in-game items.",
		features:    []string{"Thousands of games", "Exclusive deals", "Workshop content", "Achievement system"},
		amounts:     []int64{5, 10, 20, 50, 100},
		rating:      4.8,
		reviews:     4123,
	},
	"playstation": {
		description: "Games, add-ons and more for PlayStation. Perfect for PS4 and PS5 owners.",
		features:    []string{"PS4 & PS5 games", "DLC and add-ons", "PlayStation Plus", "Digital movies"},
		amounts:     []int64{10, 25, 50, 100},
		rating:      4.7,
		reviews:     2876,
	},
}

func detailFor(p Product) Detail {
	d := Detail{Product: p}

	page, ok := curatedPages[p.ID]
	if !ok {
		return d
	}

	d.Description = page.description
	d.Features = append([]string(nil), page.features...)
	d.AvailableAmounts = append([]int64(nil), page.amounts...)
	d.Rating = page.rating
	d.Reviews = page.reviews
	return d
}
