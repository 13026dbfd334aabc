package receipt

import (
	"math/rand/v2"
	"strconv"

	"github.com/google/uuid"
)

// Location is one known store, used as the source of truth when store info is
// randomized.
type Location struct {
	StoreNumber string `json:"store_number"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zip         string `json:"zip"`
	Phone       string `json:"phone"`
}

// StateZip returns the combined "ST 12345" form used on the receipt.
func (l Location) StateZip() string {
	return l.State + " " + l.Zip
}

// Locations is the immutable store location table.
var Locations = []Location{
	{"1151", "1151 STONECREST BLVD", "FORT MILL", "SC", "29708", "(803) 578-4140"},
	{"2377", "2377 DAVE LYLE BLVD", "ROCK HILL", "SC", "29730", "(803) 366-9431"},
	{"100", "100 WALMART WAY", "INDIAN LAND", "SC", "29707", "(803) 548-4000"},
	{"1151", "1151 STONECREST BLVD", "TEGA CAY", "SC", "29708", "(803) 578-4140"},
	{"6845", "6845 ALBEMARLE RD", "CHARLOTTE", "NC", "28212", "(704) 531-1000"},
	{"2401", "2401 E FRANKLIN BLVD", "GASTONIA", "NC", "28056", "(704) 866-7000"},
	{"14240", "14240 STEELE CREEK RD", "CHARLOTTE", "NC", "28273", "(704) 588-1000"},
	{"619", "619 E PLAZA DR", "MOORESVILLE", "NC", "28115", "(704) 663-1000"},
	{"150", "150 CONCORD COMMONS PL SW", "CONCORD", "NC", "28027", "(704) 788-3135"},
	{"2406", "2406 W ROOSEVELT BLVD", "MONROE", "NC", "28110", "(704) 289-5478"},
	{"1712", "1712 E DIXON BLVD", "SHELBY", "NC", "28152", "(704) 482-8581"},
	{"208", "208 NEW CUT RD", "SPARTANBURG", "SC", "29303", "(864) 574-4486"},
	{"1025", "1025 NE MAIN ST", "SIMPSONVILLE", "SC", "29681", "(864) 967-1464"},
	{"3451", "3451 PELHAM RD", "GREENVILLE", "SC", "29615", "(864) 288-3080"},
	{"1425", "1425 E GREENVILLE ST", "ANDERSON", "SC", "29621", "(864) 231-9777"},
	{"1665", "1665 W FLOYD BAKER BLVD", "GAFFNEY", "SC", "29341", "(864) 487-0403"},
	{"3812", "3812 HIGHWAY 93", "CLEMSON", "SC", "29631", "(864) 654-1577"},
	{"2100", "2100 HIGHWAY 221 S", "LAURENS", "SC", "29360", "(864) 984-0545"},
	{"1315", "1315 BUSH RIVER RD", "COLUMBIA", "SC", "29210", "(803) 772-0900"},
	{"5537", "5537 SUNSET BLVD", "LEXINGTON", "SC", "29072", "(803) 957-2920"},
}

// CatalogItem is one grocery product available to the receipt filler.
type CatalogItem struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// Catalog is the immutable grocery catalog.
var Catalog = []CatalogItem{
	{"GREAT VALUE MILK 1 GAL", "3.48"},
	{"BANANAS", "0.58"},
	{"GREAT VALUE BREAD", "0.97"},
	{"EGGS 12CT LARGE", "2.78"},
	{"GREAT VALUE BUTTER", "3.97"},
	{"GREAT VALUE WATER 24PK", "3.98"},
	{"APPLE GALA 3LB BAG", "4.27"},
	{"GREAT VALUE SUGAR", "2.24"},
	{"GREAT VALUE COFFEE", "3.92"},
	{"CEREAL CHEERIOS", "3.94"},
	{"CHICKEN BREAST 1LB", "4.94"},
	{"GROUND BEEF 1LB", "4.96"},
	{"POTATO RUSSET 5LB", "3.87"},
	{"ONIONS 3LB BAG", "2.57"},
	{"TOMATOES ON VINE", "1.98"},
	{"PASTA GREAT VALUE", "0.92"},
	{"PASTA SAUCE GV", "1.52"},
	{"PAPER TOWELS GV", "1.27"},
	{"TOILET PAPER GV 4CT", "3.27"},
	{"TIDE POD LAUNDRY", "4.94"},
	{"CLOROX BLEACH", "3.48"},
	{"DIAL SOAP 4PK", "3.27"},
	{"SHAMPOO SUAVE", "1.97"},
	{"TOOTHPASTE CREST", "3.24"},
	{"TOOTHBRUSH ORAL-B", "3.94"},
	{"PEPSI 12PK CANS", "5.98"},
	{"DR PEPPER 12PK", "5.98"},
	{"MOUNTAIN DEW 12PK", "5.98"},
	{"MINUTE MAID OJ", "2.68"},
	{"CHIPS LAYS", "3.48"},
	{"DORITOS NACHO", "3.48"},
	{"OREO COOKIES", "3.68"},
	{"ICE CREAM GV", "2.97"},
	{"YOGURT YOPLAIT 8PK", "5.44"},
	{"CHEESE KRAFT 8OZ", "2.68"},
	{"RITZ CRACKERS", "3.28"},
	{"PEANUT BUTTER JIF", "3.52"},
	{"GRAPE JELLY GV", "1.47"},
	{"TUNA CHUNK LIGHT", "0.82"},
	{"CEREAL FROSTED FLAKES", "3.94"},
	{"PEPPERS GREEN BELL", "0.68"},
	{"LETTUCE ICEBERG", "1.48"},
	{"CARROTS 1LB BAG", "1.24"},
	{"CUCUMBER", "0.62"},
	{"BROCCOLI CROWN", "1.87"},
	{"ZUCCHINI", "1.27"},
	{"STRAWBERRIES 16OZ", "2.97"},
	{"GRAPES RED 2LB", "4.87"},
	{"LEMON BAG", "3.47"},
	{"AVOCADO", "0.98"},
}

// fillTolerance is how close (in subtotal dollars) the filler tries to land
// to the target before stopping.
const fillTolerance = 0.50

// FillToTotal appends catalog items to the given list until the projected
// post-tax total approaches desiredTotal. The catalog is walked once in a
// random order; items priced above the remaining amount are skipped, so the
// target subtotal is never exceeded. Cheap items (< $2) get a quantity of 1-3
// while more than $10 remains. A final gap smaller than the catalog can close
// is accepted, not an error.
//
// The input slice is not modified; when nothing needs to be added it is
// returned as-is.
func FillToTotal(desiredTotal float64, items []LineItem, taxRatePercent string) []LineItem {
	target := desiredTotal / (1 + parseAmount(taxRatePercent)/100)
	remaining := target - Subtotal(items)
	if remaining <= 0 {
		return items
	}

	shuffled := make([]CatalogItem, len(Catalog))
	copy(shuffled, Catalog)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	out := make([]LineItem, len(items), len(items)+len(shuffled))
	copy(out, items)

	for _, cand := range shuffled {
		if remaining <= fillTolerance {
			break
		}
		price := parseAmount(cand.Price)
		if price > remaining {
			continue
		}

		qty := 1
		if price < 2 && remaining > 10 {
			qty = 1 + rand.IntN(3)
		}

		out = append(out, LineItem{
			ID:       uuid.NewString(),
			Name:     cand.Name,
			Price:    cand.Price,
			Quantity: strconv.Itoa(qty),
		})
		remaining -= price * float64(qty)
	}
	return out
}
