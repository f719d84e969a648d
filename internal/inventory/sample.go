package inventory

import (
	"github.com/jonathan/outfit-planner/internal/types"
)

// sampleRow mirrors the compact table layout below
type sampleRow struct {
	id        int
	name      string
	color     string
	style     string
	formality int
	weather   types.Suitability
}

var sampleTable = []struct {
	category types.Category
	rows     []sampleRow
}{
	{types.CategoryBaseLayer, []sampleRow{
		{1, "Cotton T-Shirt", "white", "casual", 4, "warm"},
		{2, "Dress Shirt", "blue", "formal", 8, "cool"},
		{3, "Polo Shirt", "navy", "casual", 5, "warm"},
		{4, "Sweater", "gray", "casual", 6, "cold"},
		{5, "Blouse", "pink", "formal", 7, "cool"},
		{6, "Tank Top", "black", "casual", 3, "hot"},
		{7, "Hoodie", "red", "sporty", 4, "cool"},
		{8, "Cardigan", "beige", "casual", 6, "cool"},
		{9, "Blazer", "black", "formal", 9, "cool"},
		{10, "Flannel Shirt", "green", "casual", 5, "cool"},
		{11, "Crop Top", "yellow", "casual", 3, "hot"},
		{12, "Turtle Neck", "brown", "casual", 6, "cold"},
		{13, "V-Neck Sweater", "purple", "casual", 5, "cool"},
		{14, "Button Down Shirt", "white", "formal", 7, "cool"},
		{15, "Long Sleeve Tee", "orange", "casual", 4, "cool"},
		{16, "Halter Top", "cream", "casual", 4, "hot"},
		{17, "Knit Top", "silver", "casual", 5, "cool"},
		{18, "Formal Shirt", "navy", "formal", 8, "cool"},
		{19, "Athletic Tank", "blue", "sporty", 3, "hot"},
		{20, "Peasant Blouse", "tan", "casual", 5, "warm"},
	}},
	{types.CategoryLowerLayer, []sampleRow{
		{101, "Jeans", "blue", "casual", 4, "cool"},
		{102, "Dress Pants", "black", "formal", 8, "cool"},
		{103, "Chinos", "beige", "casual", 6, "warm"},
		{104, "Shorts", "navy", "casual", 3, "hot"},
		{105, "Skirt", "gray", "formal", 7, "warm"},
		{106, "Leggings", "black", "sporty", 3, "cool"},
		{107, "Cargo Pants", "green", "casual", 4, "cool"},
		{108, "Joggers", "red", "sporty", 2, "cool"},
		{109, "Mini Skirt", "pink", "casual", 5, "warm"},
		{110, "Palazzo Pants", "white", "casual", 6, "hot"},
		{111, "Formal Trousers", "navy", "formal", 8, "cool"},
		{112, "Denim Skirt", "blue", "casual", 5, "warm"},
		{113, "Sweatpants", "gray", "sporty", 2, "cool"},
		{114, "Capri Pants", "brown", "casual", 4, "warm"},
		{115, "Pencil Skirt", "black", "formal", 8, "cool"},
	}},
	{types.CategoryOuterLayer, []sampleRow{
		{201, "Blazer", "navy", "formal", 8, "cool"},
		{202, "Leather Jacket", "black", "casual", 6, "cool"},
		{203, "Wool Coat", "brown", "formal", 7, "cold"},
		{204, "Denim Jacket", "blue", "casual", 5, "cool"},
		{205, "Cardigan", "gray", "casual", 5, "cool"},
		{206, "Bomber Jacket", "green", "casual", 5, "cool"},
		{207, "Peacoat", "black", "formal", 8, "cold"},
		{208, "Windbreaker", "red", "sporty", 4, "cool"},
		{209, "Trench Coat", "beige", "formal", 8, "cool"},
		{210, "Puffer Jacket", "navy", "casual", 4, "cold"},
		{211, "Kimono", "pink", "casual", 6, "warm"},
		{212, "Track Jacket", "white", "sporty", 3, "cool"},
	}},
	{types.CategoryFootwear, []sampleRow{
		{301, "Sneakers", "white", "casual", 3, "warm"},
		{302, "Dress Shoes", "black", "formal", 9, "cool"},
		{303, "Boots", "brown", "casual", 5, "cold"},
		{304, "Sandals", "beige", "casual", 2, "hot"},
		{305, "High Heels", "red", "formal", 8, "cool"},
		{306, "Loafers", "navy", "formal", 7, "cool"},
		{307, "Flip Flops", "blue", "casual", 1, "hot"},
		{308, "Athletic Shoes", "gray", "sporty", 3, "cool"},
		{309, "Ankle Boots", "black", "casual", 6, "cool"},
		{310, "Ballet Flats", "pink", "casual", 4, "warm"},
		{311, "Oxford Shoes", "brown", "formal", 8, "cool"},
		{312, "Wedges", "tan", "casual", 5, "warm"},
		{313, "Combat Boots", "black", "casual", 5, "cold"},
		{314, "Espadrilles", "cream", "casual", 4, "hot"},
		{315, "Running Shoes", "green", "sporty", 2, "cool"},
	}},
	{types.CategoryAccessory, []sampleRow{
		{401, "Watch", "silver", "formal", 7, "any"},
		{402, "Belt", "black", "formal", 6, "any"},
		{403, "Necklace", "gold", "formal", 6, "any"},
		{404, "Scarf", "red", "casual", 5, "cold"},
		{405, "Hat", "navy", "casual", 4, "any"},
		{406, "Sunglasses", "black", "casual", 5, "hot"},
		{407, "Bracelet", "silver", "casual", 4, "any"},
		{408, "Earrings", "gold", "formal", 6, "any"},
		{409, "Tie", "blue", "formal", 8, "any"},
		{410, "Handbag", "brown", "formal", 7, "any"},
		{411, "Backpack", "gray", "sporty", 3, "any"},
		{412, "Gloves", "black", "formal", 6, "cold"},
		{413, "Hair Band", "pink", "casual", 3, "any"},
		{414, "Bow Tie", "white", "formal", 9, "any"},
		{415, "Wallet Chain", "silver", "casual", 4, "any"},
		{416, "Brooch", "gold", "formal", 8, "any"},
		{417, "Ring", "silver", "formal", 5, "any"},
		{418, "Anklet", "gold", "casual", 3, "hot"},
	}},
}

// sampleUnavailable is the simulated laundry state applied to the sample wardrobe
var sampleUnavailable = []struct {
	id     int
	reason string
}{
	{2, "in laundry"},
	{104, "in laundry"},
	{203, "at dry cleaner"},
	{305, "broken heel"},
	{410, "left at office"},
	{8, "stained"},
	{108, "in laundry"},
	{302, "being repaired"},
}

// SampleWardrobe returns the built-in demo wardrobe: 80 items across all
// categories, 8 of them marked unavailable.
func SampleWardrobe() *Wardrobe {
	w := NewWardrobe()
	for _, group := range sampleTable {
		for _, r := range group.rows {
			item := types.Item{
				ID:        r.id,
				Name:      r.name,
				Category:  group.category,
				Color:     r.color,
				Style:     r.style,
				Formality: r.formality,
				Weather:   r.weather,
				Available: true,
			}
			if err := w.Add(item); err != nil {
				panic(err)
			}
		}
	}
	for _, u := range sampleUnavailable {
		if _, err := w.MarkUnavailable(u.id, u.reason); err != nil {
			panic(err)
		}
	}
	return w
}
