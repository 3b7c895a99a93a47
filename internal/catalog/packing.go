package catalog

// BasePackingItems go into every packing list regardless of traveler profile.
var BasePackingItems = []string{
	"🪪 Passport/ID", "🧾 Tickets/Itinerary", "💳 Cash & Cards", "📱 Phone & Charger",
	"💊 Medications", "🫙 Reusable Water Bottle", "🧴 Toothbrush & Paste", "🧼 Soap/Shower Gel",
	"🧻 Toiletries", "👕 Underwear", "🧦 Socks", "🩹 First Aid Kit", "🔌 Power Adapters",
}

// Weather gear added when the forecast triggers the matching condition.
var (
	RainPackingItems = []string{"🧥 Light Rain Jacket", "☂️ Umbrella", "👢 Waterproof Shoes"}
	SunPackingItems  = []string{"🧴 Sunscreen", "🧢 Hat/Cap", "🕶️ Sunglasses", "👕 Light Clothes"}
	ColdPackingItems = []string{"🧥 Warm Jacket", "🧣 Scarf", "🧤 Gloves", "👖 Warm Pants"}
)

// MoodPackingItems keyed by canonical mood.
var MoodPackingItems = map[string][]string{
	"adventurous": {"🥾 Hiking Shoes", "🎒 Daypack", "👕 Quick-dry Clothes", "🧭 Compass", "🔦 Flashlight"},
	"foodie":      {"🩹 Antacids", "🧻 Wet Wipes", "🍴 Travel Cutlery", "🥄 Spice Kit"},
	"family":      {"🍪 Snacks", "🎮 Travel Games", "📚 Books", "🎨 Coloring Supplies"},
	"relaxing":    {"🧴 Body Lotion", "🧺 Light Clothes", "📖 Reading Material", "🎧 Relaxing Music"},
	"romantic":    {"🕯️ Scented Essentials", "📸 Camera", "💐 Flowers", "🍷 Wine Opener"},
	"office trip": {"💻 Laptop", "🔌 Adapters", "👔 Formal Wear", "📄 Documents", "💼 Briefcase"},
}

// SupplementPackingItems top up lists shorter than the twenty item floor.
var SupplementPackingItems = []string{
	"🧳 Luggage", "🔑 Keys", "💼 Wallet", "📱 Phone Charger", "🔌 Power Bank",
	"📷 Camera", "🎧 Headphones", "📚 Reading Material", "🧴 Hand Sanitizer", "🩹 Bandages",
	"💊 Pain Relievers", "🧼 Face Wash", "🧴 Moisturizer", "👕 Extra Clothes", "👖 Extra Pants",
	"🧦 Extra Socks", "👟 Comfortable Shoes", "🧥 Jacket", "🧣 Scarf", "🧤 Gloves",
}

// Demographic packing sets. Infants and children are age-only; teen through
// senior brackets split by gender with an age-only fallback.
var (
	InfantPackingItems = []string{
		"🍼 Diapers", "👕 Baby Clothes", "🍼 Bottles", "💤 Pacifiers", "🎶 Rattles",
		"🧸 Soft Toys", "🛏️ Cradle", "🧴 Powder", "🌸 Lotion", "🧦 Socks",
		"🦷 Teething Rings", "🚼 Stroller", "🚿 Shampoo", "🍽️ Bibs", "🛌 Cushions",
		"🛏️ Blankets", "🎨 Cartoon Bedsheets", "🍴 Feeding Chair", "👟 Baby Shoes", "🦟 Mosquito Net",
	}
	ChildPackingItems = []string{
		"🎒 School Bag", "🥤 Bottle", "🍱 Lunch Box", "✏️ Crayons", "🎨 Coloring Books",
		"👟 Shoes", "🧸 Toys", "🚲 Bicycle", "📚 Story Books", "🧩 Puzzles",
		"🍫 Chocolate", "🍦 Ice Cream", "📺 Cartoon Shows", "🎭 Fancy Dress", "🎉 Caps",
		"🛏️ Cushions", "👕 Uniforms", "🌂 Umbrella", "🏸 Sports Kits", "⛓️ Swing Sets",
	}
	PreTeenPackingItems = []string{
		"🎒 School Bag", "📐 Geometry Box", "📓 Notebooks", "🖊️ Pens", "🚲 Bicycles",
		"🪢 Skipping Rope", "🎮 Video Games", "⌚ Kids Smartwatch", "🏏 Sports Uniforms", "👟 Shoes",
		"⌚ Fancy Watches", "📚 Comics", "🎨 Bedsheets", "🚗 RC Cars", "🎲 Board Games",
		"🍿 Popcorn", "🍼 Cartoon Bottles", "🎧 Headphones", "⛸️ Roller Skates", "🍦 Ice Creams",
	}
)

var FemalePackingItems = map[string][]string{
	"teen": {
		"🎒 Bags", "✏️ Stationery", "📱 Phones", "🎧 Earphones", "💄 Makeup Starter Kits",
		"👗 Hair Accessories", "👗 Casual Wear", "🏸 Sports Kits", "🚴‍♀️ Scooters", "📚 Books",
		"📱 Social Media Apps", "📖 Study Apps", "💍 Jewelry", "🧴 Skincare Basics", "🍱 Lunch Boxes",
		"👟 Sneakers", "📷 Cameras", "🎨 Hobby Kits", "🎮 Games", "👜 Trendy Handbags",
	},
	"young-adult": {
		"💻 Laptops", "📱 Smartphones", "👩‍💼 Office Wear", "👠 Heels", "🧘‍♀️ Fitness Gear",
		"🏋️‍♀️ Gym Wear", "🧳 Travel Bags", "💅 Skincare/Beauty", "🌸 Perfumes", "💎 Jewelry",
		"👰 Wedding Attire", "🍳 Cooking Gadgets", "⌚ Smartwatch", "💳 Cards", "🚗 Car",
		"🎬 OTT Subs", "📦 Online Shopping", "☕ Coffee Mugs", "📘 Books", "🍼 Parenting Items",
	},
	"mid-life": {
		"🍲 Kitchen Gadgets", "👗 Sarees", "🏠 Home Decor", "🚴‍♀️ Fitness Machines", "🧴 Anti-aging Creams",
		"👓 Spectacles", "📑 Insurance", "💊 Medicine Kits", "📚 Spiritual Books", "🌱 Gardening Tools",
		"🍳 Utensils", "💍 Ornaments", "🚙 Family Cars", "👜 Handbags", "👗 Saree Accessories",
		"🧘‍♀️ Meditation Mats", "📦 Household Organizers", "🧳 Travel Kits", "📖 Kids Books", "📲 WhatsApp Family Groups",
	},
	"senior": {
		"👗 Sarees/Cotton Dresses", "🧥 Shawls", "🚶‍♀️ Walking Stick", "👓 Reading Glasses", "💊 Medicine Box",
		"📖 Spiritual Books", "📿 Prayer Beads", "🍵 Herbal Teas", "🧶 Knitting Kits", "🪑 Rocking Chair",
		"📻 Radio", "📸 Photo Albums", "👡 Slippers", "🌿 Ayurvedic Oils", "📺 TV Remote",
		"🛕 Temple Visits", "🌼 Gardening", "🎶 Religious Songs", "👕 Saree Blouses", "👶 Toys for Grandchildren",
	},
}

var MalePackingItems = map[string][]string{
	"teen": {
		"🎒 School Bags", "⚽ Sports Kits", "🚴 Cycles", "📱 Phones", "🎧 Earphones",
		"🎮 Consoles", "👕 Jeans/T-shirts", "👟 Sneakers", "⌚ Watches", "🏋️ Gym Starter",
		"💻 Laptops", "🏍️ Bikes (Dreaming)", "🧢 Caps", "🕶️ Sunglasses", "🔋 Gadgets",
		"📚 Comics", "🎯 Online Games", "🎒 Backpacks", "🏀 Skateboards", "🍔 Fast Food",
	},
	"young-adult": {
		"👔 Formal Wear", "🤵 Blazers", "💻 Laptops", "📱 Smartphones", "🏋️ Gym Cards",
		"🧴 Perfumes", "🚗 Cars", "🏍️ Bikes", "🧾 Wallets", "💳 Cards",
		"⌚ Watches", "👞 Shoes", "💼 Office Bags", "🎧 Headphones", "🧳 Travel Bags",
		"🎬 OTT Subs", "📘 Coding Books", "☕ Coffee Mugs", "⌚ Smartwatch", "🎧 AirPods",
	},
	"mid-life": {
		"💻 Office Laptops", "🚘 Cars", "🏡 Home Loans", "👔 Suits", "⌚ Watches",
		"📑 Insurance", "🚴 Fitness Cycles", "📱 Smartphones", "🧾 School Fees", "📄 Newspapers",
		"🌍 Family Holidays", "💊 Medicines", "🧘 Yoga Mats", "👓 Spectacles", "👞 Shoes",
		"📲 Phone Apps", "🔋 Power Bank", "💰 Wallet", "🍱 Tiffin", "🪪 Office ID",
	},
	"senior": {
		"👕 Dhoti/Kurta", "👓 Spectacles", "💊 Medicine Box", "🚶 Walking Stick", "📻 Radio",
		"📖 Books", "📿 Prayer Items", "🌿 Ayurvedic Items", "🚲 Bicycle", "👡 Sandals",
		"🧥 Warm Clothes", "♟️ Games", "☕ Tea Items", "📸 Albums", "🛕 Religious Items",
		"🌱 Gardening Tools", "👶 Grandchildren Items", "🧴 Basic Toiletries", "👕 Clothes", "👖 Pants",
	},
}

var GeneralPackingItems = map[string][]string{
	"teen": {
		"🎒 School Bag", "📱 Phone", "🎧 Earphones", "👕 Casual Clothes", "👟 Sneakers",
		"⌚ Watch", "💻 Laptop", "🧢 Cap", "🕶️ Sunglasses", "🔋 Gadgets",
		"📚 Books", "🎮 Games", "🎒 Backpack", "🏀 Sports Gear", "🍔 Snacks",
		"🧼 Toiletries", "💳 Cards", "🔌 Chargers", "📷 Camera", "🎨 Hobby Items",
	},
	"young-adult": {
		"💻 Laptop", "📱 Smartphone", "👔 Formal Wear", "👞 Shoes", "🧴 Perfume",
		"🚗 Car Keys", "💳 Cards", "⌚ Watch", "💼 Bag", "🎧 Headphones",
		"🧳 Travel Bag", "📘 Books", "☕ Coffee Mug", "🔌 Adapters", "📷 Camera",
		"🧴 Skincare", "💊 Medicine", "🧻 Toiletries", "👕 Clothes", "👖 Pants",
	},
	"mid-life": {
		"💻 Office Laptop", "🚘 Car Keys", "👔 Suits", "⌚ Watch", "📑 Insurance",
		"🚴 Fitness Gear", "📱 Smartphone", "💊 Medicines", "🧘 Yoga Mat", "👓 Spectacles",
		"👞 Shoes", "📲 Phone Apps", "🔋 Power Bank", "💰 Wallet", "🍱 Food",
		"🪪 Office ID", "📄 Documents", "🧴 Skincare", "👕 Clothes", "👖 Pants",
	},
	"senior": {
		"👕 Traditional Wear", "👓 Spectacles", "💊 Medicine Box", "🚶 Walking Stick", "📻 Radio",
		"📖 Books", "📿 Prayer Items", "🌿 Ayurvedic Items", "🚲 Bicycle", "👡 Sandals",
		"🧥 Warm Clothes", "♟️ Games", "☕ Tea Items", "📸 Albums", "🛕 Religious Items",
		"🌱 Gardening Tools", "👶 Grandchildren Items", "🧴 Basic Toiletries", "👕 Clothes", "👖 Pants",
	},
}

// AgeBracket classifies an age into the demographic keys used above.
// Negative ages are treated as unknown.
func AgeBracket(age int) string {
	switch {
	case age < 0:
		return ""
	case age <= 3:
		return "infant"
	case age <= 9:
		return "child"
	case age <= 12:
		return "pre-teen"
	case age <= 20:
		return "teen"
	case age <= 35:
		return "young-adult"
	case age <= 50:
		return "mid-life"
	default:
		return "senior"
	}
}
