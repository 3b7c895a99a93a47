package catalog

// Locations is the country -> state -> cities picker data served by the
// locations endpoint.
var Locations = map[string]map[string][]string{
	"India": {
		"Andhra Pradesh":    {"Visakhapatnam", "Vijayawada", "Guntur", "Tirupati", "Kurnool"},
		"Arunachal Pradesh": {"Itanagar", "Tawang", "Pasighat", "Ziro", "Bomdila"},
		"Assam":             {"Guwahati", "Silchar", "Dibrugarh", "Jorhat", "Tezpur"},
		"Bihar":             {"Patna", "Gaya", "Bhagalpur", "Muzaffarpur", "Purnia"},
		"Chhattisgarh":      {"Raipur", "Bhilai", "Bilaspur", "Korba", "Durg"},
		"Delhi":             {"New Delhi", "Dwarka", "Saket", "Karol Bagh", "Connaught Place"},
		"Goa":               {"Panaji", "Margao", "Vasco da Gama", "Mapusa", "Ponda"},
		"Gujarat":           {"Ahmedabad", "Surat", "Vadodara", "Rajkot", "Bhavnagar"},
		"Haryana":           {"Gurugram", "Faridabad", "Panipat", "Ambala", "Hisar"},
		"Himachal Pradesh":  {"Shimla", "Manali", "Dharamshala", "Solan", "Mandi"},
		"Jammu and Kashmir": {"Srinagar", "Jammu", "Anantnag", "Baramulla", "Leh"},
		"Jharkhand":         {"Ranchi", "Jamshedpur", "Dhanbad", "Bokaro", "Hazaribagh"},
		"Karnataka":         {"Bengaluru", "Mysuru", "Mangaluru", "Hubballi", "Belagavi"},
		"Kerala":            {"Thiruvananthapuram", "Kochi", "Kozhikode", "Thrissur", "Kollam"},
		"Madhya Pradesh":    {"Indore", "Bhopal", "Gwalior", "Jabalpur", "Ujjain"},
		"Maharashtra":       {"Mumbai", "Pune", "Nagpur", "Nashik", "Aurangabad"},
		"Manipur":           {"Imphal", "Thoubal", "Bishnupur"},
		"Meghalaya":         {"Shillong", "Tura", "Jowai"},
		"Mizoram":           {"Aizawl", "Lunglei", "Saiha"},
		"Nagaland":          {"Kohima", "Dimapur", "Mokokchung"},
		"Odisha": {
			"Bhubaneswar", "Cuttack", "Puri", "Rourkela", "Sambalpur", "Balasore",
			"Berhampur", "Baripada", "Jharsuguda", "Jeypore", "Bhadrak", "Kendrapara",
			"Dhenkanal", "Angul", "Koraput",
		},
		"Punjab":        {"Amritsar", "Ludhiana", "Jalandhar", "Patiala", "Bathinda"},
		"Rajasthan":     {"Jaipur", "Udaipur", "Jodhpur", "Kota", "Ajmer"},
		"Sikkim":        {"Gangtok", "Namchi", "Gyalshing"},
		"Tamil Nadu":    {"Chennai", "Coimbatore", "Madurai", "Tiruchirappalli", "Salem"},
		"Telangana":     {"Hyderabad", "Warangal", "Nizamabad", "Khammam", "Karimnagar"},
		"Tripura":       {"Agartala", "Udaipur", "Dharmanagar"},
		"Uttar Pradesh": {"Lucknow", "Kanpur", "Varanasi", "Agra", "Noida"},
		"Uttarakhand":   {"Dehradun", "Haridwar", "Rishikesh", "Haldwani", "Roorkee"},
		"West Bengal":   {"Kolkata", "Howrah", "Durgapur", "Siliguri", "Asansol"},
		"Andaman and Nicobar Islands":                {"Port Blair", "Havelock Island", "Neil Island"},
		"Chandigarh":                                 {"Chandigarh"},
		"Dadra and Nagar Haveli and Daman and Diu":   {"Daman", "Diu", "Silvassa"},
		"Ladakh":      {"Leh", "Kargil"},
		"Lakshadweep": {"Kavaratti", "Agatti"},
		"Puducherry":  {"Puducherry", "Karaikal", "Mahe", "Yanam"},
	},
	"United States": {
		"California": {"Los Angeles", "San Francisco", "San Diego", "Sacramento", "San Jose"},
		"New York":   {"New York", "Buffalo", "Rochester", "Albany"},
		"Texas":      {"Houston", "Austin", "Dallas", "San Antonio"},
		"Florida":    {"Miami", "Orlando", "Tampa", "Jacksonville"},
		"Illinois":   {"Chicago", "Springfield", "Naperville"},
		"Washington": {"Seattle", "Spokane", "Tacoma"},
	},
	"United Kingdom": {
		"England":          {"London", "Manchester", "Birmingham", "Liverpool", "Leeds"},
		"Scotland":         {"Edinburgh", "Glasgow", "Aberdeen", "Inverness"},
		"Wales":            {"Cardiff", "Swansea", "Newport"},
		"Northern Ireland": {"Belfast", "Derry", "Lisburn"},
	},
	"Canada": {
		"Ontario":          {"Toronto", "Ottawa", "Mississauga", "Hamilton"},
		"British Columbia": {"Vancouver", "Victoria", "Kelowna", "Surrey"},
		"Quebec":           {"Montreal", "Quebec City", "Laval"},
		"Alberta":          {"Calgary", "Edmonton", "Banff"},
	},
	"Australia": {
		"New South Wales":   {"Sydney", "Newcastle", "Wollongong"},
		"Victoria":          {"Melbourne", "Geelong", "Ballarat"},
		"Queensland":        {"Brisbane", "Gold Coast", "Cairns"},
		"Western Australia": {"Perth", "Fremantle"},
		"South Australia":   {"Adelaide"},
	},
	"Japan": {
		"Tokyo":    {"Tokyo"},
		"Osaka":    {"Osaka"},
		"Kyoto":    {"Kyoto"},
		"Hokkaido": {"Sapporo"},
		"Okinawa":  {"Naha"},
	},
	"France": {
		"Île-de-France":              {"Paris", "Versailles"},
		"Provence-Alpes-Côte d'Azur": {"Nice", "Marseille", "Cannes"},
		"Auvergne-Rhône-Alpes":       {"Lyon", "Annecy"},
	},
	"Germany": {
		"Bavaria":                {"Munich", "Nuremberg"},
		"Berlin":                 {"Berlin"},
		"Hesse":                  {"Frankfurt"},
		"North Rhine-Westphalia": {"Cologne", "Düsseldorf"},
	},
	"Italy": {
		"Lazio":    {"Rome"},
		"Lombardy": {"Milan"},
		"Campania": {"Naples"},
		"Veneto":   {"Venice", "Verona"},
	},
	"Spain": {
		"Community of Madrid": {"Madrid"},
		"Catalonia":           {"Barcelona", "Girona"},
		"Andalusia":           {"Seville", "Malaga", "Granada"},
	},
	"United Arab Emirates": {
		"Dubai":     {"Dubai"},
		"Abu Dhabi": {"Abu Dhabi"},
		"Sharjah":   {"Sharjah"},
	},
	"Singapore": {
		"Singapore": {"Singapore"},
	},
}

// MoodInterests drives the interest suggestions in the picker UI.
var MoodInterests = map[string][]string{
	"Foodie":      {"Street Food", "Fine Dining", "Local Markets", "Cooking Classes", "Beverage Tours", "Food Shopping"},
	"Relaxing":    {"Nature Walks", "Beach/Sunset Views", "Spa & Wellness", "Scenic Drives", "Art & Culture", "Light Shopping"},
	"Adventure":   {"Trekking", "Water Sports", "Camping", "Wildlife Safari", "Extreme Sports", "Caving/Exploring"},
	"Family":      {"Nature Parks", "Amusement Parks", "Cultural Shows", "Shopping", "Family Restaurants", "Light Adventure"},
	"Romantic":    {"Sunset Points", "Candlelight Dinners", "Beaches", "Scenic Views", "Art & Culture", "Nature Walks"},
	"Office Trip": {"Team-Building Activities", "City Tours", "Workshops & Seminars", "Fine Dining", "Shopping", "Business Centers"},
}
