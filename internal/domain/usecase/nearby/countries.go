package nearby

import (
	"strings"

	"weather-dashboard/internal/domain/entity"
)

// countryNames holds the display names of the countries the dashboard knows
var countryNames = map[string]string{
	"ID": "Indonesia",
	"US": "United States",
	"GB": "United Kingdom",
	"JP": "Japan",
	"AU": "Australia",
	"FR": "France",
	"DE": "Germany",
	"CN": "China",
	"IN": "India",
	"SG": "Singapore",
	"MY": "Malaysia",
	"TH": "Thailand",
	"PH": "Philippines",
	"KR": "South Korea",
	"VN": "Vietnam",
	"CA": "Canada",
	"BR": "Brazil",
	"MX": "Mexico",
	"IT": "Italy",
	"ES": "Spain",
	"NL": "Netherlands",
	"BE": "Belgium",
	"CH": "Switzerland",
	"AT": "Austria",
	"SE": "Sweden",
	"NO": "Norway",
	"DK": "Denmark",
	"FI": "Finland",
	"PL": "Poland",
	"RU": "Russia",
	"TR": "Turkey",
	"SA": "Saudi Arabia",
	"AE": "UAE",
	"EG": "Egypt",
	"ZA": "South Africa",
	"NG": "Nigeria",
	"AR": "Argentina",
	"CL": "Chile",
	"PE": "Peru",
	"CO": "Colombia",
	"NZ": "New Zealand",
	"PT": "Portugal",
	"GR": "Greece",
	"CZ": "Czech Republic",
	"HU": "Hungary",
	"RO": "Romania",
	"UA": "Ukraine",
	"IL": "Israel",
	"PK": "Pakistan",
	"BD": "Bangladesh",
	"LK": "Sri Lanka",
	"MM": "Myanmar",
	"KH": "Cambodia",
	"LA": "Laos",
	"NP": "Nepal",
	"IE": "Ireland",
}

var capitals = map[string]string{
	"ID": "Jakarta",
	"US": "Washington",
	"GB": "London",
	"JP": "Tokyo",
	"AU": "Canberra",
	"FR": "Paris",
	"DE": "Berlin",
	"CN": "Beijing",
	"IN": "New Delhi",
	"SG": "Singapore",
	"MY": "Kuala Lumpur",
	"TH": "Bangkok",
	"PH": "Manila",
	"KR": "Seoul",
	"VN": "Hanoi",
	"CA": "Ottawa",
	"BR": "Brasilia",
	"MX": "Mexico City",
	"IT": "Rome",
	"ES": "Madrid",
	"NL": "Amsterdam",
	"BE": "Brussels",
	"CH": "Bern",
	"AT": "Vienna",
	"SE": "Stockholm",
	"NO": "Oslo",
	"DK": "Copenhagen",
	"FI": "Helsinki",
	"PL": "Warsaw",
	"RU": "Moscow",
	"TR": "Ankara",
	"SA": "Riyadh",
	"AE": "Abu Dhabi",
	"EG": "Cairo",
	"ZA": "Pretoria",
	"NG": "Abuja",
	"AR": "Buenos Aires",
	"CL": "Santiago",
	"PE": "Lima",
	"CO": "Bogota",
	"NZ": "Wellington",
	"PT": "Lisbon",
	"GR": "Athens",
	"CZ": "Prague",
	"HU": "Budapest",
	"RO": "Bucharest",
	"UA": "Kyiv",
	"IL": "Jerusalem",
	"PK": "Islamabad",
	"BD": "Dhaka",
	"LK": "Colombo",
	"MM": "Naypyidaw",
	"KH": "Phnom Penh",
	"LA": "Vientiane",
	"NP": "Kathmandu",
	"IE": "Dublin",
}

// majorCities lists the capital first, then other major cities by size
var majorCities = map[string][]entity.NearbyCity{
	"ID": {
		city("Jakarta", "ID", -6.2088, 106.8456),
		city("Surabaya", "ID", -7.2575, 112.7521),
		city("Bandung", "ID", -6.9175, 107.6191),
		city("Medan", "ID", 3.5952, 98.6722),
		city("Semarang", "ID", -6.9667, 110.4167),
		city("Makassar", "ID", -5.1477, 119.4327),
		city("Palembang", "ID", -2.9761, 104.7754),
		city("Denpasar", "ID", -8.6705, 115.2126),
		city("Yogyakarta", "ID", -7.7956, 110.3695),
		city("Balikpapan", "ID", -1.2379, 116.8529),
	},
	"US": {
		city("Washington", "US", 38.9072, -77.0369),
		city("New York", "US", 40.7128, -74.006),
		city("Los Angeles", "US", 34.0522, -118.2437),
		city("Chicago", "US", 41.8781, -87.6298),
		city("Houston", "US", 29.7604, -95.3698),
		city("Phoenix", "US", 33.4484, -112.074),
		city("Philadelphia", "US", 39.9526, -75.1652),
		city("San Francisco", "US", 37.7749, -122.4194),
		city("Seattle", "US", 47.6062, -122.3321),
		city("Miami", "US", 25.7617, -80.1918),
	},
	"GB": {
		city("London", "GB", 51.5074, -0.1278),
		city("Manchester", "GB", 53.4808, -2.2426),
		city("Birmingham", "GB", 52.4862, -1.8904),
		city("Glasgow", "GB", 55.8642, -4.2518),
		city("Liverpool", "GB", 53.4084, -2.9916),
		city("Edinburgh", "GB", 55.9533, -3.1883),
		city("Leeds", "GB", 53.8008, -1.5491),
		city("Bristol", "GB", 51.4545, -2.5879),
		city("Cardiff", "GB", 51.4816, -3.1791),
		city("Belfast", "GB", 54.5973, -5.9301),
	},
	"JP": {
		city("Tokyo", "JP", 35.6762, 139.6503),
		city("Osaka", "JP", 34.6937, 135.5023),
		city("Yokohama", "JP", 35.4437, 139.638),
		city("Nagoya", "JP", 35.1815, 136.9066),
		city("Sapporo", "JP", 43.0618, 141.3545),
		city("Fukuoka", "JP", 33.5904, 130.4017),
		city("Kobe", "JP", 34.6901, 135.1955),
		city("Kyoto", "JP", 35.0116, 135.7681),
		city("Sendai", "JP", 38.2682, 140.8694),
		city("Hiroshima", "JP", 34.3853, 132.4553),
	},
	"AU": {
		city("Canberra", "AU", -35.2809, 149.13),
		city("Sydney", "AU", -33.8688, 151.2093),
		city("Melbourne", "AU", -37.8136, 144.9631),
		city("Brisbane", "AU", -27.4698, 153.0251),
		city("Perth", "AU", -31.9505, 115.8605),
		city("Adelaide", "AU", -34.9285, 138.6007),
		city("Gold Coast", "AU", -28.0167, 153.4),
		city("Hobart", "AU", -42.8821, 147.3272),
		city("Darwin", "AU", -12.4634, 130.8456),
	},
	"FR": {
		city("Paris", "FR", 48.8566, 2.3522),
		city("Marseille", "FR", 43.2965, 5.3698),
		city("Lyon", "FR", 45.764, 4.8357),
		city("Toulouse", "FR", 43.6047, 1.4442),
		city("Nice", "FR", 43.7102, 7.262),
		city("Nantes", "FR", 47.2184, -1.5536),
		city("Strasbourg", "FR", 48.5734, 7.7521),
		city("Bordeaux", "FR", 44.8378, -0.5792),
		city("Lille", "FR", 50.6292, 3.0573),
	},
	"DE": {
		city("Berlin", "DE", 52.52, 13.405),
		city("Hamburg", "DE", 53.5511, 9.9937),
		city("Munich", "DE", 48.1351, 11.582),
		city("Cologne", "DE", 50.9375, 6.9603),
		city("Frankfurt", "DE", 50.1109, 8.6821),
		city("Stuttgart", "DE", 48.7758, 9.1829),
		city("Düsseldorf", "DE", 51.2277, 6.7735),
		city("Leipzig", "DE", 51.3397, 12.3731),
		city("Dresden", "DE", 51.0504, 13.7373),
		city("Hanover", "DE", 52.3759, 9.732),
	},
	"CN": {
		city("Beijing", "CN", 39.9042, 116.4074),
	},
	"IN": {
		city("New Delhi", "IN", 28.6139, 77.209),
		city("Mumbai", "IN", 19.076, 72.8777),
		city("Bengaluru", "IN", 12.9716, 77.5946),
		city("Kolkata", "IN", 22.5726, 88.3639),
		city("Chennai", "IN", 13.0827, 80.2707),
		city("Hyderabad", "IN", 17.385, 78.4867),
		city("Ahmedabad", "IN", 23.0225, 72.5714),
		city("Pune", "IN", 18.5204, 73.8567),
		city("Jaipur", "IN", 26.9124, 75.7873),
	},
	"SG": {
		city("Singapore", "SG", 1.3521, 103.8198),
	},
	"MY": {
		city("Kuala Lumpur", "MY", 3.139, 101.6869),
	},
	"TH": {
		city("Bangkok", "TH", 13.7563, 100.5018),
	},
	"PH": {
		city("Manila", "PH", 14.5995, 120.9842),
	},
	"KR": {
		city("Seoul", "KR", 37.5665, 126.978),
	},
	"VN": {
		city("Hanoi", "VN", 21.0278, 105.8342),
	},
	"CA": {
		city("Ottawa", "CA", 45.4215, -75.6972),
	},
	"BR": {
		city("Brasilia", "BR", -15.7975, -47.8919),
		city("São Paulo", "BR", -23.5505, -46.6333),
		city("Rio de Janeiro", "BR", -22.9068, -43.1729),
		city("Salvador", "BR", -12.9777, -38.5016),
		city("Fortaleza", "BR", -3.7319, -38.5267),
		city("Belo Horizonte", "BR", -19.9167, -43.9345),
		city("Manaus", "BR", -3.119, -60.0217),
		city("Curitiba", "BR", -25.4284, -49.2733),
		city("Recife", "BR", -8.0476, -34.877),
		city("Porto Alegre", "BR", -30.0346, -51.2177),
	},
	"MX": {
		city("Mexico City", "MX", 19.4326, -99.1332),
	},
	"IT": {
		city("Rome", "IT", 41.9028, 12.4964),
	},
	"ES": {
		city("Madrid", "ES", 40.4168, -3.7038),
	},
	"NL": {
		city("Amsterdam", "NL", 52.3676, 4.9041),
	},
	"BE": {
		city("Brussels", "BE", 50.8503, 4.3517),
	},
	"CH": {
		city("Bern", "CH", 46.948, 7.4474),
	},
	"AT": {
		city("Vienna", "AT", 48.2082, 16.3738),
	},
	"SE": {
		city("Stockholm", "SE", 59.3293, 18.0686),
	},
	"NO": {
		city("Oslo", "NO", 59.9139, 10.7522),
	},
	"DK": {
		city("Copenhagen", "DK", 55.6761, 12.5683),
	},
	"FI": {
		city("Helsinki", "FI", 60.1699, 24.9384),
	},
	"PL": {
		city("Warsaw", "PL", 52.2297, 21.0122),
	},
	"RU": {
		city("Moscow", "RU", 55.7558, 37.6173),
	},
	"TR": {
		city("Ankara", "TR", 39.9334, 32.8597),
	},
	"SA": {
		city("Riyadh", "SA", 24.7136, 46.6753),
	},
	"AE": {
		city("Abu Dhabi", "AE", 24.4539, 54.3773),
	},
	"EG": {
		city("Cairo", "EG", 30.0444, 31.2357),
	},
	"ZA": {
		city("Pretoria", "ZA", -25.7479, 28.2293),
	},
	"NG": {
		city("Abuja", "NG", 9.0765, 7.3986),
	},
	"AR": {
		city("Buenos Aires", "AR", -34.6037, -58.3816),
	},
	"CL": {
		city("Santiago", "CL", -33.4489, -70.6693),
	},
	"PE": {
		city("Lima", "PE", -12.0464, -77.0428),
	},
	"CO": {
		city("Bogota", "CO", 4.711, -74.0721),
	},
	"NZ": {
		city("Wellington", "NZ", -41.2865, 174.7762),
	},
	"PT": {
		city("Lisbon", "PT", 38.7223, -9.1393),
	},
	"GR": {
		city("Athens", "GR", 37.9838, 23.7275),
	},
	"CZ": {
		city("Prague", "CZ", 50.0755, 14.4378),
	},
	"HU": {
		city("Budapest", "HU", 47.4979, 19.0402),
	},
	"RO": {
		city("Bucharest", "RO", 44.4268, 26.1025),
	},
	"UA": {
		city("Kyiv", "UA", 50.4501, 30.5234),
	},
	"IL": {
		city("Jerusalem", "IL", 31.7683, 35.2137),
	},
	"PK": {
		city("Islamabad", "PK", 33.6844, 73.0479),
	},
	"BD": {
		city("Dhaka", "BD", 23.8103, 90.4125),
	},
	"LK": {
		city("Colombo", "LK", 6.9271, 79.8612),
	},
	"MM": {
		city("Naypyidaw", "MM", 19.7633, 96.0785),
	},
	"KH": {
		city("Phnom Penh", "KH", 11.5564, 104.9282),
	},
	"LA": {
		city("Vientiane", "LA", 17.9757, 102.6331),
	},
	"NP": {
		city("Kathmandu", "NP", 27.7172, 85.324),
	},
	"IE": {
		city("Dublin", "IE", 53.3498, -6.2603),
	},
}

func city(name, country string, lat, lon float64) entity.NearbyCity {
	return entity.NearbyCity{Name: name, Country: country, Coordinates: entity.Coordinates{Lat: lat, Lon: lon}}
}

// CountryName returns the display name of a country code, or the code itself when unknown
func CountryName(code string) string {
	if name, ok := countryNames[strings.ToUpper(code)]; ok {
		return name
	}
	return code
}

// Capital returns the capital city of a country code
func Capital(code string) (string, bool) {
	capital, ok := capitals[strings.ToUpper(code)]
	return capital, ok
}
