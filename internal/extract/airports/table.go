package airports

import "paxscan/internal/domain"

// defaultEntries is the built-in city/IATA table. Several cities may alias
// one code (Bombay and Mumbai both map to BOM); each city has exactly one
// canonical code. The first city listed for a code is its display name.
var defaultEntries = []domain.CityCodeEntry{
	// India
	{City: "Delhi", IATACode: "DEL"},
	{City: "New Delhi", IATACode: "DEL"},
	{City: "Mumbai", IATACode: "BOM"},
	{City: "Bombay", IATACode: "BOM"},
	{City: "Bengaluru", IATACode: "BLR"},
	{City: "Bangalore", IATACode: "BLR"},
	{City: "Hyderabad", IATACode: "HYD"},
	{City: "Chennai", IATACode: "MAA"},
	{City: "Madras", IATACode: "MAA"},
	{City: "Kolkata", IATACode: "CCU"},
	{City: "Calcutta", IATACode: "CCU"},
	{City: "Chandigarh", IATACode: "IXC"},
	{City: "Pune", IATACode: "PNQ"},
	{City: "Ahmedabad", IATACode: "AMD"},
	{City: "Jaipur", IATACode: "JAI"},
	{City: "Lucknow", IATACode: "LKO"},
	{City: "Goa", IATACode: "GOI"},
	{City: "Kochi", IATACode: "COK"},
	{City: "Cochin", IATACode: "COK"},
	{City: "Thiruvananthapuram", IATACode: "TRV"},
	{City: "Trivandrum", IATACode: "TRV"},
	{City: "Guwahati", IATACode: "GAU"},
	{City: "Bhubaneswar", IATACode: "BBI"},
	{City: "Indore", IATACode: "IDR"},
	{City: "Nagpur", IATACode: "NAG"},
	{City: "Patna", IATACode: "PAT"},
	{City: "Srinagar", IATACode: "SXR"},
	{City: "Amritsar", IATACode: "ATQ"},
	{City: "Varanasi", IATACode: "VNS"},
	{City: "Ranchi", IATACode: "IXR"},
	{City: "Raipur", IATACode: "RPR"},
	{City: "Coimbatore", IATACode: "CJB"},
	{City: "Visakhapatnam", IATACode: "VTZ"},
	{City: "Vijayawada", IATACode: "VGA"},
	{City: "Madurai", IATACode: "IXM"},
	{City: "Mangaluru", IATACode: "IXE"},
	{City: "Mangalore", IATACode: "IXE"},
	{City: "Udaipur", IATACode: "UDR"},
	{City: "Jodhpur", IATACode: "JDH"},
	{City: "Dehradun", IATACode: "DED"},
	{City: "Leh", IATACode: "IXL"},
	{City: "Imphal", IATACode: "IMF"},
	{City: "Agartala", IATACode: "IXA"},
	{City: "Bagdogra", IATACode: "IXB"},
	{City: "Siliguri", IATACode: "IXB"},
	{City: "Port Blair", IATACode: "IXZ"},
	{City: "Surat", IATACode: "STV"},
	{City: "Vadodara", IATACode: "BDQ"},
	{City: "Rajkot", IATACode: "RAJ"},
	{City: "Bhopal", IATACode: "BHO"},
	{City: "Kanpur", IATACode: "KNU"},
	{City: "Tiruchirappalli", IATACode: "TRZ"},
	{City: "Hubli", IATACode: "HBX"},
	{City: "Belagavi", IATACode: "IXG"},
	{City: "Kozhikode", IATACode: "CCJ"},
	{City: "Calicut", IATACode: "CCJ"},
	{City: "Kannur", IATACode: "CNN"},

	// Asia / Middle East
	{City: "Dubai", IATACode: "DXB"},
	{City: "Abu Dhabi", IATACode: "AUH"},
	{City: "Doha", IATACode: "DOH"},
	{City: "Muscat", IATACode: "MCT"},
	{City: "Riyadh", IATACode: "RUH"},
	{City: "Jeddah", IATACode: "JED"},
	{City: "Singapore", IATACode: "SIN"},
	{City: "Hong Kong", IATACode: "HKG"},
	{City: "Bangkok", IATACode: "BKK"},
	{City: "Kuala Lumpur", IATACode: "KUL"},
	{City: "Colombo", IATACode: "CMB"},
	{City: "Dhaka", IATACode: "DAC"},
	{City: "Kathmandu", IATACode: "KTM"},
	{City: "Male", IATACode: "MLE"},
	{City: "Tokyo", IATACode: "NRT"},
	{City: "Osaka", IATACode: "KIX"},
	{City: "Seoul", IATACode: "ICN"},
	{City: "Shanghai", IATACode: "PVG"},
	{City: "Beijing", IATACode: "PEK"},
	{City: "Taipei", IATACode: "TPE"},
	{City: "Jakarta", IATACode: "CGK"},
	{City: "Manila", IATACode: "MNL"},
	{City: "Hanoi", IATACode: "HAN"},
	{City: "Ho Chi Minh City", IATACode: "SGN"},
	{City: "Istanbul", IATACode: "IST"},

	// Europe
	{City: "London", IATACode: "LHR"},
	{City: "Manchester", IATACode: "MAN"},
	{City: "Paris", IATACode: "CDG"},
	{City: "Frankfurt", IATACode: "FRA"},
	{City: "Munich", IATACode: "MUC"},
	{City: "Amsterdam", IATACode: "AMS"},
	{City: "Madrid", IATACode: "MAD"},
	{City: "Barcelona", IATACode: "BCN"},
	{City: "Rome", IATACode: "FCO"},
	{City: "Milan", IATACode: "MXP"},
	{City: "Zurich", IATACode: "ZRH"},
	{City: "Vienna", IATACode: "VIE"},
	{City: "Brussels", IATACode: "BRU"},
	{City: "Copenhagen", IATACode: "CPH"},
	{City: "Stockholm", IATACode: "ARN"},
	{City: "Oslo", IATACode: "OSL"},
	{City: "Helsinki", IATACode: "HEL"},
	{City: "Dublin", IATACode: "DUB"},

	// Americas / Oceania / Africa
	{City: "New York", IATACode: "JFK"},
	{City: "Newark", IATACode: "EWR"},
	{City: "Boston", IATACode: "BOS"},
	{City: "Washington", IATACode: "IAD"},
	{City: "Chicago", IATACode: "ORD"},
	{City: "Dallas", IATACode: "DFW"},
	{City: "Houston", IATACode: "IAH"},
	{City: "Atlanta", IATACode: "ATL"},
	{City: "Miami", IATACode: "MIA"},
	{City: "Denver", IATACode: "DEN"},
	{City: "Las Vegas", IATACode: "LAS"},
	{City: "Phoenix", IATACode: "PHX"},
	{City: "Los Angeles", IATACode: "LAX"},
	{City: "San Francisco", IATACode: "SFO"},
	{City: "Seattle", IATACode: "SEA"},
	{City: "Toronto", IATACode: "YYZ"},
	{City: "Vancouver", IATACode: "YVR"},
	{City: "Mexico City", IATACode: "MEX"},
	{City: "Sao Paulo", IATACode: "GRU"},
	{City: "Buenos Aires", IATACode: "EZE"},
	{City: "Sydney", IATACode: "SYD"},
	{City: "Melbourne", IATACode: "MEL"},
	{City: "Auckland", IATACode: "AKL"},
	{City: "Cairo", IATACode: "CAI"},
	{City: "Nairobi", IATACode: "NBO"},
	{City: "Johannesburg", IATACode: "JNB"},
	{City: "Lagos", IATACode: "LOS"},
}

// codeBlacklist filters bare three-letter tokens that look like IATA codes
// but are almost always English words or boarding-pass chrome.
var codeBlacklist = map[string]bool{
	"AND": true, "THE": true, "FOR": true, "NOT": true, "YOU": true,
	"ALL": true, "ANY": true, "ARE": true, "WAS": true, "HAS": true,
	"HIS": true, "HER": true, "ONE": true, "TWO": true, "OUT": true,
	"NEW": true, "OLD": true, "USE": true, "VIA": true, "ROW": true,
	"AIR": true, "JET": true, "FLY": true, "SKY": true, "SUN": true,
	"PNR": true, "SEQ": true, "ARR": true, "DEP": true, "ETD": true,
	"ETA": true, "STD": true, "STA": true, "BRD": true, "GMT": true,
	"UTC": true, "HRS": true, "MIN": true, "MAX": true, "REF": true,
	"NBR": true, "NUM": true, "BAG": true, "KGS": true, "PCS": true,
	"ECO": true, "BUS": true, "CLS": true, "INT": true, "DOM": true,
	"WEB": true, "APP": true, "QRC": true, "PDF": true,
}
